package domain

// QueryType is the route a free-text question is dispatched to.
type QueryType string

const (
	QueryParticipants QueryType = "participants"
	QueryJury         QueryType = "jury"
	QueryHistory      QueryType = "history"
	QueryWinner       QueryType = "winner"
	QueryGeneral      QueryType = "general"
)

func (q QueryType) String() string {
	return string(q)
}

// Video is a single video search hit.
type Video struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// HistoryExcerpt is the leading text of the competition's main page.
type HistoryExcerpt struct {
	Excerpt string `json:"excerpt"`
	Source  string `json:"source"`
}
