package command

import (
	"strings"

	"github.com/kapu/paderewski-ai-go/internal/domain"
	"github.com/kapu/paderewski-ai-go/internal/util"
)

var (
	participantsKeywords = []string{"uczestnicy", "uczestnik", "biorą udział", "bierze udział", "lista uczestników", "kto bierze udzial", "kto bierze udział"}
	juryKeywords         = []string{"jury", "juror", "jurorzy", "lista jury"}
	historyKeywords      = []string{"historia", "przeszłe edycje", "archiwum", "historyczne"}
	winnerKeywords       = []string{"kto wygra", "zwycięzca", "winner", "kto będzie najlepszy", "kto bedzie najlepszy"}
	videoKeywords        = []string{"youtube", "wideo", "video", "film"}
)

// Classify picks the route for a question by keyword. Earlier routes win when
// a question matches several.
func Classify(query string) domain.QueryType {
	q := strings.ToLower(strings.TrimSpace(query))
	switch {
	case q == "":
		return domain.QueryGeneral
	case util.ContainsAny(q, participantsKeywords):
		return domain.QueryParticipants
	case util.ContainsAny(q, juryKeywords):
		return domain.QueryJury
	case util.ContainsAny(q, historyKeywords):
		return domain.QueryHistory
	case util.ContainsAny(q, winnerKeywords):
		return domain.QueryWinner
	default:
		return domain.QueryGeneral
	}
}

// WantsVideos reports whether a question asks for video links.
func WantsVideos(query string) bool {
	return util.ContainsAny(strings.ToLower(query), videoKeywords)
}
