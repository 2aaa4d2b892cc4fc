package domain

// Candidate is one entry of the model's ranked shortlist.
type Candidate struct {
	Name        string  `json:"name"`
	Probability float64 `json:"probability"`
	Rationale   string  `json:"rationale"`
}

// Prediction is the outcome of a winner prediction. Prediction is nil when no
// winner could be chosen; Rationale then explains why.
type Prediction struct {
	Prediction    *string     `json:"prediction"`
	Confidence    float64     `json:"confidence"`
	Rationale     string      `json:"rationale"`
	TopCandidates []Candidate `json:"top_candidates"`
}

// HasWinner reports whether a winner was selected.
func (p Prediction) HasWinner() bool {
	return p.Prediction != nil && *p.Prediction != ""
}

// Winner returns the selected name or an empty string.
func (p Prediction) Winner() string {
	if p.Prediction == nil {
		return ""
	}
	return *p.Prediction
}

// NoPrediction builds a result without a winner.
func NoPrediction(rationale string) Prediction {
	return Prediction{
		Rationale:     rationale,
		TopCandidates: []Candidate{},
	}
}
