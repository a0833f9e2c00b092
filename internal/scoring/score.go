package scoring

import (
	"github.com/Mug212/ats-score-resume-builder/internal/types"
)

// Status is the label shown next to a score
type Status string

// Score labels
const (
	StatusExcellent Status = "Excellent"
	StatusGood      Status = "Good"
	StatusNeedsWork Status = "Needs Work"
)

// Award records whether a single rule fired
type Award struct {
	Rule     string   `json:"rule"`
	Category Category `json:"category"`
	Points   int      `json:"points"`
	Earned   bool     `json:"earned"`
}

// Result is the full evaluation of a document
type Result struct {
	Score    int     `json:"score"`
	RawScore int     `json:"rawScore"`
	Status   Status  `json:"status"`
	Awards   []Award `json:"awards"`
}

// Score returns the clamped sum of every rule that fires for doc.
func (r Rubric) Score(doc types.Document) int {
	raw := 0
	for _, rule := range r {
		if rule.Met(&doc) {
			raw += rule.Points
		}
	}
	return Clamp(raw)
}

// Evaluate scores doc and reports each rule's outcome.
func (r Rubric) Evaluate(doc types.Document) Result {
	awards := make([]Award, len(r))
	raw := 0
	for i, rule := range r {
		earned := rule.Met(&doc)
		if earned {
			raw += rule.Points
		}
		awards[i] = Award{
			Rule:     rule.Name,
			Category: rule.Category,
			Points:   rule.Points,
			Earned:   earned,
		}
	}

	score := Clamp(raw)
	return Result{
		Score:    score,
		RawScore: raw,
		Status:   StatusFor(score),
		Awards:   awards,
	}
}

// Score evaluates doc against the default rubric.
func Score(doc types.Document) int {
	return defaultRubric.Score(doc)
}

// Evaluate evaluates doc against the default rubric.
func Evaluate(doc types.Document) Result {
	return defaultRubric.Evaluate(doc)
}

// Clamp bounds a raw sum to [MinScore, MaxScore].
func Clamp(raw int) int {
	return max(MinScore, min(raw, MaxScore))
}

// StatusFor maps a score to its label.
func StatusFor(score int) Status {
	switch {
	case score >= 90:
		return StatusExcellent
	case score >= 70:
		return StatusGood
	default:
		return StatusNeedsWork
	}
}

// Earned sums the points of fired awards per category.
func (res Result) Earned() map[Category]int {
	totals := make(map[Category]int)
	for _, a := range res.Awards {
		if a.Earned {
			totals[a.Category] += a.Points
		}
	}
	return totals
}
