// Package engine scores screening sections and drives the assessment flow.
// Everything here is pure: no I/O, no goroutines.
package engine

import "math"

// Answer is the ordinal response code of one question.
type Answer int

const (
	Unanswered Answer = -1
	Never      Answer = 0
	Sometimes  Answer = 1
	Always     Answer = 2
)

// PointsPerLevel is the weight of the highest answer level.
const PointsPerLevel = 10

// TalentThreshold is the inclusive general-section percentage from which a
// subject is classified as showing talent indicators.
const TalentThreshold = 60.0

func (a Answer) Valid() bool {
	return a == Never || a == Sometimes || a == Always
}

// Points maps an answer to its weight; anything outside the scale is worth 0.
func Points(a Answer) int {
	switch a {
	case Sometimes:
		return 5
	case Always:
		return 10
	}
	return 0
}

type SectionScore struct {
	Score     int     `json:"score"`
	MaxPoints int     `json:"maxPoints"`
	Percent   float64 `json:"percent"`
}

// ScoreSection sums the points of a fully answered section. A remaining
// sentinel or an out-of-scale code fails with a ValidationError and no score.
func ScoreSection(answers []Answer) (SectionScore, error) {
	if idx := unansweredIndexes(answers); len(idx) > 0 {
		return SectionScore{}, &ValidationError{Reason: ReasonIncompleteAnswers, Indexes: idx}
	}
	score := 0
	for i, a := range answers {
		if !a.Valid() {
			return SectionScore{}, &ValidationError{Reason: ReasonInvalidAnswer, Indexes: []int{i}}
		}
		score += Points(a)
	}
	maxPoints := len(answers) * PointsPerLevel
	return SectionScore{Score: score, MaxPoints: maxPoints, Percent: Percent(score, maxPoints)}, nil
}

// Percent is score/max*100, evaluated as score*100/max so that boundary
// values such as 90/150 come out exact.
func Percent(score, maxPoints int) float64 {
	if maxPoints <= 0 {
		return 0
	}
	return float64(score*100) / float64(maxPoints)
}

func IsTalented(percent float64) bool {
	return percent >= TalentThreshold
}

// Round rounds half away from zero to the given number of decimals.
func Round(x float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(x*p) / p
}

func unansweredIndexes(answers []Answer) []int {
	var idx []int
	for i, a := range answers {
		if a == Unanswered {
			idx = append(idx, i)
		}
	}
	return idx
}
