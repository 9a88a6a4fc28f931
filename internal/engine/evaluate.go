package engine

import "talent_bridge_backend/internal/questionnaire"

// Evaluate scores a complete answer set in one call, following the same
// branching as the step-by-step flow. category and disability are ignored
// when the general section stays below the threshold.
func Evaluate(role questionnaire.Role, general []Answer, category string, disability []Answer) (Result, error) {
	if want := len(questionnaire.GeneralQuestions(role)); len(general) != want {
		return Result{}, &ValidationError{Reason: ReasonIncompleteAnswers, Fields: []string{"generalAnswers"}}
	}
	g, err := ScoreSection(general)
	if err != nil {
		return Result{}, err
	}
	if !IsTalented(g.Percent) {
		return *generalOnlyResult(g), nil
	}

	if category == "" {
		return Result{}, &ValidationError{Reason: ReasonNoCategorySelected}
	}
	if _, ok := questionnaire.LookupCategory(category); !ok {
		return Result{}, &ValidationError{Reason: ReasonUnknownCategory, Fields: []string{category}}
	}
	if want := len(questionnaire.DisabilityQuestions(category)); len(disability) != want {
		return Result{}, &ValidationError{Reason: ReasonIncompleteAnswers, Fields: []string{"disabilityAnswers"}}
	}
	d, err := ScoreSection(disability)
	if err != nil {
		return Result{}, err
	}
	return *fullResult(g, d, category), nil
}
