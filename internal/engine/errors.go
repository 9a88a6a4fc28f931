package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Reasons a transition or score is refused.
const (
	ReasonMissingRequiredField = "missing_required_field"
	ReasonIncompleteAnswers    = "incomplete_answers"
	ReasonInvalidAnswer        = "invalid_answer"
	ReasonNoCategorySelected   = "no_category_selected"
	ReasonUnknownCategory      = "unknown_category"
	ReasonStageMismatch        = "stage_mismatch"
	ReasonQuestionOutOfRange   = "question_out_of_range"
)

var (
	ErrSessionFinished = errors.New("assessment already finished")
	ErrNoPreviousStage = errors.New("no previous stage")
)

// ValidationError reports a blocked transition. The session it was raised
// for is left untouched and the same action may be retried.
type ValidationError struct {
	Reason  string   `json:"reason"`
	Fields  []string `json:"fields,omitempty"`
	Indexes []int    `json:"indexes,omitempty"`
}

func (e *ValidationError) Error() string {
	switch {
	case len(e.Fields) > 0:
		return fmt.Sprintf("validation failed: %s (%s)", e.Reason, strings.Join(e.Fields, ", "))
	case len(e.Indexes) > 0:
		return fmt.Sprintf("validation failed: %s at %v", e.Reason, e.Indexes)
	}
	return "validation failed: " + e.Reason
}

// IsValidation reports whether err is a ValidationError and returns it.
func IsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
