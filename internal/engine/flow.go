package engine

import (
	"time"

	"talent_bridge_backend/internal/questionnaire"
)

// Action is one user step fed to Apply.
type Action interface {
	isAction()
}

type SetInfo struct {
	Info Info
}

type AnswerGeneral struct {
	Index  int
	Answer Answer
}

type AnswerDisability struct {
	Index  int
	Answer Answer
}

type SelectCategory struct {
	ID string
}

// Next fires the guarded transition out of the current stage.
type Next struct{}

type Back struct{}

func (SetInfo) isAction()          {}
func (AnswerGeneral) isAction()    {}
func (AnswerDisability) isAction() {}
func (SelectCategory) isAction()   {}
func (Next) isAction()             {}
func (Back) isAction()             {}

// Apply returns the session that results from applying a to s at time now.
// On error the returned session is s unchanged.
func Apply(s Session, a Action, now time.Time) (Session, error) {
	if s.Finished() {
		return s, ErrSessionFinished
	}

	next := s.clone()
	var err error
	switch act := a.(type) {
	case SetInfo:
		err = requireStage(s, StageBasic)
		next.Info = act.Info
	case AnswerGeneral:
		err = requireStage(s, StageGeneral)
		if err == nil {
			err = setAnswer(next.GeneralAnswers, act.Index, act.Answer)
		}
	case AnswerDisability:
		err = requireStage(s, StageDisabilityForm)
		if err == nil {
			err = setAnswer(next.DisabilityAnswers, act.Index, act.Answer)
		}
	case SelectCategory:
		err = requireStage(s, StageDisabilitySelect)
		if err == nil {
			err = selectCategory(&next, act.ID)
		}
	case Next:
		err = advance(&next)
	case Back:
		err = retreat(&next)
	default:
		err = &ValidationError{Reason: ReasonStageMismatch}
	}
	if err != nil {
		return s, err
	}

	next.UpdatedAt = now
	return next, nil
}

func requireStage(s Session, want Stage) error {
	if s.Stage != want {
		return &ValidationError{Reason: ReasonStageMismatch, Fields: []string{string(s.Stage)}}
	}
	return nil
}

func setAnswer(answers []Answer, index int, a Answer) error {
	if index < 0 || index >= len(answers) {
		return &ValidationError{Reason: ReasonQuestionOutOfRange, Indexes: []int{index}}
	}
	if !a.Valid() && a != Unanswered {
		return &ValidationError{Reason: ReasonInvalidAnswer, Indexes: []int{index}}
	}
	answers[index] = a
	return nil
}

func selectCategory(s *Session, id string) error {
	if _, ok := questionnaire.LookupCategory(id); !ok {
		return &ValidationError{Reason: ReasonUnknownCategory, Fields: []string{id}}
	}
	s.Category = id
	s.DisabilityAnswers = blankAnswers(len(questionnaire.DisabilityQuestions(id)))
	return nil
}

func advance(s *Session) error {
	switch s.Stage {
	case StageBasic:
		if missing := s.Info.Missing(s.Role); len(missing) > 0 {
			return &ValidationError{Reason: ReasonMissingRequiredField, Fields: missing}
		}
		s.Stage = StageGeneral

	case StageGeneral:
		general, err := ScoreSection(s.GeneralAnswers)
		if err != nil {
			return err
		}
		if !IsTalented(general.Percent) {
			s.Category = ""
			s.DisabilityAnswers = []Answer{}
			s.Result = generalOnlyResult(general)
			s.SaveStatus = SavePending
			s.Stage = StageResults
			return nil
		}
		s.Stage = StageDisabilitySelect

	case StageDisabilitySelect:
		if s.Category == "" {
			return &ValidationError{Reason: ReasonNoCategorySelected}
		}
		s.Stage = StageDisabilityForm

	case StageDisabilityForm:
		general, err := ScoreSection(s.GeneralAnswers)
		if err != nil {
			return err
		}
		disability, err := ScoreSection(s.DisabilityAnswers)
		if err != nil {
			return err
		}
		s.Result = fullResult(general, disability, s.Category)
		s.SaveStatus = SavePending
		s.Stage = StageResults
	}
	return nil
}

func retreat(s *Session) error {
	switch s.Stage {
	case StageGeneral:
		s.Stage = StageBasic
	case StageDisabilitySelect:
		s.Stage = StageGeneral
	case StageDisabilityForm:
		s.Stage = StageDisabilitySelect
	default:
		return ErrNoPreviousStage
	}
	return nil
}
