package engine

import (
	"errors"
	"testing"
	"time"

	"talent_bridge_backend/internal/questionnaire"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

func teacherInfo() Info {
	return Info{
		StudentName:   "Sara",
		Gender:        "female",
		BirthDate:     "2014-05-01",
		Grade:         "5",
		SchoolName:    "Al Noor",
		ExaminerName:  "Mona",
		ExaminerTitle: "Teacher",
		ExamDate:      "2025-03-10",
	}
}

func parentInfo() Info {
	return Info{
		StudentName: "Omar",
		Gender:      "male",
		BirthDate:   "2015-01-20",
		Grade:       "4",
		ParentName:  "Khaled",
	}
}

func mustApply(t *testing.T, s Session, actions ...Action) Session {
	t.Helper()
	var err error
	for _, a := range actions {
		s, err = Apply(s, a, now)
		require.NoError(t, err, "%T", a)
	}
	return s
}

func answerAllGeneral(s Session, a Answer) []Action {
	acts := make([]Action, len(s.GeneralAnswers))
	for i := range acts {
		acts[i] = AnswerGeneral{Index: i, Answer: a}
	}
	return acts
}

func answerAllDisability(n int, a Answer) []Action {
	acts := make([]Action, n)
	for i := range acts {
		acts[i] = AnswerDisability{Index: i, Answer: a}
	}
	return acts
}

func TestNewSession(t *testing.T) {
	s := NewSession("s1", questionnaire.RoleParent, now)
	assert.Equal(t, StageBasic, s.Stage)
	assert.Equal(t, repeat(Unanswered, 15), s.GeneralAnswers)
	assert.Empty(t, s.DisabilityAnswers)
	assert.Nil(t, s.Result)

	step, total := s.Step()
	assert.Equal(t, 1, step)
	assert.Equal(t, 4, total)
}

func TestTeacherLowTalentGoesStraightToResults(t *testing.T) {
	s := NewSession("a", questionnaire.RoleTeacher, now)
	s = mustApply(t, s, SetInfo{Info: teacherInfo()}, Next{})
	s = mustApply(t, s, answerAllGeneral(s, Never)...)
	s = mustApply(t, s, Next{})

	assert.Equal(t, StageResults, s.Stage)
	require.NotNil(t, s.Result)
	assert.Equal(t, 0, s.Result.GeneralScore)
	assert.Equal(t, 0.0, s.Result.GeneralPercent)
	assert.False(t, s.Result.IsTalented)
	assert.Nil(t, s.Result.DisabilityCategory)
	assert.Nil(t, s.Result.DisabilityPercent)
	assert.Nil(t, s.Result.PlanArtifactID)
	assert.Contains(t, s.Result.Evaluation.EN, "Talent percentage: 0%")
	assert.Equal(t, SavePending, s.SaveStatus)

	p, ok := BuildSavePayload(s, now)
	require.True(t, ok)
	assert.False(t, p.IsTalented)
	assert.False(t, p.IsDisabled)
	assert.Equal(t, "", p.Disability)
	assert.Equal(t, 0.0, p.DisabilityPercent)
	assert.Equal(t, "Teachers", p.SurveyType)
}

func TestParentHighTalentRequiresCategory(t *testing.T) {
	s := NewSession("b", questionnaire.RoleParent, now)
	s = mustApply(t, s, SetInfo{Info: parentInfo()}, Next{})
	s = mustApply(t, s, answerAllGeneral(s, Always)...)
	s = mustApply(t, s, Next{})
	assert.Equal(t, StageDisabilitySelect, s.Stage)
	assert.Nil(t, s.Result)

	_, err := Apply(s, Next{}, now)
	ve, ok := IsValidation(err)
	require.True(t, ok)
	assert.Equal(t, ReasonNoCategorySelected, ve.Reason)

	s = mustApply(t, s, SelectCategory{ID: "adhd"}, Next{})
	assert.Equal(t, StageDisabilityForm, s.Stage)
	s = mustApply(t, s, answerAllDisability(10, Sometimes)...)
	s = mustApply(t, s, Next{})

	require.Equal(t, StageResults, s.Stage)
	r := s.Result
	assert.Equal(t, 150, r.GeneralScore)
	assert.Equal(t, 100.0, r.GeneralPercent)
	assert.True(t, r.IsTalented)
	require.NotNil(t, r.DisabilityScore)
	assert.Equal(t, 50, *r.DisabilityScore)
	assert.Equal(t, 50.0, *r.DisabilityPercent)
	assert.Equal(t, "adhd", *r.DisabilityCategory)
	assert.Equal(t, "adhd", *r.PlanArtifactID)

	p, ok := BuildSavePayload(s, now)
	require.True(t, ok)
	assert.True(t, p.IsTalented)
	assert.True(t, p.IsDisabled)
	assert.Equal(t, "ADHD", p.Disability)
	assert.Equal(t, 100.0, p.TalentPercent)
	assert.Equal(t, 50.0, p.DisabilityPercent)
	assert.Equal(t, "Parents", p.SurveyType)
	assert.Equal(t, "Khaled", p.ParentName)
	assert.Equal(t, "Khaled", p.CheckerName)
	assert.Equal(t, "2025-03-14", p.CheckupDate)
}

func TestBoundaryScenarioIsTalented(t *testing.T) {
	s := NewSession("c", questionnaire.RoleParent, now)
	s = mustApply(t, s, SetInfo{Info: parentInfo()}, Next{})
	for i := 0; i < 15; i++ {
		a := Never
		if i < 9 {
			a = Always
		}
		s = mustApply(t, s, AnswerGeneral{Index: i, Answer: a})
	}
	s = mustApply(t, s, Next{})
	assert.Equal(t, StageDisabilitySelect, s.Stage)
}

func TestBranchIsDeterministic(t *testing.T) {
	answers := []Answer{2, 2, 1, 0, 2, 1, 1, 2, 0, 2}
	run := func(id string) Session {
		s := NewSession(id, questionnaire.RoleTeacher, now)
		s = mustApply(t, s, SetInfo{Info: teacherInfo()}, Next{})
		for i, a := range answers {
			s = mustApply(t, s, AnswerGeneral{Index: i, Answer: a})
		}
		return mustApply(t, s, Next{})
	}
	a, b := run("x"), run("y")
	assert.Equal(t, a.Stage, b.Stage)
	assert.Equal(t, StageDisabilitySelect, a.Stage)
}

func TestGeneralWithSentinelIsBlocked(t *testing.T) {
	s := NewSession("d", questionnaire.RoleTeacher, now)
	s = mustApply(t, s, SetInfo{Info: teacherInfo()}, Next{})
	s = mustApply(t, s, answerAllGeneral(s, Always)[:9]...)

	after, err := Apply(s, Next{}, now)
	ve, ok := IsValidation(err)
	require.True(t, ok)
	assert.Equal(t, ReasonIncompleteAnswers, ve.Reason)
	assert.Equal(t, []int{9}, ve.Indexes)
	assert.Equal(t, StageGeneral, after.Stage)
	assert.Nil(t, after.Result)

	// retry after fixing the input
	s = mustApply(t, s, AnswerGeneral{Index: 9, Answer: Always}, Next{})
	assert.Equal(t, StageDisabilitySelect, s.Stage)
}

func TestDisabilityWithSentinelIsBlocked(t *testing.T) {
	s := NewSession("e", questionnaire.RoleTeacher, now)
	s = mustApply(t, s, SetInfo{Info: teacherInfo()}, Next{})
	s = mustApply(t, s, answerAllGeneral(s, Always)...)
	s = mustApply(t, s, Next{}, SelectCategory{ID: "autism"}, Next{})
	s = mustApply(t, s, answerAllDisability(9, Always)...)

	_, err := Apply(s, Next{}, now)
	ve, ok := IsValidation(err)
	require.True(t, ok)
	assert.Equal(t, ReasonIncompleteAnswers, ve.Reason)
}

func TestMissingInfoIsReported(t *testing.T) {
	s := NewSession("f", questionnaire.RoleTeacher, now)
	info := teacherInfo()
	info.SchoolName = "  "
	info.ExamDate = ""
	s = mustApply(t, s, SetInfo{Info: info})

	_, err := Apply(s, Next{}, now)
	ve, ok := IsValidation(err)
	require.True(t, ok)
	assert.Equal(t, ReasonMissingRequiredField, ve.Reason)
	assert.ElementsMatch(t, []string{"schoolName", "examDate"}, ve.Fields)
}

func TestParentDoesNotNeedExaminerFields(t *testing.T) {
	s := NewSession("g", questionnaire.RoleParent, now)
	s = mustApply(t, s, SetInfo{Info: parentInfo()}, Next{})
	assert.Equal(t, StageGeneral, s.Stage)
}

func TestSelectCategoryResetsAnswers(t *testing.T) {
	s := NewSession("h", questionnaire.RoleTeacher, now)
	s = mustApply(t, s, SetInfo{Info: teacherInfo()}, Next{})
	s = mustApply(t, s, answerAllGeneral(s, Always)...)
	s = mustApply(t, s, Next{}, SelectCategory{ID: "adhd"}, Next{})
	s = mustApply(t, s, AnswerDisability{Index: 0, Answer: Always})
	s = mustApply(t, s, Back{}, SelectCategory{ID: "hearing-impairment"})

	assert.Equal(t, "hearing-impairment", s.Category)
	assert.Equal(t, repeat(Unanswered, 10), s.DisabilityAnswers)

	_, err := Apply(s, SelectCategory{ID: "not-a-real-id"}, now)
	ve, ok := IsValidation(err)
	require.True(t, ok)
	assert.Equal(t, ReasonUnknownCategory, ve.Reason)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	s := NewSession("i", questionnaire.RoleTeacher, now)
	s = mustApply(t, s, SetInfo{Info: teacherInfo()}, Next{})
	before := append([]Answer(nil), s.GeneralAnswers...)

	next := mustApply(t, s, AnswerGeneral{Index: 2, Answer: Always})
	assert.Equal(t, before, s.GeneralAnswers)
	assert.Equal(t, Always, next.GeneralAnswers[2])
}

func TestStageGuards(t *testing.T) {
	s := NewSession("j", questionnaire.RoleTeacher, now)

	_, err := Apply(s, AnswerGeneral{Index: 0, Answer: Always}, now)
	ve, ok := IsValidation(err)
	require.True(t, ok)
	assert.Equal(t, ReasonStageMismatch, ve.Reason)

	_, err = Apply(s, Back{}, now)
	assert.True(t, errors.Is(err, ErrNoPreviousStage))

	s = mustApply(t, s, SetInfo{Info: teacherInfo()}, Next{})
	_, err = Apply(s, AnswerGeneral{Index: 10, Answer: Always}, now)
	ve, ok = IsValidation(err)
	require.True(t, ok)
	assert.Equal(t, ReasonQuestionOutOfRange, ve.Reason)

	_, err = Apply(s, AnswerGeneral{Index: 0, Answer: Answer(5)}, now)
	ve, ok = IsValidation(err)
	require.True(t, ok)
	assert.Equal(t, ReasonInvalidAnswer, ve.Reason)
}

func TestFinishedSessionRejectsActions(t *testing.T) {
	s := NewSession("k", questionnaire.RoleTeacher, now)
	s = mustApply(t, s, SetInfo{Info: teacherInfo()}, Next{})
	s = mustApply(t, s, answerAllGeneral(s, Never)...)
	s = mustApply(t, s, Next{})

	_, err := Apply(s, Next{}, now)
	assert.ErrorIs(t, err, ErrSessionFinished)
	_, err = Apply(s, Back{}, now)
	assert.ErrorIs(t, err, ErrSessionFinished)
}

func TestBackKeepsAnswers(t *testing.T) {
	s := NewSession("l", questionnaire.RoleTeacher, now)
	s = mustApply(t, s, SetInfo{Info: teacherInfo()}, Next{})
	s = mustApply(t, s, AnswerGeneral{Index: 0, Answer: Sometimes}, Back{})
	assert.Equal(t, StageBasic, s.Stage)
	assert.Equal(t, Sometimes, s.GeneralAnswers[0])
}

func TestEvaluate(t *testing.T) {
	r, err := Evaluate(questionnaire.RoleTeacher, repeat(Never, 10), "", nil)
	require.NoError(t, err)
	assert.False(t, r.IsTalented)
	assert.Nil(t, r.DisabilityScore)

	_, err = Evaluate(questionnaire.RoleParent, repeat(Always, 15), "", nil)
	ve, ok := IsValidation(err)
	require.True(t, ok)
	assert.Equal(t, ReasonNoCategorySelected, ve.Reason)

	r, err = Evaluate(questionnaire.RoleParent, repeat(Always, 15), "adhd", repeat(Sometimes, 10))
	require.NoError(t, err)
	assert.True(t, r.IsTalented)
	assert.Equal(t, 50, *r.DisabilityScore)

	_, err = Evaluate(questionnaire.RoleTeacher, repeat(Always, 15), "", nil)
	ve, ok = IsValidation(err)
	require.True(t, ok)
	assert.Equal(t, ReasonIncompleteAnswers, ve.Reason)
}
