package engine

import (
	"testing"

	"talent_bridge_backend/internal/questionnaire"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSavePayloadTeacherFields(t *testing.T) {
	s := NewSession("p", questionnaire.RoleTeacher, now)
	s = mustApply(t, s, SetInfo{Info: teacherInfo()}, Next{})
	answers := []Answer{2, 2, 2, 2, 2, 2, 1, 1, 0, 1}
	for i, a := range answers {
		s = mustApply(t, s, AnswerGeneral{Index: i, Answer: a})
	}
	s = mustApply(t, s, Next{}, SelectCategory{ID: "visual-impairment"}, Next{})
	disability := []Answer{2, 1, 1, 0, 0, 0, 0, 0, 0, 0}
	for i, a := range disability {
		s = mustApply(t, s, AnswerDisability{Index: i, Answer: a})
	}
	s = mustApply(t, s, Next{})

	p, ok := BuildSavePayload(s, now)
	require.True(t, ok)
	assert.Equal(t, SavePayload{
		Name:              "Sara",
		EducationGrade:    "5",
		Gender:            "female",
		ParentName:        "Mona",
		BirthDate:         "2014-05-01",
		CheckerName:       "Mona",
		CheckupDate:       "2025-03-10",
		SchoolName:        "Al Noor",
		IsTalented:        true,
		TalentPercent:     75,
		IsDisabled:        true,
		Disability:        "Visual-Impairment-Braille",
		DisabilityPercent: 20,
		SurveyType:        "Teachers",
	}, p)
}

func TestBuildSavePayloadRoundsPercentages(t *testing.T) {
	third := 100.0 / 3
	cat := "unified"
	s := Session{
		Role: questionnaire.RoleParent,
		Result: &Result{
			GeneralPercent:     200.0 / 3,
			IsTalented:         true,
			DisabilityCategory: &cat,
			DisabilityPercent:  &third,
		},
	}
	p, ok := BuildSavePayload(s, now)
	require.True(t, ok)
	assert.Equal(t, 66.67, p.TalentPercent)
	assert.Equal(t, 33.3, p.DisabilityPercent)
	assert.Equal(t, "Unified", p.Disability)
}

func TestBuildSavePayloadWithoutResult(t *testing.T) {
	_, ok := BuildSavePayload(NewSession("q", questionnaire.RoleTeacher, now), now)
	assert.False(t, ok)
}

func TestSaveStatusSucceeded(t *testing.T) {
	assert.Nil(t, SavePending.Succeeded())
	assert.Nil(t, SaveStatus("").Succeeded())
	require.NotNil(t, SaveSaved.Succeeded())
	assert.True(t, *SaveSaved.Succeeded())
	assert.False(t, *SaveFailed.Succeeded())
}
