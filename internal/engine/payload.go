package engine

import (
	"strings"
	"time"

	"talent_bridge_backend/internal/questionnaire"
)

// SaveStatus tracks the single background save of a finished session.
type SaveStatus string

const (
	SavePending SaveStatus = "pending"
	SaveSaved   SaveStatus = "saved"
	SaveFailed  SaveStatus = "failed"
)

// Succeeded is the tri-state view: nil while pending or not started.
func (s SaveStatus) Succeeded() *bool {
	var v bool
	switch s {
	case SaveSaved:
		v = true
	case SaveFailed:
		v = false
	default:
		return nil
	}
	return &v
}

// SavePayload is the body the survey-storage API accepts.
type SavePayload struct {
	Name              string  `json:"name"`
	EducationGrade    string  `json:"educationGrade"`
	Gender            string  `json:"gender"`
	ParentName        string  `json:"parentName"`
	BirthDate         string  `json:"birthDate"`
	CheckerName       string  `json:"checkerName"`
	CheckupDate       string  `json:"checkupDate"`
	SchoolName        string  `json:"schoolName"`
	IsTalented        bool    `json:"isTalented"`
	TalentPercent     float64 `json:"talentPercent"`
	IsDisabled        bool    `json:"isDisabled"`
	Disability        string  `json:"disability"`
	DisabilityPercent float64 `json:"disabilityPercent"`
	SurveyType        string  `json:"surveyType"`
}

const dateLayout = "2006-01-02"

// BuildSavePayload maps a finished session to the storage payload. today is
// used as the checkup date when the session carries no exam date. The second
// return value is false when the session has no result yet.
func BuildSavePayload(s Session, today time.Time) (SavePayload, bool) {
	if s.Result == nil {
		return SavePayload{}, false
	}

	checker := s.Info.ExaminerName
	parent := s.Info.ExaminerName
	if s.Role == questionnaire.RoleParent {
		checker = s.Info.ParentName
		parent = s.Info.ParentName
	}
	checkup := strings.TrimSpace(s.Info.ExamDate)
	if checkup == "" {
		checkup = today.Format(dateLayout)
	}

	p := SavePayload{
		Name:           s.Info.StudentName,
		EducationGrade: s.Info.Grade,
		Gender:         s.Info.Gender,
		ParentName:     parent,
		BirthDate:      s.Info.BirthDate,
		CheckerName:    checker,
		CheckupDate:    checkup,
		SchoolName:     s.Info.SchoolName,
		IsTalented:     s.Result.IsTalented,
		TalentPercent:  Round(s.Result.GeneralPercent, 2),
		SurveyType:     s.Role.SurveyType(),
	}
	if s.Result.DisabilityCategory != nil {
		p.IsDisabled = true
		p.Disability = questionnaire.PlanName(*s.Result.DisabilityCategory)
	}
	if s.Result.DisabilityPercent != nil {
		p.DisabilityPercent = Round(*s.Result.DisabilityPercent, 1)
	}
	return p, true
}
