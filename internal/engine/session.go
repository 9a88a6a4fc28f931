package engine

import (
	"strings"
	"time"

	"talent_bridge_backend/internal/questionnaire"
)

type Stage string

const (
	StageBasic            Stage = "basic"
	StageGeneral          Stage = "general"
	StageDisabilitySelect Stage = "disability-select"
	StageDisabilityForm   Stage = "disability-form"
	StageResults          Stage = "results"
)

// formStages are the stages shown in the progress indicator; results is not
// counted as a step.
var formStages = []Stage{StageBasic, StageGeneral, StageDisabilitySelect, StageDisabilityForm}

// Info holds the subject identity fields. They are opaque to scoring and only
// checked for presence and copied into the save payload.
type Info struct {
	StudentName   string `json:"studentName"`
	Gender        string `json:"gender"`
	BirthDate     string `json:"birthDate"`
	Grade         string `json:"grade"`
	SchoolName    string `json:"schoolName"`
	ExaminerName  string `json:"examinerName"`
	ExaminerTitle string `json:"examinerTitle"`
	ExamDate      string `json:"examDate"`
	ParentName    string `json:"parentName"`
}

// Missing lists the JSON names of required fields that are blank for role.
func (i Info) Missing(role questionnaire.Role) []string {
	type field struct {
		name  string
		value string
	}
	var required []field
	switch role {
	case questionnaire.RoleParent:
		required = []field{
			{"studentName", i.StudentName},
			{"gender", i.Gender},
			{"birthDate", i.BirthDate},
			{"parentName", i.ParentName},
			{"grade", i.Grade},
		}
	default:
		required = []field{
			{"studentName", i.StudentName},
			{"gender", i.Gender},
			{"birthDate", i.BirthDate},
			{"examinerName", i.ExaminerName},
			{"examDate", i.ExamDate},
			{"examinerTitle", i.ExaminerTitle},
			{"schoolName", i.SchoolName},
			{"grade", i.Grade},
		}
	}

	var missing []string
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// Session is one respondent's pass through the flow. Apply never mutates a
// Session in place; every transition yields a new value.
type Session struct {
	ID                string             `json:"id"`
	Role              questionnaire.Role `json:"role"`
	Stage             Stage              `json:"stage"`
	Info              Info               `json:"info"`
	GeneralAnswers    []Answer           `json:"generalAnswers"`
	Category          string             `json:"category,omitempty"`
	DisabilityAnswers []Answer           `json:"disabilityAnswers"`
	Result            *Result            `json:"result,omitempty"`
	SaveStatus        SaveStatus         `json:"saveStatus,omitempty"`
	CreatedAt         time.Time          `json:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
}

func NewSession(id string, role questionnaire.Role, now time.Time) Session {
	return Session{
		ID:                id,
		Role:              role,
		Stage:             StageBasic,
		GeneralAnswers:    blankAnswers(len(questionnaire.GeneralQuestions(role))),
		DisabilityAnswers: []Answer{},
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// Step returns the 1-based position of the current stage among the form
// steps and the number of steps. Results reports the last step.
func (s Session) Step() (int, int) {
	for i, st := range formStages {
		if st == s.Stage {
			return i + 1, len(formStages)
		}
	}
	return len(formStages), len(formStages)
}

func (s Session) Finished() bool {
	return s.Stage == StageResults
}

func (s Session) clone() Session {
	c := s
	c.GeneralAnswers = append([]Answer(nil), s.GeneralAnswers...)
	c.DisabilityAnswers = append([]Answer{}, s.DisabilityAnswers...)
	if s.Result != nil {
		r := s.Result.clone()
		c.Result = &r
	}
	return c
}

func blankAnswers(n int) []Answer {
	out := make([]Answer, n)
	for i := range out {
		out[i] = Unanswered
	}
	return out
}
