package model

import "time"

// SurveyRecord is the local copy of one finished assessment and the outcome
// of forwarding it to the survey API.
// swagger:model
type SurveyRecord struct {
	BaseModel
	SessionID         string     `gorm:"type:varchar(36);uniqueIndex" json:"sessionId"`
	SurveyType        string     `gorm:"type:varchar(16);index" json:"surveyType"`
	Name              string     `gorm:"type:varchar(255)" json:"name"`
	EducationGrade    string     `gorm:"type:varchar(64)" json:"educationGrade"`
	Gender            string     `gorm:"type:varchar(32)" json:"gender"`
	ParentName        string     `gorm:"type:varchar(255)" json:"parentName"`
	BirthDate         string     `gorm:"type:varchar(32)" json:"birthDate"`
	CheckerName       string     `gorm:"type:varchar(255)" json:"checkerName"`
	CheckupDate       string     `gorm:"type:varchar(32)" json:"checkupDate"`
	SchoolName        string     `gorm:"type:varchar(255)" json:"schoolName"`
	IsTalented        bool       `gorm:"index" json:"isTalented"`
	TalentPercent     float64    `json:"talentPercent"`
	IsDisabled        bool       `json:"isDisabled"`
	Disability        string     `gorm:"type:varchar(64)" json:"disability"`
	DisabilityPercent float64    `json:"disabilityPercent"`
	SaveStatus        string     `gorm:"type:varchar(16);index" json:"saveStatus"`
	SaveError         string     `gorm:"type:text" json:"saveError,omitempty"`
	SavedAt           *time.Time `json:"savedAt,omitempty"`
}

// SurveyRecordFilter narrows ledger listings. Empty fields match everything.
type SurveyRecordFilter struct {
	SurveyType string
	SaveStatus string
	IsTalented *bool
}
