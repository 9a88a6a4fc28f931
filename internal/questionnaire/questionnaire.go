// Package questionnaire holds the fixed screening catalog: the general
// behavioral items per respondent role and the disability-specific sections.
package questionnaire

import (
	"fmt"
	"strings"
)

type Role string

const (
	RoleTeacher Role = "teacher"
	RoleParent  Role = "parent"
)

func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "teacher", "teachers":
		return RoleTeacher, nil
	case "parent", "parents":
		return RoleParent, nil
	}
	return "", fmt.Errorf("unknown respondent role %q", s)
}

// SurveyType is the value the survey-storage API expects for the role.
func (r Role) SurveyType() string {
	switch r {
	case RoleTeacher:
		return "Teachers"
	case RoleParent:
		return "Parents"
	}
	return ""
}

// Text is one item in both supported locales.
type Text struct {
	AR string `json:"ar"`
	EN string `json:"en"`
}

// In returns the Arabic variant for "ar" and English for anything else.
func (t Text) In(locale string) string {
	if strings.HasPrefix(strings.ToLower(locale), "ar") {
		return t.AR
	}
	return t.EN
}

type Question struct {
	Index int `json:"index"`
	Text
}

type Category struct {
	ID       string `json:"id"`
	Label    Text   `json:"label"`
	PlanName string `json:"planName"`
}

// Scale lists the labels of the three answer levels, lowest first.
type Scale [3]Text

var (
	GeneralScale = Scale{
		{AR: "لا ينطبق", EN: "Never"},
		{AR: "أحياناً", EN: "Sometimes"},
		{AR: "دائماً", EN: "Always"},
	}
	DisabilityScale = Scale{
		{AR: "لا ينطبق", EN: "Never"},
		{AR: "أحياناً", EN: "Sometimes"},
		{AR: "كثيراً", EN: "Often"},
	}
)

// GeneralQuestions returns the general section for the role, or nil for an
// unknown role.
func GeneralQuestions(role Role) []Question {
	switch role {
	case RoleTeacher:
		return indexed(teacherGeneral)
	case RoleParent:
		return indexed(parentGeneral)
	}
	return nil
}

// DisabilityQuestions returns the 10-item section of a catalog category.
// Unknown ids yield an empty slice rather than an error.
func DisabilityQuestions(categoryID string) []Question {
	items, ok := disabilityItems[categoryID]
	if !ok {
		return []Question{}
	}
	return indexed(items)
}

func DisabilityCategories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

func LookupCategory(id string) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// PlanName maps a category id to the label used by the storage API and the
// plan artifacts. Ids outside the catalog map through the legacy table and
// finally to themselves.
func PlanName(id string) string {
	if c, ok := LookupCategory(id); ok {
		return c.PlanName
	}
	if name, ok := legacyPlanNames[id]; ok {
		return name
	}
	return id
}

func indexed(items []Text) []Question {
	out := make([]Question, len(items))
	for i, t := range items {
		out[i] = Question{Index: i, Text: t}
	}
	return out
}
