package engine

import (
	"fmt"
	"strconv"

	"talent_bridge_backend/internal/questionnaire"
)

// Result is the classification shown to the respondent. The disability
// fields are null when the general section stayed below the threshold.
type Result struct {
	GeneralScore       int                `json:"generalScore"`
	GeneralPercent     float64            `json:"generalPercent"`
	IsTalented         bool               `json:"isTalented"`
	DisabilityCategory *string            `json:"disabilityCategory"`
	DisabilityScore    *int               `json:"disabilityScore"`
	DisabilityPercent  *float64           `json:"disabilityPercent"`
	PlanArtifactID     *string            `json:"planArtifactId"`
	Evaluation         questionnaire.Text `json:"evaluation"`
}

func (r Result) clone() Result {
	c := r
	if r.DisabilityCategory != nil {
		v := *r.DisabilityCategory
		c.DisabilityCategory = &v
	}
	if r.DisabilityScore != nil {
		v := *r.DisabilityScore
		c.DisabilityScore = &v
	}
	if r.DisabilityPercent != nil {
		v := *r.DisabilityPercent
		c.DisabilityPercent = &v
	}
	if r.PlanArtifactID != nil {
		v := *r.PlanArtifactID
		c.PlanArtifactID = &v
	}
	return c
}

var twiceExceptionalEvaluation = questionnaire.Text{
	AR: "مؤشرات قوية على خصائص مزدوجي الاستثنائية",
	EN: "Strong indicators of twice-exceptional characteristics",
}

func insufficientTalentEvaluation(percent float64) questionnaire.Text {
	p := strconv.FormatFloat(Round(percent, 2), 'f', -1, 64)
	return questionnaire.Text{
		AR: fmt.Sprintf("النسبة المئوية للموهبة: %s%%\nمقياس النتائج يشير إلى وجود مؤشرات تتعلق بالإعاقة فقط، وعدم كفاية مؤشرات الموهبة في الوقت الحالي. هذا لا يتعارض مع إمكانية وجود قدرات مميزة في المستقبل، ونوصي بمتابعة التقدم مع الفريق المتخصص في مدرستك.", p),
		EN: fmt.Sprintf("Talent percentage: %s%%\nThe scale results indicate the presence of indicators related to disability only, and insufficient indicators of giftedness at this time. This does not conflict with the possibility of having distinctive abilities in the future, and we recommend following up on progress with the specialized team at your school.", p),
	}
}

func generalOnlyResult(general SectionScore) *Result {
	return &Result{
		GeneralScore:   general.Score,
		GeneralPercent: general.Percent,
		IsTalented:     false,
		Evaluation:     insufficientTalentEvaluation(general.Percent),
	}
}

func fullResult(general, disability SectionScore, category string) *Result {
	cat := category
	plan := category
	score := disability.Score
	percent := disability.Percent
	return &Result{
		GeneralScore:       general.Score,
		GeneralPercent:     general.Percent,
		IsTalented:         IsTalented(general.Percent),
		DisabilityCategory: &cat,
		DisabilityScore:    &score,
		DisabilityPercent:  &percent,
		PlanArtifactID:     &plan,
		Evaluation:         twiceExceptionalEvaluation,
	}
}
