package controller

import (
	"talent_bridge_backend/internal/questionnaire"
	"talent_bridge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionnaireController struct{}

func NewQuestionnaireController() *QuestionnaireController {
	return &QuestionnaireController{}
}

type GeneralSection struct {
	Role       questionnaire.Role       `json:"role"`
	SurveyType string                   `json:"surveyType"`
	Scale      questionnaire.Scale      `json:"scale"`
	Questions  []questionnaire.Question `json:"questions"`
}

type DisabilitySection struct {
	CategoryID string                   `json:"categoryId"`
	Category   *questionnaire.Category  `json:"category"`
	Scale      questionnaire.Scale      `json:"scale"`
	Questions  []questionnaire.Question `json:"questions"`
}

// @Summary General questions
// @Description The general behavioral section for a respondent role
// @Tags questionnaires
// @Produce json
// @Param role query string true "teacher or parent"
// @Success 200 {object} util.Response{data=GeneralSection}
// @Failure 400 {object} util.Response
// @Router /questionnaires/general [get]
func (c *QuestionnaireController) General(ctx *gin.Context) {
	role, err := questionnaire.ParseRole(ctx.Query("role"))
	if err != nil {
		util.BadRequest(ctx, util.ErrInvalidRole.Error())
		return
	}
	util.Success(ctx, GeneralSection{
		Role:       role,
		SurveyType: role.SurveyType(),
		Scale:      questionnaire.GeneralScale,
		Questions:  questionnaire.GeneralQuestions(role),
	})
}

// @Summary Disability categories
// @Tags questionnaires
// @Produce json
// @Success 200 {object} util.Response{data=[]questionnaire.Category}
// @Router /questionnaires/categories [get]
func (c *QuestionnaireController) Categories(ctx *gin.Context) {
	util.Success(ctx, questionnaire.DisabilityCategories())
}

// @Summary Disability questions
// @Description Questions of one category. An unknown category yields an empty list.
// @Tags questionnaires
// @Produce json
// @Param id path string true "category id"
// @Success 200 {object} util.Response{data=DisabilitySection}
// @Router /questionnaires/categories/{id}/questions [get]
func (c *QuestionnaireController) CategoryQuestions(ctx *gin.Context) {
	id := ctx.Param("id")
	section := DisabilitySection{
		CategoryID: id,
		Scale:      questionnaire.DisabilityScale,
		Questions:  questionnaire.DisabilityQuestions(id),
	}
	if cat, ok := questionnaire.LookupCategory(id); ok {
		section.Category = &cat
	}
	util.Success(ctx, section)
}
