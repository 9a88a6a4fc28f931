package controller

import (
	"errors"
	"net/http"
	"strconv"

	"talent_bridge_backend/internal/engine"
	"talent_bridge_backend/internal/questionnaire"
	"talent_bridge_backend/internal/service"
	"talent_bridge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	Service *service.AssessmentService
}

func NewAssessmentController(svc *service.AssessmentService) *AssessmentController {
	return &AssessmentController{Service: svc}
}

type StartAssessmentRequest struct {
	Role string `json:"role" binding:"required" example:"teacher"`
}

type AnswerRequest struct {
	// 0 never, 1 sometimes, 2 always; -1 clears the answer
	Answer *int `json:"answer" binding:"required" example:"2"`
}

type SelectCategoryRequest struct {
	CategoryID string `json:"categoryId" binding:"required" example:"adhd"`
}

type ScoreRequest struct {
	Role              string          `json:"role" binding:"required"`
	GeneralAnswers    []engine.Answer `json:"generalAnswers" binding:"required"`
	Category          string          `json:"category"`
	DisabilityAnswers []engine.Answer `json:"disabilityAnswers"`
}

// respondError maps flow and store errors to HTTP statuses.
func respondError(ctx *gin.Context, err error) {
	if ve, ok := engine.IsValidation(err); ok {
		util.UnprocessableEntity(ctx, ve.Error(), ve)
		return
	}
	switch {
	case errors.Is(err, util.ErrSessionNotFound):
		util.Error(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, util.ErrInvalidRole):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, engine.ErrSessionFinished),
		errors.Is(err, engine.ErrNoPreviousStage),
		errors.Is(err, util.ErrSessionConflict):
		util.Conflict(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

func (c *AssessmentController) apply(ctx *gin.Context, action engine.Action) {
	s, _, err := c.Service.Apply(ctx.Request.Context(), ctx.Param("id"), action)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, service.NewSessionView(s))
}

func answerIndex(ctx *gin.Context) (int, bool) {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		util.BadRequest(ctx, "invalid question index")
		return 0, false
	}
	return index, true
}

// @Summary Start an assessment
// @Tags assessments
// @Accept json
// @Produce json
// @Param body body StartAssessmentRequest true "respondent role"
// @Success 201 {object} util.Response{data=service.SessionView}
// @Failure 400 {object} util.Response
// @Router /assessments [post]
func (c *AssessmentController) Start(ctx *gin.Context) {
	var req StartAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	role, err := questionnaire.ParseRole(req.Role)
	if err != nil {
		util.BadRequest(ctx, util.ErrInvalidRole.Error())
		return
	}

	s, err := c.Service.Start(ctx.Request.Context(), role)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, service.NewSessionView(s))
}

// @Summary Get an assessment
// @Description Returns the session including its result and save status once finished
// @Tags assessments
// @Produce json
// @Param id path string true "session id"
// @Success 200 {object} util.Response{data=service.SessionView}
// @Failure 404 {object} util.Response
// @Router /assessments/{id} [get]
func (c *AssessmentController) Get(ctx *gin.Context) {
	s, err := c.Service.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, service.NewSessionView(s))
}

// @Summary Set subject information
// @Tags assessments
// @Accept json
// @Produce json
// @Param id path string true "session id"
// @Param body body engine.Info true "subject identity fields"
// @Success 200 {object} util.Response{data=service.SessionView}
// @Failure 422 {object} util.Response
// @Router /assessments/{id}/info [put]
func (c *AssessmentController) SetInfo(ctx *gin.Context) {
	var info engine.Info
	if err := ctx.ShouldBindJSON(&info); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	c.apply(ctx, engine.SetInfo{Info: info})
}

// @Summary Answer a general question
// @Tags assessments
// @Accept json
// @Produce json
// @Param id path string true "session id"
// @Param index path int true "0-based question index"
// @Param body body AnswerRequest true "answer code"
// @Success 200 {object} util.Response{data=service.SessionView}
// @Failure 422 {object} util.Response
// @Router /assessments/{id}/general/{index} [put]
func (c *AssessmentController) AnswerGeneral(ctx *gin.Context) {
	index, ok := answerIndex(ctx)
	if !ok {
		return
	}
	var req AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	c.apply(ctx, engine.AnswerGeneral{Index: index, Answer: engine.Answer(*req.Answer)})
}

// @Summary Select the disability category
// @Tags assessments
// @Accept json
// @Produce json
// @Param id path string true "session id"
// @Param body body SelectCategoryRequest true "category"
// @Success 200 {object} util.Response{data=service.SessionView}
// @Failure 422 {object} util.Response
// @Router /assessments/{id}/category [put]
func (c *AssessmentController) SelectCategory(ctx *gin.Context) {
	var req SelectCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	c.apply(ctx, engine.SelectCategory{ID: req.CategoryID})
}

// @Summary Answer a disability question
// @Tags assessments
// @Accept json
// @Produce json
// @Param id path string true "session id"
// @Param index path int true "0-based question index"
// @Param body body AnswerRequest true "answer code"
// @Success 200 {object} util.Response{data=service.SessionView}
// @Failure 422 {object} util.Response
// @Router /assessments/{id}/disability/{index} [put]
func (c *AssessmentController) AnswerDisability(ctx *gin.Context) {
	index, ok := answerIndex(ctx)
	if !ok {
		return
	}
	var req AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	c.apply(ctx, engine.AnswerDisability{Index: index, Answer: engine.Answer(*req.Answer)})
}

// @Summary Advance to the next step
// @Description Fires the guarded transition. Reaching results starts the background save.
// @Tags assessments
// @Produce json
// @Param id path string true "session id"
// @Success 200 {object} util.Response{data=service.SessionView}
// @Failure 409 {object} util.Response
// @Failure 422 {object} util.Response
// @Router /assessments/{id}/next [post]
func (c *AssessmentController) Next(ctx *gin.Context) {
	c.apply(ctx, engine.Next{})
}

// @Summary Go back one step
// @Tags assessments
// @Produce json
// @Param id path string true "session id"
// @Success 200 {object} util.Response{data=service.SessionView}
// @Failure 409 {object} util.Response
// @Router /assessments/{id}/back [post]
func (c *AssessmentController) Back(ctx *gin.Context) {
	c.apply(ctx, engine.Back{})
}

// @Summary Score a complete answer set
// @Description Stateless scoring for clients that keep the flow locally. Nothing is saved.
// @Tags assessments
// @Accept json
// @Produce json
// @Param body body ScoreRequest true "answers"
// @Success 200 {object} util.Response{data=engine.Result}
// @Failure 422 {object} util.Response
// @Router /assessments/score [post]
func (c *AssessmentController) Score(ctx *gin.Context) {
	var req ScoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	role, err := questionnaire.ParseRole(req.Role)
	if err != nil {
		util.BadRequest(ctx, util.ErrInvalidRole.Error())
		return
	}

	result, err := c.Service.Evaluate(role, req.GeneralAnswers, req.Category, req.DisabilityAnswers)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}
