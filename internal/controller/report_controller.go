package controller

import (
	"errors"
	"net/http"
	"time"

	"talent_bridge_backend/internal/model"
	"talent_bridge_backend/internal/questionnaire"
	"talent_bridge_backend/internal/service"
	"talent_bridge_backend/internal/util"
	"talent_bridge_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ReportController struct {
	Service *service.ReportService
}

func NewReportController(svc *service.ReportService) *ReportController {
	return &ReportController{Service: svc}
}

// @Summary Reports summary (proxy)
// @Description Aggregate statistics from the survey API, relayed unchanged
// @Tags reports
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /reports/summary [get]
func (c *ReportController) Summary(ctx *gin.Context) {
	data, err := c.Service.Summary(ctx.Request.Context())
	if err != nil {
		logger.Log.Error("Failed to fetch reports summary", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch statistics"})
		return
	}
	ctx.Header("Cache-Control", "no-store")
	ctx.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

func recordFilter(ctx *gin.Context) model.SurveyRecordFilter {
	filter := model.SurveyRecordFilter{
		SaveStatus: ctx.Query("saveStatus"),
		IsTalented: util.OptionalBool(ctx, "talented"),
	}
	if raw := ctx.Query("surveyType"); raw != "" {
		if role, err := questionnaire.ParseRole(raw); err == nil {
			filter.SurveyType = role.SurveyType()
		} else {
			filter.SurveyType = raw
		}
	}
	return filter
}

func respondLedgerError(ctx *gin.Context, err error) {
	if errors.Is(err, util.ErrLedgerDisabled) {
		util.Error(ctx, http.StatusServiceUnavailable, err.Error())
		return
	}
	util.LogInternalError(ctx, err)
}

// @Summary Local submissions
// @Description Page through the locally recorded finished assessments
// @Tags reports
// @Produce json
// @Param surveyType query string false "Teachers or Parents"
// @Param saveStatus query string false "pending, saved or failed"
// @Param talented query bool false "classification filter"
// @Param page query int false "page" default(1)
// @Param limit query int false "page size" default(20)
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Failure 503 {object} util.Response
// @Router /reports/submissions [get]
func (c *ReportController) Submissions(ctx *gin.Context) {
	page, limit := util.PageParams(ctx)
	result, err := c.Service.ListSubmissions(recordFilter(ctx), page, limit)
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// @Summary Export submissions
// @Description Download the matching submissions as an Excel workbook
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param surveyType query string false "Teachers or Parents"
// @Param saveStatus query string false "pending, saved or failed"
// @Param talented query bool false "classification filter"
// @Success 200 {file} file
// @Failure 503 {object} util.Response
// @Router /reports/submissions/export [get]
func (c *ReportController) Export(ctx *gin.Context) {
	data, err := c.Service.ExportSubmissions(recordFilter(ctx))
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}
	name := "submissions-" + time.Now().Format("20060102") + ".xlsx"
	ctx.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	ctx.Data(http.StatusOK, util.MimeXLSX, data)
}
