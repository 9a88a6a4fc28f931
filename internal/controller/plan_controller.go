package controller

import (
	"errors"
	"net/http"

	"talent_bridge_backend/internal/service"
	"talent_bridge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PlanController struct {
	Service *service.PlanService
}

func NewPlanController(svc *service.PlanService) *PlanController {
	return &PlanController{Service: svc}
}

// @Summary Download an individual plan
// @Description Streams the category plan PDF, or redirects to a presigned URL when plans live in object storage
// @Tags plans
// @Produce application/pdf
// @Param category path string true "category id"
// @Param locale query string false "ar or en" default(ar)
// @Success 200 {file} file
// @Success 302
// @Failure 404 {object} util.Response
// @Router /plans/{category} [get]
func (c *PlanController) Download(ctx *gin.Context) {
	loc, err := c.Service.Locate(ctx.Request.Context(), ctx.Param("category"), ctx.Query("locale"))
	if err != nil {
		if errors.Is(err, util.ErrPlanNotFound) {
			util.Error(ctx, http.StatusNotFound, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	if loc.RedirectURL != "" {
		ctx.Redirect(http.StatusFound, loc.RedirectURL)
		return
	}
	ctx.FileAttachment(loc.LocalPath, loc.FileName)
}
