package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"talent_bridge_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxProxyBody = 1 << 20

type Forwarder interface {
	Forward(ctx context.Context, body []byte) (int, []byte, error)
}

// SurveyProxyController relays save requests from browsers to the survey
// API. Responses are the raw upstream JSON, or {"error": ...}.
type SurveyProxyController struct {
	Upstream Forwarder
}

func NewSurveyProxyController(upstream Forwarder) *SurveyProxyController {
	return &SurveyProxyController{Upstream: upstream}
}

// @Summary Save a survey result (proxy)
// @Description Forwards the JSON body to the survey API and relays its answer
// @Tags survey
// @Accept json
// @Produce json
// @Param body body engine.SavePayload true "survey result"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /survey/SurveyResult/Save [post]
func (c *SurveyProxyController) Save(ctx *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(ctx.Request.Body, maxProxyBody))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Proxy error: " + err.Error()})
		return
	}
	if !json.Valid(body) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	status, resp, err := c.Upstream.Forward(ctx.Request.Context(), body)
	if err != nil {
		logger.Log.Error("Proxy API error", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Proxy error: " + err.Error()})
		return
	}
	if status < 200 || status > 299 {
		logger.Log.Warn("External API error", zap.Int("status", status), zap.ByteString("body", resp))
		ctx.JSON(status, gin.H{"error": "External API error: " + string(resp)})
		return
	}
	if !json.Valid(resp) {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Proxy error: external API returned invalid JSON"})
		return
	}

	ctx.Data(http.StatusOK, "application/json; charset=utf-8", resp)
}

// @Summary CORS preflight for the save proxy
// @Tags survey
// @Success 200
// @Router /survey/SurveyResult/Save [options]
func (c *SurveyProxyController) Options(ctx *gin.Context) {
	ctx.Status(http.StatusOK)
}
