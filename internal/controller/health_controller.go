package controller

import (
	"net/http"

	"talent_bridge_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB           *gorm.DB
	SessionStore string
}

// NewHealthController takes a nil db when the ledger is disabled.
func NewHealthController(db *gorm.DB, sessionStore string) *HealthController {
	return &HealthController{DB: db, SessionStore: sessionStore}
}

// @Summary Health check
// @Description Reports service status and the state of optional components
// @Tags system
// @Produce json
// @Success 200 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	components := gin.H{"sessions": c.SessionStore}

	if c.DB == nil {
		components["database"] = "disabled"
	} else {
		sqlDB, err := c.DB.DB()
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		if err := sqlDB.PingContext(ctx.Request.Context()); err != nil {
			util.Error(ctx, http.StatusServiceUnavailable, "Database unavailable")
			return
		}
		components["database"] = "up"
	}

	util.Success(ctx, gin.H{
		"status":     "ok",
		"components": components,
	})
}
