package app

import (
	"talent_bridge_backend/docs"
	"talent_bridge_backend/pkg/monitoring"
	"talent_bridge_backend/pkg/security"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		a.registerQuestionnaireRoutes(api, c)
		a.registerAssessmentRoutes(api, c)

		api.GET("/plans/:category", c.plan.Download)

		reports := api.Group("/reports")
		{
			reports.GET("/summary", c.report.Summary)
			reports.GET("/submissions", c.report.Submissions)
			reports.GET("/submissions/export", c.report.Export)
		}
	}

	a.registerProxyRoutes(router, c)
}

func (a *App) registerQuestionnaireRoutes(rg *gin.RouterGroup, c *controllers) {
	q := rg.Group("/questionnaires")
	{
		q.GET("/general", c.questionnaire.General)
		q.GET("/categories", c.questionnaire.Categories)
		q.GET("/categories/:id/questions", c.questionnaire.CategoryQuestions)
	}
}

func (a *App) registerAssessmentRoutes(rg *gin.RouterGroup, c *controllers) {
	as := rg.Group("/assessments")
	{
		as.POST("", c.assessment.Start)
		as.POST("/score", c.assessment.Score)
		as.GET("/:id", c.assessment.Get)
		as.PUT("/:id/info", c.assessment.SetInfo)
		as.PUT("/:id/general/:index", c.assessment.AnswerGeneral)
		as.PUT("/:id/category", c.assessment.SelectCategory)
		as.PUT("/:id/disability/:index", c.assessment.AnswerDisability)
		as.POST("/:id/next", c.assessment.Next)
		as.POST("/:id/back", c.assessment.Back)
	}
}

// proxyPaths are exempt from the CORS whitelist.
var proxyPaths = []string{"/api/survey/SurveyResult/Save", "/api/survey/surveyresult/save"}

// registerProxyRoutes mounts the save proxy with permissive CORS.
func (a *App) registerProxyRoutes(router *gin.Engine, c *controllers) {
	for _, path := range proxyPaths {
		g := router.Group(path, security.OpenCORS())
		g.POST("", c.proxy.Save)
		g.OPTIONS("", c.proxy.Options)
	}
}
