package routes

import (
	"bengkel_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing    = "/ping"
	PathJobs    = "/jobs"
	PathKPIs    = "/kpis"
	PathReports = "/reports"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func addJobRoutes(rg *gin.RouterGroup, h *handlers.JobHandler) {
	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", h.CreateJob)
		jobs.POST("/estimate", h.CreateAndOpenEstimate)
		jobs.GET("", h.ListJobs)
		jobs.GET("/:id", h.GetJob)
		jobs.PATCH("/:id", h.UpdateJob)
		jobs.DELETE("/:id", h.DeleteJob)
		jobs.PUT("/:id/estimate", h.SaveEstimate)
		jobs.POST("/:id/close", h.CloseJob)
		jobs.POST("/:id/reopen", h.ReopenJob)
	}
}

func addKPIRoutes(rg *gin.RouterGroup, h *handlers.KPIHandler) {
	kpis := rg.Group(PathKPIs)
	{
		kpis.GET("", h.GetKPIs)
		kpis.GET("/stream", h.StreamKPIs)
	}

	reports := rg.Group(PathReports)
	{
		reports.GET("/profit-loss", h.GetProfitAndLoss)
	}
}
