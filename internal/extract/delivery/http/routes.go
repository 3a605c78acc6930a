package http

import (
	"github.com/gin-gonic/gin"

	"uni-deadline-tracker/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// All routes are protected by the Auth middleware by convention.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	deadlines := rg.Group("/deadlines")
	{
		deadlines.POST("/extract", mw.Auth(), h.Extract)
		deadlines.POST("/extract/pdf", mw.Auth(), h.ExtractPDF)
		deadlines.POST("/export", mw.Auth(), h.Export)
	}

	units := rg.Group("/units")
	{
		units.GET("/:code/deadlines", mw.Auth(), h.UnitDeadlines)
	}
}
