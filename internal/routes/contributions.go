package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/codecraft-labs/codecraft-backend/internal/handlers"
	"github.com/codecraft-labs/codecraft-backend/internal/middleware"
)

func RegisterContributionRoutes(r gin.IRouter, h *handlers.ContributionHandler) {
	contributions := r.Group("/contributions")
	{
		contributions.GET("", h.ListContributions)
		contributions.GET("/export", h.Export)
		contributions.GET("/:id", h.GetContribution)

		// Mutations require a signed-in contributor
		protected := contributions.Group("")
		protected.Use(middleware.RequireContributor())
		{
			protected.POST("", middleware.MutationRateLimit(), h.AddTopic)
			protected.PUT("/:id", middleware.MutationRateLimit(), h.EditTopic)
			protected.DELETE("/:id", middleware.MutationRateLimit(), h.DeleteContribution)
			protected.POST("/import", middleware.ImportRateLimit(), h.Import)
		}
	}
}
