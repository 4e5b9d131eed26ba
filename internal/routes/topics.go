package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/codecraft-labs/codecraft-backend/internal/handlers"
)

func RegisterTopicRoutes(r gin.IRouter, h *handlers.TopicHandler) {
	topics := r.Group("/topics")
	{
		topics.GET("", h.ListTopics)
		topics.GET("/:id", h.GetTopic)
	}

	r.GET("/sections", h.ListSections)
}
