package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codecraft-labs/codecraft-backend/internal/catalog"
	"github.com/codecraft-labs/codecraft-backend/internal/models"
	"github.com/codecraft-labs/codecraft-backend/internal/store"
)

// TopicHandler serves the merged catalog view: built-in topics with user
// contributions layered on top. The catalog itself is never mutated.
type TopicHandler struct {
	catalog *catalog.Catalog
	store   *store.ContributionStore
}

func NewTopicHandler(cat *catalog.Catalog, s *store.ContributionStore) *TopicHandler {
	return &TopicHandler{catalog: cat, store: s}
}

// ListTopics handles GET /topics
func (h *TopicHandler) ListTopics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"topics": h.catalog.Merged(h.store.All())})
}

// GetTopic handles GET /topics/:id. A contribution at the id overrides
// the built-in entry.
func (h *TopicHandler) GetTopic(c *gin.Context) {
	id := c.Param("id")

	if contrib, ok := h.store.Get(id); ok {
		c.JSON(http.StatusOK, gin.H{"topic": models.MergedFromContribution(contrib)})
		return
	}
	if topic, ok := h.catalog.Get(id); ok {
		c.JSON(http.StatusOK, gin.H{"topic": models.MergedFromTopic(topic)})
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Topic not found"})
}

// ListSections handles GET /sections
func (h *TopicHandler) ListSections(c *gin.Context) {
	sections := h.catalog.Sections()
	if sections == nil {
		sections = []models.Section{}
	}
	c.JSON(http.StatusOK, gin.H{"sections": sections})
}
