package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codecraft-labs/codecraft-backend/internal/middleware"
	"github.com/codecraft-labs/codecraft-backend/internal/models"
	"github.com/codecraft-labs/codecraft-backend/internal/store"
	"github.com/codecraft-labs/codecraft-backend/pkg/logger"
)

// Import uploads are whole contribution documents; cap them well above
// any realistic export size.
const maxImportBytes = 8 << 20

// -- Inputs --
type TopicInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Code        string `json:"code"`
	SectionKey  string `json:"sectionKey"`
	CourseKey   string `json:"courseKey"`
}

func (in TopicInput) toData() models.TopicData {
	return models.TopicData{
		Title:       in.Title,
		Description: in.Description,
		Content:     in.Content,
		Code:        in.Code,
		SectionKey:  in.SectionKey,
		CourseKey:   in.CourseKey,
	}
}

// ContributionHandler exposes the contribution store over HTTP.
type ContributionHandler struct {
	store *store.ContributionStore
}

func NewContributionHandler(s *store.ContributionStore) *ContributionHandler {
	return &ContributionHandler{store: s}
}

// AddTopic handles POST /contributions
func (h *ContributionHandler) AddTopic(c *gin.Context) {
	var input TopicInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email, name := middleware.ContributorFrom(c)
	contrib, err := h.store.AddTopic(c.Request.Context(), input.toData(), email, name)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to persist new topic")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save contribution"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"contribution": contrib})
}

// EditTopic handles PUT /contributions/:id. The id may be a built-in
// catalog topic or an earlier contribution; the store treats both the
// same way.
func (h *ContributionHandler) EditTopic(c *gin.Context) {
	id := c.Param("id")

	var input TopicInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email, name := middleware.ContributorFrom(c)
	contrib, err := h.store.EditTopic(c.Request.Context(), id, input.toData(), email, name)
	if err != nil {
		logger.Error().Err(err).Str("id", id).Msg("Failed to persist topic edit")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save contribution"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"contribution": contrib})
}

// ListContributions handles GET /contributions (optionally ?email= filter)
func (h *ContributionHandler) ListContributions(c *gin.Context) {
	email := c.Query("email")

	var contributions []models.Contribution
	if email != "" {
		contributions = h.store.ByUser(email)
	} else {
		contributions = h.store.All()
	}
	if contributions == nil {
		contributions = []models.Contribution{}
	}

	c.JSON(http.StatusOK, gin.H{"contributions": contributions})
}

// GetContribution handles GET /contributions/:id
func (h *ContributionHandler) GetContribution(c *gin.Context) {
	contrib, ok := h.store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contribution not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"contribution": contrib})
}

// DeleteContribution handles DELETE /contributions/:id. Deleting an
// unknown id succeeds; the operation is idempotent.
func (h *ContributionHandler) DeleteContribution(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		logger.Error().Err(err).Str("id", id).Msg("Failed to persist deletion")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contribution"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// Export handles GET /contributions/export as an attachment download.
func (h *ContributionHandler) Export(c *gin.Context) {
	doc, filename, err := h.store.Export()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to export contributions")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export contributions"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/json", doc)
}

// Import handles POST /contributions/import. The body is a previously
// exported document; imported entries win over local ones id-by-id.
func (h *ContributionHandler) Import(c *gin.Context) {
	doc, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read import document", "imported": false})
		return
	}

	ok, err := h.store.Import(c.Request.Context(), doc)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to persist imported contributions")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save imported contributions", "imported": false})
		return
	}
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Import document is not valid JSON", "imported": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"imported": true, "count": h.store.Count()})
}
