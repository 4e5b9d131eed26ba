package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codecraft-labs/codecraft-backend/internal/catalog"
	"github.com/codecraft-labs/codecraft-backend/internal/models"
)

func builtinCatalog() *catalog.Catalog {
	return catalog.New([]models.Topic{
		{ID: "t1", Title: "Variables", SectionKey: "basics", CourseKey: "go-fundamentals"},
		{ID: "t2", Title: "Slices", SectionKey: "collections", CourseKey: "go-fundamentals"},
	})
}

func TestListTopics_MergesContributions(t *testing.T) {
	s := SetupTestStore()
	h := NewTopicHandler(builtinCatalog(), s)

	_, err := s.EditTopic(context.Background(), "t1", models.TopicData{Title: "Variables, improved"}, "a@x.com", "A")
	require.NoError(t, err)
	added, err := s.AddTopic(context.Background(), models.TopicData{Title: "Brand new"}, "a@x.com", "A")
	require.NoError(t, err)

	c, w := testContext(t, "GET", "/api/topics", nil)
	h.ListTopics(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Topics []models.MergedTopic `json:"topics"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Topics, 3)

	assert.Equal(t, "Variables, improved", response.Topics[0].Title)
	assert.True(t, response.Topics[0].IsUserContribution)
	assert.Equal(t, "Slices", response.Topics[1].Title)
	assert.False(t, response.Topics[1].IsUserContribution)
	assert.Equal(t, added.ID, response.Topics[2].ID)
}

func TestGetTopic_ContributionOverridesBuiltin(t *testing.T) {
	s := SetupTestStore()
	h := NewTopicHandler(builtinCatalog(), s)

	_, err := s.EditTopic(context.Background(), "t2", models.TopicData{Title: "Slices, rewritten"}, "a@x.com", "A")
	require.NoError(t, err)

	c, w := testContext(t, "GET", "/api/topics/t2", nil)
	c.Params = gin.Params{{Key: "id", Value: "t2"}}
	h.GetTopic(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Topic models.MergedTopic `json:"topic"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Slices, rewritten", response.Topic.Title)
	assert.True(t, response.Topic.IsUserContribution)
}

func TestGetTopic_BuiltinFallback(t *testing.T) {
	h := NewTopicHandler(builtinCatalog(), SetupTestStore())

	c, w := testContext(t, "GET", "/api/topics/t1", nil)
	c.Params = gin.Params{{Key: "id", Value: "t1"}}
	h.GetTopic(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Topic models.MergedTopic `json:"topic"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Variables", response.Topic.Title)
	assert.False(t, response.Topic.IsUserContribution)
}

func TestGetTopic_NotFound(t *testing.T) {
	h := NewTopicHandler(builtinCatalog(), SetupTestStore())

	c, w := testContext(t, "GET", "/api/topics/nope", nil)
	c.Params = gin.Params{{Key: "id", Value: "nope"}}
	h.GetTopic(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListSections(t *testing.T) {
	h := NewTopicHandler(builtinCatalog(), SetupTestStore())

	c, w := testContext(t, "GET", "/api/sections", nil)
	h.ListSections(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Sections []models.Section `json:"sections"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Sections, 2)
}
