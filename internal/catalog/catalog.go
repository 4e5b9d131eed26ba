package catalog

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/codecraft-labs/codecraft-backend/internal/models"
	"github.com/codecraft-labs/codecraft-backend/pkg/logger"
)

// Catalog is the static set of built-in tutorial topics shipped with the
// application. It is loaded once at startup and never mutated; the
// contribution store overrides it by id at read time only.
type Catalog struct {
	topics map[string]models.Topic
	order  []string
}

// Load reads the catalog data file. A missing or malformed file yields an
// empty catalog with a warning; the contribution surface still works.
func Load(path string) *Catalog {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("Catalog data file unavailable, starting with empty catalog")
		return New(nil)
	}

	var topics []models.Topic
	if err := json.Unmarshal(data, &topics); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("Catalog data file malformed, starting with empty catalog")
		return New(nil)
	}

	logger.Info().Int("topics", len(topics)).Str("path", path).Msg("Loaded built-in catalog")
	return New(topics)
}

// New builds a catalog from a fixed topic list, keeping list order.
func New(topics []models.Topic) *Catalog {
	c := &Catalog{topics: make(map[string]models.Topic, len(topics))}
	for _, t := range topics {
		if _, seen := c.topics[t.ID]; seen {
			continue
		}
		c.topics[t.ID] = t
		c.order = append(c.order, t.ID)
	}
	return c
}

// Get returns the built-in topic at id.
func (c *Catalog) Get(id string) (models.Topic, bool) {
	t, ok := c.topics[id]
	return t, ok
}

// All returns every built-in topic in catalog order.
func (c *Catalog) All() []models.Topic {
	out := make([]models.Topic, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.topics[id])
	}
	return out
}

// Len returns the number of built-in topics.
func (c *Catalog) Len() int {
	return len(c.topics)
}

// Sections returns the distinct section/course pairs of the taxonomy,
// sorted for stable output.
func (c *Catalog) Sections() []models.Section {
	seen := make(map[models.Section]struct{})
	var out []models.Section
	for _, t := range c.topics {
		s := models.Section{SectionKey: t.SectionKey, CourseKey: t.CourseKey}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CourseKey != out[j].CourseKey {
			return out[i].CourseKey < out[j].CourseKey
		}
		return out[i].SectionKey < out[j].SectionKey
	})
	return out
}

// Merged produces the consumer-facing topic list: built-in topics in
// catalog order with contributions at the same id overriding them, then
// user-added topics appended.
func (c *Catalog) Merged(contributions []models.Contribution) []models.MergedTopic {
	overrides := make(map[string]models.Contribution, len(contributions))
	for _, contrib := range contributions {
		overrides[contrib.ID] = contrib
	}

	out := make([]models.MergedTopic, 0, len(c.order)+len(contributions))
	for _, id := range c.order {
		if contrib, ok := overrides[id]; ok {
			out = append(out, models.MergedFromContribution(contrib))
			delete(overrides, id)
			continue
		}
		out = append(out, models.MergedFromTopic(c.topics[id]))
	}

	// Remaining contributions are additions; keep their output stable.
	added := make([]models.Contribution, 0, len(overrides))
	for _, contrib := range overrides {
		added = append(added, contrib)
	}
	sort.Slice(added, func(i, j int) bool { return added[i].ID < added[j].ID })
	for _, contrib := range added {
		out = append(out, models.MergedFromContribution(contrib))
	}
	return out
}
