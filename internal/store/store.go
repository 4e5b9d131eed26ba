package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/codecraft-labs/codecraft-backend/internal/backing"
	"github.com/codecraft-labs/codecraft-backend/internal/models"
	"github.com/codecraft-labs/codecraft-backend/pkg/logger"
	"github.com/codecraft-labs/codecraft-backend/pkg/utils"
)

// ContributionStore owns the authoritative map of user contributions.
// Every operation is an atomic read-modify-write: the in-memory map and
// the backing store's single key are never observably inconsistent from
// within this process. Cross-process writers race last-writer-wins; that
// is accepted, not guarded.
type ContributionStore struct {
	mu            sync.Mutex
	contributions map[string]models.Contribution

	backing backing.Store
	key     string
	now     func() time.Time
}

// Option tweaks store construction.
type Option func(*ContributionStore)

// WithClock overrides the timestamp source. Tests use it to pin dates.
func WithClock(now func() time.Time) Option {
	return func(s *ContributionStore) { s.now = now }
}

// New loads the persisted contribution document from the backing store.
// An absent key or a malformed document both yield an empty store: parse
// failures are logged and swallowed, never surfaced to the caller.
func New(ctx context.Context, b backing.Store, key string, opts ...Option) *ContributionStore {
	s := &ContributionStore{
		contributions: make(map[string]models.Contribution),
		backing:       b,
		key:           key,
		now:           func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}

	data, err := b.Get(ctx, key)
	switch {
	case errors.Is(err, backing.ErrNotFound):
		// First run, nothing persisted yet.
	case err != nil:
		logger.Warn().Err(err).Str("key", key).Msg("Failed to read contribution document, starting empty")
	default:
		var loaded map[string]models.Contribution
		if err := json.Unmarshal(data, &loaded); err != nil {
			logger.Warn().Err(err).Str("key", key).Msg("Contribution document malformed, starting empty")
		} else {
			s.contributions = loaded
			if s.contributions == nil {
				s.contributions = make(map[string]models.Contribution)
			}
		}
	}

	return s
}

// persist serializes newMap to the backing key, then swaps the in-memory
// reference. Callers must hold s.mu. Write failures propagate without
// touching in-memory state.
func (s *ContributionStore) persist(ctx context.Context, newMap map[string]models.Contribution) error {
	data, err := json.Marshal(newMap)
	if err != nil {
		return err
	}
	if err := s.backing.Set(ctx, s.key, data); err != nil {
		return err
	}
	s.contributions = newMap
	return nil
}

// snapshot copies the current map. Callers must hold s.mu.
func (s *ContributionStore) snapshot() map[string]models.Contribution {
	out := make(map[string]models.Contribution, len(s.contributions))
	for id, c := range s.contributions {
		out[id] = c
	}
	return out
}

// AddTopic creates a new contribution under a freshly generated id and
// persists it. The payload is trusted as-is; validation is the caller's
// responsibility.
func (s *ContributionStore) AddTopic(ctx context.Context, data models.TopicData, email, name string) (models.Contribution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contrib := models.NewAddedContribution(utils.GenerateContributionID(), data, email, name, s.now())

	next := s.snapshot()
	next[contrib.ID] = contrib
	if err := s.persist(ctx, next); err != nil {
		return models.Contribution{}, err
	}
	return contrib, nil
}

// EditTopic upserts an override at id. Whatever sat there before is fully
// replaced at the top level, except its edit history, which is preserved
// and extended by one entry. The id may be unknown to the store: the
// first edit of a built-in topic looks exactly like any other edit.
func (s *ContributionStore) EditTopic(ctx context.Context, id string, data models.TopicData, email, name string) (models.Contribution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var prior *models.Contribution
	if existing, ok := s.contributions[id]; ok {
		prior = &existing
	}
	contrib := models.NewEditedContribution(id, data, email, name, s.now(), prior)

	next := s.snapshot()
	next[id] = contrib
	if err := s.persist(ctx, next); err != nil {
		return models.Contribution{}, err
	}
	return contrib, nil
}

// Get returns the contribution at id, if any.
func (s *ContributionStore) Get(id string) (models.Contribution, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.contributions[id]
	return c, ok
}

// All returns every contribution. Order is unspecified.
func (s *ContributionStore) All() []models.Contribution {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Contribution, 0, len(s.contributions))
	for _, c := range s.contributions {
		out = append(out, c)
	}
	return out
}

// ByUser returns contributions the given email either originally added or
// most recently edited. Historical authorship counts: a topic added by A
// and edited by B shows up for both.
func (s *ContributionStore) ByUser(email string) []models.Contribution {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Contribution
	for _, c := range s.contributions {
		if c.AuthoredBy(email) {
			out = append(out, c)
		}
	}
	return out
}

// Delete removes the contribution at id and persists. Deleting an absent
// id is a no-op that still rewrites the document, so it is idempotent.
func (s *ContributionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snapshot()
	delete(next, id)
	return s.persist(ctx, next)
}

// Count returns the number of contributions.
func (s *ContributionStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.contributions)
}
