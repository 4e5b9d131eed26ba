package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/codecraft-labs/codecraft-backend/internal/models"
)

// ExportFilePrefix names the product in exported contribution files.
const ExportFilePrefix = "codecraft-contributions"

// Export serializes the entire current map as pretty-printed JSON and
// returns it with the dated download filename. It mutates nothing.
func (s *ContributionStore) Export() ([]byte, string, error) {
	s.mu.Lock()
	snap := s.snapshot()
	now := s.now()
	s.mu.Unlock()

	doc, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("%s-%s.json", ExportFilePrefix, now.Format("2006-01-02"))
	return doc, filename, nil
}

// Import merges a previously exported document into the store. Malformed
// JSON returns (false, nil) and changes nothing. On success every
// imported id fully replaces any local entry at that id, edit history
// included; ids present only locally are preserved. The merge is
// deliberately not conflict-aware: stale imports silently win.
func (s *ContributionStore) Import(ctx context.Context, doc []byte) (bool, error) {
	var imported map[string]models.Contribution
	if err := json.Unmarshal(doc, &imported); err != nil {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snapshot()
	for id, c := range imported {
		next[id] = c
	}
	if err := s.persist(ctx, next); err != nil {
		return false, err
	}
	return true, nil
}
