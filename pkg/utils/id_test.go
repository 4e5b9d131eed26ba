package utils

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateContributionID_Prefix(t *testing.T) {
	id := GenerateContributionID()
	assert.True(t, strings.HasPrefix(id, ContributionIDPrefix))
}

func TestGenerateContributionID_Distinct(t *testing.T) {
	const n = 1000

	ids := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- GenerateContributionID()
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}
