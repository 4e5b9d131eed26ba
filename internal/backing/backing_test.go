package backing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/codecraft-labs/codecraft-backend/pkg/logger"
)

func init() {
	logger.Init("test")
}

// exerciseStore runs the backing contract shared by every implementation.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "doc", []byte(`{"a":1}`)))
	val, err := s.Get(ctx, "doc")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), val)

	// Overwrite replaces the whole value.
	require.NoError(t, s.Set(ctx, "doc", []byte(`{"b":2}`)))
	val, err = s.Get(ctx, "doc")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"b":2}`), val)

	require.NoError(t, s.Delete(ctx, "doc"))
	_, err = s.Get(ctx, "doc")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an absent key is fine.
	require.NoError(t, s.Delete(ctx, "doc"))
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	buf := []byte("original")
	require.NoError(t, s.Set(ctx, "k", buf))
	buf[0] = 'X'

	val, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), val)
}

func TestSQLStore(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	s, err := NewSQLStoreWithDB(db)
	require.NoError(t, err)

	exerciseStore(t, s)
}
