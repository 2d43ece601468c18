package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/painpoint-engine/pkg/types"
)

func newSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "pain_points.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteEmptyLoad(t *testing.T) {
	s := newSQLiteStore(t)
	records, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSQLiteRoundTrip(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	liked := testRecord("liked", "https://example.com/liked")
	liked.IsLiked = boolPtr(true)
	liked.IsUnliked = boolPtr(false)
	liked.Date = time.Date(2025, 5, 2, 8, 30, 0, 0, time.UTC)

	unset := testRecord("unset", "https://example.com/unset")
	unset.BusinessKeywords = []string{"saas", "dashboard"}

	require.NoError(t, s.Save(ctx, []types.PainPoint{liked, unset}))

	out, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, out, 2)

	// Insertion order preserved.
	assert.Equal(t, "liked", out[0].ID)
	assert.Equal(t, "unset", out[1].ID)

	require.NotNil(t, out[0].IsLiked)
	assert.True(t, *out[0].IsLiked)
	require.NotNil(t, out[0].IsUnliked)
	assert.False(t, *out[0].IsUnliked)
	assert.True(t, liked.Date.Equal(out[0].Date))

	assert.Nil(t, out[1].IsLiked)
	assert.Nil(t, out[1].IsUnliked)
	assert.Equal(t, []string{"saas", "dashboard"}, out[1].BusinessKeywords)
}

func TestSQLiteSaveReplacesContents(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, []types.PainPoint{
		testRecord("a", "https://example.com/a"),
		testRecord("b", "https://example.com/b"),
	}))
	require.NoError(t, s.Save(ctx, []types.PainPoint{
		testRecord("c", "https://example.com/c"),
	}))

	out, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "c", out[0].ID)
}

func TestSQLiteServiceIntegration(t *testing.T) {
	s := NewService(newSQLiteStore(t), defaultCategories)
	ctx := context.Background()

	added, total, err := s.Merge(ctx, []types.PainPoint{testRecord("a", "https://example.com/a")})
	require.NoError(t, err)
	assert.Equal(t, 1, added)
	assert.Equal(t, 1, total)

	rec, err := s.Apply(ctx, "a", ActionLike)
	require.NoError(t, err)
	assert.True(t, rec.Liked())

	cats, err := s.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Technology"}, cats)
}
