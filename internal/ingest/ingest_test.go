package ingest

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pdiddy/painpoint-engine/internal/classify"
	"github.com/pdiddy/painpoint-engine/internal/store"
	"github.com/pdiddy/painpoint-engine/pkg/types"
)

// stubSource returns a fixed post list, ignoring channels and cutoff.
type stubSource struct {
	posts []types.RawPost
	err   error
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) Fetch(_ context.Context, _ []string, _ time.Time) ([]types.RawPost, error) {
	return s.posts, s.err
}

func testPosts() []types.RawPost {
	return []types.RawPost{
		{
			Title:   "Frustrated with broken invoicing software",
			Body:    "The totals are wrong every month and support ignores us.",
			URL:     "https://example.com/posts/1",
			Channel: "smallbusiness",
			Score:   12,
			Date:    time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			// Positive: rejected by the sentiment gate.
			Title:   "This accounting app is excellent",
			Body:    "Setup took ten minutes and it works great.",
			URL:     "https://example.com/posts/2",
			Channel: "smallbusiness",
			Score:   40,
			Date:    time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			// No business keyword: rejected by the relevance gate.
			Title:   "Frustrated with the terrible weather",
			Body:    "Rain again.",
			URL:     "https://example.com/posts/3",
			Channel: "smallbusiness",
			Score:   5,
			Date:    time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC),
		},
	}
}

func newTestPipeline(t *testing.T, src *stubSource) (*Pipeline, *store.Service) {
	t.Helper()
	lex := classify.DefaultLexicon()
	svc := store.NewService(
		store.NewFileStore(filepath.Join(t.TempDir(), "pain_points.json")),
		lex.CategoryLabels(),
	)
	return New(src, classify.New(lex), svc, zap.NewNop().Sugar()), svc
}

func TestRunKeepsOnlyPainPoints(t *testing.T) {
	p, svc := newTestPipeline(t, &stubSource{posts: testPosts()})

	res, err := p.Run(context.Background(), []string{"smallbusiness"}, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Found)
	assert.Equal(t, 1, res.Total)

	records, err := svc.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, "https://example.com/posts/1", r.URL)
	assert.Equal(t, "Frustrated with broken invoicing software", r.Title)
	assert.Contains(t, r.Text, "support ignores us")
	assert.Negative(t, r.SentimentScore)
	assert.Contains(t, r.BusinessKeywords, "software")
	assert.Equal(t, "r/smallbusiness", r.Source)
	assert.Equal(t, 12, r.Score)
	assert.Nil(t, r.IsLiked)
	assert.Nil(t, r.IsUnliked)
	assert.Contains(t, r.ID, "smallbusiness_")
}

func TestRunDeduplicatesAcrossRuns(t *testing.T) {
	p, _ := newTestPipeline(t, &stubSource{posts: testPosts()})
	ctx := context.Background()

	first, err := p.Run(ctx, []string{"smallbusiness"}, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Found)

	// Same URLs again: nothing new, total unchanged.
	second, err := p.Run(ctx, []string{"smallbusiness"}, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 0, second.Found)
	assert.Equal(t, first.Total, second.Total)
}

func TestRunSourceErrorAborts(t *testing.T) {
	p, svc := newTestPipeline(t, &stubSource{err: errors.New("listing unavailable")})

	_, err := p.Run(context.Background(), []string{"smallbusiness"}, time.Time{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetching candidates")

	records, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}
