package query

import (
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/painpoint-engine/pkg/types"
)

func boolPtr(v bool) *bool { return &v }

func rec(id, category string, sentiment float64, score int, day int) types.PainPoint {
	return types.PainPoint{
		ID:             id,
		Title:          "record " + id,
		Category:       category,
		SentimentScore: sentiment,
		Score:          score,
		Date:           time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC),
		URL:            "https://example.com/" + id,
	}
}

func defaultOpts() Options {
	return Options{SortBy: SortByDate, SortOrder: OrderDesc, Page: 1, Limit: 10}
}

func TestApplyEmptyStore(t *testing.T) {
	res, err := Apply(nil, defaultOpts())
	if err != nil {
		t.Fatal(err)
	}
	p := res.Pagination
	if p.TotalItems != 0 || p.TotalPages != 0 {
		t.Errorf("totals = %d/%d, want 0/0", p.TotalItems, p.TotalPages)
	}
	if p.HasNext || p.HasPrev {
		t.Errorf("hasNext=%v hasPrev=%v, want false/false", p.HasNext, p.HasPrev)
	}
	if res.Data == nil || len(res.Data) != 0 {
		t.Errorf("data = %v, want empty non-nil slice", res.Data)
	}
}

func TestApplyLimitValidation(t *testing.T) {
	for _, limit := range []int{0, -5} {
		opts := defaultOpts()
		opts.Limit = limit
		if _, err := Apply(nil, opts); err == nil {
			t.Errorf("limit=%d: expected error", limit)
		}
	}

	opts := defaultOpts()
	opts.Page = 0
	if _, err := Apply(nil, opts); err == nil {
		t.Error("page=0: expected error")
	}
}

func TestApplyCategoryFilter(t *testing.T) {
	records := []types.PainPoint{
		rec("a", "SaaS", -0.5, 1, 1),
		rec("b", "Technology", -0.5, 2, 2),
		rec("c", "SaaS", -0.5, 3, 3),
	}

	tests := []struct {
		category string
		want     int
	}{
		{"SaaS", 2},
		{"Technology", 1},
		{"all", 3},
		{"", 3},
		{"Marketing", 0},
	}
	for _, tt := range tests {
		opts := defaultOpts()
		opts.Category = tt.category
		res, err := Apply(records, opts)
		if err != nil {
			t.Fatal(err)
		}
		if len(res.Data) != tt.want {
			t.Errorf("category %q: got %d records, want %d", tt.category, len(res.Data), tt.want)
		}
	}
}

func TestApplyLikedFilterSelectsExplicitStates(t *testing.T) {
	liked := rec("liked", "SaaS", -0.5, 1, 1)
	liked.IsLiked = boolPtr(true)
	liked.IsUnliked = boolPtr(false)

	unliked := rec("unliked", "SaaS", -0.5, 2, 2)
	unliked.IsLiked = boolPtr(false)
	unliked.IsUnliked = boolPtr(true)

	unset := rec("unset", "SaaS", -0.5, 3, 3)

	records := []types.PainPoint{liked, unliked, unset}

	opts := defaultOpts()
	opts.Liked = LikedTrue
	res, err := Apply(records, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Data) != 1 || res.Data[0].ID != "liked" {
		t.Errorf("liked=true selected %v, want only the liked record", ids(res))
	}

	// "false" means explicitly unliked, not "not liked": the unset
	// record must not appear.
	opts.Liked = LikedFalse
	res, err = Apply(records, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Data) != 1 || res.Data[0].ID != "unliked" {
		t.Errorf("liked=false selected %v, want only the unliked record", ids(res))
	}

	opts.Liked = ""
	res, err = Apply(records, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Data) != 3 {
		t.Errorf("no liked filter selected %d records, want 3", len(res.Data))
	}
}

func TestApplySortKeys(t *testing.T) {
	records := []types.PainPoint{
		rec("a", "SaaS", -0.9, 30, 3),
		rec("b", "SaaS", -0.1, 10, 1),
		rec("c", "SaaS", -0.5, 20, 2),
	}

	tests := []struct {
		name  string
		by    string
		order string
		want  []string
	}{
		{"date asc", SortByDate, OrderAsc, []string{"b", "c", "a"}},
		{"date desc", SortByDate, OrderDesc, []string{"a", "c", "b"}},
		{"sentiment asc", SortBySentiment, OrderAsc, []string{"a", "c", "b"}},
		{"sentiment desc", SortBySentiment, OrderDesc, []string{"b", "c", "a"}},
		{"score asc", SortByScore, OrderAsc, []string{"b", "c", "a"}},
		{"score desc", SortByScore, OrderDesc, []string{"a", "c", "b"}},
		{"unknown key falls back to date", "bogus", OrderAsc, []string{"b", "c", "a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := defaultOpts()
			opts.SortBy = tt.by
			opts.SortOrder = tt.order
			res, err := Apply(records, opts)
			if err != nil {
				t.Fatal(err)
			}
			got := ids(res)
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("order = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyDoesNotReorderInput(t *testing.T) {
	records := []types.PainPoint{
		rec("a", "SaaS", -0.9, 30, 3),
		rec("b", "SaaS", -0.1, 10, 1),
	}
	opts := defaultOpts()
	opts.SortBy = SortByScore
	opts.SortOrder = OrderAsc
	if _, err := Apply(records, opts); err != nil {
		t.Fatal(err)
	}
	if records[0].ID != "a" || records[1].ID != "b" {
		t.Errorf("input slice reordered: %s, %s", records[0].ID, records[1].ID)
	}
}

func TestApplyPagination(t *testing.T) {
	var records []types.PainPoint
	for day := 1; day <= 7; day++ {
		records = append(records, rec(string(rune('a'+day-1)), "SaaS", -0.5, day, day))
	}

	opts := defaultOpts()
	opts.Limit = 3
	opts.Page = 2
	res, err := Apply(records, opts)
	if err != nil {
		t.Fatal(err)
	}
	p := res.Pagination
	if p.TotalItems != 7 || p.TotalPages != 3 {
		t.Errorf("totals = %d/%d, want 7/3", p.TotalItems, p.TotalPages)
	}
	if !p.HasNext || !p.HasPrev {
		t.Errorf("hasNext=%v hasPrev=%v, want true/true", p.HasNext, p.HasPrev)
	}
	if len(res.Data) != 3 {
		t.Errorf("page length = %d, want 3", len(res.Data))
	}

	// Page past the end: empty slice, hasNext false.
	opts.Page = 9
	res, err = Apply(records, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Data) != 0 {
		t.Errorf("page 9 returned %d records, want 0", len(res.Data))
	}
	if res.Pagination.HasNext {
		t.Error("page past the end reports hasNext=true")
	}
	if !res.Pagination.HasPrev {
		t.Error("page past the end should report hasPrev=true")
	}
}

// Seven records, three SaaS: a category page smaller than the limit fits
// on one page, sorted by external score.
func TestApplySaaSScenario(t *testing.T) {
	records := []types.PainPoint{
		rec("s1", "SaaS", -0.2, 40, 1),
		rec("t1", "Technology", -0.3, 90, 2),
		rec("s2", "SaaS", -0.4, 70, 3),
		rec("m1", "Marketing", -0.5, 15, 4),
		rec("s3", "SaaS", -0.6, 55, 5),
		rec("t2", "Technology", -0.7, 25, 6),
		rec("e1", "E-commerce", -0.8, 60, 7),
	}

	res, err := Apply(records, Options{
		Category:  "SaaS",
		SortBy:    SortByScore,
		SortOrder: OrderDesc,
		Page:      1,
		Limit:     5,
	})
	if err != nil {
		t.Fatal(err)
	}

	got := ids(res)
	want := []string{"s2", "s3", "s1"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("order = %v, want %v", got, want)
	}
	if res.Pagination.TotalPages != 1 {
		t.Errorf("totalPages = %d, want 1", res.Pagination.TotalPages)
	}
}

func ids(res Result) []string {
	out := make([]string, len(res.Data))
	for i, r := range res.Data {
		out[i] = r.ID
	}
	return out
}
