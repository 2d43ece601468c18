// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/pdiddy/painpoint-engine/pkg/types"
)

// fixtureTake caps how many posts a single Fetch draws from the pool.
const fixtureTake = 12

// Fixture serves a shuffled subset of a built-in sample pool. Every call
// re-shuffles, so repeated calls with identical arguments return different
// subsets. Pass a fixed seed for deterministic output in tests.
type Fixture struct {
	mu   sync.Mutex
	rng  *rand.Rand
	pool []types.RawPost
}

// NewFixture builds a fixture source. A zero seed seeds from the clock.
func NewFixture(seed int64) *Fixture {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Fixture{
		rng:  rand.New(rand.NewSource(seed)),
		pool: samplePool,
	}
}

// Name returns the backend name.
func (f *Fixture) Name() string { return "fixture" }

// Fetch shuffles the pool, takes up to 12 posts, and keeps those matching
// a requested channel and dated at or after since. Output order follows
// the shuffle, not the pool declaration.
func (f *Fixture) Fetch(_ context.Context, channels []string, since time.Time) ([]types.RawPost, error) {
	f.mu.Lock()
	shuffled := make([]types.RawPost, len(f.pool))
	copy(shuffled, f.pool)
	f.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	f.mu.Unlock()

	if len(shuffled) > fixtureTake {
		shuffled = shuffled[:fixtureTake]
	}

	var out []types.RawPost
	for _, post := range shuffled {
		if !matchesChannel(post.Channel, channels) {
			continue
		}
		if !since.IsZero() && post.Date.Before(since) {
			continue
		}
		out = append(out, post)
	}
	return out, nil
}

// samplePool is the fixed candidate pool. Dates are fixed so the
// since-date cutoff is exercisable; a handful of entries are deliberately
// positive or neutral so the pain-point gate has something to reject.
var samplePool = []types.RawPost{
	{
		Title:   "Frustrated with customer support software that doesnt work",
		Body:    "I run a small business and the customer support platform we use is terrible. It crashes constantly and loses chat history. Customers get frustrated and we look unprofessional.",
		URL:     "https://reddit.com/r/entrepreneur/comments/1k2f8ax",
		Channel: "entrepreneur",
		Score:   45,
		Date:    time.Date(2025, 4, 18, 14, 30, 0, 0, time.UTC),
	},
	{
		Title:   "Wish there was a better project management tool",
		Body:    "All the existing project management apps are either too complex or too simple. I need something that works for a team of five without being overwhelming.",
		URL:     "https://reddit.com/r/smallbusiness/comments/1j9d2mq",
		Channel: "smallbusiness",
		Score:   32,
		Date:    time.Date(2025, 3, 2, 9, 15, 0, 0, time.UTC),
	},
	{
		Title:   "Problem with payment processing fees",
		Body:    "These payment processors are killing small businesses with their fees. The billing dashboard is confusing and the rates are terrible for a bootstrapped startup.",
		URL:     "https://reddit.com/r/startups/comments/1hq77zt",
		Channel: "startups",
		Score:   67,
		Date:    time.Date(2025, 1, 12, 19, 5, 0, 0, time.UTC),
	},
	{
		Title:   "Bad experience with website builders",
		Body:    "Tried five different website builders and they all have major limitations. Either the templates look generic or the checkout customization is locked behind an expensive plan. Honestly disappointed.",
		URL:     "https://reddit.com/r/ecommerce/comments/1iw4k0d",
		Channel: "ecommerce",
		Score:   28,
		Date:    time.Date(2025, 2, 21, 7, 45, 0, 0, time.UTC),
	},
	{
		Title:   "Why isnt there a simple CRM for tiny teams",
		Body:    "Every crm I try is bloated and expensive. The dashboards are confusing and the onboarding is awful. I just need something that tracks leads without a week of setup.",
		URL:     "https://reddit.com/r/SaaS/comments/1kfz3b1",
		Channel: "SaaS",
		Score:   54,
		Date:    time.Date(2025, 5, 6, 16, 0, 0, 0, time.UTC),
	},
	{
		Title:   "Hosting platform keeps failing our deploys",
		Body:    "Our hosting platform pushed an update and now half our builds fail. The status page says everything is fine. A support ticket has been open for nine days and the silence is awful.",
		URL:     "https://reddit.com/r/webdev/comments/1jtt6re",
		Channel: "webdev",
		Score:   88,
		Date:    time.Date(2025, 4, 2, 11, 20, 0, 0, time.UTC),
	},
	{
		Title:   "Annoyed by analytics tools that hide basic reports",
		Body:    "The analytics platform we pay for locks funnel reports behind an enterprise plan. The pricing is confusing and the interface feels broken on mobile.",
		URL:     "https://reddit.com/r/marketing/comments/1ia9v5c",
		Channel: "marketing",
		Score:   41,
		Date:    time.Date(2025, 2, 3, 22, 10, 0, 0, time.UTC),
	},
	{
		Title:   "Cant find an invoicing app that handles multiple currencies",
		Body:    "I send invoices in three currencies and every app I try rounds taxes differently. Accountants hate it when the totals drift. Looking for something simple.",
		URL:     "https://reddit.com/r/entrepreneur/comments/1hkp9s2",
		Channel: "entrepreneur",
		Score:   23,
		Date:    time.Date(2024, 12, 14, 8, 55, 0, 0, time.UTC),
	},
	{
		Title:   "Subscription billing issue with our payment provider",
		Body:    "Customers get double charged at renewal and support keeps closing the ticket. This bug has cost us real revenue and left me frustrated with the whole saas setup.",
		URL:     "https://reddit.com/r/SaaS/comments/1ivn2xx",
		Channel: "SaaS",
		Score:   73,
		Date:    time.Date(2025, 3, 27, 13, 40, 0, 0, time.UTC),
	},
	{
		Title:   "Shipping rates api returns broken data",
		Body:    "Half the quotes from the shipping api are wrong and checkout abandonment is up. The vendor says it doesnt exist in their logs. Terrible week for the store.",
		URL:     "https://reddit.com/r/ecommerce/comments/1jb8c7f",
		Channel: "ecommerce",
		Score:   36,
		Date:    time.Date(2025, 4, 29, 18, 25, 0, 0, time.UTC),
	},
	{
		Title:   "Disappointed with our new website platform",
		Body:    "Migrated the company website last month and now the editor is slow and clunky beyond belief. The migration tool also corrupted half our posts.",
		URL:     "https://reddit.com/r/entrepreneur/comments/1k8mm4h",
		Channel: "entrepreneur",
		Score:   19,
		Date:    time.Date(2025, 5, 11, 6, 30, 0, 0, time.UTC),
	},
	{
		Title:   "Need something that automates investor updates",
		Body:    "I spend every Friday pasting metrics into emails. Looking for automation that pulls from our dashboard, but everything I find is enterprise priced.",
		URL:     "https://reddit.com/r/startups/comments/1iyy1pa",
		Channel: "startups",
		Score:   58,
		Date:    time.Date(2025, 1, 30, 15, 50, 0, 0, time.UTC),
	},
	{
		Title:   "Our launch went great thanks to this community",
		Body:    "The feedback on our product launch was amazing and the community support was excellent. Happy to answer questions about what worked.",
		URL:     "https://reddit.com/r/startups/comments/1jcd0e9",
		Channel: "startups",
		Score:   112,
		Date:    time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC),
	},
	{
		Title:   "What stack are you using in 2025",
		Body:    "Curious what frameworks and databases people reach for on new projects this year.",
		URL:     "https://reddit.com/r/webdev/comments/1hy5r3k",
		Channel: "webdev",
		Score:   95,
		Date:    time.Date(2025, 1, 2, 10, 10, 0, 0, time.UTC),
	},
	{
		Title:   "Looking for a good accountant in Austin",
		Body:    "Small operation, nothing fancy. Recommendations welcome.",
		URL:     "https://reddit.com/r/smallbusiness/comments/1ign8wl",
		Channel: "smallbusiness",
		Score:   7,
		Date:    time.Date(2025, 2, 9, 20, 35, 0, 0, time.UTC),
	},
	{
		Title:   "Monthly wins thread",
		Body:    "Share what worked for your campaigns this month.",
		URL:     "https://reddit.com/r/marketing/comments/1j0q6td",
		Channel: "marketing",
		Score:   14,
		Date:    time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
	},
}
