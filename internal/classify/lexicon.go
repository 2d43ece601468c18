// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify turns raw post text into heuristic signals: a bounded
// sentiment score, matched business keywords, a category label, and a
// yes/no pain-point gate.
package classify

// CategoryKeywords associates a category label with the keywords that vote
// for it. Declaration order matters: earlier categories win count ties.
type CategoryKeywords struct {
	Label    string
	Keywords []string
}

// Lexicon is the immutable keyword configuration the classifier runs on.
// All matching is done against lower-cased text; every entry here must be
// lower-case.
type Lexicon struct {
	// Sentiment tiers. Token-exact matches, weighted per tier.
	StrongPositive   []string // +2 per token
	Positive         []string // +1 per token
	MildNegative     []string // -0.5 per token
	ModerateNegative []string // -1 per token
	StrongNegative   []string // -2 per token

	// UnmetNeedPhrases are scanned against the whole text; each phrase
	// present subtracts 1 from the raw score, regardless of repeats.
	UnmetNeedPhrases []string

	// BusinessVocabulary is matched as substrings, in slice order.
	BusinessVocabulary []string

	// Categories are evaluated in slice order for keyword-overlap voting.
	Categories []CategoryKeywords

	// DefaultCategory is returned when no category keyword matches.
	DefaultCategory string

	// PainIndicators are the phrases at least one of which must appear
	// for a negative, business-relevant text to count as a pain point.
	PainIndicators []string
}

// CategoryLabels returns the category vocabulary in declaration order,
// ending with the default label if it is not already listed.
func (l Lexicon) CategoryLabels() []string {
	labels := make([]string, 0, len(l.Categories)+1)
	seen := false
	for _, c := range l.Categories {
		labels = append(labels, c.Label)
		if c.Label == l.DefaultCategory {
			seen = true
		}
	}
	if !seen && l.DefaultCategory != "" {
		labels = append(labels, l.DefaultCategory)
	}
	return labels
}

// DefaultLexicon returns the built-in vocabulary tuned for business
// pain-point mining.
func DefaultLexicon() Lexicon {
	return Lexicon{
		StrongPositive: []string{
			"excellent", "amazing", "love", "perfect", "awesome",
			"fantastic", "incredible", "outstanding",
		},
		Positive: []string{
			"good", "great", "nice", "helpful", "useful", "happy",
			"solid", "decent",
		},
		MildNegative: []string{
			"annoying", "slow", "confusing", "expensive", "clunky",
			"limited", "lacking", "meh",
		},
		ModerateNegative: []string{
			"bad", "disappointed", "frustrated", "frustrating", "annoyed",
			"broken", "useless", "poor", "buggy",
		},
		StrongNegative: []string{
			"terrible", "awful", "hate", "worst", "horrible",
			"garbage", "unusable", "nightmare",
		},
		UnmetNeedPhrases: []string{
			"wish there was", "need something that", "looking for",
			"cant find", "doesnt exist", "why isnt there",
			"someone should make",
		},
		BusinessVocabulary: []string{
			"product", "service", "company", "app", "software", "store",
			"feature", "customer support", "subscription", "update", "bug",
			"price", "website", "platform", "tool", "business", "startup",
			"entrepreneur", "market", "customer", "user experience",
			"interface", "payment", "billing", "saas", "api", "dashboard",
			"analytics", "crm", "automation",
		},
		Categories: []CategoryKeywords{
			{Label: "Technology", Keywords: []string{
				"software", "app", "api", "website", "platform", "tool",
				"bug", "interface", "update",
			}},
			{Label: "E-commerce", Keywords: []string{
				"store", "payment", "billing", "price", "checkout",
				"shipping", "ecommerce",
			}},
			{Label: "Customer Service", Keywords: []string{
				"customer support", "customer", "support", "service",
				"refund", "complaint",
			}},
			{Label: "SaaS", Keywords: []string{
				"saas", "subscription", "dashboard", "crm", "automation",
				"analytics", "integration",
			}},
			{Label: "Marketing", Keywords: []string{
				"marketing", "market", "advertising", "seo", "campaign",
				"audience", "brand",
			}},
			{Label: "General Business", Keywords: []string{
				"business", "startup", "entrepreneur", "company",
				"revenue", "growth",
			}},
		},
		DefaultCategory: "General Business",
		PainIndicators: []string{
			"frustrated", "annoyed", "disappointed", "terrible", "awful",
			"broken", "doesnt work", "wish there was", "need something",
			"looking for", "cant find", "problem with", "issue with",
			"hate it when",
		},
	}
}
