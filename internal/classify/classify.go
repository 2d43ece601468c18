// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import "strings"

// tier weights applied to token-exact matches.
const (
	weightStrongPositive   = 2.0
	weightPositive         = 1.0
	weightMildNegative     = -0.5
	weightModerateNegative = -1.0
	weightStrongNegative   = -2.0
)

// scoreNormalizationWindow is the word count over which a raw score is
// considered fully expressed; longer texts are divided down proportionally.
const scoreNormalizationWindow = 15.0

// Classifier applies a Lexicon to candidate text. It is stateless after
// construction and safe for concurrent use.
type Classifier struct {
	lex Lexicon

	// weights maps token to summed tier weight. The default tiers are
	// disjoint, but a token listed in several tiers accumulates all of
	// its weights.
	weights map[string]float64
}

// New builds a Classifier from the given lexicon.
func New(lex Lexicon) *Classifier {
	weights := make(map[string]float64)
	for _, tier := range []struct {
		tokens []string
		weight float64
	}{
		{lex.StrongPositive, weightStrongPositive},
		{lex.Positive, weightPositive},
		{lex.MildNegative, weightMildNegative},
		{lex.ModerateNegative, weightModerateNegative},
		{lex.StrongNegative, weightStrongNegative},
	} {
		for _, tok := range tier.tokens {
			weights[tok] += tier.weight
		}
	}
	return &Classifier{lex: lex, weights: weights}
}

// Score maps text to a sentiment value in [-1, 1]. Tokens are matched
// exactly against the weighted tiers; unmet-need phrases are matched as
// substrings of the whole text and subtract 1 each. The raw sum is
// normalized by max(wordCount/15, 1) and clamped.
func (c *Classifier) Score(text string) float64 {
	lower := strings.ToLower(text)
	words := strings.Fields(lower)
	if len(words) == 0 {
		return 0
	}

	var raw float64
	for _, w := range words {
		raw += c.weights[w]
	}
	for _, phrase := range c.lex.UnmetNeedPhrases {
		if strings.Contains(lower, phrase) {
			raw--
		}
	}

	norm := float64(len(words)) / scoreNormalizationWindow
	if norm < 1 {
		norm = 1
	}
	score := raw / norm

	if score > 1 {
		return 1
	}
	if score < -1 {
		return -1
	}
	return score
}

// Keywords returns the business vocabulary terms that occur as substrings
// of the lower-cased text, in vocabulary order. Substring matching is
// deliberate: "api" inside a longer word still counts.
func (c *Classifier) Keywords(text string) []string {
	lower := strings.ToLower(text)
	var matched []string
	for _, term := range c.lex.BusinessVocabulary {
		if strings.Contains(lower, term) {
			matched = append(matched, term)
		}
	}
	return matched
}

// Categorize assigns one category label by keyword-overlap voting. The
// category with the strictly highest keyword count wins; on ties the
// earlier-declared category is kept. With no matches at all the default
// category is returned.
func (c *Classifier) Categorize(text string) string {
	lower := strings.ToLower(text)

	best := c.lex.DefaultCategory
	bestCount := 0
	for _, cat := range c.lex.Categories {
		count := 0
		for _, kw := range cat.Keywords {
			if strings.Contains(lower, kw) {
				count++
			}
		}
		if count > bestCount {
			best = cat.Label
			bestCount = count
		}
	}
	return best
}

// IsPainPoint reports whether text qualifies as a business pain point:
// the sentiment must be below -0.1, at least one business keyword must be
// present, and at least one pain-indicator phrase must appear in the text.
func (c *Classifier) IsPainPoint(text string, sentimentScore float64) bool {
	if sentimentScore >= -0.1 {
		return false
	}
	if len(c.Keywords(text)) == 0 {
		return false
	}
	lower := strings.ToLower(text)
	for _, phrase := range c.lex.PainIndicators {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
