package contextmgr

import (
	"math"
	"strings"
	"unicode"

	"github.com/offgrid-ops/commandcenter/pkg/config"
)

// confidenceEpsilon keeps the confidence ratio defined when only one class
// scores.
const confidenceEpsilon = 1e-9

// Classifier scores queries against configured keyword tables.
type Classifier struct {
	cfg config.ClassifierConfig
}

// NewClassifier creates a classifier from the loaded keyword tables.
func NewClassifier(cfg config.ClassifierConfig) *Classifier {
	return &Classifier{cfg: cfg}
}

// Classify assigns a query type and a confidence in [0,1].
//
// Override rules run first. Otherwise each class scores the sum of weights
// of its matching keywords, normalized by the square root of the query's
// token count; ties break in the fixed order SYSTEM, PLANNING, RESEARCH,
// GENERAL. Confidence is top/(top+second+ε). Queries with no matches at
// all, including empty and punctuation-only queries, fall back to GENERAL
// with confidence 0.
func (c *Classifier) Classify(query string) (config.QueryType, float64) {
	normalized := normalizeQuery(query)
	tokens := tokenize(normalized)
	if len(tokens) == 0 {
		return config.QueryTypeGeneral, 0
	}

	for _, rule := range c.cfg.Overrides {
		if overrideMatches(rule, normalized) {
			return rule.Type, 1.0
		}
	}

	norm := math.Sqrt(float64(len(tokens)))
	tokenSet := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		tokenSet[t] = true
	}

	scores := make(map[config.QueryType]float64, len(c.cfg.Classes))
	for _, class := range c.cfg.Classes {
		var score float64
		for _, kw := range class.Keywords {
			if matchesKeyword(normalized, tokenSet, kw.Phrase) {
				score += kw.Weight
			}
		}
		scores[class.Type] = score / norm
	}

	var top, second float64
	best := config.QueryTypeGeneral
	for _, qt := range config.TieBreakOrder {
		s := scores[qt]
		if s > top {
			second = top
			top = s
			best = qt
		} else if s > second {
			second = s
		}
	}

	if top == 0 {
		return config.QueryTypeGeneral, 0
	}

	return best, top / (top + second + confidenceEpsilon)
}

// IsKBFastPath reports whether the query should bypass LLM routing and go
// straight to knowledge-base search.
func (c *Classifier) IsKBFastPath(query string) bool {
	normalized := normalizeQuery(query)
	for _, fragment := range c.cfg.KBFastPath {
		if strings.Contains(normalized, fragment) {
			return true
		}
	}
	return false
}

// IsOffTopic reports whether the query is about the system itself rather
// than the installation, so the manager answers directly without tools.
func (c *Classifier) IsOffTopic(query string) bool {
	normalized := normalizeQuery(query)
	for _, fragment := range c.cfg.OffTopic {
		if strings.Contains(normalized, fragment) {
			return true
		}
	}
	return false
}

func overrideMatches(rule config.OverrideRule, normalized string) bool {
	for _, prefix := range rule.Prefixes {
		if strings.HasPrefix(normalized, prefix) {
			return true
		}
	}
	for _, fragment := range rule.Contains {
		if strings.Contains(normalized, fragment) {
			return true
		}
	}
	return false
}

// normalizeQuery lowercases and collapses whitespace runs. The same
// normalization feeds classification and cache-key fingerprints.
func normalizeQuery(query string) string {
	return strings.Join(strings.Fields(strings.ToLower(query)), " ")
}

// tokenize splits on non-word boundaries.
func tokenize(normalized string) []string {
	return strings.FieldsFunc(normalized, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// matchesKeyword checks a phrase as a substring and a single token against
// the token set, so "soc" does not match inside "society".
func matchesKeyword(normalized string, tokenSet map[string]bool, phrase string) bool {
	if strings.ContainsRune(phrase, ' ') {
		return strings.Contains(normalized, phrase)
	}
	return tokenSet[phrase]
}
