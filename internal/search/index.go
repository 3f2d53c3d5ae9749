// Package search implements the free-text catalog search: a lightweight
// token-overlap scorer over scheme fields, independent of the profile
// matcher. Like the matcher it is pure and stateless; the catalog is
// supplied per call.
package search

import (
	"regexp"
	"sort"
	"strings"

	"github.com/Prajwalng2/Major-Project-temp/models"
)

// Filters narrow the catalog before any scoring happens. Category and
// State match case-insensitively by substring or equality; Active
// partitions on the scheme's active predicate. Nil/empty values are
// ignored.
type Filters struct {
	Category string
	State    string
	Active   *bool
}

// Field weights: the title dominates, supporting fields contribute less.
const (
	titleWeight       = 2.0
	descriptionWeight = 1.0
	ministryWeight    = 0.5
	categoryWeight    = 0.8
	eligibilityWeight = 0.7
)

// minScore drops records with only incidental token overlap.
const minScore = 0.1

var nonWord = regexp.MustCompile(`[^\w\s]`)
var whitespace = regexp.MustCompile(`\s+`)

var stopWords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "but": true,
	"is": true, "are": true, "was": true, "were": true, "be": true,
	"been": true, "being": true, "in": true, "on": true, "at": true,
	"to": true, "for": true, "with": true, "by": true, "about": true,
	"against": true, "between": true, "into": true, "through": true,
	"during": true, "before": true, "after": true, "above": true,
	"below": true, "from": true, "up": true, "down": true, "of": true,
	"off": true, "over": true, "under": true, "again": true,
	"further": true, "then": true, "once": true, "here": true,
	"there": true, "when": true, "where": true, "why": true, "how": true,
	"all": true, "any": true, "both": true, "each": true, "few": true,
	"more": true, "most": true, "other": true, "some": true, "such": true,
	"no": true, "nor": true, "not": true, "only": true, "own": true,
	"same": true, "so": true, "than": true, "too": true, "very": true,
	"can": true, "will": true, "just": true, "should": true, "now": true,
}

// Tokenize lowercases the text, strips punctuation, splits on whitespace
// and drops stop words and single-character tokens.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	normalized := nonWord.ReplaceAllString(strings.ToLower(text), " ")
	normalized = strings.TrimSpace(whitespace.ReplaceAllString(normalized, " "))
	if normalized == "" {
		return nil
	}

	var tokens []string
	for _, word := range strings.Split(normalized, " ") {
		if len(word) > 1 && !stopWords[word] {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

// similarity scores a field against the query tokens: an exact token match
// counts 1.0, a prefix relationship in either direction 0.5, normalized by
// the query token count.
func similarity(queryTokens []string, text string) float64 {
	if text == "" || len(queryTokens) == 0 {
		return 0
	}
	textTokens := Tokenize(text)
	if len(textTokens) == 0 {
		return 0
	}

	exact := make(map[string]bool, len(textTokens))
	for _, t := range textTokens {
		exact[t] = true
	}

	var total float64
	for _, q := range queryTokens {
		if exact[q] {
			total += 1.0
			continue
		}
		for _, t := range textTokens {
			if strings.HasPrefix(t, q) || strings.HasPrefix(q, t) {
				total += 0.5
				break
			}
		}
	}
	return total / float64(len(queryTokens))
}

// eligibilitySurface picks the text used for the eligibility field score:
// a free-text eligibility value when present, otherwise the display text.
func eligibilitySurface(s *models.Scheme) string {
	if text, ok := s.Eligibility.(string); ok && !strings.HasPrefix(strings.TrimSpace(text), "{") {
		return text
	}
	return s.EligibilityText
}

func matchesFilters(s *models.Scheme, f Filters) bool {
	if f.Category != "" && !strings.EqualFold(f.Category, "all") {
		if !strings.Contains(strings.ToLower(s.Category), strings.ToLower(f.Category)) {
			return false
		}
	}
	if f.State != "" && !strings.EqualFold(f.State, "all") {
		if !strings.Contains(strings.ToLower(s.State), strings.ToLower(f.State)) {
			return false
		}
	}
	if f.Active != nil && s.IsActive() != *f.Active {
		return false
	}
	return true
}

// Query runs a free-text search over the catalog. Filters narrow first;
// the remaining records are scored by weighted token overlap across title,
// description, ministry, category and eligibility text, records scoring at
// or below the epsilon are dropped, and the rest are returned by score
// descending (stable on ties). An empty query skips scoring entirely and
// returns the filtered catalog with popular schemes first.
func Query(catalog []models.Scheme, query string, filters Filters) []models.Scheme {
	narrowed := make([]models.Scheme, 0, len(catalog))
	for _, s := range catalog {
		if matchesFilters(&s, filters) {
			narrowed = append(narrowed, s)
		}
	}

	queryTokens := Tokenize(query)
	if len(queryTokens) == 0 {
		sort.SliceStable(narrowed, func(i, j int) bool {
			return narrowed[i].IsPopular && !narrowed[j].IsPopular
		})
		return narrowed
	}

	type scored struct {
		scheme models.Scheme
		score  float64
	}
	results := make([]scored, 0, len(narrowed))
	for _, s := range narrowed {
		score := titleWeight*similarity(queryTokens, s.Title) +
			descriptionWeight*similarity(queryTokens, s.Description) +
			ministryWeight*similarity(queryTokens, s.Ministry) +
			categoryWeight*similarity(queryTokens, s.Category) +
			eligibilityWeight*similarity(queryTokens, eligibilitySurface(&s))
		if score > minScore {
			results = append(results, scored{s, score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	out := make([]models.Scheme, len(results))
	for i, r := range results {
		out[i] = r.scheme
	}
	return out
}
