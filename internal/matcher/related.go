package matcher

import (
	"regexp"
	"sort"
	"strings"

	"github.com/Prajwalng2/Major-Project-temp/models"
)

var wordSplitter = regexp.MustCompile(`\W+`)

// Related returns up to limit schemes most similar to the current one,
// scored by shared category, shared ministry, tag overlap and word overlap
// in title and description. Used for the "you may also be interested in"
// strip on a scheme's detail page; the weights are soft heuristics, not
// eligibility.
func Related(current models.Scheme, catalog []models.Scheme, limit int) []models.Scheme {
	if limit <= 0 {
		limit = 3
	}

	type scored struct {
		scheme models.Scheme
		score  float64
	}
	candidates := make([]scored, 0, len(catalog))

	for _, scheme := range catalog {
		if scheme.ID == current.ID {
			continue
		}
		var score float64
		if scheme.Category == current.Category {
			score += 10
		}
		if scheme.Ministry != "" && scheme.Ministry == current.Ministry {
			score += 5
		}
		score += 3 * float64(commonTags(scheme.Tags, current.Tags))
		score += 7 * textSimilarity(scheme.Title, current.Title)
		score += 5 * textSimilarity(scheme.Description, current.Description)

		candidates = append(candidates, scored{scheme, score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	related := make([]models.Scheme, len(candidates))
	for i, c := range candidates {
		related[i] = c.scheme
	}
	return related
}

func commonTags(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	seen := make(map[string]bool, len(b))
	for _, tag := range b {
		seen[tag] = true
	}
	count := 0
	for _, tag := range a {
		if seen[tag] {
			count++
		}
	}
	return count
}

// textSimilarity is the share of words (longer than two characters) the two
// texts have in common, relative to the longer text.
func textSimilarity(a, b string) float64 {
	wordsA := significantWords(a)
	wordsB := significantWords(b)

	seen := make(map[string]bool, len(wordsB))
	for _, w := range wordsB {
		seen[w] = true
	}
	common := 0
	for _, w := range wordsA {
		if seen[w] {
			common++
		}
	}

	denom := len(wordsA)
	if len(wordsB) > denom {
		denom = len(wordsB)
	}
	if denom < 1 {
		denom = 1
	}
	return float64(common) / float64(denom)
}

func significantWords(text string) []string {
	raw := wordSplitter.Split(strings.ToLower(text), -1)
	words := raw[:0]
	for _, w := range raw {
		if len(w) > 2 {
			words = append(words, w)
		}
	}
	return words
}
