// Package matcher implements the profile-to-scheme matching and ranking
// engine: a pure, deterministic evaluation of a citizen's profile against
// the scheme catalog. It performs no I/O and holds no state; concurrent
// calls need no coordination.
package matcher

import (
	"math"
	"sort"
	"strings"

	"github.com/Prajwalng2/Major-Project-temp/models"
)

// Score evaluates one scheme against one profile and returns the scheme
// with its normalized 0-100 score and explanatory factors (sorted by
// weight descending).
//
// The score is the percentage of points achieved over the points the
// profile could possibly have earned: signal groups whose profile field is
// absent contribute to neither side, so a sparse profile is never penalized
// for what it left blank. A profile with no usable signals scores 0
// against every scheme.
func Score(scheme models.Scheme, profile models.UserProfile) models.MatchedScheme {
	points, maxPossible, factors := rawScore(&scheme, &profile)

	score := 0
	if maxPossible > 0 {
		score = int(math.Round(float64(points) / float64(maxPossible) * 100))
		if score > 100 {
			score = 100
		}
	}

	sort.SliceStable(factors, func(i, j int) bool {
		return factors[i].Weight > factors[j].Weight
	})

	return models.MatchedScheme{
		Scheme:          scheme,
		Score:           score,
		MatchingFactors: factors,
	}
}

// rawScore runs every signal group and accumulates raw points, the maximum
// attainable given the profile's supplied fields, and the factors that
// fired. Split from Score so the normalization-free totals stay testable.
func rawScore(scheme *models.Scheme, profile *models.UserProfile) (points, maxPossible int, factors []models.MatchingFactor) {
	view := NormalizeEligibility(scheme.Eligibility, scheme.EligibilityText)

	in := &matchInput{
		scheme:  scheme,
		view:    &view,
		profile: profile,
		title:   strings.ToLower(scheme.Title),
		desc:    strings.ToLower(scheme.Description),
		text:    strings.ToLower(view.Text),
	}

	for _, group := range signalGroups {
		// The popularity bonus is independent of the profile; without any
		// usable profile signal it stays out so an empty profile scores 0
		// everywhere instead of 100 on popular schemes.
		if group.name == "popularity" && maxPossible == 0 {
			break
		}
		attempted, hit := group.evaluate(in)
		maxPossible += attempted
		for _, f := range hit {
			points += f.Weight
			factors = append(factors, f)
		}
	}
	return points, maxPossible, factors
}
