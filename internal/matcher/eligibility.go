package matcher

import (
	"encoding/json"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Prajwalng2/Major-Project-temp/models"
)

// EligibilityView is the single internal shape the scorer consumes.
// A scheme's raw eligibility field is polymorphic (free text, structured
// document, or a JSON string encoding one); resolving it once here keeps
// type-sniffing out of the signal functions. Structured fields and free
// text may both be present: the scorer uses the structured criteria where
// they exist and always scans the text for reinforcing keyword signals.
type EligibilityView struct {
	MinAge    *int
	MaxAge    *int
	MaxIncome *float64
	Genders   []string
	Category  []string
	Education []string
	States    []string

	// Text is the keyword-match surface: the scheme's eligibilityText when
	// present, otherwise whatever free-text eligibility the record carried.
	Text string
}

// HasAgeRange reports whether any structured age bound is present.
func (v *EligibilityView) HasAgeRange() bool {
	return v.MinAge != nil || v.MaxAge != nil
}

// NormalizeEligibility resolves a scheme's eligibility data into a view.
//
// The raw value may come from three places: a Go literal in the built-in
// catalog (EligibilityCriteria), a BSON document decoded from Mongo
// (primitive.D / primitive.M / map), or a string. Strings beginning with
// "{" are decoded as criteria; when decoding fails they silently degrade to
// descriptive text, matching the permissiveness of the upstream registry
// data. Any other string is descriptive text only.
func NormalizeEligibility(raw any, eligibilityText string) EligibilityView {
	view := EligibilityView{Text: strings.TrimSpace(eligibilityText)}

	switch val := raw.(type) {
	case nil:
		// Nothing to resolve.
	case models.EligibilityCriteria:
		view.applyCriteria(&val)
	case *models.EligibilityCriteria:
		if val != nil {
			view.applyCriteria(val)
		}
	case string:
		view.applyString(val)
	case map[string]any:
		view.applyMap(val)
	case primitive.M:
		view.applyMap(map[string]any(val))
	case primitive.D:
		view.applyMap(val.Map())
	}

	return view
}

func (v *EligibilityView) applyCriteria(c *models.EligibilityCriteria) {
	v.MinAge = c.MinAge
	v.MaxAge = c.MaxAge
	v.MaxIncome = c.MaxIncome
	v.Genders = c.Gender
	v.Category = c.Category
	v.Education = c.Education
	v.States = c.States
}

func (v *EligibilityView) applyString(s string) {
	trimmed := strings.TrimSpace(s)
	if strings.HasPrefix(trimmed, "{") {
		var c models.EligibilityCriteria
		if err := json.Unmarshal([]byte(trimmed), &c); err == nil {
			v.applyCriteria(&c)
			return
		}
		// Unparsable pseudo-JSON: keep it as opaque descriptive text.
	}
	if v.Text == "" {
		v.Text = trimmed
	}
}

// applyMap handles eligibility documents decoded from BSON or generic JSON,
// where numbers may arrive as int32, int64 or float64 depending on the
// driver.
func (v *EligibilityView) applyMap(m map[string]any) {
	if n, ok := asInt(m["minAge"]); ok {
		v.MinAge = &n
	}
	if n, ok := asInt(m["maxAge"]); ok {
		v.MaxAge = &n
	}
	if f, ok := asFloat(m["maxIncome"]); ok {
		v.MaxIncome = &f
	}
	v.Genders = asStringSlice(m["gender"])
	v.Category = asStringSlice(m["category"])
	v.Education = asStringSlice(m["education"])
	v.States = asStringSlice(m["states"])
}

func asInt(val any) (int, bool) {
	switch n := val.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

func asFloat(val any) (float64, bool) {
	switch n := val.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func asStringSlice(val any) []string {
	switch list := val.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	case primitive.A:
		return asStringSlice([]any(list))
	}
	return nil
}
