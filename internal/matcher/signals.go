package matcher

import (
	"fmt"
	"strings"

	"github.com/Prajwalng2/Major-Project-temp/models"
)

// matchInput carries one (scheme, profile) pair through the signal groups
// with the keyword surfaces lowercased once up front.
type matchInput struct {
	scheme  *models.Scheme
	view    *EligibilityView
	profile *models.UserProfile

	title string
	desc  string
	text  string // normalized eligibility text
}

// A signalGroup is one independent matching rule. evaluate returns the
// weight the group added to the maximum possible score (0 when the profile
// does not supply the relevant field, so absent fields stay neutral) and
// any factors the group produced. Groups never subtract points: failing a
// check simply contributes nothing.
type signalGroup struct {
	name     string
	evaluate func(in *matchInput) (attempted int, factors []models.MatchingFactor)
}

// signalGroups is evaluated in order; earlier entries are hard eligibility
// signals, later ones soft interest signals. Order also fixes the factor
// list order before the final weight sort, which keeps scoring
// deterministic.
var signalGroups = []signalGroup{
	{"category", categorySignal},
	{"gender", genderSignal},
	{"age", ageSignal},
	{"income", incomeSignal},
	{"location", locationSignal},
	{"occupation", occupationSignal},
	{"education", educationSignal},
	{"marital_status", maritalStatusSignal},
	{"disabilities", disabilitySignal},
	{"rural_urban", ruralUrbanSignal},
	{"employment", employmentSignal},
	{"family_size", familySizeSignal},
	{"land", landSignal},
	{"interests", interestSignal},
	{"industry", industrySignal},
	{"skills", skillSignal},
	{"popularity", popularitySignal},
}

func factor(name, description string, weight int) models.MatchingFactor {
	return models.MatchingFactor{Factor: name, Description: description, Weight: weight}
}

// anyIn reports whether any of the needles occurs in the haystack.
func anyIn(haystack string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

// inTextOrDesc scans the two keyword surfaces most rules share.
func (in *matchInput) inTextOrDesc(needles ...string) bool {
	return anyIn(in.text, needles...) || anyIn(in.desc, needles...)
}

func categorySignal(in *matchInput) (int, []models.MatchingFactor) {
	if len(in.profile.Category) == 0 {
		return 0, nil
	}
	schemeCategory := strings.ToLower(in.scheme.Category)
	for _, cat := range in.profile.Category {
		if schemeCategory == strings.ToLower(cat) {
			return 25, []models.MatchingFactor{factor(
				"Category",
				fmt.Sprintf("You selected %s as an area of interest", cat),
				25,
			)}
		}
	}
	return 25, nil
}

func genderSignal(in *matchInput) (int, []models.MatchingFactor) {
	gender := strings.ToLower(strings.TrimSpace(in.profile.Gender))
	if gender == "" {
		return 0, nil
	}

	// A structured gender list takes precedence over keyword scanning.
	if in.view.Genders != nil {
		for _, g := range in.view.Genders {
			if strings.ToLower(g) == gender {
				return 20, []models.MatchingFactor{factor(
					"Gender Eligibility",
					fmt.Sprintf("This scheme is designed for %s applicants", in.profile.Gender),
					20,
				)}
			}
		}
		return 20, nil
	}

	switch gender {
	case "female", "woman", "women":
		if anyIn(in.title, "women", "female", "girl") ||
			anyIn(in.desc, "women", "female", "girl") ||
			anyIn(in.text, "women", "female", "girl") {
			return 20, []models.MatchingFactor{factor(
				"Women-Focused",
				"This scheme specifically benefits women/girls",
				20,
			)}
		}
	case "male", "man", "men":
		if anyIn(in.title, "men", "male", "boy") ||
			anyIn(in.desc, "men", "male", "boy") ||
			anyIn(in.text, "men", "male", "boy") {
			return 20, []models.MatchingFactor{factor(
				"Men-Focused",
				"This scheme specifically benefits men/boys",
				20,
			)}
		}
	}
	return 20, nil
}

func ageSignal(in *matchInput) (int, []models.MatchingFactor) {
	if in.profile.Age == nil {
		return 0, nil
	}
	age := *in.profile.Age

	// Structured bounds win over keyword brackets: a full range is worth the
	// whole group, a one-sided bound a little less.
	if in.view.HasAgeRange() {
		minAge, maxAge := in.view.MinAge, in.view.MaxAge
		switch {
		case minAge != nil && maxAge != nil:
			if age >= *minAge && age <= *maxAge {
				return 15, []models.MatchingFactor{factor(
					"Age Eligibility",
					fmt.Sprintf("Your age (%d) is within the eligible range of %d-%d years", age, *minAge, *maxAge),
					15,
				)}
			}
		case minAge != nil:
			if age >= *minAge {
				return 15, []models.MatchingFactor{factor(
					"Age Eligibility",
					fmt.Sprintf("You meet the minimum age requirement of %d years", *minAge),
					10,
				)}
			}
		case maxAge != nil:
			if age <= *maxAge {
				return 15, []models.MatchingFactor{factor(
					"Age Eligibility",
					fmt.Sprintf("You meet the maximum age requirement of %d years", *maxAge),
					10,
				)}
			}
		}
		return 15, nil
	}

	// Keyword brackets are disjoint: exactly one bracket applies to a given
	// age, so a child never also picks up the youth factor.
	switch {
	case age < 18:
		if anyIn(in.text, "child", "minor", "below 18", "under 18") {
			return 15, []models.MatchingFactor{factor(
				"Child Focused",
				"This scheme is targeted at children",
				15,
			)}
		}
	case age <= 35:
		if anyIn(in.text, "youth", "young", "below 35", "under 35") {
			return 15, []models.MatchingFactor{factor(
				"Youth Focused",
				"This scheme is targeted at young citizens",
				15,
			)}
		}
	case age >= 60:
		if anyIn(in.text, "senior", "elderly", "old age", "above 60") {
			return 15, []models.MatchingFactor{factor(
				"Senior Citizen",
				"This scheme is targeted at senior citizens",
				15,
			)}
		}
	}
	return 15, nil
}

func incomeSignal(in *matchInput) (int, []models.MatchingFactor) {
	if in.profile.Income == nil {
		return 0, nil
	}
	income := *in.profile.Income

	if in.view.MaxIncome != nil {
		if income <= *in.view.MaxIncome {
			return 15, []models.MatchingFactor{factor(
				"Income Eligibility",
				fmt.Sprintf("Your income is below the maximum limit of ₹%.0f", *in.view.MaxIncome),
				15,
			)}
		}
		return 15, nil
	}

	// No structured ceiling: low incomes still match schemes aimed at
	// below-poverty-line families.
	if income < 100000 && in.inTextOrDesc("bpl", "below poverty line") {
		return 15, []models.MatchingFactor{factor(
			"BPL Eligibility",
			"This scheme is targeted at BPL families",
			15,
		)}
	}
	return 15, nil
}

// blanket state markers used by national schemes.
var allStateMarkers = map[string]bool{"all": true, "all states": true, "pan india": true}

var northeastStates = map[string]bool{
	"assam": true, "arunachal pradesh": true, "manipur": true, "meghalaya": true,
	"mizoram": true, "nagaland": true, "sikkim": true, "tripura": true,
}

var hillStates = map[string]bool{
	"himachal pradesh": true, "uttarakhand": true, "jammu and kashmir": true, "ladakh": true,
}

func locationSignal(in *matchInput) (int, []models.MatchingFactor) {
	location := strings.ToLower(strings.TrimSpace(in.profile.Location))
	if location == "" {
		return 0, nil
	}
	var factors []models.MatchingFactor

	if in.scheme.State != "" {
		schemeState := strings.ToLower(in.scheme.State)
		if allStateMarkers[schemeState] {
			factors = append(factors, factor(
				"Geographic Coverage",
				"This scheme is available across India",
				10,
			))
		} else if schemeState == location {
			factors = append(factors, factor(
				"State-Specific",
				fmt.Sprintf("This scheme is specifically for residents of %s", in.profile.Location),
				15,
			))
		}
	}

	if northeastStates[location] && in.inTextOrDesc("north east", "north-east", "northeast") {
		factors = append(factors, factor(
			"North East Region",
			"This scheme has special provisions for North East states",
			15,
		))
	}
	if hillStates[location] && in.inTextOrDesc("hill", "mountain") {
		factors = append(factors, factor(
			"Hill/Mountain Region",
			"This scheme has special provisions for hill/mountain states",
			15,
		))
	}
	return 15, factors
}

// occupationBuckets groups occupations with the scheme keywords they imply.
var occupationBuckets = []struct {
	profileTerms []string
	schemeTerms  []string
	description  string
}{
	{
		[]string{"farm", "agricultur"},
		[]string{"farm", "agricultur"},
		"This scheme is relevant to farmers/agricultural workers",
	},
	{
		[]string{"student", "study"},
		[]string{"student", "education"},
		"This scheme is relevant to students or education",
	},
	{
		[]string{"business", "entrepreneur", "self-employed", "startup"},
		[]string{"business", "entrepreneur", "startup", "self-employed"},
		"This scheme is relevant to entrepreneurs/business owners",
	},
}

func occupationSignal(in *matchInput) (int, []models.MatchingFactor) {
	occupation := strings.ToLower(strings.TrimSpace(in.profile.Occupation))
	if occupation == "" {
		return 0, nil
	}
	var factors []models.MatchingFactor

	for _, bucket := range occupationBuckets {
		if anyIn(occupation, bucket.profileTerms...) && in.inTextOrDesc(bucket.schemeTerms...) {
			factors = append(factors, factor("Occupation", bucket.description, 20))
		}
	}
	// Literal fallback when no bucket recognized the occupation.
	if len(factors) == 0 && in.inTextOrDesc(occupation) {
		factors = append(factors, factor(
			"Occupation",
			fmt.Sprintf("This scheme is relevant to your occupation (%s)", in.profile.Occupation),
			15,
		))
	}
	return 20, factors
}

func educationSignal(in *matchInput) (int, []models.MatchingFactor) {
	education := strings.ToLower(strings.TrimSpace(in.profile.Education))
	if education == "" {
		return 0, nil
	}

	for _, edu := range in.view.Education {
		if strings.Contains(education, strings.ToLower(edu)) {
			return 10, []models.MatchingFactor{factor(
				"Education Level",
				"Your education level matches the eligibility criteria",
				10,
			)}
		}
	}
	if in.inTextOrDesc(education) {
		return 10, []models.MatchingFactor{factor(
			"Education Level",
			fmt.Sprintf("This scheme is relevant to your education level (%s)", in.profile.Education),
			10,
		)}
	}
	return 10, nil
}

var maritalStatusKeywords = map[string][]string{
	"single":   {"single", "unmarried", "bachelor"},
	"married":  {"married", "spouse", "husband", "wife"},
	"divorced": {"divorced", "divorcee", "separated"},
	"widowed":  {"widow", "widower", "widowed"},
}

func maritalStatusSignal(in *matchInput) (int, []models.MatchingFactor) {
	status := strings.ToLower(strings.TrimSpace(in.profile.MaritalStatus))
	if status == "" {
		return 0, nil
	}
	for _, keyword := range maritalStatusKeywords[status] {
		if in.inTextOrDesc(keyword) {
			return 15, []models.MatchingFactor{factor(
				"Marital Status",
				fmt.Sprintf("This scheme is relevant to your marital status (%s)", in.profile.MaritalStatus),
				15,
			)}
		}
	}
	return 15, nil
}

var disabilityKeywords = []string{
	"disability", "disabled", "handicapped", "differently abled",
	"special needs", "pwd", "persons with disabilities",
}

func disabilitySignal(in *matchInput) (int, []models.MatchingFactor) {
	if len(in.profile.Disabilities) == 0 {
		return 0, nil
	}
	var factors []models.MatchingFactor

	if in.inTextOrDesc(disabilityKeywords...) {
		factors = append(factors, factor(
			"Disability Support",
			"This scheme offers support for persons with disabilities",
			20,
		))
	}
	// A second, independent opportunity for a scheme naming the specific
	// disability.
	for _, disability := range in.profile.Disabilities {
		if in.inTextOrDesc(strings.ToLower(disability)) {
			factors = append(factors, factor(
				"Specific Disability Support",
				fmt.Sprintf("This scheme specifically mentions support for %s", disability),
				20,
			))
			break
		}
	}
	return 20, factors
}

func ruralUrbanSignal(in *matchInput) (int, []models.MatchingFactor) {
	preference := strings.ToLower(strings.TrimSpace(in.profile.RuralOrUrban))
	if preference == "" {
		return 0, nil
	}
	switch preference {
	case "rural":
		if strings.Contains(in.text, "rural") || anyIn(in.desc, "rural", "village") {
			return 15, []models.MatchingFactor{factor(
				"Rural Focus",
				"This scheme is focused on rural areas",
				15,
			)}
		}
	case "urban":
		if strings.Contains(in.text, "urban") || anyIn(in.desc, "urban", "city") {
			return 15, []models.MatchingFactor{factor(
				"Urban Focus",
				"This scheme is focused on urban areas",
				15,
			)}
		}
	}
	return 15, nil
}

var employmentKeywords = map[string]struct {
	terms       []string
	description string
}{
	"unemployed":    {[]string{"unemployed", "jobless"}, "This scheme targets unemployed individuals"},
	"self-employed": {[]string{"self-employed", "entrepreneur"}, "This scheme targets self-employed individuals"},
	"part-time":     {[]string{"part-time", "part time"}, "This scheme may be suitable for part-time workers"},
}

func employmentSignal(in *matchInput) (int, []models.MatchingFactor) {
	status := strings.ToLower(strings.TrimSpace(in.profile.EmploymentStatus))
	if status == "" {
		return 0, nil
	}
	if bucket, ok := employmentKeywords[status]; ok && in.inTextOrDesc(bucket.terms...) {
		return 15, []models.MatchingFactor{factor("Employment Status", bucket.description, 15)}
	}
	return 15, nil
}

func familySizeSignal(in *matchInput) (int, []models.MatchingFactor) {
	if in.profile.FamilySize == nil {
		return 0, nil
	}
	if *in.profile.FamilySize >= 5 && in.inTextOrDesc("large family", "big family") {
		return 10, []models.MatchingFactor{factor(
			"Family Size",
			"This scheme may offer additional benefits for large families",
			10,
		)}
	}
	return 10, nil
}

func landSignal(in *matchInput) (int, []models.MatchingFactor) {
	if in.profile.HasLand == nil {
		return 0, nil
	}
	var factors []models.MatchingFactor

	if *in.profile.HasLand {
		if in.inTextOrDesc("land owner", "landowner") {
			factors = append(factors, factor(
				"Land Ownership",
				"This scheme targets land owners",
				15,
			))
		}
		// Holdings under two hectares qualify as small/marginal farms.
		if in.profile.LandSize != nil && *in.profile.LandSize < 2 &&
			in.inTextOrDesc("small farmer", "marginal farmer") {
			factors = append(factors, factor(
				"Small Land Holding",
				"This scheme targets small or marginal farmers",
				15,
			))
		}
	} else if in.inTextOrDesc("landless") {
		factors = append(factors, factor(
			"Landless",
			"This scheme targets landless individuals",
			15,
		))
	}
	return 15, factors
}

func interestSignal(in *matchInput) (int, []models.MatchingFactor) {
	if len(in.profile.Interests) == 0 || len(in.scheme.Tags) == 0 {
		return 0, nil
	}
	attempted := 10 * len(in.profile.Interests)
	var factors []models.MatchingFactor

	var matched []string
	for _, interest := range in.profile.Interests {
		lowered := strings.ToLower(interest)
		for _, tag := range in.scheme.Tags {
			if strings.Contains(strings.ToLower(tag), lowered) {
				matched = append(matched, interest)
				break
			}
		}
	}
	if len(matched) > 0 {
		plural := ""
		if len(matched) > 1 {
			plural = "s"
		}
		factors = append(factors, factor(
			"Interests",
			fmt.Sprintf("Matches your interest%s in %s", plural, strings.Join(matched, ", ")),
			10*len(matched),
		))
	}

	for _, interest := range in.profile.Interests {
		if strings.Contains(in.desc, strings.ToLower(interest)) {
			factors = append(factors, factor(
				"Related Content",
				fmt.Sprintf("This scheme content relates to your interest in %s", interest),
				5,
			))
			break
		}
	}
	return attempted, factors
}

func industrySignal(in *matchInput) (int, []models.MatchingFactor) {
	sector := strings.ToLower(strings.TrimSpace(in.profile.IndustrySector))
	if sector == "" {
		return 0, nil
	}
	if in.inTextOrDesc(sector) {
		return 15, []models.MatchingFactor{factor(
			"Industry Sector",
			fmt.Sprintf("This scheme is relevant to your industry (%s)", in.profile.IndustrySector),
			15,
		)}
	}
	return 15, nil
}

func skillSignal(in *matchInput) (int, []models.MatchingFactor) {
	if len(in.profile.SkillLevel) == 0 {
		return 0, nil
	}
	for _, skill := range in.profile.SkillLevel {
		if in.inTextOrDesc(strings.ToLower(skill)) {
			return 15, []models.MatchingFactor{factor(
				"Skills Match",
				fmt.Sprintf("This scheme is relevant to your skill in %s", skill),
				15,
			)}
		}
	}
	return 15, nil
}

// popularitySignal is the one group that is always attempted: the bonus
// does not depend on any profile field.
func popularitySignal(in *matchInput) (int, []models.MatchingFactor) {
	if in.scheme.IsPopular {
		return 5, []models.MatchingFactor{factor(
			"Popular Scheme",
			"This is a widely-used government scheme",
			5,
		)}
	}
	return 5, nil
}
