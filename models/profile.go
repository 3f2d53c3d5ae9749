// models/profile.go
package models

// UserProfile is the query side of the matcher: a sparse set of facts
// collected by the questionnaire frontend. Every field is optional. An
// absent field means "do not evaluate this signal" — it must neither help
// nor hurt a scheme's score. Pointer types distinguish absent from zero for
// the numeric and boolean fields.
type UserProfile struct {
	Age              *int     `json:"age,omitempty"`
	Gender           string   `json:"gender,omitempty"`
	Income           *float64 `json:"income,omitempty"`
	Location         string   `json:"location,omitempty"`
	Category         []string `json:"category,omitempty"`
	Occupation       string   `json:"occupation,omitempty"`
	Education        string   `json:"education,omitempty"`
	MaritalStatus    string   `json:"maritalStatus,omitempty"`
	Disabilities     []string `json:"disabilities,omitempty"`
	FamilySize       *int     `json:"familySize,omitempty"`
	EmploymentStatus string   `json:"employmentStatus,omitempty"`
	Interests        []string `json:"interests,omitempty"`
	IndustrySector   string   `json:"industrySector,omitempty"`
	SkillLevel       []string `json:"skillLevel,omitempty"`
	HasLand          *bool    `json:"hasLand,omitempty"`
	LandSize         *float64 `json:"landSize,omitempty"`
	RuralOrUrban     string   `json:"ruralOrUrban,omitempty"`
}

// MatchingFactor is one explanatory reason contributing to a scheme's
// relevance score: a short label, a sentence for the citizen, and the raw
// weight it contributed before normalization.
type MatchingFactor struct {
	Factor      string `json:"factor"`
	Description string `json:"description"`
	Weight      int    `json:"weight"`
}

// MatchedScheme pairs a scheme with its normalized 0-100 score and the
// factors that produced it, sorted by weight descending. Computed fresh per
// ranking request and never persisted.
type MatchedScheme struct {
	Scheme          Scheme           `json:"scheme"`
	Score           int              `json:"score"`
	MatchingFactors []MatchingFactor `json:"matchingFactors"`
}
