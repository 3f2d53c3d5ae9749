// models/scheme.go
package models

// EligibilityCriteria is the structured form of a scheme's eligibility field.
// Every field is optional; schemes sourced from the registry frequently carry
// only a free-text description instead.
type EligibilityCriteria struct {
	MinAge    *int     `bson:"minAge,omitempty" json:"minAge,omitempty"`
	MaxAge    *int     `bson:"maxAge,omitempty" json:"maxAge,omitempty"`
	MaxIncome *float64 `bson:"maxIncome,omitempty" json:"maxIncome,omitempty"`
	Category  []string `bson:"category,omitempty" json:"category,omitempty"`
	Gender    []string `bson:"gender,omitempty" json:"gender,omitempty"`
	Education []string `bson:"education,omitempty" json:"education,omitempty"`
	States    []string `bson:"states,omitempty" json:"states,omitempty"`
}

// Scheme is one government welfare program record as stored in the
// "schemes" collection. The Eligibility field is polymorphic: it may hold a
// free-text string, a structured criteria document, or a JSON string that
// encodes one. internal/matcher resolves it into a single view at the
// boundary; nothing else should type-sniff it.
type Scheme struct {
	ID                 string   `bson:"_id" json:"id"`
	Title              string   `bson:"title" json:"title"`
	Description        string   `bson:"description" json:"description"`
	Category           string   `bson:"category" json:"category"`
	Ministry           string   `bson:"ministry,omitempty" json:"ministry,omitempty"`
	FundingMinistry    string   `bson:"funding_ministry,omitempty" json:"fundingMinistry,omitempty"`
	Eligibility        any      `bson:"eligibility,omitempty" json:"eligibility,omitempty"`
	EligibilityText    string   `bson:"eligibility_text,omitempty" json:"eligibilityText,omitempty"`
	LaunchDate         string   `bson:"launch_date,omitempty" json:"launchDate,omitempty"`
	Deadline           string   `bson:"deadline,omitempty" json:"deadline,omitempty"`
	IsPopular          bool     `bson:"is_popular,omitempty" json:"isPopular,omitempty"`
	BenefitAmount      string   `bson:"benefit_amount,omitempty" json:"benefitAmount,omitempty"`
	Documents          []string `bson:"documents,omitempty" json:"documents,omitempty"`
	Tags               []string `bson:"tags,omitempty" json:"tags,omitempty"`
	ApplicationURL     string   `bson:"application_url,omitempty" json:"applicationUrl,omitempty"`
	SchemeCode         string   `bson:"scheme_code,omitempty" json:"schemeCode,omitempty"`
	State              string   `bson:"state,omitempty" json:"state,omitempty"`
	ImplementingAgency string   `bson:"implementing_agency,omitempty" json:"implementingAgency,omitempty"`
	Beneficiaries      string   `bson:"beneficiaries,omitempty" json:"beneficiaries,omitempty"`
	Objective          string   `bson:"objective,omitempty" json:"objective,omitempty"`
}

// IsActive reports whether the scheme is open for applications. Only the
// literal deadline "Closed" marks a scheme closed; an absent deadline is
// treated as inactive as well, so the predicate is simply "a deadline exists
// and it is not Closed". Applied uniformly across listing, search and export.
func (s *Scheme) IsActive() bool {
	return s.Deadline != "" && s.Deadline != "Closed"
}
