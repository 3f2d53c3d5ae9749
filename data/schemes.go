// Package data holds the built-in scheme catalog. It seeds a fresh
// database (cmd/seed) and serves as the fallback when the document store
// is unreachable, so citizens always see the flagship schemes.
package data

import "github.com/Prajwalng2/Major-Project-temp/models"

func intPtr(v int) *int          { return &v }
func floatPtr(v float64) *float64 { return &v }

// Schemes returns a fresh copy of the built-in catalog so callers can
// filter and sort without mutating shared state.
func Schemes() []models.Scheme {
	out := make([]models.Scheme, len(catalog))
	copy(out, catalog)
	return out
}

var catalog = []models.Scheme{
	{
		ID:          "pm-kisan",
		Title:       "PM-KISAN",
		Description: "Pradhan Mantri Kisan Samman Nidhi is a Central Sector scheme with 100% funding from Government of India. Under the Scheme, income support of ₹6,000 per year is provided to all farmer families across the country in three equal installments of ₹2,000 each every four months.",
		Category:    "Agriculture & Farming",
		Ministry:    "Ministry of Agriculture & Farmers Welfare",
		Deadline:    "Ongoing",
		Eligibility: "Small and Marginal Farmers across India with cultivable landholding.",
		EligibilityText: "All landholding farmers' families, which have cultivable land as per land records. Small and marginal farmers with holdings up to 2 hectares.",
		LaunchDate:     "February 24, 2019",
		IsPopular:      true,
		BenefitAmount:  "₹6,000 per year",
		Documents:      []string{"Aadhaar Card", "Land Records", "Bank Account Details", "Passport Size Photo"},
		Tags:           []string{"farmers", "income support"},
		ApplicationURL: "https://pmkisan.gov.in/",
		State:          "All States",
		Beneficiaries:  "Landholding farmer families",
		Objective:      "Income support to farmer families",
	},
	{
		ID:          "pmjay",
		Title:       "Ayushman Bharat - PMJAY",
		Description: "Ayushman Bharat Pradhan Mantri Jan Arogya Yojana (AB PM-JAY) is a National Health Insurance Scheme which provides coverage of up to ₹5 lakh per family per year for secondary and tertiary care hospitalization.",
		Category:    "Health",
		Ministry:    "Ministry of Health & Family Welfare",
		Deadline:    "Ongoing",
		Eligibility: "Economically disadvantaged families identified based on SECC database.",
		EligibilityText: "Families identified based on deprivation criteria in the SECC database, including BPL households.",
		LaunchDate:     "September 23, 2018",
		IsPopular:      true,
		BenefitAmount:  "Up to ₹5 lakh per family per year",
		Documents:      []string{"Aadhaar Card", "Ration Card", "SECC Database Record"},
		Tags:           []string{"health insurance", "medical"},
		ApplicationURL: "https://pmjay.gov.in/",
		State:          "Pan India",
		Beneficiaries:  "Poor and vulnerable families",
		Objective:      "Universal health coverage",
	},
	{
		ID:          "pmuy",
		Title:       "Pradhan Mantri Ujjwala Yojana",
		Description: "PMUY aims to safeguard the health of women & children by providing them with clean cooking fuel – LPG, so that they don't have to compromise their health in smoky kitchens or wander in unsafe areas collecting firewood.",
		Category:    "Energy & Environment",
		Ministry:    "Ministry of Petroleum and Natural Gas",
		Deadline:    "Ongoing",
		Eligibility: "Women from BPL households.",
		EligibilityText: "Women belonging to Below Poverty Line (BPL) families.",
		LaunchDate:     "May 1, 2016",
		IsPopular:      true,
		BenefitAmount:  "Free LPG connection with financial assistance",
		Documents:      []string{"Aadhaar Card", "BPL Ration Card", "Bank Account Details"},
		Tags:           []string{"clean cooking", "women welfare"},
		ApplicationURL: "https://pmuy.gov.in/",
		State:          "All States",
		Beneficiaries:  "Women from BPL households",
		Objective:      "Clean cooking fuel for rural households",
	},
	{
		ID:          "pmay-u",
		Title:       "Pradhan Mantri Awas Yojana - Urban",
		Description: "PMAY-U aims to provide housing for all in urban areas. The scheme provides central assistance to Urban Local Bodies and other implementing agencies through States/UTs for in-situ rehabilitation of existing slum dwellers.",
		Category:    "Housing",
		Ministry:    "Ministry of Housing and Urban Affairs",
		Deadline:    "2024-12-31",
		Eligibility: models.EligibilityCriteria{
			Category:  []string{"ews", "lig", "mig"},
			MaxIncome: floatPtr(1800000),
		},
		EligibilityText: "Urban residents with annual income up to ₹18 lakh belonging to EWS/LIG/MIG categories.",
		LaunchDate:     "June 25, 2015",
		IsPopular:      true,
		BenefitAmount:  "Up to ₹2.67 lakh subsidy",
		Documents:      []string{"Aadhaar Card", "PAN Card", "Income Certificate", "Property Documents"},
		Tags:           []string{"housing", "urban development"},
		ApplicationURL: "https://pmaymis.gov.in/",
		State:          "All States",
		Beneficiaries:  "Urban economically weaker sections",
		Objective:      "Housing for all in urban areas",
	},
	{
		ID:          "pmkvy",
		Title:       "Pradhan Mantri Kaushal Vikas Yojana (PMKVY)",
		Description: "PMKVY is the flagship scheme of the Ministry of Skill Development & Entrepreneurship implemented by National Skill Development Corporation. The objective is to enable Indian youth to take up industry-relevant skill training.",
		Category:    "Skill Development",
		Ministry:    "Ministry of Skill Development and Entrepreneurship",
		Deadline:    "Ongoing",
		Eligibility: models.EligibilityCriteria{
			MinAge: intPtr(15),
			MaxAge: intPtr(45),
		},
		EligibilityText: "Indian youth between 15-45 years looking for skill certification, including school/college dropouts and unemployed.",
		LaunchDate:     "July 15, 2015",
		IsPopular:      true,
		BenefitAmount:  "Free training and certification",
		Documents:      []string{"Aadhaar Card", "Education Certificates", "Bank Account Details"},
		Tags:           []string{"skill development", "employment"},
		ApplicationURL: "https://pmkvyofficial.org/",
		State:          "Pan India",
		Beneficiaries:  "Youth seeking skill training",
		Objective:      "Industry-relevant skill training at scale",
	},
	{
		ID:          "mudra-yojana",
		Title:       "Pradhan Mantri Mudra Yojana",
		Description: "PMMY provides loans up to ₹10 lakh to the non-corporate, non-farm small/micro enterprises through various financial institutions, supporting entrepreneurs and self-employed individuals.",
		Category:    "Finance",
		Ministry:    "Ministry of Finance",
		Deadline:    "Ongoing",
		Eligibility: "Small business owners and entrepreneurs with a business plan for non-farm income generating activities.",
		EligibilityText: "Non-corporate small business owners, entrepreneurs and startups.",
		LaunchDate:     "April 8, 2015",
		IsPopular:      true,
		BenefitAmount:  "Loans up to ₹10 lakh",
		Documents:      []string{"Aadhaar Card", "PAN Card", "Business Plan", "Bank Statements"},
		Tags:           []string{"finance", "business loans"},
		ApplicationURL: "https://www.mudra.org.in/",
		State:          "All States",
		Beneficiaries:  "Micro and small enterprises",
		Objective:      "Funding the unfunded micro enterprises",
	},
	{
		ID:          "pmjdy",
		Title:       "Pradhan Mantri Jan Dhan Yojana",
		Description: "Financial inclusion program ensuring access to financial services like banking, savings & deposit accounts, remittance, credit, insurance and pension for every household.",
		Category:    "Finance",
		Ministry:    "Ministry of Finance",
		Deadline:    "Ongoing",
		// Stored upstream as a JSON-encoded criteria string; the matcher's
		// normalizer resolves it.
		Eligibility:     `{"minAge": 10, "states": ["all"]}`,
		EligibilityText: "Any Indian citizen above 10 years of age without a bank account.",
		LaunchDate:      "August 28, 2014",
		IsPopular:       true,
		BenefitAmount:   "Free zero-balance account with insurance",
		Documents:       []string{"Aadhaar Card", "Address Proof", "Passport Size Photo"},
		Tags:            []string{"banking", "financial inclusion"},
		ApplicationURL:  "https://pmjdy.gov.in/",
		State:           "All States",
		Beneficiaries:   "Unbanked citizens",
		Objective:       "Universal access to banking",
	},
	{
		ID:          "pmfby",
		Title:       "Pradhan Mantri Fasal Bima Yojana",
		Description: "Comprehensive crop insurance scheme to protect farmers from crop loss or damage due to unforeseen events, reducing the premium burden and ensuring early claim settlement.",
		Category:    "Agriculture & Farming",
		Ministry:    "Ministry of Agriculture & Farmers Welfare",
		Deadline:    "Seasonal",
		Eligibility: "All farmers including sharecroppers and tenant farmers growing notified crops in notified areas.",
		EligibilityText: "Farmers growing notified crops in notified areas, including landless sharecroppers.",
		LaunchDate:     "February 18, 2016",
		IsPopular:      true,
		BenefitAmount:  "Variable based on crop loss",
		Documents:      []string{"Land Records", "Bank Account Details", "Aadhaar Card"},
		Tags:           []string{"agriculture", "insurance"},
		ApplicationURL: "https://pmfby.gov.in/",
		State:          "All States",
		Beneficiaries:  "Farmers",
		Objective:      "Crop insurance against natural calamities",
	},
	{
		ID:          "nsp-scholarship",
		Title:       "National Scholarship Portal Schemes",
		Description: "Umbrella of merit and means based scholarships for students from minority communities, SC, ST, OBC and EWS categories pursuing school and higher education.",
		Category:    "Education",
		Ministry:    "Ministry of Education",
		Deadline:    "2025-10-31",
		Eligibility: models.EligibilityCriteria{
			MaxIncome: floatPtr(250000),
			Education: []string{"school", "graduate", "post-graduate"},
		},
		EligibilityText: "Students from minority communities, SC, ST, OBC, EWS, and students with disabilities based on respective scheme criteria.",
		LaunchDate:     "July 1, 2015",
		BenefitAmount:  "Tuition and maintenance allowance",
		Documents:      []string{"Aadhaar Card", "Income Certificate", "Caste Certificate", "Previous Marksheets"},
		Tags:           []string{"education", "scholarship", "students"},
		ApplicationURL: "https://scholarships.gov.in/",
		State:          "All States",
		Beneficiaries:  "Students from disadvantaged groups",
		Objective:      "Financial support for education",
	},
	{
		ID:          "ignoaps",
		Title:       "Indira Gandhi National Old Age Pension Scheme",
		Description: "Monthly pension to senior citizens belonging to households below the poverty line, part of the National Social Assistance Programme.",
		Category:    "Social Welfare",
		Ministry:    "Ministry of Rural Development",
		Deadline:    "Ongoing",
		Eligibility: models.EligibilityCriteria{
			MinAge: intPtr(60),
		},
		EligibilityText: "Senior citizens aged 60 years or above from BPL households. Persons above 60 living below poverty line.",
		LaunchDate:     "November 19, 2007",
		BenefitAmount:  "₹200-₹500 per month",
		Documents:      []string{"Aadhaar Card", "Age Proof", "BPL Card"},
		Tags:           []string{"pension", "senior citizens"},
		ApplicationURL: "https://nsap.nic.in/",
		State:          "All States",
		Beneficiaries:  "Elderly BPL citizens",
		Objective:      "Social security for the elderly poor",
	},
	{
		ID:          "adip",
		Title:       "ADIP Scheme - Assistance to Disabled Persons",
		Description: "Assists needy persons with disabilities in procuring durable, sophisticated and scientifically manufactured aids and appliances that promote physical, social and psychological rehabilitation.",
		Category:    "Social Welfare",
		Ministry:    "Ministry of Social Justice and Empowerment",
		Deadline:    "Ongoing",
		Eligibility: "Persons with disabilities with 40% disability or more and monthly income below ₹30,000.",
		EligibilityText: "Persons with disabilities (PwD) holding a disability certificate of 40% or above, including visual impairment, hearing impairment and locomotor disability.",
		LaunchDate:     "January 1, 1981",
		BenefitAmount:  "Free aids and appliances",
		Documents:      []string{"Disability Certificate", "Income Certificate", "Aadhaar Card"},
		Tags:           []string{"disability", "rehabilitation"},
		ApplicationURL: "https://adip.depwd.gov.in/",
		State:          "All States",
		Beneficiaries:  "Persons with disabilities",
		Objective:      "Aids and appliances for disabled persons",
	},
	{
		ID:          "ksy-karnataka",
		Title:       "Krishi Bhagya Scheme",
		Description: "State scheme for rain-fed farmers to harvest rain water through farm ponds and improve protective irrigation for small and marginal farmers.",
		Category:    "Agriculture & Farming",
		Ministry:    "Department of Agriculture, Karnataka",
		Deadline:    "Closed",
		Eligibility: "Rain-fed farmers of Karnataka with cultivable land.",
		EligibilityText: "Small and marginal farmers in rain-dependent taluks of Karnataka.",
		LaunchDate:     "August 1, 2014",
		BenefitAmount:  "Up to 90% subsidy on farm ponds",
		Documents:      []string{"Land Records", "Aadhaar Card", "Bank Passbook"},
		Tags:           []string{"agriculture", "irrigation"},
		State:          "Karnataka",
		Beneficiaries:  "Rain-fed farmers",
		Objective:      "Rain water harvesting for protective irrigation",
	},
}
