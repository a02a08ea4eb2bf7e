package repository

import "github.com/safevoice/report-service/internal/domain"

// SeedHelplineContacts returns the built-in emergency contact directory,
// used to populate the in-memory store in dev mode. The Postgres
// deployment seeds the same entries by migration.
func SeedHelplineContacts() []domain.HelplineContact {
	return []domain.HelplineContact{
		{
			ID:          "c-assault-hotline",
			Name:        "National Sexual Assault Hotline",
			Phone:       "1-800-656-HOPE (4673)",
			Hours:       "24/7",
			Description: "Connects you with a trained staff member from a sexual assault service provider in your area.",
			Category:    "assault",
		},
		{
			ID:          "c-crisis-lifeline",
			Name:        "National Suicide Prevention Lifeline",
			Phone:       "1-800-273-8255",
			Hours:       "24/7",
			Description: "Provides free and confidential support for people in distress, prevention and crisis resources.",
			Category:    "crisis",
		},
		{
			ID:          "c-violence-hotline",
			Name:        "National Domestic Violence Hotline",
			Phone:       "1-800-799-7233",
			Hours:       "24/7",
			Description: "Highly trained advocates available to talk confidentially with anyone experiencing domestic violence.",
			Category:    "violence",
		},
		{
			ID:          "c-ccri-helpline",
			Name:        "Cyber Civil Rights Initiative Crisis Helpline",
			Phone:       "1-844-878-2274",
			Hours:       "24/7",
			Description: "Support for victims of non-consensual pornography and online harassment.",
			Category:    "cybercrime",
			Website:     "https://www.cybercivilrights.org",
		},
	}
}

// SeedLegalResources returns the built-in legal-aid directory.
func SeedLegalResources() []domain.LegalResource {
	return []domain.LegalResource{
		{
			ID:          "r-harassment-guide",
			Title:       "Workplace Harassment Legal Guide",
			Description: "Comprehensive guide to understanding workplace harassment laws, your rights, and how to file formal complaints with the EEOC.",
			URL:         "https://www.eeoc.gov/harassment",
			Category:    "harassment",
		},
		{
			ID:          "r-cybercrime-resources",
			Title:       "Cybercrime Victim Resources",
			Description: "Federal resources for victims of cybercrime, including blackmail and extortion through electronic means.",
			URL:         "https://www.ic3.gov/Home/ComplaintChoice",
			Category:    "cybercrime",
		},
		{
			ID:          "r-legal-aid-directory",
			Title:       "Legal Aid Directory",
			Description: "Find pro bono legal assistance in your area for issues related to harassment, discrimination, and cybercrime.",
			URL:         "https://www.lsc.gov/about-lsc/what-legal-aid/get-legal-help",
			Category:    "general",
		},
	}
}
