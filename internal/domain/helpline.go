package domain

import "time"

// HelplineContact is an emergency contact shown in the helpline directory.
type HelplineContact struct {
	ID          string
	Name        string
	Phone       string
	Hours       string
	Description string
	Category    string
	Website     string
	CreatedAt   time.Time
}

// LegalResource is a curated legal-aid link in the helpline directory.
type LegalResource struct {
	ID          string
	Title       string
	Description string
	URL         string
	Category    string
	CreatedAt   time.Time
}
