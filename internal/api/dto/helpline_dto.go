package dto

import "github.com/safevoice/report-service/internal/domain"

// HelplineContactResponse is a directory entry.
type HelplineContactResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Hours       string `json:"hours"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Website     string `json:"website,omitempty"`
}

// LegalResourceResponse is a curated legal-aid link.
type LegalResourceResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Category    string `json:"category"`
}

// NewHelplineContactResponse projects a contact.
func NewHelplineContactResponse(contact domain.HelplineContact) HelplineContactResponse {
	return HelplineContactResponse{
		ID:          contact.ID,
		Name:        contact.Name,
		Phone:       contact.Phone,
		Hours:       contact.Hours,
		Description: contact.Description,
		Category:    contact.Category,
		Website:     contact.Website,
	}
}

// NewLegalResourceResponse projects a resource.
func NewLegalResourceResponse(resource domain.LegalResource) LegalResourceResponse {
	return LegalResourceResponse{
		ID:          resource.ID,
		Title:       resource.Title,
		Description: resource.Description,
		URL:         resource.URL,
		Category:    resource.Category,
	}
}
