package service

import (
	"context"
	"strings"

	"github.com/safevoice/report-service/internal/domain"
	"github.com/safevoice/report-service/internal/repository"
)

// HelplineService serves the read-only helpline directory.
type HelplineService struct {
	directory repository.HelplineRepository
}

// NewHelplineService constructs the service.
func NewHelplineService(directory repository.HelplineRepository) *HelplineService {
	return &HelplineService{directory: directory}
}

// ListContacts returns emergency contacts, optionally by category.
func (s *HelplineService) ListContacts(ctx context.Context, category string) ([]domain.HelplineContact, error) {
	contacts, err := s.directory.ListContacts(ctx, categoryFilter(category))
	if err != nil {
		return nil, storageError(err)
	}
	return contacts, nil
}

// ListLegalResources returns legal-aid resources, optionally by category.
func (s *HelplineService) ListLegalResources(ctx context.Context, category string) ([]domain.LegalResource, error) {
	resources, err := s.directory.ListLegalResources(ctx, categoryFilter(category))
	if err != nil {
		return nil, storageError(err)
	}
	return resources, nil
}

func categoryFilter(category string) *string {
	category = strings.TrimSpace(category)
	if category == "" || category == "all" {
		return nil
	}
	return &category
}
