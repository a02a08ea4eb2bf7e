package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/safevoice/report-service/internal/domain"
)

// In-memory implementations of the repository interfaces. They back the
// service in dev mode when no Postgres DSN is configured and are used
// directly by the test suites. All methods are safe for concurrent use.

// InMemoryReportRepository keeps reports in insertion order.
type InMemoryReportRepository struct {
	mu      sync.RWMutex
	reports []*domain.Report
	byID    map[string]*domain.Report
}

// NewInMemoryReportRepository builds an empty store.
func NewInMemoryReportRepository() *InMemoryReportRepository {
	return &InMemoryReportRepository{byID: make(map[string]*domain.Report)}
}

func (r *InMemoryReportRepository) Create(_ context.Context, report *domain.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	if report.CreatedAt.IsZero() {
		report.CreatedAt = now
	}
	if report.UpdatedAt.IsZero() {
		report.UpdatedAt = report.CreatedAt
	}
	stored := *report
	r.reports = append(r.reports, &stored)
	r.byID[stored.ID] = &stored
	return nil
}

func (r *InMemoryReportRepository) UpdateStatus(_ context.Context, report *domain.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byID[report.ID]
	if !ok {
		return ErrNotFound
	}
	stored.Status = report.Status
	stored.UpdatedAt = time.Now()
	report.UpdatedAt = stored.UpdatedAt
	return nil
}

func (r *InMemoryReportRepository) GetByID(_ context.Context, id string) (*domain.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *stored
	return &copied, nil
}

func (r *InMemoryReportRepository) ListWithFilter(_ context.Context, filter ReportFilter) ([]domain.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Report
	for _, stored := range r.reports {
		if !matchesFilter(stored, filter) {
			continue
		}
		result = append(result, *stored)
	}
	return result, nil
}

func matchesFilter(report *domain.Report, filter ReportFilter) bool {
	if filter.Status != nil && report.Status != *filter.Status {
		return false
	}
	if filter.Category != nil && report.Category != *filter.Category {
		return false
	}
	if filter.Text != nil && strings.TrimSpace(*filter.Text) != "" {
		needle := strings.ToLower(strings.TrimSpace(*filter.Text))
		title := strings.ToLower(report.Title)
		content := strings.ToLower(report.Content)
		if !strings.Contains(title, needle) && !strings.Contains(content, needle) {
			return false
		}
	}
	return true
}

// InMemoryReplyRepository keeps replies in insertion order per report.
type InMemoryReplyRepository struct {
	mu       sync.RWMutex
	byID     map[string]*domain.Reply
	byReport map[string][]*domain.Reply
}

// NewInMemoryReplyRepository builds an empty store.
func NewInMemoryReplyRepository() *InMemoryReplyRepository {
	return &InMemoryReplyRepository{
		byID:     make(map[string]*domain.Reply),
		byReport: make(map[string][]*domain.Reply),
	}
}

func (r *InMemoryReplyRepository) Create(_ context.Context, reply *domain.Reply) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if reply.CreatedAt.IsZero() {
		reply.CreatedAt = time.Now()
	}
	stored := *reply
	r.byID[stored.ID] = &stored
	r.byReport[stored.ReportID] = append(r.byReport[stored.ReportID], &stored)
	return nil
}

func (r *InMemoryReplyRepository) GetByID(_ context.Context, id string) (*domain.Reply, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *stored
	return &copied, nil
}

func (r *InMemoryReplyRepository) ListByReport(_ context.Context, reportID string) ([]domain.Reply, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored := r.byReport[reportID]
	result := make([]domain.Reply, 0, len(stored))
	for _, reply := range stored {
		result = append(result, *reply)
	}
	return result, nil
}

func (r *InMemoryReplyRepository) IncrementUpvotes(_ context.Context, id string) (*domain.Reply, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	stored.Upvotes++
	copied := *stored
	return &copied, nil
}

// InMemoryUserRepository indexes accounts by id and email.
type InMemoryUserRepository struct {
	mu      sync.RWMutex
	byID    map[string]*domain.User
	byEmail map[string]*domain.User
}

// NewInMemoryUserRepository builds an empty store.
func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

func (r *InMemoryUserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = user.CreatedAt
	}
	stored := *user
	r.byID[stored.ID] = &stored
	r.byEmail[strings.ToLower(stored.Email)] = &stored
	return nil
}

func (r *InMemoryUserRepository) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byID[user.ID]
	if !ok {
		return ErrNotFound
	}
	delete(r.byEmail, strings.ToLower(stored.Email))
	user.UpdatedAt = time.Now()
	*stored = *user
	r.byEmail[strings.ToLower(stored.Email)] = stored
	return nil
}

func (r *InMemoryUserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *stored
	return &copied, nil
}

func (r *InMemoryUserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *stored
	return &copied, nil
}

// InMemoryHelplineRepository serves a fixed directory loaded at startup.
type InMemoryHelplineRepository struct {
	mu        sync.RWMutex
	contacts  []domain.HelplineContact
	resources []domain.LegalResource
}

// NewInMemoryHelplineRepository builds a store seeded with the given entries.
func NewInMemoryHelplineRepository(contacts []domain.HelplineContact, resources []domain.LegalResource) *InMemoryHelplineRepository {
	return &InMemoryHelplineRepository{contacts: contacts, resources: resources}
}

func (r *InMemoryHelplineRepository) ListContacts(_ context.Context, category *string) ([]domain.HelplineContact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.HelplineContact
	for _, contact := range r.contacts {
		if category != nil && contact.Category != *category {
			continue
		}
		result = append(result, contact)
	}
	return result, nil
}

func (r *InMemoryHelplineRepository) ListLegalResources(_ context.Context, category *string) ([]domain.LegalResource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.LegalResource
	for _, resource := range r.resources {
		if category != nil && resource.Category != *category {
			continue
		}
		result = append(result, resource)
	}
	return result, nil
}
