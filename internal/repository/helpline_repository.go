package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/safevoice/report-service/internal/domain"
)

// HelplineRepository serves the read-only helpline directory.
type HelplineRepository interface {
	ListContacts(ctx context.Context, category *string) ([]domain.HelplineContact, error)
	ListLegalResources(ctx context.Context, category *string) ([]domain.LegalResource, error)
}

type helplineRepository struct {
	pool *pgxpool.Pool
}

// NewHelplineRepository builds the repository.
func NewHelplineRepository(pool *pgxpool.Pool) HelplineRepository {
	return &helplineRepository{pool: pool}
}

func (r *helplineRepository) ListContacts(ctx context.Context, category *string) ([]domain.HelplineContact, error) {
	query := `
        SELECT id, name, phone, hours, description, category, website, created_at
        FROM helpline_contacts`
	args := []any{}
	if category != nil {
		query += ` WHERE category=$1`
		args = append(args, *category)
	}
	query += ` ORDER BY created_at ASC, id ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.HelplineContact
	for rows.Next() {
		var contact domain.HelplineContact
		if err := rows.Scan(
			&contact.ID,
			&contact.Name,
			&contact.Phone,
			&contact.Hours,
			&contact.Description,
			&contact.Category,
			&contact.Website,
			&contact.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, contact)
	}
	return result, rows.Err()
}

func (r *helplineRepository) ListLegalResources(ctx context.Context, category *string) ([]domain.LegalResource, error) {
	query := `
        SELECT id, title, description, url, category, created_at
        FROM legal_resources`
	args := []any{}
	if category != nil {
		query += ` WHERE category=$1`
		args = append(args, *category)
	}
	query += ` ORDER BY created_at ASC, id ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.LegalResource
	for rows.Next() {
		var resource domain.LegalResource
		if err := rows.Scan(
			&resource.ID,
			&resource.Title,
			&resource.Description,
			&resource.URL,
			&resource.Category,
			&resource.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, resource)
	}
	return result, rows.Err()
}
