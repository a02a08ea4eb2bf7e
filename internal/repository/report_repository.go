package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/safevoice/report-service/internal/domain"
)

// ReportFilter captures listing parameters. All supplied filters are
// combined with AND; Text matches case-insensitively against a substring
// of title or content.
type ReportFilter struct {
	Status   *domain.ReportStatus
	Category *string
	Text     *string
}

// ReportRepository encapsulates report persistence.
type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) error
	UpdateStatus(ctx context.Context, report *domain.Report) error
	GetByID(ctx context.Context, id string) (*domain.Report, error)
	ListWithFilter(ctx context.Context, filter ReportFilter) ([]domain.Report, error)
}

type reportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository instantiates a Postgres-backed repository.
func NewReportRepository(pool *pgxpool.Pool) ReportRepository {
	return &reportRepository{pool: pool}
}

func (r *reportRepository) Create(ctx context.Context, report *domain.Report) error {
	const query = `
        INSERT INTO reports (id, title, content, category, author_id, anonymous, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		report.ID,
		report.Title,
		report.Content,
		report.Category,
		report.AuthorID,
		report.Anonymous,
		report.Status,
	).Scan(&report.CreatedAt, &report.UpdatedAt)
}

func (r *reportRepository) UpdateStatus(ctx context.Context, report *domain.Report) error {
	const query = `
        UPDATE reports SET status=$1, updated_at=NOW()
        WHERE id=$2
        RETURNING updated_at`
	if err := r.pool.QueryRow(ctx, query, report.Status, report.ID).Scan(&report.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (r *reportRepository) GetByID(ctx context.Context, id string) (*domain.Report, error) {
	const query = `
        SELECT id, title, content, category, author_id, anonymous, status, created_at, updated_at
        FROM reports WHERE id=$1`
	var report domain.Report
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&report.ID,
		&report.Title,
		&report.Content,
		&report.Category,
		&report.AuthorID,
		&report.Anonymous,
		&report.Status,
		&report.CreatedAt,
		&report.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) ListWithFilter(ctx context.Context, filter ReportFilter) ([]domain.Report, error) {
	base := `SELECT id, title, content, category, author_id, anonymous, status, created_at, updated_at
             FROM reports`
	clauses := []string{"1=1"}
	args := []any{}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
	}
	if filter.Category != nil {
		args = append(args, *filter.Category)
		clauses = append(clauses, fmt.Sprintf("category=$%d", len(args)))
	}
	if filter.Text != nil && strings.TrimSpace(*filter.Text) != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(*filter.Text)) + "%"
		args = append(args, search)
		placeholder := fmt.Sprintf("$%d", len(args))
		clauses = append(clauses, fmt.Sprintf("(LOWER(title) LIKE %s OR LOWER(content) LIKE %s)", placeholder, placeholder))
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY created_at ASC, id ASC`,
		base, strings.Join(clauses, " AND "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Report
	for rows.Next() {
		var report domain.Report
		if err := rows.Scan(
			&report.ID,
			&report.Title,
			&report.Content,
			&report.Category,
			&report.AuthorID,
			&report.Anonymous,
			&report.Status,
			&report.CreatedAt,
			&report.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, report)
	}
	return result, rows.Err()
}
