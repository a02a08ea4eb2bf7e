package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/safevoice/report-service/internal/domain"
)

// ReplyRepository manages report thread replies.
type ReplyRepository interface {
	Create(ctx context.Context, reply *domain.Reply) error
	GetByID(ctx context.Context, id string) (*domain.Reply, error)
	ListByReport(ctx context.Context, reportID string) ([]domain.Reply, error)
	// IncrementUpvotes applies exactly one atomic increment and returns
	// the updated reply. Concurrent calls must not lose updates.
	IncrementUpvotes(ctx context.Context, id string) (*domain.Reply, error)
}

type replyRepository struct {
	pool *pgxpool.Pool
}

// NewReplyRepository builds a Postgres-backed repository.
func NewReplyRepository(pool *pgxpool.Pool) ReplyRepository {
	return &replyRepository{pool: pool}
}

func (r *replyRepository) Create(ctx context.Context, reply *domain.Reply) error {
	const query = `
        INSERT INTO replies (id, report_id, author_id, content, upvotes)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING created_at`
	return r.pool.QueryRow(ctx, query,
		reply.ID,
		reply.ReportID,
		reply.AuthorID,
		reply.Content,
		reply.Upvotes,
	).Scan(&reply.CreatedAt)
}

func (r *replyRepository) GetByID(ctx context.Context, id string) (*domain.Reply, error) {
	const query = `
        SELECT id, report_id, author_id, content, upvotes, created_at
        FROM replies WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *replyRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Reply, error) {
	var reply domain.Reply
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&reply.ID,
		&reply.ReportID,
		&reply.AuthorID,
		&reply.Content,
		&reply.Upvotes,
		&reply.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &reply, nil
}

func (r *replyRepository) ListByReport(ctx context.Context, reportID string) ([]domain.Reply, error) {
	const query = `
        SELECT id, report_id, author_id, content, upvotes, created_at
        FROM replies WHERE report_id=$1 ORDER BY created_at ASC, id ASC`
	rows, err := r.pool.Query(ctx, query, reportID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Reply
	for rows.Next() {
		var reply domain.Reply
		if err := rows.Scan(
			&reply.ID,
			&reply.ReportID,
			&reply.AuthorID,
			&reply.Content,
			&reply.Upvotes,
			&reply.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, reply)
	}
	return result, rows.Err()
}

func (r *replyRepository) IncrementUpvotes(ctx context.Context, id string) (*domain.Reply, error) {
	// Single-statement increment so concurrent endorsements serialize in
	// the database with no lost updates.
	const query = `
        UPDATE replies SET upvotes = upvotes + 1
        WHERE id=$1
        RETURNING id, report_id, author_id, content, upvotes, created_at`
	return r.fetchSingle(ctx, query, id)
}
