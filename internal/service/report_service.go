package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/safevoice/report-service/internal/domain"
	"github.com/safevoice/report-service/internal/events"
	"github.com/safevoice/report-service/internal/repository"
	"github.com/safevoice/report-service/pkg/util/errorutil"
)

const (
	minReportContentLength = 50
	minReplyContentLength  = 20
)

// ReportService is the domain core: report and reply creation, the
// status lifecycle, and endorsement gating. It holds no state across
// calls; every operation is a single read-modify-write against the
// repositories.
type ReportService struct {
	reports    repository.ReportRepository
	replies    repository.ReplyRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// ReportDependencies bundles repositories for the report service.
type ReportDependencies struct {
	ReportRepo repository.ReportRepository
	ReplyRepo  repository.ReplyRepository
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
}

// ReportCreateInput describes report creation payload.
type ReportCreateInput struct {
	Title     string
	Content   string
	Category  string
	Anonymous bool
}

// ReportListFilter describes listing filters; all supplied filters are
// combined with AND.
type ReportListFilter struct {
	Status   *domain.ReportStatus
	Category *string
	Text     *string
}

// ReplyThreadEntry is a reply together with its read-time derived
// author context. The flags are recomputed on every read, never stored.
type ReplyThreadEntry struct {
	Reply            domain.Reply
	Author           *domain.User
	IsOriginalPoster bool
	IsHelper         bool
}

// NewReportService constructs the service.
func NewReportService(deps ReportDependencies) *ReportService {
	return &ReportService{
		reports:    deps.ReportRepo,
		replies:    deps.ReplyRepo,
		users:      deps.UserRepo,
		dispatcher: deps.Dispatcher,
	}
}

// CreateReport creates a report for an authenticated principal. The
// author is always recorded; the anonymous flag only affects how third
// parties see the report, never the stored record or the creator's
// own view.
func (s *ReportService) CreateReport(ctx context.Context, principal *domain.Principal, input ReportCreateInput) (*domain.Report, error) {
	if principal == nil {
		return nil, errorutil.NewUnauthenticated("")
	}

	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	if title == "" {
		return nil, errorutil.NewValidationError("title", "must not be empty")
	}
	if content == "" {
		return nil, errorutil.NewValidationError("content", "must not be empty")
	}
	if utf8.RuneCountInString(content) < minReportContentLength {
		return nil, errorutil.NewValidationError("content", "must be at least 50 characters")
	}

	report := &domain.Report{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		Category:  strings.TrimSpace(input.Category),
		AuthorID:  principal.ID,
		Anonymous: input.Anonymous,
		Status:    domain.ReportStatusOpen,
	}
	if err := s.reports.Create(ctx, report); err != nil {
		return nil, storageError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventReportCreated,
		ReportID: report.ID,
		Actor:    actorFromPrincipal(principal),
		Payload: events.ReportCreatedPayload{
			Category:  report.Category,
			Title:     report.Title,
			Anonymous: report.Anonymous,
		},
	})
	return report, nil
}

// GetReport fetches a single report.
func (s *ReportService) GetReport(ctx context.Context, id string) (*domain.Report, error) {
	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errorutil.NewNotFound("report", id)
		}
		return nil, storageError(err)
	}
	return report, nil
}

// ListReports returns reports matching all supplied filters, in
// insertion order.
func (s *ReportService) ListReports(ctx context.Context, filter ReportListFilter) ([]domain.Report, error) {
	repoFilter := repository.ReportFilter{
		Status:   filter.Status,
		Category: filter.Category,
		Text:     filter.Text,
	}
	reports, err := s.reports.ListWithFilter(ctx, repoFilter)
	if err != nil {
		return nil, storageError(err)
	}
	return reports, nil
}

// TransitionStatus moves a report strictly forward along
// open -> in_progress -> resolved, refreshing updated_at on success.
// Backward or same-state requests fail with InvalidTransition and leave
// the record untouched.
func (s *ReportService) TransitionStatus(ctx context.Context, principal *domain.Principal, reportID string, newStatus domain.ReportStatus) (*domain.Report, error) {
	if principal == nil {
		return nil, errorutil.NewUnauthenticated("")
	}
	report, err := s.GetReport(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(report.Status, newStatus) {
		return nil, errorutil.NewInvalidTransition(string(report.Status), string(newStatus))
	}

	oldStatus := report.Status
	report.Status = newStatus
	if err := s.reports.UpdateStatus(ctx, report); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errorutil.NewNotFound("report", reportID)
		}
		return nil, storageError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventReportStatusChanged,
		ReportID: report.ID,
		Actor:    actorFromPrincipal(principal),
		Payload: events.ReportStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: newStatus,
		},
	})
	return report, nil
}

// CreateReply appends a reply to an existing report.
func (s *ReportService) CreateReply(ctx context.Context, principal *domain.Principal, reportID, content string) (*domain.Reply, error) {
	if principal == nil {
		return nil, errorutil.NewUnauthenticated("")
	}
	report, err := s.GetReport(ctx, reportID)
	if err != nil {
		return nil, err
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errorutil.NewValidationError("content", "must not be empty")
	}
	if utf8.RuneCountInString(content) < minReplyContentLength {
		return nil, errorutil.NewValidationError("content", "must be at least 20 characters")
	}

	reply := &domain.Reply{
		ID:       uuid.NewString(),
		ReportID: report.ID,
		AuthorID: principal.ID,
		Content:  content,
		Upvotes:  0,
	}
	if err := s.replies.Create(ctx, reply); err != nil {
		return nil, storageError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventReplyAdded,
		ReportID: report.ID,
		Actor:    actorFromPrincipal(principal),
		Payload: events.ReplyAddedPayload{
			ReplyID:     reply.ID,
			BodyPreview: stringPreview(reply.Content, 120),
		},
	})
	return reply, nil
}

// ListReplies returns the reply thread for a report with read-time
// derived author flags.
func (s *ReportService) ListReplies(ctx context.Context, reportID string) ([]ReplyThreadEntry, error) {
	report, err := s.GetReport(ctx, reportID)
	if err != nil {
		return nil, err
	}
	replies, err := s.replies.ListByReport(ctx, report.ID)
	if err != nil {
		return nil, storageError(err)
	}

	entries := make([]ReplyThreadEntry, 0, len(replies))
	for i := range replies {
		reply := replies[i]
		entry := ReplyThreadEntry{
			Reply:            reply,
			IsOriginalPoster: domain.IsOriginalPoster(&reply, report),
		}
		author, err := s.users.GetByID(ctx, reply.AuthorID)
		if err == nil {
			entry.Author = author
			entry.IsHelper = author.Role == domain.RoleHelper
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, storageError(err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// ResolveAuthor returns the account behind an author id for display
// purposes, or nil when the account no longer exists.
func (s *ReportService) ResolveAuthor(ctx context.Context, authorID string) (*domain.User, error) {
	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, storageError(err)
	}
	return author, nil
}

// EndorseReply increments a reply's upvote counter by exactly one.
// Preconditions are checked in order: authentication, report existence,
// reply existence under that report, then eligibility (the report's
// author, or a verified helper). The operation is not idempotent;
// repeated calls by an eligible principal keep incrementing.
func (s *ReportService) EndorseReply(ctx context.Context, principal *domain.Principal, reportID, replyID string) (*domain.Reply, error) {
	if principal == nil {
		return nil, errorutil.NewUnauthenticated("")
	}
	report, err := s.GetReport(ctx, reportID)
	if err != nil {
		return nil, err
	}
	reply, err := s.replies.GetByID(ctx, replyID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errorutil.NewNotFound("reply", replyID)
		}
		return nil, storageError(err)
	}
	if reply.ReportID != report.ID {
		return nil, errorutil.NewNotFound("reply", replyID)
	}
	if !principal.CanEndorse(report) {
		return nil, errorutil.NewForbidden("only the original poster or verified helpers can upvote replies")
	}

	updated, err := s.replies.IncrementUpvotes(ctx, reply.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errorutil.NewNotFound("reply", replyID)
		}
		return nil, storageError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventReplyEndorsed,
		ReportID: report.ID,
		Actor:    actorFromPrincipal(principal),
		Payload: events.ReplyEndorsedPayload{
			ReplyID: updated.ID,
			Upvotes: updated.Upvotes,
		},
	})
	return updated, nil
}

func (s *ReportService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func actorFromPrincipal(principal *domain.Principal) events.Actor {
	return events.Actor{
		UserID: principal.ID,
		Role:   principal.Role,
	}
}

// storageError classifies unexpected repository failures as transient
// dependency errors so callers can retry; rule violations never reach
// this path.
func storageError(err error) error {
	var domainErr *errorutil.DomainError
	if errors.As(err, &domainErr) {
		return err
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return errorutil.NewDependencyUnavailable("storage", err)
}

func stringPreview(body string, max int) string {
	body = strings.TrimSpace(body)
	if len(body) <= max {
		return body
	}
	if max <= 3 {
		return body[:max]
	}
	return body[:max-3] + "..."
}
