package dto

import (
	"time"

	"github.com/safevoice/report-service/internal/domain"
)

// AnonymousDisplayName replaces the author's name wherever anonymity
// applies.
const AnonymousDisplayName = "Anonymous"

// CreateReportRequest payload.
type CreateReportRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Category  string `json:"category"`
	Anonymous bool   `json:"anonymous"`
}

// CreateReplyRequest payload.
type CreateReplyRequest struct {
	Content string `json:"content"`
}

// TransitionStatusRequest payload.
type TransitionStatusRequest struct {
	Status domain.ReportStatus `json:"status"`
}

// ReportResponse is the externally visible projection of a report.
// AuthorID and AuthorName are suppressed for anonymous reports unless
// the viewer is the author; the stored record always keeps the author.
type ReportResponse struct {
	ID         string              `json:"id"`
	Title      string              `json:"title"`
	Content    string              `json:"content"`
	Category   string              `json:"category"`
	AuthorID   *string             `json:"author_id,omitempty"`
	AuthorName string              `json:"author_name"`
	Anonymous  bool                `json:"anonymous"`
	Status     domain.ReportStatus `json:"status"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// ReplyResponse is the externally visible projection of a reply with
// its read-time author badges.
type ReplyResponse struct {
	ID               string    `json:"id"`
	ReportID         string    `json:"report_id"`
	AuthorID         *string   `json:"author_id,omitempty"`
	AuthorName       string    `json:"author_name"`
	Role             string    `json:"role"`
	Content          string    `json:"content"`
	Upvotes          int       `json:"upvotes"`
	IsHelper         bool      `json:"is_helper"`
	IsOriginalPoster bool      `json:"is_op"`
	CreatedAt        time.Time `json:"created_at"`
}

// ReportDetailResponse bundles a report with its reply thread.
type ReportDetailResponse struct {
	Report  ReportResponse  `json:"report"`
	Replies []ReplyResponse `json:"replies"`
}

// NewReportResponse projects a report for the given viewer. A nil
// viewer is an anonymous reader.
func NewReportResponse(report *domain.Report, author *domain.User, viewer *domain.Principal) ReportResponse {
	resp := ReportResponse{
		ID:        report.ID,
		Title:     report.Title,
		Content:   report.Content,
		Category:  report.Category,
		Anonymous: report.Anonymous,
		Status:    report.Status,
		CreatedAt: report.CreatedAt,
		UpdatedAt: report.UpdatedAt,
	}
	if hideAuthor(report, report.AuthorID, viewer) {
		resp.AuthorName = AnonymousDisplayName
		return resp
	}
	authorID := report.AuthorID
	resp.AuthorID = &authorID
	if author != nil {
		resp.AuthorName = author.Username
	}
	return resp
}

// NewReplyResponse projects a reply for the given viewer. Replies that
// the report's author wrote on their own anonymous report are displayed
// nameless to everyone else, so the thread cannot deanonymize them.
func NewReplyResponse(reply *domain.Reply, author *domain.User, isOP, isHelper bool, report *domain.Report, viewer *domain.Principal) ReplyResponse {
	resp := ReplyResponse{
		ID:               reply.ID,
		ReportID:         reply.ReportID,
		Content:          reply.Content,
		Upvotes:          reply.Upvotes,
		IsHelper:         isHelper,
		IsOriginalPoster: isOP,
		CreatedAt:        reply.CreatedAt,
	}
	if author != nil {
		resp.Role = string(author.Role)
	}
	if isOP && hideAuthor(report, reply.AuthorID, viewer) {
		resp.AuthorName = AnonymousDisplayName
		return resp
	}
	authorID := reply.AuthorID
	resp.AuthorID = &authorID
	if author != nil {
		resp.AuthorName = author.Username
	}
	return resp
}

func hideAuthor(report *domain.Report, authorID string, viewer *domain.Principal) bool {
	if report == nil || !report.Anonymous {
		return false
	}
	return viewer == nil || viewer.ID != authorID
}
