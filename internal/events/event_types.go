package events

import (
	"time"

	"github.com/safevoice/report-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventReportCreated       EventType = "report_created"
	EventReportStatusChanged EventType = "report_status_changed"
	EventReplyAdded          EventType = "reply_added"
	EventReplyEndorsed       EventType = "reply_endorsed"
)

// Actor identifies the principal behind an event. Anonymous reports
// still carry the real actor id here; events are internal and never
// rendered to third parties.
type Actor struct {
	UserID string      `json:"user_id"`
	Role   domain.Role `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ReportID  string      `json:"report_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ReportCreatedPayload payload.
type ReportCreatedPayload struct {
	Category  string `json:"category"`
	Title     string `json:"title"`
	Anonymous bool   `json:"anonymous"`
}

// ReportStatusChangedPayload payload.
type ReportStatusChangedPayload struct {
	OldStatus domain.ReportStatus `json:"old_status"`
	NewStatus domain.ReportStatus `json:"new_status"`
}

// ReplyAddedPayload payload.
type ReplyAddedPayload struct {
	ReplyID     string `json:"reply_id"`
	BodyPreview string `json:"body_preview"`
}

// ReplyEndorsedPayload payload.
type ReplyEndorsedPayload struct {
	ReplyID string `json:"reply_id"`
	Upvotes int    `json:"upvotes"`
}
