package domain

import "time"

// ReportStatus enumerates lifecycle states for reports.
type ReportStatus string

const (
	ReportStatusOpen       ReportStatus = "open"
	ReportStatusInProgress ReportStatus = "in_progress"
	ReportStatusResolved   ReportStatus = "resolved"
)

// statusRank orders the lifecycle; transitions may only move to a higher rank.
var statusRank = map[ReportStatus]int{
	ReportStatusOpen:       0,
	ReportStatusInProgress: 1,
	ReportStatusResolved:   2,
}

// IsValidStatus reports whether the value is a known lifecycle state.
func IsValidStatus(status ReportStatus) bool {
	_, ok := statusRank[status]
	return ok
}

// CanTransition reports whether a status change moves strictly forward
// along open -> in_progress -> resolved. Backward and same-state moves
// are rejected; resolved is terminal.
func CanTransition(from, to ReportStatus) bool {
	fromRank, ok := statusRank[from]
	if !ok {
		return false
	}
	toRank, ok := statusRank[to]
	if !ok {
		return false
	}
	return toRank > fromRank
}

// Report is the aggregate for submitted incident cases.
//
// AuthorID is always recorded, including for anonymous reports; the
// Anonymous flag only controls how authorship is displayed to others.
type Report struct {
	ID        string
	Title     string
	Content   string
	Category  string
	AuthorID  string
	Anonymous bool
	Status    ReportStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
