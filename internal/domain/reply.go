package domain

import "time"

// Reply is a response attached to exactly one report.
type Reply struct {
	ID        string
	ReportID  string
	AuthorID  string
	Content   string
	Upvotes   int
	CreatedAt time.Time
}

// IsOriginalPoster reports whether the reply was written by the author
// of its report. Computed at read time, never stored.
func IsOriginalPoster(reply *Reply, report *Report) bool {
	if reply == nil || report == nil {
		return false
	}
	return reply.AuthorID == report.AuthorID
}
