package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name    string
		from    ReportStatus
		to      ReportStatus
		allowed bool
	}{
		{"open to in_progress", ReportStatusOpen, ReportStatusInProgress, true},
		{"open to resolved", ReportStatusOpen, ReportStatusResolved, true},
		{"in_progress to resolved", ReportStatusInProgress, ReportStatusResolved, true},
		{"open to open", ReportStatusOpen, ReportStatusOpen, false},
		{"in_progress to open", ReportStatusInProgress, ReportStatusOpen, false},
		{"in_progress to in_progress", ReportStatusInProgress, ReportStatusInProgress, false},
		{"resolved to open", ReportStatusResolved, ReportStatusOpen, false},
		{"resolved to in_progress", ReportStatusResolved, ReportStatusInProgress, false},
		{"resolved to resolved", ReportStatusResolved, ReportStatusResolved, false},
		{"unknown source", ReportStatus("archived"), ReportStatusResolved, false},
		{"unknown target", ReportStatusOpen, ReportStatus("archived"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, CanTransition(tc.from, tc.to))
		})
	}
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(ReportStatusOpen))
	assert.True(t, IsValidStatus(ReportStatusInProgress))
	assert.True(t, IsValidStatus(ReportStatusResolved))
	assert.False(t, IsValidStatus(ReportStatus("closed")))
	assert.False(t, IsValidStatus(ReportStatus("")))
}

func TestPrincipalCanEndorse(t *testing.T) {
	report := &Report{ID: "r-1", AuthorID: "author-1"}

	author := &Principal{ID: "author-1", Role: RoleUser}
	verifiedHelper := &Principal{ID: "helper-1", Role: RoleHelper, Verified: true}
	unverifiedHelper := &Principal{ID: "helper-2", Role: RoleHelper}
	bystander := &Principal{ID: "user-2", Role: RoleUser}

	assert.True(t, author.CanEndorse(report))
	assert.True(t, verifiedHelper.CanEndorse(report))
	assert.False(t, unverifiedHelper.CanEndorse(report))
	assert.False(t, bystander.CanEndorse(report))

	// A verified flag on a plain user grants nothing by itself.
	verifiedUser := &Principal{ID: "user-3", Role: RoleUser, Verified: true}
	assert.False(t, verifiedUser.CanEndorse(report))
}

func TestIsOriginalPoster(t *testing.T) {
	report := &Report{ID: "r-1", AuthorID: "author-1"}
	assert.True(t, IsOriginalPoster(&Reply{AuthorID: "author-1"}, report))
	assert.False(t, IsOriginalPoster(&Reply{AuthorID: "helper-1"}, report))
}
