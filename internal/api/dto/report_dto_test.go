package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safevoice/report-service/internal/domain"
)

func anonymousReport() (*domain.Report, *domain.User) {
	author := &domain.User{ID: "u-1", Username: "jane", Role: domain.RoleUser}
	report := &domain.Report{
		ID:        "r-1",
		Title:     "Harassment at work",
		AuthorID:  author.ID,
		Anonymous: true,
		Status:    domain.ReportStatusOpen,
	}
	return report, author
}

func TestReportProjectionHidesAnonymousAuthor(t *testing.T) {
	report, author := anonymousReport()

	t.Run("third-party viewer", func(t *testing.T) {
		viewer := &domain.Principal{ID: "u-2", Role: domain.RoleUser}
		resp := NewReportResponse(report, author, viewer)
		assert.Nil(t, resp.AuthorID)
		assert.Equal(t, AnonymousDisplayName, resp.AuthorName)
	})

	t.Run("unauthenticated viewer", func(t *testing.T) {
		resp := NewReportResponse(report, author, nil)
		assert.Nil(t, resp.AuthorID)
		assert.Equal(t, AnonymousDisplayName, resp.AuthorName)
	})

	t.Run("the author sees themselves", func(t *testing.T) {
		viewer := &domain.Principal{ID: author.ID, Role: domain.RoleUser}
		resp := NewReportResponse(report, author, viewer)
		require.NotNil(t, resp.AuthorID)
		assert.Equal(t, author.ID, *resp.AuthorID)
		assert.Equal(t, "jane", resp.AuthorName)
	})
}

func TestReportProjectionShowsNamedAuthor(t *testing.T) {
	report, author := anonymousReport()
	report.Anonymous = false

	viewer := &domain.Principal{ID: "u-2", Role: domain.RoleUser}
	resp := NewReportResponse(report, author, viewer)
	require.NotNil(t, resp.AuthorID)
	assert.Equal(t, "jane", resp.AuthorName)
}

func TestReplyProjectionOnAnonymousReport(t *testing.T) {
	report, author := anonymousReport()
	helper := &domain.User{ID: "u-3", Username: "helper_jane", Role: domain.RoleHelper}
	opReply := &domain.Reply{ID: "p-1", ReportID: report.ID, AuthorID: author.ID, Content: "Adding context."}
	helperReply := &domain.Reply{ID: "p-2", ReportID: report.ID, AuthorID: helper.ID, Content: "Advice."}
	thirdParty := &domain.Principal{ID: "u-2", Role: domain.RoleUser}

	t.Run("the author's own reply stays nameless to others", func(t *testing.T) {
		resp := NewReplyResponse(opReply, author, true, false, report, thirdParty)
		assert.Nil(t, resp.AuthorID)
		assert.Equal(t, AnonymousDisplayName, resp.AuthorName)
		assert.True(t, resp.IsOriginalPoster)
	})

	t.Run("the author sees their own reply named", func(t *testing.T) {
		viewer := &domain.Principal{ID: author.ID, Role: domain.RoleUser}
		resp := NewReplyResponse(opReply, author, true, false, report, viewer)
		require.NotNil(t, resp.AuthorID)
		assert.Equal(t, "jane", resp.AuthorName)
	})

	t.Run("helper replies are always named", func(t *testing.T) {
		resp := NewReplyResponse(helperReply, helper, false, true, report, thirdParty)
		require.NotNil(t, resp.AuthorID)
		assert.Equal(t, "helper_jane", resp.AuthorName)
		assert.Equal(t, string(domain.RoleHelper), resp.Role)
		assert.True(t, resp.IsHelper)
	})
}
