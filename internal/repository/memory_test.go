package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safevoice/report-service/internal/domain"
)

func seedReports(t *testing.T, repo *InMemoryReportRepository) (open, inProgress, resolved *domain.Report) {
	t.Helper()
	ctx := context.Background()

	open = &domain.Report{
		ID:       "r-1",
		Title:    "Harassment at work",
		Content:  "A colleague keeps sending threatening messages after hours.",
		Category: "harassment",
		AuthorID: "u-1",
		Status:   domain.ReportStatusOpen,
	}
	inProgress = &domain.Report{
		ID:       "r-2",
		Title:    "Blackmail over photos",
		Content:  "Someone is demanding money to keep private pictures offline.",
		Category: "blackmail",
		AuthorID: "u-2",
		Status:   domain.ReportStatusInProgress,
	}
	resolved = &domain.Report{
		ID:       "r-3",
		Title:    "School bullying incident",
		Content:  "Repeated harassment in the class group chat over weeks.",
		Category: "harassment",
		AuthorID: "u-1",
		Status:   domain.ReportStatusResolved,
	}
	for _, report := range []*domain.Report{open, inProgress, resolved} {
		require.NoError(t, repo.Create(ctx, report))
	}
	return open, inProgress, resolved
}

func TestInMemoryReportRepositoryFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryReportRepository()
	open, inProgress, resolved := seedReports(t, repo)

	t.Run("no filter returns all in insertion order", func(t *testing.T) {
		listed, err := repo.ListWithFilter(ctx, ReportFilter{})
		require.NoError(t, err)
		require.Len(t, listed, 3)
		assert.Equal(t, open.ID, listed[0].ID)
		assert.Equal(t, inProgress.ID, listed[1].ID)
		assert.Equal(t, resolved.ID, listed[2].ID)
	})

	t.Run("status filter", func(t *testing.T) {
		status := domain.ReportStatusInProgress
		listed, err := repo.ListWithFilter(ctx, ReportFilter{Status: &status})
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, inProgress.ID, listed[0].ID)
	})

	t.Run("category filter", func(t *testing.T) {
		category := "harassment"
		listed, err := repo.ListWithFilter(ctx, ReportFilter{Category: &category})
		require.NoError(t, err)
		require.Len(t, listed, 2)
	})

	t.Run("text matches title and content case-insensitively", func(t *testing.T) {
		text := "BLACKMAIL"
		listed, err := repo.ListWithFilter(ctx, ReportFilter{Text: &text})
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, inProgress.ID, listed[0].ID)

		text = "group chat"
		listed, err = repo.ListWithFilter(ctx, ReportFilter{Text: &text})
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, resolved.ID, listed[0].ID)
	})

	t.Run("blank text filter is ignored", func(t *testing.T) {
		text := "   "
		listed, err := repo.ListWithFilter(ctx, ReportFilter{Text: &text})
		require.NoError(t, err)
		assert.Len(t, listed, 3)
	})

	t.Run("filters intersect", func(t *testing.T) {
		status := domain.ReportStatusResolved
		category := "harassment"
		listed, err := repo.ListWithFilter(ctx, ReportFilter{Status: &status, Category: &category})
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, resolved.ID, listed[0].ID)

		category = "blackmail"
		listed, err = repo.ListWithFilter(ctx, ReportFilter{Status: &status, Category: &category})
		require.NoError(t, err)
		assert.Empty(t, listed)
	})
}

func TestInMemoryReportRepositoryUpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryReportRepository()
	open, _, _ := seedReports(t, repo)

	open.Status = domain.ReportStatusInProgress
	require.NoError(t, repo.UpdateStatus(ctx, open))

	stored, err := repo.GetByID(ctx, open.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ReportStatusInProgress, stored.Status)
	assert.False(t, stored.UpdatedAt.Before(stored.CreatedAt))

	err = repo.UpdateStatus(ctx, &domain.Report{ID: "missing"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInMemoryReportRepositoryGetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryReportRepository()
	open, _, _ := seedReports(t, repo)

	stored, err := repo.GetByID(ctx, open.ID)
	require.NoError(t, err)
	assert.Equal(t, open.Title, stored.Title)

	// Mutating the returned copy must not leak into the store.
	stored.Title = "changed"
	again, err := repo.GetByID(ctx, open.ID)
	require.NoError(t, err)
	assert.Equal(t, open.Title, again.Title)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInMemoryReplyRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryReplyRepository()

	first := &domain.Reply{ID: "p-1", ReportID: "r-1", AuthorID: "u-1", Content: "Keep a written record of every incident."}
	second := &domain.Reply{ID: "p-2", ReportID: "r-1", AuthorID: "u-2", Content: "Report it to HR in writing as well."}
	other := &domain.Reply{ID: "p-3", ReportID: "r-2", AuthorID: "u-2", Content: "Do not pay; contact the police instead."}
	for _, reply := range []*domain.Reply{first, second, other} {
		require.NoError(t, repo.Create(ctx, reply))
	}

	t.Run("lists per report in insertion order", func(t *testing.T) {
		listed, err := repo.ListByReport(ctx, "r-1")
		require.NoError(t, err)
		require.Len(t, listed, 2)
		assert.Equal(t, first.ID, listed[0].ID)
		assert.Equal(t, second.ID, listed[1].ID)

		listed, err = repo.ListByReport(ctx, "r-404")
		require.NoError(t, err)
		assert.Empty(t, listed)
	})

	t.Run("increment is atomic under concurrency", func(t *testing.T) {
		const workers = 64
		var wg sync.WaitGroup
		wg.Add(workers)
		for i := 0; i < workers; i++ {
			go func() {
				defer wg.Done()
				_, err := repo.IncrementUpvotes(ctx, first.ID)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		stored, err := repo.GetByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, workers, stored.Upvotes)
	})

	t.Run("increment on unknown reply", func(t *testing.T) {
		_, err := repo.IncrementUpvotes(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestInMemoryUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryUserRepository()

	user := &domain.User{ID: "u-1", Username: "jane", Email: "Jane@Example.com", Role: domain.RoleUser}
	require.NoError(t, repo.Create(ctx, user))

	t.Run("email lookup is case-insensitive", func(t *testing.T) {
		stored, err := repo.GetByEmail(ctx, "jane@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, stored.ID)
	})

	t.Run("update reindexes email", func(t *testing.T) {
		updated := *user
		updated.Email = "jane.doe@example.com"
		require.NoError(t, repo.Update(ctx, &updated))

		_, err := repo.GetByEmail(ctx, "jane@example.com")
		assert.ErrorIs(t, err, ErrNotFound)

		stored, err := repo.GetByEmail(ctx, "jane.doe@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, stored.ID)
	})

	t.Run("update on unknown user", func(t *testing.T) {
		err := repo.Update(ctx, &domain.User{ID: "missing"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestInMemoryHelplineRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryHelplineRepository(SeedHelplineContacts(), SeedLegalResources())

	all, err := repo.ListContacts(ctx, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, all)

	category := "cybercrime"
	filtered, err := repo.ListContacts(ctx, &category)
	require.NoError(t, err)
	require.NotEmpty(t, filtered)
	for _, contact := range filtered {
		assert.Equal(t, category, contact.Category)
	}

	resources, err := repo.ListLegalResources(ctx, &category)
	require.NoError(t, err)
	require.NotEmpty(t, resources)
	for _, resource := range resources {
		assert.Equal(t, category, resource.Category)
	}
}
