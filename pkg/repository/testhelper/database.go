package testhelper

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"

	"github.com/gitfolio/gitfolio/pkg/domain/interfaces"
	"github.com/gitfolio/gitfolio/pkg/domain/model"
	"github.com/gitfolio/gitfolio/pkg/domain/types"
	"github.com/gitfolio/gitfolio/pkg/repository"
)

// TestAll runs all test cases for Database
// This is the main entry point for testing any Database implementation
func TestAll(t *testing.T, db interfaces.Database) {
	t.Run("UserCRUD", func(t *testing.T) {
		TestUserCRUD(t, db)
	})
	t.Run("UserInstallation", func(t *testing.T) {
		TestUserInstallation(t, db)
	})
	t.Run("RepositoryUpsert", func(t *testing.T) {
		TestRepositoryUpsert(t, db)
	})
	t.Run("RepositoryListDelete", func(t *testing.T) {
		TestRepositoryListDelete(t, db)
	})
	t.Run("SyncLogs", func(t *testing.T) {
		TestSyncLogs(t, db)
	})
}

func newTestUser() *model.User {
	suffix := uuid.New().String()[:8]
	return &model.User{
		ID:             types.UserID(fmt.Sprintf("user-%s", suffix)),
		Email:          fmt.Sprintf("dev-%s@example.com", suffix),
		GitHubHandle:   types.GitHubHandle(fmt.Sprintf("octocat-%s", suffix)),
		InstallationID: types.GitHubAppInstallID(fmt.Sprintf("inst-%s", suffix)),
		CreatedAt:      time.Now(),
	}
}

// TestUserCRUD tests create and lookup operations for User
func TestUserCRUD(t *testing.T, db interfaces.Database) {
	ctx := context.Background()

	user := newTestUser()
	gt.NoError(t, db.CreateUser(ctx, user))

	// Get by ID
	retrieved, err := db.GetUser(ctx, user.ID)
	gt.NoError(t, err)
	gt.V(t, retrieved.ID).Equal(user.ID)
	gt.V(t, retrieved.Email).Equal(user.Email)
	gt.V(t, retrieved.GitHubHandle).Equal(user.GitHubHandle)
	gt.V(t, retrieved.InstallationID).Equal(user.InstallationID)

	// Get by handle
	retrieved, err = db.GetUserByHandle(ctx, user.GitHubHandle)
	gt.NoError(t, err)
	gt.V(t, retrieved.ID).Equal(user.ID)

	// Duplicate create fails
	err = db.CreateUser(ctx, user)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrAlreadyExists))

	// Update last synced time
	syncedAt := time.Now().Add(time.Minute).Truncate(time.Microsecond)
	gt.NoError(t, db.UpdateUserLastSyncedAt(ctx, user.ID, syncedAt))

	retrieved, err = db.GetUser(ctx, user.ID)
	gt.NoError(t, err)
	gt.True(t, retrieved.LastSyncedAt.Equal(syncedAt))

	// Test not found
	nonExistentID := types.UserID(fmt.Sprintf("nonexistent-%s", uuid.New().String()[:8]))
	_, err = db.GetUser(ctx, nonExistentID)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	_, err = db.GetUserByHandle(ctx, types.GitHubHandle(fmt.Sprintf("ghost-%s", uuid.New().String()[:8])))
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	err = db.UpdateUserLastSyncedAt(ctx, nonExistentID, syncedAt)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

// TestUserInstallation tests installation binding and listing
func TestUserInstallation(t *testing.T, db interfaces.Database) {
	ctx := context.Background()

	installed := newTestUser()
	gt.NoError(t, db.CreateUser(ctx, installed))

	uninstalled := newTestUser()
	uninstalled.InstallationID = ""
	gt.NoError(t, db.CreateUser(ctx, uninstalled))

	// Only users with a bound installation are listed
	users, err := db.ListInstalledUsers(ctx)
	gt.NoError(t, err)

	ids := make(map[types.UserID]bool)
	for _, u := range users {
		ids[u.ID] = true
	}
	gt.True(t, ids[installed.ID])
	gt.False(t, ids[uninstalled.ID])

	// Bind an installation
	newInstall := types.GitHubAppInstallID(fmt.Sprintf("inst-%s", uuid.New().String()[:8]))
	gt.NoError(t, db.SaveUserInstallation(ctx, uninstalled.ID, newInstall))

	retrieved, err := db.GetUser(ctx, uninstalled.ID)
	gt.NoError(t, err)
	gt.V(t, retrieved.InstallationID).Equal(newInstall)

	// Clear the installation
	gt.NoError(t, db.SaveUserInstallation(ctx, installed.ID, ""))
	retrieved, err = db.GetUser(ctx, installed.ID)
	gt.NoError(t, err)
	gt.V(t, retrieved.InstallationID).Equal(types.GitHubAppInstallID(""))

	// Binding to a missing user fails
	err = db.SaveUserInstallation(ctx, types.UserID(fmt.Sprintf("nonexistent-%s", uuid.New().String()[:8])), newInstall)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

// TestRepositoryUpsert tests that the upsert create path applies
// presentation defaults and the update path preserves them.
func TestRepositoryUpsert(t *testing.T, db interfaces.Database) {
	ctx := context.Background()

	user := newTestUser()
	gt.NoError(t, db.CreateUser(ctx, user))

	remote := model.RemoteRepository{
		Name:        "awesome-tool",
		FullName:    fmt.Sprintf("%s/awesome-tool", user.GitHubHandle),
		Description: "a tool",
		Stars:       42,
		PushedAt:    time.Now().Add(-time.Hour).Truncate(time.Microsecond),
		HTMLURL:     "https://github.com/example/awesome-tool",
		Language:    "Go",
		Private:     false,
	}
	enrichment := &model.Enrichment{
		Languages: map[string]int64{"Go": 1000, "Makefile": 20},
		Commits:   128,
	}

	repo := model.NewRepository(user.ID, &remote, enrichment)
	// Seed presentation state as if the user had already curated the
	// portfolio view.
	repo.Pinned = true
	repo.PinOrder = 3
	repo.Visible = false
	repo.Views = 99
	gt.NoError(t, db.UpsertRepository(ctx, repo))

	retrieved, err := db.GetRepository(ctx, user.ID, remote.Name)
	gt.NoError(t, err)
	gt.V(t, retrieved.Description).Equal("a tool")
	gt.V(t, retrieved.Stars).Equal(42)
	gt.V(t, retrieved.Commits).Equal(128)
	gt.V(t, retrieved.Languages["Go"]).Equal(int64(1000))

	// Sync again with changed fetched fields. Presentation state must
	// survive the update.
	remote.Description = "a better tool"
	remote.Stars = 100
	enrichment.Commits = 256
	updated := model.NewRepository(user.ID, &remote, enrichment)
	gt.NoError(t, db.UpsertRepository(ctx, updated))

	retrieved, err = db.GetRepository(ctx, user.ID, remote.Name)
	gt.NoError(t, err)
	gt.V(t, retrieved.Description).Equal("a better tool")
	gt.V(t, retrieved.Stars).Equal(100)
	gt.V(t, retrieved.Commits).Equal(256)
	gt.True(t, retrieved.Pinned)
	gt.V(t, retrieved.PinOrder).Equal(3)
	gt.False(t, retrieved.Visible)
	gt.V(t, retrieved.Views).Equal(99)

	// Private repos default to hidden on create
	private := model.NewRepository(user.ID, &model.RemoteRepository{
		Name:    "secret-project",
		Private: true,
	}, nil)
	gt.NoError(t, db.UpsertRepository(ctx, private))

	retrieved, err = db.GetRepository(ctx, user.ID, "secret-project")
	gt.NoError(t, err)
	gt.False(t, retrieved.Visible)
	gt.V(t, retrieved.Languages).Equal(map[string]int64(nil))
}

// TestRepositoryListDelete tests listing and deletion
func TestRepositoryListDelete(t *testing.T, db interfaces.Database) {
	ctx := context.Background()

	user := newTestUser()
	gt.NoError(t, db.CreateUser(ctx, user))

	names := []string{"alpha", "bravo", "charlie"}
	for _, name := range names {
		repo := model.NewRepository(user.ID, &model.RemoteRepository{Name: name}, nil)
		gt.NoError(t, db.UpsertRepository(ctx, repo))
	}

	repos, err := db.ListRepositories(ctx, user.ID)
	gt.NoError(t, err)
	gt.V(t, len(repos)).Equal(3)

	gt.NoError(t, db.DeleteRepository(ctx, user.ID, "bravo"))

	repos, err = db.ListRepositories(ctx, user.ID)
	gt.NoError(t, err)
	gt.V(t, len(repos)).Equal(2)

	_, err = db.GetRepository(ctx, user.ID, "bravo")
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	// Deleting an absent repository is not an error
	gt.NoError(t, db.DeleteRepository(ctx, user.ID, "bravo"))
}

// TestSyncLogs tests append and latest-since lookup for sync logs
func TestSyncLogs(t *testing.T, db interfaces.Database) {
	ctx := context.Background()

	user := newTestUser()
	gt.NoError(t, db.CreateUser(ctx, user))

	base := time.Now().Truncate(time.Microsecond)

	first := model.NewSyncLog(user.ID, 8, 2, 10, base.Add(-time.Hour))
	gt.NoError(t, db.CreateSyncLog(ctx, first))

	second := model.NewSyncLog(user.ID, 10, 0, 10, base)
	gt.NoError(t, db.CreateSyncLog(ctx, second))

	// Latest log after the cutoff
	log, err := db.LatestSyncLogSince(ctx, user.ID, base.Add(-time.Minute))
	gt.NoError(t, err)
	gt.V(t, log.Status).Equal(types.SyncStatusSuccess)
	gt.V(t, log.ReposSynced).Equal(10)
	gt.V(t, log.Message).Equal("Synced 10 of 10 repositories")

	// Both logs qualify, the newest wins
	log, err = db.LatestSyncLogSince(ctx, user.ID, base.Add(-2*time.Hour))
	gt.NoError(t, err)
	gt.V(t, log.Status).Equal(types.SyncStatusSuccess)

	// Nothing after the cutoff
	_, err = db.LatestSyncLogSince(ctx, user.ID, base.Add(time.Minute))
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}
