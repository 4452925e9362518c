package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/gitfolio/gitfolio/pkg/domain/model"
	"github.com/gitfolio/gitfolio/pkg/infra"
	"github.com/gitfolio/gitfolio/pkg/repository"
	"github.com/gitfolio/gitfolio/pkg/repository/memory"
	"github.com/gitfolio/gitfolio/pkg/usecase"
)

func pushedRepo(name string) model.RemoteRepository {
	return model.RemoteRepository{
		Name:     name,
		FullName: "octocat/" + name,
		HTMLURL:  "https://github.com/octocat/" + name,
		Language: "Go",
		PushedAt: time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC),
	}
}

func TestApplyRepoPush(t *testing.T) {
	ctx := context.Background()
	db := memory.New()
	user := seedUser(t, db)
	uc := usecase.New(infra.New(infra.WithDatabase(db)))

	t.Run("existing repository accumulates commits", func(t *testing.T) {
		seeded := model.NewRepository(user.ID, &model.RemoteRepository{
			Name:     "existing",
			FullName: "octocat/existing",
		}, &model.Enrichment{
			Commits:   100,
			Languages: map[string]int64{"Go": 500},
		})
		seeded.Pinned = true
		gt.NoError(t, db.UpsertRepository(ctx, seeded))

		gt.NoError(t, uc.ApplyRepoPush(ctx, &model.RepoPushInput{
			Owner:      user.GitHubHandle,
			Repository: pushedRepo("existing"),
			Commits:    3,
		}))

		repo := gt.R1(db.GetRepository(ctx, user.ID, "existing")).NoError(t)
		gt.V(t, repo.Commits).Equal(103)
		gt.V(t, repo.Languages).Equal(map[string]int64{"Go": 500})
		gt.True(t, repo.Pinned)
	})

	t.Run("unseen repository is created from the push", func(t *testing.T) {
		gt.NoError(t, uc.ApplyRepoPush(ctx, &model.RepoPushInput{
			Owner:      user.GitHubHandle,
			Repository: pushedRepo("fresh"),
			Commits:    2,
		}))

		repo := gt.R1(db.GetRepository(ctx, user.ID, "fresh")).NoError(t)
		gt.V(t, repo.Commits).Equal(2)
		gt.True(t, repo.Visible)
	})

	t.Run("unknown owner is ignored", func(t *testing.T) {
		gt.NoError(t, uc.ApplyRepoPush(ctx, &model.RepoPushInput{
			Owner:      "stranger",
			Repository: pushedRepo("theirs"),
			Commits:    1,
		}))

		_, err := db.GetRepository(ctx, user.ID, "theirs")
		gt.True(t, errors.Is(err, repository.ErrNotFound))
	})

	t.Run("invalid input is rejected", func(t *testing.T) {
		err := uc.ApplyRepoPush(ctx, &model.RepoPushInput{
			Repository: pushedRepo("no-owner"),
		})
		gt.Error(t, err)
	})
}

func TestApplyRepoChange(t *testing.T) {
	ctx := context.Background()
	db := memory.New()
	user := seedUser(t, db)
	uc := usecase.New(infra.New(infra.WithDatabase(db)))

	t.Run("created event adds the repository", func(t *testing.T) {
		gt.NoError(t, uc.ApplyRepoChange(ctx, &model.RepoChangeInput{
			Owner:      user.GitHubHandle,
			Action:     model.RepoCreated,
			Repository: pushedRepo("brand-new"),
		}))

		repo := gt.R1(db.GetRepository(ctx, user.ID, "brand-new")).NoError(t)
		gt.V(t, repo.Commits).Equal(0)
		gt.True(t, repo.Visible)
	})

	t.Run("deleted event removes the repository", func(t *testing.T) {
		gt.NoError(t, uc.ApplyRepoChange(ctx, &model.RepoChangeInput{
			Owner:      user.GitHubHandle,
			Action:     model.RepoDeleted,
			Repository: pushedRepo("brand-new"),
		}))

		_, err := db.GetRepository(ctx, user.ID, "brand-new")
		gt.True(t, errors.Is(err, repository.ErrNotFound))
	})

	t.Run("unsupported action is rejected", func(t *testing.T) {
		err := uc.ApplyRepoChange(ctx, &model.RepoChangeInput{
			Owner:      user.GitHubHandle,
			Action:     "archived",
			Repository: pushedRepo("whatever"),
		})
		gt.Error(t, err)
	})
}

func TestApplyInstallationChange(t *testing.T) {
	ctx := context.Background()
	db := memory.New()
	user := seedUser(t, db)
	uc := usecase.New(infra.New(infra.WithDatabase(db)))

	t.Run("created event binds the installation", func(t *testing.T) {
		gt.NoError(t, uc.ApplyInstallationChange(ctx, &model.InstallationChangeInput{
			Owner:     user.GitHubHandle,
			InstallID: "inst-99",
		}))

		updated := gt.R1(db.GetUser(ctx, user.ID)).NoError(t)
		gt.V(t, updated.InstallationID).Equal("inst-99")
	})

	t.Run("deleted event clears the installation", func(t *testing.T) {
		gt.NoError(t, uc.ApplyInstallationChange(ctx, &model.InstallationChangeInput{
			Owner:   user.GitHubHandle,
			Removed: true,
		}))

		updated := gt.R1(db.GetUser(ctx, user.ID)).NoError(t)
		gt.V(t, string(updated.InstallationID)).Equal("")
	})

	t.Run("unknown owner is ignored", func(t *testing.T) {
		gt.NoError(t, uc.ApplyInstallationChange(ctx, &model.InstallationChangeInput{
			Owner:     "stranger",
			InstallID: "inst-1",
		}))
	})
}
