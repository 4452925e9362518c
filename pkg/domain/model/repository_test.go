package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/gitfolio/gitfolio/pkg/domain/model"
)

func TestNewRepository(t *testing.T) {
	remote := &model.RemoteRepository{
		Name:        "hello",
		FullName:    "octocat/hello",
		Description: "sample",
		Stars:       5,
		PushedAt:    time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		HTMLURL:     "https://github.com/octocat/hello",
		Language:    "Go",
		Private:     false,
		Fork:        true,
	}

	t.Run("public repository is visible by default", func(t *testing.T) {
		repo := model.NewRepository("user-1", remote, &model.Enrichment{
			Languages: map[string]int64{"Go": 100},
			Commits:   42,
		})

		gt.V(t, repo.Name).Equal("hello")
		gt.V(t, repo.Stars).Equal(5)
		gt.V(t, repo.Commits).Equal(42)
		gt.V(t, repo.Languages["Go"]).Equal(int64(100))
		gt.True(t, repo.Fork)
		gt.True(t, repo.Visible)
		gt.False(t, repo.Pinned)
	})

	t.Run("private repository is hidden by default", func(t *testing.T) {
		private := *remote
		private.Private = true

		repo := model.NewRepository("user-1", &private, nil)
		gt.False(t, repo.Visible)
		gt.V(t, repo.Commits).Equal(0)
		gt.V(t, repo.Languages).Equal(map[string]int64(nil))
	})
}

func TestRemoteRepositoryValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		repo := &model.RemoteRepository{Name: "hello", FullName: "octocat/hello"}
		gt.NoError(t, repo.Validate())
	})

	t.Run("missing name", func(t *testing.T) {
		repo := &model.RemoteRepository{FullName: "octocat/hello"}
		gt.Error(t, repo.Validate())
	})

	t.Run("missing full name", func(t *testing.T) {
		repo := &model.RemoteRepository{Name: "hello"}
		gt.Error(t, repo.Validate())
	})
}
