package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"
	"time"

	"github.com/gitfolio/gitfolio/pkg/domain/model"
	"github.com/gitfolio/gitfolio/pkg/domain/types"
)

type UseCase interface {
	// PrepareSync resolves the user's stored installation and builds
	// the unit of work for one run.
	PrepareSync(ctx context.Context, userID types.UserID) (*model.SyncReposInput, error)

	// SyncRepos runs the full pipeline: list, enrich, reconcile,
	// summarize.
	SyncRepos(ctx context.Context, input *model.SyncReposInput) (*model.SyncReposOutput, error)

	// PollSyncStatus reports the most recent sync log created after
	// since, or a still-processing indicator.
	PollSyncStatus(ctx context.Context, userID types.UserID, since time.Time) (*model.SyncStatusReport, error)

	// Webhook-driven single-record updates.
	ApplyRepoPush(ctx context.Context, input *model.RepoPushInput) error
	ApplyRepoChange(ctx context.Context, input *model.RepoChangeInput) error
	ApplyInstallationChange(ctx context.Context, input *model.InstallationChangeInput) error
}
