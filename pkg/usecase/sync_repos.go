package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"

	"github.com/gitfolio/gitfolio/pkg/domain/model"
	"github.com/gitfolio/gitfolio/pkg/domain/types"
	"github.com/gitfolio/gitfolio/pkg/utils/logging"
)

// SyncRepos runs the full sync pipeline for one user: list every
// repository visible to the installation, enrich each with languages
// and commit count, and upsert the results. Enrichment failures degrade
// the record instead of failing the run; upsert failures are counted
// per repository and reported in the summary log.
func (x *UseCase) SyncRepos(ctx context.Context, input *model.SyncReposInput) (*model.SyncReposOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	logger := logging.From(ctx)
	logger.Info("Starting repository sync",
		slog.Any("user_id", input.UserID),
		slog.Any("run_id", input.RunID),
	)

	repos, err := x.clients.GitHubApp().ListInstallationRepos(ctx, input.InstallID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list installation repositories",
			goerr.V("userID", input.UserID),
			goerr.V("runID", input.RunID),
		)
	}

	if len(repos) == 0 {
		logger.Warn("No repositories found for installation, nothing to sync",
			slog.Any("user_id", input.UserID),
		)
		x.clients.Steps().Forget(input.RunID)
		return &model.SyncReposOutput{}, nil
	}

	output := &model.SyncReposOutput{
		Total: len(repos),
	}

	for i, remote := range repos {
		logger.Info("Syncing repository",
			slog.Int("progress", i+1),
			slog.Int("total", len(repos)),
			slog.String("repo", remote.FullName),
		)

		err := x.clients.Steps().RunStep(ctx, input.RunID, "sync-"+remote.Name, func(ctx context.Context) error {
			enrichment := x.enrichRepo(ctx, input.InstallID, remote)
			repo := model.NewRepository(input.UserID, remote, enrichment)

			if err := x.clients.Database().UpsertRepository(ctx, repo); err != nil {
				return goerr.Wrap(err, "failed to upsert repository",
					goerr.V("repo", remote.FullName),
				)
			}
			return nil
		})
		if err != nil {
			output.Errors++
			output.ErrorDetails = append(output.ErrorDetails, remote.Name+": "+err.Error())
			logger.Warn("Failed to sync repository",
				slog.String("repo", remote.FullName),
				slog.String("error", err.Error()),
			)
			continue
		}

		output.Synced++
	}

	// The sync timestamp advances even when every repository failed: the
	// run itself happened, and the summary log carries the error status.
	now := logging.CtxTime(ctx)
	err = x.clients.Steps().RunStep(ctx, input.RunID, "update-sync-timestamp", func(ctx context.Context) error {
		return x.clients.Database().UpdateUserLastSyncedAt(ctx, input.UserID, now)
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update last synced time",
			goerr.V("userID", input.UserID),
		)
	}

	syncLog := model.NewSyncLog(input.UserID, output.Synced, output.Errors, output.Total, now)
	err = x.clients.Steps().RunStep(ctx, input.RunID, "log-sync-activity", func(ctx context.Context) error {
		return x.clients.Database().CreateSyncLog(ctx, syncLog)
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create sync log",
			goerr.V("userID", input.UserID),
		)
	}

	if err := x.exportSyncLog(ctx, syncLog); err != nil {
		logger.Warn("Failed to export sync log to BigQuery",
			slog.Any("user_id", input.UserID),
			slog.String("error", err.Error()),
		)
	}

	x.clients.Steps().Forget(input.RunID)

	logger.Info("Completed repository sync",
		slog.Any("user_id", input.UserID),
		slog.Any("run_id", input.RunID),
		slog.Int("total", output.Total),
		slog.Int("synced", output.Synced),
		slog.Int("errors", output.Errors),
		slog.Any("status", syncLog.Status),
	)

	return output, nil
}

// enrichRepo gathers languages and commit count for one repository. It
// never fails: auxiliary lookups that error leave their field at the
// zero value and the sync continues with a degraded record.
func (x *UseCase) enrichRepo(ctx context.Context, installID types.GitHubAppInstallID, remote *model.RemoteRepository) *model.Enrichment {
	logger := logging.From(ctx)
	enrichment := &model.Enrichment{}

	if remote.LanguagesURL != "" {
		languages, err := x.clients.GitHubApp().FetchLanguages(ctx, installID, remote.LanguagesURL)
		if err != nil {
			logger.Warn("Failed to fetch repository languages",
				slog.String("repo", remote.FullName),
				slog.String("error", err.Error()),
			)
		} else {
			enrichment.Languages = languages
		}
	}

	commits, err := x.clients.GitHubApp().CountCommits(ctx, installID, remote.FullName)
	if err != nil {
		logger.Warn("Failed to count commits",
			slog.String("repo", remote.FullName),
			slog.String("error", err.Error()),
		)
	} else {
		enrichment.Commits = commits
	}

	return enrichment
}
