package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"

	"github.com/gitfolio/gitfolio/pkg/domain/model"
	"github.com/gitfolio/gitfolio/pkg/domain/types"
	"github.com/gitfolio/gitfolio/pkg/repository"
	"github.com/gitfolio/gitfolio/pkg/utils/logging"
)

// ApplyRepoPush updates one repository record from a push event. The
// commit count grows by the number of pushed commits; a repository not
// seen before is created with the push as its initial count.
func (x *UseCase) ApplyRepoPush(ctx context.Context, input *model.RepoPushInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	user, ok, err := x.resolveWebhookUser(ctx, input.Owner)
	if err != nil || !ok {
		return err
	}

	enrichment := &model.Enrichment{Commits: input.Commits}
	existing, err := x.clients.Database().GetRepository(ctx, user.ID, input.Repository.Name)
	if err == nil {
		enrichment.Commits = existing.Commits + input.Commits
		enrichment.Languages = existing.Languages
	} else if !errors.Is(err, repository.ErrNotFound) {
		return goerr.Wrap(err, "failed to get repository",
			goerr.V("userID", user.ID),
			goerr.V("repo", input.Repository.Name),
		)
	}

	repo := model.NewRepository(user.ID, &input.Repository, enrichment)
	if err := x.clients.Database().UpsertRepository(ctx, repo); err != nil {
		return goerr.Wrap(err, "failed to upsert repository from push",
			goerr.V("userID", user.ID),
			goerr.V("repo", input.Repository.Name),
		)
	}

	logging.From(ctx).Info("Applied push event",
		slog.Any("user_id", user.ID),
		slog.String("repo", input.Repository.FullName),
		slog.Int("commits", input.Commits),
	)

	return nil
}

// ApplyRepoChange creates or removes one repository record from a
// repository event.
func (x *UseCase) ApplyRepoChange(ctx context.Context, input *model.RepoChangeInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	user, ok, err := x.resolveWebhookUser(ctx, input.Owner)
	if err != nil || !ok {
		return err
	}

	switch input.Action {
	case model.RepoCreated:
		repo := model.NewRepository(user.ID, &input.Repository, nil)
		if err := x.clients.Database().UpsertRepository(ctx, repo); err != nil {
			return goerr.Wrap(err, "failed to create repository from event",
				goerr.V("userID", user.ID),
				goerr.V("repo", input.Repository.Name),
			)
		}

	case model.RepoDeleted:
		if err := x.clients.Database().DeleteRepository(ctx, user.ID, input.Repository.Name); err != nil {
			return goerr.Wrap(err, "failed to delete repository from event",
				goerr.V("userID", user.ID),
				goerr.V("repo", input.Repository.Name),
			)
		}
	}

	logging.From(ctx).Info("Applied repository event",
		slog.Any("user_id", user.ID),
		slog.Any("action", input.Action),
		slog.String("repo", input.Repository.FullName),
	)

	return nil
}

// ApplyInstallationChange binds or clears the user's installation from
// an installation event.
func (x *UseCase) ApplyInstallationChange(ctx context.Context, input *model.InstallationChangeInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	user, ok, err := x.resolveWebhookUser(ctx, input.Owner)
	if err != nil || !ok {
		return err
	}

	installID := input.InstallID
	if input.Removed {
		installID = ""
	}

	if err := x.clients.Database().SaveUserInstallation(ctx, user.ID, installID); err != nil {
		return goerr.Wrap(err, "failed to save user installation",
			goerr.V("userID", user.ID),
		)
	}

	logging.From(ctx).Info("Applied installation event",
		slog.Any("user_id", user.ID),
		slog.Bool("removed", input.Removed),
	)

	return nil
}

// resolveWebhookUser maps a GitHub account to a registered user. Events
// for accounts without a portfolio are ignored, not failed: the app may
// be installed on organizations that never signed up.
func (x *UseCase) resolveWebhookUser(ctx context.Context, owner types.GitHubHandle) (*model.User, bool, error) {
	user, err := x.clients.Database().GetUserByHandle(ctx, owner)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logging.From(ctx).Debug("Ignoring event for unknown account",
				slog.Any("owner", owner),
			)
			return nil, false, nil
		}
		return nil, false, goerr.Wrap(err, "failed to resolve user by handle",
			goerr.V("owner", owner),
		)
	}

	return user, true, nil
}
