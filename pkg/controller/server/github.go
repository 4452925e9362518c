package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"

	"github.com/gitfolio/gitfolio/pkg/domain/interfaces"
	"github.com/gitfolio/gitfolio/pkg/domain/model"
	"github.com/gitfolio/gitfolio/pkg/domain/types"
	"github.com/gitfolio/gitfolio/pkg/utils/logging"
)

// githubEvent holds at most one parsed portfolio update derived from a
// webhook delivery. An empty value means the event carries nothing to
// apply.
type githubEvent struct {
	push    *model.RepoPushInput
	change  *model.RepoChangeInput
	install *model.InstallationChangeInput
}

// validateGitHubEvent validates the webhook signature and parses the
// delivery into a portfolio update.
func validateGitHubEvent(r *http.Request, key types.GitHubAppSecret) (*githubEvent, error) {
	ctx := r.Context()
	payload, err := github.ValidatePayload(r, []byte(key))
	if err != nil {
		return nil, goerr.Wrap(err, "validating payload")
	}

	event, err := github.ParseWebHook(github.WebHookType(r), payload)
	if err != nil {
		return nil, goerr.Wrap(err, "parsing webhook")
	}

	logging.From(ctx).Info("Received GitHub event",
		slog.String("type", github.WebHookType(r)),
	)

	return githubEventToInput(event), nil
}

// applyGitHubEvent runs the usecase operation matching the parsed
// event. The webhook updates are single-record writes and run
// synchronously in the request.
func applyGitHubEvent(ctx context.Context, uc interfaces.UseCase, event *githubEvent) error {
	switch {
	case event.push != nil:
		return uc.ApplyRepoPush(ctx, event.push)
	case event.change != nil:
		return uc.ApplyRepoChange(ctx, event.change)
	case event.install != nil:
		return uc.ApplyInstallationChange(ctx, event.install)
	}
	return nil
}

func githubEventToInput(event interface{}) *githubEvent {
	switch ev := event.(type) {
	case *github.PushEvent:
		repo := ev.GetRepo()
		if repo.GetName() == "" {
			logging.Default().Warn("ignore push event without repository", slog.Any("event", ev))
			return &githubEvent{}
		}

		return &githubEvent{
			push: &model.RepoPushInput{
				Owner: types.GitHubHandle(repo.GetOwner().GetLogin()),
				Repository: model.RemoteRepository{
					Name:        repo.GetName(),
					FullName:    repo.GetFullName(),
					Description: repo.GetDescription(),
					Stars:       repo.GetStargazersCount(),
					PushedAt:    repo.GetPushedAt().Time,
					HTMLURL:     repo.GetHTMLURL(),
					Language:    repo.GetLanguage(),
					Private:     repo.GetPrivate(),
					Fork:        repo.GetFork(),
				},
				Commits: len(ev.Commits),
			},
		}

	case *github.RepositoryEvent:
		var action model.RepoChangeAction
		switch ev.GetAction() {
		case "created":
			action = model.RepoCreated
		case "deleted":
			action = model.RepoDeleted
		default:
			logging.Default().Debug("ignore repository event", slog.String("action", ev.GetAction()))
			return &githubEvent{}
		}

		repo := ev.GetRepo()
		return &githubEvent{
			change: &model.RepoChangeInput{
				Owner:  types.GitHubHandle(repo.GetOwner().GetLogin()),
				Action: action,
				Repository: model.RemoteRepository{
					Name:         repo.GetName(),
					FullName:     repo.GetFullName(),
					Description:  repo.GetDescription(),
					Stars:        repo.GetStargazersCount(),
					PushedAt:     repo.GetPushedAt().Time,
					HTMLURL:      repo.GetHTMLURL(),
					Language:     repo.GetLanguage(),
					LanguagesURL: repo.GetLanguagesURL(),
					Private:      repo.GetPrivate(),
					Fork:         repo.GetFork(),
				},
			},
		}

	case *github.InstallationEvent:
		install := ev.GetInstallation()
		switch ev.GetAction() {
		case "created":
			return &githubEvent{
				install: &model.InstallationChangeInput{
					Owner:     types.GitHubHandle(install.GetAccount().GetLogin()),
					InstallID: types.GitHubAppInstallID(strconv.FormatInt(install.GetID(), 10)),
				},
			}
		case "deleted":
			return &githubEvent{
				install: &model.InstallationChangeInput{
					Owner:   types.GitHubHandle(install.GetAccount().GetLogin()),
					Removed: true,
				},
			}
		default:
			logging.Default().Debug("ignore installation event", slog.String("action", ev.GetAction()))
			return &githubEvent{}
		}

	case *github.InstallationRepositoriesEvent:
		return &githubEvent{} // ignore

	default:
		logging.Default().Warn("unsupported event", slog.Any("event", fmt.Sprintf("%T", event)))
		return &githubEvent{}
	}
}

// runRepoSync executes the repository sync in the provided context.
// This function is designed to be called from a background goroutine.
func runRepoSync(ctx context.Context, uc interfaces.UseCase, input *model.SyncReposInput) {
	logger := logging.From(ctx).With(slog.Any("input", input))
	logger.Info("Starting background repository sync")

	if _, err := uc.SyncRepos(ctx, input); err != nil {
		logger.Error("Background sync failed", slog.Any("error", err))
	} else {
		logger.Info("Background repository sync completed")
	}
}
