package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"

	"github.com/gitfolio/gitfolio/pkg/cli/config"
	"github.com/gitfolio/gitfolio/pkg/domain/interfaces"
	"github.com/gitfolio/gitfolio/pkg/domain/types"
	"github.com/gitfolio/gitfolio/pkg/infra"
	"github.com/gitfolio/gitfolio/pkg/usecase"
	"github.com/gitfolio/gitfolio/pkg/utils/logging"
	"github.com/gitfolio/gitfolio/pkg/utils/safe"
)

func syncCommand() *cli.Command {
	var (
		userID  string
		syncAll bool

		githubApp config.GitHubApp
		database  config.Database
		bigQuery  config.BigQuery
		sentry    config.Sentry
	)
	syncFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "user",
			Usage:       "User ID to sync",
			Aliases:     []string{"u"},
			Sources:     cli.EnvVars("GITFOLIO_SYNC_USER"),
			Destination: &userID,
		},
		&cli.BoolFlag{
			Name:        "all",
			Usage:       "Sync every user with a bound installation",
			Sources:     cli.EnvVars("GITFOLIO_SYNC_ALL"),
			Destination: &syncAll,
		},
	}

	return &cli.Command{
		Name:  "sync",
		Usage: "One-shot repository sync",
		Flags: slice.Flatten(
			syncFlags,
			githubApp.Flags(),
			database.Flags(),
			bigQuery.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			if (userID == "") != syncAll {
				return goerr.Wrap(types.ErrInvalidOption, "specify exactly one of --user or --all")
			}

			logging.Default().Info("starting sync",
				slog.String("user", userID),
				slog.Bool("all", syncAll),
				slog.Any("GitHubApp", githubApp),
				slog.Any("Database", database),
				slog.Any("BigQuery", bigQuery),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			ghApp, err := githubApp.New()
			if err != nil {
				return err
			}

			db, err := database.NewClient(ctx)
			if err != nil {
				return err
			}
			defer safe.Close(db)

			infraOptions := []infra.Option{
				infra.WithGitHubApp(ghApp),
				infra.WithDatabase(db),
			}

			if bqClient, err := bigQuery.NewClient(ctx); err != nil {
				return err
			} else if bqClient != nil {
				infraOptions = append(infraOptions, infra.WithBigQuery(bqClient))
			}

			uc := usecase.New(infra.New(infraOptions...))

			if syncAll {
				return syncAllUsers(ctx, uc, db)
			}

			return syncOneUser(ctx, uc, types.UserID(userID))
		},
	}
}

func syncOneUser(ctx context.Context, uc interfaces.UseCase, userID types.UserID) error {
	input, err := uc.PrepareSync(ctx, userID)
	if err != nil {
		return err
	}

	output, err := uc.SyncRepos(ctx, input)
	if err != nil {
		return err
	}

	logging.From(ctx).Info("sync finished",
		slog.Any("user_id", userID),
		slog.Int("total", output.Total),
		slog.Int("synced", output.Synced),
		slog.Int("errors", output.Errors),
	)

	return nil
}

func syncAllUsers(ctx context.Context, uc interfaces.UseCase, db interfaces.Database) error {
	logger := logging.From(ctx)

	users, err := db.ListInstalledUsers(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to list installed users")
	}

	if len(users) == 0 {
		logger.Warn("No users with a bound installation")
		return nil
	}

	var successCount, failureCount int
	for i, user := range users {
		logger.Info("Syncing user",
			slog.Int("progress", i+1),
			slog.Int("total", len(users)),
			slog.Any("user_id", user.ID),
		)

		if err := syncOneUser(ctx, uc, user.ID); err != nil {
			failureCount++
			logger.Warn("Failed to sync user",
				slog.Any("user_id", user.ID),
				slog.String("error", err.Error()),
			)
			continue
		}

		successCount++
	}

	logger.Info("Completed sync for all users",
		slog.Int("total", len(users)),
		slog.Int("success", successCount),
		slog.Int("failure", failureCount),
	)

	if failureCount > 0 {
		return goerr.New("some users failed to sync",
			goerr.V("success_count", successCount),
			goerr.V("failure_count", failureCount),
		)
	}

	return nil
}
