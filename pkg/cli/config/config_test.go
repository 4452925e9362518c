package config_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/gitfolio/gitfolio/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func flagNames(flags []cli.Flag) map[string]bool {
	names := make(map[string]bool)
	for _, flag := range flags {
		names[flag.Names()[0]] = true
	}
	return names
}

func TestGitHubAppFlags(t *testing.T) {
	appConfig := &config.GitHubApp{}
	flags := appConfig.Flags()

	gt.V(t, len(flags)).Equal(3)

	names := flagNames(flags)
	gt.True(t, names["github-app-id"])
	gt.True(t, names["github-app-private-key"])
	gt.True(t, names["github-app-secret"])
}

func TestDatabaseFlags(t *testing.T) {
	dbConfig := &config.Database{}
	flags := dbConfig.Flags()

	gt.V(t, len(flags)).Equal(1)
	gt.True(t, flagNames(flags)["database-dsn"])
}

func TestBigQueryFlags(t *testing.T) {
	bqConfig := &config.BigQuery{}
	flags := bqConfig.Flags()

	gt.V(t, len(flags)).Equal(3)

	names := flagNames(flags)
	gt.True(t, names["bigquery-project-id"])
	gt.True(t, names["bigquery-dataset-id"])
	gt.True(t, names["bigquery-table-id"])
}

func TestSentryFlags(t *testing.T) {
	sentryConfig := &config.Sentry{}
	flags := sentryConfig.Flags()

	gt.V(t, len(flags)).Equal(2)

	names := flagNames(flags)
	gt.True(t, names["sentry-dsn"])
	gt.True(t, names["sentry-env"])
}
