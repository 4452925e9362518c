package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . BigQuery GitHubApp StepRunner

import (
	"context"
	"io"
	"net/http"

	"cloud.google.com/go/bigquery"

	"github.com/gitfolio/gitfolio/pkg/domain/model"
	"github.com/gitfolio/gitfolio/pkg/domain/types"
)

// FetchInput describes one outbound GitHub API call performed with an
// installation token. Method defaults to GET.
type FetchInput struct {
	InstallID types.GitHubAppInstallID
	URL       string
	Method    string
	Body      io.Reader
	Header    http.Header
}

type GitHubApp interface {
	// CreateInstallationToken exchanges a signed app assertion for an
	// installation-scoped access token.
	CreateInstallationToken(ctx context.Context, installID types.GitHubAppInstallID) (*model.InstallationToken, error)

	// Fetch performs one authenticated call and returns the raw
	// response. Callers own status inspection and must close the body.
	Fetch(ctx context.Context, input *FetchInput) (*http.Response, error)

	// ListInstallationRepos returns every repository visible to the
	// installation, across all pages.
	ListInstallationRepos(ctx context.Context, installID types.GitHubAppInstallID) ([]*model.RemoteRepository, error)

	// FetchLanguages returns the byte count per language for one
	// repository.
	FetchLanguages(ctx context.Context, installID types.GitHubAppInstallID, languagesURL string) (map[string]int64, error)

	// CountCommits returns the total number of commits of one
	// repository, derived from the Link header of a single-item page.
	CountCommits(ctx context.Context, installID types.GitHubAppInstallID, fullName string) (int, error)
}

// StepRunner executes one named step of a sync run. A step that already
// completed for the given run is not executed again. Forget drops the
// checkpoints of a finished run.
type StepRunner interface {
	RunStep(ctx context.Context, runID types.SyncRunID, name string, fn func(ctx context.Context) error) error
	Forget(runID types.SyncRunID)
}

type BigQuery interface {
	Insert(ctx context.Context, schema bigquery.Schema, data any) error

	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}
