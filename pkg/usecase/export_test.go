package usecase_test

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/gitfolio/gitfolio/pkg/domain/mock"
	"github.com/gitfolio/gitfolio/pkg/domain/model"
	"github.com/gitfolio/gitfolio/pkg/domain/types"
	"github.com/gitfolio/gitfolio/pkg/infra"
	"github.com/gitfolio/gitfolio/pkg/repository/memory"
	"github.com/gitfolio/gitfolio/pkg/usecase"
)

func TestSyncReposExportsToBigQuery(t *testing.T) {
	ctx := testCtx()

	db := memory.New()
	user := seedUser(t, db)
	gh := healthyGitHubApp(remoteRepos(2))

	bqMock := &mock.BigQueryMock{
		GetMetadataFunc: func(ctx context.Context) (*bigquery.TableMetadata, error) {
			return nil, nil
		},
		CreateTableFunc: func(ctx context.Context, md *bigquery.TableMetadata) error {
			return nil
		},
		InsertFunc: func(ctx context.Context, schema bigquery.Schema, data any) error {
			return nil
		},
	}

	uc := usecase.New(infra.New(
		infra.WithGitHubApp(gh),
		infra.WithDatabase(db),
		infra.WithBigQuery(bqMock),
	))

	_, err := uc.SyncRepos(ctx, model.NewSyncReposInput(user.ID, user.InstallationID))
	gt.NoError(t, err)

	// Missing table is created before the first insert
	gt.V(t, len(bqMock.CreateTableCalls())).Equal(1)

	inserts := bqMock.InsertCalls()
	gt.V(t, len(inserts)).Equal(1)

	record := gt.Cast[*model.SyncLogRawRecord](t, inserts[0].Data)
	gt.V(t, record.UserID).Equal(user.ID)
	gt.V(t, record.Status).Equal(types.SyncStatusSuccess)
	gt.V(t, record.CreatedAt).Equal(testNow.UnixMicro())
}

func TestSyncReposExportFailureIsSoft(t *testing.T) {
	ctx := testCtx()

	db := memory.New()
	user := seedUser(t, db)
	gh := healthyGitHubApp(remoteRepos(1))

	bqMock := &mock.BigQueryMock{
		GetMetadataFunc: func(ctx context.Context) (*bigquery.TableMetadata, error) {
			return nil, goerr.New("dataset unreachable")
		},
	}

	uc := usecase.New(infra.New(
		infra.WithGitHubApp(gh),
		infra.WithDatabase(db),
		infra.WithBigQuery(bqMock),
	))

	// The sync result and summary log survive a broken export
	output := gt.R1(uc.SyncRepos(ctx, model.NewSyncReposInput(user.ID, user.InstallationID))).NoError(t)
	gt.V(t, output.Synced).Equal(1)

	report, err := uc.PollSyncStatus(ctx, user.ID, testNow.Add(-time.Minute))
	gt.NoError(t, err)
	gt.V(t, report.Result).Equal(types.SyncStatusSuccess)
}
