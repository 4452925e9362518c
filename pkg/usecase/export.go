package usecase

import (
	"context"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"

	"github.com/gitfolio/gitfolio/pkg/domain/interfaces"
	"github.com/gitfolio/gitfolio/pkg/domain/model"
)

// exportSyncLog appends one sync log record to the analytics table. The
// export is best-effort; callers treat a failure as a warning.
func (x *UseCase) exportSyncLog(ctx context.Context, syncLog *model.SyncLog) error {
	bq := x.clients.BigQuery()
	if bq == nil {
		return nil
	}

	rawRecord := &model.SyncLogRawRecord{
		SyncLog:   *syncLog,
		CreatedAt: syncLog.CreatedAt.UnixMicro(),
	}

	schema, err := createOrUpdateSyncLogTable(ctx, bq, rawRecord)
	if err != nil {
		return err
	}

	if err := bq.Insert(ctx, schema, rawRecord); err != nil {
		return goerr.Wrap(err, "failed to insert sync log to BigQuery")
	}

	return nil
}

func createOrUpdateSyncLogTable(ctx context.Context, bq interfaces.BigQuery, record *model.SyncLogRawRecord) (bigquery.Schema, error) {
	schema, err := bqs.Infer(record)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to infer sync log schema")
	}

	metaData, err := bq.GetMetadata(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get BigQuery table metadata")
	}
	if metaData == nil {
		if err := bq.CreateTable(ctx, &bigquery.TableMetadata{
			Schema: schema,
		}); err != nil {
			return nil, goerr.Wrap(err, "failed to create BigQuery table")
		}

		return schema, nil
	}

	if bqs.Equal(metaData.Schema, schema) {
		return schema, nil
	}

	mergedSchema, err := bqs.Merge(metaData.Schema, schema)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to merge BigQuery schema")
	}
	if err := bq.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
		Schema: mergedSchema,
	}, metaData.ETag); err != nil {
		return nil, goerr.Wrap(err, "failed to update BigQuery table")
	}

	return mergedSchema, nil
}
