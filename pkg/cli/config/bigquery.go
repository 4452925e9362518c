package config

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/gitfolio/gitfolio/pkg/domain/types"
	"github.com/gitfolio/gitfolio/pkg/infra/bq"
)

type BigQuery struct {
	projectID types.GoogleProjectID
	datasetID types.BQDatasetID
	tableID   types.BQTableID
}

func (x *BigQuery) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "bigquery-project-id",
			Usage:       "Google Cloud project ID for BigQuery export",
			Category:    "BigQuery",
			Destination: (*string)(&x.projectID),
			Sources:     cli.EnvVars("GITFOLIO_BIGQUERY_PROJECT_ID"),
		},
		&cli.StringFlag{
			Name:        "bigquery-dataset-id",
			Usage:       "BigQuery dataset ID",
			Category:    "BigQuery",
			Destination: (*string)(&x.datasetID),
			Sources:     cli.EnvVars("GITFOLIO_BIGQUERY_DATASET_ID"),
		},
		&cli.StringFlag{
			Name:        "bigquery-table-id",
			Usage:       "BigQuery table ID",
			Category:    "BigQuery",
			Destination: (*string)(&x.tableID),
			Sources:     cli.EnvVars("GITFOLIO_BIGQUERY_TABLE_ID"),
			Value:       "sync_logs",
		},
	}
}

// NewClient returns a BigQuery client, or nil when the export is not
// configured.
func (x *BigQuery) NewClient(ctx context.Context) (*bq.Client, error) {
	if x.projectID == "" || x.datasetID == "" {
		return nil, nil
	}

	return bq.New(ctx, x.projectID, x.datasetID, x.tableID)
}

func (x BigQuery) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("ProjectID", x.projectID),
		slog.Any("DatasetID", x.datasetID),
		slog.Any("TableID", x.tableID),
	)
}
