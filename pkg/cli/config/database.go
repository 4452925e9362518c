package config

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/gitfolio/gitfolio/pkg/domain/types"
	"github.com/gitfolio/gitfolio/pkg/repository/postgres"
)

type Database struct {
	dsn types.DatabaseDSN `masq:"secret"`
}

func (x *Database) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "database-dsn",
			Usage:       "PostgreSQL connection string",
			Category:    "Database",
			Destination: (*string)(&x.dsn),
			Sources:     cli.EnvVars("GITFOLIO_DATABASE_DSN"),
			Required:    true,
		},
	}
}

// NewClient opens the database and applies pending migrations.
func (x *Database) NewClient(ctx context.Context) (*postgres.Client, error) {
	client, err := postgres.New(ctx, x.dsn)
	if err != nil {
		return nil, err
	}

	if err := client.Migrate(); err != nil {
		return nil, err
	}

	return client, nil
}

func (x Database) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("DSN.len", len(x.dsn)),
	)
}
