package postgres_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/gitfolio/gitfolio/pkg/domain/types"
	"github.com/gitfolio/gitfolio/pkg/repository/postgres"
	"github.com/gitfolio/gitfolio/pkg/repository/testhelper"
	"github.com/gitfolio/gitfolio/pkg/utils/testutil"
)

func TestPostgresDatabase(t *testing.T) {
	dsn := testutil.GetEnvOrSkip(t, "TEST_POSTGRES_DSN")

	ctx := context.Background()
	client := gt.R1(postgres.New(ctx, types.DatabaseDSN(dsn))).NoError(t)
	defer client.Close()

	gt.NoError(t, client.Migrate())

	testhelper.TestAll(t, client)
}
