package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/gitfolio/gitfolio/pkg/domain/model"
	"github.com/gitfolio/gitfolio/pkg/domain/types"
	"github.com/gitfolio/gitfolio/pkg/repository"
)

// PollSyncStatus reports the most recent sync log created after since.
// A missing log means the run has not finished yet and the report says
// so instead of treating it as an error.
func (x *UseCase) PollSyncStatus(ctx context.Context, userID types.UserID, since time.Time) (*model.SyncStatusReport, error) {
	syncLog, err := x.clients.Database().LatestSyncLogSince(ctx, userID, since)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &model.SyncStatusReport{Processing: true}, nil
		}
		return nil, goerr.Wrap(err, "failed to get latest sync log",
			goerr.V("userID", userID),
		)
	}

	return &model.SyncStatusReport{
		Result:  syncLog.Status,
		Message: syncLog.Message,
		Synced:  syncLog.ReposSynced,
		Errors:  syncLog.Errors,
	}, nil
}
