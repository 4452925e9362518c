package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/gitfolio/gitfolio/pkg/domain/model"
	"github.com/gitfolio/gitfolio/pkg/domain/types"
)

// PrepareSync resolves the user's stored installation and builds the
// unit of work for one sync run with a fresh run ID.
func (x *UseCase) PrepareSync(ctx context.Context, userID types.UserID) (*model.SyncReposInput, error) {
	user, err := x.clients.Database().GetUser(ctx, userID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get user",
			goerr.V("userID", userID),
		)
	}

	if user.InstallationID == "" {
		return nil, goerr.Wrap(types.ErrSyncFailed, "GitHub App installation is not configured for user",
			goerr.V("userID", userID),
		)
	}

	return model.NewSyncReposInput(user.ID, user.InstallationID), nil
}
