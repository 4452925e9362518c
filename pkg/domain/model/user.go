package model

import (
	"time"

	"github.com/gitfolio/gitfolio/pkg/domain/types"
)

// User is the owner of a portfolio. InstallationID is empty until the
// GitHub App has been installed for the account.
type User struct {
	ID             types.UserID
	Email          string
	GitHubHandle   types.GitHubHandle
	InstallationID types.GitHubAppInstallID
	LastSyncedAt   time.Time
	CreatedAt      time.Time
}
