package interfaces

import (
	"context"
	"time"

	"github.com/gitfolio/gitfolio/pkg/domain/model"
	"github.com/gitfolio/gitfolio/pkg/domain/types"
)

//go:generate moq -out ../mock/repository.go -pkg mock . Database

// Database is the durable store for users, portfolio repositories and
// sync logs.
type Database interface {
	// User operations
	CreateUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id types.UserID) (*model.User, error)
	GetUserByHandle(ctx context.Context, handle types.GitHubHandle) (*model.User, error)
	ListInstalledUsers(ctx context.Context) ([]*model.User, error)
	SaveUserInstallation(ctx context.Context, id types.UserID, installID types.GitHubAppInstallID) error
	UpdateUserLastSyncedAt(ctx context.Context, id types.UserID, ts time.Time) error

	// Repository operations. UpsertRepository keys on (UserID, Name):
	// the update path overwrites fetched and derived fields, the create
	// path additionally applies the record's presentation defaults.
	UpsertRepository(ctx context.Context, repo *model.Repository) error
	GetRepository(ctx context.Context, userID types.UserID, name string) (*model.Repository, error)
	ListRepositories(ctx context.Context, userID types.UserID) ([]*model.Repository, error)
	DeleteRepository(ctx context.Context, userID types.UserID, name string) error

	// Sync log operations. Logs are append-only.
	CreateSyncLog(ctx context.Context, log *model.SyncLog) error
	LatestSyncLogSince(ctx context.Context, userID types.UserID, since time.Time) (*model.SyncLog, error)
}
