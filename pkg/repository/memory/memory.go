package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/gitfolio/gitfolio/pkg/domain/interfaces"
	"github.com/gitfolio/gitfolio/pkg/domain/model"
	"github.com/gitfolio/gitfolio/pkg/domain/types"
	"github.com/gitfolio/gitfolio/pkg/repository"
)

type userData struct {
	user  *model.User
	repos map[string]*model.Repository
	logs  []*model.SyncLog
}

type database struct {
	mu    sync.RWMutex
	users map[types.UserID]*userData
}

var _ interfaces.Database = (*database)(nil)

// New creates a new in-memory database
func New() interfaces.Database {
	return &database{
		users: make(map[types.UserID]*userData),
	}
}

// User operations

func (r *database) CreateUser(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.ID]; exists {
		return goerr.Wrap(repository.ErrAlreadyExists, "user already exists",
			goerr.V("userID", user.ID),
		)
	}

	r.users[user.ID] = &userData{
		user:  copyUser(user),
		repos: make(map[string]*model.Repository),
	}

	return nil
}

func (r *database) GetUser(ctx context.Context, id types.UserID) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.users[id]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "user not found",
			goerr.V("userID", id),
		)
	}

	return copyUser(data.user), nil
}

func (r *database) GetUserByHandle(ctx context.Context, handle types.GitHubHandle) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, data := range r.users {
		if data.user.GitHubHandle == handle {
			return copyUser(data.user), nil
		}
	}

	return nil, goerr.Wrap(repository.ErrNotFound, "user not found",
		goerr.V("handle", handle),
	)
}

func (r *database) ListInstalledUsers(ctx context.Context) ([]*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var users []*model.User
	for _, data := range r.users {
		if data.user.InstallationID != "" {
			users = append(users, copyUser(data.user))
		}
	}

	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })

	return users, nil
}

func (r *database) SaveUserInstallation(ctx context.Context, id types.UserID, installID types.GitHubAppInstallID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, exists := r.users[id]
	if !exists {
		return goerr.Wrap(repository.ErrNotFound, "user not found",
			goerr.V("userID", id),
		)
	}

	data.user.InstallationID = installID
	return nil
}

func (r *database) UpdateUserLastSyncedAt(ctx context.Context, id types.UserID, ts time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, exists := r.users[id]
	if !exists {
		return goerr.Wrap(repository.ErrNotFound, "user not found",
			goerr.V("userID", id),
		)
	}

	data.user.LastSyncedAt = ts
	return nil
}

// Repository operations

func (r *database) UpsertRepository(ctx context.Context, repo *model.Repository) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, exists := r.users[repo.UserID]
	if !exists {
		return goerr.Wrap(repository.ErrNotFound, "user not found",
			goerr.V("userID", repo.UserID),
		)
	}

	now := time.Now()
	if existing, ok := data.repos[repo.Name]; ok {
		// Update path: fetched and derived fields are overwritten,
		// presentation state and counters survive.
		updated := copyRepository(repo)
		updated.Visible = existing.Visible
		updated.Pinned = existing.Pinned
		updated.PinOrder = existing.PinOrder
		updated.Views = existing.Views
		updated.CreatedAt = existing.CreatedAt
		updated.UpdatedAt = now
		data.repos[repo.Name] = updated
		return nil
	}

	created := copyRepository(repo)
	created.CreatedAt = now
	created.UpdatedAt = now
	data.repos[repo.Name] = created

	return nil
}

func (r *database) GetRepository(ctx context.Context, userID types.UserID, name string) (*model.Repository, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.users[userID]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "user not found",
			goerr.V("userID", userID),
		)
	}

	repo, exists := data.repos[name]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "repository not found",
			goerr.V("userID", userID),
			goerr.V("name", name),
		)
	}

	return copyRepository(repo), nil
}

func (r *database) ListRepositories(ctx context.Context, userID types.UserID) ([]*model.Repository, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.users[userID]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "user not found",
			goerr.V("userID", userID),
		)
	}

	var repos []*model.Repository
	for _, repo := range data.repos {
		repos = append(repos, copyRepository(repo))
	}

	sort.Slice(repos, func(i, j int) bool { return repos[i].Name < repos[j].Name })

	return repos, nil
}

func (r *database) DeleteRepository(ctx context.Context, userID types.UserID, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, exists := r.users[userID]
	if !exists {
		return goerr.Wrap(repository.ErrNotFound, "user not found",
			goerr.V("userID", userID),
		)
	}

	delete(data.repos, name)
	return nil
}

// Sync log operations

func (r *database) CreateSyncLog(ctx context.Context, log *model.SyncLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, exists := r.users[log.UserID]
	if !exists {
		return goerr.Wrap(repository.ErrNotFound, "user not found",
			goerr.V("userID", log.UserID),
		)
	}

	cpy := *log
	data.logs = append(data.logs, &cpy)
	return nil
}

func (r *database) LatestSyncLogSince(ctx context.Context, userID types.UserID, since time.Time) (*model.SyncLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.users[userID]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "user not found",
			goerr.V("userID", userID),
		)
	}

	var latest *model.SyncLog
	for _, log := range data.logs {
		if !log.CreatedAt.After(since) {
			continue
		}
		if latest == nil || log.CreatedAt.After(latest.CreatedAt) {
			latest = log
		}
	}

	if latest == nil {
		return nil, goerr.Wrap(repository.ErrNotFound, "sync log not found",
			goerr.V("userID", userID),
			goerr.V("since", since),
		)
	}

	cpy := *latest
	return &cpy, nil
}

// Helper functions for deep copy

func copyUser(user *model.User) *model.User {
	if user == nil {
		return nil
	}
	cpy := *user
	return &cpy
}

func copyRepository(repo *model.Repository) *model.Repository {
	if repo == nil {
		return nil
	}
	cpy := *repo

	if repo.Languages != nil {
		cpy.Languages = make(map[string]int64, len(repo.Languages))
		for k, v := range repo.Languages {
			cpy.Languages[k] = v
		}
	}

	return &cpy
}
