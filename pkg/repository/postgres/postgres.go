package postgres

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/lib/pq"
	"github.com/m-mizutani/goerr/v2"

	"github.com/gitfolio/gitfolio/pkg/domain/interfaces"
	"github.com/gitfolio/gitfolio/pkg/domain/model"
	"github.com/gitfolio/gitfolio/pkg/domain/types"
	"github.com/gitfolio/gitfolio/pkg/repository"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

const pqUniqueViolation = "23505"

type Client struct {
	db *sql.DB
}

var _ interfaces.Database = (*Client)(nil)

// New opens a postgres-backed database and verifies connectivity.
func New(ctx context.Context, dsn types.DatabaseDSN) (*Client, error) {
	db, err := sql.Open("postgres", string(dsn))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open postgres connection")
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, goerr.Wrap(err, "failed to ping postgres")
	}

	return &Client{db: db}, nil
}

// Migrate applies the embedded schema migrations.
func (x *Client) Migrate() error {
	src, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return goerr.Wrap(err, "failed to load embedded migrations")
	}

	driver, err := migratepg.WithInstance(x.db, &migratepg.Config{})
	if err != nil {
		return goerr.Wrap(err, "failed to create migration driver")
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return goerr.Wrap(err, "failed to create migrator")
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return goerr.Wrap(err, "failed to apply migrations")
	}

	return nil
}

func (x *Client) Close() error {
	if err := x.db.Close(); err != nil {
		return goerr.Wrap(err, "failed to close postgres connection")
	}
	return nil
}

// User operations

func (x *Client) CreateUser(ctx context.Context, user *model.User) error {
	_, err := x.db.ExecContext(ctx,
		`INSERT INTO users (id, email, github_handle, installation_id) VALUES ($1, $2, $3, $4)`,
		string(user.ID), user.Email, string(user.GitHubHandle), string(user.InstallationID),
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return goerr.Wrap(repository.ErrAlreadyExists, "user already exists",
				goerr.V("userID", user.ID),
			)
		}
		return goerr.Wrap(err, "failed to insert user", goerr.V("userID", user.ID))
	}

	return nil
}

func (x *Client) GetUser(ctx context.Context, id types.UserID) (*model.User, error) {
	row := x.db.QueryRowContext(ctx,
		`SELECT id, email, github_handle, installation_id, last_synced_at, created_at
		   FROM users WHERE id = $1`,
		string(id),
	)
	return scanUser(row, goerr.V("userID", id))
}

func (x *Client) GetUserByHandle(ctx context.Context, handle types.GitHubHandle) (*model.User, error) {
	row := x.db.QueryRowContext(ctx,
		`SELECT id, email, github_handle, installation_id, last_synced_at, created_at
		   FROM users WHERE github_handle = $1`,
		string(handle),
	)
	return scanUser(row, goerr.V("handle", handle))
}

func (x *Client) ListInstalledUsers(ctx context.Context) ([]*model.User, error) {
	rows, err := x.db.QueryContext(ctx,
		`SELECT id, email, github_handle, installation_id, last_synced_at, created_at
		   FROM users WHERE installation_id <> '' ORDER BY id`,
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query installed users")
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate installed users")
	}

	return users, nil
}

func (x *Client) SaveUserInstallation(ctx context.Context, id types.UserID, installID types.GitHubAppInstallID) error {
	return x.updateUser(ctx, id,
		`UPDATE users SET installation_id = $2 WHERE id = $1`,
		string(installID),
	)
}

func (x *Client) UpdateUserLastSyncedAt(ctx context.Context, id types.UserID, ts time.Time) error {
	return x.updateUser(ctx, id,
		`UPDATE users SET last_synced_at = $2 WHERE id = $1`,
		ts,
	)
}

func (x *Client) updateUser(ctx context.Context, id types.UserID, query string, arg any) error {
	result, err := x.db.ExecContext(ctx, query, string(id), arg)
	if err != nil {
		return goerr.Wrap(err, "failed to update user", goerr.V("userID", id))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return goerr.Wrap(err, "failed to read affected rows", goerr.V("userID", id))
	}
	if affected == 0 {
		return goerr.Wrap(repository.ErrNotFound, "user not found", goerr.V("userID", id))
	}

	return nil
}

// Repository operations

func (x *Client) UpsertRepository(ctx context.Context, repo *model.Repository) error {
	var languages any
	if repo.Languages != nil {
		raw, err := json.Marshal(repo.Languages)
		if err != nil {
			return goerr.Wrap(err, "failed to encode languages", goerr.V("name", repo.Name))
		}
		languages = raw
	}

	// The update path deliberately leaves is_visible, pinned, pin_order
	// and views untouched: presentation state belongs to the user, not
	// to the sync.
	_, err := x.db.ExecContext(ctx, `
		INSERT INTO repositories (
			user_id, name, description, stars, commits, languages,
			last_pushed, url, language, is_private, is_fork,
			is_visible, pinned, pin_order, views
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (user_id, name) DO UPDATE SET
			description = EXCLUDED.description,
			stars       = EXCLUDED.stars,
			commits     = EXCLUDED.commits,
			languages   = EXCLUDED.languages,
			last_pushed = EXCLUDED.last_pushed,
			url         = EXCLUDED.url,
			language    = EXCLUDED.language,
			is_private  = EXCLUDED.is_private,
			is_fork     = EXCLUDED.is_fork,
			updated_at  = now()`,
		string(repo.UserID), repo.Name, repo.Description, repo.Stars, repo.Commits, languages,
		nullTime(repo.LastPushed), repo.URL, repo.Language, repo.Private, repo.Fork,
		repo.Visible, repo.Pinned, repo.PinOrder, repo.Views,
	)
	if err != nil {
		return goerr.Wrap(err, "failed to upsert repository",
			goerr.V("userID", repo.UserID),
			goerr.V("name", repo.Name),
		)
	}

	return nil
}

func (x *Client) GetRepository(ctx context.Context, userID types.UserID, name string) (*model.Repository, error) {
	row := x.db.QueryRowContext(ctx, `
		SELECT user_id, name, description, stars, commits, languages,
		       last_pushed, url, language, is_private, is_fork, is_visible,
		       pinned, pin_order, views, created_at, updated_at
		  FROM repositories WHERE user_id = $1 AND name = $2`,
		string(userID), name,
	)

	repo, err := scanRepository(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, goerr.Wrap(repository.ErrNotFound, "repository not found",
				goerr.V("userID", userID),
				goerr.V("name", name),
			)
		}
		return nil, err
	}

	return repo, nil
}

func (x *Client) ListRepositories(ctx context.Context, userID types.UserID) ([]*model.Repository, error) {
	rows, err := x.db.QueryContext(ctx, `
		SELECT user_id, name, description, stars, commits, languages,
		       last_pushed, url, language, is_private, is_fork, is_visible,
		       pinned, pin_order, views, created_at, updated_at
		  FROM repositories WHERE user_id = $1 ORDER BY name`,
		string(userID),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query repositories", goerr.V("userID", userID))
	}
	defer rows.Close()

	var repos []*model.Repository
	for rows.Next() {
		repo, err := scanRepository(rows)
		if err != nil {
			return nil, err
		}
		repos = append(repos, repo)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate repositories", goerr.V("userID", userID))
	}

	return repos, nil
}

func (x *Client) DeleteRepository(ctx context.Context, userID types.UserID, name string) error {
	_, err := x.db.ExecContext(ctx,
		`DELETE FROM repositories WHERE user_id = $1 AND name = $2`,
		string(userID), name,
	)
	if err != nil {
		return goerr.Wrap(err, "failed to delete repository",
			goerr.V("userID", userID),
			goerr.V("name", name),
		)
	}

	return nil
}

// Sync log operations

func (x *Client) CreateSyncLog(ctx context.Context, log *model.SyncLog) error {
	_, err := x.db.ExecContext(ctx, `
		INSERT INTO sync_logs (user_id, status, repos_synced, errors, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		string(log.UserID), string(log.Status), log.ReposSynced, log.Errors, log.Message, log.CreatedAt,
	)
	if err != nil {
		return goerr.Wrap(err, "failed to insert sync log", goerr.V("userID", log.UserID))
	}

	return nil
}

func (x *Client) LatestSyncLogSince(ctx context.Context, userID types.UserID, since time.Time) (*model.SyncLog, error) {
	row := x.db.QueryRowContext(ctx, `
		SELECT user_id, status, repos_synced, errors, message, created_at
		  FROM sync_logs
		 WHERE user_id = $1 AND created_at > $2
		 ORDER BY created_at DESC LIMIT 1`,
		string(userID), since,
	)

	var log model.SyncLog
	var uid, status string
	if err := row.Scan(&uid, &status, &log.ReposSynced, &log.Errors, &log.Message, &log.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, goerr.Wrap(repository.ErrNotFound, "sync log not found",
				goerr.V("userID", userID),
				goerr.V("since", since),
			)
		}
		return nil, goerr.Wrap(err, "failed to query sync log", goerr.V("userID", userID))
	}
	log.UserID = types.UserID(uid)
	log.Status = types.SyncStatus(status)

	return &log, nil
}

// Scan helpers

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner, values ...goerr.Option) (*model.User, error) {
	var user model.User
	var id, handle, installID string
	var lastSynced sql.NullTime

	if err := row.Scan(&id, &user.Email, &handle, &installID, &lastSynced, &user.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, goerr.Wrap(repository.ErrNotFound, "user not found", values...)
		}
		return nil, goerr.Wrap(err, "failed to scan user", values...)
	}

	user.ID = types.UserID(id)
	user.GitHubHandle = types.GitHubHandle(handle)
	user.InstallationID = types.GitHubAppInstallID(installID)
	if lastSynced.Valid {
		user.LastSyncedAt = lastSynced.Time
	}

	return &user, nil
}

func scanRepository(row rowScanner) (*model.Repository, error) {
	var repo model.Repository
	var userID string
	var languages []byte
	var lastPushed sql.NullTime

	err := row.Scan(
		&userID, &repo.Name, &repo.Description, &repo.Stars, &repo.Commits, &languages,
		&lastPushed, &repo.URL, &repo.Language, &repo.Private, &repo.Fork, &repo.Visible,
		&repo.Pinned, &repo.PinOrder, &repo.Views, &repo.CreatedAt, &repo.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, goerr.Wrap(err, "failed to scan repository")
	}

	repo.UserID = types.UserID(userID)
	if lastPushed.Valid {
		repo.LastPushed = lastPushed.Time
	}
	if languages != nil {
		if err := json.Unmarshal(languages, &repo.Languages); err != nil {
			return nil, goerr.Wrap(err, "failed to decode languages", goerr.V("name", repo.Name))
		}
	}

	return &repo, nil
}

func nullTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}
