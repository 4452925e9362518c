package model

import (
	"github.com/gitfolio/gitfolio/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type SyncReposInput struct {
	UserID    types.UserID
	InstallID types.GitHubAppInstallID
	RunID     types.SyncRunID
}

func (x *SyncReposInput) Validate() error {
	if x.UserID == "" {
		return goerr.Wrap(types.ErrInvalidOption, "user ID is empty")
	}
	if x.InstallID == "" {
		return goerr.Wrap(types.ErrInvalidOption, "install ID is empty")
	}
	if x.RunID == "" {
		return goerr.Wrap(types.ErrInvalidOption, "run ID is empty")
	}
	return nil
}

type SyncReposOutput struct {
	Synced       int
	Errors       int
	Total        int
	ErrorDetails []string
}

// SyncStatusReport is the response to a status poll. Processing is true
// until a sync log created after the polled timestamp exists.
type SyncStatusReport struct {
	Processing bool             `json:"-"`
	Result     types.SyncStatus `json:"result,omitempty"`
	Message    string           `json:"message,omitempty"`
	Synced     int              `json:"synced"`
	Errors     int              `json:"errors"`
}

// RepoPushInput carries the repository state attached to a push event
// plus the number of commits contained in the push.
type RepoPushInput struct {
	Owner      types.GitHubHandle
	Repository RemoteRepository
	Commits    int
}

func (x *RepoPushInput) Validate() error {
	if x.Owner == "" {
		return goerr.Wrap(types.ErrValidationFailed, "owner is empty")
	}
	return x.Repository.Validate()
}

type RepoChangeAction string

const (
	RepoCreated RepoChangeAction = "created"
	RepoDeleted RepoChangeAction = "deleted"
)

type RepoChangeInput struct {
	Owner      types.GitHubHandle
	Action     RepoChangeAction
	Repository RemoteRepository
}

func (x *RepoChangeInput) Validate() error {
	if x.Owner == "" {
		return goerr.Wrap(types.ErrValidationFailed, "owner is empty")
	}
	if x.Action != RepoCreated && x.Action != RepoDeleted {
		return goerr.Wrap(types.ErrValidationFailed, "unsupported repository action",
			goerr.V("action", x.Action),
		)
	}
	return x.Repository.Validate()
}

type InstallationChangeInput struct {
	Owner     types.GitHubHandle
	Removed   bool
	InstallID types.GitHubAppInstallID
}

func (x *InstallationChangeInput) Validate() error {
	if x.Owner == "" {
		return goerr.Wrap(types.ErrValidationFailed, "owner is empty")
	}
	if !x.Removed && x.InstallID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "install ID is empty")
	}
	return nil
}

// NewSyncReposInput builds the unit of work for one sync run with a
// fresh run ID.
func NewSyncReposInput(userID types.UserID, installID types.GitHubAppInstallID) *SyncReposInput {
	return &SyncReposInput{
		UserID:    userID,
		InstallID: installID,
		RunID:     types.NewSyncRunID(),
	}
}
