package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption     = goerr.New("invalid option")
	ErrConfiguration     = goerr.New("github app credentials not configured")
	ErrAuthFailed        = goerr.New("installation token exchange failed")
	ErrSyncFailed        = goerr.New("repository sync failed")
	ErrValidationFailed  = goerr.New("validation failed")
	ErrInvalidGitHubData = goerr.New("invalid github data")
)
