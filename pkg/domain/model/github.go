package model

import (
	"time"

	"github.com/gitfolio/gitfolio/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// RemoteRepository is one repository record as returned by the GitHub
// API. Field names follow the REST response body.
type RemoteRepository struct {
	Name         string    `json:"name"`
	FullName     string    `json:"full_name"`
	Description  string    `json:"description"`
	Stars        int       `json:"stargazers_count"`
	PushedAt     time.Time `json:"pushed_at"`
	HTMLURL      string    `json:"html_url"`
	Language     string    `json:"language"`
	LanguagesURL string    `json:"languages_url"`
	Private      bool      `json:"private"`
	Fork         bool      `json:"fork"`
}

func (x *RemoteRepository) Validate() error {
	if x.Name == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repository name is empty")
	}
	if x.FullName == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repository full name is empty")
	}
	return nil
}

// InstallationToken is a short-lived credential scoped to one
// installation. ExpiresAt is reported by the API but not tracked; a
// fresh token is issued per call.
type InstallationToken struct {
	Token     types.InstallationToken `json:"token"`
	ExpiresAt time.Time               `json:"expires_at"`
}

// Enrichment holds per-repository metadata derived from auxiliary API
// calls. Languages is nil when the language fetch failed.
type Enrichment struct {
	Languages map[string]int64
	Commits   int
}
