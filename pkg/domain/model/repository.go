package model

import (
	"time"

	"github.com/gitfolio/gitfolio/pkg/domain/types"
)

// Repository is a persisted portfolio repository. It is uniquely
// identified by (UserID, Name).
type Repository struct {
	UserID      types.UserID
	Name        string
	Description string
	Stars       int
	Commits     int
	Languages   map[string]int64
	LastPushed  time.Time
	URL         string
	Language    string
	Private     bool
	Fork        bool

	// Visible and Pinned are user-facing presentation state. They are
	// set on create (public repos visible, private repos hidden, never
	// pinned) and preserved on update.
	Visible  bool
	Pinned   bool
	PinOrder int
	Views    int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewRepository builds the persisted record for a freshly fetched
// repository. Presentation defaults apply only when the record does not
// exist yet; the upsert keeps existing values on the update path.
func NewRepository(userID types.UserID, remote *RemoteRepository, enrichment *Enrichment) *Repository {
	if enrichment == nil {
		enrichment = &Enrichment{}
	}

	return &Repository{
		UserID:      userID,
		Name:        remote.Name,
		Description: remote.Description,
		Stars:       remote.Stars,
		Commits:     enrichment.Commits,
		Languages:   enrichment.Languages,
		LastPushed:  remote.PushedAt,
		URL:         remote.HTMLURL,
		Language:    remote.Language,
		Private:     remote.Private,
		Fork:        remote.Fork,
		Visible:     !remote.Private,
		Pinned:      false,
	}
}
