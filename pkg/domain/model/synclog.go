package model

import (
	"fmt"
	"time"

	"github.com/gitfolio/gitfolio/pkg/domain/types"
)

// SyncLog is the append-only summary record of one sync run. It is never
// mutated after creation.
type SyncLog struct {
	UserID      types.UserID     `bigquery:"user_id" json:"user_id"`
	Status      types.SyncStatus `bigquery:"status" json:"status"`
	ReposSynced int              `bigquery:"repos_synced" json:"repos_synced"`
	Errors      int              `bigquery:"errors" json:"errors"`
	Message     string           `bigquery:"message" json:"message"`
	CreatedAt   time.Time        `bigquery:"created_at" json:"created_at"`
}

// SyncLogRawRecord overrides CreatedAt with a unix-micro timestamp for
// the BigQuery storage write API.
type SyncLogRawRecord struct {
	SyncLog
	CreatedAt int64 `bigquery:"created_at" json:"created_at"`
}

func NewSyncLog(userID types.UserID, synced, errors, total int, now time.Time) *SyncLog {
	return &SyncLog{
		UserID:      userID,
		Status:      DeriveSyncStatus(errors, total),
		ReposSynced: synced,
		Errors:      errors,
		Message:     fmt.Sprintf("Synced %d of %d repositories", synced, total),
		CreatedAt:   now,
	}
}

// DeriveSyncStatus maps error counts to the run status: no errors is
// success, all-failed is error, anything between is partial.
func DeriveSyncStatus(errors, total int) types.SyncStatus {
	switch {
	case errors == 0:
		return types.SyncStatusSuccess
	case errors < total:
		return types.SyncStatusPartial
	default:
		return types.SyncStatusError
	}
}
