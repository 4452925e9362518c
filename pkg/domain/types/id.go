package types

import "github.com/google/uuid"

type (
	UserID    string
	RequestID string
	SyncRunID string
)

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func NewSyncRunID() SyncRunID {
	return SyncRunID(uuid.NewString())
}

func (x UserID) String() string    { return string(x) }
func (x RequestID) String() string { return string(x) }
func (x SyncRunID) String() string { return string(x) }
