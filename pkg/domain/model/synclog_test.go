package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/gitfolio/gitfolio/pkg/domain/model"
	"github.com/gitfolio/gitfolio/pkg/domain/types"
)

func TestDeriveSyncStatus(t *testing.T) {
	testCases := []struct {
		name   string
		errors int
		total  int
		expect types.SyncStatus
	}{
		{name: "no errors", errors: 0, total: 10, expect: types.SyncStatusSuccess},
		{name: "some errors", errors: 4, total: 10, expect: types.SyncStatusPartial},
		{name: "all errors", errors: 10, total: 10, expect: types.SyncStatusError},
		{name: "single repo failed", errors: 1, total: 1, expect: types.SyncStatusError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gt.V(t, model.DeriveSyncStatus(tc.errors, tc.total)).Equal(tc.expect)
		})
	}
}

func TestNewSyncLog(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	log := model.NewSyncLog("user-1", 6, 4, 10, now)
	gt.V(t, log.UserID).Equal(types.UserID("user-1"))
	gt.V(t, log.Status).Equal(types.SyncStatusPartial)
	gt.V(t, log.ReposSynced).Equal(6)
	gt.V(t, log.Errors).Equal(4)
	gt.V(t, log.Message).Equal("Synced 6 of 10 repositories")
	gt.True(t, log.CreatedAt.Equal(now))
}
