package server_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/gitfolio/gitfolio/pkg/controller/server"
	"github.com/gitfolio/gitfolio/pkg/utils/logging"
)

func TestDetachContext(t *testing.T) {
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	parent, cancel := context.WithCancel(context.Background())
	reqID, parent := logging.CtxRequestID(parent)
	parent = logging.CtxWithTime(parent, func() time.Time { return fixed })

	detached := server.DetachContext(parent)
	cancel()

	// The detached context outlives the request
	gt.NoError(t, detached.Err())

	gotID, _ := logging.CtxRequestID(detached)
	gt.V(t, gotID).Equal(reqID)
	gt.True(t, logging.CtxTime(detached).Equal(fixed))
}
