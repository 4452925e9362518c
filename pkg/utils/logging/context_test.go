package logging_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/gitfolio/gitfolio/pkg/utils/logging"
)

func TestCtxRequestID(t *testing.T) {
	id1, ctx := logging.CtxRequestID(context.Background())
	gt.True(t, id1 != "")

	id2, _ := logging.CtxRequestID(ctx)
	gt.V(t, id2).Equal(id1)
}

func TestCtxTime(t *testing.T) {
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	ctx := logging.CtxWithTime(context.Background(), func() time.Time { return fixed })
	gt.True(t, logging.CtxTime(ctx).Equal(fixed))

	// Without a time function the context falls back to the wall clock
	before := time.Now()
	got := logging.CtxTime(context.Background())
	gt.True(t, !got.Before(before))
}

func TestInheritContextValues(t *testing.T) {
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	reqID, src := logging.CtxRequestID(context.Background())
	src = logging.CtxWithTime(src, func() time.Time { return fixed })

	dst := logging.InheritContextValues(context.Background(), src)

	gotID, _ := logging.CtxRequestID(dst)
	gt.V(t, gotID).Equal(reqID)
	gt.True(t, logging.CtxTime(dst).Equal(fixed))
}
