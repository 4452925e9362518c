package steps_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/gitfolio/gitfolio/pkg/domain/types"
	"github.com/gitfolio/gitfolio/pkg/infra/steps"
)

func TestRunStep(t *testing.T) {
	ctx := context.Background()
	runner := steps.New()
	runID := types.NewSyncRunID()

	t.Run("completed step is not repeated", func(t *testing.T) {
		var calls int
		for i := 0; i < 3; i++ {
			err := runner.RunStep(ctx, runID, "once", func(ctx context.Context) error {
				calls++
				return nil
			})
			gt.NoError(t, err)
		}
		gt.V(t, calls).Equal(1)
	})

	t.Run("failed step runs again", func(t *testing.T) {
		var calls int
		err := runner.RunStep(ctx, runID, "flaky", func(ctx context.Context) error {
			calls++
			return goerr.New("transient")
		})
		gt.Error(t, err)

		err = runner.RunStep(ctx, runID, "flaky", func(ctx context.Context) error {
			calls++
			return nil
		})
		gt.NoError(t, err)
		gt.V(t, calls).Equal(2)

		// Now checkpointed
		err = runner.RunStep(ctx, runID, "flaky", func(ctx context.Context) error {
			calls++
			return nil
		})
		gt.NoError(t, err)
		gt.V(t, calls).Equal(2)
	})

	t.Run("checkpoints are scoped per run", func(t *testing.T) {
		otherRun := types.NewSyncRunID()
		var calls int
		err := runner.RunStep(ctx, otherRun, "once", func(ctx context.Context) error {
			calls++
			return nil
		})
		gt.NoError(t, err)
		gt.V(t, calls).Equal(1)
	})
}

func TestForget(t *testing.T) {
	ctx := context.Background()
	runner := steps.New()
	runID := types.NewSyncRunID()

	var calls int
	step := func(ctx context.Context) error {
		calls++
		return nil
	}

	gt.NoError(t, runner.RunStep(ctx, runID, "step", step))
	runner.Forget(runID)
	gt.NoError(t, runner.RunStep(ctx, runID, "step", step))

	gt.V(t, calls).Equal(2)
}
