package steps

import (
	"context"
	"log/slog"
	"sync"

	"github.com/gitfolio/gitfolio/pkg/domain/interfaces"
	"github.com/gitfolio/gitfolio/pkg/domain/types"
	"github.com/gitfolio/gitfolio/pkg/utils/logging"
)

// Runner is an in-process step-execution substrate. Completed steps are
// checkpointed per run ID, so re-invoking a run after a failure resumes
// from the first unfinished step instead of repeating committed work.
// A durable substrate can replace it behind interfaces.StepRunner.
type Runner struct {
	mu   sync.Mutex
	done map[types.SyncRunID]map[string]struct{}
}

var _ interfaces.StepRunner = (*Runner)(nil)

func New() *Runner {
	return &Runner{
		done: make(map[types.SyncRunID]map[string]struct{}),
	}
}

// RunStep executes fn unless the step already completed for this run.
// Failed steps are not checkpointed; a retry executes them again.
func (x *Runner) RunStep(ctx context.Context, runID types.SyncRunID, name string, fn func(ctx context.Context) error) error {
	if x.completed(runID, name) {
		logging.From(ctx).Debug("skipping completed step",
			slog.Any("runID", runID),
			slog.String("step", name),
		)
		return nil
	}

	if err := fn(ctx); err != nil {
		return err
	}

	x.checkpoint(runID, name)
	return nil
}

// Forget drops the checkpoints of one run. Called when a run has fully
// finished and its memo is no longer needed.
func (x *Runner) Forget(runID types.SyncRunID) {
	x.mu.Lock()
	defer x.mu.Unlock()
	delete(x.done, runID)
}

func (x *Runner) completed(runID types.SyncRunID, name string) bool {
	x.mu.Lock()
	defer x.mu.Unlock()

	steps, ok := x.done[runID]
	if !ok {
		return false
	}
	_, ok = steps[name]
	return ok
}

func (x *Runner) checkpoint(runID types.SyncRunID, name string) {
	x.mu.Lock()
	defer x.mu.Unlock()

	if _, ok := x.done[runID]; !ok {
		x.done[runID] = make(map[string]struct{})
	}
	x.done[runID][name] = struct{}{}
}
