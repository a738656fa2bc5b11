package engine

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/frwl404/runo/internal/exec"
)

// Executor runs an ExecutionPlan's phases in order against the caller's
// internal/exec.Executor, applying the three PhaseKind rules (spec.md §4.8):
// a failing build phase short-circuits the remaining phases; the main
// phase's status becomes the TargetResult's exit code; cleanup phases
// always run and only ever flip the TargetResult's anomaly bit.
type Executor struct {
	Exec   exec.Executor
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Debug  bool
}

// NewExecutor wires an Executor to the process's own standard streams.
func NewExecutor(e exec.Executor, debug bool) *Executor {
	return &Executor{Exec: e, Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr, Debug: debug}
}

// RunTarget spawns every Phase of plan in order and folds the outcomes into
// a single TargetResult.
func (ex *Executor) RunTarget(ctx context.Context, plan *ExecutionPlan) TargetResult {
	result := TargetResult{Target: plan.Target}

	for _, phase := range plan.Phases {
		if ex.Debug {
			fmt.Fprintf(ex.Stdout, "[DEBUG] running: %s\n", phase.Render())
		}

		code := ex.run(ctx, phase)

		switch phase.Kind {
		case PhaseBuild:
			if code != 0 {
				result.ExitCode = code
				result.Anomaly = true
				return result
			}
		case PhaseMain:
			result.ExitCode = code
		case PhaseCleanup:
			if code != 0 && !phase.IgnoreStatus {
				result.Anomaly = true
			}
		}
	}

	return result
}

// run spawns a single phase and returns its exit code. A phase marked
// CaptureDiscard runs with its output silenced (build and compose teardown
// phases are not meant to clutter the user's terminal); every other phase
// inherits the caller's standard streams so interactive commands behave as
// if invoked directly.
func (ex *Executor) run(ctx context.Context, phase Phase) int {
	opts := phase.RunOptions()

	if phase.CaptureDiscard {
		opts.Stdout = io.Discard
		opts.Stderr = io.Discard
	} else {
		opts.Stdin = ex.Stdin
		opts.Stdout = ex.Stdout
		opts.Stderr = ex.Stderr
	}

	res, _ := ex.Exec.Run(ctx, opts)
	if res == nil {
		return -1
	}
	return res.ExitCode
}
