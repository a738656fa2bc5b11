package engine

import (
	"context"
	"fmt"
	"io"

	"github.com/frwl404/runo/internal/config"
)

// Dispatch runs one command invocation end to end: resolve, select, plan,
// execute, aggregate (spec.md §2). It is the single entry point the cmd
// package calls; every exit-code decision it returns is final.
func Dispatch(ctx context.Context, model *config.Model, inv Invocation, isTTY bool, ex *Executor, diag io.Writer) int {
	cmd, derr := ResolveCommand(model, inv)
	if derr != nil {
		fmt.Fprintln(diag, derr.Message)
		return derr.ExitCode
	}

	targets, derr := SelectTargets(model, cmd, inv)
	if derr != nil {
		fmt.Fprintln(diag, derr.Message)
		return derr.ExitCode
	}

	debugf := func(msg string) {
		if inv.Debug {
			fmt.Fprintln(ex.Stdout, msg)
		}
	}

	results := make([]TargetResult, 0, len(targets))
	for _, target := range targets {
		plan, err := BuildPlan(target, model, cmd, inv.ExtraArgs, isTTY, debugf)
		if err != nil {
			fmt.Fprintln(diag, err.Error())
			return ExitConfigError
		}
		results = append(results, ex.RunTarget(ctx, plan))
	}

	return Aggregate(results, cmd.Name, diag)
}
