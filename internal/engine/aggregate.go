package engine

import (
	"fmt"
	"io"
)

// Aggregate folds per-target results into the process's final exit status,
// writing a diagnostic summary to diag when more than one target ran and at
// least one of them failed (spec.md §4.8). A single target passes its main-phase status straight
// through; multiple targets report failures as a group and the process
// exits -1 if any target failed, 0 otherwise.
func Aggregate(results []TargetResult, cmdName string, diag io.Writer) int {
	if len(results) == 1 {
		return results[0].ExitCode
	}

	var failed []TargetResult
	for _, r := range results {
		if r.ExitCode != 0 {
			failed = append(failed, r)
		}
	}

	if len(failed) == 0 {
		return ExitSuccess
	}

	fmt.Fprintf(diag, "command '%s' has failed in %d/%d containers:\n", cmdName, len(failed), len(results))
	for _, r := range failed {
		fmt.Fprintf(diag, "  - %s has returned %d\n", r.Target, r.ExitCode)
	}

	return ExitMultiTargetFailure
}
