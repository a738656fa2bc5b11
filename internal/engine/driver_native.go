package engine

import "github.com/frwl404/runo/internal/config"

// PlanNative builds the ExecutionPlan for the Native Driver: a single host
// shell invocation running before, execute+args, and after in one `/bin/sh
// -c` body, terminating at the first non-zero return (spec.md §4.3).
func PlanNative(cmd config.Command, extraArgs []string) *ExecutionPlan {
	return &ExecutionPlan{
		Target: HostTarget,
		Phases: []Phase{mainPhase("/bin/sh", []string{"-c", hostBody(cmd, extraArgs)})},
	}
}
