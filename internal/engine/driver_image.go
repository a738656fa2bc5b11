package engine

import "github.com/frwl404/runo/internal/config"

// PlanImage builds the ExecutionPlan for the Image Driver: a single `docker
// run` of a pre-published container image (spec.md §4.4).
//
//	docker run --quiet -e <NS>_CONTAINER_NAME=<name> <sanitized run_options> <image_ref>
//	    /bin/sh -c '<before ∧ execute+args>'
//
// If the Command declares an "after", it is issued as a separate
// subprocess following the run phase.
func PlanImage(container config.Container, cmd config.Command, extraArgs []string, isTTY bool, debugf func(string)) *ExecutionPlan {
	sanitized := SanitizeRunOptions(cmd.RunOptions, isTTY, debugf)

	args := []string{"run", "--quiet", "-e", containerNameEnv(container.Name)}
	args = append(args, sanitized...)
	args = append(args, container.ImageRef, "/bin/sh", "-c", containerMainBody(cmd, extraArgs))

	phases := []Phase{mainPhase("docker", args)}

	if len(cmd.After) > 0 {
		phases = append(phases, argvPhase(PhaseCleanup, "/bin/sh", []string{"-c", joinAnd(cmd.After)}, false))
	}

	return &ExecutionPlan{Target: container.Name, Phases: phases}
}
