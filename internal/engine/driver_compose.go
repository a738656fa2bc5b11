package engine

import "github.com/frwl404/runo/internal/config"

// composeFileTokens returns the tokens spliced after "docker compose
// --progress quiet": the user's compose_options verbatim when non-empty
// (no merging with the default), or "--file <compose_path>" otherwise
// (spec.md §4.6).
func composeFileTokens(container config.Container) []string {
	tokens := splitFields(container.ComposeOptions)
	if len(tokens) > 0 {
		return tokens
	}
	return []string{"--file", container.ComposePath}
}

// composeFilePath extracts the compose file Cleanup-B must target: the
// token after the last "--file" in compose_options, or the declared
// compose_path if absent (spec.md §4.6).
func composeFilePath(container config.Container) string {
	if path, ok := LastFlagValue(composeFileTokens(container), "--file"); ok {
		return path
	}
	return container.ComposePath
}

// PlanComposition builds the ExecutionPlan for the Composition Driver: a
// `compose run` of a named service, followed by two unconditional teardown
// phases in fixed order (spec.md §4.6).
func PlanComposition(container config.Container, cmd config.Command, extraArgs []string, isTTY bool, debugf func(string)) *ExecutionPlan {
	sanitized := SanitizeRunOptions(cmd.RunOptions, isTTY, debugf)

	runArgs := []string{"compose", "--progress", "quiet"}
	runArgs = append(runArgs, composeFileTokens(container)...)
	runArgs = append(runArgs, "run")
	runArgs = append(runArgs, sanitized...)
	runArgs = append(runArgs, container.ComposeService, "/bin/sh", "-c", containerMainBody(cmd, extraArgs))

	phases := []Phase{
		mainPhase("docker", runArgs),
		argvPhaseIgnoreStatus("docker", []string{"compose", "down", "--remove-orphans"}),
		argvPhase(PhaseCleanup, "docker", []string{"compose", "--file", composeFilePath(container), "rm", "-fsv"}, true),
	}

	if len(cmd.After) > 0 {
		phases = append(phases, argvPhase(PhaseCleanup, "/bin/sh", []string{"-c", joinAnd(cmd.After)}, false))
	}

	return &ExecutionPlan{Target: container.Name, Phases: phases}
}
