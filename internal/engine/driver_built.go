package engine

import "github.com/frwl404/runo/internal/config"

// builtImageTag synthesizes the default tag ("<name>-for-app") unless the
// user's build_options already names one with an explicit "--tag" (spec.md
// §4.5's tag-discovery rule: the token following the *last* "--tag";
// a terminal "--tag" with no following token falls back to the default).
func builtImageTag(container config.Container) string {
	tokens := buildOptionTokens(container)
	if tag, ok := LastFlagValue(tokens, "--tag"); ok {
		return tag
	}
	return container.Name + "-for-app"
}

// buildOptionTokens returns the tokens spliced after "docker build .": the
// user's build_options verbatim when non-empty, or the synthesized default
// otherwise (spec.md §4.5).
func buildOptionTokens(container config.Container) []string {
	tokens := splitFields(container.BuildOptions)
	if len(tokens) > 0 {
		return tokens
	}
	return []string{"--file", container.RecipePath, "--tag", container.Name + "-for-app"}
}

// PlanBuiltImage builds the ExecutionPlan for the Built-Image Driver: a
// build phase followed by a run phase identical in shape to the Image
// Driver's, using the discovered or synthesized tag (spec.md §4.5).
func PlanBuiltImage(container config.Container, cmd config.Command, extraArgs []string, isTTY bool, debugf func(string)) *ExecutionPlan {
	buildArgs := append([]string{"build", "."}, buildOptionTokens(container)...)
	tag := builtImageTag(container)

	sanitized := SanitizeRunOptions(cmd.RunOptions, isTTY, debugf)
	runArgs := []string{"run", "--quiet", "-e", containerNameEnv(container.Name)}
	runArgs = append(runArgs, sanitized...)
	runArgs = append(runArgs, tag, "/bin/sh", "-c", containerMainBody(cmd, extraArgs))

	phases := []Phase{
		argvPhase(PhaseBuild, "docker", buildArgs, true),
		mainPhase("docker", runArgs),
	}

	if len(cmd.After) > 0 {
		phases = append(phases, argvPhase(PhaseCleanup, "/bin/sh", []string{"-c", joinAnd(cmd.After)}, false))
	}

	return &ExecutionPlan{Target: container.Name, Phases: phases}
}
