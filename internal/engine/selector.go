package engine

import (
	"fmt"
	"strings"

	"github.com/frwl404/runo/internal/config"
)

// containerListHint is appended to every container-resolution-failure
// message (spec.md §4.2 rule 6, §7 item 3).
const containerListHint = "Please use '--containers' option to list all containers, present in the config"

// SelectTargets computes the ordered, de-duplicated list of target
// container names (or the single-element ["host"]) for a command
// invocation (spec.md §4.2).
func SelectTargets(model *config.Model, cmd config.Command, inv Invocation) ([]string, *DispatchError) {
	var selectors []string

	switch {
	case len(inv.Containers) > 0:
		for _, s := range inv.Containers {
			if s == WildcardSigil {
				selectors = append(selectors, model.ContainerNames()...)
				continue
			}
			selectors = append(selectors, s)
		}
	case cmd.DefaultContainer != "":
		selectors = []string{cmd.DefaultContainer}
	default:
		return []string{HostTarget}, nil
	}

	targets := dedupe(selectors)

	for _, name := range targets {
		if _, ok := model.FindContainer(name); !ok {
			return nil, &DispatchError{
				Err:      ErrContainerNotFound,
				ExitCode: ExitConfigError,
				Message:  fmt.Sprintf("Container '%s' is not found in the config. %s", name, containerListHint),
			}
		}

		if errs := model.Report.ContainerErrors[name]; len(errs) > 0 {
			var b strings.Builder
			fmt.Fprintf(&b, "Container '%s' is invalid:\n", name)
			for _, d := range errs {
				b.WriteString("  - " + d.Message + "\n")
			}
			b.WriteString(containerListHint)
			return nil, &DispatchError{
				Err:      ErrContainerInvalid,
				ExitCode: ExitConfigError,
				Message:  b.String(),
			}
		}
	}

	return targets, nil
}

// dedupe collapses duplicates, preserving first occurrence order.
func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
