package engine

import (
	"fmt"

	"github.com/frwl404/runo/internal/config"
)

// BuildPlan dispatches to the Target Driver matching target: the Native
// Driver for the host pseudo-target, or one of the three container
// Drivers keyed by the resolved Container's family (spec.md §2, §4.3–§4.6).
//
// target must already have passed Target Selector validation; an unknown
// target here indicates a caller bug, not a user-facing config error.
func BuildPlan(target string, model *config.Model, cmd config.Command, extraArgs []string, isTTY bool, debugf func(string)) (*ExecutionPlan, error) {
	if target == HostTarget {
		return PlanNative(cmd, extraArgs), nil
	}

	container, ok := model.FindContainer(target)
	if !ok {
		return nil, fmt.Errorf("internal error: target %q was selected but is not a declared container", target)
	}

	switch container.Family {
	case config.FamilyImage:
		return PlanImage(container, cmd, extraArgs, isTTY, debugf), nil
	case config.FamilyBuiltImage:
		return PlanBuiltImage(container, cmd, extraArgs, isTTY, debugf), nil
	case config.FamilyComposition:
		return PlanComposition(container, cmd, extraArgs, isTTY, debugf), nil
	default:
		return nil, fmt.Errorf("internal error: container %q has unrecognized family %q", target, container.Family)
	}
}
