package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frwl404/runo/internal/config"
)

func TestPlanNative_SingleBodyCombinesBeforeExecuteAfter(t *testing.T) {
	cmd := config.Command{
		Before:  []string{"echo before"},
		Execute: "make build",
		After:   []string{"echo after"},
	}

	plan := PlanNative(cmd, []string{"--verbose"})

	require.Equal(t, HostTarget, plan.Target)
	require.Len(t, plan.Phases, 1)

	phase := plan.Phases[0]
	assert.Equal(t, "/bin/sh", phase.Name)
	assert.Equal(t, []string{"-c", "echo before && make build --verbose && echo after"}, phase.Args)
	assert.Equal(t, PhaseMain, phase.Kind)
	assert.Equal(t, `/bin/sh -c 'echo before && make build --verbose && echo after'`, phase.Render())
}

func TestPlanNative_NoExtraArgs(t *testing.T) {
	cmd := config.Command{Execute: "make test"}

	plan := PlanNative(cmd, nil)

	assert.Equal(t, []string{"-c", "make test"}, plan.Phases[0].Args)
}
