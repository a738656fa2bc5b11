package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frwl404/runo/internal/config"
)

func TestResolveCommand_Found(t *testing.T) {
	model := &config.Model{Commands: []config.Command{{Name: "build", Execute: "make"}}}

	cmd, derr := ResolveCommand(model, Invocation{CommandName: "build"})

	require.Nil(t, derr)
	assert.Equal(t, "make", cmd.Execute)
}

func TestResolveCommand_NotFound(t *testing.T) {
	model := &config.Model{}

	_, derr := ResolveCommand(model, Invocation{CommandName: "ghost"})

	require.NotNil(t, derr)
	assert.Equal(t, ExitUnavailableResource, derr.ExitCode)
	assert.Equal(t, "command 'ghost' is not present in the config", derr.Message)
	assert.ErrorIs(t, derr, ErrCommandNotFound)
}

func TestResolveCommand_NotFoundWithCommandTableErrors(t *testing.T) {
	model := &config.Model{
		Report: config.ValidationReport{
			CommandErrors: []config.Diagnostic{{Message: "duplicate command name 'build'"}},
		},
	}

	_, derr := ResolveCommand(model, Invocation{CommandName: "build"})

	require.NotNil(t, derr)
	assert.Equal(t, ExitConfigError, derr.ExitCode)
	assert.Contains(t, derr.Message, "command 'build' is not present in the config")
	assert.Contains(t, derr.Message, "errors detected in 'commands' configurations")
	assert.Contains(t, derr.Message, "duplicate command name 'build'")
}
