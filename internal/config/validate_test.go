package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Commands(t *testing.T) {
	t.Run("accepts a well-formed command", func(t *testing.T) {
		raw := &RawConfig{Commands: []rawCommand{{Name: "test", Execute: "echo PASSED"}}}

		model := Validate(raw)

		require.Len(t, model.Commands, 1)
		assert.Empty(t, model.Report.CommandErrors)
	})

	t.Run("rejects a missing execute field", func(t *testing.T) {
		raw := &RawConfig{Commands: []rawCommand{{Name: "test"}}}

		model := Validate(raw)

		assert.Empty(t, model.Commands)
		require.Len(t, model.Report.CommandErrors, 1)
		assert.Equal(t, "test", model.Report.CommandErrors[0].Name)
	})

	t.Run("rejects an invalid slug", func(t *testing.T) {
		raw := &RawConfig{Commands: []rawCommand{{Name: "bad name!", Execute: "x"}}}

		model := Validate(raw)

		assert.Empty(t, model.Commands)
		require.NotEmpty(t, model.Report.CommandErrors)
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		raw := &RawConfig{Commands: []rawCommand{
			{Name: "test", Execute: "a"},
			{Name: "test", Execute: "b"},
		}}

		model := Validate(raw)

		require.Len(t, model.Commands, 1)
		require.Len(t, model.Report.CommandErrors, 1)
		assert.Contains(t, model.Report.CommandErrors[0].Message, "duplicate")
	})
}

func TestValidate_Containers(t *testing.T) {
	t.Run("accepts an image container", func(t *testing.T) {
		raw := &RawConfig{DockerContainers: []rawContainer{{Name: "py", ImageRef: "python:3.9-alpine"}}}

		model := Validate(raw)

		require.Len(t, model.Containers, 1)
		assert.Equal(t, FamilyImage, model.Containers[0].Family)
		assert.Empty(t, model.Report.ContainerErrors)
	})

	t.Run("accepts a built-image container", func(t *testing.T) {
		raw := &RawConfig{DockerContainers: []rawContainer{{Name: "built", RecipePath: "Dockerfile_test"}}}

		model := Validate(raw)

		require.Len(t, model.Containers, 1)
		assert.Equal(t, FamilyBuiltImage, model.Containers[0].Family)
	})

	t.Run("accepts a composition container", func(t *testing.T) {
		raw := &RawConfig{DockerContainers: []rawContainer{{
			Name: "svc", ComposePath: "docker-compose.yml", ComposeService: "client",
		}}}

		model := Validate(raw)

		require.Len(t, model.Containers, 1)
		assert.Equal(t, FamilyComposition, model.Containers[0].Family)
	})

	t.Run("rejects a container with no recognized family", func(t *testing.T) {
		raw := &RawConfig{DockerContainers: []rawContainer{{Name: "empty"}}}

		model := Validate(raw)

		require.Len(t, model.Containers, 1, "still attached so container resolution can pinpoint the error")
		require.Contains(t, model.Report.ContainerErrors, "empty")
	})

	t.Run("rejects a container mixing families", func(t *testing.T) {
		raw := &RawConfig{DockerContainers: []rawContainer{{
			Name: "mixed", ImageRef: "python:3.9-alpine", RecipePath: "Dockerfile",
		}}}

		model := Validate(raw)

		require.Contains(t, model.Report.ContainerErrors, "mixed")
		assert.Contains(t, model.Report.ContainerErrors["mixed"][0].Message, "more than one family")
	})

	t.Run("rejects a composition container missing compose_service", func(t *testing.T) {
		raw := &RawConfig{DockerContainers: []rawContainer{{
			Name: "svc", ComposePath: "docker-compose.yml",
		}}}

		model := Validate(raw)

		require.Contains(t, model.Report.ContainerErrors, "svc")
	})

	t.Run("rejects a malformed image reference", func(t *testing.T) {
		raw := &RawConfig{DockerContainers: []rawContainer{{
			Name: "bad", ImageRef: "UPPERCASE_NOT_ALLOWED:::",
		}}}

		model := Validate(raw)

		require.Contains(t, model.Report.ContainerErrors, "bad")
	})

	t.Run("drops nameless entries entirely", func(t *testing.T) {
		raw := &RawConfig{DockerContainers: []rawContainer{{ImageRef: "python:3.9-alpine"}}}

		model := Validate(raw)

		assert.Empty(t, model.Containers)
	})
}

func TestModel_Lookups(t *testing.T) {
	model := Validate(&RawConfig{
		Commands:         []rawCommand{{Name: "test", Execute: "echo ok"}},
		DockerContainers: []rawContainer{{Name: "py", ImageRef: "python:3.9-alpine"}},
	})

	cmd, ok := model.FindCommand("test")
	require.True(t, ok)
	assert.Equal(t, "echo ok", cmd.Execute)

	_, ok = model.FindCommand("missing")
	assert.False(t, ok)

	container, ok := model.FindContainer("py")
	require.True(t, ok)
	assert.Equal(t, FamilyImage, container.Family)

	assert.Equal(t, []string{"py"}, model.ContainerNames())
}
