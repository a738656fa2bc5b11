package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("decodes commands and containers", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "runo.toml")
		content := `
[[commands]]
name = "test"
execute = "pytest"
before = ["echo start"]
after = ["echo done"]
default_container = "py39"

[[docker_containers]]
name = "py39"
image_ref = "python:3.9-alpine"
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		raw, err := Load(path)

		require.NoError(t, err)
		require.Len(t, raw.Commands, 1)
		assert.Equal(t, "test", raw.Commands[0].Name)
		assert.Equal(t, "pytest", raw.Commands[0].Execute)
		assert.Equal(t, []string{"echo start"}, raw.Commands[0].Before)
		require.Len(t, raw.DockerContainers, 1)
		assert.Equal(t, "python:3.9-alpine", raw.DockerContainers[0].ImageRef)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
		require.Error(t, err)
	})

	t.Run("malformed toml is an error", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "runo.toml")
		require.NoError(t, os.WriteFile(path, []byte("this = [is not valid"), 0o644))

		_, err := Load(path)

		require.Error(t, err)
	})
}
