package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ErrTemplateExists is returned by WriteTemplate when the target file is
// already present; --init never overwrites an existing configuration.
var ErrTemplateExists = errors.New("config file already exists")

// WriteTemplate writes a starter configuration to path, covering one
// command and one of each container family, so a new repository has a
// working example to edit. This is an external collaborator per spec.md §1
// ("one-shot configuration-template writer"); the core engine never calls it.
func WriteTemplate(path string) error {
	if _, err := os.Stat(path); err == nil {
		return ErrTemplateExists
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("check %q: %w", path, err)
	}

	raw := RawConfig{
		Commands: []rawCommand{
			{
				Name:             "test",
				Description:      "run the project test suite",
				Execute:          "echo PASSED",
				Examples:         []string{"-v"},
				DefaultContainer: "py39",
			},
		},
		DockerContainers: []rawContainer{
			{
				Name:     "py39",
				ImageRef: "python:3.9-alpine",
			},
			{
				Name:         "built",
				RecipePath:   "Dockerfile_test",
				BuildOptions: "",
			},
			{
				Name:           "compose",
				ComposePath:    "docker-compose.yml",
				ComposeService: "client",
			},
		},
	}

	data, err := toml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("render template: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // config file is not sensitive
		return fmt.Errorf("write %q: %w", path, err)
	}

	return nil
}
