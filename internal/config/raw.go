package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DefaultFileName is the conventional name of the project-local config file,
// expected to sit alongside the runo executable at the repository root.
const DefaultFileName = "runo.toml"

// rawCommand mirrors one [[commands]] table, before validation.
type rawCommand struct {
	Name             string   `toml:"name"`
	Description      string   `toml:"description"`
	Before           []string `toml:"before"`
	Execute          string   `toml:"execute"`
	After            []string `toml:"after"`
	Examples         []string `toml:"examples"`
	DefaultContainer string   `toml:"default_container"`
	RunOptions       string   `toml:"run_options"`
}

// rawContainer mirrors one [[docker_containers]] table, before validation.
type rawContainer struct {
	Name           string `toml:"name"`
	ImageRef       string `toml:"image_ref"`
	RecipePath     string `toml:"recipe_path"`
	BuildOptions   string `toml:"build_options"`
	ComposePath    string `toml:"compose_path"`
	ComposeService string `toml:"compose_service"`
	ComposeOptions string `toml:"compose_options"`
}

// RawConfig is the direct, unvalidated decode of the TOML document. Only
// Validate is allowed to turn this into a Model.
type RawConfig struct {
	Commands         []rawCommand   `toml:"commands"`
	DockerContainers []rawContainer `toml:"docker_containers"`
}

// Load reads and decodes the TOML config file at path. A missing or
// malformed file is an I/O/decode error, not a validation diagnostic —
// it is reported the same way the argument parser's own read errors are,
// outside the scope of the core engine.
func Load(path string) (*RawConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-supplied by design (--config)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}

	var raw RawConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}

	return &raw, nil
}
