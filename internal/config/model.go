// Package config loads and validates the project-local runo configuration:
// the TOML document declaring commands and their execution containers.
package config

// ContainerFamily identifies which of the three container flavors a
// Container declares.
type ContainerFamily string

// Supported container families. Exactly one is populated per Container.
const (
	FamilyImage       ContainerFamily = "image"
	FamilyBuiltImage  ContainerFamily = "built-image"
	FamilyComposition ContainerFamily = "composition"
)

// Command is the user-declared unit of work.
type Command struct {
	Name              string
	Description       string
	Before            []string
	Execute           string
	After             []string
	Examples          []string
	DefaultContainer  string // empty when unset
	RunOptions        string
}

// Container is a declared execution environment.
type Container struct {
	Name   string
	Family ContainerFamily

	// image family
	ImageRef string

	// built-image family
	RecipePath   string
	BuildOptions string

	// composition family
	ComposePath    string
	ComposeService string
	ComposeOptions string
}

// Diagnostic is a single validator-reported problem, attributed to the
// offending command or container name when one could be determined.
type Diagnostic struct {
	Name    string // command/container name, empty if unattributable
	Message string
}

// ValidationReport carries every diagnostic the validator produced, grouped
// the way the core engine needs to report them (spec.md §4.1, §4.2, §7).
type ValidationReport struct {
	// CommandErrors are problems found while validating the commands table
	// as a whole (duplicate names, bad slugs, missing required fields) that
	// could not be attributed to a single resolvable command.
	CommandErrors []Diagnostic

	// ContainerErrors maps a container name to the diagnostics raised
	// against that specific container's declaration.
	ContainerErrors map[string][]Diagnostic
}

// HasCommandErrors reports whether any commands-table-level diagnostics
// were recorded.
func (r ValidationReport) HasCommandErrors() bool {
	return len(r.CommandErrors) > 0
}

// Model is the validated configuration the core engine consumes. It is
// produced exclusively by Validate; the engine never decodes TOML itself.
type Model struct {
	Commands   []Command
	Containers []Container
	Report     ValidationReport
}

// FindCommand returns the Command with the given name, if present.
func (m *Model) FindCommand(name string) (Command, bool) {
	for _, c := range m.Commands {
		if c.Name == name {
			return c, true
		}
	}
	return Command{}, false
}

// FindContainer returns the Container with the given name, if present.
func (m *Model) FindContainer(name string) (Container, bool) {
	for _, c := range m.Containers {
		if c.Name == name {
			return c, true
		}
	}
	return Container{}, false
}

// ContainerNames returns the declared container names in declaration order.
func (m *Model) ContainerNames() []string {
	names := make([]string, 0, len(m.Containers))
	for _, c := range m.Containers {
		names = append(names, c.Name)
	}
	return names
}
