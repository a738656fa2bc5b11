package config

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/go-containerregistry/pkg/name"
)

var slugPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

var (
	structValidator     *validator.Validate
	structValidatorOnce sync.Once
)

// validatorInstance lazily builds the shared validator.Validate, registering
// the "slug" rule spec.md §3 requires for Command and Container names.
func validatorInstance() *validator.Validate {
	structValidatorOnce.Do(func() {
		structValidator = validator.New()
		_ = structValidator.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return slugPattern.MatchString(fl.Field().String())
		})
	})
	return structValidator
}

// validatedCommand carries the struct tags go-playground/validator checks
// for a commands-table entry.
type validatedCommand struct {
	Name    string `validate:"required,slug"`
	Execute string `validate:"required"`
}

// validatedContainer carries the struct tags checked for every
// docker_containers-table entry, independent of family.
type validatedContainer struct {
	Name string `validate:"required,slug"`
}

// Validate turns a decoded RawConfig into a Model plus a ValidationReport of
// every diagnostic encountered. Invalid containers are still attached to the
// Model when a name could be determined, so the engine can distinguish
// "not found" from "found but invalid" at dispatch time (spec.md §4.2 rule 7)
// rather than failing the whole load. Invalid commands are left out of the
// Model; their diagnostics are recorded in Report.CommandErrors only.
func Validate(raw *RawConfig) *Model {
	report := ValidationReport{ContainerErrors: make(map[string][]Diagnostic)}

	seenCommands := make(map[string]bool)
	commands := make([]Command, 0, len(raw.Commands))
	for _, rc := range raw.Commands {
		msgs := validateCommand(rc, seenCommands)
		if len(msgs) > 0 {
			for _, m := range msgs {
				report.CommandErrors = append(report.CommandErrors, Diagnostic{Name: rc.Name, Message: m})
			}
			continue
		}
		seenCommands[rc.Name] = true
		commands = append(commands, Command{
			Name:             rc.Name,
			Description:      rc.Description,
			Before:           rc.Before,
			Execute:          rc.Execute,
			After:            rc.After,
			Examples:         rc.Examples,
			DefaultContainer: rc.DefaultContainer,
			RunOptions:       rc.RunOptions,
		})
	}

	seenContainers := make(map[string]bool)
	containers := make([]Container, 0, len(raw.DockerContainers))
	for _, rc := range raw.DockerContainers {
		container, msgs := validateContainer(rc, seenContainers)
		if len(msgs) > 0 {
			for _, m := range msgs {
				report.ContainerErrors[rc.Name] = append(report.ContainerErrors[rc.Name], Diagnostic{Name: rc.Name, Message: m})
			}
		}
		if rc.Name == "" {
			// Nothing to resolve against later; drop entirely.
			continue
		}
		seenContainers[rc.Name] = true
		containers = append(containers, container)
	}

	return &Model{Commands: commands, Containers: containers, Report: report}
}

func validateCommand(rc rawCommand, seen map[string]bool) []string {
	var msgs []string

	if err := validatorInstance().Struct(validatedCommand{Name: rc.Name, Execute: rc.Execute}); err != nil {
		for _, fe := range err.(validator.ValidationErrors) { //nolint:errorlint // always ValidationErrors here
			switch fe.Field() {
			case "Name":
				if fe.Tag() == "required" {
					msgs = append(msgs, "command name is required")
				} else {
					msgs = append(msgs, fmt.Sprintf("command name %q must contain only letters, digits, '-', '_'", rc.Name))
				}
			case "Execute":
				msgs = append(msgs, fmt.Sprintf("command %q is missing required field 'execute'", rc.Name))
			}
		}
	}

	if rc.Name != "" && seen[rc.Name] {
		msgs = append(msgs, fmt.Sprintf("duplicate command name %q", rc.Name))
	}

	return msgs
}

func validateContainer(rc rawContainer, seen map[string]bool) (Container, []string) {
	var msgs []string

	if err := validatorInstance().Struct(validatedContainer{Name: rc.Name}); err != nil {
		for _, fe := range err.(validator.ValidationErrors) { //nolint:errorlint // always ValidationErrors here
			if fe.Tag() == "required" {
				msgs = append(msgs, "container name is required")
			} else {
				msgs = append(msgs, fmt.Sprintf("container name %q must contain only letters, digits, '-', '_'", rc.Name))
			}
		}
	}

	if rc.Name != "" && seen[rc.Name] {
		msgs = append(msgs, fmt.Sprintf("duplicate container name %q", rc.Name))
	}

	container := Container{
		Name:           rc.Name,
		ImageRef:       rc.ImageRef,
		RecipePath:     rc.RecipePath,
		BuildOptions:   rc.BuildOptions,
		ComposePath:    rc.ComposePath,
		ComposeService: rc.ComposeService,
		ComposeOptions: rc.ComposeOptions,
	}

	families := 0
	if rc.ImageRef != "" {
		families++
	}
	if rc.RecipePath != "" {
		families++
	}
	if rc.ComposePath != "" || rc.ComposeService != "" {
		families++
	}

	switch {
	case families == 0:
		msgs = append(msgs, fmt.Sprintf("container %q declares no family: set image_ref, recipe_path, or compose_path/compose_service", rc.Name))
	case families > 1:
		msgs = append(msgs, fmt.Sprintf("container %q mixes fields from more than one family (image, built-image, composition)", rc.Name))
	case rc.ImageRef != "":
		container.Family = FamilyImage
		if _, err := name.ParseReference(rc.ImageRef); err != nil {
			msgs = append(msgs, fmt.Sprintf("container %q has an invalid image_ref %q: %v", rc.Name, rc.ImageRef, err))
		}
	case rc.RecipePath != "":
		container.Family = FamilyBuiltImage
	default:
		container.Family = FamilyComposition
		if rc.ComposePath == "" || rc.ComposeService == "" {
			msgs = append(msgs, fmt.Sprintf("container %q is a composition container but is missing compose_path or compose_service", rc.Name))
		}
	}

	return container, msgs
}
