package engine

import (
	"fmt"
	"strings"

	"github.com/frwl404/runo/internal/config"
)

// ResolveCommand locates the Command named by inv within model (spec.md
// §4.1). A missing command is a DispatchError carrying either
// ExitUnavailableResource, or ExitConfigError when the validator recorded
// commands-table-level diagnostics that might explain the absence.
func ResolveCommand(model *config.Model, inv Invocation) (config.Command, *DispatchError) {
	cmd, ok := model.FindCommand(inv.CommandName)
	if ok {
		return cmd, nil
	}

	notFound := fmt.Sprintf("command '%s' is not present in the config", inv.CommandName)

	if model.Report.HasCommandErrors() {
		var b strings.Builder
		b.WriteString(notFound)
		b.WriteString("\n")
		b.WriteString("errors detected in 'commands' configurations (probably this is the reason why command can't be found):\n")
		for _, d := range model.Report.CommandErrors {
			b.WriteString("  - " + d.Message + "\n")
		}
		return config.Command{}, &DispatchError{
			Err:      ErrCommandNotFound,
			ExitCode: ExitConfigError,
			Message:  strings.TrimRight(b.String(), "\n"),
		}
	}

	return config.Command{}, &DispatchError{
		Err:      ErrCommandNotFound,
		ExitCode: ExitUnavailableResource,
		Message:  notFound,
	}
}
