package cmd

import (
	"fmt"
	"os"

	"github.com/frwl404/runo/internal/config"
)

// runContainers implements "--containers": one configured container name
// per line, in declaration order, entirely outside the core engine
// (spec.md §6, SPEC_FULL.md §H).
func runContainers(model *config.Model) {
	for _, name := range model.ContainerNames() {
		fmt.Fprintln(os.Stdout, name)
	}
}
