// Command runo runs project-declared commands on the host or inside a
// declared container, per the project-local runo.toml configuration.
package main

import (
	"os"

	"github.com/frwl404/runo/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
