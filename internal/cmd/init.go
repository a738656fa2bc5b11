package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/frwl404/runo/internal/config"
	"github.com/frwl404/runo/internal/engine"
)

// runInit implements "--init": write a starter configuration, refusing to
// clobber an existing one (spec.md §6, SPEC_FULL.md §H).
func runInit() error {
	if err := config.WriteTemplate(configPath); err != nil {
		if errors.Is(err, config.ErrTemplateExists) {
			fmt.Fprintf(os.Stderr, "%s already exists, refusing to overwrite\n", configPath)
			exitCode = engine.ExitConfigError
			return nil
		}
		return err
	}
	fmt.Fprintf(os.Stdout, "wrote %s\n", configPath)
	exitCode = engine.ExitSuccess
	return nil
}
