// Package cmd wires runo's command-line surface onto the core engine using
// Cobra. Everything here is an external collaborator (spec.md §1): it loads
// and validates configuration, builds an engine.Invocation, and hands both
// to engine.Dispatch. Besides the engine's own output it prints only the
// --init and --containers results, the missing-command-name message, and
// slogger diagnostics about loading and validating the configuration.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/frwl404/runo/internal/config"
	"github.com/frwl404/runo/internal/engine"
	"github.com/frwl404/runo/internal/exec"
	"github.com/frwl404/runo/internal/slogger"
	"github.com/frwl404/runo/internal/version"
)

var (
	configPath string
	containers []string
	debug      bool
	listFlag   bool
	initFlag   bool
)

var rootCmd = &cobra.Command{
	Use:     "runo <command> [-- extra args]",
	Short:   "Run project commands on the host or in a declared container",
	Version: version.Version,
	Args:    cobra.ArbitraryArgs,
	RunE:    run,
	// SilenceUsage/SilenceErrors: the engine owns every diagnostic message it
	// is contractually required to print; Cobra must not add its own.
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringArrayVarP(&containers, "container", "c", nil, "override target container (repeatable, '*' for all)")
	rootCmd.Flags().BoolVarP(&debug, "debug", "d", false, "echo each spawned command")
	rootCmd.Flags().StringVar(&configPath, "config", config.DefaultFileName, "path to the configuration file")
	rootCmd.Flags().BoolVar(&listFlag, "containers", false, "list configured container names")
	rootCmd.Flags().BoolVar(&initFlag, "init", false, "write an example configuration")

	// The pass-through tail must survive verbatim, even tokens that look
	// like flags (spec.md §6) — stop flag parsing at the first positional.
	rootCmd.Flags().SetInterspersed(false)
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return engine.ExitConfigError
	}
	return exitCode
}

// exitCode carries the engine's verdict out of RunE, since Cobra's Execute
// only reports error/no-error, not an arbitrary integer status.
var exitCode int

// loggerVerbosity maps "-d/--debug" onto slogger's verbosity levels — the
// CLI has no separate "-v/-vv" counter, so debug mode also unlocks the
// logger's most detailed level (spec.md's own debug traces are printed
// literally by the engine; slogger carries everything around them: config
// load failures, TOML decode errors, and validator warnings, per
// SPEC_FULL.md §F).
func loggerVerbosity() int {
	if debug {
		return 2
	}
	return 0
}

func run(cmd *cobra.Command, args []string) error {
	if initFlag {
		return runInit()
	}

	logger := slogger.New(slogger.Config{Verbosity: loggerVerbosity(), Output: os.Stderr})
	ctx := slogger.WithLogger(context.Background(), logger)

	raw, err := config.Load(configPath)
	if err != nil {
		slogger.L(ctx).Error("failed to load configuration", "path", configPath, "error", err)
		exitCode = engine.ExitConfigError
		return nil
	}
	model := config.Validate(raw)

	if n := len(model.Report.CommandErrors); n > 0 {
		slogger.L(ctx).Warn("commands table has validation diagnostics", "count", n)
	}
	if n := len(model.Report.ContainerErrors); n > 0 {
		slogger.L(ctx).Warn("docker_containers table has validation diagnostics", "count", n)
	}

	if listFlag {
		runContainers(model)
		return nil
	}

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "a command name is required")
		exitCode = engine.ExitConfigError
		return nil
	}

	inv := engine.Invocation{
		CommandName: args[0],
		ExtraArgs:   args[1:],
		Debug:       debug,
		Containers:  containers,
	}

	isTTY := term.IsTerminal(int(os.Stdin.Fd()))
	executor := engine.NewExecutor(exec.New(), debug)

	exitCode = engine.Dispatch(ctx, model, inv, isTTY, executor, os.Stderr)
	return nil
}
