//go:build integration

// Package integration drives the runo binary end to end via testscript,
// exercising the CLI surface (internal/cmd) against real fixture config
// files rather than mocked collaborators.
package integration

import (
	"fmt"
	"os"
	"os/exec"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

// TestMain registers "runo" as a testscript command that forwards to the
// runo binary.
func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"runo": runoMain,
	}))
}

// runoMain wraps the runo binary for testscript execution.
func runoMain() int {
	binary := os.Getenv("RUNO_BINARY")
	if binary == "" {
		var err error
		binary, err = exec.LookPath("runo")
		if err != nil {
			fmt.Fprintf(os.Stderr, "runo binary not found: set RUNO_BINARY or add runo to PATH\n")
			return 1
		}
	}

	cmd := exec.Command(binary, os.Args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode()
		}
		return 1
	}
	return 0
}

// TestScripts runs every testscript file in testdata/scripts against a
// fresh, isolated work directory.
func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/scripts",
		Setup: func(env *testscript.Env) error {
			if binary := os.Getenv("RUNO_BINARY"); binary != "" {
				env.Setenv("RUNO_BINARY", binary)
			} else if binary, err := exec.LookPath("runo"); err == nil {
				env.Setenv("RUNO_BINARY", binary)
			}
			return nil
		},
	})
}
