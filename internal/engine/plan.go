// Package engine is the core command-running pipeline: it resolves a
// command, selects its execution targets, builds an ExecutionPlan per
// target, runs it through the Executor, and aggregates the results into a
// single process exit status (spec.md §2–§9).
package engine

import (
	"strings"

	"github.com/frwl404/runo/internal/exec"
)

// Invocation is the transient record delivered by the (external) argument
// parser: the command name, the pass-through extra-argument tail, the debug
// flag, and a possibly-empty ordered list of container-override selectors
// (each a Container name or the wildcard sigil "*").
type Invocation struct {
	CommandName string
	ExtraArgs   []string
	Debug       bool
	Containers  []string
}

// WildcardSigil expands to every declared container, in declaration order.
const WildcardSigil = "*"

// HostTarget is the pseudo-target name used when a command runs on the host
// instead of in a container.
const HostTarget = "host"

// PhaseKind governs how the Executor treats a Phase's exit status when
// aggregating a TargetResult.
type PhaseKind int

const (
	// PhaseBuild phases short-circuit the rest of the plan on failure; their
	// exit status becomes the TargetResult (spec.md §4.5, §8).
	PhaseBuild PhaseKind = iota
	// PhaseMain phases supply the TargetResult's exit status on success.
	PhaseMain
	// PhaseCleanup phases always run and never block the plan; a non-zero
	// exit only marks the TargetResult as anomalous.
	PhaseCleanup
)

// Phase is a single subprocess descriptor within an ExecutionPlan.
//
// QuoteLastArg implements the two spawn/rendering conventions of spec.md
// §6: the main phase of every driver (Native, Image, Built-Image, and
// Composition) ends in a shell body that must render single-quoted ("... /bin/sh -c 'body'")
// even though it is passed to os/exec as one literal argv element; build
// and cleanup phases render as plain argv vectors.
type Phase struct {
	Kind           PhaseKind
	Name           string
	Args           []string
	QuoteLastArg   bool
	CaptureDiscard bool

	// IgnoreStatus marks a cleanup phase whose exit status spec.md says is
	// ignored outright (the Composition Driver's "down --remove-orphans"),
	// as opposed to one that merely doesn't block the plan but still marks
	// the TargetResult anomalous.
	IgnoreStatus bool
}

// Render joins the phase's name and argv (the same values RunOptions passes
// to the subprocess facility) with spaces, single-quoting the last argument
// when QuoteLastArg is set. It is used both for "-d/--debug" traces and for
// tests asserting on spawn shape (spec.md §4.8, §9).
func (p Phase) Render() string {
	parts := make([]string, 0, len(p.Args)+1)
	parts = append(parts, p.Name)
	parts = append(parts, p.Args...)

	if p.QuoteLastArg && len(parts) > 0 {
		last := len(parts) - 1
		parts[last] = "'" + parts[last] + "'"
	}

	return strings.Join(parts, " ")
}

// RunOptions converts the Phase into what internal/exec.Executor needs to
// actually spawn it. The body is passed as a single literal argv element —
// os/exec never invokes a shell of its own, so quoting is purely cosmetic
// for Render and is never applied to the argv actually executed.
func (p Phase) RunOptions() *exec.RunOptions {
	return &exec.RunOptions{Name: p.Name, Args: p.Args}
}

// ExecutionPlan is the linear phase sequence for one target:
// build? -> main -> cleanup* (spec.md §3).
type ExecutionPlan struct {
	Target string
	Phases []Phase
}

// TargetResult is the outcome of running an ExecutionPlan against one
// target (spec.md §3).
type TargetResult struct {
	Target   string
	ExitCode int
	Anomaly  bool // a build or cleanup phase misbehaved
}
