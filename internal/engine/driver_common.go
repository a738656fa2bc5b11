package engine

import (
	"fmt"
	"strings"

	"github.com/frwl404/runo/internal/config"
)

// NamespaceToken is the uppercased name token ("<NS>" in spec.md §4.4/§6)
// exposed in the container environment variable. runo's own binary name
// supplies it (original_source expects RUNO_CONTAINER_NAME).
const NamespaceToken = "RUNO"

// containerNameEnv renders the environment assignment every container-based
// main phase receives (spec.md §4.4, §6).
func containerNameEnv(containerName string) string {
	return fmt.Sprintf("%s_CONTAINER_NAME=%s", NamespaceToken, containerName)
}

// execLine appends the invocation's pass-through extra-argument tail to the
// command's execute string (spec.md §4.3).
func execLine(cmd config.Command, extraArgs []string) string {
	if len(extraArgs) == 0 {
		return cmd.Execute
	}
	return cmd.Execute + " " + strings.Join(extraArgs, " ")
}

// hostBody renders the Native Driver's shell body: before + execute+args +
// after, all run in one shell and terminating at the first non-zero
// return (spec.md §4.3).
func hostBody(cmd config.Command, extraArgs []string) string {
	parts := make([]string, 0, len(cmd.Before)+1+len(cmd.After))
	parts = append(parts, cmd.Before...)
	parts = append(parts, execLine(cmd, extraArgs))
	parts = append(parts, cmd.After...)
	return strings.Join(parts, " && ")
}

// containerMainBody renders a container-based main phase's shell body:
// before + execute+args, run inside the container (spec.md §4.4). "after"
// is not included here — for container families it runs as its own
// subprocess outside the container (spec.md §4.4).
func containerMainBody(cmd config.Command, extraArgs []string) string {
	parts := make([]string, 0, len(cmd.Before)+1)
	parts = append(parts, cmd.Before...)
	parts = append(parts, execLine(cmd, extraArgs))
	return strings.Join(parts, " && ")
}

// splitFields whitespace-tokenizes a user-supplied option string. The
// engine never re-quotes these tokens (spec.md §9).
func splitFields(s string) []string {
	return strings.Fields(s)
}

// joinAnd joins shell statements with the same "&&" short-circuit rule used
// for the Native Driver's single combined body.
func joinAnd(statements []string) string {
	return strings.Join(statements, " && ")
}

// mainPhase builds the quoted-body main phase shared by the Native, Image,
// Built-Image, and Composition drivers.
func mainPhase(name string, args []string) Phase {
	return Phase{Kind: PhaseMain, Name: name, Args: args, QuoteLastArg: true}
}

// argvPhase builds a plain argv-vector phase (build or cleanup).
func argvPhase(kind PhaseKind, name string, args []string, captureDiscard bool) Phase {
	return Phase{Kind: kind, Name: name, Args: args, CaptureDiscard: captureDiscard}
}

// argvPhaseIgnoreStatus builds a cleanup phase whose exit status is
// ignored outright (spec.md §4.6's "down --remove-orphans").
func argvPhaseIgnoreStatus(name string, args []string) Phase {
	p := argvPhase(PhaseCleanup, name, args, true)
	p.IgnoreStatus = true
	return p
}
