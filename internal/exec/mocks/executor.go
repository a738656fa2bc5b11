// Package mocks provides a hand-written stand-in for exec.Executor, in the
// field-func style of the moq generator named by exec.go's go:generate line.
package mocks

import (
	"context"

	"github.com/frwl404/runo/internal/exec"
)

// ExecutorMock lets a test supply RunFunc/LookPathFunc per case; calling an
// unset func panics, matching moq's generated behavior.
type ExecutorMock struct {
	RunFunc      func(ctx context.Context, opts *exec.RunOptions) (*exec.Result, error)
	LookPathFunc func(name string) (string, error)

	// Calls records every Run invocation's opts, in order, for assertions.
	Calls []*exec.RunOptions
}

func (m *ExecutorMock) Run(ctx context.Context, opts *exec.RunOptions) (*exec.Result, error) {
	m.Calls = append(m.Calls, opts)
	if m.RunFunc == nil {
		panic("ExecutorMock.RunFunc is not set")
	}
	return m.RunFunc(ctx, opts)
}

func (m *ExecutorMock) LookPath(name string) (string, error) {
	if m.LookPathFunc == nil {
		panic("ExecutorMock.LookPathFunc is not set")
	}
	return m.LookPathFunc(name)
}
