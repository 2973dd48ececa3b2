// Package mocks provides testify mocks for the interactive and process
// collaborators consumed by the resolver and the use-cases.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Selector mocks resolver.Selector.
type Selector struct {
	mock.Mock
}

// NewSelector returns a Selector whose expectations are asserted on cleanup.
func NewSelector(t mock.TestingT) *Selector {
	m := &Selector{}
	m.Test(t)
	if c, ok := t.(interface{ Cleanup(func()) }); ok {
		c.Cleanup(func() { m.AssertExpectations(t) })
	}
	return m
}

// Select records the call and returns the configured index and error.
func (m *Selector) Select(ctx context.Context, prompt string, options []string) (int, error) {
	args := m.Called(ctx, prompt, options)
	return args.Int(0), args.Error(1)
}

// Inputter mocks app.Inputter.
type Inputter struct {
	mock.Mock
}

// NewInputter returns an Inputter whose expectations are asserted on cleanup.
func NewInputter(t mock.TestingT) *Inputter {
	m := &Inputter{}
	m.Test(t)
	if c, ok := t.(interface{ Cleanup(func()) }); ok {
		c.Cleanup(func() { m.AssertExpectations(t) })
	}
	return m
}

// Input records the call and returns the configured text and error.
func (m *Inputter) Input(ctx context.Context, prompt, defaultValue string, allowEmpty bool) (string, error) {
	args := m.Called(ctx, prompt, defaultValue, allowEmpty)
	return args.String(0), args.Error(1)
}

// Launcher mocks app.Launcher.
type Launcher struct {
	mock.Mock
}

// NewLauncher returns a Launcher whose expectations are asserted on cleanup.
func NewLauncher(t mock.TestingT) *Launcher {
	m := &Launcher{}
	m.Test(t)
	if c, ok := t.(interface{ Cleanup(func()) }); ok {
		c.Cleanup(func() { m.AssertExpectations(t) })
	}
	return m
}

// Launch records the call and returns the configured error.
func (m *Launcher) Launch(ctx context.Context, command, path string) error {
	args := m.Called(ctx, command, path)
	return args.Error(0)
}
