// Package provider implements the capability providers a breakpoint handle can bind to.
package provider

// Provider supplies a breakpoint function when it is present in the current environment.
type Provider interface {
	// Name identifies the provider in selector bindings and logs.
	Name() string
	// Available reports whether the provider can be used in this process environment.
	Available() bool
	// Breakpoint returns the function that suspends the caller and hands
	// control to a debugging session. Only valid when Available is true.
	Breakpoint() func()
}

// Noop is the provider selected when no debugging is requested.
type Noop struct{}

// Name returns "noop".
func (Noop) Name() string { return "noop" }

// Available is always true for the no-op provider.
func (Noop) Available() bool { return true }

// Breakpoint returns a function that performs no observable action.
func (Noop) Breakpoint() func() { return func() {} }
