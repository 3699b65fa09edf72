package provider

import (
	"runtime"
)

// Break is the minimal provider that is always present: it traps into
// whatever debugger is already supervising the process via runtime.Breakpoint.
// Without a supervising debugger the trap is handled by the runtime and the
// process continues (or crashes with SIGTRAP on some platforms), which is the
// same contract the runtime documents.
type Break struct{}

// Name returns "break".
func (Break) Name() string { return "break" }

// Available is always true; runtime.Breakpoint ships with the runtime.
func (Break) Available() bool { return true }

// Breakpoint returns runtime.Breakpoint.
func (Break) Breakpoint() func() { return runtime.Breakpoint }
