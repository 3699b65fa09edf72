//go:build !nodebug
// +build !nodebug

package breakhook

var breakpointsDisabled = false

// breakpointsDisabled is a build-time kill switch for breakpoint capability.
// Building with -tags nodebug forces the no-op binding regardless of the
// environment, so release binaries can strip debugger entry points without
// touching the rest of the codebase.
