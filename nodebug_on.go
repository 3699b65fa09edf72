//go:build nodebug
// +build nodebug

package breakhook

var breakpointsDisabled = true
