//go:build !debug
// +build !debug

// Package hittrace records breakpoint hit events (release build, no-op).
package hittrace

import (
	"time"
)

// HitEvent records one invocation of a bound breakpoint function. In release
// builds it has the same shape as in debug.
type HitEvent struct {
	TS       time.Time
	Provider string
	File     string
	Line     int
}

// Tracer is a no-op hit recorder in release builds.
type Tracer struct{}

// NewTracer creates a new no-op tracer.
func NewTracer() *Tracer { return &Tracer{} }

// NewTracerWithChannel returns a no-op tracer in release builds.
func NewTracerWithChannel(ch chan HitEvent) *Tracer { return &Tracer{} }

// Events returns nil in release builds.
func (t *Tracer) Events() <-chan HitEvent { return nil }

// Wrap returns fn unchanged in release builds.
func (t *Tracer) Wrap(providerName string, fn func()) func() { return fn }
