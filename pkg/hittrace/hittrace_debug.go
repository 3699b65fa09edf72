//go:build debug
// +build debug

package hittrace

import (
	"runtime"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// HitEvent records one invocation of a bound breakpoint function.
type HitEvent struct {
	TS       time.Time `json:"ts"`
	Provider string    `json:"provider"`
	File     string    `json:"file"`
	Line     int       `json:"line"`
}

// Tracer records breakpoint hits and sends them to a channel.
type Tracer struct {
	ch chan HitEvent // if nil, emitHit is a no-op
}

// NewTracer creates a new Tracer with its own event channel.
func NewTracer() *Tracer {
	return &Tracer{
		ch: make(chan HitEvent, 256),
	}
}

// NewTracerWithChannel creates a tracer that sends events to the given channel.
func NewTracerWithChannel(ch chan HitEvent) *Tracer {
	return &Tracer{ch: ch}
}

// Events returns the channel hit events are delivered on.
func (t *Tracer) Events() <-chan HitEvent {
	return t.ch
}

// Wrap returns fn extended to record a HitEvent on every invocation before
// handing control to the provider.
func (t *Tracer) Wrap(providerName string, fn func()) func() {
	return func() {
		file, line := callerOutsideModule()
		log.WithField("caller", "hittrace").Debugf("breakpoint hit at %s:%d via %s", file, line, providerName)
		t.emitHit(HitEvent{
			TS:       time.Now(),
			Provider: providerName,
			File:     file,
			Line:     line,
		})
		fn()
	}
}

func (t *Tracer) emitHit(ev HitEvent) {
	if t.ch == nil {
		return
	}
	select {
	case t.ch <- ev:
	default:
	}
}

// callerOutsideModule walks up the stack to the first frame that does not
// belong to this module, i.e. the code that actually invoked the breakpoint.
func callerOutsideModule() (string, int) {
	pc := make([]uintptr, 16)
	n := runtime.Callers(2, pc)
	frames := runtime.CallersFrames(pc[:n])
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.Function, "github.com/mwnd/breakhook") {
			return frame.File, frame.Line
		}
		if !more {
			return frame.File, frame.Line
		}
	}
}
