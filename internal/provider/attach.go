package provider

import (
	"os"
	"os/exec"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"
)

// DefaultWaitTimeout bounds how long an attach breakpoint blocks waiting
// for a debugger before giving up and letting the process continue.
const DefaultWaitTimeout = 5 * time.Minute

// resume is flipped from the attached debugger session to release a waiting
// breakpoint, e.g. in dlv: `call resume.Store(true)`. Atomic so the wait
// loop stays race-clean no matter where the flip comes from.
var resume atomic.Bool

// Attach is the preferred provider. Its breakpoint parks the calling
// goroutine until a Delve session attaches to the process and releases it.
type Attach struct {
	// DlvPath overrides the binary looked up on PATH. Empty means "dlv".
	DlvPath string
	// WaitTimeout bounds the park; zero means DefaultWaitTimeout.
	WaitTimeout time.Duration

	lookPath func(string) (string, error)
}

// NewAttach creates an Attach provider with the given dlv path override and
// wait timeout (zero values select the defaults).
func NewAttach(dlvPath string, waitTimeout time.Duration) *Attach {
	return &Attach{
		DlvPath:     dlvPath,
		WaitTimeout: waitTimeout,
		lookPath:    exec.LookPath,
	}
}

// Name returns "attach".
func (a *Attach) Name() string { return "attach" }

// Available reports whether the dlv binary can be found.
func (a *Attach) Available() bool {
	bin := a.DlvPath
	if bin == "" {
		bin = "dlv"
	}
	_, err := a.lookPath(bin)
	return err == nil
}

// Breakpoint returns a function that announces the process PID and blocks
// until an attached debugger flips resume, or the wait timeout expires.
func (a *Attach) Breakpoint() func() {
	timeout := a.WaitTimeout
	if timeout <= 0 {
		timeout = DefaultWaitTimeout
	}
	return func() {
		pid := os.Getpid()
		log.WithField("caller", "attach").Infof("breakpoint hit, waiting for debugger: dlv attach %d", pid)

		deadline := time.Now().Add(timeout)
		for !resume.Load() {
			if time.Now().After(deadline) {
				log.WithField("caller", "attach").Warnf("no debugger attached after %s, continuing", timeout)
				return
			}
			time.Sleep(100 * time.Millisecond)
		}
		resume.Store(false)
		log.WithField("caller", "attach").Info("released by debugger")
	}
}
