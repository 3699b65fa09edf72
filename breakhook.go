// Package breakhook binds a process-wide breakpoint handle based on
// environment variables, falling back silently to a no-op when no debugging
// is requested.
//
// The host calls Init (or MustInit) once during startup; afterwards any code
// may call BB() to drop into the selected debugging session. With nothing
// configured, BB() does nothing.
package breakhook

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/mwnd/breakhook/internal/config"
	"github.com/mwnd/breakhook/internal/provider"
	"github.com/mwnd/breakhook/internal/registry"
	"github.com/mwnd/breakhook/pkg/hittrace"
	log "github.com/sirupsen/logrus"
)

// Environment variables driving selection.
const (
	// EnvSelector names the debugging provider: "1" (ordered fallback),
	// "pudb" (attach, strict), "ipdb" (console, strict), "pdb" (break).
	// Any other value, including empty, selects the no-op.
	EnvSelector = "PYDEBUG"
	// EnvFallback is consulted when EnvSelector is unset or empty; a
	// non-empty value is written back into EnvSelector.
	EnvFallback = "BB"
)

// ErrProviderUnavailable is returned when a strict selector names a provider
// that is absent from the current environment. The host should treat it as a
// fatal startup error: no breakpoint capability can be established.
var ErrProviderUnavailable = errors.New("debug provider unavailable")

// Selection is the outcome of resolution: a provider name and its
// breakpoint function.
type Selection struct {
	Provider string
	Func     func()
}

var (
	initOnce sync.Once
	initErr  error

	// bound is never reassigned after a successful Init.
	bound    = func() {}
	selected string
)

// Init resolves the breakpoint binding once, from the process environment,
// the optional breakhook.yml config, and the built-in provider registry.
// Subsequent calls do nothing and return the first result.
func Init() error {
	initOnce.Do(func() {
		cfg := config.Load()
		sel, err := Resolve(buildRegistry(cfg), os.Getenv, os.Setenv)
		if err != nil {
			initErr = err
			return
		}
		selected = sel.Provider
		if sel.Provider == "noop" {
			bound = sel.Func
			return
		}
		bound = hittrace.NewTracer().Wrap(sel.Provider, sel.Func)
		log.WithField("caller", "breakhook").Debugf("breakpoint bound to %q provider", sel.Provider)
	})
	return initErr
}

// MustInit is Init for hosts that treat a strict-selection failure as fatal.
func MustInit() {
	if err := Init(); err != nil {
		log.WithField("caller", "breakhook").WithError(err).Fatal("cannot establish breakpoint capability")
	}
}

// BB invokes the bound breakpoint function. Before a successful Init, and
// whenever no debugging was requested, it is a no-op.
func BB() {
	bound()
}

// Selected returns the name of the bound provider, or "" before Init.
func Selected() string {
	return selected
}

// Resolve computes a Selection from the given registry and environment
// accessors. It is the resolution core behind Init, injectable for tests.
//
// Resolution reads EnvSelector; if unset or empty it reads EnvFallback and,
// when that is non-empty, writes the value back into EnvSelector (a visible
// side effect on the process environment). The final value is dispatched
// through the registry: the first available provider of the bound chain
// wins. An unbound value selects the no-op; a bound chain with no available
// provider fails with ErrProviderUnavailable.
func Resolve(reg *registry.Registry, getenv func(string) string, setenv func(key, value string) error) (Selection, error) {
	noop := Selection{Provider: "noop", Func: provider.Noop{}.Breakpoint()}
	if breakpointsDisabled {
		return noop, nil
	}

	value := getenv(EnvSelector)
	if value == "" {
		if fb := getenv(EnvFallback); fb != "" {
			if err := setenv(EnvSelector, fb); err != nil {
				log.WithField("caller", "breakhook").WithError(err).Warnf("cannot propagate %s to %s", EnvFallback, EnvSelector)
			}
			value = fb
		}
	}

	chain := reg.Chain(value)
	if chain == nil {
		return noop, nil
	}
	for _, p := range chain {
		if p.Available() {
			return Selection{Provider: p.Name(), Func: p.Breakpoint()}, nil
		}
	}
	return Selection{}, fmt.Errorf("selector %q: %w", value, ErrProviderUnavailable)
}

// buildRegistry assembles the built-in bindings and applies config rebindings.
func buildRegistry(cfg *config.Config) *registry.Registry {
	waitTimeout := time.Duration(0)
	if raw := cfg.Hook.Attach.WaitTimeout; raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			log.WithField("caller", "breakhook").WithError(err).Warnf("bad attach wait_timeout %q, using default", raw)
		} else {
			waitTimeout = d
		}
	}

	catalog := map[string]provider.Provider{}
	for _, p := range []provider.Provider{
		provider.NewAttach(cfg.Hook.Attach.DlvPath, waitTimeout),
		provider.NewConsole(cfg.Hook.Console.Prompt),
		provider.Break{},
		provider.Noop{},
	} {
		catalog[p.Name()] = p
	}

	reg := registry.New()
	reg.Bind("1", catalog["attach"], catalog["console"], catalog["break"])
	reg.Bind("pudb", catalog["attach"])
	reg.Bind("ipdb", catalog["console"])
	reg.Bind("pdb", catalog["break"])

	for selector, names := range cfg.Hook.Bindings {
		chain := make([]provider.Provider, 0, len(names))
		for _, name := range names {
			p, ok := catalog[name]
			if !ok {
				log.WithField("caller", "breakhook").Warnf("unknown provider %q in binding for selector %q", name, selector)
				continue
			}
			chain = append(chain, p)
		}
		if len(chain) > 0 {
			reg.Bind(selector, chain...)
		}
	}
	return reg
}
