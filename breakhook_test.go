package breakhook

import (
	"testing"

	"github.com/mwnd/breakhook/internal/config"
	"github.com/mwnd/breakhook/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider is a controllable capability provider for resolution tests.
type fakeProvider struct {
	name      string
	available bool
	hits      int
}

func (f *fakeProvider) Name() string    { return f.name }
func (f *fakeProvider) Available() bool { return f.available }

func (f *fakeProvider) Breakpoint() func() {
	return func() { f.hits++ }
}

// fakeEnv replaces the process environment for Resolve.
type fakeEnv struct {
	vars map[string]string
	sets int
}

func (e *fakeEnv) getenv(key string) string {
	return e.vars[key]
}

func (e *fakeEnv) setenv(key, value string) error {
	e.vars[key] = value
	e.sets++
	return nil
}

func TestResolve_NothingConfigured(t *testing.T) {
	env := &fakeEnv{vars: map[string]string{}}
	reg := registry.New()

	sel, err := Resolve(reg, env.getenv, env.setenv)
	require.NoError(t, err)
	assert.Equal(t, "noop", sel.Provider)
	require.NotNil(t, sel.Func)
	// The no-op must be callable and do nothing observable
	sel.Func()
	assert.Equal(t, 0, env.sets)
}

func TestResolve_FallbackEnvCopiedBack(t *testing.T) {
	env := &fakeEnv{vars: map[string]string{"BB": "pdb"}}
	brk := &fakeProvider{name: "break", available: true}
	reg := registry.New()
	reg.Bind("pdb", brk)

	sel, err := Resolve(reg, env.getenv, env.setenv)
	require.NoError(t, err)
	assert.Equal(t, "break", sel.Provider)
	assert.Equal(t, "pdb", env.vars["PYDEBUG"])
	assert.Equal(t, 1, env.sets)
}

func TestResolve_OrderedFallback(t *testing.T) {
	env := &fakeEnv{vars: map[string]string{"PYDEBUG": "1"}}
	first := &fakeProvider{name: "attach", available: false}
	second := &fakeProvider{name: "console", available: true}
	third := &fakeProvider{name: "break", available: true}
	reg := registry.New()
	reg.Bind("1", first, second, third)

	sel, err := Resolve(reg, env.getenv, env.setenv)
	require.NoError(t, err)
	assert.Equal(t, "console", sel.Provider)

	sel.Func()
	assert.Equal(t, 1, second.hits)
	assert.Equal(t, 0, first.hits)
	assert.Equal(t, 0, third.hits)
}

func TestResolve_OrderedFallbackToLast(t *testing.T) {
	env := &fakeEnv{vars: map[string]string{"PYDEBUG": "1"}}
	reg := registry.New()
	reg.Bind("1",
		&fakeProvider{name: "attach", available: false},
		&fakeProvider{name: "console", available: false},
		&fakeProvider{name: "break", available: true},
	)

	sel, err := Resolve(reg, env.getenv, env.setenv)
	require.NoError(t, err)
	assert.Equal(t, "break", sel.Provider)
}

func TestResolve_StrictSelectorFailsHard(t *testing.T) {
	env := &fakeEnv{vars: map[string]string{"PYDEBUG": "pudb"}}
	reg := registry.New()
	reg.Bind("pudb", &fakeProvider{name: "attach", available: false})

	_, err := Resolve(reg, env.getenv, env.setenv)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProviderUnavailable)
	assert.Contains(t, err.Error(), `"pudb"`)
}

func TestResolve_UnrecognizedSelectorIsNoop(t *testing.T) {
	env := &fakeEnv{vars: map[string]string{"PYDEBUG": "xyz"}}
	reg := registry.New()
	reg.Bind("1", &fakeProvider{name: "attach", available: true})

	sel, err := Resolve(reg, env.getenv, env.setenv)
	require.NoError(t, err)
	assert.Equal(t, "noop", sel.Provider)
	// PYDEBUG was already set, so no environment mutation happens
	assert.Equal(t, 0, env.sets)
}

func TestBuildRegistry_Defaults(t *testing.T) {
	reg := buildRegistry(&config.Config{})

	chain := reg.Chain("1")
	require.Len(t, chain, 3)
	assert.Equal(t, "attach", chain[0].Name())
	assert.Equal(t, "console", chain[1].Name())
	assert.Equal(t, "break", chain[2].Name())

	chain = reg.Chain("pudb")
	require.Len(t, chain, 1)
	assert.Equal(t, "attach", chain[0].Name())

	chain = reg.Chain("ipdb")
	require.Len(t, chain, 1)
	assert.Equal(t, "console", chain[0].Name())

	chain = reg.Chain("pdb")
	require.Len(t, chain, 1)
	assert.Equal(t, "break", chain[0].Name())
	assert.True(t, chain[0].Available())

	assert.Nil(t, reg.Chain("xyz"))
}

func TestBuildRegistry_ConfigRebinds(t *testing.T) {
	cfg := &config.Config{}
	cfg.Hook.Bindings = map[string][]string{
		"1": {"console", "break"},
	}

	reg := buildRegistry(cfg)
	chain := reg.Chain("1")
	require.Len(t, chain, 2)
	assert.Equal(t, "console", chain[0].Name())
	assert.Equal(t, "break", chain[1].Name())
}

func TestBuildRegistry_UnknownProviderIgnored(t *testing.T) {
	cfg := &config.Config{}
	cfg.Hook.Bindings = map[string][]string{
		"pdb": {"gdb", "break"},
	}

	reg := buildRegistry(cfg)
	chain := reg.Chain("pdb")
	require.Len(t, chain, 1)
	assert.Equal(t, "break", chain[0].Name())
}

func TestInit_OnceAndImmutable(t *testing.T) {
	// Before Init the handle is callable and does nothing
	BB()
	assert.Empty(t, Selected())

	t.Setenv(EnvSelector, "pdb")
	require.NoError(t, Init())
	assert.Equal(t, "break", Selected())

	// Resolution happens exactly once: a later environment change must not
	// rebind, and the second call returns the first result
	t.Setenv(EnvSelector, "xyz")
	require.NoError(t, Init())
	assert.Equal(t, "break", Selected())
}
