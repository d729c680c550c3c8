package slacklet

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmitRunsInPluginRegistrationOrder(t *testing.T) {
	app := newTestApp()

	var order []string
	for _, name := range []string{"first", "second", "third"} {
		n := name
		p := &funcPlugin{name: n, setup: func(a *App) error {
			return a.OnHook(HookPostHandle, func(ctx context.Context, ev *HookEvent) error {
				order = append(order, n)
				return nil
			})
		}}
		assert.NoError(t, app.AddPlugin(p))
	}

	assert.NoError(t, app.hooks.Emit(context.Background(), HookPostHandle, &HookEvent{App: app}))
	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestEmitErrorAbortsRemainingHooks(t *testing.T) {
	app := newTestApp()

	var order []string
	add := func(name string, err error) {
		p := &funcPlugin{name: name, setup: func(a *App) error {
			return a.OnHook(HookPreHandle, func(ctx context.Context, ev *HookEvent) error {
				order = append(order, name)
				return err
			})
		}}
		assert.NoError(t, app.AddPlugin(p))
	}

	add("ok", nil)
	add("failing", errors.New("boom"))
	add("never", nil)

	err := app.hooks.Emit(context.Background(), HookPreHandle, &HookEvent{App: app})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failing")
	assert.Equal(t, []string{"ok", "failing"}, order)
}

func TestEmitWithNoSubscribers(t *testing.T) {
	app := newTestApp()
	assert.NoError(t, app.hooks.Emit(context.Background(), HookUnhandled, &HookEvent{App: app}))
}

func TestEmitSetsHookOnEvent(t *testing.T) {
	app := newTestApp()

	var seen Hook
	p := &funcPlugin{name: "observer", setup: func(a *App) error {
		return a.OnHook(HookUnhandled, func(ctx context.Context, ev *HookEvent) error {
			seen = ev.Hook
			return nil
		})
	}}
	assert.NoError(t, app.AddPlugin(p))

	assert.NoError(t, app.hooks.Emit(context.Background(), HookUnhandled, &HookEvent{App: app}))
	assert.Equal(t, HookUnhandled, seen)
}

// funcPlugin adapts a setup func to the Plugin interface.
type funcPlugin struct {
	name  string
	setup func(*App) error
}

func (p *funcPlugin) Name() string       { return p.name }
func (p *funcPlugin) Setup(a *App) error { return p.setup(a) }
