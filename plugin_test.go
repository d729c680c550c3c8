package slacklet

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// recorderPlugin subscribes to every lifecycle hook and records emissions.
type recorderPlugin struct {
	name     string
	setupErr error
	calls    []Hook
	hookErr  map[Hook]error
}

func (p *recorderPlugin) Name() string { return p.name }

func (p *recorderPlugin) Setup(app *App) error {
	if p.setupErr != nil {
		return p.setupErr
	}
	hooks := []Hook{HookStartup, HookShutdown, HookPreHandle, HookPostHandle, HookError, HookUnhandled}
	for _, h := range hooks {
		hook := h
		if err := app.OnHook(hook, func(ctx context.Context, ev *HookEvent) error {
			p.calls = append(p.calls, hook)
			return p.hookErr[hook]
		}); err != nil {
			return err
		}
	}
	return nil
}

func newTestApp() *App {
	return New(DefaultConfig(), nil)
}

func TestAddPlugin(t *testing.T) {
	app := newTestApp()
	p := &recorderPlugin{name: "recorder"}

	assert.NoError(t, app.AddPlugin(p))
	assert.Equal(t, []string{"recorder"}, app.Plugins())
}

func TestAddPluginRejectsDuplicates(t *testing.T) {
	app := newTestApp()
	assert.NoError(t, app.AddPlugin(&recorderPlugin{name: "recorder"}))

	err := app.AddPlugin(&recorderPlugin{name: "recorder"})
	assert.ErrorIs(t, err, ErrPluginRegistered)
	assert.Equal(t, []string{"recorder"}, app.Plugins())
}

func TestAddPluginRejectedAfterBoot(t *testing.T) {
	app := newTestApp()
	assert.NoError(t, app.boot(context.Background()))
	assert.True(t, app.Booted())

	err := app.AddPlugin(&recorderPlugin{name: "late"})
	assert.ErrorIs(t, err, ErrAppBooted)
}

func TestAddPluginValidation(t *testing.T) {
	app := newTestApp()
	assert.Error(t, app.AddPlugin(nil))
	assert.Error(t, app.AddPlugin(&recorderPlugin{name: ""}))
}

func TestAddPluginSetupFailureDiscardsHooks(t *testing.T) {
	app := newTestApp()
	p := &recorderPlugin{name: "broken", setupErr: errors.New("nope")}

	assert.Error(t, app.AddPlugin(p))
	assert.Empty(t, app.Plugins())

	// No hooks from the failed plugin may fire.
	assert.NoError(t, app.hooks.Emit(context.Background(), HookStartup, &HookEvent{App: app}))
	assert.Empty(t, p.calls)
}

func TestOnHookOutsideSetup(t *testing.T) {
	app := newTestApp()
	err := app.OnHook(HookStartup, func(ctx context.Context, ev *HookEvent) error { return nil })
	assert.ErrorIs(t, err, ErrNotSetup)
}

func TestBootEmitsStartupHook(t *testing.T) {
	app := newTestApp()
	p := &recorderPlugin{name: "recorder"}
	assert.NoError(t, app.AddPlugin(p))

	assert.NoError(t, app.boot(context.Background()))
	assert.Equal(t, []Hook{HookStartup}, p.calls)
}

func TestBootPropagatesStartupHookError(t *testing.T) {
	app := newTestApp()
	p := &recorderPlugin{name: "recorder", hookErr: map[Hook]error{HookStartup: errors.New("db down")}}
	assert.NoError(t, app.AddPlugin(p))

	assert.Error(t, app.boot(context.Background()))
}
