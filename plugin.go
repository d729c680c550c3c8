package slacklet

import "fmt"

// Plugin is an extension unit. Setup is called exactly once, when the
// plugin is added to the app; it is the only place a plugin may subscribe
// hooks (via App.OnHook) or register callbacks.
type Plugin interface {
	// Name identifies the plugin. Adding two plugins with the same name is
	// an error.
	Name() string

	// Setup wires the plugin into the app.
	Setup(app *App) error
}

// AddPlugin registers a plugin with the app. It must be called before
// Start; duplicate plugin names are rejected.
func (a *App) AddPlugin(p Plugin) error {
	if a.booted {
		return fmt.Errorf("add plugin: %w", ErrAppBooted)
	}
	if p == nil {
		return fmt.Errorf("add plugin: plugin is nil")
	}
	name := p.Name()
	if name == "" {
		return fmt.Errorf("add plugin: plugin name is empty")
	}
	if _, dup := a.pluginIndex[name]; dup {
		return fmt.Errorf("add plugin %q: %w", name, ErrPluginRegistered)
	}

	set := &pluginHooks{plugin: name, handlers: make(map[Hook][]HookFunc)}
	a.setupHooks = set
	err := p.Setup(a)
	a.setupHooks = nil
	if err != nil {
		return fmt.Errorf("plugin %q setup: %w", name, err)
	}

	a.hooks.add(set)
	a.pluginIndex[name] = p
	a.plugins = append(a.plugins, p)
	a.logger.Info("plugin registered", "plugin", name)
	return nil
}

// OnHook subscribes a hook function for the plugin currently being set up.
// Calling it outside a plugin's Setup returns ErrNotSetup.
func (a *App) OnHook(hook Hook, fn HookFunc) error {
	if a.setupHooks == nil {
		return ErrNotSetup
	}
	a.setupHooks.handlers[hook] = append(a.setupHooks.handlers[hook], fn)
	return nil
}

// Plugins returns the names of all registered plugins in registration order.
func (a *App) Plugins() []string {
	names := make([]string, len(a.plugins))
	for i, p := range a.plugins {
		names[i] = p.Name()
	}
	return names
}
