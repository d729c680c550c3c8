package slacklet

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mattjoyce/slacklet/payload"
)

// Hook is a named lifecycle signal plugins may subscribe to.
type Hook string

const (
	HookStartup    Hook = "startup"
	HookShutdown   Hook = "shutdown"
	HookPreHandle  Hook = "pre_handle"
	HookPostHandle Hook = "post_handle"
	HookError      Hook = "error"
	HookUnhandled  Hook = "unhandled"
)

// HookEvent carries the dispatch context into hook functions. Fields that
// don't apply to a given hook (e.g. Payload on startup) are nil.
type HookEvent struct {
	App      *App
	Hook     Hook
	Category Category
	Key      string
	Payload  *payload.Payload
	Request  *http.Request
	Dispatch *DispatchContext

	// Err is set for the error hook.
	Err error
}

// HookFunc handles a lifecycle hook emission. Returning an error aborts the
// remaining hook functions for that emission.
type HookFunc func(ctx context.Context, ev *HookEvent) error

// pluginHooks is the ordered hook subscription set of one plugin, built
// during its Setup call and read-only afterwards.
type pluginHooks struct {
	plugin   string
	handlers map[Hook][]HookFunc
}

// hookDispatcher emits lifecycle hooks to plugin subscriptions in plugin
// registration order, sequentially. No isolation: the first hook error
// aborts the remainder of the emission and is returned to the caller.
type hookDispatcher struct {
	sets   []*pluginHooks
	logger *slog.Logger
}

func newHookDispatcher(logger *slog.Logger) *hookDispatcher {
	return &hookDispatcher{logger: logger}
}

func (d *hookDispatcher) add(set *pluginHooks) {
	d.sets = append(d.sets, set)
}

// Emit calls every subscribed hook function for the given hook.
func (d *hookDispatcher) Emit(ctx context.Context, hook Hook, ev *HookEvent) error {
	ev.Hook = hook
	for _, set := range d.sets {
		for _, fn := range set.handlers[hook] {
			if err := fn(ctx, ev); err != nil {
				return fmt.Errorf("plugin %q hook %q: %w", set.plugin, hook, err)
			}
		}
	}
	return nil
}
