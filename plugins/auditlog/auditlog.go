// Package auditlog is a built-in slacklet plugin that records every
// dispatch outcome (handled, unhandled, failed) to a SQLite table. It is a
// worked example of the plugin lifecycle: the store is opened on the
// startup hook, written on post_handle/unhandled/error, and closed on
// shutdown.
package auditlog

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mattjoyce/slacklet"
	"github.com/mattjoyce/slacklet/internal/log"
)

// Plugin records dispatch outcomes to SQLite.
type Plugin struct {
	path   string
	store  *Store
	logger *slog.Logger
}

// New creates the plugin. The database at path is not opened until the app
// starts.
func New(path string) *Plugin {
	return &Plugin{
		path:   path,
		logger: log.WithPlugin("auditlog"),
	}
}

// Name implements slacklet.Plugin.
func (p *Plugin) Name() string { return "auditlog" }

// Store exposes the audit store for inspection. Nil before startup.
func (p *Plugin) Store() *Store { return p.store }

// Setup implements slacklet.Plugin.
func (p *Plugin) Setup(app *slacklet.App) error {
	if err := app.OnHook(slacklet.HookStartup, p.onStartup); err != nil {
		return err
	}
	if err := app.OnHook(slacklet.HookShutdown, p.onShutdown); err != nil {
		return err
	}
	for _, hook := range []slacklet.Hook{
		slacklet.HookPostHandle,
		slacklet.HookUnhandled,
		slacklet.HookError,
	} {
		if err := app.OnHook(hook, p.record); err != nil {
			return err
		}
	}
	return nil
}

func (p *Plugin) onStartup(ctx context.Context, _ *slacklet.HookEvent) error {
	store, err := OpenStore(ctx, p.path)
	if err != nil {
		return err
	}
	p.store = store
	p.logger.Info("audit store opened", "path", p.path)
	return nil
}

func (p *Plugin) onShutdown(_ context.Context, _ *slacklet.HookEvent) error {
	if p.store == nil {
		return nil
	}
	return p.store.Close()
}

func (p *Plugin) record(ctx context.Context, ev *slacklet.HookEvent) error {
	if p.store == nil {
		return nil
	}

	entry := Entry{
		ID:        uuid.NewString(),
		Hook:      string(ev.Hook),
		Category:  string(ev.Category),
		Key:       ev.Key,
		CreatedAt: time.Now().UTC(),
	}
	if ev.Payload != nil {
		if ev.Payload.Event != nil {
			entry.UserID = ev.Payload.Event.User
			entry.ChannelID = ev.Payload.Event.Channel
		} else {
			entry.UserID = ev.Payload.UserID
			entry.ChannelID = ev.Payload.ChannelID
		}
	}
	if ev.Err != nil {
		entry.Error = ev.Err.Error()
	}

	if err := p.store.Insert(ctx, entry); err != nil {
		// Audit failures must not abort the dispatch pipeline.
		p.logger.Error("audit insert failed", "error", err)
	}
	return nil
}
