// Package slacklet is a thin application framework for Slack apps. It lets
// developers register handlers for Slack events, slash commands, and
// interactive actions, dispatches incoming webhook payloads to those
// handlers as background work after an immediate acknowledgement, and
// offers a plugin mechanism with lifecycle hooks.
//
// Typical usage:
//
//	cfg := slacklet.DefaultConfig()
//	app := slacklet.New(cfg, slackclient.New(cfg.BotToken))
//
//	app.OnCommand("/hello", func(ctx context.Context, args *slacklet.Args) error {
//		args.Client.SendMessage(ctx, args.ChannelID, "hello "+args.Text)
//		return nil
//	})
//
//	app.Start(ctx)
package slacklet

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mattjoyce/slacklet/internal/log"
	"github.com/mattjoyce/slacklet/slackclient"
)

// App is the central application object. All registration (callbacks,
// plugins, hooks) happens before Start; once the app is serving traffic the
// registries are read-only.
type App struct {
	cfg      Config
	client   slackclient.API
	registry *Registry
	hooks    *hookDispatcher

	plugins     []Plugin
	pluginIndex map[string]Plugin
	setupHooks  *pluginHooks

	server *http.Server
	logger *slog.Logger
	booted bool
}

// New creates an App. The client may be nil, in which case handlers receive
// a nil Args.Client.
func New(cfg Config, client slackclient.API) *App {
	return &App{
		cfg:         cfg,
		client:      client,
		registry:    NewRegistry(),
		hooks:       newHookDispatcher(log.WithComponent("hooks")),
		pluginIndex: make(map[string]Plugin),
		logger:      log.WithComponent("app"),
	}
}

// Config returns the app's configuration.
func (a *App) Config() Config {
	return a.cfg
}

// Client returns the Slack client handlers are invoked with.
func (a *App) Client() slackclient.API {
	return a.client
}

// Registry returns the callback registry, e.g. to Merge in callbacks
// registered elsewhere.
func (a *App) Registry() *Registry {
	return a.registry
}

// OnEvent registers a handler for a Slack event type (e.g. "app_mention").
func (a *App) OnEvent(eventType string, h HandlerFunc) {
	a.registry.Register(CategoryEvents, eventType, h)
}

// OnCommand registers a handler for a slash command (e.g. "/hello").
func (a *App) OnCommand(command string, h HandlerFunc) {
	a.registry.Register(CategoryCommand, command, h)
}

// OnAction registers a handler for an interactive-component action id.
func (a *App) OnAction(actionID string, h HandlerFunc) {
	a.registry.Register(CategoryInteractivity, actionID, h)
}

// Booted reports whether Start has been called.
func (a *App) Booted() bool {
	return a.booted
}

// boot marks the app started and emits the startup hook. Plugin
// registration is rejected from here on.
func (a *App) boot(ctx context.Context) error {
	a.booted = true
	if err := a.hooks.Emit(ctx, HookStartup, &HookEvent{App: a}); err != nil {
		return fmt.Errorf("startup hooks: %w", err)
	}
	return nil
}

// Start boots the app and serves HTTP until ctx is cancelled (blocking).
// The shutdown hook is emitted after the server has stopped accepting
// requests; in-flight background handlers are not waited for.
func (a *App) Start(ctx context.Context) error {
	if err := a.boot(ctx); err != nil {
		return err
	}

	a.server = &http.Server{
		Addr:         a.cfg.Listen,
		Handler:      a.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	a.logger.Info("app starting",
		"listen", a.cfg.Listen,
		"path_prefix", a.cfg.PathPrefix,
		"callbacks", a.registry.Len(),
		"plugins", len(a.plugins),
	)
	if a.cfg.Fingerprint != "" {
		a.logger.Info("config fingerprint", "blake3", a.cfg.Fingerprint)
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("app shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		if err := a.hooks.Emit(shutdownCtx, HookShutdown, &HookEvent{App: a}); err != nil {
			a.logger.Error("shutdown hooks failed", "error", err)
		}
		return ctx.Err()
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	}
}
