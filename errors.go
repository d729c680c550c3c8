package slacklet

import "errors"

var (
	// ErrHandlerNotFound is returned when no callback is registered for a
	// dispatch key.
	ErrHandlerNotFound = errors.New("handler not found")

	// ErrPluginRegistered is returned when a plugin with the same name has
	// already been added to the app.
	ErrPluginRegistered = errors.New("plugin already registered")

	// ErrAppBooted is returned when plugin registration is attempted after
	// the app has started.
	ErrAppBooted = errors.New("app already booted")

	// ErrNotSetup is returned when hook subscription is attempted outside of
	// a plugin's Setup call.
	ErrNotSetup = errors.New("hook registration only allowed during plugin setup")
)
