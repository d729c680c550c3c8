package slacklet

import (
	"context"
	"fmt"
)

// Category groups callbacks by the kind of Slack payload they handle.
type Category string

const (
	CategoryEvents        Category = "events"
	CategoryCommand       Category = "command"
	CategoryInteractivity Category = "interactivity"
)

// HandlerFunc is a registered callback. The dispatcher fills Args with the
// fields relevant to the payload's category; fields belonging to other
// categories are left at their zero value.
type HandlerFunc func(ctx context.Context, args *Args) error

// Registry maps "{category}:{name}" keys to handlers. Keys are unique;
// registering the same key twice silently replaces the prior entry.
//
// A Registry is safe for concurrent reads once the app has booted; all
// mutation happens during single-threaded setup.
type Registry struct {
	handlers map[string]HandlerFunc
	keys     []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]HandlerFunc)}
}

func registryKey(category Category, name string) string {
	return string(category) + ":" + name
}

// Register adds a handler under the given category and name, replacing any
// prior handler for the same key. Handler shape is not validated here;
// mismatches surface only at dispatch.
func (r *Registry) Register(category Category, name string, h HandlerFunc) {
	key := registryKey(category, name)
	if _, exists := r.handlers[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.handlers[key] = h
}

// Get returns the handler for the given category and name, or nil.
func (r *Registry) Get(category Category, name string) HandlerFunc {
	return r.handlers[registryKey(category, name)]
}

// Lookup is like Get but returns ErrHandlerNotFound for missing keys.
func (r *Registry) Lookup(category Category, name string) (HandlerFunc, error) {
	if h := r.Get(category, name); h != nil {
		return h, nil
	}
	return nil, fmt.Errorf("%s: %w", registryKey(category, name), ErrHandlerNotFound)
}

// Merge unions entries from other into r. On key collision the entry from
// other wins.
func (r *Registry) Merge(other *Registry) {
	if other == nil {
		return
	}
	for _, key := range other.keys {
		if _, exists := r.handlers[key]; !exists {
			r.keys = append(r.keys, key)
		}
		r.handlers[key] = other.handlers[key]
	}
}

// Len returns the number of registered handlers.
func (r *Registry) Len() int {
	return len(r.handlers)
}

// Keys returns all registered keys in insertion order.
func (r *Registry) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}
