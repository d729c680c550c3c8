package slacklet

import (
	"time"

	"github.com/google/uuid"
)

// DispatchContext is the per-dispatch ephemeral state shared between
// pre-handle filters, hooks, and the handler. It is created fresh for every
// dispatch and discarded afterwards.
//
// Its single piece of mutable state is the skip flag: any participant may
// request that the remainder of the pipeline be skipped. A skip requested
// before the handler runs suppresses the handler; a skip requested by the
// handler suppresses the post-handle hook.
type DispatchContext struct {
	// ID uniquely identifies this dispatch in logs and audit records.
	ID string

	// StartedAt is when the dispatch began.
	StartedAt time.Time

	skipped bool
	reason  string
}

func newDispatchContext() *DispatchContext {
	return &DispatchContext{
		ID:        uuid.NewString(),
		StartedAt: time.Now().UTC(),
	}
}

// Skip requests that the rest of the dispatch pipeline be skipped.
// The reason is optional and only used for logging.
func (d *DispatchContext) Skip(reason string) {
	d.skipped = true
	if reason != "" {
		d.reason = reason
	}
}

// Skipped reports whether a skip has been requested.
func (d *DispatchContext) Skipped() bool {
	return d.skipped
}

// Reason returns the skip reason, if one was given.
func (d *DispatchContext) Reason() string {
	return d.reason
}
