package slacklet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchContextSkip(t *testing.T) {
	dc := newDispatchContext()
	assert.NotEmpty(t, dc.ID)
	assert.False(t, dc.Skipped())
	assert.Empty(t, dc.Reason())

	dc.Skip("ignoring bot events")
	assert.True(t, dc.Skipped())
	assert.Equal(t, "ignoring bot events", dc.Reason())

	// A later skip without a reason keeps the first reason.
	dc.Skip("")
	assert.Equal(t, "ignoring bot events", dc.Reason())
}

func TestDispatchContextsAreIndependent(t *testing.T) {
	a := newDispatchContext()
	b := newDispatchContext()
	a.Skip("x")

	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, b.Skipped())
}
