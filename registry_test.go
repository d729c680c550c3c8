package slacklet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func noopHandler(string) HandlerFunc {
	return func(ctx context.Context, args *Args) error { return nil }
}

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry()
	r.Register(CategoryCommand, "/hello", noopHandler("a"))

	assert.NotNil(t, r.Get(CategoryCommand, "/hello"))
	assert.Nil(t, r.Get(CategoryEvents, "/hello"), "same name under another category must not match")
	assert.Nil(t, r.Get(CategoryCommand, "/bye"))
	assert.Equal(t, 1, r.Len())
}

func TestRegistryLastWriteWins(t *testing.T) {
	r := NewRegistry()

	var got string
	first := func(ctx context.Context, args *Args) error { got = "first"; return nil }
	second := func(ctx context.Context, args *Args) error { got = "second"; return nil }

	r.Register(CategoryEvents, "message", first)
	r.Register(CategoryEvents, "message", second)

	assert.Equal(t, 1, r.Len())
	assert.NoError(t, r.Get(CategoryEvents, "message")(context.Background(), nil))
	assert.Equal(t, "second", got)
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()
	r.Register(CategoryCommand, "/hello", noopHandler(""))

	h, err := r.Lookup(CategoryCommand, "/hello")
	assert.NoError(t, err)
	assert.NotNil(t, h)

	_, err = r.Lookup(CategoryCommand, "/missing")
	assert.ErrorIs(t, err, ErrHandlerNotFound)
}

func TestRegistryMerge(t *testing.T) {
	var got string
	base := NewRegistry()
	base.Register(CategoryCommand, "/hello", func(ctx context.Context, args *Args) error { got = "base"; return nil })
	base.Register(CategoryEvents, "message", noopHandler(""))

	other := NewRegistry()
	other.Register(CategoryCommand, "/hello", func(ctx context.Context, args *Args) error { got = "other"; return nil })
	other.Register(CategoryInteractivity, "approve", noopHandler(""))

	base.Merge(other)

	assert.Equal(t, 3, base.Len())
	assert.NoError(t, base.Get(CategoryCommand, "/hello")(context.Background(), nil))
	assert.Equal(t, "other", got, "later registry wins on key collision")
	assert.NotNil(t, base.Get(CategoryInteractivity, "approve"))

	base.Merge(nil) // no-op
	assert.Equal(t, 3, base.Len())
}

func TestRegistryKeysInsertionOrder(t *testing.T) {
	r := NewRegistry()
	r.Register(CategoryEvents, "message", noopHandler(""))
	r.Register(CategoryCommand, "/hello", noopHandler(""))
	r.Register(CategoryEvents, "message", noopHandler("")) // replace, not re-append

	assert.Equal(t, []string{"events:message", "command:/hello"}, r.Keys())
}
