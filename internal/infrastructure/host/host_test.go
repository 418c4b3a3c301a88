package host

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/droidkeys/internal/domain/entity"
)

func TestHost_DeliverTakenByDispatcher(t *testing.T) {
	h := New()
	h.Bind(func(context.Context, entity.RawKeyEvent) bool { return true })

	h.Deliver(context.Background(), entity.RawKeyEvent{ID: "a"})

	assert.Empty(t, h.DefaultHandled())
}

func TestHost_RedispatchReachesDefaultHandling(t *testing.T) {
	h := New()
	var seen []entity.EventID
	h.Bind(func(_ context.Context, ev entity.RawKeyEvent) bool {
		seen = append(seen, ev.ID)
		return false
	})

	h.Redispatch(context.Background(), entity.RawKeyEvent{ID: "b"})

	assert.Equal(t, []entity.EventID{"b"}, seen)
	require.Len(t, h.DefaultHandled(), 1)
	assert.Equal(t, entity.EventID("b"), h.DefaultHandled()[0].ID)
	assert.Equal(t, 1, h.Redispatches())
}

func TestHost_UnboundGoesToDefault(t *testing.T) {
	h := New()

	h.Deliver(context.Background(), entity.RawKeyEvent{ID: "c"})

	assert.Len(t, h.DefaultHandled(), 1)
}
