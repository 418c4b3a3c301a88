package messenger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/droidkeys/internal/application/port"
	"github.com/bnema/droidkeys/internal/ui/mainloop"
)

func echoHandler(_ context.Context, message []byte, reply port.BinaryReply) {
	reply(append([]byte("re:"), message...))
}

func TestParseReplyMode(t *testing.T) {
	mode, err := ParseReplyMode("deferred")
	require.NoError(t, err)
	assert.Equal(t, ReplyDeferred, mode)

	_, err = ParseReplyMode("later")
	assert.ErrorIs(t, err, ErrUnknownReplyMode)
}

func TestNew_DeferredNeedsLoop(t *testing.T) {
	_, err := New(ReplyDeferred, nil)
	assert.ErrorIs(t, err, ErrLoopRequired)
}

func TestSend_SyncRepliesBeforeReturning(t *testing.T) {
	m, err := New(ReplySync, nil)
	require.NoError(t, err)
	m.SetMessageHandler("echo", echoHandler)

	var got []byte
	m.Send(context.Background(), "echo", []byte("hi"), func(r []byte) { got = r })

	assert.Equal(t, []byte("re:hi"), got)
}

func TestSend_DeferredRepliesOnLoop(t *testing.T) {
	loop := mainloop.New()
	m, err := New(ReplyDeferred, loop)
	require.NoError(t, err)
	m.SetMessageHandler("echo", echoHandler)

	var got []byte
	m.Send(context.Background(), "echo", []byte("hi"), func(r []byte) { got = r })

	assert.Nil(t, got, "reply must wait for the loop")
	assert.Equal(t, 1, loop.RunPending())
	assert.Equal(t, []byte("re:hi"), got)
}

func TestSend_NoHandlerRepliesNil(t *testing.T) {
	m, err := New(ReplySync, nil)
	require.NoError(t, err)

	called := false
	got := []byte("sentinel")
	m.Send(context.Background(), "nowhere", []byte{1}, func(r []byte) {
		called = true
		got = r
	})

	assert.True(t, called)
	assert.Nil(t, got)
}

func TestSend_SecondReplyIsDropped(t *testing.T) {
	m, err := New(ReplySync, nil)
	require.NoError(t, err)
	m.SetMessageHandler("twice", func(_ context.Context, _ []byte, reply port.BinaryReply) {
		reply([]byte{1})
		reply([]byte{0})
	})

	var replies [][]byte
	m.Send(context.Background(), "twice", nil, func(r []byte) { replies = append(replies, r) })

	require.Len(t, replies, 1)
	assert.Equal(t, []byte{1}, replies[0])
}

func TestSetMessageHandler_NilRemoves(t *testing.T) {
	m, err := New(ReplySync, nil)
	require.NoError(t, err)
	m.SetMessageHandler("echo", echoHandler)
	m.SetMessageHandler("echo", nil)

	var got []byte
	m.Send(context.Background(), "echo", []byte("hi"), func(r []byte) { got = r })

	assert.Nil(t, got)
}
