package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/droidkeys/internal/application/port/mocks"
	"github.com/bnema/droidkeys/internal/domain/keymap"
)

func TestNewResponders(t *testing.T) {
	m := mocks.NewMockBinaryMessenger(t)

	responders, err := NewResponders([]string{ResponderEmbedder, ResponderChannel}, m, keymap.Default())
	require.NoError(t, err)
	require.Len(t, responders, 2)
	assert.IsType(t, &EmbedderResponder{}, responders[0])
	assert.IsType(t, &ChannelResponder{}, responders[1])

	_, err = NewResponders([]string{"keystroke"}, m, keymap.Default())
	assert.ErrorIs(t, err, ErrUnknownResponder)
}
