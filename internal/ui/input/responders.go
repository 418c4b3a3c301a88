package input

import (
	"fmt"

	"github.com/bnema/droidkeys/internal/application/port"
	"github.com/bnema/droidkeys/internal/domain/keymap"
)

// Responder names accepted in configuration.
const (
	ResponderEmbedder = "embedder"
	ResponderChannel  = "channel"
)

// NewResponders builds responders by name, in order.
func NewResponders(names []string, messenger port.BinaryMessenger, keys keymap.Map) ([]port.Responder, error) {
	responders := make([]port.Responder, 0, len(names))
	for _, name := range names {
		switch name {
		case ResponderEmbedder:
			responders = append(responders, NewEmbedderResponder(messenger, keys))
		case ResponderChannel:
			responders = append(responders, NewChannelResponder(messenger))
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownResponder, name)
		}
	}
	return responders, nil
}
