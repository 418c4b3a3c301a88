package input

import "errors"

// ErrUnknownResponder is returned for a responder name that is not
// embedder or channel.
var ErrUnknownResponder = errors.New("unknown responder")
