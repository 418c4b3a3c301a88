package keystate

import "errors"

// ErrPressingStateViolation is the panic value (wrapped) raised when a key
// is pressed twice or released while not pressed. It signals a logic error
// in the caller, never a recoverable condition.
var ErrPressingStateViolation = errors.New("pressing state violation")
