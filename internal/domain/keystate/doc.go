// Package keystate tracks which keys the engine believes are pressed and
// which lock modifiers it believes are on, and reconciles that belief with
// the modifier bitmask the host attaches to every event.
//
// The host bitmask is ground truth. Events lost before the responder was
// attached, or swallowed during a focus change, leave the tracked state
// behind. Synchronizer computes the fewest synthesized events that bring
// the tracked state back in line, split into events that must be sent
// before the triggering event and events that must follow it.
//
// Everything here runs on the host UI thread and is not safe for
// concurrent use.
package keystate
