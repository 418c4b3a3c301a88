// Package keymap maps Android scan codes and key codes to the engine's
// canonical physical and logical key ids, and describes the modifier
// families whose state the host reports through the meta-state bitmask.
//
// The tables are data only. Runtime state (what is pressed, which lock
// modifiers are on) lives in package keystate.
package keymap
