// Package input reconciles host key events with the engine's view of the
// keyboard and dispatches them to responders.
package input

import "github.com/bnema/droidkeys/internal/domain/entity"

// Android InputDevice source codes reported on the legacy key event
// channel. The engine only inspects the class bits.
const (
	SourceCodeKeyboard uint32 = 0x00000101
	SourceCodeDpad     uint32 = 0x00000201
	SourceCodeGamepad  uint32 = 0x00000401
	SourceCodeHdmi     uint32 = 0x02000001
	SourceCodeJoystick uint32 = 0x01000010
	SourceCodeUnknown  uint32 = 0x00000000
)

var sourceCodes = map[entity.InputSource]uint32{
	entity.SourceKeyboard: SourceCodeKeyboard,
	entity.SourceDpad:     SourceCodeDpad,
	entity.SourceGamepad:  SourceCodeGamepad,
	entity.SourceJoystick: SourceCodeJoystick,
	entity.SourceHdmi:     SourceCodeHdmi,
}

// SourceCode returns the Android source code for s.
func SourceCode(s entity.InputSource) uint32 {
	if code, ok := sourceCodes[s]; ok {
		return code
	}
	return SourceCodeUnknown
}
