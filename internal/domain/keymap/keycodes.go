package keymap

// Android key codes (android.view.KeyEvent.KEYCODE_*) referenced by the
// tables. Letters and digits are contiguous ranges.
const (
	KeycodeUnknown      uint32 = 0
	Keycode0            uint32 = 7
	Keycode9            uint32 = 16
	KeycodeDpadUp       uint32 = 19
	KeycodeDpadDown     uint32 = 20
	KeycodeDpadLeft     uint32 = 21
	KeycodeDpadRight    uint32 = 22
	KeycodeA            uint32 = 29
	KeycodeZ            uint32 = 54
	KeycodeComma        uint32 = 55
	KeycodePeriod       uint32 = 56
	KeycodeAltLeft      uint32 = 57
	KeycodeAltRight     uint32 = 58
	KeycodeShiftLeft    uint32 = 59
	KeycodeShiftRight   uint32 = 60
	KeycodeTab          uint32 = 61
	KeycodeSpace        uint32 = 62
	KeycodeEnter        uint32 = 66
	KeycodeDel          uint32 = 67
	KeycodeGrave        uint32 = 68
	KeycodeMinus        uint32 = 69
	KeycodeEquals       uint32 = 70
	KeycodeLeftBracket  uint32 = 71
	KeycodeRightBracket uint32 = 72
	KeycodeBackslash    uint32 = 73
	KeycodeSemicolon    uint32 = 74
	KeycodeApostrophe   uint32 = 75
	KeycodeSlash        uint32 = 76
	KeycodePageUp       uint32 = 92
	KeycodePageDown     uint32 = 93
	KeycodeEscape       uint32 = 111
	KeycodeForwardDel   uint32 = 112
	KeycodeCtrlLeft     uint32 = 113
	KeycodeCtrlRight    uint32 = 114
	KeycodeCapsLock     uint32 = 115
	KeycodeScrollLock   uint32 = 116
	KeycodeMetaLeft     uint32 = 117
	KeycodeMetaRight    uint32 = 118
	KeycodeFunction     uint32 = 119
	KeycodeSysRq        uint32 = 120
	KeycodeBreak        uint32 = 121
	KeycodeMoveHome     uint32 = 122
	KeycodeMoveEnd      uint32 = 123
	KeycodeInsert       uint32 = 124
	KeycodeF1           uint32 = 131
	KeycodeF12          uint32 = 142
	KeycodeNumLock      uint32 = 143
)

// Linux evdev scan codes of the modifier keys.
const (
	ScanCodeControlLeft  uint32 = 29
	ScanCodeShiftLeft    uint32 = 42
	ScanCodeAltLeft      uint32 = 56
	ScanCodeCapsLock     uint32 = 58
	ScanCodeShiftRight   uint32 = 54
	ScanCodeControlRight uint32 = 97
	ScanCodeAltRight     uint32 = 100
	ScanCodeMetaLeft     uint32 = 125
	ScanCodeMetaRight    uint32 = 126
)
