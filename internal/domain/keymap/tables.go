package keymap

import "strconv"

// keyEntry is one row of the identity table. A zero scan code or key code
// means the row only contributes to the other direction.
type keyEntry struct {
	name     string
	scanCode uint32
	keyCode  uint32
	physical PhysicalKey
	logical  LogicalKey
}

// Scan codes are Linux evdev codes as reported by Android. Physical ids are
// USB HID usages (page 0x07). Logical ids use the unicode plane for
// printable keys, plane 0x01 for named keys and plane 0x02 for modifiers.
var keyTable = []keyEntry{
	{"KeyA", 30, KeycodeA, 0x00070004, 0x00000000061},
	{"KeyB", 48, KeycodeA + 1, 0x00070005, 0x00000000062},
	{"KeyC", 46, KeycodeA + 2, 0x00070006, 0x00000000063},
	{"KeyD", 32, KeycodeA + 3, 0x00070007, 0x00000000064},
	{"KeyE", 18, KeycodeA + 4, 0x00070008, 0x00000000065},
	{"KeyF", 33, KeycodeA + 5, 0x00070009, 0x00000000066},
	{"KeyG", 34, KeycodeA + 6, 0x0007000a, 0x00000000067},
	{"KeyH", 35, KeycodeA + 7, 0x0007000b, 0x00000000068},
	{"KeyI", 23, KeycodeA + 8, 0x0007000c, 0x00000000069},
	{"KeyJ", 36, KeycodeA + 9, 0x0007000d, 0x0000000006a},
	{"KeyK", 37, KeycodeA + 10, 0x0007000e, 0x0000000006b},
	{"KeyL", 38, KeycodeA + 11, 0x0007000f, 0x0000000006c},
	{"KeyM", 50, KeycodeA + 12, 0x00070010, 0x0000000006d},
	{"KeyN", 49, KeycodeA + 13, 0x00070011, 0x0000000006e},
	{"KeyO", 24, KeycodeA + 14, 0x00070012, 0x0000000006f},
	{"KeyP", 25, KeycodeA + 15, 0x00070013, 0x00000000070},
	{"KeyQ", 16, KeycodeA + 16, 0x00070014, 0x00000000071},
	{"KeyR", 19, KeycodeA + 17, 0x00070015, 0x00000000072},
	{"KeyS", 31, KeycodeA + 18, 0x00070016, 0x00000000073},
	{"KeyT", 20, KeycodeA + 19, 0x00070017, 0x00000000074},
	{"KeyU", 22, KeycodeA + 20, 0x00070018, 0x00000000075},
	{"KeyV", 47, KeycodeA + 21, 0x00070019, 0x00000000076},
	{"KeyW", 17, KeycodeA + 22, 0x0007001a, 0x00000000077},
	{"KeyX", 45, KeycodeA + 23, 0x0007001b, 0x00000000078},
	{"KeyY", 21, KeycodeA + 24, 0x0007001c, 0x00000000079},
	{"KeyZ", 44, KeycodeZ, 0x0007001d, 0x0000000007a},

	{"Digit1", 2, Keycode0 + 1, 0x0007001e, 0x00000000031},
	{"Digit2", 3, Keycode0 + 2, 0x0007001f, 0x00000000032},
	{"Digit3", 4, Keycode0 + 3, 0x00070020, 0x00000000033},
	{"Digit4", 5, Keycode0 + 4, 0x00070021, 0x00000000034},
	{"Digit5", 6, Keycode0 + 5, 0x00070022, 0x00000000035},
	{"Digit6", 7, Keycode0 + 6, 0x00070023, 0x00000000036},
	{"Digit7", 8, Keycode0 + 7, 0x00070024, 0x00000000037},
	{"Digit8", 9, Keycode0 + 8, 0x00070025, 0x00000000038},
	{"Digit9", 10, Keycode0 + 9, 0x00070026, 0x00000000039},
	{"Digit0", 11, Keycode0, 0x00070027, 0x00000000030},

	{"Enter", 28, KeycodeEnter, 0x00070028, 0x0100000000d},
	{"Escape", 1, KeycodeEscape, 0x00070029, 0x0100000001b},
	{"Backspace", 14, KeycodeDel, 0x0007002a, 0x01000000008},
	{"Tab", 15, KeycodeTab, 0x0007002b, 0x01000000009},
	{"Space", 57, KeycodeSpace, 0x0007002c, 0x00000000020},
	{"Minus", 12, KeycodeMinus, 0x0007002d, 0x0000000002d},
	{"Equal", 13, KeycodeEquals, 0x0007002e, 0x0000000003d},
	{"BracketLeft", 26, KeycodeLeftBracket, 0x0007002f, 0x0000000005b},
	{"BracketRight", 27, KeycodeRightBracket, 0x00070030, 0x0000000005d},
	{"Backslash", 43, KeycodeBackslash, 0x00070031, 0x0000000005c},
	{"Semicolon", 39, KeycodeSemicolon, 0x00070033, 0x0000000003b},
	{"Quote", 40, KeycodeApostrophe, 0x00070034, 0x00000000027},
	{"Backquote", 41, KeycodeGrave, 0x00070035, 0x00000000060},
	{"Comma", 51, KeycodeComma, 0x00070036, 0x0000000002c},
	{"Period", 52, KeycodePeriod, 0x00070037, 0x0000000002e},
	{"Slash", 53, KeycodeSlash, 0x00070038, 0x0000000002f},
	{"CapsLock", 58, KeycodeCapsLock, 0x00070039, 0x01000000104},

	{"F1", 59, KeycodeF1, 0x0007003a, 0x01000000801},
	{"F2", 60, KeycodeF1 + 1, 0x0007003b, 0x01000000802},
	{"F3", 61, KeycodeF1 + 2, 0x0007003c, 0x01000000803},
	{"F4", 62, KeycodeF1 + 3, 0x0007003d, 0x01000000804},
	{"F5", 63, KeycodeF1 + 4, 0x0007003e, 0x01000000805},
	{"F6", 64, KeycodeF1 + 5, 0x0007003f, 0x01000000806},
	{"F7", 65, KeycodeF1 + 6, 0x00070040, 0x01000000807},
	{"F8", 66, KeycodeF1 + 7, 0x00070041, 0x01000000808},
	{"F9", 67, KeycodeF1 + 8, 0x00070042, 0x01000000809},
	{"F10", 68, KeycodeF1 + 9, 0x00070043, 0x0100000080a},
	{"F11", 87, KeycodeF1 + 10, 0x00070044, 0x0100000080b},
	{"F12", 88, KeycodeF12, 0x00070045, 0x0100000080c},

	{"PrintScreen", 99, KeycodeSysRq, 0x00070046, 0x01000000608},
	{"ScrollLock", 70, KeycodeScrollLock, 0x00070047, 0x0100000010c},
	{"Pause", 119, KeycodeBreak, 0x00070048, 0x01000000509},
	{"Insert", 110, KeycodeInsert, 0x00070049, 0x01000000407},
	{"Home", 102, KeycodeMoveHome, 0x0007004a, 0x01000000306},
	{"PageUp", 104, KeycodePageUp, 0x0007004b, 0x01000000308},
	{"Delete", 111, KeycodeForwardDel, 0x0007004c, 0x0100000007f},
	{"End", 107, KeycodeMoveEnd, 0x0007004d, 0x01000000305},
	{"PageDown", 109, KeycodePageDown, 0x0007004e, 0x01000000307},
	{"ArrowRight", 106, KeycodeDpadRight, 0x0007004f, 0x01000000303},
	{"ArrowLeft", 105, KeycodeDpadLeft, 0x00070050, 0x01000000302},
	{"ArrowDown", 108, KeycodeDpadDown, 0x00070051, 0x01000000301},
	{"ArrowUp", 103, KeycodeDpadUp, 0x00070052, 0x01000000304},
	{"NumLock", 69, KeycodeNumLock, 0x00070053, 0x0100000010a},

	{"ControlLeft", ScanCodeControlLeft, KeycodeCtrlLeft, PhysicalControlLeft, LogicalControlLeft},
	{"ShiftLeft", ScanCodeShiftLeft, KeycodeShiftLeft, PhysicalShiftLeft, LogicalShiftLeft},
	{"AltLeft", ScanCodeAltLeft, KeycodeAltLeft, PhysicalAltLeft, LogicalAltLeft},
	{"MetaLeft", ScanCodeMetaLeft, KeycodeMetaLeft, PhysicalMetaLeft, LogicalMetaLeft},
	{"ControlRight", ScanCodeControlRight, KeycodeCtrlRight, PhysicalControlRight, LogicalControlRight},
	{"ShiftRight", ScanCodeShiftRight, KeycodeShiftRight, PhysicalShiftRight, LogicalShiftRight},
	{"AltRight", ScanCodeAltRight, KeycodeAltRight, PhysicalAltRight, LogicalAltRight},
	{"MetaRight", ScanCodeMetaRight, KeycodeMetaRight, PhysicalMetaRight, LogicalMetaRight},
	{"Fn", 464, KeycodeFunction, 0x00000012, 0x01000000106},
}

var (
	scanCodeToPhysical = make(map[uint32]PhysicalKey, len(keyTable))
	keyCodeToLogical   = make(map[uint32]LogicalKey, len(keyTable))
	physicalNames      = make(map[PhysicalKey]string, len(keyTable))
	logicalNames       = make(map[LogicalKey]string, len(keyTable))
)

func init() {
	for _, e := range keyTable {
		if e.scanCode != 0 {
			scanCodeToPhysical[e.scanCode] = e.physical
		}
		if e.keyCode != 0 {
			keyCodeToLogical[e.keyCode] = e.logical
		}
		physicalNames[e.physical] = e.name
		logicalNames[e.logical] = e.name
	}
}

// PhysicalName returns a readable name for a physical key id. Ids in the
// Android plane are rendered with their raw scan or key code.
func PhysicalName(id PhysicalKey) string {
	if name, ok := physicalNames[id]; ok {
		return name
	}
	return rawName("Physical", uint64(id))
}

// LogicalName returns a readable name for a logical key id.
func LogicalName(id LogicalKey) string {
	if name, ok := logicalNames[id]; ok {
		return name
	}
	return rawName("Logical", uint64(id))
}

func rawName(kind string, id uint64) string {
	if id == 0 {
		return "None"
	}
	if IsAndroidPlane(id) {
		return "Android" + kind + "#" + strconv.FormatUint(id&ValueMask, 10)
	}
	return kind + "#0x" + strconv.FormatUint(id, 16)
}
