package keymap

// Android meta-state bits (android.view.KeyEvent.META_*).
const (
	MetaShiftOn      uint32 = 0x1
	MetaAltOn        uint32 = 0x2
	MetaSymOn        uint32 = 0x4
	MetaFunctionOn   uint32 = 0x8
	MetaAltLeftOn    uint32 = 0x10
	MetaAltRightOn   uint32 = 0x20
	MetaShiftLeftOn  uint32 = 0x40
	MetaShiftRightOn uint32 = 0x80
	MetaCtrlOn       uint32 = 0x1000
	MetaCtrlLeftOn   uint32 = 0x2000
	MetaCtrlRightOn  uint32 = 0x4000
	MetaMetaOn       uint32 = 0x10000
	MetaMetaLeftOn   uint32 = 0x20000
	MetaMetaRightOn  uint32 = 0x40000
	MetaCapsLockOn   uint32 = 0x100000
	MetaNumLockOn    uint32 = 0x200000
	MetaScrollLockOn uint32 = 0x400000
)

// Canonical ids of the modifier keys.
const (
	PhysicalControlLeft  PhysicalKey = 0x000700e0
	PhysicalShiftLeft    PhysicalKey = 0x000700e1
	PhysicalAltLeft      PhysicalKey = 0x000700e2
	PhysicalMetaLeft     PhysicalKey = 0x000700e3
	PhysicalControlRight PhysicalKey = 0x000700e4
	PhysicalShiftRight   PhysicalKey = 0x000700e5
	PhysicalAltRight     PhysicalKey = 0x000700e6
	PhysicalMetaRight    PhysicalKey = 0x000700e7
	PhysicalCapsLock     PhysicalKey = 0x00070039

	LogicalControlLeft  LogicalKey = 0x00200000100
	LogicalControlRight LogicalKey = 0x00200000101
	LogicalShiftLeft    LogicalKey = 0x00200000102
	LogicalShiftRight   LogicalKey = 0x00200000103
	LogicalAltLeft      LogicalKey = 0x00200000104
	LogicalAltRight     LogicalKey = 0x00200000105
	LogicalMetaLeft     LogicalKey = 0x00200000106
	LogicalMetaRight    LogicalKey = 0x00200000107
	LogicalCapsLock     LogicalKey = 0x01000000104
)

// PressingGroup is a modifier family where any of several physical keys
// sets the same meta-state bit.
type PressingGroup struct {
	Name string
	Mask uint32
	Keys []KeyPair
}

// Pressed reports whether the group's bit is set in metaState.
func (g PressingGroup) Pressed(metaState uint32) bool {
	return metaState&g.Mask != 0
}

func (g PressingGroup) clone() PressingGroup {
	keys := make([]KeyPair, len(g.Keys))
	copy(keys, g.Keys)
	g.Keys = keys
	return g
}

// TogglingGoal describes a lock modifier whose state survives key release.
// Whether the lock is on is runtime state and is not stored here.
type TogglingGoal struct {
	Name     string
	Mask     uint32
	Physical PhysicalKey
	Logical  LogicalKey
}

// Enabled reports whether the goal's bit is set in metaState.
func (g TogglingGoal) Enabled(metaState uint32) bool {
	return metaState&g.Mask != 0
}

func defaultPressingGroups() []PressingGroup {
	return []PressingGroup{
		{
			Name: "Control",
			Mask: MetaCtrlOn,
			Keys: []KeyPair{
				{PhysicalControlLeft, LogicalControlLeft},
				{PhysicalControlRight, LogicalControlRight},
			},
		},
		{
			Name: "Shift",
			Mask: MetaShiftOn,
			Keys: []KeyPair{
				{PhysicalShiftLeft, LogicalShiftLeft},
				{PhysicalShiftRight, LogicalShiftRight},
			},
		},
		{
			Name: "Alt",
			Mask: MetaAltOn,
			Keys: []KeyPair{
				{PhysicalAltLeft, LogicalAltLeft},
				{PhysicalAltRight, LogicalAltRight},
			},
		},
		{
			Name: "Meta",
			Mask: MetaMetaOn,
			Keys: []KeyPair{
				{PhysicalMetaLeft, LogicalMetaLeft},
				{PhysicalMetaRight, LogicalMetaRight},
			},
		},
	}
}

// NumLock and ScrollLock bits are not reliable across Android devices, so
// CapsLock is the only default toggling goal.
func defaultTogglingGoals() []TogglingGoal {
	return []TogglingGoal{
		{
			Name:     "CapsLock",
			Mask:     MetaCapsLockOn,
			Physical: PhysicalCapsLock,
			Logical:  LogicalCapsLock,
		},
	}
}
