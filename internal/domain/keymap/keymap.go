package keymap

// PhysicalKey identifies a hardware key position, independent of layout.
type PhysicalKey uint64

// LogicalKey identifies the symbol or function a key produces.
type LogicalKey uint64

const (
	// ValueMask selects the plane-local part of a key id.
	ValueMask uint64 = 0x000ffffffff
	// AndroidPlane tags ids synthesized from raw Android codes that have no
	// canonical mapping. Canonical ids never use this plane.
	AndroidPlane uint64 = 0x01100000000
)

// KeyPair binds a physical key to the logical key it produces.
type KeyPair struct {
	Physical PhysicalKey
	Logical  LogicalKey
}

// Map is the key identity configuration handed to responders.
type Map struct {
	pressing []PressingGroup
	toggling []TogglingGoal
}

// Default returns the standard Android mapping: Control, Shift, Alt and
// Meta as pressing groups and CapsLock as the only toggling goal.
func Default() Map {
	return New(defaultPressingGroups(), defaultTogglingGoals())
}

// New builds a Map from explicit modifier descriptors. The slices are copied.
func New(pressing []PressingGroup, toggling []TogglingGoal) Map {
	m := Map{
		pressing: make([]PressingGroup, len(pressing)),
		toggling: make([]TogglingGoal, len(toggling)),
	}
	for i, g := range pressing {
		m.pressing[i] = g.clone()
	}
	copy(m.toggling, toggling)
	return m
}

// PressingGroups returns the pressing modifier groups in evaluation order.
func (m Map) PressingGroups() []PressingGroup {
	out := make([]PressingGroup, len(m.pressing))
	for i, g := range m.pressing {
		out[i] = g.clone()
	}
	return out
}

// TogglingGoals returns the toggling modifier descriptors in evaluation order.
func (m Map) TogglingGoals() []TogglingGoal {
	out := make([]TogglingGoal, len(m.toggling))
	copy(out, m.toggling)
	return out
}

// PhysicalKeyFor resolves the physical key of an event.
//
// A zero scan code comes from emulated input. Those events are keyed by
// their key code in the Android plane so different emulated keys stay
// distinguishable.
func (m Map) PhysicalKeyFor(scanCode, keyCode uint32) PhysicalKey {
	return PhysicalKeyFor(scanCode, keyCode)
}

// LogicalKeyFor resolves the logical key of an event.
func (m Map) LogicalKeyFor(keyCode uint32) LogicalKey {
	return LogicalKeyFor(keyCode)
}

// PhysicalKeyFor is the table lookup behind Map.PhysicalKeyFor.
func PhysicalKeyFor(scanCode, keyCode uint32) PhysicalKey {
	if scanCode == 0 {
		return PhysicalKey(ofPlane(uint64(keyCode), AndroidPlane))
	}
	if id, ok := scanCodeToPhysical[scanCode]; ok {
		return id
	}
	return PhysicalKey(ofPlane(uint64(scanCode), AndroidPlane))
}

// LogicalKeyFor is the table lookup behind Map.LogicalKeyFor.
func LogicalKeyFor(keyCode uint32) LogicalKey {
	if id, ok := keyCodeToLogical[keyCode]; ok {
		return id
	}
	return LogicalKey(ofPlane(uint64(keyCode), AndroidPlane))
}

// IsAndroidPlane reports whether id was synthesized from a raw code.
func IsAndroidPlane(id uint64) bool {
	return id&^ValueMask == AndroidPlane
}

func ofPlane(value, plane uint64) uint64 {
	return plane | (value & ValueMask)
}
