package styles

import (
	"fmt"
	"strings"

	"github.com/bnema/droidkeys/internal/domain/keymap"
)

// KeyLookup is the identity of one Android key.
type KeyLookup struct {
	ScanCode uint32
	KeyCode  uint32
	Physical keymap.PhysicalKey
	Logical  keymap.LogicalKey
}

// LookupRenderer renders key identity lookups.
type LookupRenderer struct {
	theme *Theme
}

// NewLookupRenderer creates a new lookup renderer with the given theme.
func NewLookupRenderer(theme *Theme) *LookupRenderer {
	return &LookupRenderer{theme: theme}
}

// Render renders the physical and logical ids of a key.
func (r *LookupRenderer) Render(k KeyLookup) string {
	row := func(label, value string) string {
		return fmt.Sprintf("%s %s", r.theme.Subtle.Render(fmt.Sprintf("%-9s", label)), value)
	}

	physicalPlane := r.theme.BadgeMuted.Render("mapped")
	if keymap.IsAndroidPlane(uint64(k.Physical)) {
		physicalPlane = r.theme.Badge.Render("android plane")
	}
	logicalPlane := r.theme.BadgeMuted.Render("mapped")
	if keymap.IsAndroidPlane(uint64(k.Logical)) {
		logicalPlane = r.theme.Badge.Render("android plane")
	}

	lines := []string{
		row("Scan", r.theme.Normal.Render(fmt.Sprint(k.ScanCode))),
		row("Key", r.theme.Normal.Render(fmt.Sprint(k.KeyCode))),
		row("Physical", fmt.Sprintf("%s %s %s",
			r.theme.Highlight.Render(fmt.Sprintf("0x%011x", uint64(k.Physical))),
			r.theme.Normal.Render(keymap.PhysicalName(k.Physical)),
			physicalPlane,
		)),
		row("Logical", fmt.Sprintf("%s %s %s",
			r.theme.Highlight.Render(fmt.Sprintf("0x%011x", uint64(k.Logical))),
			r.theme.Normal.Render(keymap.LogicalName(k.Logical)),
			logicalPlane,
		)),
	}

	return r.theme.Box.Render(strings.Join(lines, "\n"))
}
