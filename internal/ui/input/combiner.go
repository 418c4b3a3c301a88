package input

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/bnema/droidkeys/internal/domain/entity"
)

// CharacterCombiner applies dead key accents to the next character.
type CharacterCombiner struct {
	pending rune
}

// NewCharacterCombiner creates a combiner with no pending accent.
func NewCharacterCombiner() *CharacterCombiner {
	return &CharacterCombiner{}
}

// Apply feeds the host unicode character of a key event and returns the
// character to report, or 0 for none.
//
// A dead key reports its spacing accent and becomes the pending accent.
// When an accent is already pending the two are merged, and the pending
// accent is cleared if they do not compose. Any other character consumes
// the pending accent, turning into its precomposed form when one exists.
func (c *CharacterCombiner) Apply(codePoint uint32) rune {
	if entity.IsDeadKey(codePoint) {
		accent := entity.AccentOf(codePoint)
		if c.pending != 0 {
			c.pending = deadChar(c.pending, accent)
		} else {
			c.pending = accent
		}
		return accent
	}

	char := rune(codePoint)
	if c.pending != 0 {
		if combined := deadChar(c.pending, char); combined != 0 {
			char = combined
		}
		c.pending = 0
	}
	return char
}

// deadChar composes accent with base. It returns 0 when no single
// precomposed character exists. Space or the accent itself yields the
// spacing accent.
func deadChar(accent, base rune) rune {
	if base == ' ' || base == accent {
		return accent
	}
	mark, ok := entity.CombiningMark(accent)
	if !ok || base == 0 {
		return 0
	}
	composed := norm.NFC.String(string(base) + string(mark))
	if utf8.RuneCountInString(composed) != 1 {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(composed)
	return r
}
