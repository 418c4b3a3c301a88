package entity

// CombiningAccent flags a unicode character reported for a dead key.
const (
	CombiningAccent     uint32 = 0x80000000
	CombiningAccentMask uint32 = 0x7fffffff
)

// AccentMarks maps the spacing accent a host reports for a dead key to
// the combining mark used to compose it with the next character.
var AccentMarks = map[rune]rune{
	'\u0060': '\u0300', // grave
	'\u02cb': '\u0300', // grave, legacy
	'\u00b4': '\u0301', // acute
	'\u0027': '\u0301', // acute via apostrophe
	'\u005e': '\u0302', // circumflex
	'\u02c6': '\u0302', // circumflex, legacy
	'\u007e': '\u0303', // tilde
	'\u02dc': '\u0303', // tilde, legacy
	'\u00af': '\u0304', // macron
	'\u02d8': '\u0306', // breve
	'\u02d9': '\u0307', // dot above
	'\u00a8': '\u0308', // diaeresis
	'\u0022': '\u0308', // diaeresis via quote
	'\u02da': '\u030a', // ring above
	'\u02dd': '\u030b', // double acute
	'\u02c7': '\u030c', // caron
	'\u00b8': '\u0327', // cedilla
	'\u02db': '\u0328', // ogonek
}

// IsDeadKey reports whether a host unicode character is a dead key accent.
func IsDeadKey(codePoint uint32) bool {
	return codePoint&CombiningAccent != 0
}

// AccentOf strips the dead key flag from codePoint.
func AccentOf(codePoint uint32) rune {
	return rune(codePoint & CombiningAccentMask)
}

// CombiningMark returns the combining mark for accent. Accents that are
// already combining marks are returned as is.
func CombiningMark(accent rune) (rune, bool) {
	if accent >= '\u0300' && accent <= '\u036f' {
		return accent, true
	}
	mark, ok := AccentMarks[accent]
	return mark, ok
}
