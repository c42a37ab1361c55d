package lexer

import "github.com/walres/wrparsecxx/dialect"

// identRange is a closed [lo,hi] interval of valid identifier code points,
// ported verbatim from the reference lexer's Annex E character-range table.
type identRange struct{ lo, hi rune }

var identRanges = []identRange{
	{0x24, 0x24}, {0x30, 0x39}, {0x41, 0x5a}, {0x5f, 0x5f},
	{0x61, 0x7a}, {0xa8, 0xa8}, {0xaa, 0xaa}, {0xad, 0xad},
	{0xaf, 0xaf}, {0xb2, 0xb5}, {0xb7, 0xba}, {0xbc, 0xbe},
	{0xc0, 0xd6}, {0xd8, 0xf6}, {0xf8, 0xff},

	{0x0100, 0x167f}, {0x1681, 0x180d}, {0x180f, 0x1fff},
	{0x200b, 0x200d}, {0x202a, 0x202e}, {0x203f, 0x2040},
	{0x2054, 0x2054}, {0x2060, 0x206f}, {0x2070, 0x218f},
	{0x2460, 0x24ff}, {0x2776, 0x2793}, {0x2c00, 0x2dff},
	{0x2e80, 0x2fff}, {0x3004, 0x3007}, {0x3021, 0x302f},
	{0x3031, 0x303f}, {0x3040, 0xd7ff}, {0xf900, 0xfd3d},
	{0xfd40, 0xfdcf}, {0xfdf0, 0xfe44}, {0xfe47, 0xfffd},
}

// disallowedInitialRanges are the ASCII digits and the combining-mark
// ranges: they may continue an identifier but never start one.
var disallowedInitialRanges = []identRange{
	{0x30, 0x39}, {0x300, 0x36f}, {0x1dc0, 0x1dff}, {0x20d0, 0x20ff}, {0xfe20, 0xfe2f},
}

func inRanges (c rune, ranges []identRange) bool {
	for _, r := range ranges {
		if c >= r.lo && c <= r.hi {
			return true
		}
	}
	return false
}

// IsValidIdentChar reports whether c may appear anywhere in an identifier
// under the given dialect (honours IDENTIFIER_DOLLARS for '$').
func (l *Lexer) IsValidIdentChar (c rune) bool {
	if c == '$' {
		return l.options.Have(dialect.IDENTIFIER_DOLLARS)
	}
	if c <= 0xffff {
		return inRanges(c, identRanges)
	}
	return c >= 0x10000 && c <= 0xefffd && (c&0xffff) <= 0xfffd
}

// IsValidInitialIdentChar reports whether c may start an identifier: valid
// everywhere, minus the ASCII digits and combining-mark ranges that may
// only continue one.
func (l *Lexer) IsValidInitialIdentChar (c rune) bool {
	return l.IsValidIdentChar(c) && !inRanges(c, disallowedInitialRanges)
}

func isUSpace (c rune) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

func isUDigit (c rune) bool { return c >= '0' && c <= '9' }

func uDigitVal (c rune) int {
	if isUDigit(c) {
		return int(c - '0')
	}
	return -1
}

func isUXDigit (c rune) bool {
	return isUDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func uxDigitVal (c rune) int {
	switch {
	case isUDigit(c):
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}

func isUAlpha (c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func toULower (c rune) rune {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
