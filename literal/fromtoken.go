package literal

import (
	"strings"

	"github.com/walres/wrparsecxx/token"
)

// FromToken classifies a literal token by kind and parses its spelling
// into a Literal, per spec §4.H. ok is false for a non-literal token.
func FromToken (t *token.Token) (*Literal, bool) {
	switch t.Kind() {
	case token.DEC_INT_LITERAL:
		lit, err := ParseNumeric(t.Spelling(), 10, false)
		return okOrNil(lit, err)
	case token.OCT_INT_LITERAL:
		lit, err := ParseNumeric(t.Spelling(), 8, false)
		return okOrNil(lit, err)
	case token.HEX_INT_LITERAL:
		lit, err := ParseNumeric(t.Spelling(), 16, false)
		return okOrNil(lit, err)
	case token.BIN_INT_LITERAL:
		lit, err := ParseNumeric(t.Spelling(), 2, false)
		return okOrNil(lit, err)
	case token.FLOAT_LITERAL:
		lit, err := ParseNumeric(t.Spelling(), 10, true)
		return okOrNil(lit, err)
	case token.CHAR_LITERAL:
		return parseCharToken(t, Char)
	case token.WCHAR_LITERAL:
		return parseCharToken(t, WCharT)
	case token.U8_CHAR_LITERAL:
		return parseCharToken(t, Char)
	case token.U16_CHAR_LITERAL:
		return parseCharToken(t, Char16T)
	case token.U32_CHAR_LITERAL:
		return parseCharToken(t, Char32T)
	default:
		return nil, false
	}
}

func okOrNil (lit *Literal, err error) (*Literal, bool) {
	if err != nil {
		return nil, false
	}
	return lit, true
}

// parseCharToken decodes a 'c'-style spelling's escape sequences (per
// spec §4.D.5/§4.H: \a \b \f \n \r \t \v \\ \' \" \?, octal up to 3
// digits, \x hex, \u/\U UCNs already folded by the lexer into literal
// code points in the spelling) and returns the single code point value.
func parseCharToken (t *token.Token, core Core) (*Literal, bool) {
	s := stripOuterQuote(t.Spelling())
	if s == "" {
		return nil, false
	}

	r := []rune(s)
	if r[0] != '\\' {
		return ParseChar(r[0], core), true
	}

	if len(r) < 2 {
		return nil, false
	}
	switch r[1] {
	case 'a':
		return ParseChar(7, core), true
	case 'b':
		return ParseChar(8, core), true
	case 'f':
		return ParseChar(12, core), true
	case 'n':
		return ParseChar(10, core), true
	case 'r':
		return ParseChar(13, core), true
	case 't':
		return ParseChar(9, core), true
	case 'v':
		return ParseChar(11, core), true
	case '\\', '\'', '"', '?':
		return ParseChar(r[1], core), true
	case 'x':
		var v rune
		for _, c := range r[2:] {
			d := hexVal(c)
			if d < 0 {
				break
			}
			v = v<<4 | rune(d)
		}
		return ParseChar(v, core), true
	default:
		if r[1] >= '0' && r[1] <= '7' {
			var v rune
			for _, c := range r[1:] {
				if c < '0' || c > '7' {
					break
				}
				v = v<<3 + (c - '0')
			}
			return ParseChar(v, core), true
		}
		return ParseChar(r[1], core), true
	}
}

func stripOuterQuote (spelling string) string {
	s := spelling
	if i := strings.IndexByte(s, '\''); i >= 0 {
		s = s[i+1:]
	}
	if i := strings.LastIndexByte(s, '\''); i >= 0 {
		s = s[:i]
	}
	return s
}
