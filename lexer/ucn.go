package lexer

import (
	"github.com/walres/wrparsecxx/csource"
	"github.com/walres/wrparsecxx/token"
)

// ucn reads a universal-character-name body after the leading backslash
// has been consumed and the reader is positioned just before 'u' or 'U'.
// On success it returns the decoded code point with the escape fully
// consumed. On error it reports a diagnostic anchored at t and returns
// csource.Eof, leaving the offending characters unconsumed so the caller
// can retry (inside an identifier body: silently stop) or report, per
// spec §4.D.3.
func (l *Lexer) ucn (t *token.Token) rune {
	marker := l.read() // 'u' or 'U'
	width := 4
	if marker == 'U' {
		width = 8
	}

	var val rune
	for i := 0; i < width; i++ {
		c := l.peek()
		if !isUXDigit(c) {
			l.errorAt(t, ErrInvalidUCN, "incomplete universal character name: expected %d hex digits, got %d", width, i)
			l.reader.Backtrack(i + 1) // un-read marker + the digits read so far
			return csource.Eof
		}
		l.read()
		val = val<<4 | rune(uxDigitVal(c))
	}

	if val >= 0xD800 && val <= 0xDFFF {
		l.errorAt(t, ErrInvalidUCN, "universal character name %#04x names a surrogate code point", val)
		l.reader.Backtrack(width + 1) // un-read marker + all digits
		return csource.Eof
	}
	if val > 0x1FFFFF {
		l.errorAt(t, ErrInvalidUCN, "universal character name %#x exceeds maximum code point 0x1FFFFF", val)
		l.reader.Backtrack(width + 1) // un-read marker + all digits
		return csource.Eof
	}

	return val
}
