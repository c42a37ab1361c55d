package lexer

import (
	"strings"

	"github.com/walres/wrparsecxx/dialect"
	"github.com/walres/wrparsecxx/token"
)

func (l *Lexer) numericLiteral (t *token.Token) {
	var buf strings.Builder
	buf.WriteRune(l.reader.LastRead())

	octal := false

	switch l.reader.LastRead() {
	case '0':
		switch l.peek() {
		case 'b', 'B':
			if l.options.Have(dialect.BINARY_LITERALS) {
				l.read()
				if d := uDigitVal(l.peek()); d >= 0 && d <= 1 {
					l.binaryLiteral(t, &buf)
					return
				}
				l.reader.Backtrack()
				return
			}
			octal = true
		case 'x', 'X':
			l.read()
			if isUXDigit(l.peek()) {
				l.hexadecimalLiteral(t, &buf)
				return
			}
			l.reader.Backtrack()
			return
		case '.':
			l.floatingLiteral(t, &buf)
			return
		default:
			octal = true
		}
	case '.':
		l.floatingLiteral(t, &buf)
		return
	}

	for {
		switch l.peek() {
		case '.', 'E', 'e':
			buf.WriteRune(l.read())
			l.floatingLiteral(t, &buf)
			return
		case '\'':
			l.read()
			if isUDigit(l.peek()) {
				buf.WriteRune(l.reader.LastRead())
			} else {
				l.reader.Backtrack()
			}
		}

		if isUDigit(l.peek()) {
			octal = octal && uDigitVal(l.peek()) < 8
			buf.WriteRune(l.read())
		} else {
			break
		}
	}

	l.checkForIntegerSuffix(&buf)

	if octal {
		t.SetKind(token.OCT_INT_LITERAL)
	} else {
		t.SetKind(token.DEC_INT_LITERAL)
	}
	t.SetSpelling(buf.String())
}

func (l *Lexer) binaryLiteral (t *token.Token, buf *strings.Builder) {
	buf.WriteRune(l.reader.LastRead()) // 'b'/'B'

	for {
		c := l.peek()
		switch {
		case uDigitVal(c) == 0 || uDigitVal(c) == 1:
			buf.WriteRune(l.read())
		case c == '\'':
			l.read()
			c = l.peek()
			if c == '0' || c == '1' {
				buf.WriteRune(l.reader.LastRead())
			} else {
				l.reader.Backtrack()
				goto done
			}
		default:
			goto done
		}
	}
done:
	l.checkForIntegerSuffix(buf)
	t.SetKind(token.BIN_INT_LITERAL)
	t.SetSpelling(buf.String())
}

func (l *Lexer) hexadecimalLiteral (t *token.Token, buf *strings.Builder) {
	buf.WriteRune(l.reader.LastRead()) // 'x'/'X'

	for isUXDigit(l.peek()) {
		buf.WriteRune(l.read())
		if l.peek() == '\'' {
			l.read()
			if isUXDigit(l.peek()) {
				buf.WriteRune(l.reader.LastRead())
			} else {
				l.reader.Backtrack()
			}
		}
	}

	l.checkForIntegerSuffix(buf)
	t.SetKind(token.HEX_INT_LITERAL)
	t.SetSpelling(buf.String())
}

func (l *Lexer) checkForIntegerSuffix (buf *strings.Builder) {
	switch l.peek() {
	case 'u', 'U':
		buf.WriteRune(l.read())
		if toULower(l.peek()) == 'l' {
			buf.WriteRune(l.read())
			if l.options.Have(dialect.LONG_LONG) && l.peek() == l.reader.LastRead() {
				buf.WriteRune(l.read())
			}
		}
	case 'l', 'L':
		buf.WriteRune(l.read())
		if l.options.Have(dialect.LONG_LONG) && l.peek() == l.reader.LastRead() {
			buf.WriteRune(l.read())
		}
		if toULower(l.peek()) == 'u' {
			buf.WriteRune(l.read())
		}
	}
}

func (l *Lexer) floatingLiteral (t *token.Token, buf *strings.Builder) {
	intPart := l.reader.LastRead() != '.'
	expPart := false
	again := true

	for again {
		switch c := l.peek(); {
		case c == '.':
			if intPart {
				buf.WriteRune(l.read())
				intPart = false
			} else {
				again = false
			}
		case c == 'E' || c == 'e':
			if expPart {
				again = false
				break
			}
			buf.WriteRune(l.read())
			expPart = true
			if c2 := l.peek(); c2 == '+' || c2 == '-' {
				buf.WriteRune(l.read())
			}
		case isUDigit(c):
			buf.WriteRune(l.read())
		default:
			again = false
		}
	}

	switch l.peek() {
	case 'F', 'f', 'L', 'l':
		buf.WriteRune(l.read())
	}

	t.SetKind(token.FLOAT_LITERAL)
	t.SetSpelling(buf.String())
}
