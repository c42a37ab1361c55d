package lexer

import (
	"strings"

	"github.com/walres/wrparsecxx/csource"
	"github.com/walres/wrparsecxx/dialect"
	"github.com/walres/wrparsecxx/token"
)

// whitespace consumes a run of whitespace starting with the character
// already in l.reader.LastRead(). A newline is always its own standalone
// token spelled "\n" (per spec §4.D.1: "subsequent logic needs
// line-boundary marking"); any other run of space/tab/etc is coalesced
// into a single WHITESPACE token.
func (l *Lexer) whitespace (t *token.Token) {
	if l.reader.LastRead() == '\n' {
		t.SetKind(token.WHITESPACE).SetSpelling("\n")
		return
	}

	l.spelling.Reset()
	l.spelling.WriteRune(l.reader.LastRead())
	for isUSpace(l.peek()) && l.peek() != '\n' {
		l.spelling.WriteRune(l.read())
	}
	t.SetKind(token.WHITESPACE).SetSpelling(l.spelling.String())
}

// comment scans either a /*...*/ block comment or a //-style line comment
// (the leading '/' has already been consumed by the caller, which
// dispatches here after peeking '*' or '/'; this function consumes that
// second character).
func (l *Lexer) comment (t *token.Token) {
	opener := l.peek()
	l.read() // consume '*' or second '/'

	l.spelling.Reset()
	l.spelling.WriteString("/")
	l.spelling.WriteRune(opener)

	if opener == '/' {
		for {
			c := l.peek()
			if c == csource.Eof || c == '\n' {
				break
			}
			l.spelling.WriteRune(l.read())
		}
		t.SetKind(token.COMMENT).SetSpelling(l.spelling.String())
		return
	}

	for {
		c := l.read()
		if c == csource.Eof {
			l.errorAt(t, ErrUnterminatedComment, "unterminated /* comment")
			break
		}
		l.spelling.WriteRune(c)
		if c == '*' && l.peek() == '/' {
			l.spelling.WriteRune(l.read())
			break
		}
	}
	t.SetKind(token.COMMENT).SetSpelling(l.spelling.String())
}

// stringOrCharLiteral scans the body of a string or character literal
// after the opening quote has been consumed and t.Kind() already holds
// the literal kind the caller decided on (STR_LITERAL, CHAR_LITERAL, or
// one of their wide/UTF variants). Escape sequences are per spec §4.D.5:
// \\ \a \b \f \n \r \t \v \? \' \", octal \ooo (1-3 digits), hex \xhh...,
// and UCNs when enabled.
func (l *Lexer) stringOrCharLiteral (t *token.Token) {
	quote := byte('"')
	if t.Kind() == token.CHAR_LITERAL || t.Kind() == token.WCHAR_LITERAL ||
		t.Kind() == token.U8_CHAR_LITERAL || t.Kind() == token.U16_CHAR_LITERAL ||
		t.Kind() == token.U32_CHAR_LITERAL {
		quote = '\''
	}

	l.spelling.Reset()
	l.spelling.WriteByte(quote)

	for {
		c := l.peek()
		switch c {
		case csource.Eof, '\n':
			l.errorAt(t, ErrUnterminatedString, "unterminated literal")
			t.SetSpelling(l.spelling.String())
			return
		case rune(quote):
			l.read()
			l.spelling.WriteByte(quote)
			t.SetSpelling(l.spelling.String())
			return
		case '\\':
			l.read()
			l.spelling.WriteRune('\\')
			l.escapeSequence(t, &l.spelling)
		default:
			l.spelling.WriteRune(l.read())
		}
	}
}

// escapeSequence consumes and transcribes one escape sequence body (the
// leading backslash has already been read and written).
func (l *Lexer) escapeSequence (t *token.Token, buf *strings.Builder) {
	switch c := l.peek(); {
	case c == 'a', c == 'b', c == 'f', c == 'n', c == 'r', c == 't', c == 'v',
		c == '\\', c == '\'', c == '"', c == '?':
		buf.WriteRune(l.read())
	case c >= '0' && c <= '7':
		for i := 0; i < 3 && l.peek() >= '0' && l.peek() <= '7'; i++ {
			buf.WriteRune(l.read())
		}
	case c == 'x':
		buf.WriteRune(l.read())
		for isUXDigit(l.peek()) {
			buf.WriteRune(l.read())
		}
	case c == 'u', c == 'U':
		if l.options.Have(dialect.UCNS) {
			cp := l.ucn(t)
			if cp != csource.Eof {
				buf.WriteRune(cp)
			}
		}
	default:
		// Unknown escape: leave the backslash as already written and
		// fall through without consuming, matching the reference
		// lexer's "don't choke on an unrecognised escape" leniency.
	}
}

// rawStringLiteral scans a C++11 raw string literal body starting right
// after the opening '"' of R"delim(...)delim" (the leading 'R' and quote
// have already been consumed by the caller). Trigraphs and line splicing
// are not applied inside raw content, per spec §4.D.5.
func (l *Lexer) rawStringLiteral (t *token.Token) {
	var delim strings.Builder
	for {
		c := l.reader.Peek() // raw, no trigraph/splice folding
		switch {
		case c == '(':
			l.reader.Read()
			goto content
		case c == csource.Eof || c == '\n':
			l.errorAt(t, ErrUnterminatedRawDelim, "unterminated raw string delimiter")
			return
		case isUSpace(c):
			l.errorAt(t, ErrWhitespaceInRawDelim, "whitespace not allowed in raw string delimiter")
			l.reader.Read()
		case c == ')' || c == '\\' || c == '"':
			l.errorAt(t, ErrIllegalRawDelimChar, "character %q not allowed in raw string delimiter", c)
			l.reader.Read()
			delim.WriteRune(c)
		case delim.Len() >= 16:
			l.errorAt(t, ErrIllegalRawDelimChar, "raw string delimiter exceeds 16 characters")
			l.reader.Read()
		default:
			delim.WriteRune(c)
			l.reader.Read()
		}
	}

content:
	closer := ")" + delim.String() + "\""
	l.spelling.Reset()
	l.spelling.WriteString("R\"")
	l.spelling.WriteString(delim.String())
	l.spelling.WriteByte('(')

	var tail strings.Builder
	for {
		c := l.reader.Peek()
		if c == csource.Eof {
			l.errorAt(t, ErrUnterminatedString, "unterminated raw string literal")
			t.SetSpelling(l.spelling.String())
			return
		}
		l.reader.Read()
		l.spelling.WriteRune(c)

		if c == ')' {
			tail.Reset()
			tail.WriteRune(c)
			matched := true
			save := 1
			for i := 1; i < len(closer); i++ {
				c2 := l.reader.Peek()
				if c2 != rune(closer[i]) {
					matched = false
					break
				}
				l.reader.Read()
				tail.WriteRune(c2)
				save++
			}
			if matched {
				l.spelling.WriteString(tail.String()[1:])
				t.SetSpelling(l.spelling.String())
				return
			}
			l.spelling.WriteString(tail.String()[1:])
		}
	}
}
