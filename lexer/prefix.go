package lexer

import (
	"github.com/walres/wrparsecxx/dialect"
	"github.com/walres/wrparsecxx/token"
)

// uPrefixToken handles 'u', "u8", "uR" and "u8R" string/char literal
// prefixes. The "u8" prefix is two characters ('u' + '8'), not a single
// lexeme: when UTF8_CHAR_LITERALS/C11/C++11 gating fails the '8' falls
// back to starting its own numeric literal rather than being consumed.
func (l *Lexer) uPrefixToken (t *token.Token, eatNext *bool) {
	switch l.peek() {
	case '8':
		l.read()
		switch l.peek() {
		case '\'':
			if l.options.Have(dialect.UTF8_CHAR_LITERALS) {
				l.read()
				t.SetKind(token.U8_CHAR_LITERAL)
				l.stringOrCharLiteral(t)
			} else {
				l.reader.Backtrack()
				l.kwIDTable["u"] = token.IDENTIFIER
				t.SetKind(token.IDENTIFIER).SetSpelling("u")
			}
		case '"':
			if l.options.C() >= dialect.C11 || l.options.CXX() >= dialect.CXX11 {
				l.read()
				t.SetKind(token.U8_STR_LITERAL)
				l.stringOrCharLiteral(t)
			} else {
				l.reader.Backtrack()
				l.kwIDTable["u"] = token.IDENTIFIER
				t.SetKind(token.IDENTIFIER).SetSpelling("u")
			}
		case 'R':
			l.read()
			if l.peek() == '"' && l.options.CXX() >= dialect.CXX11 {
				l.read()
				t.SetKind(token.U8_STR_LITERAL)
				l.rawStringLiteral(t)
			} else {
				l.reader.Backtrack(2)
				l.identifierOrKeywordFromRune(t, 'u')
			}
		default:
			l.reader.Backtrack()
			l.identifierOrKeywordFromRune(t, 'u')
		}
	case 'R':
		l.read()
		if l.peek() == '"' && l.options.CXX() >= dialect.CXX11 {
			l.read()
			t.SetKind(token.U16_STR_LITERAL)
			l.rawStringLiteral(t)
		} else {
			l.reader.Backtrack()
			l.identifierOrKeywordFromRune(t, 'u')
		}
	case '"':
		if l.options.C() >= dialect.C11 || l.options.CXX() >= dialect.CXX11 {
			l.read()
			t.SetKind(token.U16_STR_LITERAL)
			l.stringOrCharLiteral(t)
		} else {
			l.identifierOrKeyword(t)
		}
	case '\'':
		if l.options.C() >= dialect.C11 || l.options.CXX() >= dialect.CXX11 {
			l.read()
			t.SetKind(token.U16_CHAR_LITERAL)
			l.stringOrCharLiteral(t)
		} else {
			l.identifierOrKeyword(t)
		}
	default:
		l.identifierOrKeyword(t)
	}
}

func (l *Lexer) upperUPrefixToken (t *token.Token) {
	switch l.peek() {
	case '"':
		if l.options.C() >= dialect.C11 || l.options.CXX() >= dialect.CXX11 {
			l.read()
			t.SetKind(token.U32_STR_LITERAL)
			l.stringOrCharLiteral(t)
		} else {
			l.identifierOrKeyword(t)
		}
	case '\'':
		if l.options.C() >= dialect.C11 || l.options.CXX() >= dialect.CXX11 {
			l.read()
			t.SetKind(token.U32_CHAR_LITERAL)
			l.stringOrCharLiteral(t)
		} else {
			l.identifierOrKeyword(t)
		}
	case 'R':
		l.read()
		if l.peek() == '"' && l.options.CXX() >= dialect.CXX11 {
			l.read()
			t.SetKind(token.U32_STR_LITERAL)
			l.rawStringLiteral(t)
		} else {
			l.reader.Backtrack()
			l.identifierOrKeywordFromRune(t, 'U')
		}
	default:
		l.identifierOrKeyword(t)
	}
}

func (l *Lexer) lPrefixToken (t *token.Token) {
	switch l.peek() {
	case '"':
		l.read()
		l.stringOrCharLiteral(t.SetKind(token.WSTR_LITERAL))
	case '\'':
		l.read()
		l.stringOrCharLiteral(t.SetKind(token.WCHAR_LITERAL))
	case 'R':
		l.read()
		if l.peek() == '"' {
			l.read()
			l.rawStringLiteral(t.SetKind(token.WSTR_LITERAL))
		} else {
			l.reader.Backtrack()
			l.identifierOrKeywordFromRune(t, 'L')
		}
	default:
		l.identifierOrKeyword(t)
	}
}
