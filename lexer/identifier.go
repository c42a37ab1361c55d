package lexer

import (
	"github.com/walres/wrparsecxx/csource"
	"github.com/walres/wrparsecxx/dialect"
	"github.com/walres/wrparsecxx/token"
)

// identifierOrKeyword scans the rest of an identifier whose first
// character has already been consumed (l.reader.LastRead()) and
// classifies it against the lexer's keyword/identifier table, per spec
// §4.B (dialect keyword union, including alphabetic alternate spellings
// like "and"/"bitand") and §4.D.7 (Annex E identifier character classes).
func (l *Lexer) identifierOrKeyword (t *token.Token) {
	l.identifierOrKeywordFromRune(t, l.reader.LastRead())
}

// identifierOrKeywordFromRune is identifierOrKeyword generalized over the
// already-decoded first code point, so a UCN-started identifier (whose
// first "character" was several source characters wide) can share the
// same continuation-scanning logic.
func (l *Lexer) identifierOrKeywordFromRune (t *token.Token, first rune) {
	l.spelling.Reset()
	l.spelling.WriteRune(first)

	for {
		c := l.peek()
		switch {
		case c == '\\' && l.options.Have(dialect.UCNS):
			save := l.spelling.String()
			l.read()
			if p := l.peek(); p != 'u' && p != 'U' {
				l.reader.Backtrack()
				goto done
			}
			cp := l.ucn(t)
			if cp == csource.Eof || !l.IsValidIdentChar(cp) {
				l.spelling.Reset()
				l.spelling.WriteString(save)
				goto done
			}
			l.spelling.WriteRune(cp)
		case l.IsValidIdentChar(c):
			l.spelling.WriteRune(l.read())
		default:
			goto done
		}
	}

done:
	spelling := l.spelling.String()
	if kind, ok := l.kwIDTable[spelling]; ok && kind != token.IDENTIFIER {
		t.SetKind(kind).SetSpelling(spelling)
		// Alphabetic alternate spellings of punctuators ("and", "bitand",
		// ...) land in the punctuation range via the identifier table;
		// every other entry maps to a kind in the keyword range, so
		// punctuation-range membership is exactly the test.
		if token.IsPunctuation(kind) {
			t.AddFlags(token.ALTERNATE)
		}
		return
	}

	l.kwIDTable[spelling] = token.IDENTIFIER
	t.SetKind(token.IDENTIFIER).SetSpelling(spelling)
}
