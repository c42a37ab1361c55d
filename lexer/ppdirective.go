package lexer

import (
	"github.com/walres/wrparsecxx/token"
)

// directiveNames maps a maximal run of lowercase letters and '_' to its directive
// kind, per spec §4.D.6. A name matches at most one directive — see
// SPEC_FULL's resolution of the "fall-through" open question: the full run
// is read before any dispatch happens, so there is no shared-prefix
// fallthrough to get wrong.
var directiveNames = map[string]token.Kind{
	"define":       token.PP_DEFINE,
	"undef":        token.PP_UNDEF,
	"if":           token.PP_IF,
	"ifdef":        token.PP_IFDEF,
	"ifndef":       token.PP_IFNDEF,
	"elif":         token.PP_ELIF,
	"else":         token.PP_ELSE,
	"endif":        token.PP_ENDIF,
	"line":         token.PP_LINE,
	"error":        token.PP_ERROR,
	"warning":      token.PP_WARNING,
	"pragma":       token.PP_PRAGMA,
	"include":      token.PP_INCLUDE,
	"include_next": token.PP_INCLUDE_NEXT,
}

// ppDirective runs immediately after a '#' or "%:" that starts a line, per
// spec §4.D.6. It reads the maximal run of lowercase letters and '_' that follows
// (skipping leading horizontal whitespace), and either reclassifies t as
// the matching directive kind or, on no match, warns and rolls the name
// back so it lexes as ordinary tokens, setting t's kind to PP_NULL.
//
// Regardless of outcome, t gets PREPROCESS, and the flag accumulator that
// seeds every subsequent token gains PREPROCESS until the next newline's
// whitespace token clears it.
func (l *Lexer) ppDirective (t *token.Token) {
	t.AddFlags(token.PREPROCESS)
	l.nextTokenFlags |= token.PREPROCESS

	for l.peek() == ' ' || l.peek() == '\t' {
		l.read()
	}

	l.spelling.Reset()
	consumed := 0
	for c := l.peek(); (c >= 'a' && c <= 'z') || c == '_'; c = l.peek() {
		l.spelling.WriteRune(l.read())
		consumed++
	}

	name := l.spelling.String()
	if kind, ok := directiveNames[name]; ok {
		t.SetKind(kind)
		return
	}

	if consumed > 0 {
		l.warnAt(t, ErrUnknownDirective, "%q is not a recognised preprocessor directive", name)
		l.reader.Backtrack(consumed)
	}
	t.SetKind(token.PP_NULL)
}
