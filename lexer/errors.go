package lexer

import (
	"github.com/walres/wrparsecxx/token"
	"github.com/walres/wrparsecxx/werrors"
)

// Error codes for the lexer package, per spec §4.D.8/§7.
const (
	ErrUnterminatedString     = 301
	ErrUnterminatedComment    = 302
	ErrUnterminatedRawDelim   = 303
	ErrInvalidUCN             = 304
	ErrIllegalRawDelimChar    = 305
	ErrWhitespaceInRawDelim   = 306
	ErrUnknownDirective       = 307
)

func (l *Lexer) diagAt (pos werrors.SourcePos, sev werrors.Severity, code int, msg string, params ...interface{}) {
	l.emit(werrors.FormatSev(pos, code, sev, msg, params...))
}

func (l *Lexer) errorAt (t *token.Token, code int, msg string, params ...interface{}) {
	l.diagAt(t, werrors.Error, code, msg, params...)
}

func (l *Lexer) warnAt (t *token.Token, code int, msg string, params ...interface{}) {
	l.diagAt(t, werrors.Warning, code, msg, params...)
}

// fatal resets t to EOF and reports a FATAL_ERROR, per spec §7: "fatal
// errors set the current token to EOF and stop."
func (l *Lexer) fatal (t *token.Token, code int, msg string, params ...interface{}) {
	l.diagAt(t, werrors.FatalError, code, msg, params...)
	t.Reset().SetKind(token.EOF)
}
