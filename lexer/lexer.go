// Package lexer implements the C/C++ character-to-token lexer: trigraph
// interpretation, line-splicing, universal character names, digraphs,
// raw string literals, the closing-token disambiguation stack, and
// preprocessor-directive recognition.
package lexer

import (
	"strings"

	"github.com/walres/wrparsecxx/csource"
	"github.com/walres/wrparsecxx/dialect"
	"github.com/walres/wrparsecxx/token"
)

// Lexer converts a character stream into a token stream under a fixed
// dialect. Not safe for concurrent use; construct one per input.
type Lexer struct {
	options *dialect.Options
	reader  *csource.Reader
	diags   DiagnosticsFunc

	kwIDTable map[string]token.Kind // options' keywords plus identifiers seen
	spelling  strings.Builder       // scratch buffer, reused per token
	closers   *closerStack

	nextTokenFlags token.Flags
}

// DiagnosticsFunc is the narrow diagnostic sink the lexer reports through;
// nil means diagnostics are dropped.
type DiagnosticsFunc func (err error)

// New returns a Lexer reading from src under options. diags may be nil.
func New (options *dialect.Options, src *csource.Source, diags DiagnosticsFunc) *Lexer {
	return &Lexer{
		options:        options,
		reader:         csource.NewReader(src),
		diags:          diags,
		kwIDTable:      options.Keywords(),
		closers:        newCloserStack(),
		nextTokenFlags: token.STARTS_LINE,
	}
}

// ClearStorage resets the lexer's identifier table back to the dialect's
// base keyword set, discarding every identifier spelling it has
// accumulated since construction (or since the last ClearStorage).
func (l *Lexer) ClearStorage () {
	l.kwIDTable = l.options.Keywords()
}

func (l *Lexer) emit (err error) {
	if l.diags != nil {
		l.diags(err)
	}
}

func (l *Lexer) sourceName () string { return l.reader.SourceName() }

// Lex returns the next token. It loops internally, consuming and
// discarding whitespace/comment tokens when KEEP_SPACE/KEEP_COMMENTS are
// off, exactly as lex() does in the reference implementation.
func (l *Lexer) Lex () *token.Token {
	sawSpace := false
	for {
		t := l.newToken()
		if sawSpace {
			t.AddFlags(token.SPACE_BEFORE)
		}
		kind := l.readToken(t)

		switch kind {
		case token.WHITESPACE:
			sawSpace = true
			if !l.options.Have(dialect.KEEP_SPACE) {
				continue
			}
		case token.COMMENT:
			sawSpace = true
			if !l.options.Have(dialect.KEEP_COMMENTS) {
				continue
			}
		}
		return t
	}
}

func (l *Lexer) newToken () *token.Token {
	t := token.New(token.NULL, "", l.sourceName(), l.reader.Offset(), l.reader.Line(), l.reader.Column())
	t.SetFlags(l.nextTokenFlags)
	l.nextTokenFlags &^= token.STARTS_LINE
	return t
}

// updateNextTokenFlags adjusts the accumulator that seeds the next token's
// flags, mirroring CXXLexer::updateNextTokenFlags.
func (l *Lexer) updateNextTokenFlags (t *token.Token) {
	switch t.Kind() {
	case token.WHITESPACE:
		if l.reader.LastRead() == '\n' {
			l.nextTokenFlags = (l.nextTokenFlags &^ token.PREPROCESS) | token.STARTS_LINE
		} else if t.Flags().Has(token.STARTS_LINE) {
			// Indentation passes STARTS_LINE on to the line's first
			// non-whitespace token.
			l.nextTokenFlags |= token.STARTS_LINE
		}
	case token.EOF:
		l.nextTokenFlags = (l.nextTokenFlags &^ token.PREPROCESS) | token.STARTS_LINE
	}
}

// setKindAndSpelling sets t's kind and its catalogue default spelling.
func setKindAndSpelling (t *token.Token, k token.Kind) *token.Token {
	return t.SetKind(k).SetSpelling(token.DefaultSpelling(k))
}

// handleTrigraph folds a "??X" sequence into its single-character
// equivalent once the first '?' has already been consumed, returning the
// folded character (or the literal '?' if no trigraph matched).
func (l *Lexer) handleTrigraph () rune {
	c := l.reader.LastRead()
	if c != '?' {
		return c
	}
	if l.reader.Read() != '?' {
		l.reader.Backtrack()
		return c
	}

	var folded rune
	switch l.reader.Read() {
	case '<':
		folded = '{'
	case '>':
		folded = '}'
	case '(':
		folded = '['
	case ')':
		folded = ']'
	case '=':
		folded = '#'
	case '/':
		folded = '\\'
	case '\'':
		folded = '^'
	case '!':
		folded = '|'
	case '-':
		folded = '~'
	default:
		l.reader.Backtrack(2)
		return c
	}

	l.reader.Replace(3, folded)
	return folded
}

// handleEscapedNewLine erases a backslash-newline pair (line splicing) if
// the most recently consumed character was a backslash immediately
// followed by a newline.
func (l *Lexer) handleEscapedNewLine () bool {
	if l.reader.LastRead() == '\\' && l.reader.Peek() == '\n' {
		l.reader.Read()
		l.reader.Erase(2)
		return true
	}
	return false
}

// peek returns the next logical character, applying trigraph folding and
// line splicing as enabled, without consuming it.
func (l *Lexer) peek () rune {
	for {
		c := l.reader.Peek()
		repeat := false

		if l.options.Have(dialect.TRIGRAPHS) && c == '?' {
			l.reader.Read()
			c = l.handleTrigraph()
			if l.handleEscapedNewLine() {
				repeat = true
			} else {
				l.reader.Backtrack()
			}
		} else if c == '\\' {
			l.reader.Read()
			if l.handleEscapedNewLine() {
				repeat = true
			} else {
				l.reader.Backtrack()
			}
		}

		if !repeat {
			return c
		}
	}
}

// read consumes and returns the next logical character, applying trigraph
// folding and line splicing as enabled.
func (l *Lexer) read () rune {
	var c rune
	for {
		c = l.reader.Read()
		if l.options.Have(dialect.TRIGRAPHS) && c == '?' {
			c = l.handleTrigraph()
		}
		if !l.handleEscapedNewLine() {
			break
		}
	}
	return c
}
