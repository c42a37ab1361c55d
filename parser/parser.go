// Package parser implements the §4.F parser driver: it consumes tokens on
// demand from a lexer.Lexer, drives a hand-written recursive descent over
// the declaration-grammar subset package grammar gates by dialect,
// invokes package parser/semant's post-parse actions on rule completion,
// and produces an sppf.Node forest. It also owns the `>>`/`>=`/`>>=`
// template-argument-list split hook (spec §4.E's
// process_template_parm_arg_list_end_token).
package parser

import (
	"github.com/walres/wrparsecxx/dialect"
	"github.com/walres/wrparsecxx/hostsem"
	"github.com/walres/wrparsecxx/lexer"
	"github.com/walres/wrparsecxx/token"
	"github.com/walres/wrparsecxx/werrors"
)

// DiagnosticsFunc is the parser's diagnostic sink; nil drops diagnostics.
type DiagnosticsFunc func (err error)

// Parser drives lexer on demand and owns the token list it produces plus
// the SPPF built over it, per spec §4.F/§5 ("The parser is the sole
// writer to the token list and the SPPF").
type Parser struct {
	lx    *lexer.Lexer
	opts  *dialect.Options
	diags DiagnosticsFunc
	host  hostsem.HostSemantics

	head, tail *token.Token // the parser-owned token sequence
	la         *token.Token // one-token lookahead buffer
	pending    *token.Token // injected token from the '>>' split hook

	errCount int
}

// New returns a Parser reading tokens from lx under opts. host may be nil,
// in which case hostsem.Default{} answers every name-class predicate.
func New (lx *lexer.Lexer, opts *dialect.Options, diags DiagnosticsFunc, host hostsem.HostSemantics) *Parser {
	if host == nil {
		host = hostsem.Default{}
	}
	return &Parser{lx: lx, opts: opts, diags: diags, host: host}
}

func (p *Parser) emit (err error) {
	p.errCount++
	if p.diags != nil {
		p.diags(err)
	}
}

func (p *Parser) warn (pos werrors.SourcePos, code int, msg string, params ...interface{}) {
	if p.diags != nil {
		p.diags(werrors.FormatSev(pos, code, werrors.Warning, msg, params...))
	}
}

// ErrorCount returns the number of parse errors since construction or the
// last Reset.
func (p *Parser) ErrorCount () int { return p.errCount }

// AtEOF reports whether the lookahead token is the sentinel EOF, i.e.
// there is nothing left for another Parse call to consume.
func (p *Parser) AtEOF () bool { return p.cur().Kind() == token.EOF }

// Reset clears the error count and discards the lookahead buffer so the
// driver can retry parsing a fresh top-level declaration after a failed
// one, per spec §4.F/§7.
func (p *Parser) Reset () {
	p.errCount = 0
	p.la = nil
	p.pending = nil
}

// ClearStorage forwards to the lexer's ClearStorage, per spec §4.F
// ("the driver may then reset() parser state and clear_storage() the
// lexer before proceeding").
func (p *Parser) ClearStorage () { p.lx.ClearStorage() }

func (p *Parser) appendToken (t *token.Token) {
	if p.tail != nil {
		p.tail.Link(t)
	} else {
		p.head = t
	}
	p.tail = t
}

func (p *Parser) fetch () *token.Token {
	if p.pending != nil {
		t := p.pending
		p.pending = nil
		return t
	}
	t := p.lx.Lex()
	p.appendToken(t)
	return t
}

// cur returns the current lookahead token without consuming it.
func (p *Parser) cur () *token.Token {
	if p.la == nil {
		p.la = p.fetch()
	}
	return p.la
}

// advance consumes and returns the current lookahead token.
func (p *Parser) advance () *token.Token {
	t := p.cur()
	p.la = nil
	return t
}

// splitClosingAngle implements spec §4.E's template-argument-list end-
// token hook: when C++11+ and the current token is a SPLITABLE
// '>>'/'>='/'>>=' , it is rewritten in place to a lone '>' and a new
// residual token is linked in immediately after it with offset+1,
// preserving total-token-count+1 and offset ordering (spec invariant #8).
func (p *Parser) splitClosingAngle () {
	t := p.cur()

	var residualKind token.Kind
	var residualSpelling string
	switch t.Kind() {
	case token.RSHIFT:
		residualKind, residualSpelling = token.GREATER, ">"
	case token.GREATEREQUAL:
		residualKind, residualSpelling = token.EQUAL, "="
	case token.RSHIFTEQUAL:
		residualKind, residualSpelling = token.GREATEREQUAL, ">="
	default:
		return
	}

	residual := token.New(residualKind, residualSpelling, t.SourceName(), t.Offset()+1, t.Line(), t.Col()+1)
	t.Link(residual)
	if p.tail == t {
		p.tail = residual
	}
	t.SetKind(token.GREATER).SetSpelling(">")
	p.pending = residual
}

// expectTemplateCloser consumes the '>' that ends a template-parameter-
// list or template-argument-list, splitting a SPLITABLE token first if
// needed, per spec §4.E/§8 scenario S3.
func (p *Parser) expectTemplateCloser () (*token.Token, bool) {
	t := p.cur()
	if t.Kind() == token.GREATER {
		return p.advance(), true
	}
	if t.Flags().Has(token.SPLITABLE) && p.opts.CXX() >= dialect.CXX11 {
		p.splitClosingAngle()
		return p.advance(), true
	}
	return nil, false
}
