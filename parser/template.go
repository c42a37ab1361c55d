package parser

import (
	"github.com/walres/wrparsecxx/grammar"
	"github.com/walres/wrparsecxx/sppf"
	"github.com/walres/wrparsecxx/token"
	"github.com/walres/wrparsecxx/werrors"
)

// ParseTemplateArgumentList parses "'<' template-argument (',' template-
// argument)* '>'", where each argument is an opaque balanced-token run
// (type-ids and constant-expressions are both accepted without being
// told apart, per spec §1's scope note) and the closing '>' goes through
// expectTemplateCloser so a SPLITABLE '>>'/'>='/'>>=' closing a nested
// list is split per spec §4.E/§8 scenario S3.
func (p *Parser) ParseTemplateArgumentList () (*sppf.Node, bool) {
	open, ok := p.expect(token.LESS)
	if !ok {
		return nil, false
	}
	children := []*sppf.Node{sppf.NewTerminal(open)}
	last := open

	if p.cur().Kind() != token.GREATER && !p.cur().Flags().Has(token.SPLITABLE) {
		for {
			arg, ok := p.parseTemplateArgument()
			if !ok {
				break
			}
			children = append(children, arg)
			last = arg.Last()
			if p.cur().Kind() != token.COMMA {
				break
			}
			comma := p.advance()
			children = append(children, sppf.NewTerminal(comma))
			last = comma
		}
	}

	closer, ok := p.expectTemplateCloser()
	if !ok {
		p.emit(werrors.FormatPos(p.cur(), ErrExpectedToken, "expected '>' to close template-argument-list"))
		return nil, false
	}
	children = append(children, sppf.NewTerminal(closer))
	last = closer

	return sppf.NewNonterminal(int(grammar.TemplateArgumentList), open, last, children, int(grammar.RuleNone)), true
}

// parseTemplateArgument consumes one argument: a run of tokens up to (but
// not including) the next top-level ',' or the list's closing '>'. A
// nested '<' is not scanned as an opaque token -- it recurses into
// ParseTemplateArgumentList so that list's own call to
// expectTemplateCloser sees the nested closing '>' directly and splits a
// SPLITABLE '>>'/'>='/'>>=' there, before this level's scan ever has a
// chance to swallow it verbatim. That is what makes
// "vector<vector<int>>"'s outer list close correctly, per spec §8 S3.
func (p *Parser) parseTemplateArgument () (*sppf.Node, bool) {
	var children []*sppf.Node
	var first, last *token.Token

	for {
		t := p.cur()
		if t.Kind() == token.EOF {
			break
		}
		if t.Kind() == token.COMMA {
			break
		}
		if t.Kind() == token.GREATER || t.Flags().Has(token.SPLITABLE) {
			break
		}
		if t.Kind() == token.LESS {
			nested, ok := p.ParseTemplateArgumentList()
			if !ok {
				break
			}
			if first == nil {
				first = nested.First()
			}
			last = nested.Last()
			children = append(children, nested)
			continue
		}
		t = p.advance()
		if first == nil {
			first = t
		}
		last = t
		children = append(children, sppf.NewTerminal(t))
	}

	if len(children) == 0 {
		return nil, false
	}
	return sppf.NewNonterminal(int(grammar.TemplateArgumentList), first, last, children, int(grammar.RuleNone)), true
}
