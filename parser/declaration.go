package parser

import (
	"fmt"

	"github.com/walres/wrparsecxx/grammar"
	"github.com/walres/wrparsecxx/sppf"
	"github.com/walres/wrparsecxx/token"
	"github.com/walres/wrparsecxx/werrors"
)

// Parse drives the hand-written recursive descent for the given start
// symbol, per spec §4.F: "repeatedly invokes parse(declaration) on the
// start symbol." Only the subset of nonterminals this engine implements
// as public entry points are accepted; any other start symbol is a
// programmer error, not a parse failure.
func (p *Parser) Parse (start grammar.Nonterm) (*sppf.Node, error) {
	if !grammar.Gated(start, p.opts) {
		return nil, fmt.Errorf("%v is not gated in under the active dialect", start)
	}

	var node *sppf.Node
	var ok bool
	switch start {
	case grammar.SimpleDeclaration:
		node, ok = p.ParseSimpleDeclaration()
	case grammar.DeclSpecifierSeq, grammar.TypeSpecifierSeq, grammar.TrailingTypeSpecifierSeq:
		node, _, ok = p.ParseDeclSpecifierSeq()
	case grammar.Declarator, grammar.AbstractDeclarator:
		node, _, ok = p.ParseDeclarator()
	case grammar.TemplateArgumentList:
		node, ok = p.ParseTemplateArgumentList()
	default:
		return nil, fmt.Errorf("start symbol %v has no parser entry point", start)
	}

	if !ok {
		return nil, fmt.Errorf("parse failed with %d error(s)", p.errCount)
	}
	return node, nil
}

// ParseSimpleDeclaration parses "decl-specifier-seq init-declarator-list(opt)
// ';'", the top-level shape every scenario in spec §8 ultimately exercises.
// Each declarator in the list is validated independently; an initializer,
// if present, is skipped as an opaque balanced-token run up to the next
// top-level ',' or ';'.
func (p *Parser) ParseSimpleDeclaration () (*sppf.Node, bool) {
	specNode, _, ok := p.ParseDeclSpecifierSeq()
	if !ok {
		return nil, false
	}
	children := []*sppf.Node{specNode}
	first, last := specNode.First(), specNode.Last()

	if p.cur().Kind() != token.SEMI {
		for {
			declNode, _, ok := p.ParseDeclarator()
			if !ok {
				p.emit(werrors.FormatPos(p.cur(), ErrUnexpectedToken, "expected a declarator"))
				break
			}
			children = append(children, declNode)
			last = declNode.Last()

			if p.cur().Kind() == token.EQUAL || p.cur().Kind() == token.LBRACE {
				init, initLast := p.skipInitializer()
				children = append(children, init...)
				if initLast != nil {
					last = initLast
				}
			}

			if p.cur().Kind() != token.COMMA {
				break
			}
			comma := p.advance()
			children = append(children, sppf.NewTerminal(comma))
			last = comma
		}
	}

	if semi, ok := p.expect(token.SEMI); ok {
		children = append(children, sppf.NewTerminal(semi))
		last = semi
	}

	return sppf.NewNonterminal(int(grammar.SimpleDeclaration), first, last, children, int(grammar.RuleNone)), true
}

// skipInitializer consumes a '=' initializer or a braced initializer list
// as an opaque balanced-token run, since expression/initializer grammar
// beyond what package literal needs is out of this engine's scope.
func (p *Parser) skipInitializer () ([]*sppf.Node, *token.Token) {
	var nodes []*sppf.Node
	var last *token.Token
	depth := 0
	for {
		t := p.cur()
		if t.Kind() == token.EOF {
			break
		}
		if depth == 0 && (t.Kind() == token.COMMA || t.Kind() == token.SEMI) {
			break
		}
		t = p.advance()
		nodes = append(nodes, sppf.NewTerminal(t))
		last = t
		switch t.Kind() {
		case token.LPAREN, token.LSQUARE, token.LBRACE:
			depth++
		case token.RPAREN, token.RSQUARE, token.RBRACE:
			depth--
		}
		if depth == 0 && len(nodes) > 0 && (t.Kind() == token.RBRACE) {
			break
		}
	}
	return nodes, last
}
