package parser

import (
	"github.com/walres/wrparsecxx/dialect"
	"github.com/walres/wrparsecxx/grammar"
	"github.com/walres/wrparsecxx/parser/semant"
	"github.com/walres/wrparsecxx/sppf"
	"github.com/walres/wrparsecxx/token"
	"github.com/walres/wrparsecxx/werrors"
)

func (p *Parser) appendLeaf (children []*sppf.Node) ([]*sppf.Node, *token.Token) {
	t := p.advance()
	return append(children, sppf.NewTerminal(t)), t
}

// ParseDeclSpecifierSeq parses a maximal run of decl-specifier tokens
// (storage-class specifiers, cv-qualifiers, simple-type-specifier
// keywords, and struct/class/union/enum "other type specifier" subtrees;
// _Atomic is folded as a qualifier and typename specifiers are not
// recognised), folding them via parser/semant's
// DeclSpecifierFolder, per spec §4.E/§4.G. ok is false if no specifier
// was present at all (invariant #6's precondition never gets a chance to
// hold).
func (p *Parser) ParseDeclSpecifierSeq () (*sppf.Node, semant.DeclSpecifier, bool) {
	folder := semant.NewDeclSpecifierFolder(p.cur(), p.emit)
	longLong := p.opts.Have(dialect.LONG_LONG)

	var children []*sppf.Node
	var first, last *token.Token

outer:
	for {
		t := p.cur()
		switch t.Kind() {
		case token.KW_STRUCT, token.KW_CLASS, token.KW_UNION, token.KW_ENUM:
			node, ok := p.parseOtherTypeSpecifier()
			if !ok {
				break outer
			}
			folder.AddOtherTypeSpecifier(node)
			children = append(children, node)
		case token.KW_CONST, token.KW_VOLATILE, token.KW_RESTRICT, token.KW_ATOMIC:
			folder.AddTypeQualifier(t)
			children, _ = p.appendLeaf(children)
		default:
			if !token.IsDeclSpecifier(t.Kind()) {
				break outer
			}
			ok := folder.AddSimpleTypeSpecifier(t, longLong)
			children, _ = p.appendLeaf(children)
			if !ok {
				break outer
			}
		}
		if first == nil {
			first = children[0].First()
		}
		last = children[len(children)-1].Last()
	}

	if len(children) == 0 {
		p.emit(werrors.FormatPos(p.cur(), ErrEmptyDeclSpecifierSeq, "expected a decl-specifier"))
		return nil, semant.DeclSpecifier{}, false
	}

	result := folder.Result()
	node := sppf.NewNonterminal(int(grammar.DeclSpecifierSeq), first, last, children, int(grammar.RuleNone))
	node.SetAux(sppf.DeclSpecifierAux, result)
	return node, result, true
}

// parseOtherTypeSpecifier consumes a class/enum/elaborated-type specifier
// of the shape "struct|class|union|enum [identifier] [ '{' ... '}' ]"
// (attribute specifiers are not consumed), without descending into
// member-declaration grammar: the brace body,
// if present, is skipped as a balanced-brace span, per spec §1's note that
// class/member grammar beyond decl-specifiers/declarators is out of scope.
func (p *Parser) parseOtherTypeSpecifier () (*sppf.Node, bool) {
	var children []*sppf.Node
	kw := p.advance()
	children = append(children, sppf.NewTerminal(kw))
	first, last := kw, kw

	if p.cur().Kind() == token.IDENTIFIER {
		children, last = p.appendLeaf(children)
	}

	if p.cur().Kind() == token.LBRACE {
		depth := 0
		for {
			t := p.cur()
			if t.Kind() == token.EOF {
				p.emit(werrors.FormatPos(t, ErrUnterminatedTypeBody, "unterminated %q body", kw.Spelling()))
				break
			}
			children, last = p.appendLeaf(children)
			switch last.Kind() {
			case token.LBRACE:
				depth++
			case token.RBRACE:
				depth--
			}
			if depth == 0 {
				break
			}
		}
	}

	node := sppf.NewNonterminal(int(grammar.OtherTypeSpecifier), first, last, children, int(grammar.RuleNone))
	return node, true
}
