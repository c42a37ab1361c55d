package parser

import (
	"github.com/walres/wrparsecxx/grammar"
	"github.com/walres/wrparsecxx/parser/semant"
	"github.com/walres/wrparsecxx/sppf"
	"github.com/walres/wrparsecxx/token"
	"github.com/walres/wrparsecxx/werrors"
)

// ParseDeclarator parses a declarator: ptr_operator* noptr_declarator,
// where noptr_declarator is either a parenthesized nested declarator or a
// declarator-id, optionally followed by any mix of array_declarator and
// parameters_and_qualifiers suffixes, per spec §4.E/§4.G. Validation is
// delegated to parser/semant's DeclaratorValidator so invariants #6-#8
// hold for every completed declarator.
func (p *Parser) ParseDeclarator () (*sppf.Node, semant.Declarator, bool) {
	validator := semant.NewDeclaratorValidator(p.cur(), p.emit)

	var children []*sppf.Node
	var first, last *token.Token

	for p.isPtrOperatorStart(p.cur().Kind()) {
		node := p.parsePtrOperator(validator)
		if first == nil {
			first = node.First()
		}
		last = node.Last()
		children = append(children, node)
	}

	inner, innerResult, ok := p.parseNoptrDeclarator(validator)
	if !ok {
		if len(children) == 0 {
			return nil, semant.Declarator{}, false
		}
		// Pointer operators with no declarator-id following: still a
		// valid abstract declarator, per spec's abstract_declarator
		// alternative.
	} else {
		if first == nil {
			first = inner.First()
		}
		last = inner.Last()
		children = append(children, inner)
		validator.MergeNested(innerResult)
	}

	if len(children) == 0 {
		return nil, semant.Declarator{}, false
	}

	result := validator.Result()
	node := sppf.NewNonterminal(int(grammar.Declarator), first, last, children, int(grammar.RuleNone))
	node.SetAux(sppf.DeclaratorAux, result)
	return node, result, true
}

func (p *Parser) isPtrOperatorStart (k token.Kind) bool {
	switch k {
	case token.STAR, token.AMP, token.AMPAMP:
		return true
	default:
		return false
	}
}

// parsePtrOperator consumes one '*'/'&'/'&&' plus any trailing cv-
// qualifiers, folding both the declarator-level validation (reference-
// after-reference, pointer-after-reference) and the per-operator cv
// qualifier set via a fresh DeclaratorPartFolder, per spec §4.G.
func (p *Parser) parsePtrOperator (validator *semant.DeclaratorValidator) *sppf.Node {
	t := p.advance()
	validator.AddPtrOperator(t)

	partFolder := semant.NewDeclaratorPartFolder()
	if t.Kind() == token.AMP || t.Kind() == token.AMPAMP {
		partFolder.AddRefQualifier(t.Kind())
	}

	children := []*sppf.Node{sppf.NewTerminal(t)}
	last := t
	for p.isCVQualifier(p.cur().Kind()) {
		q := p.advance()
		partFolder.AddQualifier(q)
		children = append(children, sppf.NewTerminal(q))
		last = q
	}

	node := sppf.NewNonterminal(int(grammar.PtrOperator), t, last, children, int(grammar.RuleNone))
	node.SetAux(sppf.DeclaratorPartAux, partFolder.Result())
	return node
}

func (p *Parser) isCVQualifier (k token.Kind) bool {
	switch k {
	case token.KW_CONST, token.KW_VOLATILE, token.KW_RESTRICT:
		return true
	default:
		return false
	}
}

// parseNoptrDeclarator parses the "no leading pointer" core of a
// declarator: either a parenthesized nested declarator or a bare
// declarator-id (an identifier; qualified-ids and operator-function-ids
// are out of scope), then zero or more array/parameter-list suffixes.
func (p *Parser) parseNoptrDeclarator (validator *semant.DeclaratorValidator) (*sppf.Node, semant.Declarator, bool) {
	var children []*sppf.Node
	var first, last *token.Token
	var nestedResult semant.Declarator
	haveCore := false

	switch p.cur().Kind() {
	case token.LPAREN:
		open := p.advance()
		nested, nr, ok := p.ParseDeclarator()
		if !ok {
			p.emit(werrors.FormatPos(open, ErrUnexpectedToken, "expected a declarator after '('"))
			return nil, semant.Declarator{}, false
		}
		close, ok := p.expect(token.RPAREN)
		if !ok {
			return nil, semant.Declarator{}, false
		}
		children = append(children, sppf.NewTerminal(open), nested, sppf.NewTerminal(close))
		first, last = open, close
		nestedResult = nr
		haveCore = true
	case token.IDENTIFIER:
		id := p.advance()
		children = append(children, sppf.NewTerminal(id))
		first, last = id, id
		haveCore = true
	}

	if !haveCore {
		return nil, semant.Declarator{}, false
	}

	for {
		switch p.cur().Kind() {
		case token.LSQUARE:
			node := p.parseArrayDeclarator()
			validator.AddArrayDeclarator()
			children = append(children, node)
			last = node.Last()
		case token.LPAREN:
			node, partResult := p.parseParametersAndQualifiers()
			validator.AddParametersAndQualifiers(node.First())
			_ = partResult
			children = append(children, node)
			last = node.Last()
		default:
			node := sppf.NewNonterminal(int(grammar.NoptrDeclarator), first, last, children, int(grammar.RuleNone))
			return node, nestedResult, true
		}
	}
}

// parseArrayDeclarator consumes '[' [ constant-expression ] ']'. The
// bound expression itself is skipped as an opaque balanced-token run
// (expression grammar is out of this engine's scope; see package
// literal for the arithmetic it does own).
func (p *Parser) parseArrayDeclarator () *sppf.Node {
	open := p.advance()
	children := []*sppf.Node{sppf.NewTerminal(open)}
	last := open
	for p.cur().Kind() != token.RSQUARE && p.cur().Kind() != token.EOF {
		t := p.advance()
		children = append(children, sppf.NewTerminal(t))
		last = t
	}
	if close, ok := p.expect(token.RSQUARE); ok {
		children = append(children, sppf.NewTerminal(close))
		last = close
	}
	return sppf.NewNonterminal(int(grammar.ArrayDeclarator), open, last, children, int(grammar.RuleNone))
}

// parseParametersAndQualifiers consumes '(' parameter-declaration-list
// ')', counting parameters and detecting a trailing '...', then any
// trailing cv-qualifiers and ref-qualifier, per spec §4.E/§4.G.
func (p *Parser) parseParametersAndQualifiers () (*sppf.Node, semant.DeclaratorPart) {
	open := p.advance()
	children := []*sppf.Node{sppf.NewTerminal(open)}
	last := open
	partFolder := semant.NewDeclaratorPartFolder()

	count := 0
	if p.cur().Kind() != token.RPAREN {
		for {
			if p.cur().Kind() == token.ELLIPSIS {
				t := p.advance()
				children = append(children, sppf.NewTerminal(t))
				last = t
				partFolder.SetVariadic(true)
				break
			}
			node, ok := p.parseParameterDeclaration()
			if !ok {
				break
			}
			children = append(children, node)
			last = node.Last()
			count++
			if p.cur().Kind() != token.COMMA {
				break
			}
			comma := p.advance()
			children = append(children, sppf.NewTerminal(comma))
			last = comma
		}
	}
	partFolder.SetParameterCount(count)

	if close, ok := p.expect(token.RPAREN); ok {
		children = append(children, sppf.NewTerminal(close))
		last = close
	}

	for p.isCVQualifier(p.cur().Kind()) {
		q := p.advance()
		partFolder.AddQualifier(q)
		children = append(children, sppf.NewTerminal(q))
		last = q
	}
	if p.cur().Kind() == token.AMP || p.cur().Kind() == token.AMPAMP {
		r := p.advance()
		partFolder.AddRefQualifier(r.Kind())
		children = append(children, sppf.NewTerminal(r))
		last = r
	}

	node := sppf.NewNonterminal(int(grammar.ParametersAndQualifiers), open, last, children, int(grammar.RuleNone))
	result := partFolder.Result()
	node.SetAux(sppf.DeclaratorPartAux, result)
	return node, result
}

// parseParameterDeclaration parses one decl-specifier-seq optionally
// followed by an abstract declarator, per spec §4.E; the default-argument
// tail ("= expr") is skipped as an opaque run up to the next ',' or ')'
// at bracket depth zero.
func (p *Parser) parseParameterDeclaration () (*sppf.Node, bool) {
	specNode, _, ok := p.ParseDeclSpecifierSeq()
	if !ok {
		return nil, false
	}
	children := []*sppf.Node{specNode}
	first, last := specNode.First(), specNode.Last()

	if declNode, _, ok := p.ParseDeclarator(); ok {
		children = append(children, declNode)
		last = declNode.Last()
	}

	if p.cur().Kind() == token.EQUAL {
		depth := 0
		for {
			k := p.cur().Kind()
			if depth == 0 && (k == token.COMMA || k == token.RPAREN || k == token.EOF) {
				break
			}
			t := p.advance()
			children = append(children, sppf.NewTerminal(t))
			last = t
			switch t.Kind() {
			case token.LPAREN, token.LSQUARE, token.LBRACE:
				depth++
			case token.RPAREN, token.RSQUARE, token.RBRACE:
				depth--
			}
		}
	}

	return sppf.NewNonterminal(int(grammar.ParameterDeclaration), first, last, children, int(grammar.RuleNone)), true
}

// expect consumes the current token if it matches k, reporting
// ErrExpectedToken and leaving the stream positioned at the offending
// token otherwise.
func (p *Parser) expect (k token.Kind) (*token.Token, bool) {
	if p.cur().Kind() == k {
		return p.advance(), true
	}
	p.emit(werrors.FormatPos(p.cur(), ErrExpectedToken, "expected %v, found %v %q", k, p.cur().Kind(), p.cur().Spelling()))
	return nil, false
}
