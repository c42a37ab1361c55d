// Package sppf implements the Shared Packed Parse Forest node the parser
// driver builds: a DAG where ambiguous spans are represented as a node
// with more than one packed child alternative, per spec §3/§9.
package sppf

import (
	"github.com/walres/wrparsecxx/token"
)

// Kind distinguishes a terminal leaf from a reduced nonterminal node.
type Kind int

const (
	Terminal Kind = iota
	Nonterminal
)

// AuxTag identifies which of the three semantic payloads (§3) a node's
// AuxData holds, since Go has no inheritance-plus-dynamic-cast to lean on
// (per spec §9's "replace it with a tagged variant").
type AuxTag int

const (
	NoAux AuxTag = iota
	DeclSpecifierAux
	DeclaratorAux
	DeclaratorPartAux
)

// Alternative is one packed parse of a Node's span: the ordered list of
// child nodes the production matched, plus the production's own semantic
// rule tag (operator class, for the literal engine).
type Alternative struct {
	Children []*Node
	RuleTag  int // grammar.SemanticRule value; kept as int to avoid an import cycle
}

// Node is an SPPF node: either a terminal (wrapping exactly one token) or
// a reduced nonterminal spanning First..Last inclusive, with one or more
// packed Alternatives when the grammar was ambiguous over that span.
//
// Ownership: the parser's arena owns every Node; nodes cite their span and
// children but never a parent (per spec §9, this is a DAG, not a tree).
type Node struct {
	kind     Kind
	nonterm  int // grammar.Nonterm value for Nonterminal nodes
	term     *token.Token // for Terminal nodes
	first    *token.Token
	last     *token.Token
	alts     []Alternative

	auxTag  AuxTag
	auxData interface{}
}

// NewTerminal wraps a single token as a leaf SPPF node.
func NewTerminal (t *token.Token) *Node {
	return &Node{kind: Terminal, term: t, first: t, last: t}
}

// NewNonterminal starts a reduced node for nonterm spanning first..last,
// with its first packed alternative's children.
func NewNonterminal (nonterm int, first, last *token.Token, children []*Node, ruleTag int) *Node {
	return &Node{
		kind: Nonterminal, nonterm: nonterm, first: first, last: last,
		alts: []Alternative{{Children: children, RuleTag: ruleTag}},
	}
}

// AddAlternative packs another parse of the same span onto an existing
// nonterminal node, used when the grammar was genuinely ambiguous over it
// (e.g. decl-specifier-seq vs constructor-id).
func (n *Node) AddAlternative (children []*Node, ruleTag int) {
	n.alts = append(n.alts, Alternative{Children: children, RuleTag: ruleTag})
}

func (n *Node) IsTerminal () bool    { return n.kind == Terminal }
func (n *Node) IsNonterminal () bool { return n.kind == Nonterminal }
func (n *Node) Nonterm () int        { return n.nonterm }
func (n *Node) Token () *token.Token { return n.term }
func (n *Node) First () *token.Token { return n.first }
func (n *Node) Last () *token.Token  { return n.last }

// Alternatives returns every packed parse of this node's span. Index 0 is
// the alternative the parser committed to first.
func (n *Node) Alternatives () []Alternative { return n.alts }

// Children returns alternative 0's children, the common case for
// unambiguous spans (the overwhelming majority of a real parse).
func (n *Node) Children () []*Node {
	if len(n.alts) == 0 {
		return nil
	}
	return n.alts[0].Children
}

// Ambiguous reports whether this node packs more than one alternative.
func (n *Node) Ambiguous () bool { return len(n.alts) > 1 }

// AuxTag and AuxData expose whichever semantic payload a post-parse action
// attached to this node (see parser/semant), or NoAux/nil if none did.
func (n *Node) AuxTag () AuxTag      { return n.auxTag }
func (n *Node) AuxData () interface{} { return n.auxData }

// SetAux attaches a semantic payload to a reduced node. Called exactly
// once per (production, span) pair, from a post-parse action.
func (n *Node) SetAux (tag AuxTag, data interface{}) {
	n.auxTag = tag
	n.auxData = data
}

// SourceName, Line, Col satisfy werrors.SourcePos by delegating to the
// node's first token, so diagnostics can anchor directly on an SPPF node.
func (n *Node) SourceName () string {
	if n.first == nil {
		return ""
	}
	return n.first.SourceName()
}
func (n *Node) Line () int {
	if n.first == nil {
		return 0
	}
	return n.first.Line()
}
func (n *Node) Col () int {
	if n.first == nil {
		return 0
	}
	return n.first.Col()
}

// Walk visits n and every descendant of its first (primary) alternative in
// pre-order, per spec §9's DAG note: a shared node reachable through
// multiple parents is visited once per parent, since the forest is a DAG
// and Walk does not dedupe by identity.
func Walk (n *Node, visit func (*Node)) {
	if n == nil {
		return
	}
	visit(n)
	for _, c := range n.Children() {
		Walk(c, visit)
	}
}
