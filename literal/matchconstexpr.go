package literal

import (
	"github.com/walres/wrparsecxx/sppf"
	"github.com/walres/wrparsecxx/token"
)

// stripParens unwraps a "( expr )" production's outer layers, repeatedly,
// per spec §4.H.
func stripParens (n *sppf.Node) *sppf.Node {
	for n != nil && n.IsNonterminal() {
		kids := n.Children()
		if len(kids) != 3 {
			break
		}
		if !kids[0].IsTerminal() || kids[0].Token().Kind() != token.LPAREN {
			break
		}
		if !kids[2].IsTerminal() || kids[2].Token().Kind() != token.RPAREN {
			break
		}
		n = kids[1]
	}
	return n
}

// asLiteral reports whether n, after paren-stripping, is a single literal
// terminal, returning its parsed value.
func asLiteral (n *sppf.Node) (*Literal, bool) {
	n = stripParens(n)
	if n == nil || !n.IsTerminal() {
		return nil, false
	}
	return FromToken(n.Token())
}

// MatchConstExpr strips outer "(...)" layers from both sides and, when
// both are literals, delegates to AreEquivalent under target. Anything
// non-literal at either side returns false, per spec §4.H.
func MatchConstExpr (a, b *sppf.Node, target ExprType) bool {
	la, ok := asLiteral(a)
	if !ok {
		return false
	}
	lb, ok := asLiteral(b)
	if !ok {
		return false
	}
	return AreEquivalent(la, lb, target)
}
