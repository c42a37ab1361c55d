// Package grammar describes the combined C89-C11/C++98-C++17 declaration
// grammar's metadata: the nonterminal id table, dialect-gated alternatives,
// semantic rule tags consumed by the literal engine, and the predicated-
// terminal callback type a host semantic plug-in can replace. The actual
// reduction engine lives in package parser; this package only supplies the
// static table parser consults, per spec §4.E and §1 ("we specify only
// the grammar and the callbacks it must support").
package grammar

import (
	"github.com/walres/wrparsecxx/dialect"
	"github.com/walres/wrparsecxx/token"
)

// Nonterm identifies one grammar nonterminal. The declaration grammar
// proper (§4.E); the expression chain below exists only so far as the
// literal engine (§4.H) needs named rule tags on its productions.
type Nonterm int

const (
	DeclSpecifierSeq Nonterm = iota
	TypeSpecifierSeq
	TrailingTypeSpecifierSeq
	SimpleTypeSpecifier
	TypeQualifier
	OtherTypeSpecifier // class/enum/elaborated/typename/atomic specifiers

	Declarator
	NoptrDeclarator
	NestedDeclarator
	AbstractDeclarator
	PtrOperator
	ParametersAndQualifiers
	ArrayDeclarator
	ParameterDeclarationList
	ParameterDeclaration

	TemplateParameterList
	TemplateArgumentList

	SimpleDeclaration // decl-specifier-seq init-declarator-list(opt) ';'

	// Expression chain carrying named semantic rule tags for the literal
	// engine's operator-aware comparisons (§4.H).
	ConditionalExpression
	LogicalOrExpression
	LogicalAndExpression
	InclusiveOrExpression
	ExclusiveOrExpression
	AndExpression
	EqualityExpression
	RelationalExpression
	ShiftExpression
	AdditiveExpression
	MultiplicativeExpression
	PMExpression
	CastExpression
	UnaryExpression
	PrimaryExpression
)

// SemanticRule names the operator class a grammar alternative belongs to,
// so the literal engine can tell an equality test from a shift without
// re-deriving it from the token kind. RuleNone marks "not an operator
// production" (most of the grammar).
type SemanticRule int

const (
	RuleNone SemanticRule = iota
	RuleEquality
	RuleRelational
	RuleAdditive
	RuleMultiplicative
	RuleShift
	RulePM
)

// DialectPredicate gates a grammar alternative on the active dialect, per
// spec §4.E: "gated-off alternatives are elided at grammar construction."
type DialectPredicate func (*dialect.Options) bool

func IsC (o *dialect.Options) bool   { return o.C() != 0 }
func IsCXX (o *dialect.Options) bool { return o.CXX() != 0 }

func IsC99Plus (o *dialect.Options) bool  { return o.C() >= dialect.C99 }
func IsC11Plus (o *dialect.Options) bool  { return o.C() >= dialect.C11 }
func IsCXX11Plus (o *dialect.Options) bool { return o.CXX() >= dialect.CXX11 }
func IsCXX14Plus (o *dialect.Options) bool { return o.CXX() >= dialect.CXX14 }
func IsCXX17Plus (o *dialect.Options) bool { return o.CXX() >= dialect.CXX17 }

// FeatureGate returns a DialectPredicate true iff the dialect carries
// every bit of mask, letting an alternative gate on e.g. DIGRAPHS directly.
func FeatureGate (mask dialect.Feature) DialectPredicate {
	return func (o *dialect.Options) bool { return o.Have(mask) }
}

// Always is the trivial predicate for ungated alternatives.
func Always (*dialect.Options) bool { return true }

// TerminalPredicate constrains an IDENTIFIER (or other) terminal beyond
// its kind, per spec §4.E: is_final_specifier, is_balanced_token, and the
// name-class family a host semantic plug-in (package hostsem) can replace.
type TerminalPredicate func (*token.Token) bool

// IsFinalSpecifier tests the "identifier that happens to spell 'final'"
// contextual-keyword rule C++11 member-specifiers depend on.
func IsFinalSpecifier (t *token.Token) bool {
	return t.Kind() == token.IDENTIFIER && t.Spelling() == "final"
}

var balancedOpeners = map[token.Kind]token.Kind{
	token.LPAREN: token.RPAREN, token.LSQUARE: token.RSQUARE, token.LBRACE: token.RBRACE,
}

// IsBalancedToken rejects a lone unmatched bracket terminal from standing
// in for a balanced-token-seq element (used inside attribute-argument-
// clauses and similar bracket-delimited constructs).
func IsBalancedToken (t *token.Token) bool {
	for opener, closer := range balancedOpeners {
		if t.Kind() == opener || t.Kind() == closer {
			return false
		}
	}
	return true
}

// Alternative is one dialect-gated production for a Nonterm: the sequence
// of symbols (nonterminals as Nonterm, terminals as token.Kind) is left
// implicit here — package parser's hand-written descent already encodes
// the symbol sequence per production; what this table supplies is the
// cross-cutting metadata every alternative needs: whether it's gated in
// for the active dialect, and which semantic rule tag (if any) it carries.
type Alternative struct {
	Nonterm Nonterm
	Gate    DialectPredicate
	Rule    SemanticRule
}

// declAlternatives is the gated-alternative table for the C/C++
// declaration grammar's dialect-sensitive productions, per spec §4.E's
// key factorings list. parser consults Gated to decide whether a
// production is even tried under the current dialect before attempting it.
var declAlternatives = []Alternative{
	{TrailingTypeSpecifier(), IsCXX11Plus, RuleNone},
	{OtherTypeSpecifier, Always, RuleNone},
	{TemplateArgumentList, IsCXX, RuleNone},
	{TemplateParameterList, IsCXX, RuleNone},
}

// TrailingTypeSpecifier exists only to give the table above a symbol to
// cite for the C++11 trailing-return-type alternative without adding a
// whole nonterminal nobody else references yet.
func TrailingTypeSpecifier () Nonterm { return TrailingTypeSpecifierSeq }

// Gated reports whether any alternative recorded for nonterm is gated in
// under opts. A nonterminal with no recorded alternative is always gated
// in (most of the grammar is dialect-independent).
func Gated (nonterm Nonterm, opts *dialect.Options) bool {
	found := false
	for _, alt := range declAlternatives {
		if alt.Nonterm != nonterm {
			continue
		}
		found = true
		if alt.Gate(opts) {
			return true
		}
	}
	return !found
}

// RuleFor returns the semantic rule tag recorded for nonterm, or RuleNone.
func RuleFor (nonterm Nonterm) SemanticRule {
	for _, alt := range declAlternatives {
		if alt.Nonterm == nonterm && alt.Rule != RuleNone {
			return alt.Rule
		}
	}
	switch nonterm {
	case EqualityExpression:
		return RuleEquality
	case RelationalExpression:
		return RuleRelational
	case AdditiveExpression:
		return RuleAdditive
	case MultiplicativeExpression:
		return RuleMultiplicative
	case ShiftExpression:
		return RuleShift
	case PMExpression:
		return RulePM
	default:
		return RuleNone
	}
}
