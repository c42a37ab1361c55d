package semant

import (
	"github.com/walres/wrparsecxx/token"
	"github.com/walres/wrparsecxx/werrors"
)

// Declarator is the folded result attached to a completed declarator /
// nested / abstract / new / conversion / lambda declarator, per spec §3.
type Declarator struct {
	// LastPtr points at the rightmost '*'/'&'/'&&'/'X::*' token directly
	// under this declarator (not inside a nested declarator).
	LastPtr *token.Token
	// BeginParms points at the first token of the innermost parameter
	// list, if this declarator is a function declarator.
	BeginParms *token.Token
	IsArray    bool
}

// DeclaratorPart is the folded result attached to a ptr_operator or
// parameters_and_qualifiers node, per spec §3.
type DeclaratorPart struct {
	CVRefQual CVRefQual
	Count     int
	Variadic  bool
}

// DeclaratorValidator walks a declarator's immediate children left to
// right, per spec §4.G, reporting each error at most once per declarator
// and continuing validation afterward.
type DeclaratorValidator struct {
	result        Declarator
	diags         func (err error)
	pos           werrors.SourcePos
	sawReference  bool
	sawParms      bool
	reportedRefRef, reportedPtrAfterRef, reportedMultiParms, reportedArrayRef bool
}

func NewDeclaratorValidator (pos werrors.SourcePos, diags func (err error)) *DeclaratorValidator {
	return &DeclaratorValidator{pos: pos, diags: diags}
}

func (v *DeclaratorValidator) emit (msg string, params ...interface{}) {
	if v.diags != nil {
		v.diags(werrors.FormatPos(v.pos, ErrDeclaratorShape, msg, params...))
	}
}

// AddPtrOperator folds one ptr_operator token directly under this
// declarator (a real pointer/reference, not one found while recursing
// into a nested declarator -- callers recurse separately via Nested).
func (v *DeclaratorValidator) AddPtrOperator (t *token.Token) {
	isRef := t.Kind() == token.AMP || t.Kind() == token.AMPAMP

	switch {
	case isRef && v.sawReference && !v.reportedRefRef:
		v.emit("reference to reference is not allowed")
		v.reportedRefRef = true
	case !isRef && v.sawReference && !v.reportedPtrAfterRef:
		v.emit("pointer cannot appear after a reference in the same declarator")
		v.reportedPtrAfterRef = true
	}

	if isRef {
		v.sawReference = true
	}
	v.result.LastPtr = t
}

// AddParametersAndQualifiers folds one parameters_and_qualifiers
// (function-parameter-list) node at this declarator's nesting level.
func (v *DeclaratorValidator) AddParametersAndQualifiers (first *token.Token) {
	if v.sawParms && !v.reportedMultiParms {
		v.emit("declarator has more than one parameter list at the same nesting level")
		v.reportedMultiParms = true
	}
	v.sawParms = true
	if v.result.BeginParms == nil {
		v.result.BeginParms = first
	}
}

// AddArrayDeclarator folds one array_declarator ('[' ... ']') at this
// declarator's nesting level.
func (v *DeclaratorValidator) AddArrayDeclarator () {
	if v.sawReference && !v.reportedArrayRef {
		v.emit("array of references is not allowed")
		v.reportedArrayRef = true
	}
	v.result.IsArray = true
}

// MergeNested folds a recursively-validated nested declarator's own
// result up into this one: its rightmost pointer/reference and function
// parameter list still belong to the outer declarator for the purposes of
// invariant #7 ("last_ptr points at the rightmost ... directly under it,
// not inside a nested declarator") only when accessed through the nested
// node itself -- MergeNested exists so BeginParms/IsArray still propagate
// for declarators like "int (*f)(int)" where the parameter list hangs off
// the nested form.
func (v *DeclaratorValidator) MergeNested (nested Declarator) {
	if nested.BeginParms != nil && v.result.BeginParms == nil {
		v.result.BeginParms = nested.BeginParms
	}
	v.result.IsArray = v.result.IsArray || nested.IsArray
}

func (v *DeclaratorValidator) Result () Declarator { return v.result }

// DeclaratorPartFolder folds a single ptr_operator's trailing cv-qualifier
// list, or a parameters_and_qualifiers' parameter count/variadic/trailing
// cv-ref qualifiers, per spec §4.G.
type DeclaratorPartFolder struct {
	result DeclaratorPart
}

func NewDeclaratorPartFolder () *DeclaratorPartFolder { return &DeclaratorPartFolder{} }

func (f *DeclaratorPartFolder) AddQualifier (t *token.Token) {
	_, _, _, q, _ := simpleTypeKeyword(t.Kind())
	f.result.CVRefQual |= q
}

func (f *DeclaratorPartFolder) AddRefQualifier (k token.Kind) {
	switch k {
	case token.AMP:
		f.result.CVRefQual |= LVAL_REF
	case token.AMPAMP:
		f.result.CVRefQual |= RVAL_REF
	}
}

// SetParameterCount records a parameter list's parameter count: 0 for an
// empty list, 1 for an unchunked single parameter-declaration, or the
// comma-separated count otherwise, per spec §4.G.
func (f *DeclaratorPartFolder) SetParameterCount (n int) { f.result.Count = n }

// SetVariadic records whether the parameter list ends in '...'.
func (f *DeclaratorPartFolder) SetVariadic (v bool) { f.result.Variadic = v }

func (f *DeclaratorPartFolder) Result () DeclaratorPart { return f.result }
