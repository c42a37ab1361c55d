// Package semant implements the post-parse semantic actions spec §4.G
// attaches to decl-specifier-seq and declarator productions: folding a
// sequence of specifier keywords into a normalized (sign, size, core-type,
// cv-ref) tuple, and validating a declarator's shape (at most one
// reference, no pointer-after-reference, at most one parameter list per
// nesting level, no array-of-references).
package semant

import (
	"github.com/walres/wrparsecxx/sppf"
	"github.com/walres/wrparsecxx/token"
	"github.com/walres/wrparsecxx/werrors"
)

// Error codes for this package, per spec §7 ("grammar/semantic" family).
const (
	ErrTypeConflict    = 601
	ErrSignSizeConflict = 602
	ErrDuplicateSign   = 603
	ErrDuplicateSize   = 604
	ErrDeclaratorShape = 605
)

// CVRefQual is the cv/ref qualifier bitset attached to a decl-specifier-seq
// or ptr_operator/parameters_and_qualifiers, per spec §3.
type CVRefQual uint8

const (
	CONST CVRefQual = 1 << iota
	VOLATILE
	RESTRICT
	ATOMIC
	LVAL_REF
	RVAL_REF
)

type SignSpec int

const (
	SignNone SignSpec = iota
	Signed
	Unsigned
)

type SizeSpec int

const (
	SizeNone SizeSpec = iota
	Short
	Long
	LongLong
)

type TypeSpec int

const (
	TypeNone TypeSpec = iota
	Void
	Auto
	Decltype
	Bool
	Char
	Char16T
	Char32T
	WCharT
	Int
	Float
	Double
	NullptrT
	Other
)

// DeclSpecifier is the folded result of a decl-specifier-seq /
// type-specifier-seq / trailing-type-specifier-seq, per spec §3.
type DeclSpecifier struct {
	CVRefQual CVRefQual
	Sign      SignSpec
	Size      SizeSpec
	Type      TypeSpec

	// TypeNode is the SPPF subnode that contributed Type when Type ==
	// Other (a class/enum/elaborated/typename/atomic-type specifier).
	TypeNode *sppf.Node
}

// simpleTypeKeyword classifies a single decl-specifier keyword token into
// the (sign, size, type) triple it contributes, mirroring the reference
// implementation's per-keyword switch.
func simpleTypeKeyword (k token.Kind) (sign SignSpec, size SizeSpec, typ TypeSpec, isCVQual CVRefQual, isType bool) {
	switch k {
	case token.KW_VOID:
		return SignNone, SizeNone, Void, 0, true
	case token.KW_AUTO:
		return SignNone, SizeNone, Auto, 0, true
	case token.KW_DECLTYPE:
		return SignNone, SizeNone, Decltype, 0, true
	case token.KW_BOOL:
		return SignNone, SizeNone, Bool, 0, true
	case token.KW_CHAR:
		return SignNone, SizeNone, Char, 0, true
	case token.KW_CHAR16_T:
		return SignNone, SizeNone, Char16T, 0, true
	case token.KW_CHAR32_T:
		return SignNone, SizeNone, Char32T, 0, true
	case token.KW_WCHAR_T:
		return SignNone, SizeNone, WCharT, 0, true
	case token.KW_INT:
		return SignNone, SizeNone, Int, 0, true
	case token.KW_FLOAT:
		return SignNone, SizeNone, Float, 0, true
	case token.KW_DOUBLE:
		return SignNone, SizeNone, Double, 0, true
	case token.KW_NULLPTR:
		return SignNone, SizeNone, NullptrT, 0, true
	case token.KW_SIGNED:
		return Signed, SizeNone, TypeNone, 0, true
	case token.KW_UNSIGNED:
		return Unsigned, SizeNone, TypeNone, 0, true
	case token.KW_SHORT:
		return SignNone, Short, TypeNone, 0, true
	case token.KW_LONG:
		return SignNone, Long, TypeNone, 0, true
	case token.KW_CONST:
		return 0, 0, 0, CONST, false
	case token.KW_VOLATILE:
		return 0, 0, 0, VOLATILE, false
	case token.KW_RESTRICT:
		return 0, 0, 0, RESTRICT, false
	case token.KW_ATOMIC:
		return 0, 0, 0, ATOMIC, false
	default:
		return 0, 0, 0, 0, false
	}
}

// DeclSpecifierFolder walks a decl-specifier-seq's immediate children left
// to right, applying spec §4.G's conflict rules one token at a time.
type DeclSpecifierFolder struct {
	result DeclSpecifier
	diags  func (err error)
	pos    werrors.SourcePos
}

func NewDeclSpecifierFolder (pos werrors.SourcePos, diags func (err error)) *DeclSpecifierFolder {
	return &DeclSpecifierFolder{pos: pos, diags: diags}
}

func (f *DeclSpecifierFolder) emit (code int, msg string, params ...interface{}) {
	if f.diags != nil {
		f.diags(werrors.FormatPos(f.pos, code, msg, params...))
	}
}

// AddTypeQualifier folds a type-qualifier token (const/volatile/restrict/
// _Atomic) into the running CVRefQual bitset.
func (f *DeclSpecifierFolder) AddTypeQualifier (t *token.Token) {
	_, _, _, q, _ := simpleTypeKeyword(t.Kind())
	f.result.CVRefQual |= q
}

// AddRefQualifier folds a trailing & / && ref-qualifier (function
// declarators, not decl-specifiers, but the bit lives in the same set).
func (f *DeclSpecifierFolder) AddRefQualifier (k token.Kind) {
	switch k {
	case token.AMP:
		f.result.CVRefQual |= LVAL_REF
	case token.AMPAMP:
		f.result.CVRefQual |= RVAL_REF
	}
}

// AddSimpleTypeSpecifier folds one simple-type-specifier keyword (void,
// auto, bool, char, int, float, double, nullptr_t, signed, unsigned,
// short, long), applying the exact conflict rules of spec §4.G. It
// returns false iff the engine must reject the whole decl-specifier-seq
// alternative (a conflicting OTHER type specifier), mirroring the
// reference action's bool return.
func (f *DeclSpecifierFolder) AddSimpleTypeSpecifier (t *token.Token, longLongFeature bool) bool {
	sign, size, typ, _, isType := simpleTypeKeyword(t.Kind())
	if !isType {
		return true
	}

	switch {
	case typ != TypeNone:
		return f.applyType(t, typ)
	case sign != SignNone:
		return f.applySign(t, sign)
	case size == Short:
		return f.applySize(t, Short)
	case size == Long:
		return f.applyLong(t, longLongFeature)
	}
	return true
}

func (f *DeclSpecifierFolder) applyType (t *token.Token, typ TypeSpec) bool {
	if f.result.Type != TypeNone && f.result.Type != typ {
		if typ == Other {
			f.emit(ErrTypeConflict, "%q conflicts with earlier type specifier", t.Spelling())
			return false
		}
		f.emit(ErrTypeConflict, "%q conflicts with earlier type specifier", t.Spelling())
		return true
	}
	if (f.result.Size == Short || f.result.Size == LongLong) && typ != Int {
		f.emit(ErrSignSizeConflict, "short/long long requires int, not %q", t.Spelling())
		return true
	}
	if f.result.Size == Long && typ != Int && typ != Double {
		f.emit(ErrSignSizeConflict, "long requires int or double, not %q", t.Spelling())
		return true
	}
	if f.result.Sign != SignNone && typ != Char && typ != Int {
		f.emit(ErrSignSizeConflict, "signed/unsigned requires char or int, not %q", t.Spelling())
		return true
	}
	f.result.Type = typ
	return true
}

func (f *DeclSpecifierFolder) applySign (t *token.Token, sign SignSpec) bool {
	if f.result.Type != TypeNone && f.result.Type != Char && f.result.Type != Int {
		f.emit(ErrSignSizeConflict, "%q requires char or int, not %v", t.Spelling(), f.result.Type)
		return true
	}
	if f.result.Sign != SignNone && f.result.Sign != sign {
		f.emit(ErrDuplicateSign, "duplicate sign specifier %q", t.Spelling())
		return true
	}
	f.result.Sign = sign
	return true
}

func (f *DeclSpecifierFolder) applySize (t *token.Token, size SizeSpec) bool {
	if f.result.Type != TypeNone && f.result.Type != Int {
		f.emit(ErrSignSizeConflict, "%q requires int, not %v", t.Spelling(), f.result.Type)
		return true
	}
	if f.result.Size != SizeNone && f.result.Size != size {
		f.emit(ErrDuplicateSize, "duplicate size specifier %q", t.Spelling())
		return true
	}
	f.result.Size = size
	return true
}

func (f *DeclSpecifierFolder) applyLong (t *token.Token, longLongFeature bool) bool {
	switch f.result.Size {
	case Long:
		if !longLongFeature {
			f.emit(ErrSignSizeConflict, "long long requires the long-long feature")
			return true
		}
		f.result.Size = LongLong
	case LongLong:
		f.emit(ErrDuplicateSize, "duplicate long specifier")
	case SizeNone:
		if f.result.Type != TypeNone && f.result.Type != Int && f.result.Type != Double {
			f.emit(ErrSignSizeConflict, "long requires int or double, not %v", f.result.Type)
			return true
		}
		f.result.Size = Long
	default:
		f.emit(ErrSignSizeConflict, "long conflicts with short")
	}
	return true
}

// AddOtherTypeSpecifier folds a class/enum/elaborated-type/typename/
// atomic-type specifier subtree. Reports an error (and still returns
// true) if a sign/size specifier was already set; returns false, without
// a diagnostic, if a different type specifier was already set.
func (f *DeclSpecifierFolder) AddOtherTypeSpecifier (node *sppf.Node) bool {
	if f.result.Sign != SignNone || f.result.Size != SizeNone {
		f.emit(ErrSignSizeConflict, "type name conflicts with earlier sign/size specifier")
	}
	if f.result.Type != TypeNone && f.result.Type != Other {
		return false
	}
	f.result.Type = Other
	f.result.TypeNode = node
	return true
}

// Result returns the folded DeclSpecifier. The engine attaches it to the
// completed decl-specifier-seq/type-specifier-seq/trailing-type-specifier-
// seq node via sppf.Node.SetAux(sppf.DeclSpecifierAux, ...).
func (f *DeclSpecifierFolder) Result () DeclSpecifier { return f.result }
