// Package literal implements spec §4.H: parsing a numeric or character
// literal's spelling into a typed value, the standard integer-conversion
// rank ordering, best-common-type and convert-to-type arithmetic, and
// literal equivalence under a target type.
package literal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Sign mirrors DeclSpecifier's sign_spec (spec §3).
type Sign int

const (
	SignNone Sign = iota
	Signed
	Unsigned
)

// Size mirrors DeclSpecifier's size_spec.
type Size int

const (
	SizeNone Size = iota
	Short
	Long
	LongLong
)

// Core mirrors DeclSpecifier's type_spec, restricted to the arithmetic
// subset a literal can actually have.
type Core int

const (
	CoreNone Core = iota
	Bool
	Char
	Char16T
	Char32T
	WCharT
	Int
	Float
	Double
	NullptrT
)

// ExprType is the literal engine's (sign, size, core-type) triple, per
// spec §3.
type ExprType struct {
	Sign Sign
	Size Size
	Core Core
}

func (t ExprType) String () string {
	var b strings.Builder
	if t.Sign == Unsigned {
		b.WriteString("unsigned ")
	}
	switch t.Size {
	case Short:
		b.WriteString("short ")
	case Long:
		b.WriteString("long ")
	case LongLong:
		b.WriteString("long long ")
	}
	switch t.Core {
	case Bool:
		b.WriteString("bool")
	case Char:
		b.WriteString("char")
	case Char16T:
		b.WriteString("char16_t")
	case Char32T:
		b.WriteString("char32_t")
	case WCharT:
		b.WriteString("wchar_t")
	case Int:
		b.WriteString("int")
	case Float:
		b.WriteString("float")
	case Double:
		b.WriteString("double")
	case NullptrT:
		b.WriteString("nullptr_t")
	}
	return strings.TrimSpace(b.String())
}

// isFloating reports whether t's active payload is the 'd' (long double)
// field, per spec §3's invariant ("FLOAT/DOUBLE -> d").
func (t ExprType) isFloating () bool { return t.Core == Float || t.Core == Double }

// isArithmetic reports whether t is usable in the best-common-
// type/convert-to-type matrix at all (every Core value this package
// defines is, except CoreNone and NullptrT, which is not an arithmetic type).
func (t ExprType) isArithmetic () bool { return t.Core != CoreNone && t.Core != NullptrT }

// Literal is a tagged arithmetic value: the active payload is determined
// by Type.Core, per spec §3 ("BOOL..NULLPTR_T -> i/u; FLOAT/DOUBLE -> d").
type Literal struct {
	Type ExprType
	I    int64
	U    uint64
	D    float64
}

// rank implements the standard's strict integer-conversion-rank ordering,
// per spec §4.H: bool=0 < char=1 < short=2 < int=3 < long=4 < long long=5,
// with char16_t/char32_t/wchar_t compared by underlying size.
func rank (t ExprType) int {
	switch t.Core {
	case Bool:
		return 0
	case Char:
		return 1
	case Char16T:
		return 2 // underlying size == short
	case WCharT, Char32T:
		return 3 // underlying size == int (this engine's model: 32-bit wchar_t)
	case Int:
		switch t.Size {
		case Short:
			return 2
		case Long:
			return 4
		case LongLong:
			return 5
		default:
			return 3
		}
	default:
		return -1
	}
}

// ErrNoConversion is the sentinel ConvertTo returns for an unreachable
// combination, per spec §4.H.
var ErrNoConversion = fmt.Errorf("no conversion exists for the requested types")

// ParseNumeric parses a DEC/OCT/HEX/BIN_INT_LITERAL or FLOAT_LITERAL
// spelling (single-quote digit separators included) into a Literal, per
// spec §4.H. base is 10/8/16/2 for the integer kinds; isFloat selects the
// float path, which delegates to strconv for the mantissa/exponent scan.
func ParseNumeric (spelling string, base int, isFloat bool) (*Literal, error) {
	clean := strings.ReplaceAll(spelling, "'", "")

	if isFloat {
		return parseFloatLiteral(clean)
	}
	return parseIntLiteral(clean, base)
}

func parseIntLiteral (spelling string, base int) (*Literal, error) {
	digits, suffix := splitIntSuffix(spelling, base)

	val, overflow := accumulate(digits, base)

	unsignedSuffix := strings.ContainsAny(suffix, "uU")
	longCount := strings.Count(strings.ToLower(suffix), "l")

	// A decimal literal with no 'u' suffix that doesn't fit in int64 (including
	// the boundary value val == math.MaxUint64, which never trips accumulate's
	// overflow detection since it fits exactly in uint64) still promotes to
	// unsigned long long rather than wrapping into a negative int64, per the
	// standard's decimal-literal type table.
	tooLargeForSigned := base == 10 && val > uint64(math.MaxInt64)

	var lit Literal
	switch {
	case overflow, tooLargeForSigned:
		lit.Type = ExprType{Sign: Unsigned, Size: LongLong, Core: Int}
		lit.U = val
	case unsignedSuffix:
		lit.Type = ExprType{Sign: Unsigned, Core: Int, Size: sizeForLongCount(longCount)}
		lit.U = val
	default:
		// Narrowest signed type in {int, long, long long} that fits,
		// bumped to unsigned only if a 'u' suffix was present (handled
		// above) -- otherwise nonnegative decimal literals that overflow
		// signed long long still prefer unsigned long long per the
		// standard's literal-type table, covered by the overflow and
		// tooLargeForSigned branches above.
		lit.Type = ExprType{Sign: SignNone, Core: Int, Size: narrowestFit(val, longCount)}
		lit.I = int64(val)
	}
	return &lit, nil
}

func splitIntSuffix (spelling string, base int) (digits, suffix string) {
	prefixLen := 0
	switch base {
	case 16, 2:
		prefixLen = 2 // "0x"/"0X"/"0b"/"0B"
	}
	if prefixLen > len(spelling) {
		prefixLen = 0
	}
	body := spelling[prefixLen:]

	i := len(body)
	for i > 0 {
		c := body[i-1]
		if (c == 'u' || c == 'U' || c == 'l' || c == 'L') {
			i--
			continue
		}
		break
	}
	return spelling[:prefixLen+i], body[i:]
}

func accumulate (digits string, base int) (val uint64, overflow bool) {
	prefixLen := 0
	switch base {
	case 16, 2:
		prefixLen = 2
	}
	if prefixLen > len(digits) {
		prefixLen = 0
	}
	body := digits[prefixLen:]
	if body == "" {
		body = "0"
	}

	for _, c := range body {
		d := hexVal(c)
		if d < 0 || d >= base {
			continue
		}
		next := val*uint64(base) + uint64(d)
		if val != 0 && next/uint64(base) != val {
			overflow = true
		}
		if next < val {
			overflow = true
		}
		val = next
	}
	return val, overflow
}

func hexVal (c rune) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}

func sizeForLongCount (n int) Size {
	switch {
	case n >= 2:
		return LongLong
	case n == 1:
		return Long
	default:
		return SizeNone
	}
}

func narrowestFit (val uint64, minLongCount int) Size {
	size := sizeForLongCount(minLongCount)
	if size == LongLong {
		return size
	}
	if size == SizeNone && val <= 0x7fffffff {
		return SizeNone
	}
	if val <= 0x7fffffffffffffff {
		return Long
	}
	return LongLong
}

func parseFloatLiteral (spelling string) (*Literal, error) {
	suffix := byte(0)
	body := spelling
	if n := len(body); n > 0 {
		switch body[n-1] {
		case 'f', 'F', 'l', 'L':
			suffix = body[n-1]
			body = body[:n-1]
		}
	}

	v, err := strconv.ParseFloat(body, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid floating literal %q: %w", spelling, err)
	}

	core := Double
	if suffix == 'f' || suffix == 'F' {
		core = Float
	}
	return &Literal{Type: ExprType{Core: core}, D: v}, nil
}

// ParseChar parses a character-literal spelling's single character value
// (escape processing has already been applied by the caller, e.g.
// parseCharToken; this takes
// the single decoded code point) into a Literal of the core type implied
// by the literal's prefix, per spec §4.H.
func ParseChar (codePoint rune, core Core) *Literal {
	return &Literal{Type: ExprType{Core: core}, I: int64(codePoint)}
}

// BestCommonType implements spec §4.H's best-common-type rule.
func BestCommonType (a, b *Literal) (ExprType, error) {
	if a.Type == b.Type {
		return a.Type, nil
	}
	if !a.Type.isArithmetic() || !b.Type.isArithmetic() {
		return ExprType{}, fmt.Errorf("%v and %v are not both arithmetic types", a.Type, b.Type)
	}
	if a.Type.isFloating() || b.Type.isFloating() {
		return ExprType{Core: Double, Size: Long}, nil // "long double"
	}

	ra, rb := rank(a.Type), rank(b.Type)
	switch {
	case ra > rb:
		return a.Type, nil
	case rb > ra:
		return b.Type, nil
	default:
		if a.Type.Sign == Unsigned {
			if b.Type.Sign != Unsigned && b.I < 0 {
				return b.Type, nil
			}
			return a.Type, nil
		}
		if b.Type.Sign == Unsigned {
			if a.Type.Sign != Unsigned && a.I < 0 {
				return a.Type, nil
			}
			return b.Type, nil
		}
		return a.Type, nil
	}
}

// ConvertTo implements spec §4.H's full conversion matrix. It returns
// ErrNoConversion for an unreachable combination.
func ConvertTo (lit *Literal, target ExprType) (*Literal, error) {
	if !target.isArithmetic() {
		return nil, ErrNoConversion
	}

	if target.Core == Bool {
		nonzero := false
		switch {
		case lit.Type.isFloating():
			nonzero = lit.D != 0
		case lit.Type.Sign == Unsigned:
			nonzero = lit.U != 0
		default:
			nonzero = lit.I != 0
		}
		v := int64(0)
		if nonzero {
			v = 1
		}
		return &Literal{Type: target, I: v}, nil
	}

	if target.isFloating() {
		var v float64
		switch {
		case lit.Type.isFloating():
			v = lit.D
		case lit.Type.Sign == Unsigned:
			v = float64(lit.U)
		default:
			v = float64(lit.I)
		}
		return &Literal{Type: target, D: v}, nil
	}

	// Integer target.
	var asInt64 int64
	var asUint64 uint64
	switch {
	case lit.Type.isFloating():
		asInt64 = int64(lit.D) // truncation through long long, per spec
		asUint64 = uint64(asInt64)
	case lit.Type.Sign == Unsigned:
		asUint64 = lit.U
		asInt64 = int64(lit.U)
	default:
		asInt64 = lit.I
		asUint64 = uint64(lit.I)
	}

	width := widthBits(target)
	if target.Sign == Unsigned {
		masked := asUint64
		if width < 64 {
			masked &= (uint64(1) << width) - 1
		}
		return &Literal{Type: target, U: masked}, nil
	}

	signedVal := asInt64
	if width < 64 {
		mask := (uint64(1) << width) - 1
		bits := uint64(signedVal) & mask
		if bits&(uint64(1)<<(width-1)) != 0 {
			bits |= ^mask // sign-extend
		}
		signedVal = int64(bits)
	}
	return &Literal{Type: target, I: signedVal}, nil
}

func widthBits (t ExprType) int {
	switch t.Core {
	case Bool:
		return 8
	case Char:
		return 8
	case Char16T:
		return 16
	case Char32T, WCharT:
		return 32
	}
	switch t.Size {
	case Short:
		return 16
	case Long, LongLong:
		return 64
	default:
		return 32
	}
}

// AreEquivalent reports whether a and b convert to target with equal
// payloads, per spec §4.H invariant #9/#10/#11.
func AreEquivalent (a, b *Literal, target ExprType) bool {
	ca, err := ConvertTo(a, target)
	if err != nil {
		return false
	}
	cb, err := ConvertTo(b, target)
	if err != nil {
		return false
	}
	switch {
	case target.Core == Bool:
		return ca.I == cb.I
	case target.isFloating():
		return ca.D == cb.D
	case target.Sign == Unsigned:
		return ca.U == cb.U
	default:
		return ca.I == cb.I
	}
}
