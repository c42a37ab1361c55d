package literal

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumericDecimal (t *testing.T) {
	lit, err := ParseNumeric("42", 10, false)
	assert.NoError(t, err)
	assert.Equal(t, ExprType{Core: Int}, lit.Type)
	assert.Equal(t, int64(42), lit.I)
}

func TestParseNumericUnsignedSuffix (t *testing.T) {
	lit, err := ParseNumeric("42u", 10, false)
	assert.NoError(t, err)
	assert.Equal(t, Unsigned, lit.Type.Sign)
	assert.Equal(t, uint64(42), lit.U)
}

func TestParseNumericLongLongSuffix (t *testing.T) {
	lit, err := ParseNumeric("5ll", 10, false)
	assert.NoError(t, err)
	assert.Equal(t, LongLong, lit.Type.Size)
	assert.Equal(t, int64(5), lit.I)
}

func TestParseNumericHexAndBin (t *testing.T) {
	lit, err := ParseNumeric("0xFF", 16, false)
	assert.NoError(t, err)
	assert.Equal(t, int64(255), lit.I)

	lit, err = ParseNumeric("0b101", 2, false)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), lit.I)
}

func TestParseNumericDigitSeparators (t *testing.T) {
	lit, err := ParseNumeric("1'000'000", 10, false)
	assert.NoError(t, err)
	assert.Equal(t, int64(1000000), lit.I)
}

func TestParseNumericOverflowPromotesToUnsignedLongLong (t *testing.T) {
	lit, err := ParseNumeric("18446744073709551616", 10, false) // 2^64, overflows uint64
	assert.NoError(t, err)
	assert.Equal(t, Unsigned, lit.Type.Sign)
	assert.Equal(t, LongLong, lit.Type.Size)
}

func TestParseNumericMaxUint64PromotesToUnsignedLongLong (t *testing.T) {
	// 2^64-1 fits exactly in uint64, so accumulate never sets its overflow
	// flag; the type must still promote to unsigned rather than reinterpret
	// the bit pattern as a negative int64.
	lit, err := ParseNumeric("18446744073709551615", 10, false)
	assert.NoError(t, err)
	assert.Equal(t, Unsigned, lit.Type.Sign)
	assert.Equal(t, LongLong, lit.Type.Size)
	assert.Equal(t, uint64(18446744073709551615), lit.U)
}

func TestParseNumericFloat (t *testing.T) {
	lit, err := ParseNumeric("3.5", 10, true)
	assert.NoError(t, err)
	assert.Equal(t, Double, lit.Type.Core)
	assert.Equal(t, 3.5, lit.D)

	lit, err = ParseNumeric("3.5f", 10, true)
	assert.NoError(t, err)
	assert.Equal(t, Float, lit.Type.Core)
}

func TestParseChar (t *testing.T) {
	lit := ParseChar('A', Char)
	assert.Equal(t, Char, lit.Type.Core)
	assert.Equal(t, int64(65), lit.I)
}

func TestRankOrdering (t *testing.T) {
	assert.True(t, rank(ExprType{Core: Bool}) < rank(ExprType{Core: Char}))
	assert.True(t, rank(ExprType{Core: Char}) < rank(ExprType{Core: Int, Size: Short}))
	assert.True(t, rank(ExprType{Core: Int, Size: Short}) < rank(ExprType{Core: Int}))
	assert.True(t, rank(ExprType{Core: Int}) < rank(ExprType{Core: Int, Size: Long}))
	assert.True(t, rank(ExprType{Core: Int, Size: Long}) < rank(ExprType{Core: Int, Size: LongLong}))
}

func TestBestCommonType (t *testing.T) {
	intLit := &Literal{Type: ExprType{Core: Int}, I: 1}
	longLit := &Literal{Type: ExprType{Core: Int, Size: Long}, I: 2}
	floatLit := &Literal{Type: ExprType{Core: Double}, D: 1.5}
	unsignedLit := &Literal{Type: ExprType{Core: Int, Sign: Unsigned}, U: 3}

	got, err := BestCommonType(intLit, longLit)
	assert.NoError(t, err)
	assert.Equal(t, longLit.Type, got)

	got, err = BestCommonType(intLit, floatLit)
	assert.NoError(t, err)
	assert.Equal(t, ExprType{Core: Double, Size: Long}, got)

	got, err = BestCommonType(intLit, unsignedLit)
	assert.NoError(t, err)
	assert.Equal(t, unsignedLit.Type, got)
}

func TestBestCommonTypeRejectsNullptr (t *testing.T) {
	a := &Literal{Type: ExprType{Core: NullptrT}}
	b := &Literal{Type: ExprType{Core: Int}}
	_, err := BestCommonType(a, b)
	assert.Error(t, err)
}

func TestConvertToBool (t *testing.T) {
	lit := &Literal{Type: ExprType{Core: Int}, I: 5}
	got, err := ConvertTo(lit, ExprType{Core: Bool})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), got.I)

	zero := &Literal{Type: ExprType{Core: Int}, I: 0}
	got, err = ConvertTo(zero, ExprType{Core: Bool})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), got.I)
}

func TestConvertToNarrowingSignExtends (t *testing.T) {
	lit := &Literal{Type: ExprType{Core: Int}, I: -1}
	got, err := ConvertTo(lit, ExprType{Core: Char})
	assert.NoError(t, err)
	assert.Equal(t, int64(-1), got.I)
}

func TestConvertToFloat (t *testing.T) {
	lit := &Literal{Type: ExprType{Core: Int}, I: 4}
	got, err := ConvertTo(lit, ExprType{Core: Double})
	assert.NoError(t, err)
	assert.Equal(t, 4.0, got.D)
}

func TestConvertToRejectsNullptrTarget (t *testing.T) {
	lit := &Literal{Type: ExprType{Core: Int}, I: 1}
	_, err := ConvertTo(lit, ExprType{Core: NullptrT})
	assert.ErrorIs(t, err, ErrNoConversion)
}

func TestAreEquivalent (t *testing.T) {
	samples := []struct {
		a, b   *Literal
		target ExprType
		want   bool
	}{
		{
			&Literal{Type: ExprType{Core: Int}, I: 1},
			&Literal{Type: ExprType{Core: Int, Size: Long}, I: 1},
			ExprType{Core: Int, Size: Long},
			true,
		},
		{
			&Literal{Type: ExprType{Core: Int}, I: 1},
			&Literal{Type: ExprType{Core: Int}, I: 2},
			ExprType{Core: Int},
			false,
		},
		{
			&Literal{Type: ExprType{Core: Double}, D: 1.0},
			&Literal{Type: ExprType{Core: Int}, I: 1},
			ExprType{Core: Double},
			true,
		},
	}

	for i, s := range samples {
		name := fmt.Sprintf("sample #%d", i)
		t.Run(name, func (t *testing.T) {
			assert.Equal(t, s.want, AreEquivalent(s.a, s.b, s.target))
		})
	}
}

func TestExprTypeString (t *testing.T) {
	assert.Equal(t, "unsigned long long int", ExprType{Sign: Unsigned, Size: LongLong, Core: Int}.String())
	assert.Equal(t, "int", ExprType{Core: Int}.String())
	assert.Equal(t, "double", ExprType{Core: Double}.String())
}
