package token

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindRangesPartition (t *testing.T) {
	assert.True(t, IsPunctuation(LPAREN))
	assert.True(t, IsPunctuation(COLONCOLON))
	assert.False(t, IsPunctuation(KW_AUTO))

	assert.True(t, IsKeyword(KW_ALIGNAS))
	assert.True(t, IsKeyword(KW_WHILE))
	assert.False(t, IsKeyword(IDENTIFIER))

	assert.True(t, IsMultiSpelling(IDENTIFIER))
	assert.True(t, IsMultiSpelling(PP_NUMBER))
	assert.False(t, IsMultiSpelling(PP_INCLUDE))

	assert.True(t, IsPreprocessorDirective(PP_INCLUDE))
	assert.True(t, IsPreprocessorDirective(PP_NULL))
	assert.False(t, IsPreprocessorDirective(PP_NUMBER))

	assert.True(t, IsPreprocessorToken(PP_NUMBER))
	assert.True(t, IsPreprocessorToken(PP_DEFINE))
	assert.False(t, IsPreprocessorToken(IDENTIFIER))
}

func TestIsDeclSpecifier (t *testing.T) {
	samples := []struct {
		kind Kind
		want bool
	}{
		{KW_INT, true},
		{KW_STRUCT, true},
		{KW_STATIC, true},
		{KW_VOID, true},
		{KW_CLASS, true},
		{KW_IF, false},
		{IDENTIFIER, false},
		{LPAREN, false},
	}

	for i, s := range samples {
		name := fmt.Sprintf("sample #%d", i)
		t.Run(name, func (t *testing.T) {
			assert.Equal(t, s.want, IsDeclSpecifier(s.kind))
		})
	}
}

func TestStringAndDefaultSpelling (t *testing.T) {
	assert.Equal(t, "KW_ALIGNAS", KW_ALIGNAS.String())
	assert.Equal(t, "alignas", DefaultSpelling(KW_ALIGNAS))
	assert.Equal(t, "(", DefaultSpelling(LPAREN))
	assert.Equal(t, "", DefaultSpelling(IDENTIFIER))
	assert.Equal(t, "EOF", EOF.String())
	assert.Equal(t, "UNKNOWN", Kind(99999).String())
}

func TestTokenLinkSplicesList (t *testing.T) {
	a := New(LPAREN, "(", "t.cpp", 0, 1, 1)
	c := New(RPAREN, ")", "t.cpp", 2, 1, 3)
	a.Link(c)

	b := New(IDENTIFIER, "x", "t.cpp", 1, 1, 2)
	a.Link(b)

	assert.Equal(t, b, a.Next())
	assert.Equal(t, c, b.Next())
	assert.Equal(t, b, c.Prev())
	assert.Equal(t, a, b.Prev())
}

func TestFlagsHas (t *testing.T) {
	f := STARTS_LINE | SPACE_BEFORE
	assert.True(t, f.Has(STARTS_LINE))
	assert.True(t, f.Has(SPACE_BEFORE))
	assert.True(t, f.Has(STARTS_LINE|SPACE_BEFORE))
	assert.False(t, f.Has(ALTERNATE))
}
