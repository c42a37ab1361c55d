package dialect

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/walres/wrparsecxx/token"
)

func TestNewRequiresALanguage (t *testing.T) {
	_, err := New(0, 0, 0)
	assert.Error(t, err)
}

func TestNewResolvesPerStandardDefaults (t *testing.T) {
	o, err := New(C11, 0, 0)
	assert.NoError(t, err)
	assert.True(t, o.Have(UCNS))
	assert.True(t, o.Have(LONG_LONG))
	assert.True(t, o.Have(TRIGRAPHS))

	o, err = New(C89, 0, 0)
	assert.NoError(t, err)
	assert.False(t, o.Have(UCNS))
	assert.False(t, o.Have(LONG_LONG))
}

func TestCXX17DropsTrigraphs (t *testing.T) {
	o, err := New(0, CXX17, 0)
	assert.NoError(t, err)
	assert.False(t, o.Have(TRIGRAPHS))
	assert.True(t, o.Have(UTF8_CHAR_LITERALS))
	assert.True(t, o.Have(HEX_FLOAT_LITERALS))
}

func TestUTF8CharLiteralsRequireC11OrCXX11 (t *testing.T) {
	_, err := New(C99, 0, UTF8_CHAR_LITERALS)
	assert.Error(t, err)

	_, err = New(C11, 0, UTF8_CHAR_LITERALS)
	assert.NoError(t, err)

	_, err = New(0, CXX03, UTF8_CHAR_LITERALS)
	assert.Error(t, err)

	_, err = New(0, CXX11, UTF8_CHAR_LITERALS)
	assert.NoError(t, err)
}

func TestKeywordTableUnionsBothLanguages (t *testing.T) {
	o, err := New(C11, CXX11, 0)
	assert.NoError(t, err)
	kw := o.Keywords()
	assert.Equal(t, token.KW_INT, kw["int"])
	assert.Equal(t, token.KW_CLASS, kw["class"])
	assert.Equal(t, token.KW_NULLPTR, kw["nullptr"])
	assert.Equal(t, token.KW_ALIGNAS, kw["_Alignas"])
}

func TestKeywordsReturnsACopy (t *testing.T) {
	o, err := New(C99, 0, 0)
	assert.NoError(t, err)
	kw := o.Keywords()
	kw["int"] = token.KW_AUTO
	assert.Equal(t, token.KW_INT, o.Keywords()["int"])
}

func TestCXX98AlternateTokenSpellings (t *testing.T) {
	o, err := New(0, CXX98, 0)
	assert.NoError(t, err)
	kw := o.Keywords()
	assert.Equal(t, token.AMPAMP, kw["and"])
	assert.Equal(t, token.AMP, kw["bitand"])
}

func TestParseStandard (t *testing.T) {
	samples := []struct {
		name string
		want Standard
		ok   bool
	}{
		{"c89", C89, true},
		{"C11", C11, true},
		{"c++17", CXX17, true},
		{"C++17", CXX17, false}, // C++ names are case-sensitive
		{"c++1z", CXX17, true},
		{"nonsense", 0, false},
	}

	for i, s := range samples {
		name := fmt.Sprintf("sample #%d", i)
		t.Run(name, func (t *testing.T) {
			got, err := ParseStandard(s.name)
			if !s.ok {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, s.want, got)
		})
	}
}

func TestParseLanguage (t *testing.T) {
	isCXX, err := ParseLanguage("c")
	assert.NoError(t, err)
	assert.False(t, isCXX)

	isCXX, err = ParseLanguage("C++")
	assert.NoError(t, err)
	assert.True(t, isCXX)

	_, err = ParseLanguage("rust")
	assert.Error(t, err)
}
