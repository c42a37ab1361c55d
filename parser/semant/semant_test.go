package semant

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/walres/wrparsecxx/token"
)

func kw (k token.Kind, spelling string) *token.Token {
	return token.New(k, spelling, "t.cpp", 0, 1, 1)
}

func TestDeclSpecifierFolderSimpleType (t *testing.T) {
	f := NewDeclSpecifierFolder(kw(token.KW_INT, "int"), nil)
	assert.True(t, f.AddSimpleTypeSpecifier(kw(token.KW_INT, "int"), true))
	assert.Equal(t, Int, f.Result().Type)
}

func TestDeclSpecifierFolderUnsignedLong (t *testing.T) {
	f := NewDeclSpecifierFolder(kw(token.KW_UNSIGNED, "unsigned"), nil)
	assert.True(t, f.AddSimpleTypeSpecifier(kw(token.KW_UNSIGNED, "unsigned"), true))
	assert.True(t, f.AddSimpleTypeSpecifier(kw(token.KW_LONG, "long"), true))
	r := f.Result()
	assert.Equal(t, Unsigned, r.Sign)
	assert.Equal(t, Long, r.Size)
}

func TestDeclSpecifierFolderLongLongRequiresFeature (t *testing.T) {
	var diagCount int
	f := NewDeclSpecifierFolder(kw(token.KW_LONG, "long"), func (err error) { diagCount++ })
	f.AddSimpleTypeSpecifier(kw(token.KW_LONG, "long"), true)
	f.AddSimpleTypeSpecifier(kw(token.KW_LONG, "long"), false)
	assert.Equal(t, 1, diagCount)
	assert.Equal(t, Long, f.Result().Size) // rejected, size stays at "long"
}

func TestDeclSpecifierFolderDuplicateSign (t *testing.T) {
	var diagCount int
	f := NewDeclSpecifierFolder(kw(token.KW_SIGNED, "signed"), func (err error) { diagCount++ })
	f.AddSimpleTypeSpecifier(kw(token.KW_SIGNED, "signed"), true)
	f.AddSimpleTypeSpecifier(kw(token.KW_UNSIGNED, "unsigned"), true)
	assert.Equal(t, 1, diagCount)
}

func TestDeclSpecifierFolderShortRequiresInt (t *testing.T) {
	var diagCount int
	f := NewDeclSpecifierFolder(kw(token.KW_DOUBLE, "double"), func (err error) { diagCount++ })
	f.AddSimpleTypeSpecifier(kw(token.KW_DOUBLE, "double"), true)
	f.AddSimpleTypeSpecifier(kw(token.KW_SHORT, "short"), true)
	assert.Equal(t, 1, diagCount)
}

func TestDeclSpecifierFolderTypeQualifiers (t *testing.T) {
	f := NewDeclSpecifierFolder(kw(token.KW_CONST, "const"), nil)
	f.AddTypeQualifier(kw(token.KW_CONST, "const"))
	f.AddTypeQualifier(kw(token.KW_VOLATILE, "volatile"))
	r := f.Result()
	assert.True(t, r.CVRefQual&CONST != 0)
	assert.True(t, r.CVRefQual&VOLATILE != 0)
	assert.False(t, r.CVRefQual&RESTRICT != 0)
}

func TestDeclSpecifierFolderOtherTypeConflictsWithSignSize (t *testing.T) {
	var diagCount int
	f := NewDeclSpecifierFolder(kw(token.KW_UNSIGNED, "unsigned"), func (err error) { diagCount++ })
	f.AddSimpleTypeSpecifier(kw(token.KW_UNSIGNED, "unsigned"), true)
	ok := f.AddOtherTypeSpecifier(nil)
	assert.True(t, ok)
	assert.Equal(t, 1, diagCount)
	assert.Equal(t, Other, f.Result().Type)
}

func TestDeclSpecifierFolderConflictingOtherType (t *testing.T) {
	f := NewDeclSpecifierFolder(kw(token.KW_INT, "int"), nil)
	assert.True(t, f.AddSimpleTypeSpecifier(kw(token.KW_INT, "int"), true))
	assert.False(t, f.AddOtherTypeSpecifier(nil))
}

func TestDeclaratorValidatorReferenceToReference (t *testing.T) {
	var diagCount int
	v := NewDeclaratorValidator(kw(token.AMP, "&"), func (err error) { diagCount++ })
	v.AddPtrOperator(kw(token.AMP, "&"))
	v.AddPtrOperator(kw(token.AMP, "&"))
	assert.Equal(t, 1, diagCount)
}

func TestDeclaratorValidatorPointerAfterReference (t *testing.T) {
	var diagCount int
	v := NewDeclaratorValidator(kw(token.AMP, "&"), func (err error) { diagCount++ })
	v.AddPtrOperator(kw(token.AMP, "&"))
	v.AddPtrOperator(kw(token.STAR, "*"))
	assert.Equal(t, 1, diagCount)
}

func TestDeclaratorValidatorArrayOfReferences (t *testing.T) {
	var diagCount int
	v := NewDeclaratorValidator(kw(token.AMP, "&"), func (err error) { diagCount++ })
	v.AddPtrOperator(kw(token.AMP, "&"))
	v.AddArrayDeclarator()
	assert.Equal(t, 1, diagCount)
	assert.True(t, v.Result().IsArray)
}

func TestDeclaratorValidatorMultipleParameterLists (t *testing.T) {
	var diagCount int
	first := kw(token.LPAREN, "(")
	v := NewDeclaratorValidator(first, func (err error) { diagCount++ })
	v.AddParametersAndQualifiers(first)
	v.AddParametersAndQualifiers(kw(token.LPAREN, "("))
	assert.Equal(t, 1, diagCount)
	assert.Same(t, first, v.Result().BeginParms)
}

func TestDeclaratorValidatorMergeNested (t *testing.T) {
	outer := NewDeclaratorValidator(kw(token.STAR, "*"), nil)
	nestedParms := kw(token.LPAREN, "(")
	outer.MergeNested(Declarator{BeginParms: nestedParms, IsArray: true})
	r := outer.Result()
	assert.Same(t, nestedParms, r.BeginParms)
	assert.True(t, r.IsArray)
}

func TestDeclaratorPartFolderQualifiersAndVariadic (t *testing.T) {
	f := NewDeclaratorPartFolder()
	f.AddQualifier(kw(token.KW_CONST, "const"))
	f.AddRefQualifier(token.AMPAMP)
	f.SetParameterCount(3)
	f.SetVariadic(true)
	r := f.Result()
	assert.True(t, r.CVRefQual&CONST != 0)
	assert.True(t, r.CVRefQual&RVAL_REF != 0)
	assert.Equal(t, 3, r.Count)
	assert.True(t, r.Variadic)
}

func TestApplyTypeRejectsShortLongLongCombination (t *testing.T) {
	samples := []struct {
		first, second token.Kind
		wantDiags     int
	}{
		{token.KW_SHORT, token.KW_DOUBLE, 1},
		{token.KW_LONG, token.KW_BOOL, 1},
		{token.KW_LONG, token.KW_DOUBLE, 0},
	}

	for i, s := range samples {
		name := fmt.Sprintf("sample #%d", i)
		t.Run(name, func (t *testing.T) {
			var diagCount int
			f := NewDeclSpecifierFolder(kw(s.first, "x"), func (err error) { diagCount++ })
			f.AddSimpleTypeSpecifier(kw(s.first, "x"), true)
			f.AddSimpleTypeSpecifier(kw(s.second, "y"), true)
			assert.Equal(t, s.wantDiags, diagCount)
		})
	}
}
