package lexer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/walres/wrparsecxx/csource"
	"github.com/walres/wrparsecxx/dialect"
	"github.com/walres/wrparsecxx/token"
)

func newLexer (t *testing.T, src string, cStd, cxxStd dialect.Standard, features dialect.Feature) *Lexer {
	opts, err := dialect.New(cStd, cxxStd, features)
	if err != nil {
		t.Fatalf("dialect.New: %v", err)
	}
	s, err := csource.New("t.cpp", strings.NewReader(src))
	if err != nil {
		t.Fatalf("csource.New: %v", err)
	}
	return New(opts, s, func (err error) { t.Logf("diag: %v", err) })
}

func lexAll (l *Lexer) []*token.Token {
	var out []*token.Token
	for {
		tok := l.Lex()
		out = append(out, tok)
		if tok.Kind() == token.EOF {
			return out
		}
	}
}

func kinds (toks []*token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind()
	}
	return out
}

func TestLexSimplePunctuationAndKeyword (t *testing.T) {
	l := newLexer(t, "int x;", dialect.C11, 0, 0)
	toks := lexAll(l)
	assert.Equal(t, []token.Kind{token.KW_INT, token.IDENTIFIER, token.SEMI, token.EOF}, kinds(toks))
	assert.Equal(t, "x", toks[1].Spelling())
}

func TestLexTrigraphs (t *testing.T) {
	l := newLexer(t, "??<??>", dialect.C89, 0, dialect.TRIGRAPHS)
	toks := lexAll(l)
	assert.Equal(t, []token.Kind{token.LBRACE, token.RBRACE, token.EOF}, kinds(toks))
}

func TestLexTrigraphsDisabled (t *testing.T) {
	l := newLexer(t, "??<", 0, dialect.CXX17, 0)
	toks := lexAll(l)
	assert.NotEqual(t, token.LBRACE, toks[0].Kind())
}

func TestLexLineSplicing (t *testing.T) {
	l := newLexer(t, "int x\\\n = 1;", dialect.C11, 0, 0)
	toks := lexAll(l)
	assert.Equal(t, []token.Kind{token.KW_INT, token.IDENTIFIER, token.EQUAL, token.DEC_INT_LITERAL, token.SEMI, token.EOF}, kinds(toks))
}

func TestLexDigraphs (t *testing.T) {
	l := newLexer(t, "<: :> <% %>", dialect.C11, 0, dialect.DIGRAPHS)
	toks := lexAll(l)
	assert.Equal(t, []token.Kind{token.LSQUARE, token.RSQUARE, token.LBRACE, token.RBRACE, token.EOF}, kinds(toks))
	assert.True(t, toks[0].Flags().Has(token.ALTERNATE))
}

func TestLexDigraphsDisabled (t *testing.T) {
	l := newLexer(t, "<:", dialect.C11, 0, 0)
	toks := lexAll(l)
	assert.Equal(t, token.LESS, toks[0].Kind())
	assert.Equal(t, token.COLON, toks[1].Kind())
}

func TestLexColonColonBeatsDigraph (t *testing.T) {
	// a<::b> should not lex "<:" as a digraph when a "::" follows, per the
	// C++11 disambiguation rule this is grounded on.
	l := newLexer(t, "a<::b>", 0, dialect.CXX11, dialect.DIGRAPHS)
	toks := lexAll(l)
	assert.Equal(t, []token.Kind{token.IDENTIFIER, token.LESS, token.COLONCOLON, token.IDENTIFIER, token.GREATER, token.EOF}, kinds(toks))
}

func TestLexRawStringLiteral (t *testing.T) {
	l := newLexer(t, `R"delim(hello ) world)delim"`, 0, dialect.CXX11, 0)
	toks := lexAll(l)
	assert.Equal(t, token.STR_LITERAL, toks[0].Kind())
	assert.Equal(t, `R"delim(hello ) world)delim"`, toks[0].Spelling())
}

func TestLexLineCommentsFeature (t *testing.T) {
	l := newLexer(t, "int x; // trailing\nint y;", dialect.C11, 0, dialect.LINE_COMMENTS)
	toks := lexAll(l)
	assert.Equal(t, []token.Kind{token.KW_INT, token.IDENTIFIER, token.SEMI, token.KW_INT, token.IDENTIFIER, token.SEMI, token.EOF}, kinds(toks))
}

func TestLexBlockComment (t *testing.T) {
	l := newLexer(t, "int /* c */ x;", dialect.C11, 0, 0)
	toks := lexAll(l)
	assert.Equal(t, []token.Kind{token.KW_INT, token.IDENTIFIER, token.SEMI, token.EOF}, kinds(toks))
}

func TestLexUniversalCharacterName (t *testing.T) {
	l := newLexer(t, "\\u00e9x = 1;", dialect.C11, 0, dialect.UCNS)
	toks := lexAll(l)
	assert.Equal(t, token.IDENTIFIER, toks[0].Kind())
}

func TestLexIncompleteUCNBacktracksConsumedDigits (t *testing.T) {
	// "\u12 x" has a \u escape with only 2 of the required 4 hex digits.
	// The marker and the two digits it did read must still be available
	// afterwards, re-lexed as the identifier "u12" rather than lost.
	l := newLexer(t, `\u12 x`, dialect.C11, 0, dialect.UCNS)
	toks := lexAll(l)
	var spellings []string
	for _, tok := range toks {
		if tok.Kind() == token.IDENTIFIER {
			spellings = append(spellings, tok.Spelling())
		}
	}
	assert.Equal(t, []string{"u12", "x"}, spellings)
}

func TestLexTemplateCloserSplitableFlag (t *testing.T) {
	// "vector<vector<int>>" - the ">>" immediately following an opened
	// angle bracket is marked SPLITABLE under C++11 so the parser can
	// break it into two '>' tokens.
	l := newLexer(t, "a<b<int>>", 0, dialect.CXX11, 0)
	toks := lexAll(l)
	var rshift *token.Token
	for _, tok := range toks {
		if tok.Kind() == token.RSHIFT {
			rshift = tok
		}
	}
	if assert.NotNil(t, rshift) {
		assert.True(t, rshift.Flags().Has(token.SPLITABLE))
	}
}

func TestLexSamples (t *testing.T) {
	samples := []struct {
		src   string
		kinds []token.Kind
	}{
		{"a+=1", []token.Kind{token.IDENTIFIER, token.PLUSEQUAL, token.DEC_INT_LITERAL, token.EOF}},
		{"a++", []token.Kind{token.IDENTIFIER, token.PLUSPLUS, token.EOF}},
		{"a->b", []token.Kind{token.IDENTIFIER, token.ARROW, token.IDENTIFIER, token.EOF}},
		{"a...b", []token.Kind{token.IDENTIFIER, token.ELLIPSIS, token.IDENTIFIER, token.EOF}},
		{"a<<=1", []token.Kind{token.IDENTIFIER, token.LSHIFTEQUAL, token.DEC_INT_LITERAL, token.EOF}},
	}

	for i, s := range samples {
		name := fmt.Sprintf("sample #%d", i)
		t.Run(name, func (t *testing.T) {
			l := newLexer(t, s.src, dialect.C11, 0, 0)
			assert.Equal(t, s.kinds, kinds(lexAll(l)))
		})
	}
}

func TestLexUnterminatedStringReportsDiagnostic (t *testing.T) {
	var diagCount int
	opts, _ := dialect.New(dialect.C11, 0, 0)
	s, _ := csource.New("t.cpp", strings.NewReader(`"unterminated`))
	l := New(opts, s, func (err error) { diagCount++ })
	lexAll(l)
	assert.Equal(t, 1, diagCount)
}

func TestClearStorageDropsSeenIdentifiers (t *testing.T) {
	l := newLexer(t, "foo", dialect.C11, 0, 0)
	before := len(l.kwIDTable)
	l.Lex()
	assert.Greater(t, len(l.kwIDTable), before)
	l.ClearStorage()
	assert.Equal(t, before, len(l.kwIDTable))
}
