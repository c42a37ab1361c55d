// Package token defines the closed catalogue of C/C++ token kinds, the
// per-token flag bits, and the classification predicates the lexer and
// parser use to test kind membership.
//
// Kinds are partitioned into contiguous ranges so membership can be tested
// with a single comparison (is_keyword, is_punctuation, ...); the order
// below is load-bearing and must not be reshuffled.
package token

// Kind identifies a token's lexical category.
type Kind int

const (
	// Sentinel kinds: EOI and EOF are negative and NULL is zero, so none
	// collides with a real kind and all sort before the catalogue proper.
	EOI  Kind = -3 // end of input stream reached while the parser wanted more
	EOF  Kind = -2 // end of file
	NULL Kind = 0  // no kind assigned yet (freshly reset token)
)

// Punctuation range: LPAREN..COLONCOLON (52 kinds), exact order and count
// per the reference catalogue.
const (
	LPAREN Kind = iota + 1
	RPAREN
	LSQUARE
	RSQUARE
	LBRACE
	RBRACE
	DOLLAR
	DOT
	ELLIPSIS
	AMP
	AMPAMP
	AMPEQUAL
	STAR
	STAREQUAL
	PLUS
	PLUSPLUS
	PLUSEQUAL
	MINUS
	ARROW
	MINUSMINUS
	MINUSEQUAL
	TILDE
	EXCLAIM
	EXCLAIMEQUAL
	SLASH
	SLASHEQUAL
	PERCENT
	PERCENTEQUAL
	LESS
	LESSEQUAL
	LSHIFT
	LSHIFTEQUAL
	GREATER
	GREATEREQUAL
	RSHIFT
	RSHIFTEQUAL
	CARET
	CARETEQUAL
	PIPE
	PIPEPIPE
	PIPEEQUAL
	QUESTION
	COLON
	SEMI
	EQUAL
	EQUALEQUAL
	COMMA
	HASH
	HASHHASH
	DOTSTAR
	ARROWSTAR
	COLONCOLON

	firstKeyword
)

// Keyword range: KW_ALIGNAS..KW_WHILE. Covers the union of every C/C++
// dialect's reserved words; which ones are actually installed in a given
// dialect's keyword table is decided by dialect.Options, not by this range.
const (
	KW_ALIGNAS Kind = iota + firstKeyword
	KW_ALIGNOF
	KW_ASM
	KW_ATOMIC
	KW_AUTO
	KW_BOOL
	KW_BREAK
	KW_CASE
	KW_CATCH
	KW_CHAR
	KW_CHAR16_T
	KW_CHAR32_T
	KW_CLASS
	KW_COMPLEX
	KW_CONST
	KW_CONSTEXPR
	KW_CONST_CAST
	KW_CONTINUE
	KW_DECLTYPE
	KW_DEFAULT
	KW_DELETE
	KW_DO
	KW_DOUBLE
	KW_DYNAMIC_CAST
	KW_ELSE
	KW_ENUM
	KW_EXPLICIT
	KW_EXPORT
	KW_EXTERN
	KW_FALSE
	KW_FINAL
	KW_FLOAT
	KW_FOR
	KW_FRIEND
	KW_FUNC
	KW_GENERIC
	KW_GOTO
	KW_IF
	KW_IMAGINARY
	KW_INLINE
	KW_INT
	KW_LONG
	KW_MUTABLE
	KW_NAMESPACE
	KW_NEW
	KW_NOEXCEPT
	KW_NORETURN
	KW_NULLPTR
	KW_OPERATOR
	KW_OVERRIDE
	KW_PRIVATE
	KW_PROTECTED
	KW_PUBLIC
	KW_REGISTER
	KW_REINTERPRET_CAST
	KW_RESTRICT
	KW_RETURN
	KW_SHORT
	KW_SIGNED
	KW_SIZEOF
	KW_STATIC
	KW_STATIC_ASSERT
	KW_STATIC_CAST
	KW_STRUCT
	KW_SWITCH
	KW_TEMPLATE
	KW_THIS
	KW_THREAD_LOCAL
	KW_THROW
	KW_TRUE
	KW_TRY
	KW_TYPEDEF
	KW_TYPEID
	KW_TYPENAME
	KW_UNION
	KW_UNSIGNED
	KW_USING
	KW_VIRTUAL
	KW_VOID
	KW_VOLATILE
	KW_WCHAR_T
	KW_WHILE

	firstMultiSpelling
)

// Multi-spelling range: IDENTIFIER..PP_NUMBER. Every kind in this range
// carries a variable, arena-stored spelling rather than a fixed default.
const (
	IDENTIFIER Kind = iota + firstMultiSpelling
	DEC_INT_LITERAL
	OCT_INT_LITERAL
	HEX_INT_LITERAL
	BIN_INT_LITERAL
	FLOAT_LITERAL
	CHAR_LITERAL
	WCHAR_LITERAL
	U8_CHAR_LITERAL
	U16_CHAR_LITERAL
	U32_CHAR_LITERAL
	STR_LITERAL
	WSTR_LITERAL
	U8_STR_LITERAL
	U16_STR_LITERAL
	U32_STR_LITERAL
	WHITESPACE
	COMMENT
	PP_NUMBER

	firstPreprocessor
)

// Preprocessor directive range: PP_INCLUDE..PP_PRAGMA, plus a trailing
// PP_NULL for "looked like a directive, matched none".
const (
	PP_INCLUDE Kind = iota + firstPreprocessor
	PP_INCLUDE_NEXT
	PP_DEFINE
	PP_UNDEF
	PP_IF
	PP_IFDEF
	PP_IFNDEF
	PP_ELIF
	PP_ELSE
	PP_ENDIF
	PP_LINE
	PP_ERROR
	PP_WARNING
	PP_PRAGMA
	PP_NULL

	kindCount
)

// String returns the token's machine name (e.g. "LPAREN", "KW_INT",
// "IDENTIFIER"), used in diagnostics and tests.
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	switch k {
	case EOF:
		return "EOF"
	case EOI:
		return "EOI"
	case NULL:
		return "NULL"
	}
	return "UNKNOWN"
}

// IsPunctuation reports whether k lies in the punctuator range.
func IsPunctuation(k Kind) bool { return k >= LPAREN && k < firstKeyword }

// IsKeyword reports whether k lies in the keyword range.
func IsKeyword(k Kind) bool { return k >= firstKeyword && k < firstMultiSpelling }

// IsMultiSpelling reports whether k carries a variable spelling.
func IsMultiSpelling(k Kind) bool { return k >= firstMultiSpelling && k < firstPreprocessor }

// IsPreprocessorDirective reports whether k is a recognised "#directive".
func IsPreprocessorDirective(k Kind) bool { return k >= firstPreprocessor && k < kindCount }

// IsPreprocessorToken reports whether k can only occur while lexing inside
// a preprocessor directive line (PP_NUMBER or any directive kind).
func IsPreprocessorToken(k Kind) bool { return k == PP_NUMBER || IsPreprocessorDirective(k) }

// IsDeclSpecifier reports whether k, standing alone, can start or continue
// a decl-specifier (storage class, cv-qualifier, core type keyword).
func IsDeclSpecifier(k Kind) bool {
	switch k {
	case KW_AUTO, KW_CONST, KW_CONSTEXPR, KW_EXPLICIT, KW_EXTERN, KW_FRIEND,
		KW_INLINE, KW_MUTABLE, KW_REGISTER, KW_RESTRICT, KW_STATIC,
		KW_THREAD_LOCAL, KW_TYPEDEF, KW_VIRTUAL, KW_VOLATILE,
		KW_VOID, KW_BOOL, KW_CHAR, KW_CHAR16_T, KW_CHAR32_T, KW_WCHAR_T,
		KW_INT, KW_FLOAT, KW_DOUBLE, KW_SIGNED, KW_UNSIGNED, KW_SHORT,
		KW_LONG, KW_DECLTYPE, KW_STRUCT, KW_CLASS, KW_UNION, KW_ENUM,
		KW_IMAGINARY, KW_ATOMIC, KW_COMPLEX:
		return true
	default:
		return false
	}
}
