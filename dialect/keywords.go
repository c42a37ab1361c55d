package dialect

import "github.com/walres/wrparsecxx/token"

// addCKeywords inserts the keyword set for std and every C standard it
// implies (each table is built as a union over its predecessor, exactly as
// CXXOptions.cxx's addC89Keywords..addC11Keywords chain).
func addCKeywords (kw map[string]token.Kind, std Standard) {
	addC89Keywords(kw)
	if std >= C99 {
		addC99Keywords(kw)
	}
	if std >= C11 {
		addC11Keywords(kw)
	}
}

func addC89Keywords (kw map[string]token.Kind) {
	set := map[string]token.Kind{
		"auto": token.KW_AUTO, "break": token.KW_BREAK, "case": token.KW_CASE,
		"char": token.KW_CHAR, "const": token.KW_CONST, "continue": token.KW_CONTINUE,
		"default": token.KW_DEFAULT, "do": token.KW_DO, "double": token.KW_DOUBLE,
		"else": token.KW_ELSE, "enum": token.KW_ENUM, "extern": token.KW_EXTERN,
		"float": token.KW_FLOAT, "for": token.KW_FOR, "goto": token.KW_GOTO,
		"if": token.KW_IF, "int": token.KW_INT, "long": token.KW_LONG,
		"register": token.KW_REGISTER, "return": token.KW_RETURN,
		"short": token.KW_SHORT, "signed": token.KW_SIGNED, "sizeof": token.KW_SIZEOF,
		"static": token.KW_STATIC, "struct": token.KW_STRUCT, "switch": token.KW_SWITCH,
		"typedef": token.KW_TYPEDEF, "union": token.KW_UNION, "unsigned": token.KW_UNSIGNED,
		"void": token.KW_VOID, "volatile": token.KW_VOLATILE, "while": token.KW_WHILE,
	}
	for s, k := range set {
		kw[s] = k
	}
}

func addC99Keywords (kw map[string]token.Kind) {
	kw["inline"] = token.KW_INLINE
	kw["restrict"] = token.KW_RESTRICT
	kw["_Imaginary"] = token.KW_IMAGINARY
	kw["_Complex"] = token.KW_COMPLEX
}

func addC11Keywords (kw map[string]token.Kind) {
	kw["_Alignas"] = token.KW_ALIGNAS
	kw["_Alignof"] = token.KW_ALIGNOF
	kw["_Atomic"] = token.KW_ATOMIC
	kw["_Generic"] = token.KW_GENERIC
	kw["_Noreturn"] = token.KW_NORETURN
	kw["_Static_assert"] = token.KW_STATIC_ASSERT
	kw["_Thread_local"] = token.KW_THREAD_LOCAL
}

// addCXXKeywords inserts the keyword set for std and every C++ standard it
// implies, building on the C89 set (C++ keeps the full C core vocabulary).
func addCXXKeywords (kw map[string]token.Kind, std Standard) {
	addC89Keywords(kw)
	addCXX98Keywords(kw)
	if std >= CXX11 {
		addCXX11Keywords(kw)
	}
}

func addCXX98Keywords (kw map[string]token.Kind) {
	set := map[string]token.Kind{
		"asm": token.KW_ASM, "bool": token.KW_BOOL, "catch": token.KW_CATCH,
		"class": token.KW_CLASS, "const_cast": token.KW_CONST_CAST, "delete": token.KW_DELETE,
		"dynamic_cast": token.KW_DYNAMIC_CAST, "explicit": token.KW_EXPLICIT,
		"export": token.KW_EXPORT, "false": token.KW_FALSE, "friend": token.KW_FRIEND,
		"mutable": token.KW_MUTABLE, "namespace": token.KW_NAMESPACE, "new": token.KW_NEW,
		"operator": token.KW_OPERATOR, "private": token.KW_PRIVATE,
		"protected": token.KW_PROTECTED, "public": token.KW_PUBLIC,
		"reinterpret_cast": token.KW_REINTERPRET_CAST, "static_cast": token.KW_STATIC_CAST,
		"template": token.KW_TEMPLATE, "this": token.KW_THIS, "throw": token.KW_THROW,
		"true": token.KW_TRUE, "try": token.KW_TRY, "typeid": token.KW_TYPEID,
		"typename": token.KW_TYPENAME, "using": token.KW_USING, "virtual": token.KW_VIRTUAL,
		"wchar_t": token.KW_WCHAR_T,
	}
	for s, k := range set {
		kw[s] = k
	}

	// alternative-token spellings of punctuators; flagged ALTERNATE by the
	// lexer when it resolves them via identifierOrKeyword, not here.
	alt := map[string]token.Kind{
		"and": token.AMPAMP, "or": token.PIPEPIPE, "not": token.EXCLAIM,
		"xor": token.CARET, "bitand": token.AMP, "bitor": token.PIPE,
		"compl": token.TILDE, "and_eq": token.AMPEQUAL, "or_eq": token.PIPEEQUAL,
		"xor_eq": token.CARETEQUAL, "not_eq": token.EXCLAIMEQUAL,
	}
	for s, k := range alt {
		kw[s] = k
	}
}

func addCXX11Keywords (kw map[string]token.Kind) {
	kw["alignas"] = token.KW_ALIGNAS
	kw["alignof"] = token.KW_ALIGNOF
	kw["char16_t"] = token.KW_CHAR16_T
	kw["char32_t"] = token.KW_CHAR32_T
	kw["constexpr"] = token.KW_CONSTEXPR
	kw["decltype"] = token.KW_DECLTYPE
	kw["noexcept"] = token.KW_NOEXCEPT
	kw["nullptr"] = token.KW_NULLPTR
	kw["static_assert"] = token.KW_STATIC_ASSERT
	kw["thread_local"] = token.KW_THREAD_LOCAL
}
