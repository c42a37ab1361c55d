package token

// kindNames and defaultSpellings are built from the same table so the two
// never drift apart; fixed-spelling kinds (punctuation, keywords,
// directives) get a real spelling, variable kinds get "" except
// WHITESPACE, whose default is a single space.
type kindInfo struct {
	kind     Kind
	name     string
	spelling string
}

var kindTable = []kindInfo{
	{LPAREN, "LPAREN", "("},
	{RPAREN, "RPAREN", ")"},
	{LSQUARE, "LSQUARE", "["},
	{RSQUARE, "RSQUARE", "]"},
	{LBRACE, "LBRACE", "{"},
	{RBRACE, "RBRACE", "}"},
	{DOLLAR, "DOLLAR", "$"},
	{DOT, "DOT", "."},
	{ELLIPSIS, "ELLIPSIS", "..."},
	{AMP, "AMP", "&"},
	{AMPAMP, "AMPAMP", "&&"},
	{AMPEQUAL, "AMPEQUAL", "&="},
	{STAR, "STAR", "*"},
	{STAREQUAL, "STAREQUAL", "*="},
	{PLUS, "PLUS", "+"},
	{PLUSPLUS, "PLUSPLUS", "++"},
	{PLUSEQUAL, "PLUSEQUAL", "+="},
	{MINUS, "MINUS", "-"},
	{ARROW, "ARROW", "->"},
	{MINUSMINUS, "MINUSMINUS", "--"},
	{MINUSEQUAL, "MINUSEQUAL", "-="},
	{TILDE, "TILDE", "~"},
	{EXCLAIM, "EXCLAIM", "!"},
	{EXCLAIMEQUAL, "EXCLAIMEQUAL", "!="},
	{SLASH, "SLASH", "/"},
	{SLASHEQUAL, "SLASHEQUAL", "/="},
	{PERCENT, "PERCENT", "%"},
	{PERCENTEQUAL, "PERCENTEQUAL", "%="},
	{LESS, "LESS", "<"},
	{LESSEQUAL, "LESSEQUAL", "<="},
	{LSHIFT, "LSHIFT", "<<"},
	{LSHIFTEQUAL, "LSHIFTEQUAL", "<<="},
	{GREATER, "GREATER", ">"},
	{GREATEREQUAL, "GREATEREQUAL", ">="},
	{RSHIFT, "RSHIFT", ">>"},
	{RSHIFTEQUAL, "RSHIFTEQUAL", ">>="},
	{CARET, "CARET", "^"},
	{CARETEQUAL, "CARETEQUAL", "^="},
	{PIPE, "PIPE", "|"},
	{PIPEPIPE, "PIPEPIPE", "||"},
	{PIPEEQUAL, "PIPEEQUAL", "|="},
	{QUESTION, "QUESTION", "?"},
	{COLON, "COLON", ":"},
	{SEMI, "SEMI", ";"},
	{EQUAL, "EQUAL", "="},
	{EQUALEQUAL, "EQUALEQUAL", "=="},
	{COMMA, "COMMA", ","},
	{HASH, "HASH", "#"},
	{HASHHASH, "HASHHASH", "##"},
	{DOTSTAR, "DOTSTAR", ".*"},
	{ARROWSTAR, "ARROWSTAR", "->*"},
	{COLONCOLON, "COLONCOLON", "::"},

	{KW_ALIGNAS, "KW_ALIGNAS", "alignas"},
	{KW_ALIGNOF, "KW_ALIGNOF", "alignof"},
	{KW_ASM, "KW_ASM", "asm"},
	{KW_ATOMIC, "KW_ATOMIC", "_Atomic"},
	{KW_AUTO, "KW_AUTO", "auto"},
	{KW_BOOL, "KW_BOOL", "bool"},
	{KW_BREAK, "KW_BREAK", "break"},
	{KW_CASE, "KW_CASE", "case"},
	{KW_CATCH, "KW_CATCH", "catch"},
	{KW_CHAR, "KW_CHAR", "char"},
	{KW_CHAR16_T, "KW_CHAR16_T", "char16_t"},
	{KW_CHAR32_T, "KW_CHAR32_T", "char32_t"},
	{KW_CLASS, "KW_CLASS", "class"},
	{KW_COMPLEX, "KW_COMPLEX", "_Complex"},
	{KW_CONST, "KW_CONST", "const"},
	{KW_CONSTEXPR, "KW_CONSTEXPR", "constexpr"},
	{KW_CONST_CAST, "KW_CONST_CAST", "const_cast"},
	{KW_CONTINUE, "KW_CONTINUE", "continue"},
	{KW_DECLTYPE, "KW_DECLTYPE", "decltype"},
	{KW_DEFAULT, "KW_DEFAULT", "default"},
	{KW_DELETE, "KW_DELETE", "delete"},
	{KW_DO, "KW_DO", "do"},
	{KW_DOUBLE, "KW_DOUBLE", "double"},
	{KW_DYNAMIC_CAST, "KW_DYNAMIC_CAST", "dynamic_cast"},
	{KW_ELSE, "KW_ELSE", "else"},
	{KW_ENUM, "KW_ENUM", "enum"},
	{KW_EXPLICIT, "KW_EXPLICIT", "explicit"},
	{KW_EXPORT, "KW_EXPORT", "export"},
	{KW_EXTERN, "KW_EXTERN", "extern"},
	{KW_FALSE, "KW_FALSE", "false"},
	{KW_FINAL, "KW_FINAL", "final"},
	{KW_FLOAT, "KW_FLOAT", "float"},
	{KW_FOR, "KW_FOR", "for"},
	{KW_FRIEND, "KW_FRIEND", "friend"},
	{KW_FUNC, "KW_FUNC", "__func__"},
	{KW_GENERIC, "KW_GENERIC", "_Generic"},
	{KW_GOTO, "KW_GOTO", "goto"},
	{KW_IF, "KW_IF", "if"},
	{KW_IMAGINARY, "KW_IMAGINARY", "_Imaginary"},
	{KW_INLINE, "KW_INLINE", "inline"},
	{KW_INT, "KW_INT", "int"},
	{KW_LONG, "KW_LONG", "long"},
	{KW_MUTABLE, "KW_MUTABLE", "mutable"},
	{KW_NAMESPACE, "KW_NAMESPACE", "namespace"},
	{KW_NEW, "KW_NEW", "new"},
	{KW_NOEXCEPT, "KW_NOEXCEPT", "noexcept"},
	{KW_NORETURN, "KW_NORETURN", "_Noreturn"},
	{KW_NULLPTR, "KW_NULLPTR", "nullptr"},
	{KW_OPERATOR, "KW_OPERATOR", "operator"},
	{KW_OVERRIDE, "KW_OVERRIDE", "override"},
	{KW_PRIVATE, "KW_PRIVATE", "private"},
	{KW_PROTECTED, "KW_PROTECTED", "protected"},
	{KW_PUBLIC, "KW_PUBLIC", "public"},
	{KW_REGISTER, "KW_REGISTER", "register"},
	{KW_REINTERPRET_CAST, "KW_REINTERPRET_CAST", "reinterpret_cast"},
	{KW_RESTRICT, "KW_RESTRICT", "restrict"},
	{KW_RETURN, "KW_RETURN", "return"},
	{KW_SHORT, "KW_SHORT", "short"},
	{KW_SIGNED, "KW_SIGNED", "signed"},
	{KW_SIZEOF, "KW_SIZEOF", "sizeof"},
	{KW_STATIC, "KW_STATIC", "static"},
	{KW_STATIC_ASSERT, "KW_STATIC_ASSERT", "static_assert"},
	{KW_STATIC_CAST, "KW_STATIC_CAST", "static_cast"},
	{KW_STRUCT, "KW_STRUCT", "struct"},
	{KW_SWITCH, "KW_SWITCH", "switch"},
	{KW_TEMPLATE, "KW_TEMPLATE", "template"},
	{KW_THIS, "KW_THIS", "this"},
	{KW_THREAD_LOCAL, "KW_THREAD_LOCAL", "thread_local"},
	{KW_THROW, "KW_THROW", "throw"},
	{KW_TRUE, "KW_TRUE", "true"},
	{KW_TRY, "KW_TRY", "try"},
	{KW_TYPEDEF, "KW_TYPEDEF", "typedef"},
	{KW_TYPEID, "KW_TYPEID", "typeid"},
	{KW_TYPENAME, "KW_TYPENAME", "typename"},
	{KW_UNION, "KW_UNION", "union"},
	{KW_UNSIGNED, "KW_UNSIGNED", "unsigned"},
	{KW_USING, "KW_USING", "using"},
	{KW_VIRTUAL, "KW_VIRTUAL", "virtual"},
	{KW_VOID, "KW_VOID", "void"},
	{KW_VOLATILE, "KW_VOLATILE", "volatile"},
	{KW_WCHAR_T, "KW_WCHAR_T", "wchar_t"},
	{KW_WHILE, "KW_WHILE", "while"},

	{IDENTIFIER, "IDENTIFIER", ""},
	{DEC_INT_LITERAL, "DEC_INT_LITERAL", ""},
	{OCT_INT_LITERAL, "OCT_INT_LITERAL", ""},
	{HEX_INT_LITERAL, "HEX_INT_LITERAL", ""},
	{BIN_INT_LITERAL, "BIN_INT_LITERAL", ""},
	{FLOAT_LITERAL, "FLOAT_LITERAL", ""},
	{CHAR_LITERAL, "CHAR_LITERAL", ""},
	{WCHAR_LITERAL, "WCHAR_LITERAL", ""},
	{U8_CHAR_LITERAL, "U8_CHAR_LITERAL", ""},
	{U16_CHAR_LITERAL, "U16_CHAR_LITERAL", ""},
	{U32_CHAR_LITERAL, "U32_CHAR_LITERAL", ""},
	{STR_LITERAL, "STR_LITERAL", ""},
	{WSTR_LITERAL, "WSTR_LITERAL", ""},
	{U8_STR_LITERAL, "U8_STR_LITERAL", ""},
	{U16_STR_LITERAL, "U16_STR_LITERAL", ""},
	{U32_STR_LITERAL, "U32_STR_LITERAL", ""},
	{WHITESPACE, "WHITESPACE", " "},
	{COMMENT, "COMMENT", ""},
	{PP_NUMBER, "PP_NUMBER", ""},

	{PP_INCLUDE, "PP_INCLUDE", "include"},
	{PP_INCLUDE_NEXT, "PP_INCLUDE_NEXT", "include_next"},
	{PP_DEFINE, "PP_DEFINE", "define"},
	{PP_UNDEF, "PP_UNDEF", "undef"},
	{PP_IF, "PP_IF", "if"},
	{PP_IFDEF, "PP_IFDEF", "ifdef"},
	{PP_IFNDEF, "PP_IFNDEF", "ifndef"},
	{PP_ELIF, "PP_ELIF", "elif"},
	{PP_ELSE, "PP_ELSE", "else"},
	{PP_ENDIF, "PP_ENDIF", "endif"},
	{PP_LINE, "PP_LINE", "line"},
	{PP_ERROR, "PP_ERROR", "error"},
	{PP_WARNING, "PP_WARNING", "warning"},
	{PP_PRAGMA, "PP_PRAGMA", "pragma"},
	{PP_NULL, "PP_NULL", ""},
}

var (
	kindNames          = map[Kind]string{}
	defaultSpellingMap = map[Kind]string{}
)

func init() {
	for _, e := range kindTable {
		kindNames[e.kind] = e.name
		defaultSpellingMap[e.kind] = e.spelling
	}
}

// DefaultSpelling returns the fixed spelling for kinds that have one
// ("" for multi-spelling kinds, which must carry their own text, except
// " " for WHITESPACE).
func DefaultSpelling(k Kind) string { return defaultSpellingMap[k] }
