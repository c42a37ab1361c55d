// Package dialect implements the closed C89-C11 / C++98-C++17 standard
// enumeration, the feature bit-set, and the keyword table builder that
// together make up an immutable dialect.Options value.
package dialect

import "github.com/walres/wrparsecxx/token"

// Standard packs a C selector in its low byte and a C++ selector in its
// high byte, exactly like the reference implementation's combined
// language/standard value, so a single Standard can express "C11 and
// C++14 both enabled" for grammar predicates that must gate on either.
type Standard uint16

// C standards occupy bits 0-7.
const (
	C89 Standard = 1
	C90 Standard = 2 // alias for C89 in this catalogue; kept distinct per name table
	C95 Standard = 3
	C99 Standard = 4
	C11 Standard = 5

	cLangMask Standard = 0xff
)

// C++ standards occupy bits 8-15.
const (
	CXX98 Standard = 1 << 8
	CXX03 Standard = 2 << 8
	CXX11 Standard = 3 << 8
	CXX14 Standard = 4 << 8
	CXX17 Standard = 5 << 8

	cxxLangMask Standard = 0xff00
)

// Feature is a bit-set of optional lexer behaviours layered on top of a
// Standard's defaults.
type Feature uint32

const (
	KEEP_SPACE Feature = 1 << iota
	KEEP_COMMENTS
	LINE_COMMENTS
	LONG_LONG
	DIGRAPHS
	TRIGRAPHS
	BINARY_LITERALS
	UTF8_CHAR_LITERALS
	HEX_FLOAT_LITERALS
	UCNS
	IDENTIFIER_DOLLARS
	INLINE_FUNCTIONS
	NO_PP_DIRECTIVES
)

// Options is an immutable, fully resolved dialect: which standard(s) are
// active, the union feature set, and the union keyword table. Built once
// by New and never mutated afterwards.
type Options struct {
	c, cxx   Standard
	features Feature
	keywords map[string]token.Kind
}

// C returns the active C standard, or 0 if C is not selected.
func (o *Options) C () Standard { return o.c }

// CXX returns the active C++ standard, or 0 if C++ is not selected.
func (o *Options) CXX () Standard { return o.cxx }

// Languages returns the combined C|C++ selector value.
func (o *Options) Languages () Standard { return o.c | o.cxx }

// Features returns the full resolved feature bit-set.
func (o *Options) Features () Feature { return o.features }

// Have reports whether every bit of mask is set in the feature set.
func (o *Options) Have (mask Feature) bool { return o.features&mask == mask }

// Keywords returns the resolved spelling -> kind table. Callers must treat
// it as read-only; the lexer takes its own working copy via Keywords() at
// construction and augments that copy with identifiers it sees, never this
// one (mirrors CXXLexer::clearStorage() restoring kw_id_table_ from
// options_.keywords()).
func (o *Options) Keywords () map[string]token.Kind {
	m := make(map[string]token.Kind, len(o.keywords))
	for k, v := range o.keywords {
		m[k] = v
	}
	return m
}

// cDefaults and cxxDefaults mirror CXXOptions.cxx's C_LANG_DATA/CXX_LANG_DATA
// tables: each standard's own default feature set, expressed as the XOR/OR
// delta from the previous standard where the original does the same so the
// "C++17 drops trigraphs" quirk stays visible in the diff. DIGRAPHS is in
// no default set; it is enabled only through the extra feature set.
var cDefaults = map[Standard]Feature{
	C89: TRIGRAPHS,
	C90: TRIGRAPHS,
	C95: TRIGRAPHS,
	C99: TRIGRAPHS | LONG_LONG | LINE_COMMENTS,
	C11: TRIGRAPHS | LONG_LONG | LINE_COMMENTS | UCNS,
}

var cxxDefaults = map[Standard]Feature{
	CXX98: TRIGRAPHS | LINE_COMMENTS,
	CXX03: TRIGRAPHS | LINE_COMMENTS,
	CXX11: (TRIGRAPHS | LINE_COMMENTS) | UCNS | LONG_LONG | BINARY_LITERALS,
	CXX14: (TRIGRAPHS | LINE_COMMENTS | UCNS | LONG_LONG | BINARY_LITERALS),
	// CXX17 = (CXX14 ^ TRIGRAPHS) | UTF8_CHAR_LITERALS | HEX_FLOAT_LITERALS:
	// trigraphs were removed from the standard in C++17.
	CXX17: (TRIGRAPHS|LINE_COMMENTS|UCNS|LONG_LONG|BINARY_LITERALS)^TRIGRAPHS | UTF8_CHAR_LITERALS | HEX_FLOAT_LITERALS,
}

// New builds an immutable Options from a C standard, a C++ standard, and
// an extra feature set layered on top of both standards' defaults. Either
// standard may be 0 (language not selected) but not both.
func New (c, cxx Standard, extra Feature) (*Options, error) {
	if c == 0 && cxx == 0 {
		return nil, errNoLanguageSelected()
	}

	features := extra
	if c != 0 {
		features |= cDefaults[c]
	}
	if cxx != 0 {
		features |= cxxDefaults[cxx]
	}

	if features&UTF8_CHAR_LITERALS != 0 {
		reachesC11 := c != 0 && c >= C11
		reachesCXX11 := cxx != 0 && cxx >= CXX11
		if !reachesC11 && !reachesCXX11 {
			return nil, errInvalidConfiguration("UTF8_CHAR_LITERALS requires C11 or C++11 or later")
		}
	}

	kw := map[string]token.Kind{}
	if c != 0 {
		addCKeywords(kw, c)
	}
	if cxx != 0 {
		addCXXKeywords(kw, cxx)
	}
	if features&INLINE_FUNCTIONS != 0 {
		kw["inline"] = token.KW_INLINE
	}

	return &Options{c: c, cxx: cxx, features: features, keywords: kw}, nil
}
