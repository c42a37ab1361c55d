package token

// Token is a node of the doubly linked sequence the lexer appends to and
// the parser/SPPF reference but never copy. Once appended, Offset/Line/Col
// never change except when the parser's template-argument hook splits a
// SPLITABLE token into two (see parser's split hook).
type Token struct {
	kind       Kind
	spelling   string
	flags      Flags
	sourceName string
	offset     int
	line, col  int

	prev, next *Token
}

// New builds a token with the given kind, spelling and position. Spelling
// is not defaulted here — callers that want the catalogue default pass
// DefaultSpelling(kind) explicitly, mirroring setKindAndSpelling's split
// of concerns in the lexer.
func New (kind Kind, spelling string, sourceName string, offset, line, col int) *Token {
	return &Token{
		kind:       kind,
		spelling:   spelling,
		sourceName: sourceName,
		offset:     offset,
		line:       line,
		col:        col,
	}
}

func (t *Token) Kind () Kind       { return t.kind }
func (t *Token) Spelling () string { return t.spelling }
func (t *Token) Flags () Flags     { return t.flags }
func (t *Token) Offset () int      { return t.offset }
func (t *Token) Line () int        { return t.line }
func (t *Token) Col () int         { return t.col }

// SourceName satisfies werrors.SourcePos.
func (t *Token) SourceName () string { return t.sourceName }

func (t *Token) SetKind (k Kind) *Token         { t.kind = k; return t }
func (t *Token) SetSpelling (s string) *Token   { t.spelling = s; return t }
func (t *Token) SetFlags (f Flags) *Token       { t.flags = f; return t }
func (t *Token) AddFlags (f Flags) *Token       { t.flags |= f; return t }

// Reset clears kind and spelling back to NULL/"" in place, leaving position
// fields untouched, mirroring setKindAndSpelling(t, TOK_NULL) on a fatal
// mid-token I/O error.
func (t *Token) Reset () *Token {
	t.kind = NULL
	t.spelling = ""
	return t
}

// Prev and Next expose the token's place in the parser's owned sequence.
func (t *Token) Prev () *Token { return t.prev }
func (t *Token) Next () *Token { return t.next }

// Link appends n immediately after t, wiring both directions. Used by the
// parser's '>>' split hook to insert a freshly minted second half.
func (t *Token) Link (n *Token) {
	n.prev = t
	n.next = t.next
	if t.next != nil {
		t.next.prev = n
	}
	t.next = n
}

const (
	eofSourceName = ""
)

// NewEOFToken returns a sentinel end-of-file token positioned just past the
// given offset/line/col (the character source's position at exhaustion).
func NewEOFToken (sourceName string, offset, line, col int) *Token {
	return &Token{kind: EOF, sourceName: sourceName, offset: offset, line: line, col: col,
		flags: STARTS_LINE}
}

// NewEOIToken returns a sentinel "end of input requested beyond EOF" token.
// Nothing in this module calls it; the parser driver keeps reading the EOF
// token instead.
func NewEOIToken () *Token {
	return &Token{kind: EOI}
}
