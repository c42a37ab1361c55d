package token

// Flags is a bitset of per-token markers set by the lexer as it reads.
type Flags uint8

const (
	// STARTS_LINE is set on the first non-whitespace token of a physical
	// line (after trigraph folding / line splicing have been applied).
	STARTS_LINE Flags = 1 << iota

	// SPACE_BEFORE is set when whitespace or a comment preceded this
	// token on the same line.
	SPACE_BEFORE

	// ALTERNATE marks a digraph spelling ("<%", "%>", "<:", ":>", "%:",
	// "%:%:") or an alphabetic alternate-token keyword ("and", "bitor",
	// ...) standing in for the punctuator it denotes.
	ALTERNATE

	// PREPROCESS is set on every token lexed between a line-starting '#'
	// or "%:" and the newline that ends the directive.
	PREPROCESS

	// SPLITABLE marks a '>>', '>=' or '>>=' token that the parser may
	// split into two tokens to close a template argument list.
	SPLITABLE
)

// Has reports whether all bits of mask are set in f.
func (f Flags) Has (mask Flags) bool { return f&mask == mask }
