package parser

import (
	"github.com/walres/wrparsecxx/internal/ints"
	"github.com/walres/wrparsecxx/token"
)

// declSyncSet is the token-kind synchronization set ParseSimpleDeclaration
// failures recover to: a statement/declaration terminator, a closing
// brace, or end of file. Modelled as an ints.Set rather than a plain
// switch so a caller wanting a different recovery point (e.g. inside a
// parameter list) can build its own set with the same primitives.
var declSyncSet = ints.NewSet(int(token.SEMI), int(token.RBRACE), int(token.EOF))

// SkipTo discards tokens up to (not including) the first one whose kind
// is a member of sync, providing the "advance to the next synchronization
// point" recovery spec §7 describes for non-fatal lexical errors, applied
// here at the declaration level.
func (p *Parser) SkipTo (sync *ints.Set) {
	for !sync.Contains(int(p.cur().Kind())) {
		p.advance()
	}
}

// RecoverDeclaration skips to declSyncSet and, if it landed on a ';',
// consumes it too, leaving the stream positioned to retry
// ParseSimpleDeclaration from a clean start.
func (p *Parser) RecoverDeclaration () {
	p.SkipTo(declSyncSet)
	if p.cur().Kind() == token.SEMI {
		p.advance()
	}
}
