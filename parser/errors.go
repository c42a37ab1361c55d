package parser

// Error codes for this package, per spec §7 ("grammar/semantic" family),
// continuing the numeric range after lexer's 3xx block.
const (
	ErrUnexpectedToken        = 401
	ErrEmptyDeclSpecifierSeq  = 402
	ErrExpectedToken          = 403
	ErrUnterminatedTypeBody   = 404
)
