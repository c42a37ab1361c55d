package dialect

import "github.com/walres/wrparsecxx/werrors"

// Error codes for the dialect package, allocated its own hundred-block so
// callers can switch on Code without string matching.
const (
	ErrNoLanguageSelected = 101
	ErrInvalidConfig      = 102
	ErrUnknownStandard    = 103
)

func errNoLanguageSelected () *werrors.Err {
	return werrors.Format(ErrNoLanguageSelected,
		"at least one of the C or C++ standard must be selected")
}

func errInvalidConfiguration (reason string) *werrors.Err {
	return werrors.Format(ErrInvalidConfig, "invalid dialect configuration: %s", reason)
}

func errUnknownStandard (name string) *werrors.Err {
	return werrors.Format(ErrUnknownStandard, "unknown standard or language name %q", name)
}
