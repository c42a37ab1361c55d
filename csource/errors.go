package csource

import "github.com/walres/wrparsecxx/werrors"

// ErrIO is the single error code this package raises: the underlying
// stream was in a bad state while the source was being read in full.
const ErrIO = 201

func errIO (name string, cause error) *werrors.Err {
	return werrors.Format(ErrIO, "%s: input error: %v", name, cause)
}
