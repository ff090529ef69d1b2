package rscodec

import "github.com/pkg/errors"

// Error kinds (spec.md §7). These are sentinel values, not types: callers
// compare with errors.Is, and every call site that adds context wraps one of
// them with errors.Wrap/Wrapf, the same way the teacher wraps dial/config
// errors in client/main.go and server/config.go.
var (
	// ErrConfig reports invalid constructor parameters, a missing default
	// for a given symsize, a CCSDS parameter mismatch, an unrecognised
	// variant, or an erasure index outside [0, n).
	ErrConfig = errors.New("rscodec: invalid configuration")

	// ErrSymbolRange reports an input symbol with bits set outside the low
	// symsize bits.
	ErrSymbolRange = errors.New("rscodec: symbol out of range")

	// ErrLengthMismatch reports a data/codeword/chunk/delta length that
	// does not match the codec's contract.
	ErrLengthMismatch = errors.New("rscodec: length mismatch")

	// ErrUncorrectable reports a decode failure: either the underlying
	// engine could not resolve a locator polynomial consistent with the
	// Chien-search roots, or a corrected position de-padded into the
	// virtual shortening region.
	ErrUncorrectable = errors.New("rscodec: uncorrectable input")

	// ErrOutOfMemory reports a table or scratch allocation failure at
	// construction time. Go's runtime turns real allocation failures into
	// a fatal panic rather than a recoverable error, so this sentinel
	// exists for API parity with spec.md §7; no function in this package
	// returns it.
	ErrOutOfMemory = errors.New("rscodec: out of memory")
)
