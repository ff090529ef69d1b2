package rscodec

import (
	"github.com/pkg/errors"
	"github.com/templexxx/xorsimd"
)

// Xor computes the bytewise XOR of a and b, which must be equal length.
// It dispatches to xorsimd's runtime-detected SIMD kernel, the same
// dependency the teacher's FEC stack leans on for wire-speed XOR.
func Xor(a, b []byte) ([]byte, error) {
	if len(a) != len(b) {
		return nil, errors.Wrapf(ErrLengthMismatch, "len(a)=%d, len(b)=%d", len(a), len(b))
	}
	out := make([]byte, len(a))
	xorsimd.Bytes(out, a, b)
	return out, nil
}
