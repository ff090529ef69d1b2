// Package galois builds the log/antilog tables for GF(2^m), m in [1,32],
// and the Reed-Solomon generator polynomial over those tables.
//
// The construction follows the classical Phil Karn librs approach: alpha_to
// is built by repeated left-shift with conditional reduction against the
// primitive polynomial, index_of is its inverse permutation, and index 0 of
// index_of (the discrete log of the zero element) is set to the sentinel NN.
package galois

import "fmt"

// Tables holds the discrete-exponential and discrete-log tables for GF(2^m).
//
// AlphaTo[i] = alpha^i as an m-bit integer, with AlphaTo[NN] holding the
// sentinel value 0 (log of zero is undefined; callers never index past NN-1
// with a valid exponent, so this slot only exists to keep the array NN+1
// long and mirror IndexOf's sentinel slot).
//
// IndexOf[v] = the discrete log of v base alpha; IndexOf[0] = NN, the
// conventional "no log" sentinel.
type Tables struct {
	Symsize int
	Gfpoly  int
	NN      int // 2^Symsize - 1
	AlphaTo []int
	IndexOf []int
}

// Build constructs the field tables for the given symbol size and primitive
// polynomial. It fails if gfpoly does not generate the full multiplicative
// group of GF(2^symsize): this is detected when alpha_to would have to wrap
// around (repeat a value) before reaching index NN.
func Build(symsize int, gfpoly int) (*Tables, error) {
	if symsize < 1 || symsize > 32 {
		return nil, fmt.Errorf("galois: symsize %d out of range [1,32]", symsize)
	}
	nn := (1 << uint(symsize)) - 1

	alphaTo := make([]int, nn+1)
	indexOf := make([]int, nn+1)

	// index_of[0] is the conventional sentinel: log of zero is undefined.
	indexOf[0] = nn

	seen := make([]bool, nn+1)
	sr := 1
	for i := 0; i < nn; i++ {
		if seen[sr] {
			return nil, fmt.Errorf("galois: gfpoly 0x%x does not generate GF(2^%d)", gfpoly, symsize)
		}
		seen[sr] = true
		alphaTo[i] = sr
		indexOf[sr] = i

		sr <<= 1
		if sr&(1<<uint(symsize)) != 0 {
			sr ^= gfpoly
		}
		sr &= nn
	}
	if sr != 1 {
		return nil, fmt.Errorf("galois: gfpoly 0x%x does not generate GF(2^%d)", gfpoly, symsize)
	}
	alphaTo[nn] = 0

	return &Tables{
		Symsize: symsize,
		Gfpoly:  gfpoly,
		NN:      nn,
		AlphaTo: alphaTo,
		IndexOf: indexOf,
	}, nil
}

// ModNN reduces x modulo NN without a divide, using the shift-and-add trick:
// while x >= NN, subtract NN and then fold x = (x >> symsize) + (x & NN).
// This mirrors how librs keeps
// generator-root exponents inside [0, NN).
func (t *Tables) ModNN(x int) int {
	for x >= t.NN {
		x -= t.NN
		x = (x >> uint(t.Symsize)) + (x & t.NN)
	}
	return x
}

// Mul returns a*b in GF(2^m), using the log tables. Either operand may be
// zero.
func (t *Tables) Mul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return t.AlphaTo[t.ModNN(t.IndexOf[a]+t.IndexOf[b])]
}

// Inv returns the multiplicative inverse of a non-zero element a.
func (t *Tables) Inv(a int) int {
	return t.AlphaTo[t.ModNN(t.NN-t.IndexOf[a])]
}

// InverseMod returns the multiplicative inverse of x modulo NN, i.e. the
// iprim used to translate Chien-search exponents back through a non-unit
// prim stride. x must be coprime to nn; for any other x no inverse exists
// and the computation divides by zero.
func InverseMod(x, nn int) int {
	// Extended Euclidean algorithm over the integers mod nn.
	a, b := x, nn
	x0, x1 := 1, 0
	for a > 1 {
		q := a / b
		a, b = b, a-q*b
		x0, x1 = x1, x0-q*x1
	}
	if x0 < 0 {
		x0 += nn
	}
	return x0
}
