package rscodec

import "github.com/pkg/errors"

// Variant selects which internal implementation a Codec dispatches to. It
// is modeled as a tagged value, not an interface, so the hot encode/decode
// path is a single switch the compiler can inline — spec.md §9 prefers this
// over table-of-function-pointers indirection.
type Variant int

const (
	// CharFixed is the process-wide-shared (255,223) CCSDS
	// parameter tuple used without the dual-basis remap — the "plain"
	// 8-bit fixed path.
	CharFixed Variant = iota
	// CCSDS is CharFixed plus the dual-basis serial-interface remap.
	CCSDS
	// GeneralChar is any other 8-bit parameter set; it builds its own
	// field/generator tables at construction time.
	GeneralChar
	// Int is the integer codec, symsize up to 16.
	Int
)

func (v Variant) String() string {
	switch v {
	case CharFixed:
		return "char"
	case CCSDS:
		return "ccsds"
	case GeneralChar:
		return "char"
	case Int:
		return "int"
	default:
		return "unknown"
	}
}

// defaultParams holds (gfpoly, fcr, prim) keyed by symsize, exactly
// reproducing the default_rs_parameters table from
// original_source/reedsolomon-0.1/reedsolomon.c. Index 0 and 1 are
// deliberately absent: there is no sensible default for a 1-bit or
// 0-bit symbol.
type defaultParam struct {
	gfpoly, fcr, prim int
}

var defaultParams = map[int]defaultParam{
	2:  {0x7, 1, 1},
	3:  {0xb, 1, 1},
	4:  {0x13, 1, 1},
	5:  {0x25, 1, 1},
	6:  {0x43, 1, 1},
	7:  {0x89, 1, 1},
	8:  {0x187, 112, 11},
	9:  {0x211, 1, 1},
	10: {0x409, 1, 1},
	11: {0x805, 1, 1},
	12: {0x1053, 1, 1},
	13: {0x201b, 1, 1},
	14: {0x4443, 1, 1},
	15: {0x8003, 1, 1},
	16: {0x1100b, 1, 1},
}

// fillDefaults returns (gfpoly, fcr, prim) for symsize, substituting any
// value equal to the sentinel -1 from the default table. It fails with
// ErrConfig if no default table entry exists for symsize.
func fillDefaults(symsize, gfpoly, fcr, prim int) (int, int, int, error) {
	if gfpoly != -1 && fcr != -1 && prim != -1 {
		return gfpoly, fcr, prim, nil
	}
	d, ok := defaultParams[symsize]
	if !ok {
		return 0, 0, 0, errors.Wrapf(ErrConfig, "no default parameters for symsize=%d", symsize)
	}
	if gfpoly == -1 {
		gfpoly = d.gfpoly
	}
	if fcr == -1 {
		fcr = d.fcr
	}
	if prim == -1 {
		prim = d.prim
	}
	return gfpoly, fcr, prim, nil
}

const ccsdsSymsize, ccsdsGfpoly, ccsdsFCR, ccsdsPrim, ccsdsNRoots = 8, 0x187, 112, 11, 32
