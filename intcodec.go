package rscodec

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"

	"github.com/xtaci/rscodec/internal/engine"
	"github.com/xtaci/rscodec/internal/galois"
)

// maxIntSymsize is this package's supported ceiling for the integer codec.
// reedsolomon.c permits symsize up to 32 with a warning about table size;
// spec.md §9 narrows that to 16 (64K-entry tables) and this implementation
// does not extend past that bound.
const maxIntSymsize = 16

// IntegerCodec is the integer façade: symbols up to 16 bits wide, stored in
// a plain int. It has no variant: every instance builds its own field and
// generator tables at construction time.
type IntegerCodec struct {
	n, k, symsize, gfpoly, fcr, prim, nroots, pad, mask int
	cfg                                                 *engine.Config
}

// NewInteger constructs an IntegerCodec. symsize, gfpoly, fcr and prim may
// be -1 to request the symsize-keyed default.
func NewInteger(n, k, symsize, gfpoly, fcr, prim int) (*IntegerCodec, error) {
	if symsize == -1 {
		symsize = ccsdsSymsize
	}
	if symsize < 1 || symsize > maxIntSymsize {
		return nil, errors.Wrapf(ErrConfig, "symsize=%d out of range [1,%d] for the integer codec", symsize, maxIntSymsize)
	}
	gfpoly, fcr, prim, err := fillDefaults(symsize, gfpoly, fcr, prim)
	if err != nil {
		return nil, err
	}

	nroots := n - k
	nn := (1 << uint(symsize)) - 1
	if n < 2 || n > nn {
		return nil, errors.Wrapf(ErrConfig, "n=%d out of range [2,%d]", n, nn)
	}
	if nroots <= 0 || k >= n {
		return nil, errors.Wrapf(ErrConfig, "k=%d must be < n=%d", k, n)
	}
	pad := nn - n

	tbl, err := galois.Build(symsize, gfpoly)
	if err != nil {
		return nil, errors.Wrap(ErrConfig, err.Error())
	}
	gen := galois.BuildGenerator(tbl, fcr, prim, nroots)

	return &IntegerCodec{
		n: n, k: k, symsize: symsize, gfpoly: gfpoly, fcr: fcr, prim: prim,
		nroots: nroots, pad: pad, mask: -1 << uint(symsize),
		cfg: &engine.Config{
			AlphaTo: tbl.AlphaTo, IndexOf: tbl.IndexOf, Gen: gen,
			Symsize: uint(symsize), NN: tbl.NN, FCR: fcr, Prim: prim,
			IPrim: galois.InverseMod(prim, tbl.NN), NRoots: nroots, Pad: pad,
		},
	}, nil
}

func (c *IntegerCodec) N() int       { return c.n }
func (c *IntegerCodec) K() int       { return c.k }
func (c *IntegerCodec) Symsize() int { return c.symsize }
func (c *IntegerCodec) Gfpoly() int  { return c.gfpoly }
func (c *IntegerCodec) FCR() int     { return c.fcr }
func (c *IntegerCodec) Prim() int    { return c.prim }
func (c *IntegerCodec) NRoots() int  { return c.nroots }
func (c *IntegerCodec) Pad() int     { return c.pad }
func (c *IntegerCodec) Mask() int    { return c.mask }

func (c *IntegerCodec) String() string {
	return fmt.Sprintf("<IntegerCodec(n=%d, k=%d, symsize=%d, gfpoly=%#x, fcr=%d, prim=%d)>",
		c.n, c.k, c.symsize, c.gfpoly, c.fcr, c.prim)
}

func (c *IntegerCodec) checkSymbols(data []int) error {
	for _, d := range data {
		if d&c.mask != 0 {
			return errors.Wrapf(ErrSymbolRange, "symbol %#x has bits set outside the low %d bits", d, c.symsize)
		}
	}
	return nil
}

func (c *IntegerCodec) userToNN(userPos int) int { return userPos + c.pad }
func (c *IntegerCodec) nnToUser(nnPos int) int   { return nnPos - c.pad }

// Encode requires len(data) == k, every symbol in range, and returns the
// n-symbol codeword.
func (c *IntegerCodec) Encode(data []int) ([]int, error) {
	if len(data) != c.k {
		return nil, errors.Wrapf(ErrLengthMismatch, "len(data)=%d, want k=%d", len(data), c.k)
	}
	if err := c.checkSymbols(data); err != nil {
		return nil, err
	}
	parity := engine.Encode(c.cfg, data)
	out := make([]int, c.n)
	copy(out, data)
	copy(out[c.k:], parity)
	return out, nil
}

// Decode requires len(codeword) == n and returns the corrected k-symbol
// data plus the de-padded positions of every symbol the decoder touched.
func (c *IntegerCodec) Decode(codeword []int, erasures []int) ([]int, []int, error) {
	if len(codeword) != c.n {
		return nil, nil, errors.Wrapf(ErrLengthMismatch, "len(codeword)=%d, want n=%d", len(codeword), c.n)
	}
	if err := c.checkSymbols(codeword); err != nil {
		return nil, nil, err
	}
	nnEras := make([]int, len(erasures))
	for i, e := range erasures {
		if e < 0 || e >= c.n {
			return nil, nil, errors.Wrapf(ErrConfig, "erasure index %d out of range [0,%d)", e, c.n)
		}
		nnEras[i] = c.userToNN(e)
	}

	work := append([]int(nil), codeword...)
	nnCorrections, err := engine.Decode(c.cfg, work, nnEras)
	if err != nil {
		return nil, nil, errors.Wrap(ErrUncorrectable, err.Error())
	}

	corrections := make([]int, len(nnCorrections))
	for i, nn := range nnCorrections {
		userPos := c.nnToUser(nn)
		if userPos < 0 || userPos >= c.n {
			return nil, nil, errors.Wrapf(ErrUncorrectable, "corrected position %d de-pads to %d, outside [0,%d)", nn, userPos, c.n)
		}
		corrections[i] = userPos
	}
	sort.Ints(corrections)

	return work[:c.k], corrections, nil
}
