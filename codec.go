package rscodec

import (
	"fmt"
	"sort"
	"sync"

	"github.com/pkg/errors"

	"github.com/xtaci/rscodec/internal/ccsds"
	"github.com/xtaci/rscodec/internal/engine"
	"github.com/xtaci/rscodec/internal/galois"
)

// Codec is the 8-bit string façade: a stateless, immutable binding of a
// parameter set to one of the CHAR8_FIXED, CCSDS or GENERAL_CHAR
// implementations. Every method is a pure function of (Codec, arguments);
// no state survives a call. It is safe for concurrent use by multiple
// goroutines, since construction is the only place that mutates anything.
type Codec struct {
	n, k, symsize, gfpoly, fcr, prim, nroots, pad, mask int
	variant                                             Variant

	cfg *engine.Config // nil only if this Codec is the zero value
}

// New constructs a Codec. symsize, gfpoly, fcr and prim may be passed as -1
// to request the default for the given symsize (spec.md §6's table);
// variant selects among "char" and "ccsds" (an empty string defaults to
// "char"). Construction fails with ErrConfig if defaulting or validation
// fails.
func New(n, k, symsize, gfpoly, fcr, prim int, variant string) (*Codec, error) {
	if symsize == -1 {
		symsize = ccsdsSymsize
	}
	gfpoly, fcr, prim, err := fillDefaults(symsize, gfpoly, fcr, prim)
	if err != nil {
		return nil, err
	}

	nroots := n - k
	if err := checkCharParams(symsize, n, k, nroots); err != nil {
		return nil, err
	}

	tblNN := (1 << uint(symsize)) - 1
	pad := tblNN - n

	isCCSDSTuple := symsize == ccsdsSymsize && gfpoly == ccsdsGfpoly && fcr == ccsdsFCR && prim == ccsdsPrim && nroots == ccsdsNRoots

	var v Variant
	switch variant {
	case "", "char":
		if isCCSDSTuple && n == ccsds.N {
			v = CharFixed
		} else {
			v = GeneralChar
		}
	case "ccsds":
		if !isCCSDSTuple || n != ccsds.N {
			return nil, errors.Wrap(ErrConfig, "ccsds variant requires the fixed (255,223) CCSDS parameter tuple")
		}
		v = CCSDS
	default:
		return nil, errors.Wrapf(ErrConfig, "unrecognised variant %q", variant)
	}

	c := &Codec{
		n: n, k: k, symsize: symsize, gfpoly: gfpoly, fcr: fcr, prim: prim,
		nroots: nroots, pad: pad, mask: (0xff << uint(symsize)) & 0xff,
		variant: v,
	}

	switch v {
	case CharFixed, CCSDS:
		c.cfg = ccsds.Cfg
	case GeneralChar:
		tbl, err := galois.Build(symsize, gfpoly)
		if err != nil {
			return nil, errors.Wrap(ErrConfig, err.Error())
		}
		gen := galois.BuildGenerator(tbl, fcr, prim, nroots)
		c.cfg = &engine.Config{
			AlphaTo: tbl.AlphaTo, IndexOf: tbl.IndexOf, Gen: gen,
			Symsize: uint(symsize), NN: tbl.NN, FCR: fcr, Prim: prim,
			IPrim: galois.InverseMod(prim, tbl.NN), NRoots: nroots, Pad: pad,
		}
	}
	return c, nil
}

func checkCharParams(symsize, n, k, nroots int) error {
	if symsize < 1 || symsize > 8 {
		return errors.Wrapf(ErrConfig, "symsize=%d out of range [1,8] for the char family", symsize)
	}
	nn := (1 << uint(symsize)) - 1
	if n < 2 || n > nn {
		return errors.Wrapf(ErrConfig, "n=%d out of range [2,%d]", n, nn)
	}
	if n > 255 {
		return errors.Wrapf(ErrConfig, "n=%d exceeds the char family's 255 ceiling", n)
	}
	if nroots <= 0 || k >= n {
		return errors.Wrapf(ErrConfig, "k=%d must be < n=%d", k, n)
	}
	return nil
}

// N, K, Symsize, Gfpoly, FCR, Prim, NRoots, Pad, Mask and Variant expose the
// codec's read-only configuration, filled in with defaults as necessary
// (spec.md §8 "attribute exposure").
func (c *Codec) N() int           { return c.n }
func (c *Codec) K() int           { return c.k }
func (c *Codec) Symsize() int     { return c.symsize }
func (c *Codec) Gfpoly() int      { return c.gfpoly }
func (c *Codec) FCR() int         { return c.fcr }
func (c *Codec) Prim() int        { return c.prim }
func (c *Codec) NRoots() int      { return c.nroots }
func (c *Codec) Pad() int         { return c.pad }
func (c *Codec) Mask() int        { return c.mask }
func (c *Codec) Variant() Variant { return c.variant }

// String mirrors reedsolomon.c's codec_repr format.
func (c *Codec) String() string {
	return fmt.Sprintf("<Codec(n=%d, k=%d, symsize=%d, gfpoly=%#x, fcr=%d, prim=%d, variant=%q)>",
		c.n, c.k, c.symsize, c.gfpoly, c.fcr, c.prim, c.variant)
}

func (c *Codec) checkSymbols(data []byte) error {
	for _, d := range data {
		if int(d)&c.mask != 0 {
			return errors.Wrapf(ErrSymbolRange, "symbol %#x has bits set outside the low %d bits", d, c.symsize)
		}
	}
	return nil
}

// userToNN biases a user-space (de-padded) index into NN-space for the
// internal engine; nnToUser is its inverse. Keeping the two coordinate
// systems named, rather than doing arithmetic inline, is what spec.md §9
// asks for to avoid an off-by-pad bug.
func (c *Codec) userToNN(userPos int) int { return userPos + c.pad }
func (c *Codec) nnToUser(nnPos int) int   { return nnPos - c.pad }

// Encode requires len(data) == k and every symbol in range, and returns the
// n-symbol codeword: the original data followed by the computed parity.
func (c *Codec) Encode(data []byte) ([]byte, error) {
	if len(data) != c.k {
		return nil, errors.Wrapf(ErrLengthMismatch, "len(data)=%d, want k=%d", len(data), c.k)
	}
	if err := c.checkSymbols(data); err != nil {
		return nil, err
	}

	out := make([]byte, c.n)
	copy(out, data)

	switch c.variant {
	case CCSDS:
		parity := ccsds.Encode(data)
		copy(out[c.k:], parity)
	default:
		conv := make([]int, len(data))
		for i, d := range data {
			conv[i] = int(d)
		}
		parity := engine.Encode(c.cfg, conv)
		for i, p := range parity {
			out[c.k+i] = byte(p)
		}
	}
	return out, nil
}

// Decode requires len(codeword) == n and every symbol in range, and returns
// the corrected k-symbol data plus the de-padded positions of every symbol
// the decoder touched. erasures, if non-nil, must lie in [0,n).
func (c *Codec) Decode(codeword []byte, erasures []int) ([]byte, []int, error) {
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

	work := append([]byte(nil), codeword...)

	var nnCorrections []int
	var err error
	switch c.variant {
	case CCSDS:
		nnCorrections, err = ccsds.Decode(work, nnEras)
	default:
		conv := make([]int, len(work))
		for i, w := range work {
			conv[i] = int(w)
		}
		var corr []int
		corr, err = engine.Decode(c.cfg, conv, nnEras)
		if err == nil {
			for i, v := range conv {
				work[i] = byte(v)
			}
			nnCorrections = corr
		}
	}
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

// EncodeChunks is the column-major batch encoder: all of chunks must share
// one length L. For each row r it assembles a k-symbol vector from the r-th
// byte of every input chunk, encodes it, and scatters the resulting parity
// symbols into the last nroots output chunks at position r. The first k
// output chunks are the (unmodified) input chunks.
func (c *Codec) EncodeChunks(chunks [][]byte) ([][]byte, error) {
	if len(chunks) != c.k {
		return nil, errors.Wrapf(ErrLengthMismatch, "len(chunks)=%d, want k=%d", len(chunks), c.k)
	}
	l, err := equalChunkLen(chunks)
	if err != nil {
		return nil, err
	}

	out := make([][]byte, c.n)
	copy(out, chunks)
	for i := c.k; i < c.n; i++ {
		out[i] = make([]byte, l)
	}

	rows := rowWorkers(l)
	errs := make([]error, rows)
	var wg sync.WaitGroup
	chunkSize := (l + rows - 1) / rows
	for w := 0; w < rows; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > l {
			end = l
		}
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			row := make([]byte, c.k)
			for r := start; r < end; r++ {
				for j := 0; j < c.k; j++ {
					row[j] = chunks[j][r]
				}
				encoded, err := c.Encode(row)
				if err != nil {
					errs[w] = err
					return
				}
				for j := 0; j < c.nroots; j++ {
					out[c.k+j][r] = encoded[c.k+j]
				}
			}
		}(w, start, end)
	}
	wg.Wait()
	for _, e := range errs {
		if e != nil {
			return nil, e
		}
	}
	return out, nil
}

// DecodeChunks is the symmetric batch decoder. Erasure positions apply to
// every row identically. Per-row corrections are unioned into one flat,
// deduplicated, sorted corrections list; any row failure aborts the whole
// batch with ErrUncorrectable and discards partial output, per spec.md §4.7.
func (c *Codec) DecodeChunks(chunks [][]byte, erasures []int) ([][]byte, []int, error) {
	if len(chunks) != c.n {
		return nil, nil, errors.Wrapf(ErrLengthMismatch, "len(chunks)=%d, want n=%d", len(chunks), c.n)
	}
	l, err := equalChunkLen(chunks)
	if err != nil {
		return nil, nil, err
	}

	out := make([][]byte, c.k)
	for i := range out {
		out[i] = make([]byte, l)
	}

	rows := rowWorkers(l)
	errs := make([]error, rows)
	rowCorrections := make([][]int, l)
	var wg sync.WaitGroup
	chunkSize := (l + rows - 1) / rows
	for w := 0; w < rows; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > l {
			end = l
		}
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			erasCopy := append([]int(nil), erasures...)
			codeword := make([]byte, c.n)
			for r := start; r < end; r++ {
				for j := 0; j < c.n; j++ {
					codeword[j] = chunks[j][r]
				}
				data, corr, err := c.Decode(codeword, erasCopy)
				if err != nil {
					errs[w] = err
					return
				}
				for j := 0; j < c.k; j++ {
					out[j][r] = data[j]
				}
				rowCorrections[r] = corr
			}
		}(w, start, end)
	}
	wg.Wait()
	for _, e := range errs {
		if e != nil {
			return nil, nil, e
		}
	}

	seen := make(map[int]bool)
	var corrections []int
	for _, rc := range rowCorrections {
		for _, pos := range rc {
			if !seen[pos] {
				seen[pos] = true
				corrections = append(corrections, pos)
			}
		}
	}
	sort.Ints(corrections)

	return out, corrections, nil
}

// UpdateChunk exploits RS linearity: it encodes a data vector that is zero
// everywhere except dataindex (where it carries datadelta), and XORs the
// resulting parity symbol at parityindex into oldparity, row by row. Valid
// only for CHAR8_FIXED and GENERAL_CHAR: CCSDS's dual-basis remap is
// non-linear in the byte representation, so the shortcut does not hold.
func (c *Codec) UpdateChunk(dataindex int, datadelta []byte, parityindex int, oldparity []byte) ([]byte, error) {
	if c.variant == CCSDS {
		return nil, errors.Wrap(ErrConfig, "UpdateChunk is not valid for the CCSDS variant")
	}
	if dataindex < 0 || dataindex >= c.k {
		return nil, errors.Wrapf(ErrConfig, "dataindex=%d out of range [0,%d)", dataindex, c.k)
	}
	if parityindex < c.k || parityindex >= c.n {
		return nil, errors.Wrapf(ErrConfig, "parityindex=%d out of range [%d,%d)", parityindex, c.k, c.n)
	}
	if len(datadelta) != len(oldparity) {
		return nil, errors.Wrapf(ErrLengthMismatch, "len(datadelta)=%d, len(oldparity)=%d", len(datadelta), len(oldparity))
	}

	deltaParity := make([]byte, len(oldparity))
	row := make([]byte, c.k)
	parityOffset := parityindex - c.k
	for r := range datadelta {
		for j := range row {
			row[j] = 0
		}
		row[dataindex] = datadelta[r]
		encoded, err := c.Encode(row)
		if err != nil {
			return nil, err
		}
		deltaParity[r] = encoded[c.k+parityOffset]
	}
	return Xor(oldparity, deltaParity)
}

func equalChunkLen(chunks [][]byte) (int, error) {
	if len(chunks) == 0 {
		return 0, errors.Wrap(ErrLengthMismatch, "no chunks given")
	}
	l := len(chunks[0])
	for _, ch := range chunks[1:] {
		if len(ch) != l {
			return 0, errors.Wrap(ErrLengthMismatch, "chunks of unequal length")
		}
	}
	return l, nil
}
