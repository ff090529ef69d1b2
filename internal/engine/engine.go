// Package engine implements the generic Reed-Solomon codeword machine:
// systematic LFSR encoding and Berlekamp-Massey/Chien/Forney decoding, over
// symbols represented as plain ints (so the same engine serves the 8-bit
// char path, the CCSDS path and the up-to-16-bit integer path alike).
//
// The engine works entirely in "NN-space": erasure positions passed in, and
// corrected positions returned, are biased by Config.Pad, exactly like the
// Karn librs convention this is descended from. Callers (the façade) are
// responsible for padding inputs and de-padding outputs at the user-facing
// boundary.
package engine

import "errors"

// ErrUncorrectable is returned when the received word has more errors and
// erasures than the code can correct: either Berlekamp-Massey produced a
// locator polynomial whose degree does not match the number of roots found
// by the Chien search, or Forney's formal-derivative denominator vanished.
var ErrUncorrectable = errors.New("engine: uncorrectable")

// Config bundles the field tables and code parameters the encoder/decoder
// need. It holds no per-call state and is safe to share across concurrent
// calls.
type Config struct {
	AlphaTo []int // length NN+1
	IndexOf []int // length NN+1
	Gen     []int // length NRoots+1, monic, Gen[NRoots] == 1
	Symsize uint  // bits per symbol; NN == 1<<Symsize - 1
	NN      int   // 2^symsize - 1
	FCR     int
	Prim    int
	IPrim   int // multiplicative inverse of Prim mod NN
	NRoots  int
	Pad     int
}

// a0 is the conventional sentinel for "log of zero" in index-form
// arithmetic: Config.IndexOf[0] == Config.NN by construction.
func (c *Config) a0() int { return c.NN }

func (c *Config) modnn(x int) int {
	for x >= c.NN {
		x -= c.NN
		x = (x >> c.Symsize) + (x & c.NN)
	}
	return x
}

// Encode computes the nroots parity symbols for a k-symbol data vector,
// where k = len(data). This is the systematic-LFSR remainder of
// data(x)*x^nroots modulo the generator, run only over the k actual data
// symbols: the pad leading zero symbols of the virtual NN-length codeword
// never perturb an all-zero parity register, so they are correctly skipped
// rather than simulated.
func Encode(cfg *Config, data []int) []int {
	nroots := cfg.NRoots
	parity := make([]int, nroots)

	for _, d := range data {
		feedback := cfg.IndexOf[d^parity[0]]
		if feedback != cfg.a0() {
			for j := 1; j < nroots; j++ {
				if g := cfg.Gen[nroots-j]; g != 0 {
					parity[j] ^= cfg.AlphaTo[cfg.modnn(feedback+cfg.IndexOf[g])]
				}
			}
		}
		copy(parity, parity[1:])
		if feedback != cfg.a0() {
			parity[nroots-1] = cfg.AlphaTo[cfg.modnn(feedback+cfg.IndexOf[cfg.Gen[0]])]
		} else {
			parity[nroots-1] = 0
		}
	}
	return parity
}

// Decode corrects codeword in place. erasPos holds erasure positions already
// biased into NN-space (i.e. user index + Config.Pad); it is not mutated.
// The returned slice holds every corrected position (errors and erasures),
// still NN-space biased — callers subtract Config.Pad and reject negative
// results as proof of an uncorrectable input (spec's pad-region rule).
//
// Returns ErrUncorrectable (with codeword left unmodified) when the error
// pattern exceeds the code's correction capability.
func Decode(cfg *Config, codeword []int, erasPos []int) ([]int, error) {
	nroots := cfg.NRoots
	if len(erasPos) > nroots {
		return nil, ErrUncorrectable
	}

	syn := computeSyndromes(cfg, codeword)

	synError := 0
	synIdx := make([]int, nroots)
	for i, s := range syn {
		synError |= s
		synIdx[i] = cfg.IndexOf[s]
	}
	if synError == 0 {
		return nil, nil
	}

	lambda := initErasureLocator(cfg, erasPos)
	lambda = berlekampMassey(cfg, lambda, synIdx, len(erasPos))

	degLambda, lambdaIdx := toIndexForm(cfg, lambda)

	roots, locs := chienSearch(cfg, lambdaIdx, degLambda)
	if degLambda != len(roots) {
		return nil, ErrUncorrectable
	}

	if err := forneyCorrect(cfg, codeword, synIdx, lambdaIdx, degLambda, roots, locs); err != nil {
		return nil, err
	}

	return locs, nil
}

func computeSyndromes(cfg *Config, codeword []int) []int {
	nroots := cfg.NRoots
	syn := make([]int, nroots)
	for i := range syn {
		syn[i] = codeword[0]
	}
	for j := 1; j < len(codeword); j++ {
		for i := 0; i < nroots; i++ {
			if syn[i] == 0 {
				syn[i] = codeword[j]
				continue
			}
			syn[i] = codeword[j] ^ cfg.AlphaTo[cfg.modnn(cfg.IndexOf[syn[i]]+(cfg.FCR+i)*cfg.Prim)]
		}
	}
	return syn
}

// initErasureLocator builds the starting erasure-locator polynomial Lambda0
// from the (already NN-space-biased) erasure positions.
func initErasureLocator(cfg *Config, erasPos []int) []int {
	nroots := cfg.NRoots
	lambda := make([]int, nroots+1)
	lambda[0] = 1
	if len(erasPos) == 0 {
		return lambda
	}
	lambda[1] = cfg.AlphaTo[cfg.modnn(cfg.Prim*(cfg.NN-1-erasPos[0]))]
	for i := 1; i < len(erasPos); i++ {
		u := cfg.modnn(cfg.Prim * (cfg.NN - 1 - erasPos[i]))
		for j := i + 1; j > 0; j-- {
			tmp := cfg.IndexOf[lambda[j-1]]
			if tmp != cfg.a0() {
				lambda[j] ^= cfg.AlphaTo[cfg.modnn(u+tmp)]
			}
		}
	}
	return lambda
}

// berlekampMassey extends the erasure locator to account for unknown error
// locations, bounded by t = floor((nroots-no_eras)/2) additional roots.
func berlekampMassey(cfg *Config, lambda, synIdx []int, noEras int) []int {
	nroots := cfg.NRoots
	a0 := cfg.a0()

	b := make([]int, nroots+1)
	for i, l := range lambda {
		b[i] = cfg.IndexOf[l]
	}

	r := noEras
	el := noEras
	t := make([]int, nroots+1)
	for {
		r++
		if r > nroots {
			break
		}
		discrR := 0
		for i := 0; i < r; i++ {
			if lambda[i] != 0 && synIdx[r-1-i] != a0 {
				discrR ^= cfg.AlphaTo[cfg.modnn(cfg.IndexOf[lambda[i]]+synIdx[r-1-i])]
			}
		}
		discrR = cfg.IndexOf[discrR]
		if discrR == a0 {
			copy(b[1:], b)
			b[0] = a0
			continue
		}
		t[0] = lambda[0]
		for i := 0; i < nroots; i++ {
			if b[i] != a0 {
				t[i+1] = lambda[i+1] ^ cfg.AlphaTo[cfg.modnn(discrR+b[i])]
			} else {
				t[i+1] = lambda[i+1]
			}
		}
		if 2*el <= r+noEras-1 {
			el = r + noEras - el
			for i := 0; i <= nroots; i++ {
				if lambda[i] == 0 {
					b[i] = a0
				} else {
					b[i] = cfg.modnn(cfg.IndexOf[lambda[i]] - discrR + cfg.NN)
				}
			}
		} else {
			copy(b[1:], b)
			b[0] = a0
		}
		copy(lambda, t)
	}
	return lambda
}

func toIndexForm(cfg *Config, lambda []int) (int, []int) {
	degLambda := 0
	out := make([]int, len(lambda))
	for i, l := range lambda {
		out[i] = cfg.IndexOf[l]
		if out[i] != cfg.a0() {
			degLambda = i
		}
	}
	return degLambda, out
}

// chienSearch evaluates Lambda at alpha^-i for i in [0,NN) (equivalently,
// steps of IPrim) and returns the roots found, in index form, together with
// their NN-space locations.
func chienSearch(cfg *Config, lambdaIdx []int, degLambda int) (roots, locs []int) {
	a0 := cfg.a0()
	reg := make([]int, degLambda+1)
	copy(reg[1:], lambdaIdx[1:degLambda+1])

	k := cfg.IPrim - 1
	for i := 1; i <= cfg.NN; i++ {
		q := 1
		for j := degLambda; j > 0; j-- {
			if reg[j] != a0 {
				reg[j] = cfg.modnn(reg[j] + j)
				q ^= cfg.AlphaTo[reg[j]]
			}
		}
		if q == 0 {
			roots = append(roots, i)
			locs = append(locs, k)
		}
		k = cfg.modnn(k + cfg.IPrim)
	}
	return roots, locs
}

// forneyCorrect computes the error-evaluator polynomial Omega = Lambda*S mod
// x^nroots and applies each magnitude to codeword at its located position
// (when that position falls within the physical array, i.e. loc-Pad in
// [0,len(codeword))). Positions in the pad region are left uncorrected in
// the data array — there is no slot for them — but are still reported by
// the caller via the returned locs so the façade can recognise them as proof
// of an uncorrectable input.
func forneyCorrect(cfg *Config, codeword, synIdx, lambdaIdx []int, degLambda int, roots, locs []int) error {
	nroots := cfg.NRoots
	a0 := cfg.a0()

	omega := make([]int, nroots+1)
	degOmega := 0
	for i := 0; i < nroots; i++ {
		tmp := 0
		jMax := degLambda
		if i < jMax {
			jMax = i
		}
		for j := jMax; j >= 0; j-- {
			if synIdx[i-j] != a0 && lambdaIdx[j] != a0 {
				tmp ^= cfg.AlphaTo[cfg.modnn(synIdx[i-j]+lambdaIdx[j])]
			}
		}
		if tmp != 0 {
			degOmega = i
		}
		omega[i] = cfg.IndexOf[tmp]
	}
	omega[nroots] = a0

	for j := len(roots) - 1; j >= 0; j-- {
		num1 := 0
		for i := degOmega; i >= 0; i-- {
			if omega[i] != a0 {
				num1 ^= cfg.AlphaTo[cfg.modnn(omega[i]+i*roots[j])]
			}
		}
		num2 := cfg.AlphaTo[cfg.modnn(roots[j]*(cfg.FCR-1)+cfg.NN)]
		den := 0
		iStart := degLambda
		if iStart > nroots-1 {
			iStart = nroots - 1
		}
		iStart &^= 1
		for i := iStart; i >= 0; i -= 2 {
			if lambdaIdx[i+1] != a0 {
				den ^= cfg.AlphaTo[cfg.modnn(lambdaIdx[i+1]+i*roots[j])]
			}
		}
		if den == 0 {
			return ErrUncorrectable
		}
		if num1 != 0 {
			physical := locs[j] - cfg.Pad
			if physical >= 0 && physical < len(codeword) {
				codeword[physical] ^= cfg.AlphaTo[cfg.modnn(cfg.IndexOf[num1]+cfg.IndexOf[num2]+cfg.NN-cfg.IndexOf[den])]
			}
		}
	}
	return nil
}
