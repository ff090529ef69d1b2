package ccsds

import "github.com/xtaci/rscodec/internal/engine"

// Encode computes the 32 CCSDS parity symbols for a 223-byte dual-basis
// data slice, returned in dual basis. Per spec.md §4.5: map data through Tal1tab into a
// conventional-basis scratch buffer, run the fixed 8-bit encoder, then map
// the resulting parity symbols through Taltab in place.
func Encode(data []byte) []byte {
	conv := make([]int, len(data))
	for i, d := range data {
		conv[i] = int(Tal1tab[d])
	}
	parity := engine.Encode(Cfg, conv)
	out := make([]byte, len(parity))
	for i, p := range parity {
		out[i] = Taltab[byte(p)]
	}
	return out
}

// Decode corrects a dual-basis-encoded 255-byte codeword in place and
// returns the NN-space-biased positions of every symbol touched. erasPos
// must already be NN-space biased (the façade's job), matching
// internal/engine's contract.
//
// Symmetric with Encode: the received word is mapped through Tal1tab into
// conventional basis, decoded with the fixed 8-bit engine, and the corrected
// result mapped back through Taltab before being written back into
// codeword.
func Decode(codeword []byte, erasPos []int) ([]int, error) {
	conv := make([]int, len(codeword))
	for i, c := range codeword {
		conv[i] = int(Tal1tab[c])
	}
	corrections, err := engine.Decode(Cfg, conv, erasPos)
	if err != nil {
		return nil, err
	}
	for i, c := range conv {
		codeword[i] = Taltab[byte(c)]
	}
	return corrections, nil
}
