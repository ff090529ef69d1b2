package ccsds

import (
	"fmt"

	"github.com/xtaci/rscodec/internal/galois"
)

// SelfTest rebuilds the fixed field/generator tables from gfpoly=0x187,
// verifies they are identical to Cfg (the tables Encode and Decode use), and
// checks that Taltab and Tal1tab are mutual inverses. Cfg is itself computed
// at package init by the same internal/galois builders; no precomputed table
// literals are shipped, so this confirms that a fresh build reproduces Cfg
// but does not check the builders against an independent reference.
func SelfTest() error {
	tbl, err := galois.Build(Symsize, Gfpoly)
	if err != nil {
		return fmt.Errorf("ccsds selftest: rebuild failed: %w", err)
	}
	if tbl.NN != Cfg.NN {
		return fmt.Errorf("ccsds selftest: NN mismatch: rebuilt %d, fixed %d", tbl.NN, Cfg.NN)
	}
	for i, v := range tbl.AlphaTo {
		if v != Cfg.AlphaTo[i] {
			return fmt.Errorf("ccsds selftest: alpha_to[%d] mismatch: rebuilt %d, fixed %d", i, v, Cfg.AlphaTo[i])
		}
	}
	for i, v := range tbl.IndexOf {
		if v != Cfg.IndexOf[i] {
			return fmt.Errorf("ccsds selftest: index_of[%d] mismatch: rebuilt %d, fixed %d", i, v, Cfg.IndexOf[i])
		}
	}
	gen := galois.BuildGenerator(tbl, FCR, Prim, NRoots)
	for i, v := range gen {
		if v != Cfg.Gen[i] {
			return fmt.Errorf("ccsds selftest: gen[%d] mismatch: rebuilt %d, fixed %d", i, v, Cfg.Gen[i])
		}
	}

	for x := 0; x < 256; x++ {
		if Taltab[Tal1tab[byte(x)]] != byte(x) {
			return fmt.Errorf("ccsds selftest: Taltab[Tal1tab[%d]] != %d", x, x)
		}
		if Tal1tab[Taltab[byte(x)]] != byte(x) {
			return fmt.Errorf("ccsds selftest: Tal1tab[Taltab[%d]] != %d", x, x)
		}
	}
	return nil
}
