package galois

import "testing"

// TestGeneratorRoots checks that g(alpha^(fcr+i)*prim) == 0 for every root
// the generator is supposed to have, by Horner-evaluating the polynomial in
// GF(2^m) arithmetic.
func TestGeneratorRoots(t *testing.T) {
	tbl, err := Build(8, 0x187)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	fcr, prim, nroots := 112, 11, 32
	gen := BuildGenerator(tbl, fcr, prim, nroots)
	if len(gen) != nroots+1 {
		t.Fatalf("len(gen) = %d, want %d", len(gen), nroots+1)
	}
	if gen[nroots] != 1 {
		t.Fatalf("gen[nroots] = %d, want 1 (monic)", gen[nroots])
	}

	for i := 0; i < nroots; i++ {
		root := tbl.AlphaTo[tbl.ModNN((fcr+i)*prim)]
		// Horner evaluation of gen(x) at x=root. gen is stored with gen[0]
		// as the lowest-degree coefficient.
		acc := 0
		for j := nroots; j >= 0; j-- {
			acc = tbl.Mul(acc, root) ^ gen[j]
		}
		if acc != 0 {
			t.Fatalf("gen(alpha^%d) = %d, want 0 (root %d)", (fcr+i)*prim, acc, i)
		}
	}
}

func TestGeneratorSmallField(t *testing.T) {
	tbl, err := Build(4, 0x13)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	gen := BuildGenerator(tbl, 1, 1, 4)
	for i := 0; i < 4; i++ {
		root := tbl.AlphaTo[tbl.ModNN((1+i)*1)]
		acc := 0
		for j := len(gen) - 1; j >= 0; j-- {
			acc = tbl.Mul(acc, root) ^ gen[j]
		}
		if acc != 0 {
			t.Fatalf("gen(alpha^%d) = %d, want 0", (1+i)*1, acc)
		}
	}
}
