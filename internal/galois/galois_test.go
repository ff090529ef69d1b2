package galois

import "testing"

func TestBuildCCSDSTables(t *testing.T) {
	tbl, err := Build(8, 0x187)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if tbl.NN != 255 {
		t.Fatalf("NN = %d, want 255", tbl.NN)
	}
	if tbl.AlphaTo[0] != 1 {
		t.Fatalf("AlphaTo[0] = %d, want 1", tbl.AlphaTo[0])
	}
	if tbl.IndexOf[0] != tbl.NN {
		t.Fatalf("IndexOf[0] = %d, want sentinel %d", tbl.IndexOf[0], tbl.NN)
	}
	seen := make(map[int]bool)
	for i := 0; i < tbl.NN; i++ {
		v := tbl.AlphaTo[i]
		if v == 0 {
			t.Fatalf("AlphaTo[%d] == 0, every power of a primitive element must be non-zero", i)
		}
		if seen[v] {
			t.Fatalf("AlphaTo[%d] = %d repeats an earlier value: gfpoly is not primitive", i, v)
		}
		seen[v] = true
		if tbl.IndexOf[v] != i {
			t.Fatalf("IndexOf[%d] = %d, want %d", v, tbl.IndexOf[v], i)
		}
	}
}

func TestBuildRejectsNonPrimitive(t *testing.T) {
	// 0x11D is the commonly used AES-style polynomial for GF(2^8), but with
	// generator seed 1 and this shift scheme it is still primitive; instead
	// use an even (hence reducible, non-primitive) "polynomial" to exercise
	// the failure path.
	if _, err := Build(8, 0x100); err == nil {
		t.Fatalf("expected an error for a non-primitive polynomial")
	}
}

func TestBuildRejectsBadSymsize(t *testing.T) {
	if _, err := Build(0, 0x7); err == nil {
		t.Fatalf("expected an error for symsize 0")
	}
	if _, err := Build(33, 0x7); err == nil {
		t.Fatalf("expected an error for symsize 33")
	}
}

func TestModNN(t *testing.T) {
	tbl, err := Build(4, 0x13)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for _, x := range []int{0, 1, tbl.NN - 1, tbl.NN, tbl.NN + 1, 3 * tbl.NN, 100} {
		got := tbl.ModNN(x)
		if got < 0 || got >= tbl.NN {
			t.Fatalf("ModNN(%d) = %d, out of range [0,%d)", x, got, tbl.NN)
		}
	}
}

func TestMulInv(t *testing.T) {
	tbl, err := Build(8, 0x187)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for a := 1; a <= tbl.NN; a++ {
		inv := tbl.Inv(a)
		if got := tbl.Mul(a, inv); got != 1 {
			t.Fatalf("Mul(%d, Inv(%d)=%d) = %d, want 1", a, a, inv, got)
		}
	}
	if got := tbl.Mul(0, 42); got != 0 {
		t.Fatalf("Mul(0, 42) = %d, want 0", got)
	}
}

func TestInverseMod(t *testing.T) {
	nn := 255
	for _, p := range []int{1, 11, 112, 13} {
		inv := InverseMod(p, nn)
		if (p*inv)%nn != 1 {
			t.Fatalf("InverseMod(%d,%d)=%d: (%d*%d) mod %d = %d, want 1", p, nn, inv, p, inv, nn, (p*inv)%nn)
		}
	}
}
