package engine

import (
	"math/rand"
	"testing"

	"github.com/xtaci/rscodec/internal/galois"
)

func testConfig(t *testing.T, symsize, fcr, prim, nroots int) *Config {
	t.Helper()
	gfpoly := map[int]int{2: 0x7, 3: 0xb, 4: 0x13, 5: 0x25, 6: 0x43, 7: 0x89, 8: 0x187}[symsize]
	tbl, err := galois.Build(symsize, gfpoly)
	if err != nil {
		t.Fatalf("galois.Build: %v", err)
	}
	gen := galois.BuildGenerator(tbl, fcr, prim, nroots)
	return &Config{
		AlphaTo: tbl.AlphaTo,
		IndexOf: tbl.IndexOf,
		Gen:     gen,
		Symsize: uint(symsize),
		NN:      tbl.NN,
		FCR:     fcr,
		Prim:    prim,
		IPrim:   galois.InverseMod(prim, tbl.NN),
		NRoots:  nroots,
		Pad:     0,
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cfg := testConfig(t, 8, 112, 11, 32)
	k := 223
	data := make([]int, k)
	rnd := rand.New(rand.NewSource(1))
	for i := range data {
		data[i] = rnd.Intn(256)
	}
	parity := Encode(cfg, data)
	codeword := append(append([]int{}, data...), parity...)

	corrections, err := Decode(cfg, codeword, nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(corrections) != 0 {
		t.Fatalf("expected no corrections on a clean codeword, got %v", corrections)
	}
	for i, d := range data {
		if codeword[i] != d {
			t.Fatalf("data mismatch at %d: got %d want %d", i, codeword[i], d)
		}
	}
}

func TestDecodeCorrectsErrors(t *testing.T) {
	cfg := testConfig(t, 8, 112, 11, 32)
	k := 223
	data := make([]int, k)
	for i := range data {
		data[i] = i % 256
	}
	parity := Encode(cfg, data)
	codeword := append(append([]int{}, data...), parity...)

	// nroots/2 = 16 correctable errors with no erasures.
	corrupted := append([]int{}, codeword...)
	errPositions := []int{0, 5, 10, 50, 100, 150, 200, 222, 223, 230, 240, 250, 254, 3, 7, 9}
	for _, p := range errPositions {
		corrupted[p] ^= 0x55
	}

	corrections, err := Decode(cfg, corrupted, nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(corrections) != len(errPositions) {
		t.Fatalf("expected %d corrections, got %d (%v)", len(errPositions), len(corrections), corrections)
	}
	for i, d := range data {
		if corrupted[i] != d {
			t.Fatalf("data mismatch at %d: got %d want %d", i, corrupted[i], d)
		}
	}
}

func TestDecodeWithErasures(t *testing.T) {
	cfg := testConfig(t, 8, 112, 11, 32)
	k := 223
	data := make([]int, k)
	for i := range data {
		data[i] = (i * 7) % 256
	}
	parity := Encode(cfg, data)
	codeword := append(append([]int{}, data...), parity...)

	corrupted := append([]int{}, codeword...)
	erasurePositions := []int{3, 17, 100, 222}
	for _, p := range erasurePositions {
		corrupted[p] = 0
	}

	corrections, err := Decode(cfg, corrupted, erasurePositions)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	for i, d := range data {
		if corrupted[i] != d {
			t.Fatalf("data mismatch at %d: got %d want %d", i, corrupted[i], d)
		}
	}
	seen := map[int]bool{}
	for _, c := range corrections {
		seen[c] = true
	}
	for _, p := range erasurePositions {
		if !seen[p] {
			t.Fatalf("expected erasure position %d in corrections %v", p, corrections)
		}
	}
}

func TestDecodeUncorrectable(t *testing.T) {
	cfg := testConfig(t, 8, 112, 11, 32)
	k := 223
	data := make([]int, k)
	for i := range data {
		data[i] = i % 256
	}
	parity := Encode(cfg, data)
	codeword := append(append([]int{}, data...), parity...)

	corrupted := append([]int{}, codeword...)
	// More than nroots/2 = 16 errors, no erasures.
	for i := 0; i < 20; i++ {
		corrupted[i*10] ^= 0xAA
	}

	corrections, err := Decode(cfg, corrupted, nil)
	if err == nil && len(corrections) == 0 {
		t.Fatalf("decoder reported success with no corrections on a saturated error pattern; expected either a reported correction or ErrUncorrectable")
	}
}

func TestDecodeCleanCodewordIsNoOp(t *testing.T) {
	cfg := testConfig(t, 5, 1, 1, 6)
	k := 25
	data := make([]int, k)
	for i := range data {
		data[i] = i % 32
	}
	parity := Encode(cfg, data)
	codeword := append(append([]int{}, data...), parity...)
	before := append([]int{}, codeword...)

	corrections, err := Decode(cfg, codeword, nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(corrections) != 0 {
		t.Fatalf("expected 0 corrections, got %v", corrections)
	}
	for i := range codeword {
		if codeword[i] != before[i] {
			t.Fatalf("clean codeword mutated at %d", i)
		}
	}
}

func TestGeneratorSmallField(t *testing.T) {
	cfg := testConfig(t, 4, 1, 1, 4)
	k := 11
	data := make([]int, k)
	for i := range data {
		data[i] = i % 16
	}
	parity := Encode(cfg, data)
	codeword := append(append([]int{}, data...), parity...)
	corrections, err := Decode(cfg, codeword, nil)
	if err != nil || len(corrections) != 0 {
		t.Fatalf("round trip failed on symsize=4: err=%v corrections=%v", err, corrections)
	}
}
