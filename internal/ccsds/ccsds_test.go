package ccsds

import "testing"

func TestSelfTest(t *testing.T) {
	if err := SelfTest(); err != nil {
		t.Fatalf("SelfTest: %v", err)
	}
}

func TestDualBasisInvolution(t *testing.T) {
	for x := 0; x < 256; x++ {
		if got := Taltab[Tal1tab[byte(x)]]; got != byte(x) {
			t.Fatalf("Taltab[Tal1tab[%d]] = %d, want %d", x, got, x)
		}
		if got := Tal1tab[Taltab[byte(x)]]; got != byte(x) {
			t.Fatalf("Tal1tab[Taltab[%d]] = %d, want %d", x, got, x)
		}
	}
}

func TestEncodeAllZero(t *testing.T) {
	data := make([]byte, K)
	parity := Encode(data)
	if len(parity) != NRoots {
		t.Fatalf("expected %d parity bytes, got %d", NRoots, len(parity))
	}
	want := Taltab[0]
	for i, p := range parity {
		if p != want {
			t.Fatalf("parity[%d] = %d, want %d (Taltab[0])", i, p, want)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	data := make([]byte, K)
	for i := range data {
		data[i] = byte(i * 3)
	}
	parity := Encode(data)
	codeword := append(append([]byte{}, data...), parity...)

	corrected := append([]byte{}, codeword...)
	corrections, err := Decode(corrected, nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(corrections) != 0 {
		t.Fatalf("expected no corrections, got %v", corrections)
	}
	for i, d := range data {
		if corrected[i] != d {
			t.Fatalf("data mismatch at %d: got %d want %d", i, corrected[i], d)
		}
	}
}

func TestDecodeSingleError(t *testing.T) {
	data := make([]byte, K)
	for i := range data {
		data[i] = byte(i)
	}
	parity := Encode(data)
	codeword := append(append([]byte{}, data...), parity...)
	corrupted := append([]byte{}, codeword...)
	corrupted[5] ^= 0x40

	corrections, err := Decode(corrupted, nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	found := false
	for _, c := range corrections {
		if c-Pad == 5 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected correction at position 5, got %v (pad=%d)", corrections, Pad)
	}
	for i, d := range data {
		if corrupted[i] != d {
			t.Fatalf("data mismatch at %d: got %d want %d", i, corrupted[i], d)
		}
	}
}
