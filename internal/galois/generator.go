package galois

// BuildGenerator computes the length-(nroots+1) generator polynomial
//
//	g(x) = prod_{i=0..nroots-1} (x - alpha^((fcr+i)*prim))
//
// stored as gen[0..nroots] with gen[nroots] = 1 (monic, highest-degree term
// last to match the LFSR convention used by internal/engine). Root exponents
// are reduced with Tables.ModNN to avoid a divide.
func BuildGenerator(t *Tables, fcr, prim, nroots int) []int {
	gen := make([]int, nroots+1)
	gen[0] = 1
	for i, root := 0, 0; i < nroots; i++ {
		gen[i+1] = 1
		root = t.ModNN((i + fcr) * prim)
		// Multiply the running product by (x - alpha^root). Because the
		// field has characteristic 2, subtraction is XOR and this is the
		// same step as multiplying by (x + alpha^root).
		for j := i; j > 0; j-- {
			if gen[j] != 0 {
				gen[j] = gen[j-1] ^ t.Mul(gen[j], t.AlphaTo[root])
			} else {
				gen[j] = gen[j-1]
			}
		}
		gen[0] = t.Mul(gen[0], t.AlphaTo[root])
	}
	return gen
}
