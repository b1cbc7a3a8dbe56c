// Copyright (c) 2021 Jarrod Bennett
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package rsenc

// Primitive polynomials for each supported field:
//
//	GF(2^4): x^4+x+1   (0x13)
//	GF(2^5): x^5+x^2+1 (0x25)
//
// The width-4 tables built here are identical to the hardcoded MATLAB
// rsenc() tables used by the reference firmware; see the regression tests.
// mathtool/gentbls dumps the same tables as text for offline auditing.
const (
	primPoly4 = 0x13
	primPoly5 = 0x25
)

func init() {
	fields[4] = newField(4, primPoly4)
	fields[5] = newField(5, primPoly5)
}

func newField(m, primPoly int) *field {
	f := &field{m: m, size: 1 << m}
	f.exp = genExpTable(f.size, primPoly)
	f.log = genLogTable(f.exp, f.size)
	f.add = genAddTable(f.size)

	f.gen = make([][][]byte, MaxParityNum+1)
	for t := 1; t <= MaxParityNum && t < f.size-1; t++ {
		f.gen[t] = genProductTable(f, genPolyCoeffs(f, t))
	}
	return f
}

// genExpTable builds the powers of the primitive element a = x.
func genExpTable(size, primPoly int) []byte {
	table := make([]byte, size-1)
	v := 1
	for i := 0; i < size-1; i++ {
		table[i] = byte(v)
		v <<= 1
		if v&size != 0 {
			v ^= primPoly
		}
	}
	return table
}

func genLogTable(expTable []byte, size int) []byte {
	table := make([]byte, size)
	for i, v := range expTable {
		table[v] = byte(i)
	}
	return table
}

// genAddTable builds the full 2^m x 2^m addition table. Addition in a
// characteristic-2 field is XOR reduced into the symbol range.
func genAddTable(size int) [][]byte {
	table := make([][]byte, size)
	for a := range table {
		table[a] = make([]byte, size)
		for b := range table[a] {
			table[a][b] = byte(a ^ b)
		}
	}
	return table
}

// genPolyCoeffs expands the narrow-sense generator polynomial
// g(x) = (x+a)(x+a^2)...(x+a^t) and returns its t non-leading
// coefficients ordered from the x^(t-1) term down to the constant term,
// the tap order the encode shift register consumes them in.
func genPolyCoeffs(f *field, t int) []byte {
	g := []byte{1} // ascending, g[d] is the coefficient of x^d
	for i := 1; i <= t; i++ {
		root := f.exp[i%(f.size-1)]
		next := make([]byte, len(g)+1)
		for d, c := range g {
			next[d+1] ^= c
			next[d] ^= f.mul(c, root)
		}
		g = next
	}

	coeffs := make([]byte, t)
	for j := 0; j < t; j++ {
		coeffs[j] = g[t-1-j]
	}
	return coeffs
}

// genProductTable pre-multiplies every field element by every generator
// coefficient, trading table space for runtime multiplications.
func genProductTable(f *field, coeffs []byte) [][]byte {
	table := make([][]byte, f.size)
	for v := range table {
		row := make([]byte, len(coeffs))
		for j, c := range coeffs {
			row[j] = f.mul(byte(v), c)
		}
		table[v] = row
	}
	return table
}
