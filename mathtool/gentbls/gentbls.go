// Copyright (c) 2021 Jarrod Bennett
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// This tool dumps the addition and generator-product tables for the
// supported symbol widths (4 and 5 bits) as text, for auditing the
// tables the library derives at init against fixed output.
//
// The generator polynomial per parity count t is the MATLAB rsenc()
// default g(x) = (x+a)(x+a^2)...(x+a^t).
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
)

const maxParity = 8

type gf struct {
	size int
	exp  []byte
	log  []byte
}

func main() {
	f, err := os.OpenFile("gf_tables", os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		log.Fatalln(err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	dump(w, 4, 0x13) // x^4+x+1
	dump(w, 5, 0x25) // x^5+x^2+1
	w.Flush()
}

func dump(w *bufio.Writer, m, primPoly int) {
	g := newGF(m, primPoly)

	fmt.Fprintf(w, "GF(2^%d), primitive polynomial %#x:\n", m, primPoly)
	fmt.Fprintf(w, "expTbl: %#v\n", g.exp)
	fmt.Fprintf(w, "logTbl: %#v\n", g.log)

	add := make([][]byte, g.size)
	for a := range add {
		add[a] = make([]byte, g.size)
		for b := range add[a] {
			add[a][b] = byte(a ^ b)
		}
	}
	fmt.Fprintf(w, "addTbl: %#v\n", add)

	for t := 1; t <= maxParity && t < g.size-1; t++ {
		coeffs := g.genPolyCoeffs(t)
		fmt.Fprintf(w, "genPoly t=%d (x^%d..x^0 taps): %v\n", t, t-1, coeffs)
		prod := make([][]byte, g.size)
		for v := range prod {
			prod[v] = make([]byte, t)
			for j, c := range coeffs {
				prod[v][j] = g.mul(byte(v), c)
			}
		}
		fmt.Fprintf(w, "genProductTbl t=%d: %#v\n", t, prod)
	}
	fmt.Fprintln(w)
}

func newGF(m, primPoly int) *gf {
	g := &gf{size: 1 << m}
	g.exp = make([]byte, g.size-1)
	v := 1
	for i := 0; i < g.size-1; i++ {
		g.exp[i] = byte(v)
		v <<= 1
		if v&g.size != 0 {
			v ^= primPoly
		}
	}
	g.log = make([]byte, g.size)
	for i, e := range g.exp {
		g.log[e] = byte(i)
	}
	return g
}

func (g *gf) mul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return g.exp[(int(g.log[a])+int(g.log[b]))%(g.size-1)]
}

func (g *gf) genPolyCoeffs(t int) []byte {
	p := []byte{1}
	for i := 1; i <= t; i++ {
		root := g.exp[i%(g.size-1)]
		next := make([]byte, len(p)+1)
		for d, c := range p {
			next[d+1] ^= c
			next[d] ^= g.mul(c, root)
		}
		p = next
	}
	coeffs := make([]byte, t)
	for j := 0; j < t; j++ {
		coeffs[j] = p[t-1-j]
	}
	return coeffs
}
