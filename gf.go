// Copyright (c) 2021 Jarrod Bennett
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package rsenc

import "errors"

// Design limits. Small caps keep every table resident on constrained
// targets; loosen them together with the table builders if needed.
const (
	// MaxSymbolWidth is the largest supported symbol size in bits.
	MaxSymbolWidth = 5
	// MaxParityNum is the largest supported number of parity symbols.
	MaxParityNum = 8
	// MaxMessageLen is the largest supported message length in symbols.
	MaxMessageLen = 16
)

// field holds the lookup tables for one symbol width.
// Everything is built once during package init and never written again,
// so a field is safe for any number of concurrent readers.
type field struct {
	m    int    // symbol width in bits
	size int    // 2^m elements
	exp  []byte // exp[i] = a^i, size-1 entries
	log  []byte // log[exp[i]] = i, log[0] is unused

	add [][]byte // size x size addition table

	// gen[t][v][j] is v times the j-th coefficient of the degree-t
	// generator polynomial, j counting down from the x^(t-1) term.
	// One table per parity count up to MaxParityNum.
	gen [][][]byte
}

var fields [MaxSymbolWidth + 1]*field

var ErrUnsupportedFieldWidth = errors.New("rsenc: unsupported field width")

// fieldTables returns the table set for an m-bit symbol field.
// Only the widths populated during init are supported; anything else is
// a hard ErrUnsupportedFieldWidth, never a placeholder result.
func fieldTables(m int) (*field, error) {
	if m < 0 || m > MaxSymbolWidth || fields[m] == nil {
		return nil, ErrUnsupportedFieldWidth
	}
	return fields[m], nil
}

// fieldAdd is addition in GF(2^m), served from the addition table.
func (f *field) fieldAdd(a, b byte) byte {
	return f.add[a][b]
}

// mulGen multiplies v by the j-th coefficient of the degree-t generator
// polynomial. Pure table lookup; the encoder never multiplies at runtime.
func (f *field) mulGen(t int, v byte, j int) byte {
	return f.gen[t][v][j]
}

// mul is exp/log multiplication. It is only used while building tables.
func (f *field) mul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return f.exp[(int(f.log[a])+int(f.log[b]))%(f.size-1)]
}
