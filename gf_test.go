// Copyright (c) 2021 Jarrod Bennett
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package rsenc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// Hardcoded width-4 tables from the reference firmware, precomputed there
// by a MATLAB script. The init-time derivation must reproduce them
// bit-exactly.
var refAdditions4 = [16][16]byte{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{1, 0, 3, 2, 5, 4, 7, 6, 9, 8, 11, 10, 13, 12, 15, 14},
	{2, 3, 0, 1, 6, 7, 4, 5, 10, 11, 8, 9, 14, 15, 12, 13},
	{3, 2, 1, 0, 7, 6, 5, 4, 11, 10, 9, 8, 15, 14, 13, 12},
	{4, 5, 6, 7, 0, 1, 2, 3, 12, 13, 14, 15, 8, 9, 10, 11},
	{5, 4, 7, 6, 1, 0, 3, 2, 13, 12, 15, 14, 9, 8, 11, 10},
	{6, 7, 4, 5, 2, 3, 0, 1, 14, 15, 12, 13, 10, 11, 8, 9},
	{7, 6, 5, 4, 3, 2, 1, 0, 15, 14, 13, 12, 11, 10, 9, 8},
	{8, 9, 10, 11, 12, 13, 14, 15, 0, 1, 2, 3, 4, 5, 6, 7},
	{9, 8, 11, 10, 13, 12, 15, 14, 1, 0, 3, 2, 5, 4, 7, 6},
	{10, 11, 8, 9, 14, 15, 12, 13, 2, 3, 0, 1, 6, 7, 4, 5},
	{11, 10, 9, 8, 15, 14, 13, 12, 3, 2, 1, 0, 7, 6, 5, 4},
	{12, 13, 14, 15, 8, 9, 10, 11, 4, 5, 6, 7, 0, 1, 2, 3},
	{13, 12, 15, 14, 9, 8, 11, 10, 5, 4, 7, 6, 1, 0, 3, 2},
	{14, 15, 12, 13, 10, 11, 8, 9, 6, 7, 4, 5, 2, 3, 0, 1},
	{15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
}

var refProducts4 = [16][4]byte{
	{0, 0, 0, 0},
	{13, 12, 8, 7},
	{9, 11, 3, 14},
	{4, 7, 11, 9},
	{1, 5, 6, 15},
	{12, 9, 14, 8},
	{8, 14, 5, 1},
	{5, 2, 13, 6},
	{2, 10, 12, 13},
	{15, 6, 4, 10},
	{11, 1, 15, 3},
	{6, 13, 7, 4},
	{3, 15, 10, 2},
	{14, 3, 2, 5},
	{10, 4, 9, 12},
	{7, 8, 1, 11},
}

func TestAddTableReference(t *testing.T) {
	f, err := fieldTables(4)
	require.NoError(t, err)

	for a := 0; a < f.size; a++ {
		for b := 0; b < f.size; b++ {
			require.Equal(t, refAdditions4[a][b], f.fieldAdd(byte(a), byte(b)),
				"add mismatch at %d+%d", a, b)
		}
	}
}

func TestGenProductTableReference(t *testing.T) {
	f, err := fieldTables(4)
	require.NoError(t, err)

	// t=4 is the reference firmware's configuration.
	for v := 0; v < f.size; v++ {
		for j := 0; j < 4; j++ {
			require.Equal(t, refProducts4[v][j], f.mulGen(4, byte(v), j),
				"product mismatch at value %d, coefficient %d", v, j)
		}
	}
}

// Width-5 generator taps for t=4: v=1 row is the raw coefficients of
// g(x) = (x+a)(x+a^2)(x+a^3)(x+a^4) over GF(32)/0x25.
func TestGenPolyWidth5(t *testing.T) {
	f, err := fieldTables(5)
	require.NoError(t, err)

	assert.Equal(t, []byte{30, 6, 9, 17}, f.gen[4][1])
	assert.Equal(t, []byte{1, 2, 4, 8, 16, 5, 10, 20}, f.exp[:8])
}

func TestFieldTablesUnsupported(t *testing.T) {
	for _, m := range []int{-1, 0, 1, 2, 3, 6, 7, 8, 100} {
		_, err := fieldTables(m)
		assert.ErrorIs(t, err, ErrUnsupportedFieldWidth, "m=%d", m)
	}
}

// Every table cell must hold a valid symbol for its width.
func TestTableTotality(t *testing.T) {
	for _, m := range []int{4, 5} {
		f, err := fieldTables(m)
		require.NoError(t, err)

		limit := byte(f.size - 1)
		for a := range f.add {
			for b := range f.add[a] {
				require.LessOrEqual(t, f.add[a][b], limit)
			}
		}
		for pn, tbl := range f.gen {
			if tbl == nil {
				continue
			}
			require.Len(t, tbl, f.size, "t=%d", pn)
			for v := range tbl {
				require.Len(t, tbl[v], pn)
				for _, p := range tbl[v] {
					require.LessOrEqual(t, p, limit)
				}
			}
		}
	}
}

func TestFieldAxioms(t *testing.T) {
	for _, m := range []int{4, 5} {
		f, err := fieldTables(m)
		require.NoError(t, err)

		rapid.Check(t, func(t *rapid.T) {
			a := byte(rapid.IntRange(0, f.size-1).Draw(t, "a"))
			b := byte(rapid.IntRange(0, f.size-1).Draw(t, "b"))

			assert.Equal(t, byte(0), f.fieldAdd(a, a), "a+a must be 0")
			assert.Equal(t, a, f.fieldAdd(a, 0), "a+0 must be a")
			assert.Equal(t, f.fieldAdd(b, a), f.fieldAdd(a, b))
		})
	}
}
