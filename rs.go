// Copyright (c) 2021 Jarrod Bennett
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package rsenc implements a shortened systematic Reed-Solomon encoder
// over the small fields GF(2^4) and GF(2^5).
//
// It is designed to be lightweight for resource constrained devices:
// table space is traded for computation, so encoding performs only table
// lookups and additions, never a runtime field multiplication or division.
// The generator polynomial is fixed per (field width, parity count) pair
// to the MATLAB rsenc() default, g(x) = (x+a)(x+a^2)...(x+a^t), and is
// not configurable.
//
// Only parity generation is implemented. Decoding, syndrome computation
// and erasure handling are out of scope.
package rsenc

import "errors"

// RS is a shortened systematic Reed-Solomon encoder for one fixed
// (k, t, m) configuration.
//
// It holds no cross-call state beyond read-only shared tables, so a
// single RS may be used from any number of goroutines as long as each
// call owns its message and parity buffers.
type RS struct {
	MsgNum    int // MsgNum is the number of message symbols (k).
	ParityNum int // ParityNum is the number of parity symbols (t).

	m         int // symbol width in bits
	shortened int // implicit leading zero symbols of the shortened block

	f   *field
	gen [][]byte // gen[v][j]: v times the j-th generator coefficient
}

var (
	ErrIllegalParams     = errors.New("rsenc: illegal message/parity number: <= 0 or beyond design limits")
	ErrInvalidShortening = errors.New("rsenc: message+parity exceed the natural code length 2^m-1")
	ErrMismatchMsgLen    = errors.New("rsenc: message length mismatches configured symbol number")
	ErrShortParityBuf    = errors.New("rsenc: parity buffer shorter than parity number")
	ErrSymbolRange       = errors.New("rsenc: symbol value out of field range")
)

// New creates an RS for k message symbols and t parity symbols over an
// m-bit field. Only m = 4 and m = 5 are supported; every other width
// returns ErrUnsupportedFieldWidth.
//
// k+t must not exceed 2^m-1, the natural codeword length of the field.
// The difference (2^m-1)-(k+t) is made up of implicit leading zero
// symbols that are never transmitted.
func New(k, t, m int) (*RS, error) {
	f, err := fieldTables(m)
	if err != nil {
		return nil, err
	}
	if k <= 0 || t <= 0 || k > MaxMessageLen || t > MaxParityNum {
		return nil, ErrIllegalParams
	}
	if k+t > f.size-1 {
		return nil, ErrInvalidShortening
	}
	return &RS{
		MsgNum:    k,
		ParityNum: t,
		m:         m,
		shortened: (f.size - 1) - (k + t),
		f:         f,
		gen:       f.gen[t],
	}, nil
}

// Encode computes the parity symbols for msg and writes them into parity.
//
// msg must hold exactly MsgNum symbols, each < 2^m; parity must have room
// for at least ParityNum symbols and only its first ParityNum entries are
// written. All conditions are checked before anything is touched.
//
// Parity is left in shift-register order: parity[0] pairs with the
// highest remaining power of x. Callers that need a different wire order
// must permute the output themselves; Encode never reorders.
func (r *RS) Encode(msg, parity []byte) error {
	if err := r.checkEncode(msg, parity); err != nil {
		return err
	}

	var acc [MaxParityNum]byte
	// Implicit leading zeros of the shortened block.
	for i := 0; i < r.shortened; i++ {
		r.step(&acc, 0)
	}
	for _, s := range msg {
		r.step(&acc, s)
	}
	copy(parity[:r.ParityNum], acc[:r.ParityNum])
	return nil
}

// step feeds one symbol through the parity shift register:
//
//	acc = [acc(1:), 0] + (s + acc[0]) * g
//
// with both operations in GF(2^m), served from the lookup tables.
func (r *RS) step(acc *[MaxParityNum]byte, s byte) {
	f, t := r.f, r.ParityNum
	feedback := f.fieldAdd(s, acc[0])

	var row [MaxParityNum]byte
	for j := 0; j < t; j++ {
		row[j] = f.mulGen(t, feedback, j)
	}
	for j := 0; j < t-1; j++ {
		acc[j] = f.fieldAdd(acc[j+1], row[j])
	}
	acc[t-1] = f.fieldAdd(0, row[t-1])
}

func (r *RS) checkEncode(msg, parity []byte) error {
	if len(msg) != r.MsgNum {
		return ErrMismatchMsgLen
	}
	if len(parity) < r.ParityNum {
		return ErrShortParityBuf
	}
	limit := byte(r.f.size - 1)
	for _, s := range msg {
		if s > limit {
			return ErrSymbolRange
		}
	}
	return nil
}

// Codeword appends the systematic codeword, message followed by parity,
// to dst and returns the extended slice.
func (r *RS) Codeword(msg, dst []byte) ([]byte, error) {
	var parity [MaxParityNum]byte
	if err := r.Encode(msg, parity[:]); err != nil {
		return nil, err
	}
	dst = append(dst, msg...)
	return append(dst, parity[:r.ParityNum]...), nil
}
