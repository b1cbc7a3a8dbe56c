package rsenc

import (
	xor "github.com/templexxx/xorsimd"
)

// Update recalculates parity in place after the message symbol at row
// changed from oldSym to newSym, without re-encoding the whole message.
//
// The code is linear over GF(2^m): the parity of msg+delta equals the
// parity of msg plus the parity of delta, and the delta message is zero
// everywhere except row. Addition of the two parity vectors is plain XOR
// in a characteristic-2 field.
func (r *RS) Update(oldSym, newSym byte, row int, parity []byte) error {
	if row < 0 || row >= r.MsgNum {
		return ErrIllegalParams
	}
	if limit := byte(r.f.size - 1); oldSym > limit || newSym > limit {
		return ErrSymbolRange
	}
	if len(parity) < r.ParityNum {
		return ErrShortParityBuf
	}

	delta := make([]byte, r.MsgNum)
	delta[row] = r.f.fieldAdd(oldSym, newSym)

	var diff [MaxParityNum]byte
	if err := r.Encode(delta, diff[:]); err != nil {
		return err
	}
	xor.Encode(parity[:r.ParityNum], [][]byte{parity[:r.ParityNum], diff[:r.ParityNum]})
	return nil
}
