package rsenc

import (
	"io"
	"sync"

	"github.com/templexxx/cpu"
)

// Stream encodes a sequence of fixed-size message frames.
//
// Each frame is MsgNum symbols (one symbol per byte) read from a reader;
// the systematic codeword, frame followed by parity, is written to a
// writer. Frames are batched through a pooled buffer so back-to-back
// streams don't reallocate.
type Stream struct {
	RS *RS

	bufPool *sync.Pool
}

// NewStream creates a Stream encoding k-symbol frames with t parity
// symbols over an m-bit field.
func NewStream(k, t, m int) (*Stream, error) {
	r, err := New(k, t, m)
	if err != nil {
		return nil, err
	}
	size := batchFrames(k+t) * (k + t)
	return &Stream{
		RS: r,
		bufPool: &sync.Pool{
			New: func() interface{} {
				return make([]byte, size)
			},
		},
	}, nil
}

// batchFrames returns how many codewords are buffered per write.
// Half of the L1 data cache is an empirical fit: the batch stays resident
// without polluting too much for the next round.
func batchFrames(codewordSize int) int {
	l1d := cpu.X86.Cache.L1D
	if l1d <= 0 { // Cannot detect cache size(-1) or CPU is not X86(0).
		l1d = 32 * 1024
	}
	n := (l1d / 2) / codewordSize
	if n < 1 {
		n = 1
	}
	return n
}

// Encode reads whole frames from src until EOF, writing one codeword per
// frame to dst. A stream that ends mid-frame returns
// io.ErrUnexpectedEOF; nothing of the torn frame is written.
func (s *Stream) Encode(dst io.Writer, src io.Reader) error {
	k, t := s.RS.MsgNum, s.RS.ParityNum
	n := k + t

	buf := s.bufPool.Get().([]byte)
	defer s.bufPool.Put(buf)
	frames := len(buf) / n

	for {
		filled := 0
		var rerr error
		for filled < frames {
			cw := buf[filled*n : (filled+1)*n]
			if _, rerr = io.ReadFull(src, cw[:k]); rerr != nil {
				break
			}
			if err := s.RS.Encode(cw[:k], cw[k:]); err != nil {
				return err
			}
			filled++
		}
		if filled > 0 {
			if _, err := dst.Write(buf[:filled*n]); err != nil {
				return err
			}
		}
		switch rerr {
		case nil:
			// Batch full, keep reading.
		case io.EOF:
			return nil
		default:
			return rerr
		}
	}
}
