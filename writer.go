package prophy

import (
	"encoding/binary"
	"math"
)

// Writer is a little-endian encode cursor over a caller-owned buffer. It
// never grows the buffer: the caller sizes it with ByteSize up front, and a
// write past the end panics via the slice bounds check (encoding into a too
// small destination is API misuse, not a runtime condition).
//
// All writes go through encoding/binary and are byte-oriented; the buffer
// needs no particular alignment.
type Writer struct {
	buf []byte
	off int
}

func NewWriter(buf []byte) *Writer { return &Writer{buf: buf} }

// Pos returns the number of bytes written so far.
func (w *Writer) Pos() int { return w.off }

func (w *Writer) U8(v uint8) {
	w.buf[w.off] = v
	w.off++
}

func (w *Writer) U16(v uint16) {
	binary.LittleEndian.PutUint16(w.buf[w.off:], v)
	w.off += 2
}

func (w *Writer) U32(v uint32) {
	binary.LittleEndian.PutUint32(w.buf[w.off:], v)
	w.off += 4
}

func (w *Writer) U64(v uint64) {
	binary.LittleEndian.PutUint64(w.buf[w.off:], v)
	w.off += 8
}

func (w *Writer) I8(v int8)   { w.U8(uint8(v)) }
func (w *Writer) I16(v int16) { w.U16(uint16(v)) }
func (w *Writer) I32(v int32) { w.U32(uint32(v)) }
func (w *Writer) I64(v int64) { w.U64(uint64(v)) }

// F32 and F64 write the IEEE-754 bit pattern little-endian.
func (w *Writer) F32(v float32) { w.U32(math.Float32bits(v)) }
func (w *Writer) F64(v float64) { w.U64(math.Float64bits(v)) }

// Bytes copies b verbatim at the cursor.
func (w *Writer) Bytes(b []byte) {
	copy(w.buf[w.off:w.off+len(b)], b)
	w.off += len(b)
}

// Zero emits n zero bytes. Used for the spare slots of limited arrays and
// absent optional fields.
func (w *Writer) Zero(n int) {
	clear(w.buf[w.off : w.off+n])
	w.off += n
}
