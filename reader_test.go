package prophy

import (
	"bytes"
	"errors"
	"testing"
)

func TestScalarWireLayout(t *testing.T) {
	buf := make([]byte, 30)
	w := NewWriter(buf)
	w.U8(0x01)
	w.U16(0x0203)
	w.U32(0x04050607)
	w.U64(0x08090a0b0c0d0e0f)
	w.I8(-1)
	w.I16(-2)
	w.I32(-3)
	w.I64(-4)

	want := []byte(
		"\x01" +
			"\x03\x02" +
			"\x07\x06\x05\x04" +
			"\x0f\x0e\x0d\x0c\x0b\x0a\x09\x08" +
			"\xff" +
			"\xfe\xff" +
			"\xfd\xff\xff\xff" +
			"\xfc\xff\xff\xff\xff\xff\xff\xff")
	if w.Pos() != len(want) {
		t.Fatalf("Pos: got %d want %d", w.Pos(), len(want))
	}
	if !bytes.Equal(buf[:w.Pos()], want) {
		t.Fatalf("layout mismatch:\n got %x\nwant %x", buf[:w.Pos()], want)
	}

	r := NewReader(want)
	if v := r.U8(); v != 0x01 {
		t.Fatalf("U8: %#x", v)
	}
	if v := r.U16(); v != 0x0203 {
		t.Fatalf("U16: %#x", v)
	}
	if v := r.U32(); v != 0x04050607 {
		t.Fatalf("U32: %#x", v)
	}
	if v := r.U64(); v != 0x08090a0b0c0d0e0f {
		t.Fatalf("U64: %#x", v)
	}
	if v := r.I8(); v != -1 {
		t.Fatalf("I8: %d", v)
	}
	if v := r.I16(); v != -2 {
		t.Fatalf("I16: %d", v)
	}
	if v := r.I32(); v != -3 {
		t.Fatalf("I32: %d", v)
	}
	if v := r.I64(); v != -4 {
		t.Fatalf("I64: %d", v)
	}
	if err := r.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
}

func TestFloatBitPatterns(t *testing.T) {
	buf := make([]byte, 12)
	w := NewWriter(buf)
	w.F32(1.5)
	w.F64(-2.25)

	// IEEE-754: 1.5f = 0x3fc00000, -2.25 = 0xc002000000000000
	want := []byte("\x00\x00\xc0\x3f\x00\x00\x00\x00\x00\x00\x02\xc0")
	if !bytes.Equal(buf, want) {
		t.Fatalf("float layout mismatch:\n got %x\nwant %x", buf, want)
	}

	r := NewReader(buf)
	if v := r.F32(); v != 1.5 {
		t.Fatalf("F32: %v", v)
	}
	if v := r.F64(); v != -2.25 {
		t.Fatalf("F64: %v", v)
	}
}

func TestReaderStickyError(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4, 5, 6})
	if v := r.U32(); v != 0x04030201 {
		t.Fatalf("U32: %#x", v)
	}

	// next U32 needs 4, only 2 left: shortfall recorded at offset 4
	if v := r.U32(); v != 0 {
		t.Fatalf("failed read should return zero, got %#x", v)
	}
	var de *DecodeError
	if !errors.As(r.Err(), &de) {
		t.Fatalf("expected DecodeError, got %v", r.Err())
	}
	if de.Offset != 4 || de.Need != 4 || de.Have != 2 {
		t.Fatalf("unexpected shortfall: %+v", de)
	}
	if !errors.Is(r.Err(), ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", r.Err())
	}

	// sticky: later reads are no-ops and keep the original error
	if v := r.U8(); v != 0 {
		t.Fatalf("read after failure returned %d", v)
	}
	if got := r.Err(); !errors.As(got, &de) || de.Offset != 4 {
		t.Fatalf("sticky error replaced: %v", got)
	}
	if r.Pos() != 4 {
		t.Fatalf("cursor moved after failure: %d", r.Pos())
	}
}

func TestReaderFinishTrailing(t *testing.T) {
	r := NewReader([]byte{1, 0, 0, 0, 0xff})
	_ = r.U32()
	err := r.Finish()
	if !errors.Is(err, ErrTrailing) {
		t.Fatalf("expected ErrTrailing, got %v", err)
	}
	var te *TrailingError
	if !errors.As(err, &te) || te.Offset != 4 || te.Len != 5 {
		t.Fatalf("unexpected trailing detail: %+v", te)
	}
}

func TestReaderSkipAndBytes(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4, 5})
	r.Skip(2)
	if b := r.Bytes(2); !bytes.Equal(b, []byte{3, 4}) {
		t.Fatalf("Bytes: %v", b)
	}
	r.Skip(2) // only 1 left
	if !errors.Is(r.Err(), ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", r.Err())
	}
}

func TestWriterZero(t *testing.T) {
	buf := []byte{0xaa, 0xaa, 0xaa, 0xaa, 0xaa}
	w := NewWriter(buf)
	w.U8(7)
	w.Zero(3)
	if !bytes.Equal(buf, []byte{7, 0, 0, 0, 0xaa}) {
		t.Fatalf("Zero did not scrub slots: %x", buf)
	}
	if w.Pos() != 4 {
		t.Fatalf("Pos: %d", w.Pos())
	}
}

func TestWriterShortDestinationPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on short destination")
		}
	}()
	w := NewWriter(make([]byte, 2))
	w.U32(1)
}
