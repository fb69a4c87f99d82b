package generated

import (
	"strconv"

	"github.com/Jiish/prophy"
)

// Constant is a schema constant; it never appears on the wire.
const Constant = 3

// TU16 is a schema typedef over u16.
type TU16 = uint16

// Enum is stored as 32 bits signed on the wire whatever its declared base.
type Enum int32

const EnumOne Enum = 1

func enumSymbol(e Enum) (string, bool) {
	switch e {
	case EnumOne:
		return "Enum_One", true
	}
	return "", false
}

func (e Enum) String() string {
	if s, ok := enumSymbol(e); ok {
		return s
	}
	return strconv.FormatInt(int64(e), 10)
}

// ConstantTypedefEnum mixes a constant-bounded fixed array, a typedef'd
// scalar and an enumeration in one packed message: 3×u16, u16, i32.
type ConstantTypedefEnum struct {
	A [Constant]TU16
	B TU16
	C Enum
}

var _ prophy.Message = (*ConstantTypedefEnum)(nil)

func (m *ConstantTypedefEnum) ByteSize() int { return 12 }

func (m *ConstantTypedefEnum) Encode(dst []byte) int {
	w := prophy.NewWriter(dst)
	m.EncodeTo(w)
	return w.Pos()
}

func (m *ConstantTypedefEnum) EncodeTo(w *prophy.Writer) {
	prophy.WriteFixed(w, m.A[:], writeU16)
	w.U16(m.B)
	w.I32(int32(m.C))
}

func (m *ConstantTypedefEnum) Decode(src []byte) error {
	r := prophy.NewReader(src)
	m.DecodeFrom(r)
	return r.Finish()
}

func (m *ConstantTypedefEnum) DecodeFrom(r *prophy.Reader) {
	prophy.ReadFixed(r, m.A[:], readU16)
	m.B = r.U16()
	m.C = Enum(r.I32())
}

func (m *ConstantTypedefEnum) Print() string {
	var p prophy.Printer
	m.PrintTo(&p)
	return p.String()
}

func (m *ConstantTypedefEnum) PrintTo(p *prophy.Printer) {
	for i := range m.A {
		p.Uint("a", uint64(m.A[i]))
	}
	p.Uint("b", uint64(m.B))
	if s, ok := enumSymbol(m.C); ok {
		p.Symbol("c", s)
	} else {
		p.Int("c", int64(m.C))
	}
}

// Floats pairs a single- and a double-precision scalar: IEEE-754 bit
// patterns little-endian, packed like any other message.
type Floats struct {
	A float32
	B float64
}

var _ prophy.Message = (*Floats)(nil)

func (m *Floats) ByteSize() int { return 12 }

func (m *Floats) Encode(dst []byte) int {
	w := prophy.NewWriter(dst)
	m.EncodeTo(w)
	return w.Pos()
}

func (m *Floats) EncodeTo(w *prophy.Writer) {
	w.F32(m.A)
	w.F64(m.B)
}

func (m *Floats) Decode(src []byte) error {
	r := prophy.NewReader(src)
	m.DecodeFrom(r)
	return r.Finish()
}

func (m *Floats) DecodeFrom(r *prophy.Reader) {
	m.A = r.F32()
	m.B = r.F64()
}

func (m *Floats) Print() string {
	var p prophy.Printer
	m.PrintTo(&p)
	return p.String()
}

func (m *Floats) PrintTo(p *prophy.Printer) {
	p.Float32("a", m.A)
	p.Float("b", m.B)
}

// BuiltinOptional carries one optional u32: a 32-bit presence flag and a
// value slot that is zero-filled when the field is absent. Constant size.
type BuiltinOptional struct {
	X *uint32
}

var _ prophy.Message = (*BuiltinOptional)(nil)

func (m *BuiltinOptional) ByteSize() int { return prophy.SizeOptional(4) }

func (m *BuiltinOptional) Encode(dst []byte) int {
	w := prophy.NewWriter(dst)
	m.EncodeTo(w)
	return w.Pos()
}

func (m *BuiltinOptional) EncodeTo(w *prophy.Writer) {
	prophy.WriteOptional(w, m.X, 4, writeU32)
}

func (m *BuiltinOptional) Decode(src []byte) error {
	r := prophy.NewReader(src)
	m.DecodeFrom(r)
	return r.Finish()
}

func (m *BuiltinOptional) DecodeFrom(r *prophy.Reader) {
	m.X = prophy.ReadOptional(r, 4, readU32)
}

func (m *BuiltinOptional) Print() string {
	var p prophy.Printer
	m.PrintTo(&p)
	return p.String()
}

func (m *BuiltinOptional) PrintTo(p *prophy.Printer) {
	if m.X != nil {
		p.Uint("x", uint64(*m.X))
	}
}
