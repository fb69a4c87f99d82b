package generated

import (
	"github.com/Jiish/prophy"
)

// Element adapters shared by the array-bearing types below.
func writeU16(w *prophy.Writer, v *uint16) { w.U16(*v) }
func readU16(r *prophy.Reader, v *uint16)  { *v = r.U16() }
func writeU32(w *prophy.Writer, v *uint32) { w.U32(*v) }
func readU32(r *prophy.Reader, v *uint32)  { *v = r.U32() }

func writeBuiltin(w *prophy.Writer, v *Builtin) { v.EncodeTo(w) }
func readBuiltin(r *prophy.Reader, v *Builtin)  { v.DecodeFrom(r) }

func writeBuiltinDynamic(w *prophy.Writer, v *BuiltinDynamic) { v.EncodeTo(w) }
func readBuiltinDynamic(r *prophy.Reader, v *BuiltinDynamic)  { v.DecodeFrom(r) }

// Builtin is two u32 scalars back-to-back.
type Builtin struct {
	X uint32
	Y uint32
}

var _ prophy.Message = (*Builtin)(nil)

func (m *Builtin) ByteSize() int { return 8 }

func (m *Builtin) Encode(dst []byte) int {
	w := prophy.NewWriter(dst)
	m.EncodeTo(w)
	return w.Pos()
}

func (m *Builtin) EncodeTo(w *prophy.Writer) {
	w.U32(m.X)
	w.U32(m.Y)
}

func (m *Builtin) Decode(src []byte) error {
	r := prophy.NewReader(src)
	m.DecodeFrom(r)
	return r.Finish()
}

func (m *Builtin) DecodeFrom(r *prophy.Reader) {
	m.X = r.U32()
	m.Y = r.U32()
}

func (m *Builtin) Print() string {
	var p prophy.Printer
	m.PrintTo(&p)
	return p.String()
}

func (m *Builtin) PrintTo(p *prophy.Printer) {
	p.Uint("x", uint64(m.X))
	p.Uint("y", uint64(m.Y))
}

// BuiltinFixed is a fixed array of two u32: no count on the wire.
type BuiltinFixed struct {
	X [2]uint32
}

var _ prophy.Message = (*BuiltinFixed)(nil)

func (m *BuiltinFixed) ByteSize() int { return 8 }

func (m *BuiltinFixed) Encode(dst []byte) int {
	w := prophy.NewWriter(dst)
	m.EncodeTo(w)
	return w.Pos()
}

func (m *BuiltinFixed) EncodeTo(w *prophy.Writer) {
	prophy.WriteFixed(w, m.X[:], writeU32)
}

func (m *BuiltinFixed) Decode(src []byte) error {
	r := prophy.NewReader(src)
	m.DecodeFrom(r)
	return r.Finish()
}

func (m *BuiltinFixed) DecodeFrom(r *prophy.Reader) {
	prophy.ReadFixed(r, m.X[:], readU32)
}

func (m *BuiltinFixed) Print() string {
	var p prophy.Printer
	m.PrintTo(&p)
	return p.String()
}

func (m *BuiltinFixed) PrintTo(p *prophy.Printer) {
	for i := range m.X {
		p.Uint("x", uint64(m.X[i]))
	}
}

// BuiltinDynamic is a dynamic array of u32: count prefix, then elements.
type BuiltinDynamic struct {
	X []uint32
}

var _ prophy.Message = (*BuiltinDynamic)(nil)

func (m *BuiltinDynamic) ByteSize() int { return 4 + 4*len(m.X) }

func (m *BuiltinDynamic) Encode(dst []byte) int {
	w := prophy.NewWriter(dst)
	m.EncodeTo(w)
	return w.Pos()
}

func (m *BuiltinDynamic) EncodeTo(w *prophy.Writer) {
	prophy.WriteDynamic(w, m.X, writeU32)
}

func (m *BuiltinDynamic) Decode(src []byte) error {
	r := prophy.NewReader(src)
	m.DecodeFrom(r)
	return r.Finish()
}

func (m *BuiltinDynamic) DecodeFrom(r *prophy.Reader) {
	m.X = prophy.ReadDynamic(r, 4, readU32)
}

func (m *BuiltinDynamic) Print() string {
	var p prophy.Printer
	m.PrintTo(&p)
	return p.String()
}

func (m *BuiltinDynamic) PrintTo(p *prophy.Printer) {
	for i := range m.X {
		p.Uint("x", uint64(m.X[i]))
	}
}

// BuiltinLimited is a limited array of u32 with two slots: count prefix,
// then a constant-size slot region. Logical length beyond the capacity is
// clamped on encode.
type BuiltinLimited struct {
	X []uint32
}

var _ prophy.Message = (*BuiltinLimited)(nil)

func (m *BuiltinLimited) ByteSize() int { return prophy.SizeLimited(2, 4) }

func (m *BuiltinLimited) Encode(dst []byte) int {
	w := prophy.NewWriter(dst)
	m.EncodeTo(w)
	return w.Pos()
}

func (m *BuiltinLimited) EncodeTo(w *prophy.Writer) {
	prophy.WriteLimited(w, m.X, 2, 4, writeU32)
}

func (m *BuiltinLimited) Decode(src []byte) error {
	r := prophy.NewReader(src)
	m.DecodeFrom(r)
	return r.Finish()
}

func (m *BuiltinLimited) DecodeFrom(r *prophy.Reader) {
	m.X = prophy.ReadLimited(r, 2, 4, readU32)
}

func (m *BuiltinLimited) Print() string {
	var p prophy.Printer
	m.PrintTo(&p)
	return p.String()
}

func (m *BuiltinLimited) PrintTo(p *prophy.Printer) {
	for i := range m.X {
		p.Uint("x", uint64(m.X[i]))
	}
}

// BuiltinGreedy is a greedy array of u32: no prefix, extends to the end of
// the buffer.
type BuiltinGreedy struct {
	X []uint32
}

var _ prophy.Message = (*BuiltinGreedy)(nil)

func (m *BuiltinGreedy) ByteSize() int { return 4 * len(m.X) }

func (m *BuiltinGreedy) Encode(dst []byte) int {
	w := prophy.NewWriter(dst)
	m.EncodeTo(w)
	return w.Pos()
}

func (m *BuiltinGreedy) EncodeTo(w *prophy.Writer) {
	prophy.WriteGreedy(w, m.X, writeU32)
}

func (m *BuiltinGreedy) Decode(src []byte) error {
	r := prophy.NewReader(src)
	m.X = prophy.ReadGreedy(r, readU32)
	return r.Finish()
}

func (m *BuiltinGreedy) Print() string {
	var p prophy.Printer
	m.PrintTo(&p)
	return p.String()
}

func (m *BuiltinGreedy) PrintTo(p *prophy.Printer) {
	for i := range m.X {
		p.Uint("x", uint64(m.X[i]))
	}
}

// Fixcomp nests two fixed-size composites.
type Fixcomp struct {
	X Builtin
	Y Builtin
}

var _ prophy.Message = (*Fixcomp)(nil)

func (m *Fixcomp) ByteSize() int { return 16 }

func (m *Fixcomp) Encode(dst []byte) int {
	w := prophy.NewWriter(dst)
	m.EncodeTo(w)
	return w.Pos()
}

func (m *Fixcomp) EncodeTo(w *prophy.Writer) {
	m.X.EncodeTo(w)
	m.Y.EncodeTo(w)
}

func (m *Fixcomp) Decode(src []byte) error {
	r := prophy.NewReader(src)
	m.DecodeFrom(r)
	return r.Finish()
}

func (m *Fixcomp) DecodeFrom(r *prophy.Reader) {
	m.X.DecodeFrom(r)
	m.Y.DecodeFrom(r)
}

func (m *Fixcomp) Print() string {
	var p prophy.Printer
	m.PrintTo(&p)
	return p.String()
}

func (m *Fixcomp) PrintTo(p *prophy.Printer) {
	p.Begin("x")
	m.X.PrintTo(p)
	p.End()
	p.Begin("y")
	m.Y.PrintTo(p)
	p.End()
}

// FixcompFixed is a fixed array of fixed-size composites.
type FixcompFixed struct {
	X [2]Builtin
}

var _ prophy.Message = (*FixcompFixed)(nil)

func (m *FixcompFixed) ByteSize() int { return 16 }

func (m *FixcompFixed) Encode(dst []byte) int {
	w := prophy.NewWriter(dst)
	m.EncodeTo(w)
	return w.Pos()
}

func (m *FixcompFixed) EncodeTo(w *prophy.Writer) {
	prophy.WriteFixed(w, m.X[:], writeBuiltin)
}

func (m *FixcompFixed) Decode(src []byte) error {
	r := prophy.NewReader(src)
	m.DecodeFrom(r)
	return r.Finish()
}

func (m *FixcompFixed) DecodeFrom(r *prophy.Reader) {
	prophy.ReadFixed(r, m.X[:], readBuiltin)
}

func (m *FixcompFixed) Print() string {
	var p prophy.Printer
	m.PrintTo(&p)
	return p.String()
}

func (m *FixcompFixed) PrintTo(p *prophy.Printer) {
	for i := range m.X {
		p.Begin("x")
		m.X[i].PrintTo(p)
		p.End()
	}
}

// FixcompDynamic is a dynamic array of fixed-size composites.
type FixcompDynamic struct {
	X []Builtin
}

var _ prophy.Message = (*FixcompDynamic)(nil)

func (m *FixcompDynamic) ByteSize() int { return 4 + 8*len(m.X) }

func (m *FixcompDynamic) Encode(dst []byte) int {
	w := prophy.NewWriter(dst)
	m.EncodeTo(w)
	return w.Pos()
}

func (m *FixcompDynamic) EncodeTo(w *prophy.Writer) {
	prophy.WriteDynamic(w, m.X, writeBuiltin)
}

func (m *FixcompDynamic) Decode(src []byte) error {
	r := prophy.NewReader(src)
	m.DecodeFrom(r)
	return r.Finish()
}

func (m *FixcompDynamic) DecodeFrom(r *prophy.Reader) {
	m.X = prophy.ReadDynamic(r, 8, readBuiltin)
}

func (m *FixcompDynamic) Print() string {
	var p prophy.Printer
	m.PrintTo(&p)
	return p.String()
}

func (m *FixcompDynamic) PrintTo(p *prophy.Printer) {
	for i := range m.X {
		p.Begin("x")
		m.X[i].PrintTo(p)
		p.End()
	}
}

// FixcompLimited is a limited array of fixed-size composites, two slots of
// eight bytes each.
type FixcompLimited struct {
	X []Builtin
}

var _ prophy.Message = (*FixcompLimited)(nil)

func (m *FixcompLimited) ByteSize() int { return prophy.SizeLimited(2, 8) }

func (m *FixcompLimited) Encode(dst []byte) int {
	w := prophy.NewWriter(dst)
	m.EncodeTo(w)
	return w.Pos()
}

func (m *FixcompLimited) EncodeTo(w *prophy.Writer) {
	prophy.WriteLimited(w, m.X, 2, 8, writeBuiltin)
}

func (m *FixcompLimited) Decode(src []byte) error {
	r := prophy.NewReader(src)
	m.DecodeFrom(r)
	return r.Finish()
}

func (m *FixcompLimited) DecodeFrom(r *prophy.Reader) {
	m.X = prophy.ReadLimited(r, 2, 8, readBuiltin)
}

func (m *FixcompLimited) Print() string {
	var p prophy.Printer
	m.PrintTo(&p)
	return p.String()
}

func (m *FixcompLimited) PrintTo(p *prophy.Printer) {
	for i := range m.X {
		p.Begin("x")
		m.X[i].PrintTo(p)
		p.End()
	}
}

// FixcompGreedy is a greedy array of fixed-size composites.
type FixcompGreedy struct {
	X []Builtin
}

var _ prophy.Message = (*FixcompGreedy)(nil)

func (m *FixcompGreedy) ByteSize() int { return 8 * len(m.X) }

func (m *FixcompGreedy) Encode(dst []byte) int {
	w := prophy.NewWriter(dst)
	m.EncodeTo(w)
	return w.Pos()
}

func (m *FixcompGreedy) EncodeTo(w *prophy.Writer) {
	prophy.WriteGreedy(w, m.X, writeBuiltin)
}

func (m *FixcompGreedy) Decode(src []byte) error {
	r := prophy.NewReader(src)
	m.X = prophy.ReadGreedy(r, readBuiltin)
	return r.Finish()
}

func (m *FixcompGreedy) Print() string {
	var p prophy.Printer
	m.PrintTo(&p)
	return p.String()
}

func (m *FixcompGreedy) PrintTo(p *prophy.Printer) {
	for i := range m.X {
		p.Begin("x")
		m.X[i].PrintTo(p)
		p.End()
	}
}

// Dyncomp nests one dynamic-size composite. The whole message is
// dynamic-size as a result, but stays self-delimiting: its decoder consumes
// exactly the nested count plus elements.
type Dyncomp struct {
	X BuiltinDynamic
}

var _ prophy.Message = (*Dyncomp)(nil)

func (m *Dyncomp) ByteSize() int { return m.X.ByteSize() }

func (m *Dyncomp) Encode(dst []byte) int {
	w := prophy.NewWriter(dst)
	m.EncodeTo(w)
	return w.Pos()
}

func (m *Dyncomp) EncodeTo(w *prophy.Writer) {
	m.X.EncodeTo(w)
}

func (m *Dyncomp) Decode(src []byte) error {
	r := prophy.NewReader(src)
	m.DecodeFrom(r)
	return r.Finish()
}

func (m *Dyncomp) DecodeFrom(r *prophy.Reader) {
	m.X.DecodeFrom(r)
}

func (m *Dyncomp) Print() string {
	var p prophy.Printer
	m.PrintTo(&p)
	return p.String()
}

func (m *Dyncomp) PrintTo(p *prophy.Printer) {
	p.Begin("x")
	m.X.PrintTo(p)
	p.End()
}

// DyncompDynamic is a dynamic array of dynamic-size composites: nested
// count prefixes, every element self-delimiting.
type DyncompDynamic struct {
	X []BuiltinDynamic
}

var _ prophy.Message = (*DyncompDynamic)(nil)

func (m *DyncompDynamic) ByteSize() int {
	return prophy.SizeDynamic(m.X, (*BuiltinDynamic).ByteSize)
}

func (m *DyncompDynamic) Encode(dst []byte) int {
	w := prophy.NewWriter(dst)
	m.EncodeTo(w)
	return w.Pos()
}

func (m *DyncompDynamic) EncodeTo(w *prophy.Writer) {
	prophy.WriteDynamic(w, m.X, writeBuiltinDynamic)
}

func (m *DyncompDynamic) Decode(src []byte) error {
	r := prophy.NewReader(src)
	m.DecodeFrom(r)
	return r.Finish()
}

func (m *DyncompDynamic) DecodeFrom(r *prophy.Reader) {
	m.X = prophy.ReadDynamic(r, 4, readBuiltinDynamic)
}

func (m *DyncompDynamic) Print() string {
	var p prophy.Printer
	m.PrintTo(&p)
	return p.String()
}

func (m *DyncompDynamic) PrintTo(p *prophy.Printer) {
	for i := range m.X {
		p.Begin("x")
		m.X[i].PrintTo(p)
		p.End()
	}
}

// DyncompGreedy is a greedy array of dynamic-size composites: no outer
// count, elements parsed until the buffer runs out.
type DyncompGreedy struct {
	X []BuiltinDynamic
}

var _ prophy.Message = (*DyncompGreedy)(nil)

func (m *DyncompGreedy) ByteSize() int {
	return prophy.SizeElems(m.X, (*BuiltinDynamic).ByteSize)
}

func (m *DyncompGreedy) Encode(dst []byte) int {
	w := prophy.NewWriter(dst)
	m.EncodeTo(w)
	return w.Pos()
}

func (m *DyncompGreedy) EncodeTo(w *prophy.Writer) {
	prophy.WriteGreedy(w, m.X, writeBuiltinDynamic)
}

func (m *DyncompGreedy) Decode(src []byte) error {
	r := prophy.NewReader(src)
	m.X = prophy.ReadGreedy(r, readBuiltinDynamic)
	return r.Finish()
}

func (m *DyncompGreedy) Print() string {
	var p prophy.Printer
	m.PrintTo(&p)
	return p.String()
}

func (m *DyncompGreedy) PrintTo(p *prophy.Printer) {
	for i := range m.X {
		p.Begin("x")
		m.X[i].PrintTo(p)
		p.End()
	}
}
