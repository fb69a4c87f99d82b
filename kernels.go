package prophy

// Array kernels. Each shape comes as a write/read pair parametric over the
// element, passed as plain functions so emitted code can close over scalar
// accessors or hand in a nested message's EncodeTo/DecodeFrom.
//
// Shared contract: the matching size helper computes exactly the byte count
// the write routine emits, and every read routine fails through the Reader's
// sticky error rather than returning one itself.

// WriteFixed emits exactly len(xs) elements back-to-back, no prefix. The
// emitted caller passes the schema-fixed slice or array.
func WriteFixed[E any](w *Writer, xs []E, elem func(*Writer, *E)) {
	for i := range xs {
		elem(w, &xs[i])
	}
}

// ReadFixed fills dst, failing if the buffer runs out before len(dst)
// elements are in.
func ReadFixed[E any](r *Reader, dst []E, elem func(*Reader, *E)) {
	for i := range dst {
		if r.err != nil {
			return
		}
		elem(r, &dst[i])
	}
}

// WriteDynamic emits a 32-bit count and then the elements.
func WriteDynamic[E any](w *Writer, xs []E, elem func(*Writer, *E)) {
	w.U32(uint32(len(xs)))
	for i := range xs {
		elem(w, &xs[i])
	}
}

// ReadDynamic reads a 32-bit count and that many elements. minSize is the
// smallest possible encoding of one element; the preallocation is capped by
// what the remaining buffer could plausibly hold so a bogus count cannot
// balloon memory before the bounds check trips. There is no implicit upper
// bound on the count itself; cap untrusted inputs up front (codec.Native's
// MaxDecode does this at the message boundary).
func ReadDynamic[E any](r *Reader, minSize int, elem func(*Reader, *E)) []E {
	n := int64(r.U32())
	if r.err != nil {
		return nil
	}
	if minSize < 1 {
		minSize = 1
	}
	capHint := n
	if fit := int64(r.Len() / minSize); capHint > fit {
		capHint = fit
	}
	out := make([]E, 0, capHint)
	for i := int64(0); i < n; i++ {
		var e E
		elem(r, &e)
		if r.err != nil {
			return nil
		}
		out = append(out, e)
	}
	return out
}

// WriteLimited emits a 32-bit count of min(len(xs), capacity), that many
// elements, and zero bytes for the spare slots, for a constant total of
// 4 + capacity*elemSize bytes. Over-capacity input is silently clamped to
// the first capacity elements; existing producers rely on the clamp, so it
// must not become an error. Limited arrays only ever hold constant-size
// elements, which is why elemSize is a plain parameter.
func WriteLimited[E any](w *Writer, xs []E, capacity, elemSize int, elem func(*Writer, *E)) {
	n := len(xs)
	if n > capacity {
		n = capacity
	}
	w.U32(uint32(n))
	for i := 0; i < n; i++ {
		elem(w, &xs[i])
	}
	w.Zero((capacity - n) * elemSize)
}

// ReadLimited reads the 32-bit count and the full capacity*elemSize slot
// region, keeping min(count, capacity) elements as the logical array. A
// count beyond capacity clamps and still succeeds; callers that want strict
// validation compare the logical length themselves.
func ReadLimited[E any](r *Reader, capacity, elemSize int, elem func(*Reader, *E)) []E {
	count := r.U32()
	if r.err != nil {
		return nil
	}
	n := capacity
	if int64(count) < int64(capacity) {
		n = int(count)
	}
	out := make([]E, n)
	for i := range out {
		elem(r, &out[i])
	}
	r.Skip((capacity - n) * elemSize)
	if r.err != nil {
		return nil
	}
	return out
}

// WriteGreedy emits the elements with no prefix. A greedy array is only
// valid as the final field of a message: its extent on decode is the
// remainder of the buffer.
func WriteGreedy[E any](w *Writer, xs []E, elem func(*Writer, *E)) {
	for i := range xs {
		elem(w, &xs[i])
	}
}

// ReadGreedy consumes elements until the buffer is exhausted. Leftover
// bytes too short for one more element fail the decode.
func ReadGreedy[E any](r *Reader, elem func(*Reader, *E)) []E {
	var out []E
	for r.err == nil && r.Len() > 0 {
		var e E
		elem(r, &e)
		if r.err != nil {
			return nil
		}
		out = append(out, e)
	}
	return out
}

// WriteOptional emits a 32-bit presence flag followed by one constant-size
// value slot, zero-filled when v is nil. Total size is always 4 + slotSize.
func WriteOptional[E any](w *Writer, v *E, slotSize int, elem func(*Writer, *E)) {
	if v == nil {
		w.U32(0)
		w.Zero(slotSize)
		return
	}
	w.U32(1)
	elem(w, v)
}

// ReadOptional reads the presence flag and the value slot, returning nil
// for an absent field. The slot is consumed either way.
func ReadOptional[E any](r *Reader, slotSize int, elem func(*Reader, *E)) *E {
	present := r.U32()
	if r.err != nil {
		return nil
	}
	if present == 0 {
		r.Skip(slotSize)
		return nil
	}
	e := new(E)
	elem(r, e)
	if r.err != nil {
		return nil
	}
	return e
}

// SizeElems sums per-element encoded sizes. For constant-size elements the
// emitted code multiplies inline instead.
func SizeElems[E any](xs []E, size func(*E) int) int {
	total := 0
	for i := range xs {
		total += size(&xs[i])
	}
	return total
}

// SizeDynamic is SizeElems plus the 32-bit count prefix.
func SizeDynamic[E any](xs []E, size func(*E) int) int {
	return 4 + SizeElems(xs, size)
}

// SizeLimited is the constant footprint of a limited array: count prefix
// plus every slot, occupied or not.
func SizeLimited(capacity, elemSize int) int {
	return 4 + capacity*elemSize
}

// SizeOptional is the constant footprint of an optional field.
func SizeOptional(slotSize int) int {
	return 4 + slotSize
}
