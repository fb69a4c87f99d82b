package prophy

// Message is the per-type surface the schema compiler emits. Values are
// plain structs with public fields; the four operations below are the whole
// codec contract.
type Message interface {
	// ByteSize computes the encoded length without writing. It never fails
	// and is deterministic over the in-memory state.
	ByteSize() int

	// Encode serializes the message into dst and returns the bytes written,
	// always exactly ByteSize(). dst must hold at least ByteSize() bytes;
	// a shorter destination is API misuse and panics.
	Encode(dst []byte) int

	// Decode replaces the message contents with the parse of src. The length
	// of src bounds the decode: a greedy array runs to it, everything else
	// must land on it exactly. On error the contents are unspecified but the
	// decoder has not touched memory outside src.
	Decode(src []byte) error

	// Print renders the message in the indented textual form used for
	// debugging and golden files.
	Print() string
}

// Marshal encodes m into a freshly allocated, exactly-sized buffer.
func Marshal(m Message) []byte {
	buf := make([]byte, m.ByteSize())
	m.Encode(buf)
	return buf
}
