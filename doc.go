// Package prophy is the runtime for prophy-encoded binary messages: packed
// structs of fixed-width scalars and arrays whose schema is known at build
// time. The schema compiler emits one Go type per message; every emitted type
// leans on this package for the actual byte work.
//
// Encoding choices:
//   - All integers are little-endian.
//   - No inter-field padding, ever. In-memory alignment is independent of the
//     wire layout and neither side of the codec assumes aligned buffers.
//   - Counts are always 32-bit little-endian, whatever the in-memory length
//     type is.
//   - Enumerations occupy 32 bits signed on the wire regardless of their
//     declared storage width.
//   - Four array shapes: fixed (no prefix), dynamic (count prefix), limited
//     (count prefix plus a constant-size slot region, spare slots zeroed) and
//     greedy (no prefix, runs to the end of the buffer; only ever the last
//     field of a message).
//   - Decoders are written for bounds safety: every read is preceded by a
//     length check; on any shortfall they fail with ErrTruncated and leave
//     the cursor where the shortfall happened.
//   - A message must consume its entire input; trailing bytes fail the
//     decode. This detects corruption and foreign writers early. The greedy
//     shape satisfies it trivially, everything else by construction.
//
// An emitted message type exposes ByteSize, Encode, Decode and Print; the
// Message interface captures that surface. Encode never fails when the
// destination holds at least ByteSize bytes, and ByteSize computes exactly
// the count Encode writes.
//
// The runtime holds no global state, performs no I/O, and is safe for
// concurrent use on distinct values and buffers.
package prophy
