// Package codec carries prophy messages across the []byte boundary that
// consumer code (caches, transports, files) works in. Native moves the wire
// format itself and guards untrusted input; Mirror renders the same message
// values in a self-describing encoding when a peer or a human needs
// structure the packed format does not carry.
package codec

// Codec turns values of type V into bytes and back. Unmarshal parses into a
// caller-supplied value, replacing its contents wholesale, and reports
// malformed input as an error. Implementations are pure: no side effects,
// no retained references to the input.
type Codec[V any] interface {
	Marshal(V) ([]byte, error)
	Unmarshal([]byte, *V) error
}
