package codec

import (
	"fmt"

	"github.com/Jiish/prophy"
)

// Native is the Codec for schema-emitted message types, backed by the
// prophy wire format itself. M is the message struct; its pointer must
// implement prophy.Message, which every emitted type does.
//
//	c := codec.Native[generated.Builtin, *generated.Builtin]{}
//	raw, _ := c.Marshal(generated.Builtin{X: 1, Y: 2})
//
// Marshal allocates an exactly-sized buffer, so it never trips the
// short-destination panic of Message.Encode.
//
// The wire format puts no implicit bound on dynamic-array counts, so
// inputs from untrusted sources should set MaxDecode: the length cap
// bounds how much a hostile count can ask the decoder to materialize
// before the parse even starts.
type Native[M any, P interface {
	*M
	prophy.Message
}] struct {
	// MaxDecode is the maximum accepted input length in bytes for
	// Unmarshal. Zero or negative disables the cap.
	MaxDecode int
}

func (Native[M, P]) Marshal(v M) ([]byte, error) {
	return prophy.Marshal(P(&v)), nil
}

func (c Native[M, P]) Unmarshal(b []byte, v *M) error {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		return fmt.Errorf("prophy/codec: input too large: %d > %d", len(b), c.MaxDecode)
	}
	return P(v).Decode(b)
}
