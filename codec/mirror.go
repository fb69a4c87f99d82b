package codec

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/Jiish/prophy"
)

// Format selects the self-describing encoding a Mirror renders into.
type Format int

const (
	// CBOR is the default: RFC 8949 Core Deterministic encoding, so two
	// mirrors of the same value are byte-for-byte identical and safe to
	// diff in golden files.
	CBOR Format = iota
	// Msgpack is compact and fast but not deterministic; use it for
	// interop with msgpack peers, not for goldens.
	Msgpack
	// JSON is the human-readable option, for dumps meant for eyes.
	JSON
)

// cborMode builds the deterministic encode mode once; the constructor can
// only fail on bad options, which are fixed here, so the error surfaces at
// the first Marshal rather than as package state.
var cborMode = sync.OnceValues(func() (cbor.EncMode, error) {
	return cbor.CoreDetEncOptions().EncMode()
})

// Mirror is a Codec that renders prophy message values in a
// self-describing encoding instead of the packed wire format. The field
// structure the schema compiler emitted is mirrored as-is: names, order
// and nesting survive, only the framing changes. Useful next to Native
// when a consumer needs to hand a message to something that cannot walk
// packed bytes — a diff tool, a script, a foreign service.
//
// A Mirror is NOT wire-compatible with Native: the two sides of a link
// must agree on which codec frames the payload.
type Mirror[M any, P interface {
	*M
	prophy.Message
}] struct {
	Format Format
}

func (m Mirror[M, P]) Marshal(v M) ([]byte, error) {
	switch m.Format {
	case CBOR:
		em, err := cborMode()
		if err != nil {
			return nil, err
		}
		return em.Marshal(v)
	case Msgpack:
		return msgpack.Marshal(v)
	case JSON:
		return json.Marshal(v)
	}
	return nil, fmt.Errorf("prophy/codec: unknown mirror format %d", m.Format)
}

func (m Mirror[M, P]) Unmarshal(b []byte, v *M) error {
	switch m.Format {
	case CBOR:
		return cbor.Unmarshal(b, v)
	case Msgpack:
		return msgpack.Unmarshal(b, v)
	case JSON:
		return json.Unmarshal(b, v)
	}
	return fmt.Errorf("prophy/codec: unknown mirror format %d", m.Format)
}
