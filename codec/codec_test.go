package codec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Jiish/prophy/generated"
)

func TestNativeRoundTrip(t *testing.T) {
	var c Native[generated.Builtin, *generated.Builtin]

	raw, err := c.Marshal(generated.Builtin{X: 1, Y: 2})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !bytes.Equal(raw, []byte("\x01\x00\x00\x00\x02\x00\x00\x00")) {
		t.Fatalf("wire mismatch: %x", raw)
	}

	var v generated.Builtin
	if err := c.Unmarshal(raw, &v); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if v != (generated.Builtin{X: 1, Y: 2}) {
		t.Fatalf("round-trip mismatch: %+v", v)
	}

	if err := c.Unmarshal(raw[:5], &v); err == nil {
		t.Fatalf("expected error on truncated input")
	}
}

func TestNativeDynamic(t *testing.T) {
	var c Native[generated.BuiltinDynamic, *generated.BuiltinDynamic]

	raw, err := c.Marshal(generated.BuiltinDynamic{X: []uint32{1, 2}})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var v generated.BuiltinDynamic
	if err := c.Unmarshal(raw, &v); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(v.X) != 2 || v.X[0] != 1 || v.X[1] != 2 {
		t.Fatalf("round-trip mismatch: %+v", v)
	}
}

func TestNativeMaxDecode(t *testing.T) {
	c := Native[generated.BuiltinDynamic, *generated.BuiltinDynamic]{MaxDecode: 8}

	small, _ := c.Marshal(generated.BuiltinDynamic{X: []uint32{1}})
	var v generated.BuiltinDynamic
	if err := c.Unmarshal(small, &v); err != nil {
		t.Fatalf("within limit: %v", err)
	}

	big, _ := c.Marshal(generated.BuiltinDynamic{X: []uint32{1, 2, 3, 4}})
	err := c.Unmarshal(big, &v)
	if err == nil || !strings.Contains(err.Error(), "input too large") {
		t.Fatalf("expected size rejection, got %v", err)
	}
	// the cap trips before the decoder runs: the target is untouched
	if len(v.X) != 1 || v.X[0] != 1 {
		t.Fatalf("rejected input clobbered the target: %+v", v)
	}
}

func TestMirrorCBORDeterministic(t *testing.T) {
	var c Mirror[generated.Builtin, *generated.Builtin]

	a, err := c.Marshal(generated.Builtin{X: 3, Y: 4})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	b, _ := c.Marshal(generated.Builtin{X: 3, Y: 4})
	if !bytes.Equal(a, b) {
		t.Fatalf("deterministic mode produced differing outputs")
	}

	var v generated.Builtin
	if err := c.Unmarshal(a, &v); err != nil || v != (generated.Builtin{X: 3, Y: 4}) {
		t.Fatalf("round-trip mismatch: %+v (%v)", v, err)
	}
}

func TestMirrorFormats(t *testing.T) {
	in := generated.Fixcomp{
		X: generated.Builtin{X: 1, Y: 2},
		Y: generated.Builtin{X: 3, Y: 4},
	}

	for _, f := range []Format{CBOR, Msgpack, JSON} {
		c := Mirror[generated.Fixcomp, *generated.Fixcomp]{Format: f}
		raw, err := c.Marshal(in)
		if err != nil {
			t.Fatalf("format %d Marshal: %v", f, err)
		}
		var v generated.Fixcomp
		if err := c.Unmarshal(raw, &v); err != nil || v != in {
			t.Fatalf("format %d round-trip: %+v (%v)", f, v, err)
		}
	}

	bad := Mirror[generated.Fixcomp, *generated.Fixcomp]{Format: Format(99)}
	if _, err := bad.Marshal(in); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestMirrorNotWireCompatible(t *testing.T) {
	var native Native[generated.Builtin, *generated.Builtin]
	var mirror Mirror[generated.Builtin, *generated.Builtin]

	packed, _ := native.Marshal(generated.Builtin{X: 1, Y: 2})
	mirrored, _ := mirror.Marshal(generated.Builtin{X: 1, Y: 2})
	if bytes.Equal(packed, mirrored) {
		t.Fatalf("mirror output should not match the packed wire format")
	}
}
