// Package debug is the diagnosing side-channel for decode failures. The
// codec proper reports pass/fail only; when a consumer needs to know which
// byte went wrong, Explain re-runs the decode and surfaces the cursor state
// through a prophy.Logger.
package debug

import (
	"encoding/hex"
	"errors"

	"github.com/Jiish/prophy"
)

// Explain decodes data into m and logs the outcome: on success a debug line
// with the consumed size, on failure an error line carrying the failing
// offset and the shortfall (or the trailing-byte extent). It returns the
// decode error unchanged, so it can stand in for a plain Decode call while
// troubleshooting.
func Explain(m prophy.Message, data []byte, log prophy.Logger) error {
	if log == nil {
		log = prophy.NopLogger{}
	}
	err := m.Decode(data)
	if err == nil {
		log.Debug("decode ok", prophy.Fields{"bytes": len(data)})
		return nil
	}

	f := prophy.Fields{"bytes": len(data)}
	var de *prophy.DecodeError
	var te *prophy.TrailingError
	switch {
	case errors.As(err, &de):
		f["offset"] = de.Offset
		f["need"] = de.Need
		f["have"] = de.Have
	case errors.As(err, &te):
		f["offset"] = te.Offset
	}
	log.Error("decode failed", f)
	return err
}

// Hexdump renders wire bytes in canonical hex+ASCII form for triage and
// golden-file diffs.
func Hexdump(b []byte) string { return hex.Dump(b) }
