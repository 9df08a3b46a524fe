// Package codec implements the serialization boundary: a self-describing
// binary envelope (a 4-byte magic, a format-version header, and a
// goccy/go-json body) used both to persist Snapshot/WorldEvent values and to
// produce the canonical bytes that internal/snapshot fingerprints.
//
// encoding/json (and goccy/go-json, which is API-compatible) marshal
// map[string]T keys in sorted order and struct fields in declaration order,
// which is exactly the determinism canonical encoding requires, so no
// hand-rolled binary layout is needed here.
package codec

import (
	"bytes"
	"encoding/binary"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// Magic identifies a world-engine wire envelope.
const Magic = "WEV0"

// FormatVersion is the current positional-schema version of the envelope.
// Bump this whenever a field is added, removed, or reinterpreted in a way
// that breaks forward decoding.
const FormatVersion uint16 = 1

const headerLen = 4 + 2 // magic + version

// Encode wraps v's JSON encoding in the version header and returns the full
// wire envelope.
func Encode(v any) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "codec: encode")
	}
	buf := make([]byte, 0, headerLen+len(body))
	buf = append(buf, Magic...)
	buf = binary.BigEndian.AppendUint16(buf, FormatVersion)
	buf = append(buf, body...)
	return buf, nil
}

// Decode validates the header and unmarshals the body into v.
func Decode(data []byte, v any) error {
	if len(data) < headerLen {
		return errors.Wrap(ErrSerializationFailed, "codec: envelope too short")
	}
	if !bytes.Equal(data[:4], []byte(Magic)) {
		return errors.Wrap(ErrSerializationFailed, "codec: bad magic")
	}
	version := binary.BigEndian.Uint16(data[4:6])
	if version != FormatVersion {
		return errors.Wrapf(ErrSerializationFailed, "codec: unsupported format version %d", version)
	}
	if err := json.Unmarshal(data[headerLen:], v); err != nil {
		return errors.Wrap(ErrSerializationFailed, err.Error())
	}
	return nil
}

// Canonical returns the deterministic byte encoding of v used for
// fingerprinting. It deliberately omits the header: the header carries
// format metadata, not the fingerprinted content, and two values that
// encode identically should fingerprint identically regardless of envelope
// version.
func Canonical(v any) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "codec: canonical encode")
	}
	return body, nil
}
