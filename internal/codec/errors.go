package codec

import "github.com/pkg/errors"

// ErrSerializationFailed is returned when bytes at the §6 boundary are
// malformed or carry an unknown format version.
var ErrSerializationFailed = errors.New("codec: serialization failed")
