package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

type sample struct {
	A int            `json:"a"`
	B string         `json:"b"`
	M map[string]int `json:"m,omitempty"`
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	in := sample{A: 7, B: "hi", M: map[string]int{"z": 1, "a": 2}}
	envelope, err := Encode(in)
	require.NoError(t, err)

	var out sample
	require.NoError(t, Decode(envelope, &out))
	require.Equal(t, in, out)
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	envelope, err := Encode(sample{A: 1})
	require.NoError(t, err)
	envelope[0] = 'X'

	var out sample
	err = Decode(envelope, &out)
	require.ErrorIs(t, err, ErrSerializationFailed)
}

func TestDecodeRejectsUnknownVersion(t *testing.T) {
	envelope, err := Encode(sample{A: 1})
	require.NoError(t, err)
	envelope[4] = 0xFF
	envelope[5] = 0xFF

	var out sample
	err = Decode(envelope, &out)
	require.ErrorIs(t, err, ErrSerializationFailed)
}

func TestCanonicalIsDeterministicAcrossMapKeyOrder(t *testing.T) {
	a := sample{A: 1, M: map[string]int{"z": 1, "a": 2, "m": 3}}
	b := sample{A: 1, M: map[string]int{"a": 2, "m": 3, "z": 1}}

	ca, err := Canonical(a)
	require.NoError(t, err)
	cb, err := Canonical(b)
	require.NoError(t, err)
	require.True(t, bytes.Equal(ca, cb))
}

func TestRecordFramingRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRecord(&buf, sample{A: 1, B: "one"}))
	require.NoError(t, WriteRecord(&buf, sample{A: 2, B: "two"}))

	var first, second sample
	require.NoError(t, ReadRecord(&buf, &first))
	require.NoError(t, ReadRecord(&buf, &second))
	require.Equal(t, sample{A: 1, B: "one"}, first)
	require.Equal(t, sample{A: 2, B: "two"}, second)
}
