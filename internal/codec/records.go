package codec

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// WriteRecord writes one length-prefixed wire envelope for v to w. The
// persisted event log file (§6) is a sequence of these.
func WriteRecord(w io.Writer, v any) error {
	envelope, err := Encode(v)
	if err != nil {
		return err
	}
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(envelope)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return errors.Wrap(err, "codec: write record length")
	}
	if _, err := w.Write(envelope); err != nil {
		return errors.Wrap(err, "codec: write record body")
	}
	return nil
}

// ReadRecord reads one length-prefixed wire envelope from r and decodes it
// into v. io.EOF is returned unwrapped when r is exhausted between records,
// signaling a clean end of stream to callers looping on ReadRecord.
func ReadRecord(r io.Reader, v any) error {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		if err == io.ErrUnexpectedEOF {
			return errors.Wrap(ErrSerializationFailed, "codec: truncated record length")
		}
		return err
	}
	size := binary.BigEndian.Uint32(lenBuf[:])
	body := make([]byte, size)
	if _, err := io.ReadFull(r, body); err != nil {
		return errors.Wrap(ErrSerializationFailed, "codec: truncated record body")
	}
	return Decode(body, v)
}
