package pngyinx

import (
	"fmt"
	"io"
)

// Encode embeds message in file under the chunk type typ and returns the new file.
//
// The chunk is inserted right before IEND; everything else is copied unchanged.
// An existing chunk of the same type is left in place and shadows the new one on
// Decode, so callers replacing a message should Remove first.
func Encode(file []byte, typ, message string, opts ...WriteOption) ([]byte, error) {
	cfg := newWriteConfig(opts)
	t, err := ParseChunkType(typ)
	if err != nil {
		return nil, err
	}
	if cfg.rejectCritical && t.IsCritical() {
		return nil, fmt.Errorf("%w: %s", ErrCriticalType, t)
	}
	if uint64(len(message)) > uint64(cfg.limits.MaxChunkLen) {
		return nil, fmt.Errorf("%w: message is %d bytes", ErrLimitExceeded, len(message))
	}
	p, err := Parse(file, WithReadLimits(cfg.limits))
	if err != nil {
		return nil, err
	}
	p.AppendChunk(NewChunk(t, []byte(message)))
	return p.Bytes(), nil
}

// Decode returns the message stored under typ. It returns a *ChunkNotFoundError if
// the file has no chunk of that type and ErrNotUTF8 if the payload is not text.
func Decode(file []byte, typ string, opts ...ReadOption) (string, error) {
	p, err := Parse(file, opts...)
	if err != nil {
		return "", err
	}
	c, ok := p.ChunkByType(typ)
	if !ok {
		return "", &ChunkNotFoundError{Type: typ}
	}
	return c.DataString()
}

// Remove deletes the first chunk of type typ and returns the new file.
func Remove(file []byte, typ string, opts ...WriteOption) ([]byte, error) {
	cfg := newWriteConfig(opts)
	p, err := Parse(file, WithReadLimits(cfg.limits))
	if err != nil {
		return nil, err
	}
	if _, err := p.RemoveChunk(typ); err != nil {
		return nil, err
	}
	return p.Bytes(), nil
}

// DecodeFrom is Decode over a reader.
func DecodeFrom(r io.Reader, typ string, opts ...ReadOption) (string, error) {
	p, err := Read(r, opts...)
	if err != nil {
		return "", err
	}
	c, ok := p.ChunkByType(typ)
	if !ok {
		return "", &ChunkNotFoundError{Type: typ}
	}
	return c.DataString()
}
