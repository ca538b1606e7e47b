package pngyinx

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"unicode/utf8"
)

// Chunk is one length-prefixed, typed and checksummed record of a PNG file.
// A Chunk is immutable: its length and CRC are always derived from its type and
// data. Only NewChunk and ParseChunk produce usable values; the zero Chunk has no
// type.
type Chunk struct {
	typ  ChunkType
	data []byte
	crc  uint32
}

// NewChunk builds a chunk around a copy of data.
func NewChunk(t ChunkType, data []byte) Chunk {
	d := bytes.Clone(data)
	if d == nil {
		d = []byte{}
	}
	return Chunk{typ: t, data: d, crc: checksum(t.b, d)}
}

// ParseChunk decodes the chunk at the start of b. Bytes after the chunk are
// ignored; [Chunk.Size] reports how many bytes were consumed.
//
// ParseChunk returns ErrInsufficientData if b is shorter than the length field
// implies, a *TagByteError if the type is not four letters, and a *ChecksumError
// if the stored CRC does not match.
func ParseChunk(b []byte) (Chunk, error) {
	return parseChunk(b, defaultLimits().MaxChunkLen)
}

func parseChunk(b []byte, maxLen uint32) (Chunk, error) {
	h, err := readChunkHeader(b)
	if err != nil {
		return Chunk{}, err
	}
	if h.Length > maxLen {
		return Chunk{}, fmt.Errorf("%w: chunk length %d", ErrLimitExceeded, h.Length)
	}
	total := uint64(chunkOverhead) + uint64(h.Length)
	if uint64(len(b)) < total {
		return Chunk{}, fmt.Errorf("%w: chunk declares %d data bytes, only %d bytes remain", ErrInsufficientData, h.Length, len(b))
	}
	t, err := NewChunkType(h.Type)
	if err != nil {
		return Chunk{}, err
	}
	end := 8 + int(h.Length)
	data := bytes.Clone(b[8:end])
	if data == nil {
		data = []byte{}
	}
	stored := binary.BigEndian.Uint32(b[end : end+4])
	if computed := checksum(h.Type, data); stored != computed {
		return Chunk{}, &ChecksumError{Type: t, Expected: stored, Actual: computed}
	}
	return Chunk{typ: t, data: data, crc: stored}, nil
}

// Length is the number of data bytes.
func (c *Chunk) Length() uint32 {
	return uint32(len(c.data))
}

func (c *Chunk) Type() ChunkType {
	return c.typ
}

// Data returns a copy of the payload.
func (c *Chunk) Data() []byte {
	return bytes.Clone(c.data)
}

func (c *Chunk) CRC() uint32 {
	return c.crc
}

// Size is the number of bytes the chunk occupies on the wire.
func (c *Chunk) Size() int {
	return chunkOverhead + len(c.data)
}

// DataString returns the payload as text. It fails with ErrNotUTF8 if the payload
// is not valid UTF-8.
func (c *Chunk) DataString() (string, error) {
	if !utf8.Valid(c.data) {
		return "", fmt.Errorf("%w: %s chunk", ErrNotUTF8, c.typ)
	}
	return string(c.data), nil
}

// Bytes serializes the chunk as length | type | data | crc.
func (c *Chunk) Bytes() []byte {
	out := make([]byte, c.Size())
	putChunkHeader(out, chunkHeader{Length: c.Length(), Type: c.typ.b})
	n := copy(out[8:], c.data)
	binary.BigEndian.PutUint32(out[8+n:], c.crc)
	return out
}

func (c *Chunk) String() string {
	return fmt.Sprintf("%s length=%d crc=%08x", c.typ, c.Length(), c.crc)
}
