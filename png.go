package pngyinx

import (
	"bytes"
	"fmt"
	"io"
	"slices"
)

// PNG is a parsed PNG file: the signature followed by an ordered list of chunks,
// the last of which is IEND. Chunk data is kept opaque; nothing is decoded beyond
// the chunk framing.
//
// A PNG is not safe for concurrent use.
type PNG struct {
	chunks []Chunk
}

// New returns the smallest well-formed container: the signature and an IEND chunk.
func New() *PNG {
	return &PNG{chunks: []Chunk{NewChunk(TypeIEND, nil)}}
}

// FromChunks builds a container from chunks. The last chunk must be IEND and
// every chunk must have a type, so a zero Chunk is rejected.
func FromChunks(chunks ...Chunk) (*PNG, error) {
	if len(chunks) == 0 || chunks[len(chunks)-1].typ != TypeIEND {
		return nil, ErrMissingTerminator
	}
	for i := range chunks {
		if chunks[i].typ == (ChunkType{}) {
			return nil, fmt.Errorf("chunk %d: %w", i, &TagByteError{Byte: 0})
		}
	}
	return &PNG{chunks: slices.Clone(chunks)}, nil
}

// Parse decodes a complete PNG file held in b.
//
// Parse returns ErrBadSignature if b does not start with [Signature], the error of
// the first chunk that fails to decode (see [ParseChunk]), ErrLimitExceeded if a
// limit is exceeded and ErrMissingTerminator if the last chunk is not IEND.
func Parse(b []byte, opts ...ReadOption) (*PNG, error) {
	cfg := newReadConfig(opts)
	if len(b) < signatureSize {
		return nil, fmt.Errorf("%w: file is %d bytes", ErrBadSignature, len(b))
	}
	if !bytes.Equal(b[:signatureSize], Signature[:]) {
		return nil, fmt.Errorf("%w: % x", ErrBadSignature, b[:signatureSize])
	}

	p := &PNG{}
	for off := signatureSize; off < len(b); {
		if len(p.chunks) >= cfg.limits.MaxChunks {
			return nil, fmt.Errorf("%w: more than %d chunks", ErrLimitExceeded, cfg.limits.MaxChunks)
		}
		c, err := parseChunk(b[off:], cfg.limits.MaxChunkLen)
		if err != nil {
			return nil, fmt.Errorf("chunk %d at offset %d: %w", len(p.chunks), off, err)
		}
		p.chunks = append(p.chunks, c)
		off += c.Size()
	}
	if len(p.chunks) == 0 || p.chunks[len(p.chunks)-1].typ != TypeIEND {
		return nil, ErrMissingTerminator
	}
	return p, nil
}

// Read reads r to EOF and parses the result.
func Read(r io.Reader, opts ...ReadOption) (*PNG, error) {
	cfg := newReadConfig(opts)
	b, err := readLimited(r, cfg.limits.MaxFileSize)
	if err != nil {
		return nil, err
	}
	return Parse(b, WithReadLimits(cfg.limits))
}

// ReadBytes reads r to EOF without parsing, failing with ErrLimitExceeded once
// the input exceeds MaxFileSize.
func ReadBytes(r io.Reader, opts ...ReadOption) ([]byte, error) {
	cfg := newReadConfig(opts)
	return readLimited(r, cfg.limits.MaxFileSize)
}

func readLimited(r io.Reader, max int64) ([]byte, error) {
	b, err := readAll(io.LimitReader(r, readBound(uint64(max))))
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("%w: file larger than %d bytes", ErrLimitExceeded, max)
	}
	return b, nil
}

// AppendChunk inserts c immediately before the IEND chunk. Duplicate types are
// allowed; lookups return the first match. c must come from NewChunk or ParseChunk:
// a zero Chunk has no type and the file would no longer parse.
func (p *PNG) AppendChunk(c Chunk) {
	if len(p.chunks) == 0 {
		p.chunks = []Chunk{c, NewChunk(TypeIEND, nil)}
		return
	}
	p.chunks = slices.Insert(p.chunks, len(p.chunks)-1, c)
}

// ChunkByType returns the first chunk whose type equals typ. The pointer refers to
// the chunk held by p and is invalidated by the next AppendChunk or RemoveChunk.
func (p *PNG) ChunkByType(typ string) (*Chunk, bool) {
	i := p.index(typ)
	if i < 0 {
		return nil, false
	}
	return &p.chunks[i], true
}

// RemoveChunk removes and returns the first chunk whose type equals typ. If there is
// none, p is left unchanged and a *ChunkNotFoundError is returned.
func (p *PNG) RemoveChunk(typ string) (Chunk, error) {
	i := p.index(typ)
	if i < 0 {
		return Chunk{}, &ChunkNotFoundError{Type: typ}
	}
	c := p.chunks[i]
	p.chunks = slices.Delete(p.chunks, i, i+1)
	return c, nil
}

func (p *PNG) index(typ string) int {
	for i := range p.chunks {
		if p.chunks[i].typ.String() == typ {
			return i
		}
	}
	return -1
}

// Chunks returns the chunks in file order.
func (p *PNG) Chunks() []Chunk {
	return slices.Clone(p.chunks)
}

func (p *PNG) Len() int {
	return len(p.chunks)
}

// Size is the length of the serialized file.
func (p *PNG) Size() int {
	n := signatureSize
	for i := range p.chunks {
		n += p.chunks[i].Size()
	}
	return n
}

// Bytes serializes the file. For a PNG returned by Parse and not modified since,
// the result equals the parsed input.
func (p *PNG) Bytes() []byte {
	var buf bytes.Buffer
	buf.Grow(p.Size())
	// bytes.Buffer writes do not fail.
	_, _ = p.WriteTo(&buf)
	return buf.Bytes()
}

// WriteTo writes the serialized file to w.
func (p *PNG) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	if err := writeSignature(cw); err != nil {
		return cw.n, err
	}
	for i := range p.chunks {
		if err := writeChunk(cw, &p.chunks[i]); err != nil {
			return cw.n, err
		}
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.n += int64(n)
	return n, err
}
