package pngyinx

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
	"golang.org/x/text/encoding/charmap"
)

// Function variables for testing injection.
var (
	newZlibReader = func(r io.Reader) (io.ReadCloser, error) { return zlib.NewReader(r) }
	zlibClose     = func(w *zlib.Writer) error { return w.Close() }
	readAll       = io.ReadAll
)

const (
	maxKeywordLen = 79

	// compressionDeflate is the only compression method defined for text chunks.
	compressionDeflate byte = 0
)

// TextChunk is the decoded content of a tEXt, zTXt or iTXt chunk.
type TextChunk struct {
	Type              ChunkType
	Keyword           string
	Language          string // iTXt only
	TranslatedKeyword string // iTXt only
	Text              string
	Compressed        bool
}

// IsText reports whether t is one of the standard textual chunk types.
func IsText(t ChunkType) bool {
	return t == TypeTEXT || t == TypeZTXT || t == TypeITXT
}

// TextChunks decodes every textual chunk of p in file order.
func (p *PNG) TextChunks(opts ...ReadOption) ([]TextChunk, error) {
	cfg := newReadConfig(opts)
	var out []TextChunk
	for i := range p.chunks {
		if !IsText(p.chunks[i].typ) {
			continue
		}
		tc, err := parseText(&p.chunks[i], cfg.limits.MaxTextLen)
		if err != nil {
			return nil, fmt.Errorf("chunk %d: %w", i, err)
		}
		out = append(out, tc)
	}
	return out, nil
}

// ParseText decodes a tEXt, zTXt or iTXt chunk. Latin-1 fields of tEXt and zTXt are
// converted to UTF-8.
func ParseText(c *Chunk) (TextChunk, error) {
	return parseText(c, defaultLimits().MaxTextLen)
}

func parseText(c *Chunk, maxLen uint64) (TextChunk, error) {
	tc := TextChunk{Type: c.typ}
	keyword, rest, ok := bytes.Cut(c.data, []byte{0})
	if !ok {
		return tc, fmt.Errorf("%w: %s has no keyword separator", ErrInvalidText, c.typ)
	}
	if len(keyword) == 0 || len(keyword) > maxKeywordLen {
		return tc, fmt.Errorf("%w: keyword length %d", ErrInvalidText, len(keyword))
	}

	switch c.typ {
	case TypeTEXT:
		tc.Keyword = latin1(keyword)
		tc.Text = latin1(rest)
	case TypeZTXT:
		if len(rest) < 1 || rest[0] != compressionDeflate {
			return tc, fmt.Errorf("%w: zTXt compression method", ErrInvalidText)
		}
		text, err := inflate(rest[1:], maxLen)
		if err != nil {
			return tc, err
		}
		tc.Keyword = latin1(keyword)
		tc.Text = latin1(text)
		tc.Compressed = true
	case TypeITXT:
		if len(rest) < 2 {
			return tc, fmt.Errorf("%w: iTXt too short", ErrInvalidText)
		}
		flag, method := rest[0], rest[1]
		lang, rest, ok := bytes.Cut(rest[2:], []byte{0})
		if !ok {
			return tc, fmt.Errorf("%w: iTXt language tag", ErrInvalidText)
		}
		translated, text, ok := bytes.Cut(rest, []byte{0})
		if !ok {
			return tc, fmt.Errorf("%w: iTXt translated keyword", ErrInvalidText)
		}
		switch flag {
		case 0:
		case 1:
			if method != compressionDeflate {
				return tc, fmt.Errorf("%w: iTXt compression method %d", ErrInvalidText, method)
			}
			inflated, err := inflate(text, maxLen)
			if err != nil {
				return tc, err
			}
			text = inflated
			tc.Compressed = true
		default:
			return tc, fmt.Errorf("%w: iTXt compression flag %d", ErrInvalidText, flag)
		}
		tc.Keyword = latin1(keyword)
		tc.Language = string(lang)
		tc.TranslatedKeyword = string(translated)
		tc.Text = string(text)
	default:
		return tc, fmt.Errorf("%w: %s is not a text chunk", ErrInvalidText, c.typ)
	}
	return tc, nil
}

// NewTextChunk builds a tEXt chunk, or a zTXt chunk when compress is set.
func NewTextChunk(keyword, text string, compress bool) (Chunk, error) {
	if len(keyword) == 0 || len(keyword) > maxKeywordLen {
		return Chunk{}, fmt.Errorf("%w: keyword length %d", ErrInvalidText, len(keyword))
	}
	enc := charmap.ISO8859_1.NewEncoder()
	kw, err := enc.String(keyword)
	if err != nil {
		return Chunk{}, fmt.Errorf("%w: keyword: %v", ErrInvalidText, err)
	}
	body, err := enc.String(text)
	if err != nil {
		return Chunk{}, fmt.Errorf("%w: text: %v", ErrInvalidText, err)
	}

	var buf bytes.Buffer
	buf.WriteString(kw)
	buf.WriteByte(0)
	if !compress {
		buf.WriteString(body)
		return NewChunk(TypeTEXT, buf.Bytes()), nil
	}
	buf.WriteByte(compressionDeflate)
	if err := deflateTo(&buf, []byte(body)); err != nil {
		return Chunk{}, err
	}
	return NewChunk(TypeZTXT, buf.Bytes()), nil
}

func deflateTo(w io.Writer, in []byte) error {
	zw := zlib.NewWriter(w)
	if _, err := zw.Write(in); err != nil {
		_ = zlibClose(zw)
		return err
	}
	return zlibClose(zw)
}

// inflate decompresses a zlib stream, rejecting output above maxLen bytes.
func inflate(in []byte, maxLen uint64) ([]byte, error) {
	r, err := newZlibReader(bytes.NewReader(in))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidText, err)
	}
	defer r.Close()
	b, err := readAll(io.LimitReader(r, readBound(maxLen)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidText, err)
	}
	if uint64(len(b)) > maxLen {
		return nil, fmt.Errorf("%w: text inflates beyond %d bytes", ErrLimitExceeded, maxLen)
	}
	return b, nil
}

func latin1(b []byte) string {
	// Every byte sequence is valid ISO 8859-1, so decoding cannot fail.
	s, _ := charmap.ISO8859_1.NewDecoder().Bytes(b)
	return string(s)
}
