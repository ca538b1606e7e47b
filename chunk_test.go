package pngyinx

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

const (
	testMessage = "This is where your secret message will be!"
	testCRC     = uint32(2882656334)
)

// rawChunk lays out a chunk with caller supplied length and crc, so tests can
// build inconsistent input.
func rawChunk(length uint32, typ string, data []byte, crc uint32) []byte {
	var b []byte
	b = binary.BigEndian.AppendUint32(b, length)
	b = append(b, typ...)
	b = append(b, data...)
	return binary.BigEndian.AppendUint32(b, crc)
}

func testingChunk(t *testing.T) Chunk {
	t.Helper()
	c, err := ParseChunk(rawChunk(42, "RuSt", []byte(testMessage), testCRC))
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestNewChunk(t *testing.T) {
	ct, err := ParseChunkType("RuSt")
	if err != nil {
		t.Fatal(err)
	}
	c := NewChunk(ct, []byte(testMessage))
	if c.Length() != 42 {
		t.Fatalf("length: got %d", c.Length())
	}
	if c.CRC() != testCRC {
		t.Fatalf("crc: got %d", c.CRC())
	}
	if c.Type() != ct {
		t.Fatalf("type: got %v", c.Type())
	}
}

func TestParseChunk(t *testing.T) {
	c := testingChunk(t)
	if c.Length() != 42 {
		t.Fatalf("length: got %d", c.Length())
	}
	if c.Type().String() != "RuSt" {
		t.Fatalf("type: got %s", c.Type())
	}
	if c.CRC() != testCRC {
		t.Fatalf("crc: got %d", c.CRC())
	}
	if c.Size() != 54 {
		t.Fatalf("size: got %d", c.Size())
	}
	s, err := c.DataString()
	if err != nil {
		t.Fatal(err)
	}
	if s != testMessage {
		t.Fatalf("data: got %q", s)
	}
}

func TestParseChunk_InvalidChecksum(t *testing.T) {
	_, err := ParseChunk(rawChunk(42, "RuSt", []byte(testMessage), testCRC-1))
	if !errors.Is(err, ErrInvalidChecksum) {
		t.Fatalf("expected ErrInvalidChecksum, got %v", err)
	}
	var ce *ChecksumError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *ChecksumError, got %T", err)
	}
	if ce.Expected != testCRC-1 || ce.Actual != testCRC {
		t.Fatalf("checksum values: %+v", ce)
	}
}

func TestParseChunk_EveryCRCBitMatters(t *testing.T) {
	for bit := 0; bit < 32; bit++ {
		_, err := ParseChunk(rawChunk(42, "RuSt", []byte(testMessage), testCRC^(1<<bit)))
		if !errors.Is(err, ErrInvalidChecksum) {
			t.Fatalf("bit %d: expected ErrInvalidChecksum, got %v", bit, err)
		}
	}
}

func TestParseChunk_Truncated(t *testing.T) {
	raw := rawChunk(42, "RuSt", []byte(testMessage), testCRC)
	for n := 0; n < len(raw); n++ {
		if _, err := ParseChunk(raw[:n]); !errors.Is(err, ErrInsufficientData) {
			t.Fatalf("len %d: expected ErrInsufficientData, got %v", n, err)
		}
	}
}

func TestParseChunk_LengthMismatch(t *testing.T) {
	// Declared longer than the data present.
	_, err := ParseChunk(rawChunk(44, "RuSt", []byte(testMessage), testCRC))
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
	// Declared shorter: the CRC is read from inside the message.
	_, err = ParseChunk(rawChunk(40, "RuSt", []byte(testMessage), testCRC))
	if !errors.Is(err, ErrInvalidChecksum) {
		t.Fatalf("expected ErrInvalidChecksum, got %v", err)
	}
}

func TestParseChunk_InvalidType(t *testing.T) {
	data := []byte("x")
	crc := checksum([4]byte{'R', 'u', '1', 't'}, data)
	_, err := ParseChunk(rawChunk(1, "Ru1t", data, crc))
	var be *TagByteError
	if !errors.As(err, &be) || be.Byte != '1' {
		t.Fatalf("expected TagByteError('1'), got %v", err)
	}
}

func TestParseChunk_IgnoresTrailingBytes(t *testing.T) {
	raw := rawChunk(42, "RuSt", []byte(testMessage), testCRC)
	withTail := append(bytes.Clone(raw), 0xDE, 0xAD, 0xBE, 0xEF)
	c, err := ParseChunk(withTail)
	if err != nil {
		t.Fatal(err)
	}
	if c.Size() != len(raw) {
		t.Fatalf("size: got %d want %d", c.Size(), len(raw))
	}
	if !bytes.Equal(c.Bytes(), raw) {
		t.Fatal("serialized chunk differs from input")
	}
}

func TestChunkBytes(t *testing.T) {
	raw := rawChunk(42, "RuSt", []byte(testMessage), testCRC)
	c := testingChunk(t)
	if !bytes.Equal(c.Bytes(), raw) {
		t.Fatalf("bytes mismatch\nwant: %x\ngot:  %x", raw, c.Bytes())
	}

	iend := NewChunk(TypeIEND, nil)
	want := []byte{0, 0, 0, 0, 'I', 'E', 'N', 'D', 0xAE, 0x42, 0x60, 0x82}
	if !bytes.Equal(iend.Bytes(), want) {
		t.Fatalf("IEND bytes: got %x", iend.Bytes())
	}
}

func TestChunkDataNotUTF8(t *testing.T) {
	ct, _ := ParseChunkType("ruSt")
	c := NewChunk(ct, []byte{0xFF, 0xFE, 0x00})
	_, err := c.DataString()
	if !errors.Is(err, ErrNotUTF8) {
		t.Fatalf("expected ErrNotUTF8, got %v", err)
	}
}

func TestChunkIsImmutable(t *testing.T) {
	ct, _ := ParseChunkType("ruSt")
	in := []byte("hello")
	c := NewChunk(ct, in)
	in[0] = 'j'
	out := c.Data()
	out[1] = 'a'
	s, err := c.DataString()
	if err != nil {
		t.Fatal(err)
	}
	if s != "hello" {
		t.Fatalf("chunk data changed: %q", s)
	}
	if c.CRC() != checksum(ct.Bytes(), []byte("hello")) {
		t.Fatal("crc does not match data")
	}
}

func TestChunkString(t *testing.T) {
	c := testingChunk(t)
	if got, want := c.String(), "RuSt length=42 crc=abd1d84e"; got != want {
		t.Fatalf("String: got %q want %q", got, want)
	}
}
