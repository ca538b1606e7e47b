package pngyinx

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncodeDecodeRemove(t *testing.T) {
	in := sampleFile(t)
	out, err := Encode(in, "ruSt", "meet at dawn")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(out) != len(in)+12+len("meet at dawn") {
		t.Fatalf("encoded size %d", len(out))
	}
	// Everything up to the old IEND is untouched.
	if !bytes.Equal(out[:len(in)-12], in[:len(in)-12]) {
		t.Fatal("Encode modified existing chunks")
	}

	msg, err := Decode(out, "ruSt")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if msg != "meet at dawn" {
		t.Fatalf("got %q", msg)
	}

	back, err := Remove(out, "ruSt")
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if !bytes.Equal(back, in) {
		t.Fatal("Remove did not restore the original file")
	}
}

func TestDecode_NotFound(t *testing.T) {
	_, err := Decode(sampleFile(t), "ruSt")
	var nf *ChunkNotFoundError
	if !errors.As(err, &nf) || nf.Type != "ruSt" {
		t.Fatalf("expected ChunkNotFoundError, got %v", err)
	}
}

func TestDecode_NotText(t *testing.T) {
	p, err := Parse(sampleFile(t))
	if err != nil {
		t.Fatal(err)
	}
	p.AppendChunk(NewChunk(mustType(t, "ruSt"), []byte{0xC3, 0x28}))
	if _, err := Decode(p.Bytes(), "ruSt"); !errors.Is(err, ErrNotUTF8) {
		t.Fatalf("expected ErrNotUTF8, got %v", err)
	}
}

func TestEncode_Errors(t *testing.T) {
	in := sampleFile(t)
	if _, err := Encode(in, "ru5t", "x"); !errors.Is(err, ErrInvalidTagByte) {
		t.Fatalf("expected ErrInvalidTagByte, got %v", err)
	}
	if _, err := Encode(in, "rust!", "x"); !errors.Is(err, ErrBadTagLength) {
		t.Fatalf("expected ErrBadTagLength, got %v", err)
	}
	if _, err := Encode(in[1:], "ruSt", "x"); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("expected ErrBadSignature, got %v", err)
	}
	_, err := Encode(in, "ruSt", "too long", WithWriteLimits(Limits{MaxChunkLen: 4}))
	if !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("expected ErrLimitExceeded, got %v", err)
	}
}

func TestEncode_Critical(t *testing.T) {
	in := sampleFile(t)
	if _, err := Encode(in, "RuSt", "x"); err != nil {
		t.Fatalf("critical types are accepted by default: %v", err)
	}
	if _, err := Encode(in, "RuSt", "x", WithRejectCritical(true)); !errors.Is(err, ErrCriticalType) {
		t.Fatalf("expected ErrCriticalType, got %v", err)
	}
	if _, err := Encode(in, "ruSt", "x", WithRejectCritical(true)); err != nil {
		t.Fatalf("ancillary type rejected: %v", err)
	}
}

func TestRemove_Errors(t *testing.T) {
	in := sampleFile(t)
	if _, err := Remove(in, "ruSt"); !errors.Is(err, ErrChunkNotFound) {
		t.Fatalf("expected ErrChunkNotFound, got %v", err)
	}
	if _, err := Remove(in[:len(in)-1], "ruSt"); !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

func TestDecodeFrom(t *testing.T) {
	out, err := Encode(sampleFile(t), "abCd", "via reader")
	if err != nil {
		t.Fatal(err)
	}
	msg, err := DecodeFrom(bytes.NewReader(out), "abCd")
	if err != nil || msg != "via reader" {
		t.Fatalf("DecodeFrom: %q, %v", msg, err)
	}
	if _, err := DecodeFrom(bytes.NewReader(out), "zzZz"); !errors.Is(err, ErrChunkNotFound) {
		t.Fatalf("expected ErrChunkNotFound, got %v", err)
	}
	if _, err := DecodeFrom(bytes.NewReader(out[:4]), "abCd"); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("expected ErrBadSignature, got %v", err)
	}
}
