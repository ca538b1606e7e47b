package pngyinx

import "unicode/utf8"

// propertyBit is bit 5 of each type byte, the ASCII case bit.
const propertyBit = 0x20

// ChunkType is the 4-letter identifier of a chunk. The case of each letter encodes
// one property of the chunk:
//
//	byte 0: uppercase = critical,  lowercase = ancillary
//	byte 1: uppercase = public,    lowercase = private
//	byte 2: uppercase = reserved bit valid
//	byte 3: uppercase = unsafe to copy, lowercase = safe to copy
//
// The zero value is not a valid type; use [NewChunkType] or [ParseChunkType].
type ChunkType struct {
	b [4]byte
}

// NewChunkType builds a type from raw bytes. Every byte must be an ASCII letter.
// The reserved bit is not checked here since foreign files may legally carry such
// types; see [ChunkType.IsValid].
func NewChunkType(b [4]byte) (ChunkType, error) {
	for _, c := range b {
		if !isASCIILetter(c) {
			return ChunkType{}, &TagByteError{Byte: c}
		}
	}
	return ChunkType{b: b}, nil
}

// ParseChunkType builds a type from a 4-character string such as "ruSt".
func ParseChunkType(s string) (ChunkType, error) {
	if n := utf8.RuneCountInString(s); n != 4 {
		return ChunkType{}, &TagLengthError{Length: n}
	}
	for i := 0; i < len(s); i++ {
		if !isASCIILetter(s[i]) {
			return ChunkType{}, &TagByteError{Byte: s[i]}
		}
	}
	return ChunkType{b: [4]byte{s[0], s[1], s[2], s[3]}}, nil
}

// Bytes returns the four type bytes.
func (t ChunkType) Bytes() [4]byte {
	return t.b
}

// String returns the type as text, e.g. "IHDR".
func (t ChunkType) String() string {
	return string(t.b[:])
}

// IsCritical reports whether a decoder must understand the chunk to show the image.
func (t ChunkType) IsCritical() bool {
	return t.b[0]&propertyBit == 0
}

// IsPublic reports whether the type is part of the public registry.
func (t ChunkType) IsPublic() bool {
	return t.b[1]&propertyBit == 0
}

// IsReservedBitValid reports whether the third letter is uppercase.
func (t ChunkType) IsReservedBitValid() bool {
	return t.b[2]&propertyBit == 0
}

// IsSafeToCopy reports whether editors that change critical chunks may keep it.
func (t ChunkType) IsSafeToCopy() bool {
	return t.b[3]&propertyBit != 0
}

// IsValid reports whether all bytes are letters and the reserved bit is valid.
func (t ChunkType) IsValid() bool {
	for _, c := range t.b {
		if !isASCIILetter(c) {
			return false
		}
	}
	return t.IsReservedBitValid()
}

func isASCIILetter(c byte) bool {
	return ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z')
}
