package pngyinx

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTagByte    = errors.New("pngyinx: invalid chunk type byte")
	ErrBadTagLength      = errors.New("pngyinx: chunk type must be 4 characters")
	ErrInsufficientData  = errors.New("pngyinx: insufficient data")
	ErrInvalidChecksum   = errors.New("pngyinx: invalid checksum")
	ErrNotUTF8           = errors.New("pngyinx: chunk data is not valid UTF-8")
	ErrBadSignature      = errors.New("pngyinx: invalid PNG signature")
	ErrMissingTerminator = errors.New("pngyinx: missing IEND chunk")
	ErrChunkNotFound     = errors.New("pngyinx: chunk not found")
	ErrLimitExceeded     = errors.New("pngyinx: limit exceeded")
	ErrValidation        = errors.New("pngyinx: validation failed")
	ErrInvalidText       = errors.New("pngyinx: invalid text chunk")
	ErrCriticalType      = errors.New("pngyinx: refusing critical chunk type")
)

// TagByteError reports a chunk type byte outside A-Z / a-z.
type TagByteError struct {
	Byte byte
}

func (e *TagByteError) Error() string {
	return fmt.Sprintf("%v: 0x%02x", ErrInvalidTagByte, e.Byte)
}

func (e *TagByteError) Unwrap() error { return ErrInvalidTagByte }

// TagLengthError reports a chunk type string that is not 4 characters long.
type TagLengthError struct {
	Length int
}

func (e *TagLengthError) Error() string {
	return fmt.Sprintf("%v, got %d", ErrBadTagLength, e.Length)
}

func (e *TagLengthError) Unwrap() error { return ErrBadTagLength }

// ChecksumError carries the CRC stored in the file and the one computed over the
// chunk's type and data.
type ChecksumError struct {
	Type     ChunkType
	Expected uint32
	Actual   uint32
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("%v: %s chunk stores 0x%08x, computed 0x%08x", ErrInvalidChecksum, e.Type, e.Expected, e.Actual)
}

func (e *ChecksumError) Unwrap() error { return ErrInvalidChecksum }

type ChunkNotFoundError struct {
	Type string
}

func (e *ChunkNotFoundError) Error() string {
	return fmt.Sprintf("%v: %q", ErrChunkNotFound, e.Type)
}

func (e *ChunkNotFoundError) Unwrap() error { return ErrChunkNotFound }
