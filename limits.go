package pngyinx

import "math"

type Limits struct {
	MaxFileSize int64  // bytes accepted by Read before parsing
	MaxChunkLen uint32 // data length of a single chunk
	MaxChunks   int    // chunks in one file, IEND included
	MaxTextLen  uint64 // inflated size of a zTXt or compressed iTXt text
}

func defaultLimits() Limits {
	return Limits{
		MaxFileSize: 1 << 30, // 1 GiB
		MaxChunkLen: math.MaxUint32,
		MaxChunks:   1 << 20,
		MaxTextLen:  16 << 20, // 16 MiB
	}
}

// readBound is the io.LimitReader size that lets a caller tell input of exactly
// max bytes from input above it. It saturates at math.MaxInt64.
func readBound(max uint64) int64 {
	if max >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(max) + 1
}

// DefaultLimits returns the limits used when none are given.
func DefaultLimits() Limits {
	return defaultLimits()
}

func (l Limits) withDefaults() Limits {
	d := defaultLimits()
	if l.MaxFileSize == 0 {
		l.MaxFileSize = d.MaxFileSize
	}
	if l.MaxChunkLen == 0 {
		l.MaxChunkLen = d.MaxChunkLen
	}
	if l.MaxChunks == 0 {
		l.MaxChunks = d.MaxChunks
	}
	if l.MaxTextLen == 0 {
		l.MaxTextLen = d.MaxTextLen
	}
	return l
}
