package pngyinx

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
)

type chunkHeader struct {
	Length uint32
	Type   [4]byte
}

func readChunkHeader(b []byte) (chunkHeader, error) {
	if len(b) < 8 {
		return chunkHeader{}, fmt.Errorf("%w: chunk header needs 8 bytes, have %d", ErrInsufficientData, len(b))
	}
	var h chunkHeader
	h.Length = binary.BigEndian.Uint32(b[0:4])
	copy(h.Type[:], b[4:8])
	return h, nil
}

func putChunkHeader(dst []byte, h chunkHeader) {
	binary.BigEndian.PutUint32(dst[0:4], h.Length)
	copy(dst[4:8], h.Type[:])
}

// checksum is the IEEE CRC-32 over type followed by data.
func checksum(t [4]byte, data []byte) uint32 {
	crc := crc32.Update(0, crc32.IEEETable, t[:])
	return crc32.Update(crc, crc32.IEEETable, data)
}

func writeSignature(w io.Writer) error {
	_, err := w.Write(Signature[:])
	return err
}

func writeChunk(w io.Writer, c *Chunk) error {
	var hdr [8]byte
	putChunkHeader(hdr[:], chunkHeader{Length: c.Length(), Type: c.typ.b})
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	if _, err := w.Write(c.data); err != nil {
		return err
	}
	var crc [4]byte
	binary.BigEndian.PutUint32(crc[:], c.crc)
	_, err := w.Write(crc[:])
	return err
}
