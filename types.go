package pngyinx

// Signature is the 8-byte PNG file signature.
var Signature = [8]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}

const (
	signatureSize = 8

	// chunkOverhead is length, type and crc around the data of every chunk.
	chunkOverhead = 12
)

// Well-known chunk types.
var (
	TypeIHDR = mustChunkType("IHDR")
	TypePLTE = mustChunkType("PLTE")
	TypeIDAT = mustChunkType("IDAT")
	TypeIEND = mustChunkType("IEND")
	TypeTEXT = mustChunkType("tEXt")
	TypeZTXT = mustChunkType("zTXt")
	TypeITXT = mustChunkType("iTXt")
)

func mustChunkType(s string) ChunkType {
	t, err := ParseChunkType(s)
	if err != nil {
		panic(err)
	}
	return t
}
