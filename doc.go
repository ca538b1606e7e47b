// Package pngyinx hides labelled payloads inside PNG files.
//
// A PNG file is an 8-byte signature followed by a sequence of chunks. Each chunk is
// laid out as
//
//	length (4, big-endian) | type (4) | data (length) | crc (4, big-endian)
//
// where crc is the IEEE CRC-32 of type and data. The last chunk is always IEND.
// Decoders skip ancillary chunks they do not know, so a private ancillary chunk
// (first and second letters lowercase) can carry an arbitrary payload without
// affecting how the image is displayed.
//
// # Basic Usage
//
// To embed a message:
//
//	b, _ := os.ReadFile("cat.png")
//	out, err := pngyinx.Encode(b, "ruSt", "meet at dawn")
//	if err != nil {
//		return err
//	}
//	err = os.WriteFile("cat.png", out, 0o644)
//
// To read it back:
//
//	msg, err := pngyinx.Decode(out, "ruSt")
//
// Lower level access is available through [Parse], [PNG] and [Chunk].
//
// # Integrity
//
// Every chunk CRC is verified when a file is parsed; a single damaged chunk fails
// the whole parse. Parsing then serializing an untouched file reproduces it byte for
// byte.
//
// The payload is stored in clear. Anyone who knows (or enumerates) the chunk type
// can read it.
package pngyinx
