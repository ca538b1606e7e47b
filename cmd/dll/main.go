// Package main provides C-compatible exports for the pngyinx library.
// Build with: go build -buildmode=c-shared -o pngyinx.dll ./cmd/dll
package main

/*
#include <stdlib.h>
#include <stdint.h>

// Result structure for operations that return data
typedef struct {
    char* data;
    int   data_len;
    char* error;
} PngyinxResult;
*/
import "C"

import (
	"encoding/json"
	"fmt"
	"unsafe"

	"github.com/logicossoftware/go-pngyinx"
)

func main() {}

// PngyinxFreeResult frees memory allocated by other Pngyinx functions.
// Must be called to avoid memory leaks.
//
//export PngyinxFreeResult
func PngyinxFreeResult(result C.PngyinxResult) {
	if result.data != nil {
		C.free(unsafe.Pointer(result.data))
	}
	if result.error != nil {
		C.free(unsafe.Pointer(result.error))
	}
}

// PngyinxFreeString frees a C string allocated by Go.
//
//export PngyinxFreeString
func PngyinxFreeString(s *C.char) {
	if s != nil {
		C.free(unsafe.Pointer(s))
	}
}

// makeResult creates a result with data.
func makeResult(data []byte) C.PngyinxResult {
	var result C.PngyinxResult
	if len(data) > 0 {
		result.data = (*C.char)(C.CBytes(data))
		result.data_len = C.int(len(data))
	}
	return result
}

// makeError creates a result with an error message.
func makeError(err error) C.PngyinxResult {
	var result C.PngyinxResult
	result.error = C.CString(err.Error())
	return result
}

// PngyinxEncode embeds a message into PNG bytes.
// Parameters:
//   - data: pointer to PNG file bytes
//   - dataLen: length of the data
//   - chunkType: 4-letter chunk type, e.g. "ruSt"
//   - message: message bytes (UTF-8)
//   - messageLen: length of the message
//
// Returns PngyinxResult with the new PNG bytes or error. Call PngyinxFreeResult when done.
//
//export PngyinxEncode
func PngyinxEncode(data *C.char, dataLen C.int, chunkType *C.char, message *C.char, messageLen C.int) C.PngyinxResult {
	goData := C.GoBytes(unsafe.Pointer(data), dataLen)
	msg := C.GoBytes(unsafe.Pointer(message), messageLen)
	out, err := pngyinx.Encode(goData, C.GoString(chunkType), string(msg))
	if err != nil {
		return makeError(err)
	}
	return makeResult(out)
}

// PngyinxDecode returns the message stored under chunkType.
//
//export PngyinxDecode
func PngyinxDecode(data *C.char, dataLen C.int, chunkType *C.char) C.PngyinxResult {
	goData := C.GoBytes(unsafe.Pointer(data), dataLen)
	msg, err := pngyinx.Decode(goData, C.GoString(chunkType))
	if err != nil {
		return makeError(err)
	}
	return makeResult([]byte(msg))
}

// PngyinxRemove deletes the first chunk of chunkType and returns the new PNG bytes.
//
//export PngyinxRemove
func PngyinxRemove(data *C.char, dataLen C.int, chunkType *C.char) C.PngyinxResult {
	goData := C.GoBytes(unsafe.Pointer(data), dataLen)
	out, err := pngyinx.Remove(goData, C.GoString(chunkType))
	if err != nil {
		return makeError(err)
	}
	return makeResult(out)
}

// PngyinxListChunks returns a JSON array describing every chunk:
// [{"type": "IHDR", "length": 13, "crc": "..."}, ...].
//
//export PngyinxListChunks
func PngyinxListChunks(data *C.char, dataLen C.int) C.PngyinxResult {
	goData := C.GoBytes(unsafe.Pointer(data), dataLen)
	p, err := pngyinx.Parse(goData)
	if err != nil {
		return makeError(err)
	}
	chunks := p.Chunks()
	list := make([]map[string]any, len(chunks))
	for i := range chunks {
		list[i] = map[string]any{
			"type":   chunks[i].Type().String(),
			"length": chunks[i].Length(),
			"crc":    fmt.Sprintf("%08x", chunks[i].CRC()),
		}
	}
	jsonBytes, err := json.Marshal(list)
	if err != nil {
		return makeError(err)
	}
	return makeResult(jsonBytes)
}

// PngyinxValidate parses and lints PNG bytes.
// Returns NULL on success, or an error message string on failure.
// Call PngyinxFreeString on the result if non-NULL.
//
//export PngyinxValidate
func PngyinxValidate(data *C.char, dataLen C.int) *C.char {
	goData := C.GoBytes(unsafe.Pointer(data), dataLen)
	p, err := pngyinx.Parse(goData)
	if err == nil {
		err = p.Validate()
	}
	if err != nil {
		return C.CString(err.Error())
	}
	return nil
}

// PngyinxChunkCount returns the number of chunks, IEND included.
// Returns -1 on error.
//
//export PngyinxChunkCount
func PngyinxChunkCount(data *C.char, dataLen C.int) C.int {
	goData := C.GoBytes(unsafe.Pointer(data), dataLen)
	p, err := pngyinx.Parse(goData)
	if err != nil {
		return -1
	}
	return C.int(p.Len())
}
