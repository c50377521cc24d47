// Package avi builds a minimal single-frame AVI (RIFF) container
// around a Ut Video packet.
//
// This is the thinnest wrapper a real player needs to open the
// encoder core's output; it is not part of the core itself (spec §1
// scopes "codec registration/dispatch by a host multimedia framework"
// out of the core). The chunk-building primitive — FourCC + a
// little-endian size + payload + an even-alignment pad byte — is
// grounded on the teacher's mux/chunk.go, which implements the same
// primitive for WebP's RIFF container; AVI's chunk graph differs
// completely, but the wire-level mechanics transfer unchanged.
package avi

import (
	"bytes"
	"encoding/binary"
)

type fourCC [4]byte

var (
	fourCCRIFF = fourCC{'R', 'I', 'F', 'F'}
	fourCCAVI  = fourCC{'A', 'V', 'I', ' '}
	fourCCLIST = fourCC{'L', 'I', 'S', 'T'}
	fourCCHdrl = fourCC{'h', 'd', 'r', 'l'}
	fourCCAvih = fourCC{'a', 'v', 'i', 'h'}
	fourCCStrl = fourCC{'s', 't', 'r', 'l'}
	fourCCStrh = fourCC{'s', 't', 'r', 'h'}
	fourCCStrf = fourCC{'s', 't', 'r', 'f'}
	fourCCVids = fourCC{'v', 'i', 'd', 's'}
	fourCCMovi = fourCC{'m', 'o', 'v', 'i'}
	fourCC00dc = fourCC{'0', '0', 'd', 'c'}
)

// Frame describes a single coded Ut Video packet to wrap.
type Frame struct {
	Width    int
	Height   int
	CodecTag [4]byte
	Data     []byte
}

// WriteSingleFrame builds a complete one-frame AVI file: a RIFF/AVI
// header, a single video stream descriptor (avih/strl/strh/strf), and
// a movi list holding the packet as a "00dc" chunk.
func WriteSingleFrame(f Frame) []byte {
	strf := makeBitmapInfoHeader(f.Width, f.Height, f.CodecTag)
	strh := makeStreamHeader(f.Width, f.Height, f.CodecTag)
	avih := makeMainHeader(f.Width, f.Height)

	strl := concatChunks(
		chunk(fourCCStrh, strh),
		chunk(fourCCStrf, strf),
	)

	hdrl := concatChunks(
		chunk(fourCCAvih, avih),
		list(fourCCStrl, strl),
	)

	movi := chunk(fourCC00dc, f.Data)

	body := concatChunks(
		list(fourCCHdrl, hdrl),
		list(fourCCMovi, movi),
	)

	var buf bytes.Buffer
	buf.Write(fourCCRIFF[:])
	var size [4]byte
	binary.LittleEndian.PutUint32(size[:], uint32(4+len(body)))
	buf.Write(size[:])
	buf.Write(fourCCAVI[:])
	buf.Write(body)
	return buf.Bytes()
}

// chunk builds a FourCC + little-endian size + payload + pad-byte
// chunk (the primitive mux/chunk.go implements for WebP).
func chunk(id fourCC, payload []byte) []byte {
	size := uint32(len(payload))
	out := make([]byte, 8+len(payload)+int(size&1))
	copy(out[0:4], id[:])
	binary.LittleEndian.PutUint32(out[4:8], size)
	copy(out[8:], payload)
	return out
}

// list wraps payload in a "LIST" chunk tagged with name (hdrl, strl,
// movi).
func list(name fourCC, payload []byte) []byte {
	body := make([]byte, 4+len(payload))
	copy(body[0:4], name[:])
	copy(body[4:], payload)
	return chunk(fourCCLIST, body)
}

func concatChunks(chunks ...[]byte) []byte {
	var buf bytes.Buffer
	for _, c := range chunks {
		buf.Write(c)
	}
	return buf.Bytes()
}

// makeMainHeader builds the 56-byte MainAVIHeader (avih). Field
// offsets follow the standard layout: dwMicroSecPerFrame (0),
// dwMaxBytesPerSec (4), dwPaddingGranularity (8), dwFlags (12),
// dwTotalFrames (16), dwInitialFrames (20), dwStreams (24),
// dwSuggestedBufferSize (28), dwWidth (32), dwHeight (36), then four
// reserved DWORDs.
func makeMainHeader(width, height int) []byte {
	b := make([]byte, 56)
	binary.LittleEndian.PutUint32(b[0:4], 1_000_000/25) // dwMicroSecPerFrame, 25fps default
	binary.LittleEndian.PutUint32(b[12:16], 0)          // dwFlags: no AVIF_HASINDEX (0x10; no idx1 is written), interleaved off
	binary.LittleEndian.PutUint32(b[16:20], 1)          // dwTotalFrames
	binary.LittleEndian.PutUint32(b[24:28], 1)          // dwStreams
	binary.LittleEndian.PutUint32(b[32:36], uint32(width))
	binary.LittleEndian.PutUint32(b[36:40], uint32(height))
	return b
}

// makeStreamHeader builds the 56-byte AVIStreamHeader (strh) for the
// single video stream.
func makeStreamHeader(width, height int, codecTag [4]byte) []byte {
	b := make([]byte, 56)
	copy(b[0:4], fourCCVids[:])
	copy(b[4:8], codecTag[:])
	binary.LittleEndian.PutUint32(b[20:24], 1)  // dwScale
	binary.LittleEndian.PutUint32(b[24:28], 25) // dwRate: 25fps default
	binary.LittleEndian.PutUint32(b[32:36], 1)  // dwLength: one frame
	// rcFrame rectangle, offset 48: left=0, top=0, right=width, bottom=height.
	binary.LittleEndian.PutUint16(b[52:54], uint16(width))
	binary.LittleEndian.PutUint16(b[54:56], uint16(height))
	return b
}

// makeBitmapInfoHeader builds the 40-byte BITMAPINFOHEADER (strf),
// with biCompression set to the Ut Video codec tag so a player
// dispatches to the right decoder.
func makeBitmapInfoHeader(width, height int, codecTag [4]byte) []byte {
	b := make([]byte, 40)
	binary.LittleEndian.PutUint32(b[0:4], 40)
	binary.LittleEndian.PutUint32(b[4:8], uint32(width))
	binary.LittleEndian.PutUint32(b[8:12], uint32(height))
	binary.LittleEndian.PutUint16(b[12:14], 1) // biPlanes
	binary.LittleEndian.PutUint16(b[14:16], 24)
	copy(b[16:20], codecTag[:]) // biCompression
	binary.LittleEndian.PutUint32(b[20:24], uint32(width*height*3))
	return b
}
