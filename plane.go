package utvideoenc

import "github.com/go-utvideo/utvideoenc/internal/bitio"

// bswap32Buf byte-reverses every complete 32-bit word of buf in place
// (spec §3 invariant "each complete 32-bit word in the slice bit
// region is byte-reversed in place"; spec §9 "Endian of the
// bitstream"). buf's length need not be a multiple of 4; any trailing
// partial word is left untouched (the plane encoder always pads to a
// whole number of words before calling this, so in practice there is
// none).
func bswap32Buf(buf []byte) {
	n := len(buf) &^ 3
	for i := 0; i < n; i += 4 {
		buf[i], buf[i+1], buf[i+2], buf[i+3] = buf[i+3], buf[i+2], buf[i+1], buf[i]
	}
}

// appendPadding appends n zero bits to w, splitting into chunks that
// respect the bit-packer's per-call width limit (spec §4.A, n in
// [0,25]).
func appendPadding(w *bitio.Writer, n int) {
	for n > 0 {
		chunk := n
		if chunk > 25 {
			chunk = 25
		}
		w.Append(chunk, 0)
		n -= chunk
	}
}

// writeHuffCodes packs the residual plane's bytes through the code
// table he, MSB-first, padded to a 32-bit boundary, and returns the
// bit count after padding (spec §4.G step 6.a-b, mirroring
// write_huff_codes, which recomputes put_bits_count after the pad).
func writeHuffCodes(residual []byte, dst []byte, width, height int, he *[256]huffEntry) int {
	var w bitio.Writer
	w.Init(dst, len(dst))

	o := 0
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			e := he[residual[o]]
			w.Append(int(e.len), e.code)
			o++
		}
	}

	if rem := w.BitCount() & 31; rem != 0 {
		appendPadding(&w, 32-rem)
	}
	w.Flush()
	return w.BitCount()
}

// encodePlane runs the full per-plane pipeline (spec §4.G): predict,
// histogram, the single-symbol fast path, Huffman length/code
// construction, and slice emission interleaved with the slice-offset
// table via sink's seek operations.
//
// residual is the encoder's scratch working buffer (row-packed at
// stride = width); sliceBits is the encoder's scratch slice-bits
// buffer, sized to at least width*height bytes.
func encodePlane(sink *bitio.ByteSink, p predictor, src []byte, residual []byte, sliceBits []byte, step, stride, width, height, slices int) {
	predict(p, src, residual, step, stride, width, height, slices)

	var counts [256]uint32
	countUsage(residual, width, height, &counts)

	if symbol, ok := singleSymbol(&counts, width, height); ok {
		for i := 0; i < 256; i++ {
			if i == int(symbol) {
				sink.PutU8(0x00)
			} else {
				sink.PutU8(0xFF)
			}
		}
		for i := 0; i < slices; i++ {
			sink.PutLE32(0)
		}
		return
	}

	var lengths [256]uint8
	calculateCodeLengths(&lengths, &counts)

	var he [256]huffEntry
	for i := 0; i < 256; i++ {
		sink.PutU8(lengths[i])
		he[i].sym = i
		he[i].len = lengths[i]
	}

	calculateCodes(&he)

	offset := uint32(0)
	sliceLen := uint32(0)
	send := 0
	for i := 0; i < slices; i++ {
		sstart := send
		send = height * (i + 1) / slices
		rows := send - sstart

		bits := writeHuffCodes(residual[sstart*width:], sliceBits, width, rows, &he)
		offset += uint32(bits>>3)

		thisLen := offset - sliceLen
		bswap32Buf(sliceBits[:thisLen])

		sink.PutLE32(offset)
		sink.SeekRelative(4*(slices-i-1) + int(offset-thisLen))
		sink.PutBytes(sliceBits[:thisLen])
		sink.SeekRelative(-4*(slices-i-1) - int(offset))

		sliceLen = offset
	}

	sink.SeekRelative(int(offset))
}
