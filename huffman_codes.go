package utvideoenc

import "sort"

// huffEntry is one row of the 256-entry code table (spec §3 "Code
// table"): a symbol, its code length in bits, and its assigned
// canonical code value.
type huffEntry struct {
	sym  int
	len  uint8
	code uint32
}

// calculateCodes assigns canonical Huffman codes to he in place (spec
// §4.F). he must already carry (sym, len) pairs; code is filled in.
//
// The table is sorted by (length, symbol) to assign codes from the
// longest to the shortest, then re-sorted by symbol so encoding can
// look up a code in O(1).
func calculateCodes(he *[256]huffEntry) {
	sort.Slice(he[:], func(i, j int) bool {
		if he[i].len != he[j].len {
			return he[i].len < he[j].len
		}
		return he[i].sym < he[j].sym
	})

	last := 255
	for last != 0 && he[last].len == 255 {
		last--
	}

	code := uint32(1)
	for i := last; i >= 0; i-- {
		l := he[i].len
		he[i].code = code >> (32 - l)
		code += 0x80000000 >> (l - 1)
	}

	sort.Slice(he[:], func(i, j int) bool {
		return he[i].sym < he[j].sym
	})
}
