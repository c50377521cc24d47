package utvideoenc

// addWeights combines two heap node weights (spec §4.E): the high 24
// bits are summed frequency, the low 8 bits are one more than the
// larger of the two subtrees' depth tiebreakers. This is the exact
// weighting scheme spec §9 warns must be preserved — a naive min-heap
// over raw frequencies can produce code lengths past 32 bits.
func addWeights(w1, w2 uint32) uint32 {
	max := w1 & 0xFF
	if m2 := w2 & 0xFF; m2 > max {
		max = m2
	}
	return ((w1 & 0xFFFFFF00) + (w2 & 0xFFFFFF00)) | (1 + max)
}

// upHeap sifts the node at heap index val toward the root of a
// 1-indexed binary min-heap ordered by weights[heap[i]].
func upHeap(val uint32, heap, weights *[512]uint32) {
	initial := heap[val]
	for weights[initial] < weights[heap[val>>1]] {
		heap[val] = heap[val>>1]
		val >>= 1
	}
	heap[val] = initial
}

// downHeap sifts the root of a nrHeap-sized 1-indexed binary min-heap
// down to restore the heap invariant after the root has been
// overwritten.
func downHeap(nrHeap uint32, heap, weights *[512]uint32) {
	val := uint32(1)
	initial := heap[val]

	for {
		val2 := val << 1
		if val2 > nrHeap {
			break
		}
		if val2 < nrHeap && weights[heap[val2+1]] < weights[heap[val2]] {
			val2++
		}
		if weights[initial] < weights[heap[val2]] {
			break
		}
		heap[val] = heap[val2]
		val = val2
	}
	heap[val] = initial
}

// calculateCodeLengths builds the 256-entry Huffman length table from
// a residual histogram (spec §4.E). It repeatedly extracts the two
// lightest nodes from a weighted min-heap, merging them into a new
// internal node, until one node remains; each leaf's code length is
// the hop count from the leaf to that root via parent pointers.
func calculateCodeLengths(lengths *[256]uint8, counts *[256]uint32) {
	var weights [512]uint32
	var heap [512]uint32
	var parents [512]int32

	for i := 0; i < 256; i++ {
		c := counts[i]
		if c == 0 {
			c = 1
		}
		weights[i+1] = c << 8
	}

	heap[0] = 0
	weights[0] = 0
	parents[0] = -2

	nrNodes := uint32(256)
	nrHeap := uint32(0)

	for i := uint32(1); i <= 256; i++ {
		parents[i] = -1
		nrHeap++
		heap[nrHeap] = i
		upHeap(nrHeap, &heap, &weights)
	}

	for nrHeap > 1 {
		node1 := heap[1]
		heap[1] = heap[nrHeap]
		nrHeap--
		downHeap(nrHeap, &heap, &weights)

		node2 := heap[1]
		heap[1] = heap[nrHeap]
		nrHeap--
		downHeap(nrHeap, &heap, &weights)

		nrNodes++
		parents[node1] = int32(nrNodes)
		parents[node2] = int32(nrNodes)
		weights[nrNodes] = addWeights(weights[node1], weights[node2])
		parents[nrNodes] = -1

		nrHeap++
		heap[nrHeap] = nrNodes
		upHeap(nrHeap, &heap, &weights)
	}

	for i := int32(1); i <= 256; i++ {
		depth := 0
		k := i
		for parents[k] >= 0 {
			k = parents[k]
			depth++
		}
		lengths[i-1] = uint8(depth)
	}
}
