package utvideoenc

// writePlane copies src into dst row by row with no prediction applied
// (the predNone scheme). dst is packed at stride = width.
func writePlane(src, dst []byte, step, stride, width, height int) {
	row := src
	o := 0
	for j := 0; j < height; j++ {
		for i := 0; i < width*step; i += step {
			dst[o] = row[i]
			o++
		}
		row = row[stride:]
	}
}

// leftPredict residual-codes src with the LEFT predictor (spec §4.C.2):
// the predictor starts at 0x80 and carries across row boundaries.
func leftPredict(src, dst []byte, step, stride, width, height int) {
	row := src
	o := 0
	var prev byte = 0x80
	for j := 0; j < height; j++ {
		for i := 0; i < width*step; i += step {
			dst[o] = row[i] - prev
			prev = row[i]
			o++
		}
		row = row[stride:]
	}
}

// mid is the classical Paeth/median-of-three predictor: the median of
// its three 8-bit arguments (GLOSSARY "Mid / median-of-three").
func mid(a, b, c byte) byte {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b = c
	}
	if a > b {
		b = a
	}
	return b
}

// medianPredict residual-codes src with the MEDIAN predictor (spec
// §4.C.3): the first row uses LEFT prediction; row 1's first sample
// subtracts the sample directly above; everything else uses the
// median-of-three predictor with state (A, B, C) carried sample by
// sample.
func medianPredict(src, dst []byte, step, stride, width, height int) {
	row := src
	o := 0

	var prev byte = 0x80
	for i := 0; i < width*step; i += step {
		dst[o] = row[i] - prev
		prev = row[i]
		o++
	}

	if height == 1 {
		return
	}

	above := row
	row = row[stride:]

	c := above[0]
	dst[o] = row[0] - c
	o++
	a := row[0]
	for i := step; i < width*step; i += step {
		b := above[i]
		dst[o] = row[i] - mid(a, b, byte(int(a)+int(b)-int(c)))
		o++
		c = b
		a = row[i]
	}

	above = row
	row = row[stride:]

	for j := 2; j < height; j++ {
		for i := 0; i < width*step; i += step {
			b := above[i]
			dst[o] = row[i] - mid(a, b, byte(int(a)+int(b)-int(c)))
			o++
			c = b
			a = row[i]
		}
		above = row
		row = row[stride:]
	}
}

// predict runs the predictor p over src (base, step, stride, width,
// height) into dst, which is packed at stride = width. Slices are
// iterated independently (SUPPLEMENTED FEATURE 2): each slice's
// predictor state restarts at its own row 0, matching the reference
// encoder's per-slice loop even though this specification fixes
// slices = 1 and the distinction has no observable effect at that
// slice count.
func predict(p predictor, src, dst []byte, step, stride, width, height, slices int) {
	send := 0
	for i := 0; i < slices; i++ {
		sstart := send
		send = height * (i + 1) / slices
		rows := send - sstart
		srow := src[sstart*stride:]
		drow := dst[sstart*width:]
		switch p {
		case predNone:
			writePlane(srow, drow, step, stride, width, rows)
		case predLeft:
			leftPredict(srow, drow, step, stride, width, rows)
		case predMedian:
			medianPredict(srow, drow, step, stride, width, rows)
		}
	}
}
