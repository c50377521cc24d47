package utvideoenc

// mangleRGBPlanes applies the lossless R-G/B-G decorrelation transform
// to a packed RGB or RGBA buffer in place (spec §4.H step 2, GLOSSARY
// "Mangle"). G (and A, for RGBA) are left untouched.
func mangleRGBPlanes(src []byte, step, stride, width, height int) {
	row := src
	for j := 0; j < height; j++ {
		for i := 0; i < width*step; i += step {
			r := row[i]
			g := row[i+1]
			b := row[i+2]
			row[i] = r - g + 0x80
			row[i+2] = b - g + 0x80
		}
		row = row[stride:]
	}
}
