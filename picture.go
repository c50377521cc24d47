package utvideoenc

import "github.com/pkg/errors"

// Picture is a raw input frame in one of the four supported layouts
// (spec §3 "Frame input"). For packed layouts (RGB24, RGBA) the pixel
// data lives in Data[0] with Stride[0] bytes per row; for planar YUV
// layouts each of Data[0..2] (Y, U, V) carries its own base pointer and
// stride.
type Picture struct {
	Format PixelFormat
	Width  int
	Height int

	// Data holds the per-plane base pointers. Packed layouts use only
	// Data[0]; planar layouts use Data[0] (Y), Data[1] (U), Data[2] (V).
	Data [3][]byte

	// Stride holds the per-plane row stride in bytes.
	Stride [3]int
}

// chromaDims returns the width and height of the chroma planes for the
// picture's layout. For packed layouts it returns the luma dimensions
// unchanged (chroma planes do not apply).
func (p *Picture) chromaDims() (w, h int) {
	switch p.Format {
	case PixelYUV420P:
		return p.Width / 2, p.Height / 2
	case PixelYUV422P:
		return p.Width / 2, p.Height
	default:
		return p.Width, p.Height
	}
}

// validateDimensions enforces the even-dimension constraints for
// subsampled layouts (spec §3, §7 "odd dimensions for subsampled
// layouts").
func validateDimensions(format PixelFormat, width, height int) error {
	switch format {
	case PixelYUV420P:
		if width&1 != 0 || height&1 != 0 {
			return errors.Wrap(ErrInvalidData, "4:2:0 requires even width and height")
		}
	case PixelYUV422P:
		if width&1 != 0 {
			return errors.Wrap(ErrInvalidData, "4:2:2 requires even width")
		}
	}
	return nil
}
