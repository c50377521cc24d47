// Package utvideoenc provides a pure Go encoder core for the Ut Video
// lossless intra-frame video codec.
//
// Ut Video is a lossless codec: decoding a packet this encoder produces
// reconstructs the source picture exactly. Every frame is coded
// independently (there is no inter-frame prediction), so encoding is a
// single synchronous operation per picture.
//
// The package supports:
//   - Packed RGB24 and RGBA frames
//   - Planar YUV420P and YUV422P frames
//   - NONE, LEFT, and MEDIAN sample predictors
//   - Canonical Huffman entropy coding with a single fixed slice
//
// Basic usage:
//
//	enc, err := utvideoenc.New(utvideoenc.Config{
//		PixelFormat:      utvideoenc.PixelYUV420P,
//		Width:            width,
//		Height:           height,
//		PredictionMethod: utvideoenc.PredictionMedian,
//	})
//	if err != nil {
//		// handle error
//	}
//	defer enc.Close()
//
//	pkt, err := enc.EncodeFrame(pic)
package utvideoenc
