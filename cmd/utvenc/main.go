// Command utvenc encodes a single still image into a one-frame Ut
// Video AVI file.
//
// Usage:
//
//	utvenc [options] <input.png>
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/go-utvideo/utvideoenc"
	"github.com/go-utvideo/utvideoenc/internal/avi"
)

const (
	logPath      = "utvenc.log"
	logMaxSize   = 50 // MB
	logMaxBackup = 3
	logMaxAge    = 28 // days
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "utvenc: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("utvenc", flag.ContinueOnError)
	predictor := fs.String("pred", "median", "predictor: none, left, median")
	output := fs.String("o", "", "output path (default: <input>.avi)")
	logFile := fs.Bool("log", false, "write rotating diagnostics log to "+logPath)

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("missing input file\nUsage: utvenc [options] <input.png>")
	}
	inputPath := fs.Arg(0)

	if *logFile {
		log.SetOutput(&lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackup,
			MaxAge:     logMaxAge,
		})
	} else {
		log.SetOutput(os.Stderr)
	}

	method, err := parsePredictor(*predictor)
	if err != nil {
		return err
	}

	f, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decoding input: %w", err)
	}

	pic, format := pictureFromImage(img)

	enc, err := utvideoenc.New(utvideoenc.Config{
		PixelFormat:      format,
		Width:            pic.Width,
		Height:           pic.Height,
		PredictionMethod: method,
	})
	if err != nil {
		return fmt.Errorf("initializing encoder: %w", err)
	}
	defer enc.Close()

	pkt, err := enc.EncodeFrame(pic)
	if err != nil {
		return fmt.Errorf("encoding frame: %w", err)
	}

	log.Printf("encoded %dx%d frame: %d bytes, codec tag %s, keyframe=%v",
		pic.Width, pic.Height, len(pkt.Data), pkt.CodecTag, pkt.Keyframe)

	outputPath := *output
	if outputPath == "" {
		base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
		outputPath = base + ".avi"
	}

	file := avi.WriteSingleFrame(avi.Frame{
		Width:    pic.Width,
		Height:   pic.Height,
		CodecTag: pkt.CodecTag,
		Data:     pkt.Data,
	})

	if err := os.WriteFile(outputPath, file, 0o644); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Encoded %s -> %s (%d bytes)\n", inputPath, outputPath, len(file))
	return nil
}

func parsePredictor(s string) (utvideoenc.PredictionMethod, error) {
	switch strings.ToLower(s) {
	case "none":
		return utvideoenc.PredictionNone, nil
	case "left":
		return utvideoenc.PredictionLeft, nil
	case "median":
		return utvideoenc.PredictionMedian, nil
	default:
		return 0, fmt.Errorf("unknown predictor %q (use none/left/median)", s)
	}
}

// pictureFromImage converts a decoded image into an RGB24 Picture. The
// CLI always encodes as packed RGB24; YUV layouts are reachable
// through the library API but not exposed as a flag here.
func pictureFromImage(img image.Image) (*utvideoenc.Picture, utvideoenc.PixelFormat) {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	stride := width * 3
	data := make([]byte, stride*height)

	o := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			data[o] = byte(r >> 8)
			data[o+1] = byte(g >> 8)
			data[o+2] = byte(bl >> 8)
			o += 3
		}
	}

	pic := &utvideoenc.Picture{
		Format: utvideoenc.PixelRGB24,
		Width:  width,
		Height: height,
	}
	pic.Data[0] = data
	pic.Stride[0] = stride
	return pic, utvideoenc.PixelRGB24
}
