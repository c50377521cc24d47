package utvideoenc

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/go-utvideo/utvideoenc/internal/bitio"
	"github.com/go-utvideo/utvideoenc/internal/pool"
)

// PictureType mirrors the coded-frame picture type a host multimedia
// framework would read off the packet (SUPPLEMENTED FEATURE 4). This
// encoder only ever produces intra frames.
type PictureType int

const (
	PictureTypeI PictureType = iota
)

// Packet is the encoder's result: the compressed frame bytes,
// truncated to their actual length, plus the metadata a host
// framework needs to place it in a stream (spec §4.H step 5, §6
// "Output packet"; GLOSSARY "Packet").
type Packet struct {
	Data        []byte
	Keyframe    bool
	PictureType PictureType
	CodecTag    [4]byte
}

// Config selects the frame layout and predictor for an Encoder (spec
// §6 "init(config)").
type Config struct {
	PixelFormat      PixelFormat
	Width            int
	Height           int
	PredictionMethod PredictionMethod
}

// Encoder holds the two scratch buffers and static, per-instance
// configuration the frame and plane encoders need across calls (spec
// §3 "Lifecycles", §5). An Encoder is not safe for concurrent use;
// distinct instances never share buffers.
type Encoder struct {
	format PixelFormat
	info   planeInfo
	width  int
	height int
	pred   predictor
	slices int

	extradata [16]byte

	residual  []byte // scratch working buffer, W*H + scratchPadding bytes
	sliceBits []byte // scratch slice-bits buffer, grown on demand
}

// New validates config and constructs an Encoder, writing its
// extradata header (spec §4.H "Initialization contract", §6 "init").
func New(cfg Config) (*Encoder, error) {
	info, ok := pixelFormats[cfg.PixelFormat]
	if !ok {
		return nil, errors.Wrap(ErrInvalidData, "unknown pixel format")
	}

	if err := validateDimensions(cfg.PixelFormat, cfg.Width, cfg.Height); err != nil {
		return nil, err
	}

	if cfg.PredictionMethod < 0 || cfg.PredictionMethod > 4 {
		return nil, errors.Wrapf(ErrOptionNotFound, "prediction method %d is not supported", cfg.PredictionMethod)
	}

	pred := predictorOrder[cfg.PredictionMethod]
	if pred == predPlane {
		return nil, errors.Wrap(ErrOptionNotFound, "plane prediction is not supported")
	}
	if pred == predGradient {
		return nil, errors.Wrap(ErrOptionNotFound, "gradient prediction is not supported")
	}

	e := &Encoder{
		format: cfg.PixelFormat,
		info:   info,
		width:  cfg.Width,
		height: cfg.Height,
		pred:   pred,
		slices: 1,
	}

	flags := uint32(e.slices-1)<<24 | 0<<11 | compressionHuffman

	binary.BigEndian.PutUint32(e.extradata[0:4], 1<<24|0<<16|0<<8|0xF0)
	binary.LittleEndian.PutUint32(e.extradata[4:8], info.originalFormat)
	binary.LittleEndian.PutUint32(e.extradata[8:12], 4)
	binary.LittleEndian.PutUint32(e.extradata[12:16], flags)

	size := cfg.Width*cfg.Height + scratchPadding
	e.residual = pool.Get(size)
	e.sliceBits = pool.Get(size)

	return e, nil
}

// Extradata returns the 16-byte codec-initialization header built at
// construction time (spec §4.H "Initialization contract").
func (e *Encoder) Extradata() [16]byte {
	return e.extradata
}

// CodecTag returns the four-character code identifying this encoder's
// stream to downstream muxers (spec §6 "Pixel layouts and codec
// tags").
func (e *Encoder) CodecTag() [4]byte {
	return e.info.codecTag
}

// Close releases the encoder's scratch buffers back to the shared
// pool (spec §6 "close(encoder) releases scratch").
func (e *Encoder) Close() {
	pool.Put(e.residual)
	pool.Put(e.sliceBits)
	e.residual = nil
	e.sliceBits = nil
}

// scratchPadding mirrors the reference encoder's FF_INPUT_BUFFER_PADDING_SIZE
// margin on its width*height scratch buffers: the Huffman code lengths
// the weighted min-heap assigns to real data are virtually always at
// or under 8 bits, but a small safety margin avoids a bit-packer
// overflow on the rare input whose tree leans a little over that.
const scratchPadding = 64

// packetBound computes the conservative packet size bound from spec
// §3 "Output packet", with the same scratchPadding margin per plane
// that e.residual/e.sliceBits carry: a plane's packed Huffman data can
// need a little more than width*height bytes, and ByteSink.PutBytes
// truncates silently via copy rather than erroring on overflow, so the
// destination packet must never run short.
func packetBound(width, height, slices, planes int) int {
	return (256+4*slices+width*height+scratchPadding)*planes + 4
}

// EncodeFrame runs the full frame pipeline over pic and returns the
// compressed packet (spec §4.H, §6 "encode_frame").
func (e *Encoder) EncodeFrame(pic *Picture) (*Packet, error) {
	if pic.Format != e.format {
		return nil, errors.Wrap(ErrInvalidData, "picture format does not match encoder configuration")
	}
	if pic.Width != e.width || pic.Height != e.height {
		return nil, errors.Wrap(ErrInvalidData, "picture dimensions do not match encoder configuration")
	}

	size := e.width*e.height + scratchPadding
	if len(e.sliceBits) < size {
		pool.Put(e.sliceBits)
		e.sliceBits = pool.Get(size)
	}

	dst := make([]byte, packetBound(e.width, e.height, e.slices, e.info.planes))
	sink := bitio.NewByteSink(dst)

	if e.info.packed {
		step := e.info.planes
		stride := pic.Stride[0]
		mangleRGBPlanes(pic.Data[0], step, stride, e.width, e.height)
		for i := 0; i < e.info.planes; i++ {
			base := pic.Data[0][rgbPlaneOrder[i]:]
			encodePlane(sink, e.pred, base, e.residual, e.sliceBits, step, stride, e.width, e.height, e.slices)
		}
	} else {
		cw, ch := pic.chromaDims()
		for i := 0; i < e.info.planes; i++ {
			w, h := e.width, e.height
			if i > 0 {
				w, h = cw, ch
			}
			encodePlane(sink, e.pred, pic.Data[i], e.residual, e.sliceBits, 1, pic.Stride[i], w, h, e.slices)
		}
	}

	frameInfo := predictorCode[e.pred] << 8
	sink.PutLE32(frameInfo)

	return &Packet{
		Data:        sink.Bytes()[:sink.Tell()],
		Keyframe:    true,
		PictureType: PictureTypeI,
		CodecTag:    e.info.codecTag,
	}, nil
}
