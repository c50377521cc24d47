package utvideoenc

// predictor is the codec's own predictor enumeration, distinct from the
// caller-facing PredictionMethod selector (spec §9 "Prediction-mode
// codes in the trailer correspond to the format's enumeration
// {NONE, LEFT, MEDIAN} — not the caller's selector").
type predictor int

const (
	predNone predictor = iota
	predLeft
	predMedian
	predGradient
	predPlane
)

// PredictionMethod is the caller-facing selector accepted by New,
// mirroring the generic frame-prediction-method values a host
// framework would pass through (SUPPLEMENTED FEATURE 1 in
// SPEC_FULL.md: the mapping is a separate indirection step, not a
// direct range check against the internal predictor enum).
type PredictionMethod int

const (
	PredictionLeft     PredictionMethod = 0
	PredictionPlane    PredictionMethod = 1
	PredictionMedian   PredictionMethod = 2
	PredictionNone     PredictionMethod = 3
	PredictionGradient PredictionMethod = 4
)

// predictorOrder maps a caller's PredictionMethod to the codec's
// internal predictor enum, exactly mirroring the two-step
// ff_ut_pred_order indirection in the reference encoder: the range
// check against [0,4] happens first, then the table lookup, then a
// second rejection of any entry that lands on predGradient or
// predPlane.
var predictorOrder = [5]predictor{
	PredictionLeft:     predLeft,
	PredictionPlane:    predPlane,
	PredictionMedian:   predMedian,
	PredictionNone:     predNone,
	PredictionGradient: predGradient,
}

// predictorCode gives the trailer's frame_info predictor code for each
// internal predictor, per the format's own {NONE, LEFT, MEDIAN}
// enumeration (spec §8 scenario 1: LEFT's trailer is 0x00000100, i.e.
// code 1).
var predictorCode = [5]uint32{
	predNone:     0,
	predLeft:     1,
	predMedian:   2,
	predGradient: 3,
	predPlane:    4,
}

// PixelFormat identifies one of the four supported frame layouts.
type PixelFormat int

const (
	PixelRGB24 PixelFormat = iota
	PixelRGBA
	PixelYUV420P
	PixelYUV422P
)

// planeInfo describes the fixed, format-independent facts about a
// pixel layout: how many planes it has, the codec tag identifying the
// stream to downstream muxers, and the original_format code written
// into the extradata header.
type planeInfo struct {
	planes          int
	codecTag        [4]byte
	originalFormat  uint32
	packed          bool // true for RGB24/RGBA: single interleaved buffer
}

// Original-format codes written into the extradata header (spec §4.H).
// These identify the source layout to a decoder independent of the
// codec tag. The values are this package's own sequential assignment
// for the four layouts, not the reference encoder's UTVIDEO_* constants.
const (
	origFormatRGB  uint32 = 0
	origFormatRGBA uint32 = 1
	origFormat422  uint32 = 2
	origFormat420  uint32 = 3
)

var pixelFormats = map[PixelFormat]planeInfo{
	PixelRGB24: {
		planes:         3,
		codecTag:       [4]byte{'U', 'L', 'R', 'G'},
		originalFormat: origFormatRGB,
		packed:         true,
	},
	PixelRGBA: {
		planes:         4,
		codecTag:       [4]byte{'U', 'L', 'R', 'A'},
		originalFormat: origFormatRGBA,
		packed:         true,
	},
	PixelYUV420P: {
		planes:         3,
		codecTag:       [4]byte{'U', 'L', 'Y', '0'},
		originalFormat: origFormat420,
		packed:         false,
	},
	PixelYUV422P: {
		planes:         3,
		codecTag:       [4]byte{'U', 'L', 'Y', '2'},
		originalFormat: origFormat422,
		packed:         false,
	},
}

// rgbPlaneOrder gives the byte offset of each plane within one packed
// RGB/RGBA pixel, in emission order G, B, R(, A) (spec §3 "Plane").
var rgbPlaneOrder = [4]int{1, 2, 0, 3}

// compressionHuffman is the only compression mode this encoder ever
// writes into the extradata flags field (spec §4.H).
const compressionHuffman uint32 = 0
