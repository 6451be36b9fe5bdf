package mpeg2

const (
	bitRateUnit     = 400  // bit/s
	vbvBufferUnit   = 2048 // bytes, 16*1024 bits
	maxFrameRateIdx = 8
)

// frameRates holds numerator/denominator per frame_rate_code.
var frameRates = [maxFrameRateIdx + 1][2]uint32{
	{0, 1},
	{24000, 1001},
	{24, 1},
	{25, 1},
	{30000, 1001},
	{30, 1},
	{50, 1},
	{60000, 1001},
	{60, 1},
}

// SequenceParams are the stream parameters given by a sequence header
// and its optional sequence extension.
type SequenceParams struct {
	Width         uint32  `json:"width"`
	Height        uint32  `json:"height"`
	AspectRatio   string  `json:"aspectRatio"`
	FrameRate     float64 `json:"frameRate,omitempty"`
	BitRate       uint64  `json:"bitRate"`
	VBVBufferSize uint32  `json:"vbvBufferSize"`
	Profile       string  `json:"profile,omitempty"`
	Level         string  `json:"level,omitempty"`
	ChromaFormat  string  `json:"chromaFormat,omitempty"`
	Progressive   bool    `json:"progressive"`
	LowDelay      bool    `json:"lowDelay"`
	MPEG1         bool    `json:"mpeg1,omitempty"`
}

// CombineSequence merges a sequence header with its extension. A nil
// extension means an MPEG-1 stream without extension bits.
func CombineSequence(sh *SequenceHeader, se *SequenceExtension) SequenceParams {
	p := SequenceParams{
		Width:         sh.HorizontalSizeValue,
		Height:        sh.VerticalSizeValue,
		AspectRatio:   sh.AspectRatio(),
		BitRate:       uint64(sh.BitRateValue) * bitRateUnit,
		VBVBufferSize: sh.VBVBufferSizeValue * vbvBufferUnit,
	}
	num, den := uint32(0), uint32(1)
	if sh.FrameRateCode <= maxFrameRateIdx {
		num, den = frameRates[sh.FrameRateCode][0], frameRates[sh.FrameRateCode][1]
	}
	if se == nil {
		p.MPEG1 = true
		p.Progressive = true
		if num > 0 {
			p.FrameRate = float64(num) / float64(den)
		}
		return p
	}
	p.Width |= se.HorizontalSizeExtension << 12
	p.Height |= se.VerticalSizeExtension << 12
	p.BitRate = uint64(se.BitRateExtension<<18|sh.BitRateValue) * bitRateUnit
	p.VBVBufferSize = (se.VBVBufferSizeExtension<<10 | sh.VBVBufferSizeValue) * vbvBufferUnit
	if num > 0 {
		num *= se.FrameRateExtensionN + 1
		den *= se.FrameRateExtensionD + 1
		p.FrameRate = float64(num) / float64(den)
	}
	p.Profile = se.Profile()
	p.Level = se.Level()
	p.ChromaFormat = se.ChromaFormatName()
	p.Progressive = se.ProgressiveSequence
	p.LowDelay = se.LowDelay
	return p
}
