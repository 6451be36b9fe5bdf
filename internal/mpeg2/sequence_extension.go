package mpeg2

// SequenceExtensionID is the extension_start_code_identifier of sequence_extension().
const SequenceExtensionID = 1

var extensionIDLabels = labels{
	"Reserved",
	"Sequence Extension ID",
	"Sequence Display Extension ID",
	"Quant Matrix Extension ID",
	"Copyright Extension ID",
	"Sequence Scalable Extension ID",
	"Reserved",
	"Picture Display Extension ID",
	"Picture Coding Extension ID",
	"Picture Spatial Scalable Extension ID",
	"Picture Temporal Scalable Extension ID",
	"Reserved",
}

var progressiveSequenceLabels = labels{
	"the coded video sequence may contain both frame-pictures and field-pictures, and frame-picture may be progressive or interlaced frames.",
	"the coded video sequence contains only progressive frame-pictures",
}

var chromaFormatLabels = labels{"Reserved", "4:2:0", "4:2:2", "4:4:4"}

var lowDelayLabels = labels{
	"sequence may contain B-pictures, the frame re-ordering delay is present in the VBV description and the bitstream shall not contain big pictures",
	"sequence does not contain any B-pictures, the frame re-ordering delay is not present in the VBV description and the bitstream may contain 'big pictures'",
}

var profileNames = map[uint32]string{
	1: "High",
	2: "Spatially Scalable",
	3: "SNR Scalable",
	4: "Main",
	5: "Simple",
}

var levelNames = map[uint32]string{
	4:  "High",
	6:  "High 1440",
	8:  "Main",
	10: "Low",
}

// SequenceExtension is the payload of an extension_start_code unit decoded
// as sequence_extension(). The *Extension fields are the high-order bits of
// the corresponding SequenceHeader values.
type SequenceExtension struct {
	ExtensionStartCodeIdentifier uint32 `json:"extensionStartCodeIdentifier"`
	ProfileAndLevelIndication    uint32 `json:"profileAndLevelIndication"`
	ProgressiveSequence          bool   `json:"progressiveSequence"`
	ChromaFormat                 uint32 `json:"chromaFormat"`
	HorizontalSizeExtension      uint32 `json:"horizontalSizeExtension"`
	VerticalSizeExtension        uint32 `json:"verticalSizeExtension"`
	BitRateExtension             uint32 `json:"bitRateExtension"`
	VBVBufferSizeExtension       uint32 `json:"vbvBufferSizeExtension"`
	LowDelay                     bool   `json:"lowDelay"`
	FrameRateExtensionN          uint32 `json:"frameRateExtensionN"`
	FrameRateExtensionD          uint32 `json:"frameRateExtensionD"`
}

func (*SequenceExtension) UnitType() UnitType {
	return UnitExtensionStart
}

// Escape reports the escape bit of profile_and_level_indication.
func (s *SequenceExtension) Escape() bool {
	return s.ProfileAndLevelIndication&0x80 != 0
}

// Profile returns the profile name, or "" for reserved or escaped values.
func (s *SequenceExtension) Profile() string {
	if s.Escape() {
		return ""
	}
	return profileNames[(s.ProfileAndLevelIndication>>4)&0x07]
}

// Level returns the level name, or "" for reserved or escaped values.
func (s *SequenceExtension) Level() string {
	if s.Escape() {
		return ""
	}
	return levelNames[s.ProfileAndLevelIndication&0x0f]
}

func (s *SequenceExtension) ChromaFormatName() string {
	return chromaFormatLabels.describe(s.ChromaFormat)
}

// DecodeSequenceExtension decodes the payload following an
// extension_start_code as sequence_extension(). Fields are reported to sink
// under a "sequence_extension()" section.
func DecodeSequenceExtension(payload []byte, sink Sink) (*SequenceExtension, error) {
	if sink == nil {
		sink = Discard
	}
	f := newFieldReader(payload, sink.Section("sequence_extension()"))
	s := &SequenceExtension{}
	var err error

	if s.ExtensionStartCodeIdentifier, err = f.read("extension_start_code_identifier", 4, extensionIDLabels); err != nil {
		return nil, err
	}
	if s.ProfileAndLevelIndication, err = f.read("profile_and_level_indication", 8, nil); err != nil {
		return nil, err
	}
	if s.ProgressiveSequence, err = f.flag("progressive_sequence", progressiveSequenceLabels); err != nil {
		return nil, err
	}
	if s.ChromaFormat, err = f.read("chroma_format", 2, chromaFormatLabels); err != nil {
		return nil, err
	}
	if s.HorizontalSizeExtension, err = f.read("horizontal_size_extension", 2, note("most significant bits from horizontal_size")); err != nil {
		return nil, err
	}
	if s.VerticalSizeExtension, err = f.read("vertical_size_extension", 2, note("most significant bits from vertical_size")); err != nil {
		return nil, err
	}
	if s.BitRateExtension, err = f.read("bit_rate_extension", 12, note("12 most significant bits from bit_rate")); err != nil {
		return nil, err
	}
	if err = f.marker("marker_bit"); err != nil {
		return nil, err
	}
	if s.VBVBufferSizeExtension, err = f.read("vbv_buffer_size_extension", 8, note("most significant bits from vbv_buffer_size")); err != nil {
		return nil, err
	}
	if s.LowDelay, err = f.flag("low_delay", lowDelayLabels); err != nil {
		return nil, err
	}
	if s.FrameRateExtensionN, err = f.read("frame_rate_extension_n", 2, nil); err != nil {
		return nil, err
	}
	if s.FrameRateExtensionD, err = f.read("frame_rate_extension_d", 5, nil); err != nil {
		return nil, err
	}
	return s, nil
}
