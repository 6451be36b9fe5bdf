package mpeg2

var aspectRatioLabels = labels{
	"Forbidden",
	"SAR 1.0 (Square Sample)",
	"DAR 3:4",
	"DAR 9:16",
	"DAR 1:2.21",
	"Reserved",
}

var frameRateLabels = labels{
	"Forbidden",
	"24000:1001 (23.976...)",
	"24",
	"25",
	"30000:1001 (29.97...)",
	"30",
	"50",
	"60000:1001 (59.94)",
	"60",
	"Reserved",
}

// SequenceHeader is the payload of a sequence_header_code unit.
// BitRateValue and VBVBufferSizeValue hold the low-order bits only; the
// high-order bits come from a SequenceExtension.
type SequenceHeader struct {
	HorizontalSizeValue         uint32     `json:"horizontalSizeValue"`
	VerticalSizeValue           uint32     `json:"verticalSizeValue"`
	AspectRatioInformation      uint32     `json:"aspectRatioInformation"`
	FrameRateCode               uint32     `json:"frameRateCode"`
	BitRateValue                uint32     `json:"bitRateValue"`
	VBVBufferSizeValue          uint32     `json:"vbvBufferSizeValue"`
	ConstrainedParametersFlag   bool       `json:"constrainedParametersFlag"`
	LoadIntraQuantiserMatrix    bool       `json:"loadIntraQuantiserMatrix"`
	IntraQuantiserMatrix        *[64]uint8 `json:"intraQuantiserMatrix,omitempty"`
	LoadNonIntraQuantiserMatrix bool       `json:"loadNonIntraQuantiserMatrix"`
	NonIntraQuantiserMatrix     *[64]uint8 `json:"nonIntraQuantiserMatrix,omitempty"`
}

func (*SequenceHeader) UnitType() UnitType {
	return UnitSequenceHeader
}

// AspectRatio returns the label of aspect_ratio_information.
func (s *SequenceHeader) AspectRatio() string {
	return aspectRatioLabels.describe(s.AspectRatioInformation)
}

// DecodeSequenceHeader decodes the payload following a sequence_header_code.
// Fields are reported to sink under a "sequence_header()" section. On a
// decode error the fields read so far remain in the sink.
func DecodeSequenceHeader(payload []byte, sink Sink) (*SequenceHeader, error) {
	if sink == nil {
		sink = Discard
	}
	f := newFieldReader(payload, sink.Section("sequence_header()"))
	s := &SequenceHeader{}
	var err error

	if s.HorizontalSizeValue, err = f.read("horizontal_size_value", 12, nil); err != nil {
		return nil, err
	}
	if s.VerticalSizeValue, err = f.read("vertical_size_value", 12, nil); err != nil {
		return nil, err
	}
	if s.AspectRatioInformation, err = f.read("aspect_ratio_information", 4, aspectRatioLabels); err != nil {
		return nil, err
	}
	if s.FrameRateCode, err = f.read("frame_rate_code", 4, frameRateLabels); err != nil {
		return nil, err
	}
	if s.BitRateValue, err = f.read("bit_rate_value", 18, note("The lower 18 bits of bit_rate.")); err != nil {
		return nil, err
	}
	if err = f.marker("marker_bit"); err != nil {
		return nil, err
	}
	if s.VBVBufferSizeValue, err = f.read("vbv_buffer_size_value", 10, note("the lower 10 bits of vbv_buffer_size")); err != nil {
		return nil, err
	}
	if s.ConstrainedParametersFlag, err = f.flag("constrained_parameters_flag", nil); err != nil {
		return nil, err
	}
	if s.LoadIntraQuantiserMatrix, err = f.flag("load_intra_quantiser_matrix", nil); err != nil {
		return nil, err
	}
	if s.LoadIntraQuantiserMatrix {
		if s.IntraQuantiserMatrix, err = f.matrix("intra_quantiser_matrix"); err != nil {
			return nil, err
		}
	}
	if s.LoadNonIntraQuantiserMatrix, err = f.flag("load_non_intra_quantiser_matrix", nil); err != nil {
		return nil, err
	}
	if s.LoadNonIntraQuantiserMatrix {
		if s.NonIntraQuantiserMatrix, err = f.matrix("non_intra_quantiser_matrix"); err != nil {
			return nil, err
		}
	}
	return s, nil
}
