package mpeg2

// Payload is the type-specific part of a decoded unit.
type Payload interface {
	UnitType() UnitType
}

// Decoder decodes the payload of one unit type. Summary is a short label
// such as "SeqHeader" and Description is appended to the unit's display name.
type Decoder struct {
	Summary     string
	Description string
	Decode      func(payload []byte, sink Sink) (Payload, error)
}

var defaultDecoders = map[UnitType]Decoder{
	UnitSequenceHeader: {
		Summary:     "SeqHeader",
		Description: "Sequence Header",
		Decode:      decodeSequenceHeader,
	},
	UnitExtensionStart: {
		Summary:     "SeqExt",
		Description: "Sequence Extension",
		Decode:      decodeSequenceExtension,
	},
}

func decodeSequenceHeader(payload []byte, sink Sink) (Payload, error) {
	sh, err := DecodeSequenceHeader(payload, sink)
	if err != nil {
		return nil, err
	}
	return sh, nil
}

func decodeSequenceExtension(payload []byte, sink Sink) (Payload, error) {
	se, err := DecodeSequenceExtension(payload, sink)
	if err != nil {
		return nil, err
	}
	return se, nil
}

// Summaries returns the summary labels of the default decoders.
func Summaries() []string {
	out := make([]string, 0, len(defaultDecoders))
	for t := UnitUnspecified; t <= UnitReserved; t++ {
		if d, ok := defaultDecoders[t]; ok {
			out = append(out, d.Summary)
		}
	}
	return out
}
