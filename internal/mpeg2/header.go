package mpeg2

type UnitType int

const (
	UnitUnspecified UnitType = iota
	UnitPicture
	UnitSlice
	UnitUserData
	UnitSequenceHeader
	UnitSequenceError
	UnitExtensionStart
	UnitSequenceEnd
	UnitGroupStart
	UnitSystemStartCode
	UnitReserved
)

var unitTypeNames = [...]string{
	UnitUnspecified:     "UNSPECIFIED",
	UnitPicture:         "PICTURE",
	UnitSlice:           "SLICE",
	UnitUserData:        "USER_DATA",
	UnitSequenceHeader:  "SEQUENCE_HEADER",
	UnitSequenceError:   "SEQUENCE_ERROR",
	UnitExtensionStart:  "EXTENSION_START",
	UnitSequenceEnd:     "SEQUENCE_END",
	UnitGroupStart:      "GROUP_START",
	UnitSystemStartCode: "SYSTEM_START_CODE",
	UnitReserved:        "RESERVED",
}

func (t UnitType) String() string {
	if t < 0 || int(t) >= len(unitTypeNames) {
		return unitTypeNames[UnitUnspecified]
	}
	return unitTypeNames[t]
}

// ParseUnitType returns the UnitType with the given name as printed by String.
func ParseUnitType(name string) (UnitType, bool) {
	for i, n := range unitTypeNames {
		if n == name {
			return UnitType(i), true
		}
	}
	return UnitUnspecified, false
}

const (
	firstSliceStartCode  = 0x01
	lastSliceStartCode   = 0xaf
	firstSystemStartCode = 0xb9
)

// UnitHeader is the classification of a unit's one-byte start code value.
// SliceID is set only for slices and SystemStartCodeOffset only for system
// start codes.
type UnitHeader struct {
	StartCodeValue        uint8
	Type                  UnitType
	SliceID               *int
	SystemStartCodeOffset *int
}

// ClassifyStartCode maps every start code value to a unit type.
func ClassifyStartCode(v uint8) UnitHeader {
	h := UnitHeader{StartCodeValue: v}
	switch {
	case v == 0x00:
		h.Type = UnitPicture
	case v >= firstSliceStartCode && v <= lastSliceStartCode:
		h.Type = UnitSlice
		id := int(v) - 1
		h.SliceID = &id
	case v == 0xb0 || v == 0xb1 || v == 0xb6:
		h.Type = UnitReserved
	case v == 0xb2:
		h.Type = UnitUserData
	case v == 0xb3:
		h.Type = UnitSequenceHeader
	case v == 0xb4:
		h.Type = UnitSequenceError
	case v == 0xb5:
		h.Type = UnitExtensionStart
	case v == 0xb7:
		h.Type = UnitSequenceEnd
	case v == 0xb8:
		h.Type = UnitGroupStart
	case v >= firstSystemStartCode:
		h.Type = UnitSystemStartCode
		off := int(v) - firstSystemStartCode
		h.SystemStartCodeOffset = &off
	default:
		h.Type = UnitUnspecified
	}
	return h
}

var startCodeMeanings = map[UnitType]string{
	UnitPicture:         "picture_start_code",
	UnitSlice:           "slice_start_code",
	UnitReserved:        "reserved",
	UnitUserData:        "user_data_start_code",
	UnitSequenceHeader:  "sequence_header_code",
	UnitSequenceError:   "sequence_error_code",
	UnitExtensionStart:  "extension_start_code",
	UnitSequenceEnd:     "sequence_end_code",
	UnitGroupStart:      "group_start_code",
	UnitSystemStartCode: "system start codes",
}

// Meaning returns the name of the start code, e.g. "sequence_header_code".
func (h UnitHeader) Meaning() string {
	return startCodeMeanings[h.Type]
}

// ParseUnitHeader reads the start code value byte and classifies it.
func ParseUnitHeader(br *BitReader, sink Sink) (UnitHeader, error) {
	if sink == nil {
		sink = Discard
	}
	s := sink.Section("nal_unit_header()")
	pos := br.Pos()
	v, code, err := br.ReadBits(8)
	if err != nil {
		return UnitHeader{}, &FieldError{Err: err, Field: "start_code_value", BitPos: pos}
	}
	h := ClassifyStartCode(uint8(v))
	s.Field(Field{
		Name:    "start_code_value",
		Value:   v,
		Coding:  "u(8)",
		RawBits: code,
		Meaning: h.Meaning(),
	})
	return h, nil
}
