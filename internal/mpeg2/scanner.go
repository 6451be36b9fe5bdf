package mpeg2

// RawUnit is one start-code-delimited unit. [Start, End) covers the bytes
// after the start code prefix, beginning with the one-byte header.
// When the next unit has a four-byte prefix, End stops before its leading
// zero, but the decoder still reads that byte as part of this unit's payload.
type RawUnit struct {
	Index     int
	Start     int
	End       int
	PrefixLen int
}

func (u RawUnit) Len() int {
	return u.End - u.Start
}

// Bytes returns the unit's bytes (header byte and payload) from buf.
func (u RawUnit) Bytes(buf []byte) []byte {
	return buf[u.Start:u.End]
}

// ScanUnits splits buf at 00 00 01 and 00 00 00 01 prefixes.
// Bytes before the first prefix are skipped.
func ScanUnits(buf []byte) []RawUnit {
	var units []RawUnit
	pos, prefixLen := FindStartCode(buf, 0)
	for pos >= 0 {
		start := pos + prefixLen
		next, nextLen := FindStartCode(buf, start)
		end := len(buf)
		if next >= 0 {
			end = next
		}
		units = append(units, RawUnit{
			Index:     len(units),
			Start:     start,
			End:       end,
			PrefixLen: prefixLen,
		})
		pos, prefixLen = next, nextLen
	}
	return units
}

// FindStartCode returns the position and length of the first start code
// prefix at or after from, or -1 if there is none.
func FindStartCode(buf []byte, from int) (pos, prefixLen int) {
	for i := from; i+3 <= len(buf); i++ {
		if buf[i] != 0 || buf[i+1] != 0 {
			continue
		}
		switch {
		case buf[i+2] == 1:
			return i, 3
		case buf[i+2] == 0 && i+4 <= len(buf) && buf[i+3] == 1:
			return i, 4
		}
	}
	return -1, 0
}
