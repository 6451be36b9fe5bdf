package mpeg2

import "fmt"

// meaning maps a decoded value to a human-readable description.
type meaning interface {
	describe(v uint32) string
}

// labels is an enumeration table indexed by value. Values past the end
// take the last label.
type labels []string

func (l labels) describe(v uint32) string {
	if len(l) == 0 {
		return ""
	}
	if int64(v) >= int64(len(l)) {
		return l[len(l)-1]
	}
	return l[v]
}

// note is a fixed description independent of the value.
type note string

func (n note) describe(uint32) string {
	return string(n)
}

// fieldReader reads syntax elements and reports each one to a sink.
type fieldReader struct {
	br   *BitReader
	sink Sink
}

func newFieldReader(payload []byte, sink Sink) *fieldReader {
	if sink == nil {
		sink = Discard
	}
	return &fieldReader{br: NewBitReader(payload), sink: sink}
}

func (f *fieldReader) read(name string, n int, m meaning) (uint32, error) {
	pos := f.br.Pos()
	v, code, err := f.br.ReadBits(n)
	if err != nil {
		return 0, &FieldError{Err: err, Field: name, BitPos: pos}
	}
	fd := Field{Name: name, Value: v, Coding: fmt.Sprintf("u(%d)", n), RawBits: code}
	if m != nil {
		fd.Meaning = m.describe(v)
	}
	f.sink.Field(fd)
	return v, nil
}

func (f *fieldReader) flag(name string, m meaning) (bool, error) {
	v, err := f.read(name, 1, m)
	return v == 1, err
}

// marker reads a 1-bit field that must be set.
func (f *fieldReader) marker(name string) error {
	pos := f.br.Pos()
	v, err := f.read(name, 1, nil)
	if err != nil {
		return err
	}
	if v != 1 {
		return &FieldError{Err: ErrFormatViolation, Field: name, BitPos: pos}
	}
	return nil
}

// matrix reads 64 8-bit entries named name[i].
func (f *fieldReader) matrix(name string) (*[64]uint8, error) {
	var m [64]uint8
	for i := 0; i < 64; i++ {
		v, err := f.read(fmt.Sprintf("%s[%d]", name, i), 8, nil)
		if err != nil {
			return nil, err
		}
		m[i] = uint8(v)
	}
	return &m, nil
}
