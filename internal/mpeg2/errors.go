package mpeg2

import (
	"errors"
	"fmt"
)

var ErrBufferOverrun = errors.New("buffer overrun")
var ErrFormatViolation = errors.New("format violation")
var ErrTruncatedUnit = errors.New("truncated unit")
var ErrInvalidWidth = errors.New("invalid bit width")

// FieldError locates a decode failure at a syntax element.
// Err is one of the sentinel errors above.
type FieldError struct {
	Err    error
	Field  string
	BitPos int
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: field %s at bit %d", e.Err, e.Field, e.BitPos)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
