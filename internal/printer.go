package internal

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
)

type JsonPrinter struct {
	W        io.Writer
	Indent   bool
	AccError error
}

func (p *JsonPrinter) Print(data any, show bool) {
	if !show {
		return
	}
	var out []byte
	var err error
	if p.AccError != nil {
		return
	}
	if p.Indent {
		out, err = json.MarshalIndent(data, "", "  ")
	} else {
		out, err = json.Marshal(data)
	}
	if err != nil {
		p.AccError = err
		return
	}
	_, p.AccError = fmt.Fprintln(p.W, string(out))
}

func (p *JsonPrinter) Error() error {
	return p.AccError
}

type ElementaryStreamInfo struct {
	PID   uint16 `json:"pid"`
	Codec string `json:"codec"`
	Type  string `json:"type"`
}

// SequenceUnitInfo is the seqinfo record for a sequence_header or sequence_extension unit.
type SequenceUnitInfo struct {
	Index   int    `json:"index"`
	Kind    string `json:"kind"`
	Hex     string `json:"hex"`
	Length  int    `json:"length"`
	Error   string `json:"error,omitempty"`
	Details any    `json:"details,omitempty"`
}

// PrintSequenceUnit prints the unit bytes (start code value included) as hex.
func (p *JsonPrinter) PrintSequenceUnit(index int, kind string, data []byte, details any, err error, verbose, show bool) {
	info := SequenceUnitInfo{
		Index:  index,
		Kind:   kind,
		Hex:    hex.EncodeToString(data),
		Length: len(data),
	}
	if err != nil {
		info.Error = err.Error()
	}
	if verbose {
		info.Details = details
	}
	p.Print(info, show)
}
