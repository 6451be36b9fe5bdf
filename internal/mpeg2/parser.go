package mpeg2

import "fmt"

// Unit is the decode result for one RawUnit. Payload is nil when no decoder
// is registered for the unit type or when decoding failed. Tree is set only
// when diagnostics were requested, and is kept on failure.
// The payload decoded may extend one zero byte past End, see RawUnit.
type Unit struct {
	RawUnit
	Header  UnitHeader
	Payload Payload
	Summary string
	Tree    *Node
	Err     error

	description string
}

// Name is the display name of the unit, e.g. "Unit 0: SEQUENCE_HEADER Sequence Header".
func (u *Unit) Name() string {
	name := fmt.Sprintf("Unit %d: %s", u.Index, u.Header.Type)
	if u.description != "" {
		name += " " + u.description
	}
	return name
}

// Parser splits elementary streams into units and decodes them.
// A Parser is not modified after NewParser and may be shared.
type Parser struct {
	decoders map[UnitType]Decoder
}

type Option func(*Parser)

// WithDecoder registers d for unit type t, replacing any default decoder.
func WithDecoder(t UnitType, d Decoder) Option {
	return func(p *Parser) {
		p.decoders[t] = d
	}
}

// WithoutDecoder makes units of type t header-only.
func WithoutDecoder(t UnitType) Option {
	return func(p *Parser) {
		delete(p.decoders, t)
	}
}

func NewParser(opts ...Option) *Parser {
	p := &Parser{decoders: make(map[UnitType]Decoder, len(defaultDecoders))}
	for t, d := range defaultDecoders {
		p.decoders[t] = d
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Parse decodes all units of buf in order. A failing unit does not stop
// the decoding of the following ones.
func (p *Parser) Parse(buf []byte, withTree bool, extra ...Sink) []Unit {
	raws := ScanUnits(buf)
	units := make([]Unit, 0, len(raws))
	for _, raw := range raws {
		units = append(units, p.ParseUnit(buf, raw, withTree, extra...))
	}
	return units
}

// ParseUnit classifies and decodes a single unit of buf. Fields are also
// reported to the extra sinks.
func (p *Parser) ParseUnit(buf []byte, raw RawUnit, withTree bool, extra ...Sink) Unit {
	u := Unit{RawUnit: raw}
	var root *Node
	sinks := extra
	if withTree {
		root = NewNode("")
		sinks = append([]Sink{root}, extra...)
	}
	var sink Sink
	switch len(sinks) {
	case 0:
		sink = Discard
	case 1:
		sink = sinks[0]
	default:
		sink = Tee(sinks...)
	}

	u.Err = p.decode(buf, &u, sink)
	if root != nil {
		root.Name = u.Name()
		u.Tree = root
	}
	return u
}

func (p *Parser) decode(buf []byte, u *Unit, sink Sink) error {
	if u.Len() < 1 {
		return fmt.Errorf("%w: no header byte after start code at %d", ErrTruncatedUnit, u.Start-u.PrefixLen)
	}
	data := buf[u.Start:payloadEnd(buf, u.End)]
	h, err := ParseUnitHeader(NewBitReader(data[:1]), sink)
	if err != nil {
		return err
	}
	u.Header = h
	d, ok := p.decoders[h.Type]
	if !ok {
		return nil
	}
	u.Summary = d.Summary
	u.description = d.Description
	u.Payload, err = d.Decode(data[1:], sink)
	return err
}

// payloadEnd extends end over the leading zero of a following four-byte
// prefix. Syntax elements may end in zero bytes, so that byte can be data.
func payloadEnd(buf []byte, end int) int {
	if end+4 <= len(buf) && buf[end] == 0 && buf[end+1] == 0 && buf[end+2] == 0 && buf[end+3] == 1 {
		return end + 1
	}
	return end
}
