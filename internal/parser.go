package internal

import (
	"context"
	"io"

	"github.com/Eyevinn/mpeg2-tools/internal/mpeg2"
)

// ParseUnits prints one record per unit of the video stream in f, followed by statistics.
func ParseUnits(ctx context.Context, w io.Writer, f io.Reader, o Options) error {
	log := o.logger()
	filter, err := ParseTypeFilter(o.Types)
	if err != nil {
		return err
	}
	es, err := LoadElementaryStream(ctx, f)
	if err != nil {
		return err
	}
	log.Debugw("loaded elementary stream", "bytes", len(es.Data), "fromTS", es.FromTS, "pid", es.PID, "pesPackets", len(es.Marks))

	jp := &JsonPrinter{W: w, Indent: o.Indent}
	for _, si := range es.Streams {
		jp.Print(si, o.ShowStreamInfo)
	}

	p := mpeg2.NewParser()
	statistics := NewStreamStatistics(es)
	var lastMark *PESMark
	nrUnits := 0
dataLoop:
	for _, raw := range mpeg2.ScanUnits(es.Data) {
		// Check if context was cancelled
		select {
		case <-ctx.Done():
			break dataLoop
		default:
		}

		var extra []mpeg2.Sink
		if o.Trace {
			extra = append(extra, NewTraceSink(log, raw.Index))
		}
		u := p.ParseUnit(es.Data, raw, o.ShowTree, extra...)
		statistics.AddUnit(&u)
		if u.Err != nil {
			log.Warnw("unit decode failed", "index", u.Index, "type", u.Header.Type.String(), "start", u.Start, "err", u.Err)
		}

		// The 3-byte 00 00 01 of the prefix locates the PES packet
		mark := es.MarkAt(u.Start - 3)
		if mark == lastMark {
			mark = nil
		} else {
			lastMark = mark
		}

		if !filter.Match(&u) {
			continue
		}
		jp.Print(NewUnitInfo(&u, mark, o.ShowDetails), o.ShowUnits)
		nrUnits++

		// Keep looping if MaxUnits equals 0
		if o.MaxUnits > 0 && nrUnits >= o.MaxUnits {
			break dataLoop
		}
	}

	jp.PrintStatistics(*statistics, o.ShowStatistics)
	return jp.Error()
}

// ParseSequences prints the sequence headers and extensions of the video
// stream in f, each header followed by the parameters it signals.
func ParseSequences(ctx context.Context, w io.Writer, f io.Reader, o Options) error {
	log := o.logger()
	es, err := LoadElementaryStream(ctx, f)
	if err != nil {
		return err
	}

	jp := &JsonPrinter{W: w, Indent: o.Indent}
	for _, si := range es.Streams {
		jp.Print(si, o.ShowStreamInfo)
	}

	p := mpeg2.NewParser()
	var pending *SequenceInfo
	flush := func() {
		if pending != nil {
			jp.Print(pending, o.ShowSequences)
			pending = nil
		}
	}
	nrSequences := 0
dataLoop:
	for _, raw := range mpeg2.ScanUnits(es.Data) {
		select {
		case <-ctx.Done():
			break dataLoop
		default:
		}

		u := p.ParseUnit(es.Data, raw, false)
		data := raw.Bytes(es.Data)
		seqExt := u.Header.Type == mpeg2.UnitExtensionStart && isSequenceExtension(data)
		if u.Err != nil && (u.Header.Type == mpeg2.UnitSequenceHeader || seqExt) {
			log.Warnw("sequence decode failed", "index", u.Index, "summary", u.Summary, "err", u.Err)
		}
		switch u.Header.Type {
		case mpeg2.UnitSequenceHeader:
			flush()
			if o.MaxSequences > 0 && nrSequences >= o.MaxSequences {
				break dataLoop
			}
			nrSequences++
			jp.PrintSequenceUnit(u.Index, "SequenceHeader", data, u.Payload, u.Err, o.ShowDetails, o.ShowSequences)
			if sh, ok := u.Payload.(*mpeg2.SequenceHeader); ok {
				pending = &SequenceInfo{Index: u.Index, Params: mpeg2.CombineSequence(sh, nil), header: sh}
			}
		case mpeg2.UnitExtensionStart:
			if !seqExt {
				continue
			}
			se, ok := u.Payload.(*mpeg2.SequenceExtension)
			jp.PrintSequenceUnit(u.Index, "SequenceExtension", data, u.Payload, u.Err, o.ShowDetails, o.ShowSequences)
			if ok && pending != nil {
				pending.Params = mpeg2.CombineSequence(pending.header, se)
				pending.ExtensionIndex = &u.Index
				flush()
			}
		default:
			flush()
		}
	}
	flush()

	return jp.Error()
}

// isSequenceExtension checks extension_start_code_identifier in the unit
// bytes, so other extensions are skipped whether they decode or not.
func isSequenceExtension(data []byte) bool {
	return len(data) >= 2 && data[1]>>4 == mpeg2.SequenceExtensionID
}

// SequenceInfo holds the parameters of a sequence header, combined with the
// sequence extension that directly follows it.
type SequenceInfo struct {
	Index          int                  `json:"index"`
	ExtensionIndex *int                 `json:"extensionIndex,omitempty"`
	Params         mpeg2.SequenceParams `json:"params"`

	header *mpeg2.SequenceHeader
}
