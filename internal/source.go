package internal

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Comcast/gots/v2/packet"
	"github.com/asticode/go-astits"
	slices "golang.org/x/exp/slices"
)

var ErrNoVideoStream = errors.New("no MPEG-1/MPEG-2 video stream in transport stream")

// PESMark records where a PES packet payload starts in the concatenated ES.
type PESMark struct {
	Offset int
	PTS    *int64
	DTS    *int64
}

// ElementaryStream is a video elementary stream loaded from a raw ES file or
// demuxed from a transport stream.
type ElementaryStream struct {
	Data    []byte
	FromTS  bool
	PID     uint16
	Codec   string
	Streams []ElementaryStreamInfo
	Marks   []PESMark
}

// MarkAt returns the PES mark of the packet that byte offset pos belongs to.
func (es *ElementaryStream) MarkAt(pos int) *PESMark {
	i, found := slices.BinarySearchFunc(es.Marks, pos, func(m PESMark, p int) int {
		return m.Offset - p
	})
	if !found {
		i--
	}
	if i < 0 {
		return nil
	}
	return &es.Marks[i]
}

// Timestamps returns the DTS (PTS when DTS is absent) of all PES packets.
func (es *ElementaryStream) Timestamps() []int64 {
	var ts []int64
	for _, m := range es.Marks {
		switch {
		case m.DTS != nil:
			ts = append(ts, *m.DTS)
		case m.PTS != nil:
			ts = append(ts, *m.PTS)
		}
	}
	return ts
}

// LoadElementaryStream reads all of f. Transport streams are demuxed and the
// first MPEG-1/MPEG-2 video PID is returned; anything else is taken as a raw ES.
func LoadElementaryStream(ctx context.Context, f io.Reader) (*ElementaryStream, error) {
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	off, ok := syncOffset(data)
	if !ok {
		return &ElementaryStream{Data: data, Codec: "MPEG-2"}, nil
	}
	return demuxVideo(ctx, data[off:])
}

// syncOffset finds the first TS packet. Data starting with a start code is
// an ES. Otherwise the sync byte must be within the first packet and repeat
// every packet for the next few packets that are present.
func syncOffset(data []byte) (int, bool) {
	if len(data) < PacketSize || bytes.HasPrefix(data, []byte{0, 0, 1}) || bytes.HasPrefix(data, []byte{0, 0, 0, 1}) {
		return 0, false
	}
	off, err := packet.Sync(bufio.NewReader(bytes.NewReader(data)))
	if err != nil {
		return 0, false
	}
	pos := int(off)
	if pos >= PacketSize || pos+PacketSize > len(data) {
		return 0, false
	}
	for i := 1; i <= 2; i++ {
		next := pos + i*PacketSize
		if next >= len(data) {
			break
		}
		if data[next] != SyncByte {
			return 0, false
		}
	}
	return pos, true
}

func demuxVideo(ctx context.Context, data []byte) (*ElementaryStream, error) {
	dmx := astits.NewDemuxer(ctx, bytes.NewReader(data))
	es := &ElementaryStream{FromTS: true}
	videoPID := -1
dataLoop:
	for {
		select {
		case <-ctx.Done():
			break dataLoop
		default:
		}

		d, err := dmx.NextData()
		if err != nil {
			if errors.Is(err, astits.ErrNoMorePackets) {
				break dataLoop
			}
			return nil, fmt.Errorf("reading next data %w", err)
		}

		if videoPID < 0 && d.PMT != nil {
			for _, s := range d.PMT.ElementaryStreams {
				streamInfo := ParseAstitsElementaryStreamInfo(s)
				if streamInfo != nil {
					es.Streams = append(es.Streams, *streamInfo)
				}
				if videoPID < 0 && isMPEGVideo(s.StreamType) {
					videoPID = int(s.ElementaryPID)
					es.PID = s.ElementaryPID
					es.Codec = streamInfo.Codec
				}
			}
			if videoPID < 0 {
				return nil, ErrNoVideoStream
			}
		}
		if d.PES == nil || int(d.PID) != videoPID {
			continue
		}

		mark := PESMark{Offset: len(es.Data)}
		if oh := d.PES.Header.OptionalHeader; oh != nil {
			if oh.PTS != nil {
				pts := oh.PTS.Base
				mark.PTS = &pts
			}
			if oh.DTS != nil {
				dts := oh.DTS.Base
				mark.DTS = &dts
			}
		}
		es.Marks = append(es.Marks, mark)
		es.Data = append(es.Data, d.PES.Data...)
	}
	if videoPID < 0 {
		return nil, ErrNoVideoStream
	}
	return es, nil
}
