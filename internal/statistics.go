package internal

import (
	"fmt"

	"github.com/Eyevinn/mpeg2-tools/internal/mpeg2"
)

type StreamStatistics struct {
	Type       string         `json:"streamType"`
	Pid        uint16         `json:"pid,omitempty"`
	Units      int            `json:"units"`
	UnitTypes  map[string]int `json:"unitTypes"`
	Sequences  int            `json:"sequences"`
	Pictures   int            `json:"pictures"`
	BadUnits   int            `json:"badUnits"`
	FrameRate  float64        `json:"frameRate,omitempty"`
	TimeStamps []int64        `json:"-"`
	MaxStep    int64          `json:"maxStep,omitempty"`
	MinStep    int64          `json:"minStep,omitempty"`
	AvgStep    int64          `json:"avgStep,omitempty"`
	// Frame rate signalled in the first sequence header
	SequenceFrameRate float64 `json:"sequenceFrameRate,omitempty"`
	// Errors
	Errors []string `json:"errors,omitempty"`

	firstHeader *mpeg2.SequenceHeader
	firstExt    bool
}

func NewStreamStatistics(es *ElementaryStream) *StreamStatistics {
	return &StreamStatistics{
		Type:       es.Codec,
		Pid:        es.PID,
		UnitTypes:  make(map[string]int),
		TimeStamps: es.Timestamps(),
	}
}

// AddUnit counts a decoded unit.
func (s *StreamStatistics) AddUnit(u *mpeg2.Unit) {
	s.Units++
	s.UnitTypes[u.Header.Type.String()]++
	switch u.Header.Type {
	case mpeg2.UnitPicture:
		s.Pictures++
	case mpeg2.UnitSequenceHeader:
		s.Sequences++
	}
	if u.Err != nil {
		s.BadUnits++
		s.Errors = append(s.Errors, fmt.Sprintf("unit %d: %s", u.Index, u.Err))
		return
	}
	switch p := u.Payload.(type) {
	case *mpeg2.SequenceHeader:
		if s.firstHeader == nil {
			s.firstHeader = p
			s.SequenceFrameRate = mpeg2.CombineSequence(p, nil).FrameRate
		}
	case *mpeg2.SequenceExtension:
		if s.firstHeader != nil && !s.firstExt && p.ExtensionStartCodeIdentifier == mpeg2.SequenceExtensionID {
			s.firstExt = true
			s.SequenceFrameRate = mpeg2.CombineSequence(s.firstHeader, p).FrameRate
		}
	}
}

func (p *JsonPrinter) PrintStatistics(s StreamStatistics, show bool) {
	s.calculateFrameRate(TimeScale)

	// print statistics
	p.Print(s, show)
}

func sliceMinMaxAverage(values []int64) (min, max, avg int64) {
	if len(values) == 0 {
		return 0, 0, 0
	}

	min = values[0]
	max = values[0]
	sum := int64(0)
	for _, number := range values {
		if number < min {
			min = number
		}
		if number > max {
			max = number
		}
		sum += number
	}
	avg = sum / int64(len(values))
	return min, max, avg
}

func CalculateSteps(timestamps []int64) []int64 {
	if len(timestamps) < 2 {
		return nil
	}

	// PTS/DTS are 33-bit values, so it wraps around after 26.5 hours
	steps := make([]int64, len(timestamps)-1)
	for i := 0; i < len(timestamps)-1; i++ {
		steps[i] = SignedPTSDiff(timestamps[i+1], timestamps[i])
	}
	return steps
}

// Calculate frame rate from DTS or PTS steps. A raw ES has no timestamps and
// falls back to the frame rate of the sequence header.
func (s *StreamStatistics) calculateFrameRate(timescale int64) {
	if len(s.TimeStamps) < 2 {
		if s.SequenceFrameRate != 0 {
			s.FrameRate = s.SequenceFrameRate
			return
		}
		s.Errors = append(s.Errors, "too few timestamps to calculate frame rate")
		return
	}

	steps := CalculateSteps(s.TimeStamps)
	minStep, maxStep, avgStep := sliceMinMaxAverage(steps)
	if maxStep != minStep {
		s.Errors = append(s.Errors, "irregular PTS/DTS steps")
		s.MinStep, s.MaxStep, s.AvgStep = minStep, maxStep, avgStep
	}
	if avgStep <= 0 {
		s.Errors = append(s.Errors, "non-increasing PTS/DTS")
		return
	}
	s.FrameRate = float64(timescale) / float64(avgStep)
}
