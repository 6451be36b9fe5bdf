package internal

import (
	"go.uber.org/zap"

	"github.com/Eyevinn/mpeg2-tools/internal/mpeg2"
)

// TraceSink logs every decoded field at debug level.
type TraceSink struct {
	log     *zap.SugaredLogger
	section string
}

func NewTraceSink(log *zap.SugaredLogger, unit int) *TraceSink {
	return &TraceSink{log: log.With("unit", unit)}
}

func (s *TraceSink) Field(f mpeg2.Field) {
	s.log.Debugw(f.Name,
		"section", s.section,
		"value", f.Value,
		"coding", f.Coding,
		"bits", f.RawBits,
		"meaning", f.Meaning,
	)
}

func (s *TraceSink) Section(name string) mpeg2.Sink {
	path := name
	if s.section != "" {
		path = s.section + "/" + name
	}
	return &TraceSink{log: s.log, section: path}
}
