package internal

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/asticode/go-astits"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
)

// EnvPrefix is the prefix of environment variables that override option defaults.
const EnvPrefix = "MPEG2"

type Options struct {
	MaxUnits       int    `envconfig:"MAX_UNITS" default:"0"`
	MaxSequences   int    `envconfig:"MAX_SEQUENCES" default:"0"`
	Indent         bool   `envconfig:"INDENT" default:"false"`
	ShowStreamInfo bool   `envconfig:"SHOW_STREAM_INFO" default:"true"`
	ShowUnits      bool   `ignored:"true"`
	ShowSequences  bool   `ignored:"true"`
	ShowTree       bool   `envconfig:"TREE" default:"false"`
	ShowDetails    bool   `envconfig:"DETAILS" default:"false"`
	ShowStatistics bool   `envconfig:"STATS" default:"false"`
	Trace          bool   `envconfig:"TRACE" default:"false"`
	Types          string `envconfig:"TYPES"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
	Version        bool   `ignored:"true"`

	Log *zap.SugaredLogger `ignored:"true"`
}

// LoadOptions returns the defaults for all options, taking MPEG2_* environment
// variables into account. Command-line flags are applied on top.
func LoadOptions() (Options, error) {
	var o Options
	if err := envconfig.Process(EnvPrefix, &o); err != nil {
		return Options{}, fmt.Errorf("reading environment: %w", err)
	}
	return o, nil
}

func (o Options) logger() *zap.SugaredLogger {
	if o.Log == nil {
		return zap.NewNop().Sugar()
	}
	return o.Log
}

type OptionParseFunc func() Options
type RunableFunc func(ctx context.Context, w io.Writer, f io.Reader, o Options) error

// NewLogger builds a development logger writing to stderr at the given level.
func NewLogger(level string) (*zap.SugaredLogger, error) {
	var lvl zap.AtomicLevel
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = lvl
	cfg.DisableStacktrace = true
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

func ParseAstitsElementaryStreamInfo(es *astits.PMTElementaryStream) *ElementaryStreamInfo {
	var streamInfo *ElementaryStreamInfo
	switch es.StreamType {
	case astits.StreamTypeMPEG2Video:
		streamInfo = &ElementaryStreamInfo{PID: es.ElementaryPID, Codec: "MPEG-2", Type: "video"}
	case astits.StreamTypeMPEG1Video:
		streamInfo = &ElementaryStreamInfo{PID: es.ElementaryPID, Codec: "MPEG-1", Type: "video"}
	case astits.StreamTypeH264Video:
		streamInfo = &ElementaryStreamInfo{PID: es.ElementaryPID, Codec: "AVC", Type: "video"}
	case astits.StreamTypeH265Video:
		streamInfo = &ElementaryStreamInfo{PID: es.ElementaryPID, Codec: "HEVC", Type: "video"}
	case astits.StreamTypeAACAudio:
		streamInfo = &ElementaryStreamInfo{PID: es.ElementaryPID, Codec: "AAC", Type: "audio"}
	case astits.StreamTypeSCTE35:
		streamInfo = &ElementaryStreamInfo{PID: es.ElementaryPID, Codec: "SCTE35", Type: "cue"}
	}

	return streamInfo
}

func isMPEGVideo(t astits.StreamType) bool {
	return t == astits.StreamTypeMPEG2Video || t == astits.StreamTypeMPEG1Video
}

func ParseParams(function OptionParseFunc) (o Options, inFile string) {
	o = function()
	if o.Version {
		fmt.Printf("mpeg2-tools version %s\n", GetVersion())
		os.Exit(0)
	}
	if len(flag.Args()) < 1 {
		flag.Usage()
		os.Exit(1)
	}
	inFile = flag.Args()[0]
	if o.Trace {
		o.LogLevel = "debug"
	}
	logger, err := NewLogger(o.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	o.Log = logger
	return o, inFile
}

func Execute(w io.Writer, o Options, inFile string, function RunableFunc) error {
	// Create a cancellable context in case you want to stop reading data any time you want
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	// Handle SIGINT signal
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT)
	go func() {
		<-ch
		cancel()
	}()
	if o.Log != nil {
		defer func() { _ = o.Log.Sync() }()
	}

	var f io.Reader
	if inFile == "-" {
		f = os.Stdin
	} else {
		fh, err := os.Open(inFile)
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		f = fh
		defer fh.Close()
	}

	return function(ctx, w, f, o)
}
