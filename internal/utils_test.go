package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/Eyevinn/mpeg2-tools/internal/mpeg2"
)

func TestLoadOptions(t *testing.T) {
	o, err := LoadOptions()
	require.NoError(t, err)
	require.Equal(t, Options{ShowStreamInfo: true, LogLevel: "info"}, o)

	t.Setenv("MPEG2_MAX_UNITS", "12")
	t.Setenv("MPEG2_INDENT", "true")
	t.Setenv("MPEG2_TYPES", "PICTURE")
	t.Setenv("MPEG2_SHOW_STREAM_INFO", "false")
	t.Setenv("MPEG2_LOG_LEVEL", "debug")
	o, err = LoadOptions()
	require.NoError(t, err)
	require.Equal(t, 12, o.MaxUnits)
	require.True(t, o.Indent)
	require.Equal(t, "PICTURE", o.Types)
	require.False(t, o.ShowStreamInfo)
	require.Equal(t, "debug", o.LogLevel)

	t.Setenv("MPEG2_MAX_UNITS", "many")
	_, err = LoadOptions()
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	log, err := NewLogger("warn")
	require.NoError(t, err)
	require.False(t, log.Desugar().Core().Enabled(zapcore.InfoLevel))
	require.True(t, log.Desugar().Core().Enabled(zapcore.WarnLevel))

	_, err = NewLogger("loud")
	require.Error(t, err)
}

func TestTypeFilter(t *testing.T) {
	f, err := ParseTypeFilter("")
	require.NoError(t, err)
	require.Empty(t, f)

	f, err = ParseTypeFilter("PICTURE, SeqHeader")
	require.NoError(t, err)
	require.Equal(t, TypeFilter{"PICTURE", "SeqHeader"}, f)

	_, err = ParseTypeFilter("PICTURE,SPS")
	require.ErrorIs(t, err, ErrUnknownUnitType)

	cases := []struct {
		name    string
		unit    mpeg2.Unit
		matches bool
	}{
		{"type", mpeg2.Unit{Header: mpeg2.ClassifyStartCode(0x00)}, true},
		{"summary", mpeg2.Unit{Header: mpeg2.ClassifyStartCode(0xb3), Summary: "SeqHeader"}, true},
		{"other_type", mpeg2.Unit{Header: mpeg2.ClassifyStartCode(0x01)}, false},
		{"other_summary", mpeg2.Unit{Header: mpeg2.ClassifyStartCode(0xb5), Summary: "SeqExt"}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.matches, f.Match(&c.unit))
			require.True(t, TypeFilter(nil).Match(&c.unit))
		})
	}
}

func TestSignedPTSDiff(t *testing.T) {
	require.Equal(t, int64(3600), SignedPTSDiff(7200, 3600))
	require.Equal(t, int64(-3600), SignedPTSDiff(3600, 7200))
	require.Equal(t, int64(3600), SignedPTSDiff(1800, PtsWrap-1800))
}

func TestGetVersion(t *testing.T) {
	require.Equal(t, commitVersion, GetVersion())
	defer func(d string) { commitDate = d }(commitDate)
	commitDate = "1700000000"
	require.Equal(t, commitVersion+", date: 2023-11-14", GetVersion())
}
