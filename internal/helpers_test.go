package internal

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"strings"
	"testing"

	"github.com/asticode/go-astits"
	"github.com/stretchr/testify/require"
)

// testES is a 720x576 25 Hz Main@Main stream with two pictures:
//
//	unit 0  SEQUENCE_HEADER  start 3
//	unit 1  EXTENSION_START  start 15 (sequence_extension, ends in zero bytes)
//	unit 2  GROUP_START      start 25 (four-byte prefix)
//	unit 3  PICTURE          start 33
//	unit 4  SLICE            start 41
//	unit 5  PICTURE          start 47
//	unit 6  SLICE            start 55
//	unit 7  SEQUENCE_END     start 61
const testESHex = "000001b3" + "2d02402313882380" +
	"000001b5" + "148200010000" +
	"000001b8" + "08000040" +
	"00000100" + "000ffff8" +
	"00000101" + "1234" +
	"00000100" + "004ffff8" +
	"00000101" + "5678" +
	"000001b7"

// Byte offsets where the two access units of testES start.
var testESPictures = []int{0, 44}

const testPID = 256

func testES(t *testing.T) []byte {
	t.Helper()
	data, err := hex.DecodeString(testESHex)
	require.NoError(t, err)
	require.Len(t, data, 62)
	return data
}

// testTS muxes testES into a transport stream with one PES packet per
// picture and PTS values 3600 apart.
func testTS(t *testing.T) []byte {
	t.Helper()
	es := testES(t)
	var buf bytes.Buffer
	mux := astits.NewMuxer(context.Background(), &buf)
	require.NoError(t, mux.AddElementaryStream(astits.PMTElementaryStream{
		ElementaryPID: testPID,
		StreamType:    astits.StreamTypeMPEG2Video,
	}))
	mux.SetPCRPID(testPID)
	_, err := mux.WriteTables()
	require.NoError(t, err)

	for i, start := range testESPictures {
		end := len(es)
		if i+1 < len(testESPictures) {
			end = testESPictures[i+1]
		}
		_, err := mux.WriteData(&astits.MuxerData{
			PID: testPID,
			PES: &astits.PESData{
				Header: &astits.PESHeader{
					OptionalHeader: &astits.PESOptionalHeader{
						MarkerBits:      2,
						PTSDTSIndicator: astits.PTSDTSIndicatorOnlyPTS,
						PTS:             &astits.ClockReference{Base: int64(3600 * (i + 1))},
					},
					StreamID: 0xe0,
				},
				Data: es[start:end],
			},
		})
		require.NoError(t, err)
	}
	return buf.Bytes()
}

func outputLines(t *testing.T, out string) []string {
	t.Helper()
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func decodeLine[T any](t *testing.T, line string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(line), &v))
	return v
}
