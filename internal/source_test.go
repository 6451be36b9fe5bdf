package internal

import (
	"bytes"
	"context"
	"testing"

	"github.com/asticode/go-astits"
	"github.com/stretchr/testify/require"
)

func TestLoadElementaryStream(t *testing.T) {
	t.Run("es", func(t *testing.T) {
		es, err := LoadElementaryStream(context.TODO(), bytes.NewReader(testES(t)))
		require.NoError(t, err)
		require.False(t, es.FromTS)
		require.Equal(t, testES(t), es.Data)
		require.Equal(t, "MPEG-2", es.Codec)
		require.Empty(t, es.Marks)
		require.Empty(t, es.Streams)
		require.Nil(t, es.Timestamps())
	})

	t.Run("ts", func(t *testing.T) {
		ts := testTS(t)
		require.Zero(t, len(ts)%PacketSize)
		es, err := LoadElementaryStream(context.TODO(), bytes.NewReader(ts))
		require.NoError(t, err)
		require.True(t, es.FromTS)
		require.Equal(t, uint16(testPID), es.PID)
		require.Equal(t, "MPEG-2", es.Codec)
		require.Equal(t, testES(t), es.Data)
		require.Equal(t, []ElementaryStreamInfo{{PID: testPID, Codec: "MPEG-2", Type: "video"}}, es.Streams)
		require.Len(t, es.Marks, 2)
		require.Equal(t, testESPictures[0], es.Marks[0].Offset)
		require.Equal(t, testESPictures[1], es.Marks[1].Offset)
		require.Equal(t, []int64{3600, 7200}, es.Timestamps())
	})

	t.Run("ts_with_leading_garbage", func(t *testing.T) {
		data := append([]byte{0x12, 0x34, 0x56}, testTS(t)...)
		es, err := LoadElementaryStream(context.TODO(), bytes.NewReader(data))
		require.NoError(t, err)
		require.True(t, es.FromTS)
		require.Equal(t, testES(t), es.Data)
	})

	t.Run("ts_without_video", func(t *testing.T) {
		var buf bytes.Buffer
		mux := astits.NewMuxer(context.Background(), &buf)
		require.NoError(t, mux.AddElementaryStream(astits.PMTElementaryStream{
			ElementaryPID: 257,
			StreamType:    astits.StreamTypeAACAudio,
		}))
		mux.SetPCRPID(257)
		_, err := mux.WriteTables()
		require.NoError(t, err)

		_, err = LoadElementaryStream(context.TODO(), bytes.NewReader(buf.Bytes()))
		require.ErrorIs(t, err, ErrNoVideoStream)
	})
}

func TestSyncOffset(t *testing.T) {
	packets := func(n int) []byte {
		data := make([]byte, n*PacketSize)
		for i := 0; i < n; i++ {
			data[i*PacketSize] = SyncByte
		}
		return data
	}
	noRepeat := packets(3)
	noRepeat[PacketSize] = 0x00

	cases := []struct {
		name   string
		data   []byte
		offset int
		ok     bool
	}{
		{"too_short", packets(1)[:PacketSize-1], 0, false},
		{"start_code", append([]byte{0, 0, 1, 0xb3}, packets(2)...), 0, false},
		{"four_byte_start_code", append([]byte{0, 0, 0, 1, 0xb3}, packets(2)...), 0, false},
		{"three_packets", packets(3), 0, true},
		{"offset", append([]byte{0x11, 0x22}, packets(2)...), 2, true},
		{"no_repeat", noRepeat, 0, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			offset, ok := syncOffset(c.data)
			require.Equal(t, c.ok, ok)
			if ok {
				require.Equal(t, c.offset, offset)
			}
		})
	}
}

func TestMarkAt(t *testing.T) {
	pts := int64(3600)
	es := &ElementaryStream{Marks: []PESMark{{Offset: 0, PTS: &pts}, {Offset: 44}, {Offset: 100}}}
	require.Equal(t, &es.Marks[0], es.MarkAt(0))
	require.Equal(t, &es.Marks[0], es.MarkAt(43))
	require.Equal(t, &es.Marks[1], es.MarkAt(44))
	require.Equal(t, &es.Marks[1], es.MarkAt(99))
	require.Equal(t, &es.Marks[2], es.MarkAt(1000))
	require.Nil(t, es.MarkAt(-1))

	require.Nil(t, (&ElementaryStream{}).MarkAt(10))
}
