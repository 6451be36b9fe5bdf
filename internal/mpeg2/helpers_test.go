package mpeg2

import (
	"bytes"
	"testing"

	"github.com/Eyevinn/mp4ff/bits"
	"github.com/stretchr/testify/require"
)

type field struct {
	v uint
	n int
}

// pack writes fields MSB first and pads the last byte with zeros.
func pack(t *testing.T, fields ...field) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := bits.NewWriter(&buf)
	for _, f := range fields {
		w.Write(f.v, f.n)
	}
	w.Flush()
	require.NoError(t, w.AccError())
	return buf.Bytes()
}

type seqHeaderFields struct {
	width, height, aspect, frameRate, bitRate, marker, vbv uint
	intra, nonIntra                                        []uint8
}

func seqHeaderPayload(t *testing.T, s seqHeaderFields) []byte {
	t.Helper()
	fs := []field{
		{s.width, 12}, {s.height, 12}, {s.aspect, 4}, {s.frameRate, 4},
		{s.bitRate, 18}, {s.marker, 1}, {s.vbv, 10}, {0, 1},
	}
	fs = append(fs, matrixFields(s.intra)...)
	fs = append(fs, matrixFields(s.nonIntra)...)
	return pack(t, fs...)
}

func matrixFields(m []uint8) []field {
	if m == nil {
		return []field{{0, 1}}
	}
	fs := []field{{1, 1}}
	for _, v := range m {
		fs = append(fs, field{uint(v), 8})
	}
	return fs
}

type seqExtFields struct {
	id, profileLevel, progressive, chroma, hExt, vExt, bitRateExt, marker, vbvExt, lowDelay, n, d uint
}

func seqExtPayload(t *testing.T, s seqExtFields) []byte {
	t.Helper()
	return pack(t,
		field{s.id, 4}, field{s.profileLevel, 8}, field{s.progressive, 1}, field{s.chroma, 2},
		field{s.hExt, 2}, field{s.vExt, 2}, field{s.bitRateExt, 12}, field{s.marker, 1},
		field{s.vbvExt, 8}, field{s.lowDelay, 1}, field{s.n, 2}, field{s.d, 5},
	)
}

func qcifHeader() seqHeaderFields {
	return seqHeaderFields{width: 176, height: 144, aspect: 1, frameRate: 3, bitRate: 1000, marker: 1, vbv: 20}
}

func mainProfileExt() seqExtFields {
	return seqExtFields{id: 1, profileLevel: 0x48, chroma: 1, marker: 1}
}

// unit prefixes payload with a start code and the start code value.
func unit(prefixLen int, code byte, payload []byte) []byte {
	out := make([]byte, prefixLen-1, prefixLen+1+len(payload))
	out = append(out, 0x01, code)
	return append(out, payload...)
}

func childNames(n *Node) []string {
	names := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		names = append(names, c.Name)
	}
	return names
}
