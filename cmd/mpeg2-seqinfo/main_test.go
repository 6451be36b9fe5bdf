package main

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/Eyevinn/mpeg2-tools/internal"
	"github.com/stretchr/testify/require"
)

// 720x576 25 Hz sequence header and sequence extension, then a group of pictures
const testSequence = "000001b32d02402313882380" + "000001b5148200010000" + "000001b808000040"

var expectedSequences = `{"index":0,"kind":"SequenceHeader","hex":"b32d02402313882380","length":9}
{"index":1,"kind":"SequenceExtension","hex":"b51482000100","length":6}
{"index":0,"extensionIndex":1,"params":{"width":720,"height":576,"aspectRatio":"DAR 3:4","frameRate":25,"bitRate":8000000,"vbvBufferSize":229376,"profile":"Main","level":"Main","chromaFormat":"4:2:0","progressive":false,"lowDelay":false}}
`

func TestPrintSequenceInfo(t *testing.T) {
	data, err := hex.DecodeString(testSequence)
	require.NoError(t, err)
	inFile := filepath.Join(t.TempDir(), "seq.m2v")
	require.NoError(t, os.WriteFile(inFile, data, 0644))

	o := internal.Options{ShowStreamInfo: true, ShowSequences: true}
	buf := bytes.Buffer{}
	err = internal.Execute(&buf, o, inFile, printSequenceInfo)
	require.NoError(t, err)
	require.Equal(t, expectedSequences, buf.String())
}
