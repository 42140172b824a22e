package drp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLog = `{"masterTimecode":"10:00:00:00","videoMode":"1080p25","sources":[{"_index_":0,"name":"Camera 1","file":"/media/cam1.mp4"},{"_index_":1,"name":"Black"}],"mixEffectBlocks":[{"source":0}]}
{"masterTimecode":"10:00:01:00","mixEffectBlocks":[{"source":1}]}

{"masterTimecode":"10:00:02:00","mixEffectBlocks":[{}]}
`

func TestParseReader(t *testing.T) {
	log, err := ParseReader(strings.NewReader(sampleLog))
	require.NoError(t, err)

	header := log.Header
	require.NotNil(t, header)
	assert.Equal(t, "10:00:00:00", header.MasterTimecode)
	assert.Equal(t, "1080p25", header.VideoMode)

	require.Len(t, header.Sources, 2)
	assert.Equal(t, 0, header.Sources[0].Index)
	assert.Equal(t, "Camera 1", header.Sources[0].Name)
	assert.Equal(t, "/media/cam1.mp4", header.Sources[0].File)
	assert.Equal(t, "Black", header.Sources[1].Name)
	assert.Empty(t, header.Sources[1].File)

	// Blank lines carry nothing; the two real events stay in file order.
	require.Len(t, log.Events, 2)
	assert.Equal(t, "10:00:01:00", log.Events[0].MasterTimecode)
	assert.Equal(t, "10:00:02:00", log.Events[1].MasterTimecode)

	source, ok := log.Events[0].Source()
	assert.True(t, ok)
	assert.Equal(t, 1, source)

	_, ok = log.Events[1].Source()
	assert.False(t, ok)
}

func TestParseReaderEventOrder(t *testing.T) {
	input := `{"masterTimecode":"00:00:00:00","videoMode":"1080p25","sources":[{"_index_":0,"name":"A"}]}
{"masterTimecode":"00:00:03:00","mixEffectBlocks":[{"source":3}]}
{"masterTimecode":"00:00:01:00","mixEffectBlocks":[{"source":1}]}
{"masterTimecode":"00:00:02:00","mixEffectBlocks":[{"source":2}]}
`

	log, err := ParseReader(strings.NewReader(input))
	require.NoError(t, err)

	// The parser never re-sorts; ordering is an input invariant.
	require.Len(t, log.Events, 3)
	assert.Equal(t, "00:00:03:00", log.Events[0].MasterTimecode)
	assert.Equal(t, "00:00:01:00", log.Events[1].MasterTimecode)
	assert.Equal(t, "00:00:02:00", log.Events[2].MasterTimecode)
}

func TestParseReaderNoEvents(t *testing.T) {
	input := `{"masterTimecode":"10:00:00:00","videoMode":"1080p25","sources":[{"_index_":0,"name":"A"}]}`

	log, err := ParseReader(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, log.Events)
}

func TestParseReaderBadHeader(t *testing.T) {
	_, err := ParseReader(strings.NewReader("{not json}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "header")
}

func TestParseReaderBadEvent(t *testing.T) {
	input := `{"masterTimecode":"10:00:00:00","videoMode":"1080p25","sources":[{"_index_":0,"name":"A"}]}
{broken`

	_, err := ParseReader(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "event")
}

func TestParseReaderEmptyInput(t *testing.T) {
	_, err := ParseReader(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestHeaderInitialSource(t *testing.T) {
	two := 2
	tests := []struct {
		name   string
		header Header
		want   int
	}{
		{"present", Header{MixEffectBlocks: []MixEffectBlock{{Source: &two}}}, 2},
		{"absent field", Header{MixEffectBlocks: []MixEffectBlock{{}}}, 0},
		{"no blocks", Header{}, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, test.header.InitialSource())
		})
	}
}

func TestHeaderSourceByIndex(t *testing.T) {
	header := Header{Sources: []Source{
		{Index: 0, Name: "A"},
		{Index: 4, Name: "B"},
	}}

	require.NotNil(t, header.SourceByIndex(4))
	assert.Equal(t, "B", header.SourceByIndex(4).Name)
	assert.Nil(t, header.SourceByIndex(1))
}
