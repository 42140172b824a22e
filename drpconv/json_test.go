package drpconv

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalCutList(t *testing.T) {
	result, err := Convert(strings.NewReader(convertInput))
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.Title = "show"

	data, err := MarshalCutList(result, opts)
	require.NoError(t, err)

	var document struct {
		Title             string `json:"title"`
		Rate              int    `json:"rate"`
		ReferenceTimecode string `json:"referenceTimecode"`
		DurationFrames    int64  `json:"durationFrames"`
		Events            []struct {
			Name           string `json:"name"`
			File           string `json:"file"`
			StartFrame     int64  `json:"startFrame"`
			DurationFrames int64  `json:"durationFrames"`
			RecordIn       string `json:"recordIn"`
			RecordOut      string `json:"recordOut"`
		} `json:"events"`
	}
	require.NoError(t, json.Unmarshal(data, &document))

	assert.Equal(t, "show", document.Title)
	assert.Equal(t, 25, document.Rate)
	assert.Equal(t, "10:00:00:00", document.ReferenceTimecode)
	assert.Equal(t, int64(75), document.DurationFrames)

	require.Len(t, document.Events, 2)
	assert.Equal(t, "Camera 1", document.Events[0].Name)
	assert.Equal(t, "/media/cam1.mp4", document.Events[0].File)
	assert.Equal(t, int64(0), document.Events[0].StartFrame)
	assert.Equal(t, int64(25), document.Events[0].DurationFrames)
	assert.Equal(t, "00:00:00:00", document.Events[0].RecordIn)
	assert.Equal(t, "00:00:01:00", document.Events[0].RecordOut)

	assert.Equal(t, "Black", document.Events[1].Name)
	assert.Empty(t, document.Events[1].File)
	assert.Equal(t, "00:00:03:00", document.Events[1].RecordOut)
}
