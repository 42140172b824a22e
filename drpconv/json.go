package drpconv

import (
	"encoding/json"

	"github.com/atemtools/drp-processor/timecode"
)

type cutListEntry struct {
	Name           string `json:"name"`
	File           string `json:"file,omitempty"`
	StartFrame     int64  `json:"startFrame"`
	DurationFrames int64  `json:"durationFrames"`
	RecordIn       string `json:"recordIn"`
	RecordOut      string `json:"recordOut"`
}

type cutListDocument struct {
	Title             string         `json:"title,omitempty"`
	Rate              int            `json:"rate"`
	ReferenceTimecode string         `json:"referenceTimecode"`
	DurationFrames    int64          `json:"durationFrames"`
	Events            []cutListEntry `json:"events"`
}

// MarshalCutList renders the cut list as an indented JSON document.
func MarshalCutList(result *Result, opts Options) ([]byte, error) {
	document := cutListDocument{
		Title:             opts.Title,
		Rate:              result.Rate,
		ReferenceTimecode: timecode.FromFrames(result.ReferenceFrame, result.Rate),
		DurationFrames:    result.Duration,
		Events:            []cutListEntry{},
	}

	for _, cut := range result.Cuts {
		document.Events = append(document.Events, cutListEntry{
			Name:           cut.Name,
			File:           cut.File,
			StartFrame:     cut.Start,
			DurationFrames: cut.Duration,
			RecordIn:       timecode.FromFrames(cut.Start, result.Rate),
			RecordOut:      timecode.FromFrames(cut.End(), result.Rate),
		})
	}

	return json.MarshalIndent(document, "", "  ")
}
