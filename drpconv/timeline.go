package drpconv

import (
	"path/filepath"
	"strings"

	"github.com/Avalanche-io/gotio/opentime"
	"github.com/Avalanche-io/gotio/opentimelineio"
)

// MakeTimeline assembles the cut list into an OTIO timeline holding a
// single video track.
//
// The log records no media lengths, so every file-backed source gets an
// available range spanning the whole show. Known approximation. Sources
// without a file get a missing reference.
func MakeTimeline(result *Result, name string, trackName string) *opentimelineio.Timeline {
	if trackName == "" {
		trackName = DefaultTrackName
	}

	rate := float64(result.Rate)
	available := opentime.NewTimeRange(
		opentime.NewRationalTime(0, rate),
		opentime.NewRationalTime(float64(result.Duration), rate),
	)

	tl := opentimelineio.NewTimeline(name, nil, nil)
	track := opentimelineio.NewTrack(trackName, nil, opentimelineio.TrackKindVideo, nil, nil)

	for _, cut := range result.Cuts {
		sourceRange := opentime.NewTimeRange(
			opentime.NewRationalTime(float64(cut.Start), rate),
			opentime.NewRationalTime(float64(cut.Duration), rate),
		)

		var clip *opentimelineio.Clip
		if cut.File != "" {
			media := opentimelineio.NewExternalReference(cut.Name, cut.File, &available, nil)
			clip = opentimelineio.NewClip(cut.Name, media, &sourceRange, nil, nil, nil, "", nil)
		} else {
			media := opentimelineio.NewMissingReference("", nil, nil)
			clip = opentimelineio.NewClip(cut.Name, media, &sourceRange, nil, nil, nil, "", nil)
		}
		track.AppendChild(clip)
	}

	tl.Tracks().AppendChild(track)
	return tl
}

// TimelineNameFromPath names a timeline after its log file, without
// the directory or the ".drp" suffix.
func TimelineNameFromPath(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".drp")
}
