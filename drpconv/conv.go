// Package drpconv turns a parsed DRP switcher log into an ordered cut
// list and renders it as an OTIO timeline, an EDL, or a JSON document.
package drpconv

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/atemtools/drp-processor/drp"
	"github.com/atemtools/drp-processor/timecode"
)

// Cut is one entry of the reconstructed cut list: the source that was
// on air, its backing file (empty when the source has none), and the
// frame range it covers on the show timeline.
type Cut struct {
	Name     string
	File     string
	Start    int64
	Duration int64
}

// End returns the first frame after the cut.
func (c Cut) End() int64 {
	return c.Start + c.Duration
}

// Result is a reconstructed cut list: The ordered cuts covering the
// show from frame 0, plus the time base they were computed against.
type Result struct {
	Cuts           []Cut
	Rate           int
	ReferenceFrame int64
	Duration       int64
}

// FrameRate derives the frame rate from the header's video mode string,
// e.g. "1080p25" is 25 frames per second.
func FrameRate(header *drp.Header) (int, error) {
	parts := strings.SplitN(header.VideoMode, "p", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrBadVideoMode, header.VideoMode)
	}
	rate, err := strconv.Atoi(parts[1])
	if err != nil || rate <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadVideoMode, header.VideoMode)
	}
	return rate, nil
}

// state is the reconstruction cursor threaded through the event walk.
type state struct {
	frame  int64
	active int
}

// advance closes the cut that was on air up to eventFrame and moves
// the cursor to it.
func (s *state) advance(eventFrame int64) (start, duration int64) {
	start = s.frame
	duration = eventFrame - s.frame
	s.frame = eventFrame
	return start, duration
}

// Reconstruct walks the switch events in order and emits one cut per
// interval during which a single source was on air. Cuts are
// contiguous and start at frame 0. The walk stops at the first event
// that names no source: that event marks the end of the show, and any
// lines after it are never read.
func Reconstruct(header *drp.Header, events []*drp.SwitchEvent) (*Result, error) {
	rate, err := FrameRate(header)
	if err != nil {
		return nil, err
	}

	if len(header.Sources) == 0 {
		return nil, ErrNoSources
	}
	if len(events) == 0 {
		return nil, ErrNoEvents
	}

	checkAppVersion(header)

	referenceFrame, err := timecode.ToFrames(header.MasterTimecode, rate)
	if err != nil {
		return nil, fmt.Errorf("Could not parse reference timecode: %v", err)
	}

	lastFrame, err := timecode.ToFrames(events[len(events)-1].MasterTimecode, rate)
	if err != nil {
		return nil, fmt.Errorf("Could not parse final event timecode: %v", err)
	}

	cursor := state{active: header.InitialSource()}
	result := &Result{
		Rate:           rate,
		ReferenceFrame: referenceFrame,
		Duration:       lastFrame - referenceFrame,
	}

	for i, event := range events {
		eventFrame, err := timecode.ToFrames(event.MasterTimecode, rate)
		if err != nil {
			return nil, fmt.Errorf("Could not parse timecode for event %d: %v", i, err)
		}

		source := header.SourceByIndex(cursor.active)
		if source == nil {
			return nil, fmt.Errorf("%w: %d at event %d", ErrUnknownSource, cursor.active, i)
		}

		start, duration := cursor.advance(eventFrame - referenceFrame)
		logger.Debugf("Event %d: source=%q start=%d duration=%d", i, source.Name, start, duration)
		result.Cuts = append(result.Cuts, Cut{
			Name:     source.Name,
			File:     source.File,
			Start:    start,
			Duration: duration,
		})

		next, ok := event.Source()
		if !ok {
			// End of show. Later events, if any, stay unread.
			break
		}
		cursor.active = next
	}

	return result, nil
}

// Convert parses a DRP log from the reader and reconstructs its cut
// list in one step.
func Convert(reader io.Reader) (*Result, error) {
	log, err := drp.ParseReader(reader)
	if err != nil {
		return nil, err
	}
	return Reconstruct(log.Header, log.Events)
}
