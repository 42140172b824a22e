package drpconv

import (
	"fmt"
	"strings"

	"github.com/atemtools/drp-processor/timecode"
)

// MakeEDL renders the cut list as a CMX 3600 edit decision list.
//
// Source timecodes are expressed on the switcher's master timecode,
// record timecodes on the show timeline starting at zero. All feeds of
// a switcher share the master clock, so the two differ only by the
// reference offset.
func MakeEDL(result *Result, opts Options) string {
	title := opts.Title
	if title == "" {
		title = "Untitled"
	}

	lines := []string{
		fmt.Sprintf("TITLE: %s", title),
		"FCM: NON-DROP FRAME",
		"",
	}

	for i, cut := range result.Cuts {
		srcIn := timecode.FromFrames(result.ReferenceFrame+cut.Start, result.Rate)
		srcOut := timecode.FromFrames(result.ReferenceFrame+cut.End(), result.Rate)
		recIn := timecode.FromFrames(cut.Start, result.Rate)
		recOut := timecode.FromFrames(cut.End(), result.Rate)

		lines = append(lines,
			fmt.Sprintf("%03d  %-8s %-5s C        %s %s %s %s",
				i+1, sanitizeReel(cut.Name, opts.ReelNameLength), "V", srcIn, srcOut, recIn, recOut),
			fmt.Sprintf("* FROM CLIP NAME:  %s", cut.Name),
		)
		if cut.File != "" {
			lines = append(lines, fmt.Sprintf("* SOURCE FILE:  %s", cut.File))
		}
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// sanitizeReel maps a source name onto the reel-name alphabet and
// length that EDL consumers accept.
func sanitizeReel(name string, maxLength int) string {
	name = strings.Map(func(r rune) rune {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			return r
		}
		return '_'
	}, name)

	if maxLength > 0 && len(name) > maxLength {
		name = name[:maxLength]
	}
	if name == "" {
		name = "AX"
	}
	return name
}
