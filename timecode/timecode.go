// Package timecode converts SMPTE timecode strings to and from frame
// counts at an integer frame rate. Drop-frame rates are not supported;
// the switchers this module targets record at integer rates only.
package timecode

import (
	"fmt"
	"strconv"
	"strings"
)

// ToFrames converts an "HH:MM:SS:FF" timecode to a frame count at the
// given rate.
func ToFrames(tc string, rate int) (int64, error) {
	if rate <= 0 {
		return 0, fmt.Errorf("Invalid frame rate: %d", rate)
	}

	parts := strings.Split(strings.TrimSpace(tc), ":")
	if len(parts) != 4 {
		return 0, fmt.Errorf("Invalid timecode %q: expected HH:MM:SS:FF", tc)
	}

	values := make([]int, 4)
	for i, part := range parts {
		value, err := strconv.Atoi(part)
		if err != nil {
			return 0, fmt.Errorf("Invalid timecode %q: %v", tc, err)
		}
		if value < 0 {
			return 0, fmt.Errorf("Invalid timecode %q: negative field", tc)
		}
		values[i] = value
	}

	hours, minutes, seconds, frames := values[0], values[1], values[2], values[3]
	if minutes > 59 || seconds > 59 {
		return 0, fmt.Errorf("Invalid timecode %q: minutes and seconds must be below 60", tc)
	}
	if frames >= rate {
		return 0, fmt.Errorf("Invalid timecode %q: frame field %d exceeds rate %d", tc, frames, rate)
	}

	total := int64(hours)
	total = total*60 + int64(minutes)
	total = total*60 + int64(seconds)
	total = total*int64(rate) + int64(frames)
	return total, nil
}

// FromFrames formats a frame count as an "HH:MM:SS:FF" timecode at the
// given rate. Negative counts clamp to zero.
func FromFrames(frames int64, rate int) string {
	if rate <= 0 || frames < 0 {
		frames = 0
	}
	if rate <= 0 {
		rate = 1
	}

	ff := frames % int64(rate)
	totalSeconds := frames / int64(rate)
	ss := totalSeconds % 60
	totalMinutes := totalSeconds / 60
	mm := totalMinutes % 60
	hh := totalMinutes / 60
	return fmt.Sprintf("%02d:%02d:%02d:%02d", hh, mm, ss, ff)
}
