package drpconv

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultTrackName is the track name the ATEM's own project files use
// for the program output.
const DefaultTrackName = "Main Mix"

// DefaultReelNameLength is the reel-name limit of classic CMX 3600
// implementations.
const DefaultReelNameLength = 8

// Options controls how a cut list is rendered by the exporters.
type Options struct {
	Title          string `yaml:"title"`
	TrackName      string `yaml:"trackName"`
	ReelNameLength int    `yaml:"reelNameLength"`
}

// DefaultOptions returns the exporter defaults. Title is left empty;
// callers usually fill it from the input file name.
func DefaultOptions() Options {
	return Options{
		TrackName:      DefaultTrackName,
		ReelNameLength: DefaultReelNameLength,
	}
}

// LoadOptions reads an export profile from a YAML file. A missing file
// is not an error; it yields the defaults.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return opts, fmt.Errorf("Could not read profile: %v", err)
	}

	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("Could not decode profile: %v", err)
	}

	if opts.TrackName == "" {
		opts.TrackName = DefaultTrackName
	}
	if opts.ReelNameLength <= 0 {
		opts.ReelNameLength = DefaultReelNameLength
	}

	return opts, nil
}
