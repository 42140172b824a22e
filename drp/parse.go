package drp

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrEmptyInput is returned when the input contains no header line.
var ErrEmptyInput = errors.New("empty input: no header line")

// ParseReader parses a DRP switcher log using an `io.Reader` instance.
//
// The first line is the header record; every following non-empty line
// is one switch event. Events are kept in file order; the reconstructor
// relies on that ordering and this parser never re-sorts them.
func ParseReader(reader io.Reader) (*Log, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("Could not read header line: %v", err)
		}
		return nil, ErrEmptyInput
	}

	header := &Header{}
	if err := json.Unmarshal(scanner.Bytes(), header); err != nil {
		return nil, fmt.Errorf("Could not decode header: %v", err)
	}

	logger.Debugf("Header: mode=%s reference=%s sources=%d", header.VideoMode, header.MasterTimecode, len(header.Sources))

	log := &Log{Header: header}

	for i := 0; scanner.Scan(); i++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		event := &SwitchEvent{}
		if err := json.Unmarshal([]byte(line), event); err != nil {
			return nil, fmt.Errorf("Could not decode event %d: %v", i, err)
		}

		logger.Debugf("Event %d: timecode=%s", i, event.MasterTimecode)

		log.Events = append(log.Events, event)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("Could not read events: %v", err)
	}

	return log, nil
}
