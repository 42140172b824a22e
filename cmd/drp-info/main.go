package main

import (
	"fmt"
	"os"

	"github.com/atemtools/drp-processor/drp"
)

func main() {
	filename := os.Args[1]

	handle, err := os.Open(filename)
	if err != nil {
		fmt.Printf("Could not open file '%s': %v\n", filename, err)
		os.Exit(1)
	}
	defer handle.Close()

	log, err := drp.ParseReader(handle)
	if err != nil {
		fmt.Printf("Could not parse file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Video mode: %s\n", log.Header.VideoMode)
	fmt.Printf("Reference timecode: %s\n", log.Header.MasterTimecode)

	fmt.Printf("Sources: (%d)\n", len(log.Header.Sources))
	for _, source := range log.Header.Sources {
		fmt.Printf("   %d. %s = %s\n", source.Index, source.Name, source.File)
	}

	fmt.Printf("Events: %d\n", len(log.Events))
	for i, event := range log.Events {
		if source, ok := event.Source(); ok {
			fmt.Printf("   %d. %s -> source %d\n", i, event.MasterTimecode, source)
		} else {
			fmt.Printf("   %d. %s -> end of show\n", i, event.MasterTimecode)
		}
	}
}
