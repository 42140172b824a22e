package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/atemtools/drp-processor/drp"
	"github.com/atemtools/drp-processor/drpconv"
	"github.com/atemtools/drp-processor/timecode"
)

func main() {
	debugValue := false

	var rootCommand = &cobra.Command{
		Use:   "drp",
		Short: "ATEM ISO switcher log processor",
		Long: `
This tool processes the switch logs recorded by Blackmagic ATEM ISO mixers (typically with the extension ".drp") and turns them into frame-accurate cut lists.
`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debugValue {
				drp.SetLogLevel(logrus.DebugLevel)
				drpconv.SetLogLevel(logrus.DebugLevel)
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
			os.Exit(1)
		},
	}
	rootCommand.PersistentFlags().BoolVar(&debugValue, "debug", false, "Enable debug output")

	{
		dumpValue := false
		var infoCommand = &cobra.Command{
			Use:   "info <filename> [...]",
			Short: "Show the information from the given log file(s)",
			Long: `
This prints the video mode, the reference timecode, the source catalogue, and a summary of the switch events.

For a more aggressive output, use the --dump flag.
`,
			Args: cobra.MinimumNArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				for _, filename := range args {
					fmt.Printf("File: %s\n", filename)
					log, err := parseFilename(filename)
					if err != nil {
						fmt.Printf("Error: %v\n", err)
						continue
					}
					printLogInfo(log)

					if dumpValue {
						spew.Dump(log)
					}
				}
			},
		}
		infoCommand.Flags().BoolVar(&dumpValue, "dump", false, "Dump out everything about the log")
		rootCommand.AddCommand(infoCommand)
	}

	{
		format := "edl"
		profile := ""
		title := ""
		var convertCommand = &cobra.Command{
			Use:   "convert <input-file> <output-file>",
			Short: "Convert a switcher log into a cut list",
			Long: `
This reconstructs the edit timeline from the switch events and writes it out as a cut list.

The EDL output is a CMX 3600 edit decision list that most editing tools can import; the JSON output carries the same cuts in a machine-readable form.
`,
			Args: cobra.ExactArgs(2),
			Run: func(cmd *cobra.Command, args []string) {
				inputFile := args[0]
				destinationFilename := args[1]

				opts, err := drpconv.LoadOptions(profile)
				if err != nil {
					fmt.Printf("Error: %v\n", err)
					os.Exit(1)
				}
				if title != "" {
					opts.Title = title
				}
				if opts.Title == "" {
					opts.Title = drpconv.TimelineNameFromPath(inputFile)
				}

				handle, err := os.Open(inputFile)
				if err != nil {
					fmt.Printf("Could not open file '%s': %v\n", inputFile, err)
					os.Exit(1)
				}
				result, err := drpconv.Convert(handle)
				handle.Close()
				if err != nil {
					fmt.Printf("Could not convert file: %v\n", err)
					os.Exit(1)
				}

				fmt.Printf("Reconstructed %d cuts over %s at %d fps...\n",
					len(result.Cuts), timecode.FromFrames(result.Duration, result.Rate), result.Rate)

				var contents []byte
				switch format {
				case "edl":
					contents = []byte(drpconv.MakeEDL(result, opts))
				case "json":
					contents, err = drpconv.MarshalCutList(result, opts)
					if err != nil {
						fmt.Printf("Couldn't create cut list: %v\n", err)
						os.Exit(1)
					}
				default:
					fmt.Printf("Invalid output format: %s\n", format)
					os.Exit(1)
				}

				err = os.WriteFile(destinationFilename, contents, 0644)
				if err != nil {
					fmt.Printf("Couldn't create output file: %v\n", err)
					os.Exit(1)
				}
				fmt.Printf("-> %s\n", destinationFilename)
			},
		}
		convertCommand.Flags().StringVar(&format, "format", format, "The output file format (can be one of: edl, json)")
		convertCommand.Flags().StringVar(&profile, "profile", profile, "An export profile YAML file")
		convertCommand.Flags().StringVar(&title, "title", title, "The cut list title; defaults to the input file name")
		rootCommand.AddCommand(convertCommand)
	}

	err := rootCommand.Execute()
	if err != nil {
		panic(err)
	}
	os.Exit(0)
}

// parseFilename parses the given file and returns a `Log` instance.
func parseFilename(filename string) (*drp.Log, error) {
	handle, err := os.Open(filename)
	if err != nil {
		fmt.Printf("Could not open file '%s': %v\n", filename, err)
		return nil, err
	}
	defer handle.Close()

	log, err := drp.ParseReader(handle)
	if err != nil {
		fmt.Printf("Could not parse file: %v\n", err)
		return nil, err
	}

	return log, nil
}

// printLogInfo prints out the information about the log.
func printLogInfo(log *drp.Log) {
	header := log.Header

	fmt.Printf("Video mode: %s\n", header.VideoMode)
	rate, err := drpconv.FrameRate(header)
	if err != nil {
		fmt.Printf("   (could not derive frame rate: %v)\n", err)
	}
	fmt.Printf("Reference timecode: %s\n", header.MasterTimecode)
	if header.AppVersion != "" {
		fmt.Printf("Writer version: %s\n", header.AppVersion)
	}

	fmt.Printf("Sources: (%d)\n", len(header.Sources))
	for _, source := range header.Sources {
		if source.File != "" {
			fmt.Printf("   %d. %s (%s)\n", source.Index, source.Name, source.File)
		} else {
			fmt.Printf("   %d. %s (no media)\n", source.Index, source.Name)
		}
	}
	if source := header.SourceByIndex(header.InitialSource()); source != nil {
		fmt.Printf("Initial source: %d (%s)\n", header.InitialSource(), source.Name)
	} else {
		fmt.Printf("Initial source: %d\n", header.InitialSource())
	}

	fmt.Printf("Events: %d\n", len(log.Events))
	if len(log.Events) > 0 && rate > 0 {
		first, errFirst := timecode.ToFrames(header.MasterTimecode, rate)
		last, errLast := timecode.ToFrames(log.Events[len(log.Events)-1].MasterTimecode, rate)
		if errFirst == nil && errLast == nil {
			fmt.Printf("Show duration: %s (%d frames)\n", timecode.FromFrames(last-first, rate), last-first)
		}
	}
}
