// Command boardgen generates a libDaisy board-support header from a
// JSON hardware description.
//
// Usage:
//
//	boardgen [options] <input.json>
//
// Examples:
//
//	boardgen surface.json                 # Generate to stdout
//	boardgen -o surface.h surface.json    # Generate to file
//	boardgen -name FieldUnit surface.json # Override the board name
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/boardgen/boardgen"
	"github.com/boardgen/boardgen/cpp"
)

var (
	output    = flag.String("o", "", "output file (default: stdout)")
	boardName = flag.String("name", "", "board struct name (default: document name)")
	version   = flag.Bool("version", false, "print version")
)

const boardgenVersion = "0.1.0-dev"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("boardgen version %s\n", boardgenVersion)
		return
	}

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Error: no input file specified")
		usage()
		os.Exit(1)
	}

	inputPath := args[0]

	// Read input document
	source, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	opts := cpp.Options{
		BoardName: *boardName,
	}
	header, info, err := boardgen.GenerateWithOptions(source, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generation error: %v\n", err)
		os.Exit(1)
	}

	// Write output
	if *output != "" {
		err = os.WriteFile(*output, []byte(header), 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Generated %s for board %s (%d controls)\n", *output, info.BoardName, info.ControlCount)
	} else {
		_, err = os.Stdout.WriteString(header)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: boardgen [options] <input.json>\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  boardgen surface.json                 Generate to stdout\n")
	fmt.Fprintf(os.Stderr, "  boardgen -o surface.h surface.json    Generate to file\n")
	fmt.Fprintf(os.Stderr, "  boardgen -name FieldUnit surface.json Override the board name\n")
}
