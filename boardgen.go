// Copyright 2025 The Boardgen Authors
// SPDX-License-Identifier: MIT

// Package boardgen turns declarative hardware descriptions of embedded
// audio control surfaces into libDaisy board-support C++ headers.
//
// A description document enumerates the board's physical I/O — analog
// and CV inputs, CV outputs, encoders, switches, LEDs, gates, MIDI and
// displays — and boardgen emits one header containing the board struct,
// its Init bring-up routine and the per-tick processing routines, ready
// for compilation by the downstream firmware toolchain.
//
// Example usage:
//
//	source, _ := os.ReadFile("surface.json")
//	header, info, err := boardgen.Generate(source)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(info.BoardName, info.ControlCount)
//
// For more control, use the individual pipeline stages:
//
//	doc, err := boardgen.Parse(source)
//	header, info := cpp.Generate(doc, cpp.Options{BoardName: "FieldUnit"})
package boardgen

import (
	"fmt"

	"github.com/boardgen/boardgen/cpp"
	"github.com/boardgen/boardgen/desc"
)

// Generate parses a JSON hardware description and generates the board
// header using default options.
//
// This is the simplest way to generate a board. For more control, use
// GenerateWithOptions or the individual Parse/cpp.Generate stages.
func Generate(source []byte) (string, cpp.BuildInfo, error) {
	return GenerateWithOptions(source, cpp.DefaultOptions())
}

// GenerateWithOptions parses a JSON hardware description and generates
// the board header with custom options.
//
// The pipeline is:
//  1. Decode the JSON document (the only fallible stage)
//  2. Generate the C++ header (pure, infallible transform)
func GenerateWithOptions(source []byte, opts cpp.Options) (string, cpp.BuildInfo, error) {
	doc, err := Parse(source)
	if err != nil {
		return "", cpp.BuildInfo{}, fmt.Errorf("parse error: %w", err)
	}

	header, info := cpp.Generate(doc, opts)
	return header, info, nil
}

// Parse decodes a JSON hardware-description document.
//
// Decoding is permissive: unknown fields are ignored and no semantic
// checks are performed. Pin numbers, enum names and label uniqueness
// are the downstream toolchain's concern.
func Parse(source []byte) (*desc.Description, error) {
	return desc.Parse(source)
}
