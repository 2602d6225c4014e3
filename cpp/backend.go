// Copyright 2025 The Boardgen Authors
// SPDX-License-Identifier: MIT

package cpp

import "github.com/boardgen/boardgen/desc"

// DefaultBoardName names the emitted struct when neither the options
// nor the document provide one.
const DefaultBoardName = "ControlSurface"

// Options configures header generation.
type Options struct {
	// BoardName is the name of the emitted board struct. If empty, the
	// document's name field is used, then DefaultBoardName. The value
	// is emitted verbatim; it is not checked for C++ validity.
	BoardName string
}

// DefaultOptions returns the default generation options.
func DefaultOptions() Options {
	return Options{}
}

// BuildInfo contains metadata about one generation pass.
type BuildInfo struct {
	// BoardName is the struct name the artifact declares.
	BoardName string

	// ControlCount is the size of the merged analog array:
	// count(analog inputs) + count(CV inputs).
	ControlCount int

	// AliasCount totals the label bindings emitted across all kinds.
	AliasCount int

	// DisplayDrivers lists the derived driver-name identifiers, one
	// per display entry in document order.
	DisplayDrivers []string

	// DroppedCVOutputs counts CV-output entries beyond the two-channel
	// DAC limit that were silently truncated.
	DroppedCVOutputs int
}

// Generate produces the board-support header for a hardware
// description.
//
// Generation is a pure, single-pass transform: the same document and
// options always yield byte-identical text, and the description is
// never mutated. It does not fail — missing lists produce empty
// fragments and malformed entries propagate into the output for the
// downstream toolchain to diagnose.
func Generate(doc *desc.Description, opts Options) (string, BuildInfo) {
	k := newKinds(doc)

	name := opts.BoardName
	if name == "" {
		name = doc.Name
	}
	if name == "" {
		name = DefaultBoardName
	}

	w := newWriter()
	w.writeModule(k, name)

	drivers := make([]string, len(doc.Displays))
	for i, d := range doc.Displays {
		drivers[i] = driverName(d)
	}

	info := BuildInfo{
		BoardName:        name,
		ControlCount:     len(k.analog.entries),
		AliasCount:       k.aliasCount(),
		DisplayDrivers:   drivers,
		DroppedCVOutputs: max(0, len(doc.CVOutputs)-maxCVOutputs),
	}

	return w.String(), info
}

// aliasCount totals the label bindings the declaration region emits.
func (k *kinds) aliasCount() int {
	n := countAliases(k.analog.labels())
	n += countAliases(k.encoders.labels())
	n += countAliases(k.gateIn.labels())
	n += countAliases(k.leds.labels())
	n += countAliases(k.rgbLeds.labels())
	n += countAliases(k.switches.labels())
	return n
}
