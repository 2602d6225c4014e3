// Copyright 2025 The Boardgen Authors
// SPDX-License-Identifier: MIT

package cpp

import (
	"fmt"
	"strings"
)

// writer accumulates the generated header. It is the shared output
// surface all generators write their fragments to.
type writer struct {
	out strings.Builder

	// Current indentation level
	indent int
}

// newWriter creates an empty writer.
func newWriter() *writer {
	return &writer{}
}

// String returns the generated source.
func (w *writer) String() string {
	return w.out.String()
}

// writeModule assembles the complete artifact. The layout is fixed:
// includes, the board struct with the platform core handle first, the
// Init routine with platform bring-up first, then the per-tick
// routines. Kind fragments appear in the fixed composition order at
// every region.
func (w *writer) writeModule(k *kinds, boardName string) {
	// 1. Header includes
	w.writeLine(`#include "daisy_seed.h"`)
	for _, g := range k.ordered() {
		emit(g, phaseInclude, w)
	}
	w.writeLine("")

	// 2. Board struct declaration
	w.writeLine("struct %s {", boardName)
	w.pushIndent()
	w.writeLine("daisy::DaisySeed som;")
	for _, g := range k.ordered() {
		emit(g, phaseDeclare, w)
	}
	w.writeLine("")

	// 3. Bring-up routine
	w.writeLine("void Init(bool boost = true) {")
	w.pushIndent()
	w.writeLine("som.Init(boost);")
	for _, g := range k.ordered() {
		emit(g, phaseInit, w)
	}
	w.popIndent()
	w.writeLine("}")

	// 4. Per-tick routines. Illumination update is a separate routine
	// and is not part of ProcessAllControls.
	w.writeRoutine("ProcessAnalogControls", k.analog)
	w.writeRoutine("ProcessDigitalControls", k.encoders, k.switches)
	w.writeLine("")
	w.writeLine("void ProcessAllControls() {")
	w.pushIndent()
	w.writeLine("ProcessAnalogControls();")
	w.writeLine("ProcessDigitalControls();")
	w.popIndent()
	w.writeLine("}")
	w.writeRoutine("UpdateLeds", k.leds, k.rgbLeds)

	w.popIndent()
	w.writeLine("};")
}

// writeRoutine emits one per-tick routine body from the processing
// fragments of the given generators, in order. The routine shell is
// always emitted, even when every fragment is empty.
func (w *writer) writeRoutine(name string, gens ...generator) {
	w.writeLine("")
	w.writeLine("void %s() {", name)
	w.pushIndent()
	for _, g := range gens {
		emit(g, phaseProcess, w)
	}
	w.popIndent()
	w.writeLine("}")
}

// Output helpers

// writeLine writes a line with indentation and newline.
//
//nolint:goprintffuncname
func (w *writer) writeLine(format string, args ...any) {
	w.writeIndent()
	if len(args) == 0 {
		w.out.WriteString(format)
	} else {
		fmt.Fprintf(&w.out, format, args...)
	}
	w.out.WriteByte('\n')
}

// writeIndent writes the current indentation.
func (w *writer) writeIndent() {
	for i := 0; i < w.indent; i++ {
		w.out.WriteString("    ")
	}
}

// pushIndent increases indentation.
func (w *writer) pushIndent() {
	w.indent++
}

// popIndent decreases indentation.
func (w *writer) popIndent() {
	if w.indent > 0 {
		w.indent--
	}
}
