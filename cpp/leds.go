// Copyright 2025 The Boardgen Authors
// SPDX-License-Identifier: MIT

package cpp

import "github.com/boardgen/boardgen/desc"

const (
	ledArray    = "leds"
	rgbLedArray = "rgb_leds"
)

// ledGenerator emits single-color LEDs. Their processing fragment is
// invoked from the illumination-update routine, not the generic
// per-tick routines.
type ledGenerator struct {
	noop
	entries []desc.Led
}

func newLedGenerator(entries []desc.Led) *ledGenerator {
	return &ledGenerator{entries: entries}
}

func (g *ledGenerator) labels() [][]string {
	labels := make([][]string, len(g.entries))
	for i, e := range g.entries {
		labels[i] = e.Labels
	}
	return labels
}

func (g *ledGenerator) declare(w *writer) {
	if len(g.entries) == 0 {
		return
	}
	w.writeLine("daisy::Led %s[%d];", ledArray, len(g.entries))
	writeAliases(w, "daisy::Led", ledArray, g.labels())
}

func (g *ledGenerator) initialize(w *writer) {
	for i, e := range g.entries {
		w.writeLine("%s[%d].Init(som.GetPin(%d), %t);", ledArray, i, e.Pin, e.Invert)
	}
}

func (g *ledGenerator) process(w *writer) {
	for i := range g.entries {
		w.writeLine("%s[%d].Update();", ledArray, i)
	}
}

// rgbLedGenerator emits RGB LEDs, three pins per entry. Same routine
// placement as ledGenerator.
type rgbLedGenerator struct {
	noop
	entries []desc.RgbLed
}

func newRgbLedGenerator(entries []desc.RgbLed) *rgbLedGenerator {
	return &rgbLedGenerator{entries: entries}
}

func (g *rgbLedGenerator) labels() [][]string {
	labels := make([][]string, len(g.entries))
	for i, e := range g.entries {
		labels[i] = e.Labels
	}
	return labels
}

func (g *rgbLedGenerator) declare(w *writer) {
	if len(g.entries) == 0 {
		return
	}
	w.writeLine("daisy::RgbLed %s[%d];", rgbLedArray, len(g.entries))
	writeAliases(w, "daisy::RgbLed", rgbLedArray, g.labels())
}

func (g *rgbLedGenerator) initialize(w *writer) {
	for i, e := range g.entries {
		w.writeLine("%s[%d].Init(som.GetPin(%d), som.GetPin(%d), som.GetPin(%d), %t);",
			rgbLedArray, i, e.PinR, e.PinG, e.PinB, e.Invert)
	}
}

func (g *rgbLedGenerator) process(w *writer) {
	for i := range g.entries {
		w.writeLine("%s[%d].Update();", rgbLedArray, i)
	}
}
