// Copyright 2025 The Boardgen Authors
// SPDX-License-Identifier: MIT

package cpp

import "github.com/boardgen/boardgen/desc"

const (
	encoderArray = "encoders"
	encoderBase  = "encoder"
)

// encoderGenerator emits rotary encoders: the array, label aliases and
// a convenience reference to slot 0 named through the shared naming
// convention.
type encoderGenerator struct {
	noop
	entries []desc.Encoder
}

func newEncoderGenerator(entries []desc.Encoder) *encoderGenerator {
	return &encoderGenerator{entries: entries}
}

func (g *encoderGenerator) labels() [][]string {
	labels := make([][]string, len(g.entries))
	for i, e := range g.entries {
		labels[i] = e.Labels
	}
	return labels
}

func (g *encoderGenerator) declare(w *writer) {
	if len(g.entries) == 0 {
		return
	}
	w.writeLine("daisy::Encoder %s[%d];", encoderArray, len(g.entries))
	w.writeLine("daisy::Encoder& %s = %s[0];", suffixed(encoderBase, 0), encoderArray)
	writeAliases(w, "daisy::Encoder", encoderArray, g.labels())
}

func (g *encoderGenerator) initialize(w *writer) {
	for i, e := range g.entries {
		w.writeLine("%s[%d].Init(som.GetPin(%d), som.GetPin(%d), som.GetPin(%d), som.AudioCallbackRate());",
			encoderArray, i, e.PinA, e.PinB, e.PinClick)
	}
}

func (g *encoderGenerator) process(w *writer) {
	for i := range g.entries {
		w.writeLine("%s[%d].Debounce();", encoderArray, i)
	}
}
