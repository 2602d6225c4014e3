// Copyright 2025 The Boardgen Authors
// SPDX-License-Identifier: MIT

package cpp

import "github.com/boardgen/boardgen/desc"

// analogArray is the merged analog-control member name.
const analogArray = "controls"

// analogGenerator emits the merged analog kind. Panel analog inputs and
// CV inputs share one array and one index space; inputs occupy the
// leading slots, CV entries follow in document order.
type analogGenerator struct {
	noop
	entries []desc.AnalogControl
}

func newAnalogGenerator(inputs, cv []desc.AnalogControl) *analogGenerator {
	entries := make([]desc.AnalogControl, 0, len(inputs)+len(cv))
	entries = append(entries, inputs...)
	entries = append(entries, cv...)
	return &analogGenerator{entries: entries}
}

func (g *analogGenerator) labels() [][]string {
	labels := make([][]string, len(g.entries))
	for i, e := range g.entries {
		labels[i] = e.Labels
	}
	return labels
}

func (g *analogGenerator) declare(w *writer) {
	if len(g.entries) == 0 {
		return
	}
	w.writeLine("daisy::AnalogControl %s[%d];", analogArray, len(g.entries))
	writeAliases(w, "daisy::AnalogControl", analogArray, g.labels())
}

func (g *analogGenerator) initialize(w *writer) {
	if len(g.entries) == 0 {
		return
	}
	n := len(g.entries)

	// Channel configs first, the ADC is batch-initialized against all
	// of them at once.
	w.writeLine("daisy::AdcChannelConfig cfg[%d];", n)
	for i, e := range g.entries {
		w.writeLine("cfg[%d].InitSingle(som.GetPin(%d));", i, e.Pin)
	}
	w.writeLine("som.adc.Init(cfg, %d);", n)

	// Wrappers bind to their channel's data pointer.
	for i, e := range g.entries {
		w.writeLine("%s[%d].Init(som.adc.GetPtr(%d), som.AudioCallbackRate(), %t, %t);",
			analogArray, i, i, e.Flip, e.Invert)
	}

	// Sampling starts only after every wrapper is bound.
	w.writeLine("som.adc.Start();")
}

func (g *analogGenerator) process(w *writer) {
	for i := range g.entries {
		w.writeLine("%s[%d].Process();", analogArray, i)
	}
}
