// Copyright 2025 The Boardgen Authors
// SPDX-License-Identifier: MIT

package cpp

import "github.com/boardgen/boardgen/desc"

const switchArray = "switches"

// switchGenerator emits panel switches. The type, polarity and pull
// attributes are HAL enum member names and pass through verbatim; an
// unknown name is a compile error in the artifact, not here.
type switchGenerator struct {
	noop
	entries []desc.Switch
}

func newSwitchGenerator(entries []desc.Switch) *switchGenerator {
	return &switchGenerator{entries: entries}
}

func (g *switchGenerator) labels() [][]string {
	labels := make([][]string, len(g.entries))
	for i, e := range g.entries {
		labels[i] = e.Labels
	}
	return labels
}

func (g *switchGenerator) declare(w *writer) {
	if len(g.entries) == 0 {
		return
	}
	w.writeLine("daisy::Switch %s[%d];", switchArray, len(g.entries))
	writeAliases(w, "daisy::Switch", switchArray, g.labels())
}

func (g *switchGenerator) initialize(w *writer) {
	for i, e := range g.entries {
		w.writeLine("%s[%d].Init(som.GetPin(%d), som.AudioCallbackRate(), daisy::Switch::%s, daisy::Switch::%s, daisy::Switch::%s);",
			switchArray, i, e.Pin, e.Type, e.Polarity, e.Pull)
	}
}

func (g *switchGenerator) process(w *writer) {
	for i := range g.entries {
		w.writeLine("%s[%d].Debounce();", switchArray, i)
	}
}
