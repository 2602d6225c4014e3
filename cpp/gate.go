// Copyright 2025 The Boardgen Authors
// SPDX-License-Identifier: MIT

package cpp

import "github.com/boardgen/boardgen/desc"

const gateInArray = "gate_in"

// gateInGenerator emits gate/trigger inputs. The HAL takes a pin handle
// pointer at init, so the bring-up declares one transient handle and
// rebinds it sequentially per entry instead of keeping a handle array.
// Gate inputs have no per-tick processing; they are read on demand.
type gateInGenerator struct {
	noop
	entries []desc.GateIn
}

func newGateInGenerator(entries []desc.GateIn) *gateInGenerator {
	return &gateInGenerator{entries: entries}
}

func (g *gateInGenerator) labels() [][]string {
	labels := make([][]string, len(g.entries))
	for i, e := range g.entries {
		labels[i] = e.Labels
	}
	return labels
}

func (g *gateInGenerator) declare(w *writer) {
	if len(g.entries) == 0 {
		return
	}
	w.writeLine("daisy::GateIn %s[%d];", gateInArray, len(g.entries))
	writeAliases(w, "daisy::GateIn", gateInArray, g.labels())
}

func (g *gateInGenerator) initialize(w *writer) {
	if len(g.entries) == 0 {
		return
	}
	w.writeLine("dsy_gpio_pin gatein_pin;")
	for i, e := range g.entries {
		w.writeLine("gatein_pin = som.GetPin(%d);", e.Pin)
		w.writeLine("%s[%d].Init(&gatein_pin);", gateInArray, i)
	}
}

// gateOutGenerator is a reserved kind: schema-present, part of the
// fixed composition order, empty at every phase until the HAL grows
// gate-output support.
type gateOutGenerator struct {
	noop
}
