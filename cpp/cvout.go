// Copyright 2025 The Boardgen Authors
// SPDX-License-Identifier: MIT

package cpp

import "github.com/boardgen/boardgen/desc"

// maxCVOutputs is the DAC channel count. Entries beyond it are dropped
// without error.
const maxCVOutputs = 2

// cvOutGenerator emits the DAC bring-up for CV outputs. There is no
// per-instance abstraction: the DAC is configured once, both channels,
// fixed bit depth, regardless of how the entries are wired. Only the
// presence of at least one entry matters.
type cvOutGenerator struct {
	noop
	entries []desc.CVOutput
}

func newCVOutGenerator(entries []desc.CVOutput) *cvOutGenerator {
	if len(entries) > maxCVOutputs {
		entries = entries[:maxCVOutputs]
	}
	return &cvOutGenerator{entries: entries}
}

func (g *cvOutGenerator) initialize(w *writer) {
	if len(g.entries) == 0 {
		return
	}
	w.writeLine("daisy::DacHandle::Config dac_config;")
	w.writeLine("dac_config.mode = daisy::DacHandle::Mode::POLLING;")
	w.writeLine("dac_config.bitdepth = daisy::DacHandle::BitDepth::BITS_12;")
	w.writeLine("dac_config.buff_state = daisy::DacHandle::BufferState::ENABLED;")
	w.writeLine("dac_config.chn = daisy::DacHandle::Channel::BOTH;")
	w.writeLine("som.dac.Init(dac_config);")
}
