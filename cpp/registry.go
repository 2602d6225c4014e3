// Copyright 2025 The Boardgen Authors
// SPDX-License-Identifier: MIT

package cpp

import "github.com/boardgen/boardgen/desc"

// generator is the four-phase capability interface implemented by every
// peripheral kind. A generator with nothing to contribute for a phase
// writes nothing; it never errors and never emits partial syntax that
// would break composition.
type generator interface {
	include(w *writer)
	declare(w *writer)
	initialize(w *writer)
	process(w *writer)
}

// noop contributes empty fragments at every phase. Kind generators
// embed it and override only the phases they participate in; the
// reserved kinds (gate output, MIDI) use it unmodified.
type noop struct{}

func (noop) include(*writer)    {}
func (noop) declare(*writer)    {}
func (noop) initialize(*writer) {}
func (noop) process(*writer)    {}

// kinds holds the closed set of kind generators for one description.
// The processing routines address subsets by name; everything else
// iterates ordered().
type kinds struct {
	analog   *analogGenerator
	cvOut    *cvOutGenerator
	encoders *encoderGenerator
	gateIn   *gateInGenerator
	gateOut  gateOutGenerator
	leds     *ledGenerator
	midi     midiGenerator
	displays *displayGenerator
	rgbLeds  *rgbLedGenerator
	switches *switchGenerator
}

// newKinds builds the generator set for a description. Construction is
// the only place list contents are touched: the analog merge and the
// CV-output truncation happen here, once.
func newKinds(doc *desc.Description) *kinds {
	return &kinds{
		analog:   newAnalogGenerator(doc.AnalogInputs, doc.CVInputs),
		cvOut:    newCVOutGenerator(doc.CVOutputs),
		encoders: newEncoderGenerator(doc.Encoders),
		gateIn:   newGateInGenerator(doc.GateInputs),
		gateOut:  gateOutGenerator{},
		leds:     newLedGenerator(doc.Leds),
		midi:     midiGenerator{},
		displays: newDisplayGenerator(doc.Displays),
		rgbLeds:  newRgbLedGenerator(doc.RgbLeds),
		switches: newSwitchGenerator(doc.Switches),
	}
}

// ordered returns the generators in the fixed composition order used by
// the declaration and initialization regions.
func (k *kinds) ordered() []generator {
	return []generator{
		k.analog,
		k.cvOut,
		k.encoders,
		k.gateIn,
		k.gateOut,
		k.leds,
		k.midi,
		k.displays,
		k.rgbLeds,
		k.switches,
	}
}

// emit dispatches one generator for one phase. The composition driver
// routes every region loop through it.
func emit(g generator, p phase, w *writer) {
	switch p {
	case phaseInclude:
		g.include(w)
	case phaseDeclare:
		g.declare(w)
	case phaseInit:
		g.initialize(w)
	case phaseProcess:
		g.process(w)
	}
}
