// Copyright 2025 The Boardgen Authors
// SPDX-License-Identifier: MIT

package cpp

import (
	"strings"
	"testing"

	"github.com/boardgen/boardgen/desc"
)

func TestEncoder_Declare(t *testing.T) {
	g := newEncoderGenerator([]desc.Encoder{
		{PinA: 1, PinB: 2, PinClick: 3, Labels: []string{"nav"}},
		{PinA: 4, PinB: 5, PinClick: 6},
	})
	decl := fragment(g, phaseDeclare)

	if !strings.Contains(decl, "daisy::Encoder encoders[2];") {
		t.Errorf("declaration fragment = %q", decl)
	}
	// Convenience reference to slot 0, named through the shared
	// naming convention (first instance unsuffixed).
	if !strings.Contains(decl, "daisy::Encoder& encoder = encoders[0];") {
		t.Errorf("convenience reference missing: %q", decl)
	}
	if !strings.Contains(decl, "daisy::Encoder& nav = encoders[0];") {
		t.Errorf("label alias missing: %q", decl)
	}
}

func TestEncoder_Init(t *testing.T) {
	g := newEncoderGenerator([]desc.Encoder{{PinA: 1, PinB: 2, PinClick: 3}})
	init := fragment(g, phaseInit)

	want := "encoders[0].Init(som.GetPin(1), som.GetPin(2), som.GetPin(3), som.AudioCallbackRate());"
	if !strings.Contains(init, want) {
		t.Errorf("init fragment = %q, want %q", init, want)
	}
}

func TestEncoder_Process(t *testing.T) {
	g := newEncoderGenerator([]desc.Encoder{
		{PinA: 1, PinB: 2, PinClick: 3},
		{PinA: 4, PinB: 5, PinClick: 6},
	})
	proc := fragment(g, phaseProcess)

	if !strings.Contains(proc, "encoders[0].Debounce();") ||
		!strings.Contains(proc, "encoders[1].Debounce();") {
		t.Errorf("process fragment = %q", proc)
	}
}

func TestEncoder_Empty(t *testing.T) {
	g := newEncoderGenerator(nil)
	for _, p := range phases {
		if got := fragment(g, p); got != "" {
			t.Errorf("empty encoder kind emitted %q at phase %s", got, p)
		}
	}
}
