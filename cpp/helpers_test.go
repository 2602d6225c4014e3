// Copyright 2025 The Boardgen Authors
// SPDX-License-Identifier: MIT

package cpp

// phases lists all phases in composition order, for tests that sweep a
// generator across every region.
var phases = [...]phase{phaseInclude, phaseDeclare, phaseInit, phaseProcess}

// fragment renders the text one generator contributes for one phase.
func fragment(g generator, p phase) string {
	w := newWriter()
	emit(g, p, w)
	return w.String()
}
