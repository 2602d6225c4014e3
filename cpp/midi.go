// Copyright 2025 The Boardgen Authors
// SPDX-License-Identifier: MIT

package cpp

// midiGenerator is a reserved kind, like gateOutGenerator: documents
// may carry MIDI entries and the composition order keeps a slot for
// them, but no fragment is generated yet.
type midiGenerator struct {
	noop
}
