// Copyright 2025 The Boardgen Authors
// SPDX-License-Identifier: MIT

// Package cpp generates libDaisy board-support C++ headers from a
// hardware description.
//
// The backend is a single-pass, phase-indexed composition: every
// peripheral kind has one generator, each generator contributes one
// fragment per phase (include, declaration, initialization,
// processing), and the composition driver assembles the fragments in a
// fixed kind order into one artifact:
//
//   - header includes
//   - the board struct declaration
//   - the Init bring-up routine
//   - the per-tick processing routines
//
// # Basic Usage
//
//	header, info := cpp.Generate(doc, cpp.Options{
//	    BoardName: "FieldUnit",
//	})
//
// # Error Model
//
// Generation never fails. Empty or missing peripheral lists yield empty
// fragments; malformed entries (bad pins, unknown enum names, missing
// transport wiring) propagate verbatim into the emitted source and are
// diagnosed by the downstream C++ toolchain, not here. The one
// generation-time policy is the silent truncation of the CV-output list
// to the two-channel DAC hardware limit.
package cpp
