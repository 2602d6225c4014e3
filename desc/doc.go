// Copyright 2025 The Boardgen Authors
// SPDX-License-Identifier: MIT

// Package desc defines the hardware-description document model.
//
// A Description enumerates the physical I/O peripherals of one embedded
// audio control surface: analog inputs, CV inputs and outputs, encoders,
// switches, LEDs, gates, MIDI and displays. It is the input to the cpp
// code-generation backend.
//
// Decoding is intentionally permissive. Parse reports malformed JSON and
// nothing else: pin numbers, enum names and label uniqueness are not
// checked here. A bad value propagates into the generated source and is
// caught by the downstream C++ toolchain.
package desc
