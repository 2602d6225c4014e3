// Copyright 2025 The Boardgen Authors
// SPDX-License-Identifier: MIT

package cpp

import "strconv"

// suffixed derives the stable instance identifier for a slot: the first
// instance keeps the bare base name, later instances append their
// index. Shared by the encoder convenience reference and the per-entry
// display variables.
func suffixed(base string, index int) string {
	if index == 0 {
		return base
	}
	return base + strconv.Itoa(index)
}
