// Copyright 2025 The Boardgen Authors
// SPDX-License-Identifier: MIT

package cpp

// writeAliases emits one reference binding per label: entry order
// outer, label order inner. Collisions are not detected; a duplicate
// alias surfaces as a redefinition when the emitted header is compiled.
func writeAliases(w *writer, typeName, array string, labels [][]string) {
	for slot, entry := range labels {
		for _, label := range entry {
			w.writeLine("%s& %s = %s[%d];", typeName, label, array, slot)
		}
	}
}

// countAliases totals the labels across a kind's entries.
func countAliases(labels [][]string) int {
	n := 0
	for _, entry := range labels {
		n += len(entry)
	}
	return n
}
