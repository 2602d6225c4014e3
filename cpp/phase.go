// Copyright 2025 The Boardgen Authors
// SPDX-License-Identifier: MIT

package cpp

// phase identifies one of the four fixed artifact regions a generator
// can contribute a fragment to. The composition driver always visits
// phases in declaration order.
type phase int

const (
	phaseInclude phase = iota
	phaseDeclare
	phaseInit
	phaseProcess
)

func (p phase) String() string {
	switch p {
	case phaseInclude:
		return "include"
	case phaseDeclare:
		return "declare"
	case phaseInit:
		return "initialize"
	case phaseProcess:
		return "process"
	default:
		return "unknown"
	}
}
