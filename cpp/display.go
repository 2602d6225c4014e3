// Copyright 2025 The Boardgen Authors
// SPDX-License-Identifier: MIT

package cpp

import (
	"strings"

	"github.com/boardgen/boardgen/desc"
)

// displayBase is the base name for per-entry display variables.
const displayBase = "display"

// ssd130xFamily is the driver-family prefix whose device header must be
// included.
const ssd130xFamily = "SSD130x"

// driverName derives the concrete driver type selector for a display
// entry: driver, transport and dimension fields concatenated with the
// fixed Driver suffix, no normalization. The result must match the
// consuming type system exactly (e.g. SSD130xI2c128x64Driver). It is a
// pure function of the entry and is recomputed on every call; the
// derivation is never cached on the entry.
func driverName(d desc.Display) string {
	return d.Driver + d.Transport + d.Dimensions + "Driver"
}

// displayGenerator emits one typed display instance per entry. Unlike
// the array-backed kinds, each entry gets its own variable named
// through the shared naming convention.
type displayGenerator struct {
	noop
	entries []desc.Display
}

func newDisplayGenerator(entries []desc.Display) *displayGenerator {
	return &displayGenerator{entries: entries}
}

func (g *displayGenerator) include(w *writer) {
	for _, e := range g.entries {
		if strings.HasPrefix(e.Driver, ssd130xFamily) {
			w.writeLine(`#include "dev/oled_ssd130x.h"`)
			return
		}
	}
}

func (g *displayGenerator) declare(w *writer) {
	for i, e := range g.entries {
		w.writeLine("daisy::OledDisplay<daisy::%s> %s;", driverName(e), suffixed(displayBase, i))
	}
}

func (g *displayGenerator) initialize(w *writer) {
	for i, e := range g.entries {
		name := suffixed(displayBase, i)
		cfg := name + "_config"
		w.writeLine("daisy::OledDisplay<daisy::%s>::Config %s;", driverName(e), cfg)

		// Transport wiring. Four-wire serial binds the two control
		// pins; the two-wire bus binds address, peripheral and speed
		// selectors and the two bus pins. An entry with neither leaves
		// the config's transport section defaulted.
		switch {
		case e.SPI != nil:
			w.writeLine("%s.driver_config.transport_config.pin_config.dc = som.GetPin(%d);", cfg, e.SPI.PinDC)
			w.writeLine("%s.driver_config.transport_config.pin_config.reset = som.GetPin(%d);", cfg, e.SPI.PinReset)
		case e.I2C != nil:
			w.writeLine("%s.driver_config.transport_config.i2c_address = %d;", cfg, e.I2C.Address)
			w.writeLine("%s.driver_config.transport_config.i2c_config.periph = daisy::I2CHandle::Config::Peripheral::%s;", cfg, e.I2C.Peripheral)
			w.writeLine("%s.driver_config.transport_config.i2c_config.speed = daisy::I2CHandle::Config::Speed::%s;", cfg, e.I2C.Speed)
			w.writeLine("%s.driver_config.transport_config.i2c_config.pin_config.scl = som.GetPin(%d);", cfg, e.I2C.PinSCL)
			w.writeLine("%s.driver_config.transport_config.i2c_config.pin_config.sda = som.GetPin(%d);", cfg, e.I2C.PinSDA)
		}

		w.writeLine("%s.Init(%s);", name, cfg)
	}
}
