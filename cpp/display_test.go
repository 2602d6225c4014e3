// Copyright 2025 The Boardgen Authors
// SPDX-License-Identifier: MIT

package cpp

import (
	"strings"
	"testing"

	"github.com/boardgen/boardgen/desc"
)

// =============================================================================
// Driver-Name Derivation Tests
// =============================================================================

func TestDriverName(t *testing.T) {
	tests := []struct {
		name  string
		entry desc.Display
		want  string
	}{
		{
			"ssd130x i2c 128x64",
			desc.Display{Driver: "SSD130x", Transport: "I2c", Dimensions: "128x64"},
			"SSD130xI2c128x64Driver",
		},
		{
			"ssd130x spi 128x32",
			desc.Display{Driver: "SSD130x", Transport: "4WireSpi", Dimensions: "128x32"},
			"SSD130x4WireSpi128x32Driver",
		},
		{
			// No normalization: whatever the document says is what the
			// type selector becomes.
			"unnormalized fields",
			desc.Display{Driver: "ssd130X", Transport: "i2C", Dimensions: "64X32"},
			"ssd130Xi2C64X32Driver",
		},
		{
			"empty fields",
			desc.Display{},
			"Driver",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := driverName(tt.entry)
			if got != tt.want {
				t.Errorf("driverName() = %q, want %q", got, tt.want)
			}
			// Pure derivation: repeating it changes nothing.
			if again := driverName(tt.entry); again != got {
				t.Errorf("driverName() not idempotent: %q then %q", got, again)
			}
		})
	}
}

// =============================================================================
// Fragment Tests
// =============================================================================

func i2cDisplay() desc.Display {
	return desc.Display{
		Driver:     "SSD130x",
		Transport:  "I2c",
		Dimensions: "128x64",
		I2C: &desc.I2CTransport{
			Address:    60,
			Peripheral: "I2C_1",
			Speed:      "I2C_1MHZ",
			PinSCL:     8,
			PinSDA:     9,
		},
	}
}

func spiDisplay() desc.Display {
	return desc.Display{
		Driver:     "SSD130x",
		Transport:  "4WireSpi",
		Dimensions: "128x64",
		SPI:        &desc.SPITransport{PinDC: 9, PinReset: 30},
	}
}

func TestDisplay_NamingConvention(t *testing.T) {
	// First instance unsuffixed, second suffixed with its index.
	g := newDisplayGenerator([]desc.Display{i2cDisplay(), spiDisplay()})
	decl := fragment(g, phaseDeclare)

	if !strings.Contains(decl, "daisy::OledDisplay<daisy::SSD130xI2c128x64Driver> display;") {
		t.Errorf("first display declaration wrong:\n%s", decl)
	}
	if !strings.Contains(decl, "daisy::OledDisplay<daisy::SSD130x4WireSpi128x64Driver> display1;") {
		t.Errorf("second display declaration wrong:\n%s", decl)
	}
}

func TestDisplay_ConditionalInclude(t *testing.T) {
	tests := []struct {
		name    string
		entries []desc.Display
		want    string
	}{
		{"ssd130x family", []desc.Display{i2cDisplay()}, "#include \"dev/oled_ssd130x.h\"\n"},
		{"two ssd130x entries include once", []desc.Display{i2cDisplay(), spiDisplay()}, "#include \"dev/oled_ssd130x.h\"\n"},
		{"other family", []desc.Display{{Driver: "SH1106", Transport: "I2c", Dimensions: "128x64"}}, ""},
		{"no displays", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newDisplayGenerator(tt.entries)
			if got := fragment(g, phaseInclude); got != tt.want {
				t.Errorf("include fragment = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDisplay_I2CInit(t *testing.T) {
	g := newDisplayGenerator([]desc.Display{i2cDisplay()})
	init := fragment(g, phaseInit)

	for _, want := range []string{
		"daisy::OledDisplay<daisy::SSD130xI2c128x64Driver>::Config display_config;",
		"display_config.driver_config.transport_config.i2c_address = 60;",
		"display_config.driver_config.transport_config.i2c_config.periph = daisy::I2CHandle::Config::Peripheral::I2C_1;",
		"display_config.driver_config.transport_config.i2c_config.speed = daisy::I2CHandle::Config::Speed::I2C_1MHZ;",
		"display_config.driver_config.transport_config.i2c_config.pin_config.scl = som.GetPin(8);",
		"display_config.driver_config.transport_config.i2c_config.pin_config.sda = som.GetPin(9);",
		"display.Init(display_config);",
	} {
		if !strings.Contains(init, want) {
			t.Errorf("init fragment missing %q\n%s", want, init)
		}
	}
}

func TestDisplay_SPIInit(t *testing.T) {
	g := newDisplayGenerator([]desc.Display{spiDisplay()})
	init := fragment(g, phaseInit)

	for _, want := range []string{
		"daisy::OledDisplay<daisy::SSD130x4WireSpi128x64Driver>::Config display_config;",
		"display_config.driver_config.transport_config.pin_config.dc = som.GetPin(9);",
		"display_config.driver_config.transport_config.pin_config.reset = som.GetPin(30);",
		"display.Init(display_config);",
	} {
		if !strings.Contains(init, want) {
			t.Errorf("init fragment missing %q\n%s", want, init)
		}
	}
	if strings.Contains(init, "i2c") {
		t.Errorf("SPI display leaked I2C wiring:\n%s", init)
	}
}

func TestDisplay_SecondInstanceConfigName(t *testing.T) {
	g := newDisplayGenerator([]desc.Display{i2cDisplay(), spiDisplay()})
	init := fragment(g, phaseInit)

	if !strings.Contains(init, "display1_config.driver_config.transport_config.pin_config.dc = som.GetPin(9);") {
		t.Errorf("second display config wiring missing:\n%s", init)
	}
	if !strings.Contains(init, "display1.Init(display1_config);") {
		t.Errorf("second display init missing:\n%s", init)
	}
}

func TestDisplay_MissingTransportStillInits(t *testing.T) {
	// Malformed entry: no nested transport. The config value and the
	// Init call are still emitted; the unbound wiring is the C++
	// compiler's problem.
	g := newDisplayGenerator([]desc.Display{{Driver: "SSD130x", Transport: "I2c", Dimensions: "128x64"}})
	init := fragment(g, phaseInit)

	if !strings.Contains(init, "daisy::OledDisplay<daisy::SSD130xI2c128x64Driver>::Config display_config;") {
		t.Errorf("config declaration missing:\n%s", init)
	}
	if !strings.Contains(init, "display.Init(display_config);") {
		t.Errorf("init call missing:\n%s", init)
	}
	if strings.Contains(init, "GetPin") {
		t.Errorf("transportless display bound pins:\n%s", init)
	}
}

func TestDisplay_Empty(t *testing.T) {
	g := newDisplayGenerator(nil)
	for _, p := range phases {
		if got := fragment(g, p); got != "" {
			t.Errorf("empty display kind emitted %q at phase %s", got, p)
		}
	}
}
