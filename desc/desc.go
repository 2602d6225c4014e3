// Copyright 2025 The Boardgen Authors
// SPDX-License-Identifier: MIT

package desc

import (
	"encoding/json"
	"fmt"
)

// AnalogControl describes one ADC-backed control: a panel potentiometer
// (analog input) or a CV input jack. Both shapes are identical; the
// backend merges the two lists into one array, inputs first.
type AnalogControl struct {
	// Pin is the ADC-capable pin the control is wired to.
	Pin int `json:"pin"`

	// Labels are user-chosen aliases bound to this control's slot.
	Labels []string `json:"labels,omitempty"`

	// Flip reverses the travel direction of the control.
	Flip bool `json:"flip,omitempty"`

	// Invert inverts the sampled value.
	Invert bool `json:"invert,omitempty"`
}

// CVOutput describes one CV output jack. The DAC behind these is a
// fixed two-channel peripheral; entries beyond the second are dropped
// during generation and per-entry attributes are not reflected in the
// output.
type CVOutput struct {
	Pin    int      `json:"pin"`
	Labels []string `json:"labels,omitempty"`
}

// Encoder describes one rotary encoder with an integrated click switch.
type Encoder struct {
	PinA     int      `json:"pin_a"`
	PinB     int      `json:"pin_b"`
	PinClick int      `json:"pin_click"`
	Labels   []string `json:"labels,omitempty"`
}

// Switch describes one panel switch or momentary button. Type, Polarity
// and Pull are HAL enum member names passed through verbatim.
type Switch struct {
	Pin      int      `json:"pin"`
	Labels   []string `json:"labels,omitempty"`
	Type     string   `json:"type,omitempty"`
	Polarity string   `json:"polarity,omitempty"`
	Pull     string   `json:"pull,omitempty"`
}

// Led describes one single-color LED.
type Led struct {
	Pin    int      `json:"pin"`
	Labels []string `json:"labels,omitempty"`
	Invert bool     `json:"invert,omitempty"`
}

// RgbLed describes one RGB LED driven on three pins.
type RgbLed struct {
	PinR   int      `json:"pin_r"`
	PinG   int      `json:"pin_g"`
	PinB   int      `json:"pin_b"`
	Labels []string `json:"labels,omitempty"`
	Invert bool     `json:"invert,omitempty"`
}

// GateIn describes one gate/trigger input jack.
type GateIn struct {
	Pin    int      `json:"pin"`
	Labels []string `json:"labels,omitempty"`
}

// GateOut describes one gate/trigger output jack. Schema-present but
// not yet generated: the backend keeps it as an explicit no-op so that
// documents carrying gate outputs compose unchanged.
type GateOut struct {
	Pin    int      `json:"pin"`
	Labels []string `json:"labels,omitempty"`
}

// MidiHandler describes one MIDI port. Reserved, like GateOut.
type MidiHandler struct {
	PinRx  int      `json:"pin_rx,omitempty"`
	PinTx  int      `json:"pin_tx,omitempty"`
	Labels []string `json:"labels,omitempty"`
}

// SPITransport is the four-wire-serial display transport: the bus pins
// are fixed by the peripheral, only data-select and reset are per-display.
type SPITransport struct {
	PinDC    int `json:"pin_dc"`
	PinReset int `json:"pin_reset"`
}

// I2CTransport is the two-wire-bus display transport.
type I2CTransport struct {
	Address    int    `json:"address"`
	Peripheral string `json:"peripheral"`
	Speed      string `json:"speed"`
	PinSCL     int    `json:"pin_scl"`
	PinSDA     int    `json:"pin_sda"`
}

// Display describes one OLED display. Driver, Transport and Dimensions
// select the concrete HAL driver type; exactly one of SPI or I2C carries
// the transport wiring. An entry with neither is malformed and produces
// a display with unbound transport pins.
type Display struct {
	Driver     string        `json:"driver"`
	Transport  string        `json:"transport"`
	Dimensions string        `json:"dimensions"`
	SPI        *SPITransport `json:"spi,omitempty"`
	I2C        *I2CTransport `json:"i2c,omitempty"`
}

// Description is one hardware-description document. Every list is
// ordered; list index is the addressing key across all generation
// phases. An absent list is equivalent to an empty one.
type Description struct {
	// Name optionally names the board. Options.BoardName overrides it.
	Name string `json:"name,omitempty"`

	AnalogInputs []AnalogControl `json:"analog_inputs,omitempty"`
	CVInputs     []AnalogControl `json:"cv_inputs,omitempty"`
	CVOutputs    []CVOutput      `json:"cv_outputs,omitempty"`
	Encoders     []Encoder       `json:"encoders,omitempty"`
	Switches     []Switch        `json:"switches,omitempty"`
	Leds         []Led           `json:"leds,omitempty"`
	RgbLeds      []RgbLed        `json:"rgb_leds,omitempty"`
	GateInputs   []GateIn        `json:"gate_inputs,omitempty"`
	GateOutputs  []GateOut       `json:"gate_outputs,omitempty"`
	Midi         []MidiHandler   `json:"midi,omitempty"`
	Displays     []Display       `json:"displays,omitempty"`
}

// Parse decodes a JSON hardware-description document.
//
// Unknown fields are ignored and no semantic checks are performed; the
// only error is malformed JSON.
func Parse(data []byte) (*Description, error) {
	var d Description
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("desc: %w", err)
	}
	return &d, nil
}
