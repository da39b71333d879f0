// Copyright 2023 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package board

// ArtyA7 returns the Digilent Arty A7: 100 MHz system clock, an active
// low cpu_reset button, 4 user LEDs, 4 RGB LEDs and one I2S transmit
// interface (Pmod, as wired in the audio example).
//
func ArtyA7() *Board {
	b := newBoard("arty_a7", 100e6, "cpu_reset", 0, true)
	b.addPins("cpu_reset", 1)
	b.addPins("user_led", 4)
	b.addRGB("rgb_led", 4)
	b.addI2S(1)
	b.addPins("i2s_tx_mclk", 1)
	return b
}
