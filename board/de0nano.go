// Copyright 2023 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package board

// DE0Nano returns the Terasic DE0-Nano: 50 MHz system clock, 8 user
// LEDs and 2 active low push buttons, the first of which serves as the
// design reset.
//
func DE0Nano() *Board {
	b := newBoard("de0nano", 50e6, "key", 0, true)
	b.addPins("key", 2)
	b.addPins("user_led", 8)
	return b
}
