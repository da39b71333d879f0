/*
Package blinky provides a small toolkit for modeling synchronous logic
in Go and running it deterministically: clock domains that drive clocked
components one explicit tick at a time, a counter based periodic toggler
(the classic LED blinker), a free running clock divider, and a simulator
that interleaves several clock domains in simulated-time order.

Time is discrete and explicit. A clocked component implements Ticker and
advances its state once per call to Tick; the reset level is sampled by
the owning Domain at the start of each tick and passed down, so reset
takes priority over normal counting within the same tick and no race
between reset and counting can exist.

Board pin inventories and complete designs built on these primitives
live in the board and top packages.
*/
package blinky
