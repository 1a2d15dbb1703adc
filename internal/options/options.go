// Package options contains the program options.
package options

// Default option values.
const (
	DefaultScale  = 10
	DefaultCycles = 10
)

// Program options of the emulator frontends.
type Program struct {
	Input string // ROM file to run

	Scale  int  // size of a CHIP-8 pixel in screen pixels
	Cycles int  // instructions executed per 60 Hz frame
	Mute   bool // do not play the sound timer tone
	Trace  bool // log every executed instruction, implies Debug
	Debug  bool
	Quiet  bool
}
