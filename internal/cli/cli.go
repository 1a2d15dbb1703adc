// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"

	"github.com/mnafees/c8vm/internal/options"
)

// ParseFlags parses the command line arguments of a frontend named name.
func ParseFlags(name string, args []string) (options.Program, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	if err := flags.Parse(args); err != nil {
		return opts, &UsageError{name: name, flags: flags, msg: err.Error()}
	}
	positional := flags.Args()
	if len(positional) != 1 {
		return opts, &UsageError{name: name, flags: flags, msg: "expected exactly one CHIP-8 program"}
	}
	opts.Input = positional[0]

	if err := validateOptions(opts); err != nil {
		return opts, err
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	name  string
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage and the flag defaults.
func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: %s [options] <CHIP-8 program>\n\n", e.name)
	e.flags.PrintDefaults()
	fmt.Println()
}

func validateOptions(opts options.Program) error {
	if opts.Scale < 1 {
		return fmt.Errorf("invalid scale %d, must be at least 1", opts.Scale)
	}
	if opts.Cycles < 1 {
		return fmt.Errorf("invalid cycles per frame %d, must be at least 1", opts.Cycles)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.IntVar(&opts.Scale, "scale", options.DefaultScale, "size of a CHIP-8 pixel in screen pixels")
	flags.IntVar(&opts.Cycles, "cycles", options.DefaultCycles, "instructions to execute per 60 Hz frame")
	flags.BoolVar(&opts.Mute, "mute", false, "do not play a tone while the sound timer is active")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
