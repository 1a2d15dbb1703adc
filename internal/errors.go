package internal

import "errors"

// Errors reported by the VM. All of them are fatal for the running program.
var (
	ErrROMTooLarge       = errors.New("program size exceeds the maximum size")
	ErrAddressOutOfRange = errors.New("memory address out of range")
	ErrStackOverflow     = errors.New("stack overflow")
	ErrStackUnderflow    = errors.New("stack underflow")
)
