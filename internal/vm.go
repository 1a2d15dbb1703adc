package internal

// Follows the CHIP-8 technical reference found at http://devernay.free.fr/hacks/chip8/C8TECH10.HTM

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/retroenv/retrogolib/log"
)

// RandomSource produces the values used by the RND instruction.
type RandomSource interface {
	Intn(n int) int
}

// C8VM is an emulated CHIP-8 VM
type C8VM struct {
	regV   [16]uint8 // 16 general purpose 8-bit registers
	regI   uint16    // 16-bit register that is generally used to store memory addresses
	pc     uint16    // Program counter
	stack  callStack // 16 levels of return addresses and the stack pointer
	memory memory    // 4 KB global memory

	framebuffer *Framebuffer
	timers      *Timers
	keypad      *Keypad

	logger *log.Logger
	random RandomSource
	clock  Clock
	trace  bool // log every executed instruction at debug level
}

// Option configures a C8VM.
type Option func(vm *C8VM)

// WithLogger sets the logger used to report unknown opcodes and traces.
func WithLogger(logger *log.Logger) Option {
	return func(vm *C8VM) {
		vm.logger = logger
	}
}

// WithClock sets the time source that drives the delay and sound timers.
func WithClock(clock Clock) Option {
	return func(vm *C8VM) {
		vm.clock = clock
	}
}

// WithRandom sets the source of the RND instruction.
func WithRandom(random RandomSource) Option {
	return func(vm *C8VM) {
		vm.random = random
	}
}

// WithTrace enables logging of every executed instruction.
func WithTrace(trace bool) Option {
	return func(vm *C8VM) {
		vm.trace = trace
	}
}

// NewC8VM creates a new instance of an emulated CHIP-8 VM with the fontset
// loaded at address 0x000 and the program counter at 0x200.
func NewC8VM(options ...Option) *C8VM {
	vm := &C8VM{
		pc:          pcStartAddr,
		framebuffer: NewFramebuffer(),
		keypad:      NewKeypad(),
	}
	for _, option := range options {
		option(vm)
	}

	if vm.logger == nil {
		vm.logger = log.NewWithConfig(log.DefaultConfig())
	}
	if vm.random == nil {
		vm.random = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if vm.clock == nil {
		vm.clock = SystemClock{}
	}
	vm.timers = NewTimers(vm.clock)

	copy(vm.memory.cells[:], fontset[:])
	return vm
}

// LoadROM copies a program into the VM's memory at 0x200. A program that
// does not fit into the remaining memory is rejected and memory is left
// unchanged.
func (vm *C8VM) LoadROM(data []byte) error {
	if len(data) > MaxProgramSize {
		return fmt.Errorf("loading %d bytes, maximum is %d: %w", len(data), MaxProgramSize, ErrROMTooLarge)
	}
	return vm.memory.load(pcStartAddr, data)
}

// Cycle fetches the opcode at the program counter, executes it and updates
// the timers. The returned error is fatal, the VM state is undefined after it.
func (vm *C8VM) Cycle() error {
	opcode, err := vm.memory.word(vm.pc)
	if err != nil {
		return fmt.Errorf("fetching opcode: %w", err)
	}
	if err := vm.RunOpcode(opcode); err != nil {
		return err
	}
	vm.timers.Update()
	return nil
}

// RunFrame runs the given number of cycles, stopping at the first error.
func (vm *C8VM) RunFrame(cycles int) error {
	for i := 0; i < cycles; i++ {
		if err := vm.Cycle(); err != nil {
			return err
		}
	}
	return nil
}

// RunOpcode decodes and executes a single opcode and advances the program
// counter by the amount the instruction requires.
func (vm *C8VM) RunOpcode(opcode uint16) error {
	ins := Decode(opcode)

	if vm.trace {
		vm.logger.Debug("Executing instruction",
			log.String("pc", fmt.Sprintf("0x%03X", vm.pc)),
			log.String("opcode", fmt.Sprintf("%04X", opcode)),
			log.String("instruction", ins.String()))
	}

	delta, err := vm.execute(ins)
	if err != nil {
		return fmt.Errorf("executing %04X (%s) at 0x%03X: %w", opcode, ins, vm.pc, err)
	}
	vm.pc += delta
	return nil
}

// PC returns the program counter.
func (vm *C8VM) PC() uint16 {
	return vm.pc
}

// SP returns the stack pointer, the number of active subroutine calls.
func (vm *C8VM) SP() uint8 {
	return vm.stack.sp
}

// I returns the index register.
func (vm *C8VM) I() uint16 {
	return vm.regI
}

// V returns the general purpose register Vx. Only the low nibble of x is used.
func (vm *C8VM) V(x uint8) uint8 {
	return vm.regV[x&0xF]
}

// Memory returns the byte at addr.
func (vm *C8VM) Memory(addr uint16) (uint8, error) {
	return vm.memory.read(addr)
}

// Framebuffer returns the display of the VM.
func (vm *C8VM) Framebuffer() *Framebuffer {
	return vm.framebuffer
}

// Keypad returns the keypad of the VM.
func (vm *C8VM) Keypad() *Keypad {
	return vm.keypad
}

// Timers returns the delay and sound timers of the VM.
func (vm *C8VM) Timers() *Timers {
	return vm.timers
}
