package internal

import "fmt"

// Memory layout constants
const (
	totalMemory = 0x1000
	pcStartAddr = 0x200
	stackDepth  = 16
)

// MaxProgramSize is the number of bytes available for a program, from 0x200
// to the end of the 4 KB memory.
const MaxProgramSize = totalMemory - pcStartAddr

// memory is the 4 KB address space. Every access from a decoded operand goes
// through it so that out of range addresses surface as ErrAddressOutOfRange.
type memory struct {
	cells [totalMemory]uint8
}

func (m *memory) read(addr uint16) (uint8, error) {
	if int(addr) >= totalMemory {
		return 0, fmt.Errorf("reading 0x%04X: %w", addr, ErrAddressOutOfRange)
	}
	return m.cells[addr], nil
}

// span returns the n bytes starting at addr. The returned slice aliases memory.
func (m *memory) span(addr uint16, n int) ([]uint8, error) {
	end := int(addr) + n
	if end > totalMemory {
		return nil, fmt.Errorf("accessing 0x%04X-0x%04X: %w", addr, end-1, ErrAddressOutOfRange)
	}
	return m.cells[addr:end], nil
}

// load copies data into memory at offset without partial writes.
func (m *memory) load(offset uint16, data []uint8) error {
	dst, err := m.span(offset, len(data))
	if err != nil {
		return err
	}
	copy(dst, data)
	return nil
}

// word returns the big-endian 16-bit value at addr.
func (m *memory) word(addr uint16) (uint16, error) {
	b, err := m.span(addr, 2)
	if err != nil {
		return 0, err
	}
	return uint16(b[0])<<8 | uint16(b[1]), nil
}

// callStack holds return addresses. sp is the number of entries in use,
// 0 meaning empty.
type callStack struct {
	entries [stackDepth]uint16
	sp      uint8
}

func (s *callStack) push(addr uint16) error {
	if int(s.sp) >= stackDepth {
		return fmt.Errorf("calling from 0x%04X with %d nested calls: %w", addr, s.sp, ErrStackOverflow)
	}
	s.entries[s.sp] = addr
	s.sp++
	return nil
}

func (s *callStack) pop() (uint16, error) {
	if s.sp == 0 {
		return 0, fmt.Errorf("returning with empty stack: %w", ErrStackUnderflow)
	}
	s.sp--
	return s.entries[s.sp], nil
}
