package internal

import "fmt"

// Op identifies a decoded CHIP-8 instruction.
type Op uint8

// CHIP-8 instructions, named after the mnemonics of the CHIP-8 technical reference.
const (
	OpUnknown  Op = iota
	OpSys         // 0nnn
	OpCls         // 00E0
	OpRet         // 00EE
	OpJp          // 1nnn
	OpCall        // 2nnn
	OpSeByte      // 3xkk
	OpSneByte     // 4xkk
	OpSeReg       // 5xy0
	OpLdByte      // 6xkk
	OpAddByte     // 7xkk
	OpLdReg       // 8xy0
	OpOr          // 8xy1
	OpAnd         // 8xy2
	OpXor         // 8xy3
	OpAddReg      // 8xy4
	OpSub         // 8xy5
	OpShr         // 8xy6
	OpSubn        // 8xy7
	OpShlOdd      // 8xy8, non-standard extension
	OpShl         // 8xyE
	OpSneReg      // 9xy0
	OpLdI         // Annn
	OpJpV0        // Bnnn
	OpRnd         // Cxkk
	OpDrw         // Dxyn
	OpSkp         // Ex9E
	OpSknp        // ExA1
	OpLdVxDT      // Fx07
	OpLdVxK       // Fx0A
	OpLdDTVx      // Fx15
	OpLdSTVx      // Fx18
	OpAddI        // Fx1E
	OpLdF         // Fx29
	OpLdB         // Fx33
	OpLdIVx       // Fx55
	OpLdVxI       // Fx65
)

// Instruction is a decoded opcode together with its operand fields.
type Instruction struct {
	Opcode uint16
	Op     Op
	X      uint8  // the lower 4 bits of the high byte of the instruction
	Y      uint8  // the upper 4 bits of the low byte of the instruction
	N      uint8  // the lowest 4 bits of the instruction
	KK     uint8  // the lowest 8 bits of the instruction
	NNN    uint16 // the lowest 12 bits of the instruction
}

// Decode splits an opcode into its nibbles and operand fields and identifies
// the instruction. Opcodes that match no instruction decode to OpUnknown.
func Decode(opcode uint16) Instruction {
	ins := Instruction{
		Opcode: opcode,
		X:      uint8(opcode>>8) & 0x0F,
		Y:      uint8(opcode>>4) & 0x0F,
		N:      uint8(opcode) & 0x0F,
		KK:     uint8(opcode),
		NNN:    opcode & 0x0FFF,
	}
	ins.Op = decodeOp(opcode, ins.N, ins.KK)
	return ins
}

func decodeOp(opcode uint16, n, kk uint8) Op {
	switch opcode & 0xF000 { // Compare against the first 4 bits of the instruction only
	case 0x0000:
		switch opcode {
		case 0x00E0:
			return OpCls
		case 0x00EE:
			return OpRet
		}
		return OpSys
	case 0x1000:
		return OpJp
	case 0x2000:
		return OpCall
	case 0x3000:
		return OpSeByte
	case 0x4000:
		return OpSneByte
	case 0x5000:
		if n == 0x0 {
			return OpSeReg
		}
	case 0x6000:
		return OpLdByte
	case 0x7000:
		return OpAddByte
	case 0x8000:
		switch n {
		case 0x0:
			return OpLdReg
		case 0x1:
			return OpOr
		case 0x2:
			return OpAnd
		case 0x3:
			return OpXor
		case 0x4:
			return OpAddReg
		case 0x5:
			return OpSub
		case 0x6:
			return OpShr
		case 0x7:
			return OpSubn
		case 0x8:
			return OpShlOdd
		case 0xE:
			return OpShl
		}
	case 0x9000:
		if n == 0x0 {
			return OpSneReg
		}
	case 0xA000:
		return OpLdI
	case 0xB000:
		return OpJpV0
	case 0xC000:
		return OpRnd
	case 0xD000:
		return OpDrw
	case 0xE000:
		switch kk {
		case 0x9E:
			return OpSkp
		case 0xA1:
			return OpSknp
		}
	case 0xF000:
		switch kk {
		case 0x07:
			return OpLdVxDT
		case 0x0A:
			return OpLdVxK
		case 0x15:
			return OpLdDTVx
		case 0x18:
			return OpLdSTVx
		case 0x1E:
			return OpAddI
		case 0x29:
			return OpLdF
		case 0x33:
			return OpLdB
		case 0x55:
			return OpLdIVx
		case 0x65:
			return OpLdVxI
		}
	}
	return OpUnknown
}

// String returns the instruction in assembler notation.
func (ins Instruction) String() string {
	switch ins.Op {
	case OpSys:
		return fmt.Sprintf("SYS 0x%03X", ins.NNN)
	case OpCls:
		return "CLS"
	case OpRet:
		return "RET"
	case OpJp:
		return fmt.Sprintf("JP 0x%03X", ins.NNN)
	case OpCall:
		return fmt.Sprintf("CALL 0x%03X", ins.NNN)
	case OpSeByte:
		return fmt.Sprintf("SE V%X, 0x%02X", ins.X, ins.KK)
	case OpSneByte:
		return fmt.Sprintf("SNE V%X, 0x%02X", ins.X, ins.KK)
	case OpSeReg:
		return fmt.Sprintf("SE V%X, V%X", ins.X, ins.Y)
	case OpLdByte:
		return fmt.Sprintf("LD V%X, 0x%02X", ins.X, ins.KK)
	case OpAddByte:
		return fmt.Sprintf("ADD V%X, 0x%02X", ins.X, ins.KK)
	case OpLdReg:
		return fmt.Sprintf("LD V%X, V%X", ins.X, ins.Y)
	case OpOr:
		return fmt.Sprintf("OR V%X, V%X", ins.X, ins.Y)
	case OpAnd:
		return fmt.Sprintf("AND V%X, V%X", ins.X, ins.Y)
	case OpXor:
		return fmt.Sprintf("XOR V%X, V%X", ins.X, ins.Y)
	case OpAddReg:
		return fmt.Sprintf("ADD V%X, V%X", ins.X, ins.Y)
	case OpSub:
		return fmt.Sprintf("SUB V%X, V%X", ins.X, ins.Y)
	case OpShr:
		return fmt.Sprintf("SHR V%X", ins.X)
	case OpSubn:
		return fmt.Sprintf("SUBN V%X, V%X", ins.X, ins.Y)
	case OpShlOdd:
		return fmt.Sprintf("SHLO V%X", ins.X)
	case OpShl:
		return fmt.Sprintf("SHL V%X", ins.X)
	case OpSneReg:
		return fmt.Sprintf("SNE V%X, V%X", ins.X, ins.Y)
	case OpLdI:
		return fmt.Sprintf("LD I, 0x%03X", ins.NNN)
	case OpJpV0:
		return fmt.Sprintf("JP V0, 0x%03X", ins.NNN)
	case OpRnd:
		return fmt.Sprintf("RND V%X, 0x%02X", ins.X, ins.KK)
	case OpDrw:
		return fmt.Sprintf("DRW V%X, V%X, %d", ins.X, ins.Y, ins.N)
	case OpSkp:
		return fmt.Sprintf("SKP V%X", ins.X)
	case OpSknp:
		return fmt.Sprintf("SKNP V%X", ins.X)
	case OpLdVxDT:
		return fmt.Sprintf("LD V%X, DT", ins.X)
	case OpLdVxK:
		return fmt.Sprintf("LD V%X, K", ins.X)
	case OpLdDTVx:
		return fmt.Sprintf("LD DT, V%X", ins.X)
	case OpLdSTVx:
		return fmt.Sprintf("LD ST, V%X", ins.X)
	case OpAddI:
		return fmt.Sprintf("ADD I, V%X", ins.X)
	case OpLdF:
		return fmt.Sprintf("LD F, V%X", ins.X)
	case OpLdB:
		return fmt.Sprintf("LD B, V%X", ins.X)
	case OpLdIVx:
		return fmt.Sprintf("LD [I], V%X", ins.X)
	case OpLdVxI:
		return fmt.Sprintf("LD V%X, [I]", ins.X)
	default:
		return fmt.Sprintf("DW 0x%04X", ins.Opcode)
	}
}
