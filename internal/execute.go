package internal

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// Program counter deltas returned by the instruction handlers.
const (
	pcStay = 0 // the instruction set the program counter itself or has to be repeated
	pcNext = 2
	pcSkip = 4
)

// execute runs a decoded instruction and returns the amount to advance the
// program counter by.
func (vm *C8VM) execute(ins Instruction) (uint16, error) {
	x, y := ins.X, ins.Y

	switch ins.Op {
	case OpSys: // SYS nnn, machine code routines are not supported
		return pcNext, nil

	case OpCls: // CLS
		vm.framebuffer.Clear()
		return pcNext, nil

	case OpRet: // RET
		addr, err := vm.stack.pop()
		if err != nil {
			return 0, err
		}
		vm.pc = addr
		return pcStay, nil

	case OpJp: // JP nnn
		vm.pc = ins.NNN
		return pcStay, nil

	case OpCall: // CALL nnn
		// store next instruction address on stack
		if err := vm.stack.push(vm.pc + 2); err != nil {
			return 0, err
		}
		vm.pc = ins.NNN
		return pcStay, nil

	case OpSeByte: // SE Vx, kk
		return skipIf(vm.regV[x] == ins.KK), nil

	case OpSneByte: // SNE Vx, kk
		return skipIf(vm.regV[x] != ins.KK), nil

	case OpSeReg: // SE Vx, Vy
		return skipIf(vm.regV[x] == vm.regV[y]), nil

	case OpLdByte: // LD Vx, kk
		vm.regV[x] = ins.KK
		return pcNext, nil

	case OpAddByte: // ADD Vx, kk
		vm.regV[x] += ins.KK
		return pcNext, nil

	case OpLdReg: // LD Vx, Vy
		vm.regV[x] = vm.regV[y]
		return pcNext, nil

	case OpOr: // OR Vx, Vy
		vm.regV[x] |= vm.regV[y]
		return pcNext, nil

	case OpAnd: // AND Vx, Vy
		vm.regV[x] &= vm.regV[y]
		return pcNext, nil

	case OpXor: // XOR Vx, Vy
		vm.regV[x] ^= vm.regV[y]
		return pcNext, nil

	case OpAddReg: // ADD Vx, Vy
		sum := uint16(vm.regV[x]) + uint16(vm.regV[y])
		vm.regV[x] = uint8(sum)
		vm.regV[0xF] = flag(sum > 0xFF)
		return pcNext, nil

	case OpSub: // SUB Vx, Vy
		vx, vy := vm.regV[x], vm.regV[y]
		vm.regV[x] = vx - vy
		vm.regV[0xF] = flag(vx > vy)
		return pcNext, nil

	case OpShr: // SHR Vx
		vx := vm.regV[x]
		vm.regV[x] = vx >> 1
		vm.regV[0xF] = vx & 0x01
		return pcNext, nil

	case OpSubn: // SUBN Vx, Vy, the difference is stored in Vy
		vx, vy := vm.regV[x], vm.regV[y]
		vm.regV[y] = vy - vx
		vm.regV[0xF] = flag(vy > vx)
		return pcNext, nil

	case OpShlOdd: // same as SHR but left shift
		vx := vm.regV[x]
		vm.regV[x] = vx << 1
		vm.regV[0xF] = vx & 0x01
		return pcNext, nil

	case OpShl: // SHL Vx
		vx := vm.regV[x]
		vm.regV[x] = vx << 1
		vm.regV[0xF] = vx >> 7
		return pcNext, nil

	case OpSneReg: // SNE Vx, Vy
		return skipIf(vm.regV[x] != vm.regV[y]), nil

	case OpLdI: // LD I, nnn
		vm.regI = ins.NNN
		return pcNext, nil

	case OpJpV0: // JP V0, nnn
		vm.pc = ins.NNN + uint16(vm.regV[0])
		return pcStay, nil

	case OpRnd: // RND Vx, kk
		vm.regV[x] = uint8(vm.random.Intn(256)) & ins.KK
		return pcNext, nil

	case OpDrw: // DRW Vx, Vy, n
		sprite, err := vm.memory.span(vm.regI, int(ins.N))
		if err != nil {
			return 0, err
		}
		collision := vm.framebuffer.Draw(vm.regV[x], vm.regV[y], sprite)
		vm.regV[0xF] = flag(collision)
		return pcNext, nil

	case OpSkp: // SKP Vx
		return skipIf(vm.keypad.IsPressed(vm.regV[x])), nil

	case OpSknp: // SKNP Vx
		return skipIf(!vm.keypad.IsPressed(vm.regV[x])), nil

	case OpLdVxDT: // LD Vx, DT
		vm.regV[x] = vm.timers.Delay
		return pcNext, nil

	case OpLdVxK: // LD Vx, K
		key := vm.keypad.WaitForKeypress()
		if key == NoKey {
			return pcStay, nil
		}
		vm.regV[x] = key
		return pcNext, nil

	case OpLdDTVx: // LD DT, Vx
		vm.timers.Delay = vm.regV[x]
		return pcNext, nil

	case OpLdSTVx: // LD ST, Vx
		vm.timers.Sound = vm.regV[x]
		return pcNext, nil

	case OpAddI: // ADD I, Vx
		vm.regI += uint16(vm.regV[x])
		return pcNext, nil

	case OpLdF: // LD F, Vx
		vm.regI = uint16(vm.regV[x]) * fontBytesPerDigit
		return pcNext, nil

	case OpLdB: // LD B, Vx
		dst, err := vm.memory.span(vm.regI, 3)
		if err != nil {
			return 0, err
		}
		vx := vm.regV[x]
		dst[0] = vx / 100
		dst[1] = (vx / 10) % 10
		dst[2] = vx % 10
		return pcNext, nil

	case OpLdIVx: // LD [I], Vx
		dst, err := vm.memory.span(vm.regI, int(x)+1)
		if err != nil {
			return 0, err
		}
		copy(dst, vm.regV[:x+1])
		return pcNext, nil

	case OpLdVxI: // LD Vx, [I]
		src, err := vm.memory.span(vm.regI, int(x)+1)
		if err != nil {
			return 0, err
		}
		copy(vm.regV[:x+1], src)
		return pcNext, nil

	case OpUnknown:
		vm.logger.Warn("Unknown opcode",
			log.String("opcode", fmt.Sprintf("%04X", ins.Opcode)),
			log.String("pc", fmt.Sprintf("0x%03X", vm.pc)))
		return pcNext, nil

	default:
		return 0, fmt.Errorf("unhandled instruction %d", ins.Op)
	}
}

func skipIf(condition bool) uint16 {
	if condition {
		return pcSkip
	}
	return pcNext
}

// flag converts a condition into the 0 or 1 stored in VF.
func flag(condition bool) uint8 {
	if condition {
		return 1
	}
	return 0
}
