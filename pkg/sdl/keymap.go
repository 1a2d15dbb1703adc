package sdl

import "github.com/veandco/go-sdl2/sdl"

// keymap translates a scancode into the character at the same position of a
// QWERTY keyboard. Scancodes identify physical keys, so the CHIP-8 keypad
// keeps its shape on other layouts.
func keymap(code sdl.Scancode) (rune, bool) {
	switch code {
	case sdl.SCANCODE_1:
		return '1', true
	case sdl.SCANCODE_2:
		return '2', true
	case sdl.SCANCODE_3:
		return '3', true
	case sdl.SCANCODE_4:
		return '4', true
	case sdl.SCANCODE_Q:
		return 'q', true
	case sdl.SCANCODE_W:
		return 'w', true
	case sdl.SCANCODE_E:
		return 'e', true
	case sdl.SCANCODE_R:
		return 'r', true
	case sdl.SCANCODE_A:
		return 'a', true
	case sdl.SCANCODE_S:
		return 's', true
	case sdl.SCANCODE_D:
		return 'd', true
	case sdl.SCANCODE_F:
		return 'f', true
	case sdl.SCANCODE_Z:
		return 'z', true
	case sdl.SCANCODE_X:
		return 'x', true
	case sdl.SCANCODE_C:
		return 'c', true
	case sdl.SCANCODE_V:
		return 'v', true
	default:
		return 0, false
	}
}
