package internal

import "unicode"

// NumKeys is the number of keys on the CHIP-8 hexadecimal keypad.
const NumKeys = 16

// NoKey is returned by WaitForKeypress while no key has been pressed.
const NoKey = 0x10

// KeyEvent is a key-down or key-up of a physical keyboard key, identified by
// the character it produces on a QWERTY layout.
type KeyEvent struct {
	Code    rune
	Pressed bool
}

// Maps keys from a QWERTY keyboard to the keypad used by CHIP-8
// +--------+--------+--------+--------+
// | 1 -> 1 | 2 -> 2 | 3 -> 3 | 4 -> C |
// +--------+--------+--------+--------+
// | Q -> 4 | W -> 5 | E -> 6 | R -> D |
// +--------+--------+--------+--------+
// | A -> 7 | S -> 8 | D -> 9 | F -> E |
// +--------+--------+--------+--------+
// | Z -> A | X -> 0 | C -> B | V -> F |
// +--------+--------+--------+--------+
var keymap = map[rune]uint8{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

// MapKey returns the CHIP-8 key for a physical key. ok is false for keys
// that are not part of the layout.
func MapKey(code rune) (key uint8, ok bool) {
	key, ok = keymap[unicode.ToLower(code)]
	return key, ok
}

// Keypad holds the state of the 16 keys and the wait-for-keypress latch.
type Keypad struct {
	keys               [NumKeys]bool
	waitingForKeypress bool
	lastKeyPressed     uint8
}

// NewKeypad returns a keypad with all keys released.
func NewKeypad() *Keypad {
	return &Keypad{
		lastKeyPressed: NoKey,
	}
}

// HandleEvent updates the keypad from a physical key event. Keys outside of
// the layout are ignored.
func (k *Keypad) HandleEvent(event KeyEvent) {
	key, ok := MapKey(event.Code)
	if !ok {
		return
	}
	if event.Pressed {
		k.Press(key)
	} else {
		k.Release(key)
	}
}

// Press marks a CHIP-8 key as held down.
func (k *Keypad) Press(key uint8) {
	key &= 0xF
	k.keys[key] = true
	if k.waitingForKeypress {
		k.lastKeyPressed = key
	}
}

// Release marks a CHIP-8 key as released.
func (k *Keypad) Release(key uint8) {
	k.keys[key&0xF] = false
}

// IsPressed returns whether a CHIP-8 key is held down. Only the low nibble of
// key is used.
func (k *Keypad) IsPressed(key uint8) bool {
	return k.keys[key&0xF]
}

// WaitForKeypress returns NoKey if a key has not been pressed since the
// first call of the current wait, otherwise it returns the key that was
// pressed and ends the wait.
func (k *Keypad) WaitForKeypress() uint8 {
	if k.waitingForKeypress {
		if k.lastKeyPressed != NoKey {
			k.waitingForKeypress = false
		}
	} else {
		k.lastKeyPressed = NoKey
		k.waitingForKeypress = true
	}
	return k.lastKeyPressed
}

// Waiting returns whether a wait for a keypress is in progress.
func (k *Keypad) Waiting() bool {
	return k.waitingForKeypress
}
