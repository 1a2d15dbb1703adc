package sdl

import (
	"testing"

	"github.com/mnafees/c8vm/internal"
	"github.com/retroenv/retrogolib/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestKeymapCoversKeypad(t *testing.T) {
	scancodes := []sdl.Scancode{
		sdl.SCANCODE_1, sdl.SCANCODE_2, sdl.SCANCODE_3, sdl.SCANCODE_4,
		sdl.SCANCODE_Q, sdl.SCANCODE_W, sdl.SCANCODE_E, sdl.SCANCODE_R,
		sdl.SCANCODE_A, sdl.SCANCODE_S, sdl.SCANCODE_D, sdl.SCANCODE_F,
		sdl.SCANCODE_Z, sdl.SCANCODE_X, sdl.SCANCODE_C, sdl.SCANCODE_V,
	}

	seen := map[uint8]bool{}
	for _, scancode := range scancodes {
		code, ok := keymap(scancode)
		assert.True(t, ok)
		key, ok := internal.MapKey(code)
		assert.True(t, ok)
		seen[key] = true
	}
	assert.Equal(t, internal.NumKeys, len(seen))

	_, ok := keymap(sdl.SCANCODE_SPACE)
	assert.False(t, ok)
}
