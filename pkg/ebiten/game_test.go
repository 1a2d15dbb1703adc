package ebiten

import (
	"testing"

	"github.com/mnafees/c8vm/internal"
	"github.com/mnafees/c8vm/pkg/tone"
	"github.com/retroenv/retrogolib/assert"
)

func TestKeymapCoversKeypad(t *testing.T) {
	seen := map[uint8]bool{}
	for _, code := range keymap {
		key, ok := internal.MapKey(code)
		assert.True(t, ok)
		seen[key] = true
	}
	assert.Equal(t, internal.NumKeys, len(seen))
}

func TestRenderPixels(t *testing.T) {
	fb := internal.NewFramebuffer()
	fb.Draw(1, 0, []byte{0x80})

	dst := make([]byte, internal.ScreenWidth*internal.ScreenHeight*4)
	renderPixels(dst, fb)

	assert.Equal(t, []byte{screenColor.R, screenColor.G, screenColor.B, 0xFF}, dst[0:4])
	assert.Equal(t, []byte{spriteColor.R, spriteColor.G, spriteColor.B, 0xFF}, dst[4:8])
	last := len(dst) - 4
	assert.Equal(t, []byte{screenColor.R, screenColor.G, screenColor.B, 0xFF}, dst[last:])
}

func TestBeeperReadSilence(t *testing.T) {
	b := &beeper{square: tone.NewSquare(8, 2, 0.5)}
	p := []byte{1, 2, 3, 4}

	n, err := b.Read(p)
	assert.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, []byte{0, 0, 0, 0}, p)

	b.SetPlaying(true)
	_, err = b.Read(p)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0x3F}, p) // 0.5 as float32 LE
}
