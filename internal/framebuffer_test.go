package internal

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

var spriteZero = []byte{0xF0, 0x90, 0x90, 0x90, 0xF0}

func TestDraw(t *testing.T) {
	fb := NewFramebuffer()

	assert.False(t, fb.Draw(2, 5, spriteZero))
	// test collision
	assert.True(t, fb.Draw(5, 5, spriteZero))

	// columns 2..4 belong to the first sprite only, 5 is set by both
	row := func(y int) []bool {
		return []bool{fb.Pixel(2, y), fb.Pixel(3, y), fb.Pixel(4, y), fb.Pixel(5, y),
			fb.Pixel(6, y), fb.Pixel(7, y), fb.Pixel(8, y)}
	}
	assert.Equal(t, []bool{true, true, true, false, true, true, true}, row(5))
	assert.Equal(t, []bool{true, false, false, false, false, false, true}, row(7))
	assert.Equal(t, []bool{true, true, true, false, true, true, true}, row(9))
}

func TestDrawTwiceRestoresDisplay(t *testing.T) {
	fb := NewFramebuffer()
	fb.Draw(10, 10, []byte{0xFF})
	before := fb.Snapshot()

	assert.False(t, fb.Draw(20, 12, spriteZero))
	assert.True(t, fb.Draw(20, 12, spriteZero))
	assert.Equal(t, before, fb.Snapshot())
}

func TestDrawWrapAround(t *testing.T) {
	fb := NewFramebuffer()

	assert.False(t, fb.Draw(63, 31, spriteZero))

	assert.True(t, fb.Pixel(63, 31))
	assert.True(t, fb.Pixel(0, 31))
	assert.True(t, fb.Pixel(2, 31))
	assert.False(t, fb.Pixel(3, 31))
	assert.True(t, fb.Pixel(63, 0))
	assert.True(t, fb.Pixel(2, 0))
	assert.False(t, fb.Pixel(0, 0))
	assert.True(t, fb.Pixel(0, 3))
}

func TestDrawFullWidthRowWraps(t *testing.T) {
	fb := NewFramebuffer()
	fb.Draw(63, 31, []byte{0xFF})

	for x := 0; x < 7; x++ {
		assert.True(t, fb.Pixel(x, 31))
	}
	assert.True(t, fb.Pixel(63, 31))
	assert.False(t, fb.Pixel(7, 31))
}

func TestDrawEmptySprite(t *testing.T) {
	fb := NewFramebuffer()
	fb.ResetChanged()

	assert.False(t, fb.Draw(0, 0, nil))
	assert.True(t, fb.Changed())
}

func TestClear(t *testing.T) {
	fb := NewFramebuffer()
	fb.Draw(0, 0, []byte{0x80})
	fb.ResetChanged()

	fb.Clear()
	assert.False(t, fb.Pixel(0, 0))
	assert.True(t, fb.Changed())
}

func TestChangedFlag(t *testing.T) {
	fb := NewFramebuffer()
	assert.True(t, fb.Changed())

	fb.ResetChanged()
	assert.False(t, fb.Changed())

	fb.Draw(1, 1, []byte{0x01})
	assert.True(t, fb.Changed())
}

func TestPixelWrapsCoordinates(t *testing.T) {
	fb := NewFramebuffer()
	fb.Draw(0, 0, []byte{0x80})

	assert.True(t, fb.Pixel(64, 32))
	assert.True(t, fb.Pixel(-64, -32))
	assert.False(t, fb.Pixel(-1, 0))
}
