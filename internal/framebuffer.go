package internal

// Display dimensions
const (
	ScreenWidth  = 64
	ScreenHeight = 32
)

// Framebuffer is the 64 px x 32 px monochrome display.
type Framebuffer struct {
	pixels  [ScreenHeight][ScreenWidth]bool
	changed bool // set on every draw or clear, reset by the renderer
}

// NewFramebuffer returns a blank framebuffer marked as changed so that the
// first frame gets rendered.
func NewFramebuffer() *Framebuffer {
	return &Framebuffer{changed: true}
}

// Draw XORs sprite onto the display with its top left corner at (x, y).
// Each sprite byte is a row of 8 pixels, most significant bit first. Rows and
// columns that fall off the display wrap around to the opposite edge.
// It returns true if any set pixel was turned off.
func (fb *Framebuffer) Draw(x, y uint8, sprite []byte) bool {
	collision := false
	for row, b := range sprite {
		py := (int(y) + row) % ScreenHeight
		for col := 0; col < 8; col++ {
			if b&(0x80>>col) == 0 {
				continue
			}
			px := (int(x) + col) % ScreenWidth
			if fb.pixels[py][px] {
				collision = true
			}
			fb.pixels[py][px] = !fb.pixels[py][px]
		}
	}
	fb.changed = true
	return collision
}

// Clear turns all pixels off.
func (fb *Framebuffer) Clear() {
	fb.pixels = [ScreenHeight][ScreenWidth]bool{}
	fb.changed = true
}

// Pixel returns whether the pixel at column x, row y is set. Out of range
// coordinates wrap like sprite drawing does.
func (fb *Framebuffer) Pixel(x, y int) bool {
	x %= ScreenWidth
	if x < 0 {
		x += ScreenWidth
	}
	y %= ScreenHeight
	if y < 0 {
		y += ScreenHeight
	}
	return fb.pixels[y][x]
}

// Snapshot returns a copy of the pixel grid indexed as [row][column].
func (fb *Framebuffer) Snapshot() [ScreenHeight][ScreenWidth]bool {
	return fb.pixels
}

// Changed returns whether the display was modified since the last ResetChanged.
func (fb *Framebuffer) Changed() bool {
	return fb.changed
}

// ResetChanged marks the current display content as rendered.
func (fb *Framebuffer) ResetChanged() {
	fb.changed = false
}
