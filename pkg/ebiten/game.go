// Package ebiten implements an Ebiten frontend for the CHIP-8 VM.
package ebiten

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/mnafees/c8vm/internal"
	"github.com/mnafees/c8vm/internal/options"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/image/font/basicfont"
)

var (
	screenColor = color.RGBA{R: 0x1A, G: 0x23, B: 0x7E, A: 0xFF}
	spriteColor = color.RGBA{R: 0x9F, G: 0xA8, B: 0xDA, A: 0xFF}
)

// Game runs the VM inside the Ebiten game loop. Ebiten calls Update at 60
// ticks per second, each tick executes one frame worth of instructions.
type Game struct {
	vm     *internal.C8VM
	opts   options.Program
	logger *log.Logger

	display *ebiten.Image // 64x32 image of the framebuffer
	pixels  []byte        // RGBA backing data of display
	beeper  *beeper       // nil when muted or without audio device
	paused  bool
	keys    []ebiten.Key
}

// NewGame returns a game for the VM. Audio problems are logged and the game
// runs muted.
func NewGame(vm *internal.C8VM, opts options.Program, logger *log.Logger) *Game {
	g := &Game{
		vm:      vm,
		opts:    opts,
		logger:  logger,
		display: ebiten.NewImage(internal.ScreenWidth, internal.ScreenHeight),
		pixels:  make([]byte, internal.ScreenWidth*internal.ScreenHeight*4),
	}
	if !opts.Mute {
		b, err := newBeeper()
		if err != nil {
			logger.Warn("Audio disabled", log.Err(err))
		} else {
			g.beeper = b
		}
	}
	return g
}

// Run opens the window and blocks until it is closed or the VM fails.
func (g *Game) Run(title string) error {
	defer g.close()

	ebiten.SetWindowSize(internal.ScreenWidth*g.opts.Scale, internal.ScreenHeight*g.opts.Scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(internal.TimerFrequency)

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update handles input and executes the instructions of one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
		g.logger.Debug("Pause toggled", log.String("paused", fmt.Sprint(g.paused)))
	}
	g.handleKeys()

	if g.paused {
		g.setBeep(false)
		return nil
	}
	if err := g.vm.RunFrame(g.opts.Cycles); err != nil {
		return err
	}
	g.setBeep(g.vm.Timers().Beeping())
	return nil
}

func (g *Game) handleKeys() {
	keypad := g.vm.Keypad()

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, key := range g.keys {
		if code, ok := keymap[key]; ok {
			keypad.HandleEvent(internal.KeyEvent{Code: code, Pressed: true})
		}
	}

	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, key := range g.keys {
		if code, ok := keymap[key]; ok {
			keypad.HandleEvent(internal.KeyEvent{Code: code, Pressed: false})
		}
	}
}

// Draw renders the framebuffer scaled to the window.
func (g *Game) Draw(screen *ebiten.Image) {
	fb := g.vm.Framebuffer()
	if fb.Changed() {
		renderPixels(g.pixels, fb)
		g.display.WritePixels(g.pixels)
		fb.ResetChanged()
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.opts.Scale), float64(g.opts.Scale))
	screen.DrawImage(g.display, op)

	if g.paused {
		text.Draw(screen, "PAUSED", basicfont.Face7x13, 4, 14, color.White)
	}
}

// Layout keeps the logical screen at the scaled CHIP-8 resolution.
func (g *Game) Layout(_, _ int) (int, int) {
	return internal.ScreenWidth * g.opts.Scale, internal.ScreenHeight * g.opts.Scale
}

func (g *Game) setBeep(on bool) {
	if g.beeper != nil {
		g.beeper.SetPlaying(on)
	}
}

func (g *Game) close() {
	if g.beeper != nil {
		g.beeper.Close()
	}
}

// renderPixels converts the framebuffer into RGBA data.
func renderPixels(dst []byte, fb *internal.Framebuffer) {
	pixels := fb.Snapshot()
	i := 0
	for y := range pixels {
		for x := range pixels[y] {
			c := screenColor
			if pixels[y][x] {
				c = spriteColor
			}
			dst[i] = c.R
			dst[i+1] = c.G
			dst[i+2] = c.B
			dst[i+3] = c.A
			i += 4
		}
	}
}
