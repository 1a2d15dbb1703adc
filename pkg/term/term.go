// Package term implements a terminal frontend for the CHIP-8 VM. The display
// is drawn with half block characters, two CHIP-8 rows per text line.
package term

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mnafees/c8vm/internal"
	"github.com/mnafees/c8vm/internal/options"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

const (
	frameDuration = time.Second / internal.TimerFrequency

	// terminals only report key presses, a key counts as held for this long
	// after its last press or auto repeat
	holdDuration = 150 * time.Millisecond

	keyCtrlC  = 0x03
	keyEscape = 0x1B

	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[H"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
	bell        = "\a"
)

// Terminal runs the VM in a terminal in raw mode.
type Terminal struct {
	vm     *internal.C8VM
	opts   options.Program
	logger *log.Logger

	in  *os.File
	out io.Writer

	held     map[rune]time.Time // pressed keys and when they get released
	beeping  bool
	frameBuf strings.Builder
}

// New returns a terminal frontend reading keys from stdin and drawing to stdout.
func New(vm *internal.C8VM, opts options.Program, logger *log.Logger) *Terminal {
	return &Terminal{
		vm:     vm,
		opts:   opts,
		logger: logger,
		in:     os.Stdin,
		out:    os.Stdout,
		held:   make(map[rune]time.Time),
	}
}

// Run switches the terminal into raw mode and runs the VM until Escape or
// Ctrl-C is pressed, ctx is cancelled or the VM fails.
func (t *Terminal) Run(ctx context.Context) error {
	fd := int(t.in.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("standard input is not a terminal")
	}
	if width, height, err := term.GetSize(fd); err == nil &&
		(width < internal.ScreenWidth || height < internal.ScreenHeight/2) {
		t.logger.Warn("Terminal is smaller than the display",
			log.Int("width", width), log.Int("height", height))
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("setting terminal raw mode: %w", err)
	}
	defer func() {
		_, _ = io.WriteString(t.out, showCursor)
		_ = term.Restore(fd, oldState)
	}()
	_, _ = io.WriteString(t.out, clearScreen+hideCursor)

	input := make(chan byte, 16)
	go readInput(t.in, input)

	ticker := time.NewTicker(frameDuration)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case b, ok := <-input:
			if !ok {
				return nil
			}
			if !t.handleInput(b, time.Now()) {
				return nil
			}

		case now := <-ticker.C:
			if err := t.frame(now); err != nil {
				return err
			}
		}
	}
}

// readInput forwards bytes from r until it fails.
func readInput(r io.Reader, input chan<- byte) {
	defer close(input)
	reader := bufio.NewReader(r)
	for {
		b, err := reader.ReadByte()
		if err != nil {
			return
		}
		input <- b
	}
}

// handleInput presses the key for b. It returns false if b asks to quit.
func (t *Terminal) handleInput(b byte, now time.Time) bool {
	if b == keyCtrlC || b == keyEscape {
		return false
	}
	code := rune(b)
	if _, ok := internal.MapKey(code); !ok {
		return true
	}
	if _, held := t.held[code]; !held {
		t.vm.Keypad().HandleEvent(internal.KeyEvent{Code: code, Pressed: true})
	}
	t.held[code] = now.Add(holdDuration)
	return true
}

// releaseExpired releases keys that were not repeated within holdDuration.
func (t *Terminal) releaseExpired(now time.Time) {
	for code, deadline := range t.held {
		if now.Before(deadline) {
			continue
		}
		t.vm.Keypad().HandleEvent(internal.KeyEvent{Code: code, Pressed: false})
		delete(t.held, code)
	}
}

func (t *Terminal) frame(now time.Time) error {
	t.releaseExpired(now)

	if err := t.vm.RunFrame(t.opts.Cycles); err != nil {
		return err
	}

	fb := t.vm.Framebuffer()
	if fb.Changed() {
		t.frameBuf.Reset()
		t.frameBuf.WriteString(cursorHome)
		render(&t.frameBuf, fb)
		if _, err := io.WriteString(t.out, t.frameBuf.String()); err != nil {
			return fmt.Errorf("writing frame: %w", err)
		}
		fb.ResetChanged()
	}

	beeping := t.vm.Timers().Beeping()
	if beeping && !t.beeping && !t.opts.Mute {
		_, _ = io.WriteString(t.out, bell)
	}
	t.beeping = beeping
	return nil
}

// render writes the framebuffer as text, combining each pair of rows into
// one line of half blocks.
func render(sb *strings.Builder, fb *internal.Framebuffer) {
	pixels := fb.Snapshot()
	for y := 0; y < internal.ScreenHeight; y += 2 {
		for x := 0; x < internal.ScreenWidth; x++ {
			top, bottom := pixels[y][x], pixels[y+1][x]
			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("\r\n")
	}
}
