package term

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/mnafees/c8vm/internal"
	"github.com/mnafees/c8vm/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// stoppedClock keeps the VM timers from counting down.
type stoppedClock struct{}

func (stoppedClock) Now() time.Time {
	return time.Time{}
}

func newTestTerminal(t *testing.T) (*Terminal, *bytes.Buffer) {
	t.Helper()
	logger := log.NewTestLogger(t)
	vm := internal.NewC8VM(internal.WithLogger(logger), internal.WithClock(stoppedClock{}))
	out := &bytes.Buffer{}
	term := New(vm, options.Program{Cycles: 1}, logger)
	term.out = out
	return term, out
}

func TestRender(t *testing.T) {
	fb := internal.NewFramebuffer()
	fb.Draw(0, 0, []byte{0x80, 0xC0}) // (0,0) (0,1) (1,1)
	fb.Draw(2, 0, []byte{0x80})       // (2,0)

	var sb strings.Builder
	render(&sb, fb)

	lines := strings.Split(sb.String(), "\r\n")
	assert.Equal(t, internal.ScreenHeight/2+1, len(lines))
	assert.True(t, strings.HasPrefix(lines[0], "█▄▀ "))
	assert.Equal(t, strings.Repeat(" ", internal.ScreenWidth), lines[1])
}

func TestHandleInput(t *testing.T) {
	term, _ := newTestTerminal(t)
	keypad := term.vm.Keypad()
	now := time.Now()

	assert.True(t, term.handleInput('w', now))
	assert.True(t, keypad.IsPressed(0x5))

	// repeat extends the hold
	assert.True(t, term.handleInput('w', now.Add(100*time.Millisecond)))
	term.releaseExpired(now.Add(200 * time.Millisecond))
	assert.True(t, keypad.IsPressed(0x5))

	term.releaseExpired(now.Add(250 * time.Millisecond))
	assert.False(t, keypad.IsPressed(0x5))

	assert.True(t, term.handleInput('p', now))
	assert.False(t, term.handleInput(keyEscape, now))
	assert.False(t, term.handleInput(keyCtrlC, now))
}

func TestFrameDrawsAndBeeps(t *testing.T) {
	term, out := newTestTerminal(t)
	assert.NoError(t, term.vm.LoadROM([]byte{
		0x60, 0x05, // LD V0, 5
		0xF0, 0x18, // LD ST, V0
		0x00, 0xE0, // CLS
	}))

	assert.NoError(t, term.frame(time.Now()))
	assert.True(t, strings.HasPrefix(out.String(), cursorHome))
	assert.False(t, term.vm.Framebuffer().Changed())

	out.Reset()
	assert.NoError(t, term.frame(time.Now()))
	assert.Equal(t, bell, out.String())

	out.Reset()
	assert.NoError(t, term.frame(time.Now()))
	assert.True(t, strings.HasPrefix(out.String(), cursorHome))
	assert.False(t, strings.Contains(out.String(), bell))
}
