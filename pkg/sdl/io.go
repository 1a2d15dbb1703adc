package sdl

import (
	"fmt"
	"time"

	"github.com/mnafees/c8vm/internal"
	"github.com/mnafees/c8vm/internal/options"
	"github.com/mnafees/c8vm/pkg/tone"
	"github.com/retroenv/retrogolib/log"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	screenColor = 0x1A237E
	spriteColor = 0x9FA8DA

	frameDuration   = time.Second / internal.TimerFrequency
	samplesPerFrame = tone.DefaultSampleRate / internal.TimerFrequency
)

// IO is the input/output abstraction layer for the VM
type IO struct {
	window  *sdl.Window
	surface *sdl.Surface

	audio    sdl.AudioDeviceID // 0 if no audio device is open
	square   *tone.Square
	audioBuf []byte

	vm     *internal.C8VM
	opts   options.Program
	logger *log.Logger
}

// NewIO returns a new I/O instance for the SDL frontend
func NewIO(vm *internal.C8VM, opts options.Program, logger *log.Logger) *IO {
	return &IO{
		vm:     vm,
		opts:   opts,
		logger: logger,
	}
}

// SetupWindow initialises SDL and sets up the main SDL window. A missing
// audio device is not fatal, the emulator runs muted instead.
func (io *IO) SetupWindow(title string) error {
	if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
		return fmt.Errorf("initialising SDL: %w", err)
	}

	scale := int32(io.opts.Scale)
	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		internal.ScreenWidth*scale, internal.ScreenHeight*scale, sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	io.window = window
	io.surface, err = window.GetSurface()
	if err != nil {
		return fmt.Errorf("getting window surface: %w", err)
	}
	if err := io.surface.FillRect(nil, screenColor); err != nil {
		return fmt.Errorf("filling window surface: %w", err)
	}

	if !io.opts.Mute {
		if err := io.setupAudio(); err != nil {
			io.logger.Warn("Audio disabled", log.Err(err))
		}
	}
	return nil
}

func (io *IO) setupAudio() error {
	spec := &sdl.AudioSpec{
		Freq:     tone.DefaultSampleRate,
		Format:   sdl.AUDIO_S8,
		Channels: 1,
		Samples:  512,
	}
	dev, err := sdl.OpenAudioDevice("", false, spec, nil, 0)
	if err != nil {
		return fmt.Errorf("opening audio device: %w", err)
	}
	io.audio = dev
	io.square = tone.NewSquare(tone.DefaultSampleRate, tone.DefaultFrequency, tone.DefaultVolume)
	io.audioBuf = make([]byte, samplesPerFrame)
	sdl.PauseAudioDevice(dev, false)
	return nil
}

// Destroy should be called before quitting the application
func (io *IO) Destroy() {
	if io.audio != 0 {
		sdl.CloseAudioDevice(io.audio)
	}
	if io.window != nil {
		io.window.Destroy()
	}
	sdl.Quit()
}

// Loop is the main application loop. It executes one frame worth of
// instructions 60 times per second until the window is closed or the VM
// fails.
func (io *IO) Loop() error {
	ticker := time.NewTicker(frameDuration)
	defer ticker.Stop()

	for {
		if !io.handleEvents() {
			return nil
		}

		if err := io.vm.RunFrame(io.opts.Cycles); err != nil {
			return err
		}

		if io.vm.Framebuffer().Changed() {
			if err := io.draw(); err != nil {
				return err
			}
		}
		io.updateAudio()

		<-ticker.C
	}
}

// handleEvents forwards keyboard events to the keypad. It returns false once
// the user asked to quit.
func (io *IO) handleEvents() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch t := event.(type) {
		case *sdl.KeyboardEvent:
			if t.Repeat != 0 {
				continue
			}
			keycode := t.Keysym.Scancode
			if keycode == sdl.SCANCODE_ESCAPE {
				return false
			}
			code, ok := keymap(keycode)
			if !ok {
				continue
			}
			io.vm.Keypad().HandleEvent(internal.KeyEvent{
				Code:    code,
				Pressed: t.GetType() == sdl.KEYDOWN,
			})
		case *sdl.QuitEvent:
			return false
		}
	}
	return true
}

// Draws the current framebuffer content on screen
func (io *IO) draw() error {
	fb := io.vm.Framebuffer()
	if err := io.surface.FillRect(nil, screenColor); err != nil {
		return fmt.Errorf("clearing surface: %w", err)
	}

	scale := int32(io.opts.Scale)
	pixels := fb.Snapshot()
	for h := int32(0); h < internal.ScreenHeight; h++ {
		for w := int32(0); w < internal.ScreenWidth; w++ {
			if !pixels[h][w] {
				continue
			}
			rect := &sdl.Rect{X: w * scale, Y: h * scale, W: scale, H: scale}
			if err := io.surface.FillRect(rect, spriteColor); err != nil {
				return fmt.Errorf("drawing pixel: %w", err)
			}
		}
	}
	if err := io.window.UpdateSurface(); err != nil {
		return fmt.Errorf("updating window surface: %w", err)
	}
	fb.ResetChanged()
	return nil
}

// updateAudio keeps about two frames of tone queued while the sound timer
// is active and drops the queue as soon as it expires.
func (io *IO) updateAudio() {
	if io.audio == 0 {
		return
	}
	if !io.vm.Timers().Beeping() {
		sdl.ClearQueuedAudio(io.audio)
		return
	}
	if sdl.GetQueuedAudioSize(io.audio) >= 2*samplesPerFrame {
		return
	}
	io.square.FillS8(io.audioBuf)
	if err := sdl.QueueAudio(io.audio, io.audioBuf); err != nil {
		io.logger.Warn("Queueing audio failed", log.Err(err))
	}
}
