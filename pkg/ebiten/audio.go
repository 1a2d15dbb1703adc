package ebiten

import (
	"fmt"
	"sync/atomic"

	"github.com/ebitengine/oto/v3"
	"github.com/mnafees/c8vm/pkg/tone"
)

// beeper streams the square wave through oto. The player pulls samples from
// its own goroutine, the game loop only flips the playing flag.
type beeper struct {
	player  *oto.Player
	square  *tone.Square
	playing atomic.Bool
}

func newBeeper() (*beeper, error) {
	op := &oto.NewContextOptions{
		SampleRate:   tone.DefaultSampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("creating audio context: %w", err)
	}
	<-ready

	b := &beeper{
		square: tone.NewSquare(tone.DefaultSampleRate, tone.DefaultFrequency, tone.DefaultVolume),
	}
	b.player = ctx.NewPlayer(b)
	b.player.Play()
	return b, nil
}

// Read implements io.Reader for the oto player.
func (b *beeper) Read(p []byte) (int, error) {
	if !b.playing.Load() {
		for i := range p {
			p[i] = 0
		}
		return len(p), nil
	}
	return b.square.FillFloat32LE(p), nil
}

// SetPlaying switches the tone on or off.
func (b *beeper) SetPlaying(on bool) {
	b.playing.Store(on)
}

// Close stops playback.
func (b *beeper) Close() {
	_ = b.player.Close()
}
