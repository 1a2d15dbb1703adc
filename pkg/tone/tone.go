// Package tone generates the square wave played while the sound timer is active.
package tone

import (
	"encoding/binary"
	"math"
)

// Defaults for the beep.
const (
	DefaultSampleRate = 44100
	DefaultFrequency  = 440
	DefaultVolume     = 0.05
)

// Square is a mono square wave oscillator with samples in the range
// -volume..volume.
type Square struct {
	phase    float32
	phaseInc float32
	volume   float32
}

// NewSquare returns an oscillator for the given sample rate and frequency in Hz.
func NewSquare(sampleRate, frequency int, volume float32) *Square {
	return &Square{
		phaseInc: float32(frequency) / float32(sampleRate),
		volume:   volume,
	}
}

// Next returns the next sample.
func (s *Square) Next() float32 {
	sample := s.volume
	if s.phase >= 0.5 {
		sample = -s.volume
	}
	s.phase += s.phaseInc
	if s.phase >= 1 {
		s.phase -= 1
	}
	return sample
}

// FillFloat32LE fills p with little endian 32-bit float samples. A trailing
// partial sample is zeroed. It returns the number of bytes written.
func (s *Square) FillFloat32LE(p []byte) int {
	n := len(p) / 4 * 4
	for i := 0; i < n; i += 4 {
		binary.LittleEndian.PutUint32(p[i:], math.Float32bits(s.Next()))
	}
	for i := n; i < len(p); i++ {
		p[i] = 0
	}
	return len(p)
}

// FillS8 fills p with signed 8-bit samples.
func (s *Square) FillS8(p []byte) {
	for i := range p {
		p[i] = byte(int8(s.Next() * math.MaxInt8))
	}
}
