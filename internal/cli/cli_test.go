package cli

import (
	"errors"
	"testing"

	"github.com/mnafees/c8vm/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	opts, err := ParseFlags("c8vm", []string{"-scale", "4", "-cycles", "20", "-mute", "pong.ch8"})
	assert.NoError(t, err)
	assert.Equal(t, "pong.ch8", opts.Input)
	assert.Equal(t, 4, opts.Scale)
	assert.Equal(t, 20, opts.Cycles)
	assert.True(t, opts.Mute)
	assert.False(t, opts.Trace)
}

func TestParseFlagsDefaults(t *testing.T) {
	opts, err := ParseFlags("c8vm", []string{"pong.ch8"})
	assert.NoError(t, err)
	assert.Equal(t, options.DefaultScale, opts.Scale)
	assert.Equal(t, options.DefaultCycles, opts.Cycles)
}

func TestParseFlagsUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no program", nil},
		{"two programs", []string{"a.ch8", "b.ch8"}},
		{"unknown flag", []string{"-fast", "a.ch8"}},
		{"flag after program", []string{"a.ch8", "-mute"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFlags("c8vm", tt.args)
			var usageErr *UsageError
			assert.True(t, errors.As(err, &usageErr))
		})
	}
}

func TestParseFlagsInvalidValues(t *testing.T) {
	_, err := ParseFlags("c8vm", []string{"-cycles", "0", "a.ch8"})
	assert.Error(t, err, "invalid cycles per frame 0, must be at least 1")

	var usageErr *UsageError
	assert.False(t, errors.As(err, &usageErr))

	_, err = ParseFlags("c8vm", []string{"-scale", "-1", "a.ch8"})
	assert.Error(t, err, "invalid scale -1, must be at least 1")
}
