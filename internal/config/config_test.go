package config

import (
	"testing"

	"github.com/mnafees/c8vm/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestCreateLogger(t *testing.T) {
	for _, opts := range []options.Program{
		{},
		{Debug: true},
		{Trace: true, Quiet: true},
		{Quiet: true},
	} {
		logger := CreateLogger(opts)
		assert.True(t, logger != nil)
	}
}
