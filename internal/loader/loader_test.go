package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mnafees/c8vm/internal"
	"github.com/retroenv/retrogolib/assert"
)

func writeFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "program.ch8")
	assert.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, []byte{0x00, 0xE0, 0x12, 0x00})

	data, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xE0, 0x12, 0x00}, data)
}

func TestLoadMaximumSize(t *testing.T) {
	data, err := Load(writeFile(t, make([]byte, internal.MaxProgramSize)))
	assert.NoError(t, err)
	assert.Equal(t, internal.MaxProgramSize, len(data))
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.ch8"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, err = Load(writeFile(t, nil))
	assert.True(t, errors.Is(err, ErrEmptyProgram))

	_, err = Load(writeFile(t, make([]byte, internal.MaxProgramSize+1)))
	assert.True(t, errors.Is(err, internal.ErrROMTooLarge))
}
