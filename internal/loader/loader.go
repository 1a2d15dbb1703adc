// Package loader handles CHIP-8 program file loading.
package loader

import (
	"errors"
	"fmt"
	"os"

	"github.com/mnafees/c8vm/internal"
)

// ErrEmptyProgram is returned for program files without content.
var ErrEmptyProgram = errors.New("program file is empty")

// Load reads a raw CHIP-8 program. The file has no header, its content is
// copied into memory as is.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading program file: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("loading %s: %w", path, ErrEmptyProgram)
	}
	if len(data) > internal.MaxProgramSize {
		return nil, fmt.Errorf("loading %s with %d bytes, maximum is %d: %w",
			path, len(data), internal.MaxProgramSize, internal.ErrROMTooLarge)
	}
	return data, nil
}
