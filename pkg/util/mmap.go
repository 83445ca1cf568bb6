package util

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// ReadMapped returns the contents of path, reading it through a read-only
// memory map. The mapped region is copied out and unmapped before returning,
// so the result stays valid after the file changes on disk (the token watcher
// relies on that). Falls back to os.ReadFile when mapping fails.
func ReadMapped(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat %q: %w", path, err)
	}
	// Zero-length files cannot be mapped.
	if info.Size() == 0 {
		return []byte{}, nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil, fmt.Errorf("failed to read %q: %w", path, readErr)
		}
		return data, nil
	}
	defer m.Unmap()

	data := make([]byte, len(m))
	copy(data, m)
	return data, nil
}
