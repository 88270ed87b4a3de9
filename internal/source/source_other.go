//go:build !unix

package source

import (
	"fmt"

	"golang.org/x/exp/mmap"
)

// Open reads the file at path through a read-only mapping. The mapping
// does not expose its memory here, so the content is copied once.
func Open(path string) (*Source, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer r.Close()

	if r.Len() == 0 {
		return &Source{}, nil
	}
	data := make([]byte, r.Len())
	if _, err := r.ReadAt(data, 0); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return &Source{data: data}, nil
}
