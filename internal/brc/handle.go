package brc

import (
	"context"
	"fmt"
)

// how many records a worker handles between checks of its context
const checkEvery = 4096

func HandleLine(line []byte, store *InfoStore) error {
	item, err := ParseLine(line)
	if err != nil {
		return fmt.Errorf("failed to parse line %q: %w", line, err)
	}
	store.Update(item)
	return nil
}

// HandleChunk accounts every record of buf[c.Start:c.End] in store. The
// chunk must hold whole records only. It stops early once ctx is done.
func HandleChunk(ctx context.Context, buf []byte, c Chunk, store *InfoStore) error {
	data := buf[:c.End]
	n := 0
	for off := c.Start; off < c.End; n++ {
		if n%checkEvery == checkEvery-1 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		line, next := NextLine(data, off)
		if err := HandleLine(line, store); err != nil {
			return fmt.Errorf("offset %d: %w", off, err)
		}
		off = next
	}
	return nil
}
