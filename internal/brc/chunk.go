package brc

import (
	"bytes"
	"errors"
	"fmt"
)

// DefaultMaxRecordLen bounds the search for a line end from a split point.
const DefaultMaxRecordLen = 1 << 20

var ErrNoLineBoundary = errors.New("no line boundary found")

// Chunk is a line aligned byte range [Start, End) of the input.
type Chunk struct {
	Start int
	End   int
}

func (c Chunk) Len() int {
	return c.End - c.Start
}

// Planner splits an input buffer into Parts chunks that start and end on
// record boundaries.
type Planner struct {
	Parts        int
	MaxRecordLen int
}

// Plan returns exactly Parts contiguous chunks covering buf. When buf holds
// fewer records than Parts, some of the chunks are empty.
func (p Planner) Plan(buf []byte) ([]Chunk, error) {
	parts := p.Parts
	if parts < 1 {
		parts = 1
	}
	maxLen := p.MaxRecordLen
	if maxLen <= 0 {
		maxLen = DefaultMaxRecordLen
	}

	n := len(buf)
	chunks := make([]Chunk, 0, parts)
	start := 0
	for i := 1; i < parts; i++ {
		split := int(int64(i) * int64(n) / int64(parts))
		if split < start {
			split = start
		}
		end, err := lineBoundary(buf, split, maxLen)
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, Chunk{Start: start, End: end})
		start = end
	}
	chunks = append(chunks, Chunk{Start: start, End: n})
	return chunks, nil
}

// lineBoundary returns the first record start at or after off.
func lineBoundary(buf []byte, off, maxLen int) (int, error) {
	if off == 0 || off >= len(buf) || buf[off-1] == endLine {
		return min(off, len(buf)), nil
	}
	limit := min(len(buf), off+maxLen)
	le := bytes.IndexByte(buf[off:limit], endLine)
	if le != -1 {
		return off + le + 1, nil
	}
	if limit == len(buf) {
		return len(buf), nil
	}
	return 0, fmt.Errorf("no %q within %d bytes of offset %d: %w",
		endLine, maxLen, off, ErrNoLineBoundary)
}
