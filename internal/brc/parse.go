package brc

import (
	"bytes"
	"errors"
)

const (
	valueSep = ';'
	endLine  = '\n'
)

var ErrSeparatorNotFound = errors.New("separator not found")

// ParseReading parses a decimal with at most one fractional digit into its
// value scaled by 10: "12.3" is 123, "-0.4" is -4, "5" is 50.
//
// strconv.ParseFloat showed up at the top of every profile, and the input
// format is narrow enough to not need it.
//
// Parsing stops at the first byte that is not a digit or a dot, so trailing
// garbage (a '\r' from CRLF input for example) is ignored rather than rejected.
func ParseReading(value []byte) int32 {
	var (
		v   int32
		neg bool
		dot bool
		i   int
	)
	if len(value) > 0 {
		switch value[0] {
		case '-':
			neg = true
			i++
		case '+':
			i++
		}
	}
	for ; i < len(value); i++ {
		c := value[i]
		if c == '.' {
			dot = true
			continue
		}
		if c < '0' || c > '9' {
			break
		}
		v = v*10 + int32(c-'0')
	}
	if !dot {
		v *= 10
	}
	if neg {
		return -v
	}
	return v
}

type Item struct {
	name  []byte
	value int32
}

// ParseLine splits a record at its first separator. name aliases line.
func ParseLine(line []byte) (out Item, err error) {
	sep := bytes.IndexByte(line, valueSep)
	if sep == -1 {
		return out, ErrSeparatorNotFound
	}

	out.name = line[:sep]
	out.value = ParseReading(line[sep+1:])
	return out, nil
}

// NextLine returns the record starting at off without its terminator, and
// the offset right after it. The last record of buf may lack a terminator.
func NextLine(buf []byte, off int) (line []byte, next int) {
	le := bytes.IndexByte(buf[off:], endLine)
	if le == -1 {
		return buf[off:], len(buf)
	}
	return buf[off : off+le], off + le + 1
}
