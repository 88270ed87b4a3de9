package brc

import (
	"bytes"
	"io"
	"strconv"

	"golang.org/x/exp/slices"
)

// WriteReport writes {name=min/mean/max, ...}\n with names in byte order.
//
// The mean is rounded towards positive infinity at one decimal. Min and max
// are exact readings already, so they are printed as is.
func WriteReport(w io.Writer, store *InfoStore) error {
	names := store.Names()
	slices.Sort(names)

	buf := make([]byte, 0, 64*len(names)+3)
	buf = append(buf, '{')
	for i, name := range names {
		if i != 0 {
			buf = append(buf, ',', ' ')
		}
		info, _ := store.m.Get(name)
		buf = append(buf, name...)
		buf = append(buf, '=')
		buf = appendScaled(buf, int64(info.Min))
		buf = append(buf, '/')
		buf = appendScaled(buf, info.Mean())
		buf = append(buf, '/')
		buf = appendScaled(buf, int64(info.Max))
	}
	buf = append(buf, '}', '\n')

	_, err := w.Write(buf)
	return err
}

func Report(store *InfoStore) string {
	var b bytes.Buffer
	_ = WriteReport(&b, store)
	return b.String()
}

// appendScaled appends v/10 with exactly one fractional digit.
func appendScaled(buf []byte, v int64) []byte {
	if v < 0 {
		buf = append(buf, '-')
		v = -v
	}
	buf = strconv.AppendInt(buf, v/10, 10)
	return append(buf, '.', byte('0'+v%10))
}
