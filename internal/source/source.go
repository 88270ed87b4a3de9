// Package source exposes a whole input file as one read-only byte slice.
package source

// Source is a read-only view of a file. Bytes must not be modified, and must
// not be used after Close.
type Source struct {
	data  []byte
	close func() error
}

func (s *Source) Bytes() []byte {
	return s.data
}

func (s *Source) Len() int {
	return len(s.data)
}

func (s *Source) Close() error {
	data, close := s.data, s.close
	s.data, s.close = nil, nil
	if close == nil || data == nil {
		return nil
	}
	return close()
}
