package entropy

import (
	"encoding/binary"
	"io"
)

var _ io.Reader = (*SplitMix64)(nil)

// SplitMix64 is a deterministic io.Reader expanding a single 64-bit seed into
// an endless, well mixed byte stream.
//
// It's the recommended way to seed an engine reproducibly from an integer,
// and the reader tests use in place of Default.
//
// SplitMix64 is not safe for concurrent use.
type SplitMix64 struct {
	state uint64
	buf   [8]byte
	n     int // unread bytes left in buf
}

// NewSplitMix64 creates a SplitMix64 reader from seed.
func NewSplitMix64(seed uint64) *SplitMix64 {
	return &SplitMix64{state: seed}
}

// Uint64 returns the next word of the stream.
//
// Mixing Uint64 and Read is allowed, Uint64 discards any partially consumed
// word buffered by Read.
func (s *SplitMix64) Uint64() uint64 {
	s.n = 0
	return s.next()
}

func (s *SplitMix64) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Read fills p from the stream. It never fails.
func (s *SplitMix64) Read(p []byte) (int, error) {
	total := len(p)
	for len(p) > 0 {
		if s.n == 0 {
			binary.LittleEndian.PutUint64(s.buf[:], s.next())
			s.n = len(s.buf)
		}
		c := copy(p, s.buf[len(s.buf)-s.n:])
		s.n -= c
		p = p[c:]
	}
	return total, nil
}
