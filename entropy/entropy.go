// Package entropy provides seed material for pqrand engines.
//
// Engines never reach for a process-wide random source on their own: the
// reader they seed from is injected, defaulting to Default. Tests substitute
// a SplitMix64 reader to make seeding deterministic.
package entropy

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/pqrand/pqrand.go/log"
)

// Default is the entropy reader used when none is supplied.
//
// It reads from the operating system (/dev/urandom, getrandom(2) and the
// like). Should that fail, the bytes are expanded from a time based Seed
// instead, so seeding from Default never fails. Nothing in this module
// relies on it for security.
var Default io.Reader = osReader{}

type osReader struct{}

func (osReader) Read(p []byte) (int, error) {
	if n, err := cryptoReader(p); err == nil {
		return n, nil
	}
	return NewSplitMix64(uint64(Seed())).Read(p)
}

// ErrAllZero is returned by Words when the reader produced only zero bytes.
//
// An all zero xorshift state is a fixed point of the generator and would make
// every subsequent draw zero.
var ErrAllZero = errors.New("entropy: reader produced an all zero seed")

// cryptoReader is the reader used by Default and Seed, replaced in tests.
var cryptoReader = crand.Read

// Words reads n little-endian 64-bit words from r.
//
// It fails if r cannot supply 8*n bytes or if every word read is zero.
func Words(r io.Reader, n int) ([]uint64, error) {
	if r == nil {
		r = Default
	}
	buf := make([]byte, 8*n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("entropy: reading %d seed words: %w", n, err)
	}
	words := make([]uint64, n)
	var any uint64
	for i := range words {
		words[i] = binary.LittleEndian.Uint64(buf[8*i:])
		any |= words[i]
	}
	if n > 0 && any == 0 {
		return nil, ErrAllZero
	}
	return words, nil
}

// Seed returns a single 64-bit seed.
//
// It tries to use crypto/rand to read an int64,
// and fallback to use current time if that fails for whatever reason.
// The fallback is logged at warn level, as the seed is then guessable.
func Seed() int64 {
	buf := make([]byte, 8)
	n, err := cryptoReader(buf)
	if err != nil {
		log.Warnw("entropy: crypto/rand failed, falling back to time based seed", "err", err, "read", n)
		// Keep whatever was read, it still adds to the seed.
		return int64(binary.BigEndian.Uint64(buf)) ^ time.Now().UnixNano()
	}
	return int64(binary.BigEndian.Uint64(buf))
}
