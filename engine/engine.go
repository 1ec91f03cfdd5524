package engine

import (
	"io"
	"math"
	"math/bits"
	"math/rand/v2"

	"github.com/spf13/afero"

	"github.com/pqrand/pqrand.go/entropy"
	"github.com/pqrand/pqrand.go/log"
	"github.com/pqrand/pqrand.go/xorshift"
)

var _ rand.Source = (*Engine)(nil)

const (
	// BadBits is the number of low bits of every generator word that are
	// never used for booleans.
	BadBits = 2

	numBitsPRNG     = 64
	numBitsMantissa = 53

	// A mantissa needs 53 bits plus a buffer bit for rounding. The sticky bit
	// is always forced to 1 so it can live in one of the bad bits.
	numBitsOfEntropyRequired = numBitsMantissa + 1 + (BadBits - 1)
	minEntropy               = uint64(1) << (numBitsOfEntropyRequired - 1)

	replenishBitCache = uint64(1) << (BadBits - 1)

	bitShiftRightSuper = numBitsPRNG - numBitsMantissa
	maxMantissaSuper   = uint64(1) << numBitsMantissa

	scaleToU          = 0x1p-64
	scaleToHalfU      = 0x1p-65
	scaleToUSuper     = 0x1p-53
	scaleToHalfUSuper = 0x1p-54
)

// defaultState is the documented state of every engine that has not been
// seeded: the first 16 words of SplitMix64 seeded with 0, p = 0.
var defaultState = func() [xorshift.StateSize]uint64 {
	words, err := entropy.Words(entropy.NewSplitMix64(0), xorshift.StateSize)
	if err != nil {
		panic(err)
	}
	var s [xorshift.StateSize]uint64
	copy(s[:], words)
	return s
}()

// Engine is the random engine used by every distribution in pqrand.
//
// It wraps a xorshift1024* generator in an API designed for precise
// quantile sampling: uniform variates whose resolution matches the float64
// mantissa everywhere in (0, 1], half uniform variates for quantile
// flip-flops, and a coin flip that wastes no entropy.
//
// An Engine is not safe for concurrent use. Give every goroutine its own
// engine (see Parallel), or wrap a shared one with NewLocked.
type Engine struct {
	gen xorshift.Generator

	// bitCache holds the word Bool takes bits from, cacheMask selects the
	// next bit. cacheMask == replenishBitCache means the cache is exhausted.
	bitCache  uint64
	cacheMask uint64

	seeded bool
	warned bool

	entropy io.Reader
	fs      afero.Fs
}

// Option configures an Engine.
type Option func(*Engine)

// WithEntropy sets the reader New and Seed draw seed words from.
//
// A nil reader means entropy.Default.
func WithEntropy(r io.Reader) Option {
	return func(e *Engine) {
		e.entropy = r
	}
}

// WithFs sets the filesystem SeedFromFile and WriteState operate on.
//
// A nil filesystem means the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(e *Engine) {
		e.fs = fs
	}
}

// New creates an engine and seeds it from its entropy reader.
func New(opts ...Option) (*Engine, error) {
	e := NewUnseeded(opts...)
	if err := e.Seed(); err != nil {
		return nil, err
	}
	return e, nil
}

// NewUnseeded creates an engine without seeding it.
//
// Until one of the Seed methods succeeds the engine holds a fixed default
// state, so its stream is the same in every process. Drawing from it is
// allowed but logged once at warn level, since it's almost always a mistake.
func NewUnseeded(opts ...Option) *Engine {
	e := &Engine{
		entropy: entropy.Default,
		fs:      afero.NewOsFs(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.entropy == nil {
		e.entropy = entropy.Default
	}
	if e.fs == nil {
		e.fs = afero.NewOsFs()
	}
	e.gen.SetState(defaultState, 0)
	e.defaultInitializeBitCache()
	return e
}

// Seeded reports whether the engine was successfully seeded.
func (e *Engine) Seeded() bool {
	return e.seeded
}

// Seed seeds the engine with 16 fresh words from its entropy reader.
//
// On error the engine is left unchanged.
func (e *Engine) Seed() error {
	words, err := entropy.Words(e.entropy, xorshift.StateSize)
	recordSeed(sourceEntropy, err)
	if err != nil {
		return err
	}
	var state [xorshift.StateSize]uint64
	copy(state[:], words)
	e.gen.SetState(state, 0)
	e.defaultInitializeBitCache()
	e.seeded = true
	return nil
}

// SeedFromEngine copies the full state of other, including its bit cache.
//
// It returns a *StateError if other was never seeded.
func (e *Engine) SeedFromEngine(other *Engine) error {
	if !other.seeded {
		err := &StateError{Op: "SeedFromEngine"}
		recordSeed(sourceEngine, err)
		return err
	}
	if other != e {
		e.gen = other.gen
		e.bitCache = other.bitCache
		e.cacheMask = other.cacheMask
		e.seeded = true
	}
	recordSeed(sourceEngine, nil)
	return nil
}

// Jump advances the engine by 2^512 generator words.
//
// Two engines in the same state that are jumped the same number of times stay
// in the same state; an engine and its jumped copy produce non-overlapping
// streams for any realistic number of draws.
func (e *Engine) Jump() {
	e.gen.Jump()
	jumpsCounter.Inc()
}

// JumpN calls Jump n times.
func (e *Engine) JumpN(n int) {
	for i := 0; i < n; i++ {
		e.Jump()
	}
}

func (e *Engine) defaultInitializeBitCache() {
	// Defer the fill until the next call to Bool.
	e.bitCache = 0
	e.cacheMask = replenishBitCache
}

func (e *Engine) next() uint64 {
	if !e.seeded && !e.warned {
		e.warned = true
		unseededCounter.Inc()
		log.Warnw("engine: drawing from an engine that was never seeded, the stream is the fixed default one")
	}
	return e.gen.Uint64()
}

// Uint64 returns the next raw 64-bit word of the generator.
//
// It implements math/rand/v2.Source, so an Engine can back a *rand.Rand.
// The two lowest bits are of lower quality, see package xorshift.
func (e *Engine) Uint64() uint64 {
	return e.next()
}

// Bool returns the result of an ideal coin flip.
//
// Every generator word supplies 62 coin flips, taken from the top bits.
func (e *Engine) Bool() bool {
	if e.cacheMask == replenishBitCache {
		e.bitCache = e.next()
		e.cacheMask = uint64(1) << (numBitsPRNG - 1)
	}
	decision := e.bitCache&e.cacheMask != 0
	e.cacheMask >>= 1
	return decision
}

// ApplyRandomSign flips the sign of x with probability one half.
func (e *Engine) ApplyRandomSign(x float64) float64 {
	if e.Bool() {
		return -x
	}
	return x
}

// U01 draws a quasi-uniform variate from (0, 1].
//
// A real number is drawn uniformly from (0, 1] and rounded to the nearest
// float64, so the result has a full 53-bit mantissa no matter how close to
// 0 it is. 1 is half as probable as its neighbor.
func (e *Engine) U01() float64 {
	return scaleToU * e.randomMantissaQuasiuniform()
}

// HalfU draws a quasi-uniform variate from (0, 0.5].
//
// It's the input of quantile flip-flops: evaluating a quantile function at
// HalfU or at 1-HalfU, picked by a coin flip, keeps full precision in both
// tails.
func (e *Engine) HalfU() float64 {
	return scaleToHalfU * e.randomMantissaQuasiuniform()
}

// USuper draws a superuniform variate from (0, 1].
//
// (0, 1] is divided into 2^53 equal steps and one is chosen uniformly, so
// the resolution near 0 is that of 1 (machine epsilon), unlike U01.
func (e *Engine) USuper() float64 {
	return scaleToUSuper * e.randomMantissaSuperuniform()
}

// HalfUSuper draws a superuniform variate from (0, 0.5].
func (e *Engine) HalfUSuper() float64 {
	return scaleToHalfUSuper * e.randomMantissaSuperuniform()
}

// UEven draws an even uniform variate from [0, 1) in steps of 2^-53.
func (e *Engine) UEven() float64 {
	return scaleToUSuper * float64(e.next()>>bitShiftRightSuper)
}

// Float64 is an alias of UEven, matching the math/rand convention of [0, 1).
func (e *Engine) Float64() float64 {
	return e.UEven()
}

// UniformInt returns an unbiased integer in [lo, hi).
//
// It panics if hi <= lo.
func (e *Engine) UniformInt(lo, hi int64) int64 {
	if hi <= lo {
		panic("engine: invalid argument to UniformInt, hi must be larger than lo")
	}
	n := uint64(hi) - uint64(lo)
	return lo + int64(e.uint64n(n))
}

// uint64n returns an unbiased integer in [0, n) using Lemire's
// multiply-and-reject method, which takes the high bits of the product and
// never the weak low bits of the word.
func (e *Engine) uint64n(n uint64) uint64 {
	if n&(n-1) == 0 {
		return e.next() >> (numBitsPRNG - bits.TrailingZeros64(n))
	}
	hi, lo := bits.Mul64(e.next(), n)
	if lo < n {
		thresh := -n % n
		for lo < thresh {
			hi, lo = bits.Mul64(e.next(), n)
		}
	}
	return hi
}

// randomMantissaQuasiuniform returns a random float64 in (0, 2^64], where
// the 53 most significant bits are always random.
func (e *Engine) randomMantissaQuasiuniform() float64 {
	randUint := e.next()
	if randUint >= minEntropy {
		// Set the sticky bit to defeat round-to-even.
		return float64(randUint | 1)
	}

	// Not enough entropy: shift left to fill the mantissa, filling the gap
	// from a fresh word. This happens once every 2^10 calls.
	downScale := 1.0
	shiftLeft := 1
	randUint <<= 1
	if randUint == 0 {
		// Every zero word is another 64-bit shift of an infinite bit stream.
		shiftLeft = 0
		for {
			downScale *= scaleToU
			if randUint = e.next(); randUint != 0 {
				break
			}
		}
	}
	for randUint < minEntropy {
		randUint <<= 1
		shiftLeft++
	}
	if shiftLeft > 0 {
		downScale *= math.Ldexp(1, -shiftLeft)
		randUint |= e.next() >> (numBitsPRNG - shiftLeft)
	}
	return float64(randUint|1) * downScale
}

// randomMantissaSuperuniform returns a random integer in [1, 2^53] as float64.
//
// 0 is mapped to 2^53 half the time and redrawn otherwise, so both ends keep
// the probability of their neighbors on (0, 1].
func (e *Engine) randomMantissaSuperuniform() float64 {
	for {
		randUint := e.next() >> bitShiftRightSuper
		if randUint != 0 {
			return float64(randUint)
		}
		if e.Bool() {
			return float64(maxMantissaSuper)
		}
	}
}
