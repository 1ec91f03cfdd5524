package engine

import (
	"math/rand/v2"
	"sync"
)

var _ rand.Source = (*Locked)(nil)

// Locked is an Engine that is safe for concurrent use.
//
// Every call takes a mutex, so a Locked engine is much slower than one
// engine per goroutine (see Parallel) under contention. Use it when a single
// stream must be shared, for example to back a global *rand.Rand.
type Locked struct {
	lock sync.Mutex
	e    *Engine
}

// NewLocked wraps e.
//
// e must not be used directly afterwards.
func NewLocked(e *Engine) *Locked {
	return &Locked{e: e}
}

// Uint64 implements math/rand/v2.Source.
func (l *Locked) Uint64() (n uint64) {
	l.lock.Lock()
	n = l.e.Uint64()
	l.lock.Unlock()
	return
}

// U01 calls Engine.U01 with lock.
func (l *Locked) U01() (u float64) {
	l.lock.Lock()
	u = l.e.U01()
	l.lock.Unlock()
	return
}

// HalfU calls Engine.HalfU with lock.
func (l *Locked) HalfU() (u float64) {
	l.lock.Lock()
	u = l.e.HalfU()
	l.lock.Unlock()
	return
}

// Bool calls Engine.Bool with lock.
func (l *Locked) Bool() (b bool) {
	l.lock.Lock()
	b = l.e.Bool()
	l.lock.Unlock()
	return
}

// ApplyRandomSign calls Engine.ApplyRandomSign with lock.
func (l *Locked) ApplyRandomSign(x float64) (y float64) {
	l.lock.Lock()
	y = l.e.ApplyRandomSign(x)
	l.lock.Unlock()
	return
}

// UniformInt calls Engine.UniformInt with lock.
func (l *Locked) UniformInt(lo, hi int64) (n int64) {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.e.UniformInt(lo, hi)
}

// Float64 calls Engine.Float64 with lock.
func (l *Locked) Float64() (u float64) {
	l.lock.Lock()
	u = l.e.Float64()
	l.lock.Unlock()
	return
}

// Do calls f with the wrapped engine while holding the lock.
//
// It's the way to make several draws atomically, for example a whole sample,
// or to reseed the engine. f must not retain the engine.
func (l *Locked) Do(f func(e *Engine)) {
	l.lock.Lock()
	defer l.lock.Unlock()
	f(l.e)
}
