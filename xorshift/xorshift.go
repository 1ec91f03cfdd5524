// Package xorshift implements the xorshift1024* pseudo-random generator.
//
// The generator has a period of 2^1024-1 and supports jumping ahead by 2^512
// steps, which is what makes it suitable for handing independent streams to
// parallel workers.
//
// The two lowest bits of every word are LFSRs of degree 1024 and fail binary
// rank tests. Callers that need individual bits should take them from the
// top of the word (right shifts or sign tests), never from the bottom.
//
// The implementation follows Sebastiano Vigna's 2017 revision of
// xorshift1024star.c (http://xoroshiro.di.unimi.it/xorshift1024star.c).
package xorshift

// StateSize is the number of 64-bit words in the generator state.
const StateSize = 16

const multiplier = 1181783497276652981

// jumpPoly is the characteristic polynomial used by Jump, equivalent to 2^512
// calls to Uint64.
var jumpPoly = [StateSize]uint64{
	0x84242f96eca9c41d, 0xa3c65b8776f96855, 0x5b34a39f070b5837, 0x4489affce4f31a1e,
	0x2ffeeb0a48316f40, 0xdc2d9891fe68c022, 0x3659132bb12fea70, 0xaac17d8efa43cab8,
	0xc4cb815590989b13, 0x5ee975283d71c93b, 0x691548c86c1bd540, 0x7910c41d10a1e6a5,
	0x0b5fc64563b3e2a8, 0x047f7684e9fc949d, 0xb99181f2d8f685ca, 0x284600e3f30e38c3,
}

// Generator is a xorshift1024* generator.
//
// The zero value is a valid but degenerate generator: an all zero state is a
// fixed point and Uint64 will return 0 forever. Use SetState to seed it.
//
// Generator is a value type, copying it copies the full state.
// It is not safe for concurrent use.
type Generator struct {
	s [StateSize]uint64
	p int
}

// New creates a Generator from the given state words and index.
//
// p is reduced modulo StateSize.
func New(state [StateSize]uint64, p int) *Generator {
	g := new(Generator)
	g.SetState(state, p)
	return g
}

// SetState replaces the state of the generator.
//
// p is reduced modulo StateSize.
func (g *Generator) SetState(state [StateSize]uint64, p int) {
	g.s = state
	g.p = p & (StateSize - 1)
}

// State returns a copy of the state words and the current index.
func (g *Generator) State() ([StateSize]uint64, int) {
	return g.s, g.p
}

// IsZero reports whether every state word is zero.
func (g *Generator) IsZero() bool {
	for _, w := range g.s {
		if w != 0 {
			return false
		}
	}
	return true
}

// Uint64 returns the next 64-bit word.
func (g *Generator) Uint64() uint64 {
	s0 := g.s[g.p]
	g.p = (g.p + 1) & (StateSize - 1)
	s1 := g.s[g.p]
	s1 ^= s1 << 31
	g.s[g.p] = s1 ^ s0 ^ (s1 >> 11) ^ (s0 >> 30)
	return g.s[g.p] * multiplier
}

// Jump advances the generator by 2^512 calls to Uint64.
//
// It can be used to generate 2^512 non-overlapping subsequences for parallel
// computations. Jump commutes with Uint64: drawing then jumping produces the
// same stream as jumping then drawing.
func (g *Generator) Jump() {
	var t [StateSize]uint64
	for _, word := range jumpPoly {
		for b := uint(0); b < 64; b++ {
			if word&(1<<b) != 0 {
				for j := range t {
					t[j] ^= g.s[(j+g.p)&(StateSize-1)]
				}
			}
			g.Uint64()
		}
	}
	for j := range t {
		g.s[(j+g.p)&(StateSize-1)] = t[j]
	}
}

// JumpN calls Jump n times.
func (g *Generator) JumpN(n int) {
	for i := 0; i < n; i++ {
		g.Jump()
	}
}
