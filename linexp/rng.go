// Package linexp - deterministic sign-vector generation.
//
// Goals:
//   - Determinism: same size ⇒ identical planted solution, on any platform
//     and in any call order (the generator is re-seeded per size).
//   - Encapsulation: one seeding policy, no time-based sources anywhere.
package linexp

import "math/rand"

// FixedSeed is the experiment's base seed. The value is arbitrary but
// stable; the per-size seed is FixedSeed + n after avalanche mixing.
const FixedSeed int64 = 20389

// mixSeed applies a SplitMix64-style finalizer so that consecutive sizes
// yield decorrelated streams; see Vigna 2014 for the constants.
func mixSeed(seed int64) int64 {
	x := uint64(seed) + 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// SignVector returns the planted ±1 solution of the size-n experiment:
// n Bernoulli trials from a generator seeded with FixedSeed + n.
func SignVector(n int) []float64 {
	rng := rand.New(rand.NewSource(mixSeed(FixedSeed + int64(n))))
	v := make([]float64, n)
	for i := range v {
		if rng.Intn(2) == 0 {
			v[i] = 1
		} else {
			v[i] = -1
		}
	}
	return v
}
