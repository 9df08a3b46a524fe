// Package prng implements the world kernel's deterministic seed advance:
// the single source of truth for World.seed. It is a pure, fixed-width
// integer mix with no platform- or library-dependent behavior, so that
// replay is bit-identical across machines and Go versions.
package prng

const (
	goldenGamma   uint64 = 0x9E3779B97F4A7C15
	mixMultiplier1 uint64 = 0xBF58476D1CE4E5B9
	mixMultiplier2 uint64 = 0x94D049BB133111EB
)

// NextSeed advances the PRNG state s, returning the new state (to be
// persisted as World.seed) and the mixed output (available to simulation
// consumers but never itself persisted). All arithmetic wraps on overflow,
// matching Go's default unsigned integer semantics.
func NextSeed(s uint64) (newState uint64, output uint64) {
	newState = s + goldenGamma

	z := newState
	z = (z ^ (z >> 30)) * mixMultiplier1
	z = (z ^ (z >> 27)) * mixMultiplier2
	z = z ^ (z >> 31)

	return newState, z
}
