// Package synth reconstructs synthetic user records from nothing but their
// index. Every function here is pure: the same index always yields the same
// record, in every process, with no storage behind it.
package synth

// FNV-1a parameters.
const (
	fnvOffset32 = 2166136261
	fnvPrime32  = 16777619

	// seedSpread spreads small seed constants across the whole accumulator
	// before the first byte is folded in.
	seedSpread = 0x9e3779b1
)

// Mix folds the four low bytes of index into an accumulator derived from
// seed, FNV-1a style. Negative indices hash their two's complement bit
// pattern. It never allocates.
func Mix(index int, seed uint32) uint32 {
	v := uint32(index)
	h := uint32(fnvOffset32) ^ (seed * seedSpread)
	for i := 0; i < 4; i++ {
		h ^= v & 0xff
		h *= fnvPrime32
		v >>= 8
	}
	return h
}

// PickIndex returns the position selected for index within a table of n
// entries. n must be positive.
func PickIndex(n, index int, seed uint32) int {
	if n <= 0 {
		panic("synth: pick from empty table")
	}
	return int(Mix(index, seed) % uint32(n))
}

// Pick returns the element of values selected for index under seed. An empty
// table is a programming error and panics.
func Pick[T any](values []T, index int, seed uint32) T {
	return values[PickIndex(len(values), index, seed)]
}
