package sim

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Deterministic random values derived from a hash rather than a stateful
// generator. Every sample is a pure function of (seed, sequence, tag), so a
// world seed plus the order of construction calls reproduces the same layout
// on every run. Reproducibility is only promised within one build; the hash
// is fixed (64-bit FNV-1a) but float rounding may differ across platforms.

// hashContext mixes seed, sequence and tag into a 64-bit digest.
func hashContext(seed uint64, seq uint32, tag string) uint64 {
	var buf [12]byte
	binary.LittleEndian.PutUint64(buf[:8], seed)
	binary.LittleEndian.PutUint32(buf[8:], seq)

	h := fnv.New64a()
	h.Write(buf[:])
	h.Write([]byte(tag))
	return h.Sum64()
}

// hashAxis derives an independent sub-digest for one axis of a vector
// sample, so X and Y are not correlated.
func hashAxis(seed, sub uint64, axis string) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], seed)
	binary.LittleEndian.PutUint64(buf[8:], sub)

	h := fnv.New64a()
	h.Write(buf[:])
	h.Write([]byte(axis))
	return h.Sum64()
}

// floatFromDigest maps a digest uniformly into [lo, hi). An empty range
// yields lo.
func floatFromDigest(d uint64, lo, hi float64) float64 {
	f := float64(d) / float64(math.MaxUint64)
	return lo + f*(hi-lo)
}

// randFloat returns a deterministic float64 in [lo, hi) for the given
// seed and context.
func randFloat(seed uint64, seq uint32, tag string, lo, hi float64) float64 {
	return floatFromDigest(hashContext(seed, seq, tag), lo, hi)
}

// randUint32 returns a deterministic uint32 in [lo, hi) for the given seed
// and context. An empty range yields lo, mirroring the float case.
func randUint32(seed uint64, seq uint32, tag string, lo, hi uint32) uint32 {
	if hi == lo {
		return lo
	}
	v := uint32(hashContext(seed, seq, tag))
	return lo + v%(hi-lo)
}

// randVec2 returns a deterministic point inside r for the given seed and
// context, sampling each axis from its own sub-digest.
func randVec2(seed uint64, seq uint32, tag string, r Rect) Vec2 {
	sub := hashContext(seed, seq, tag)
	return Vec2{
		X: floatFromDigest(hashAxis(seed, sub, "x"), r.Min.X, r.Max.X),
		Y: floatFromDigest(hashAxis(seed, sub, "y"), r.Min.Y, r.Max.Y),
	}
}
