// Package bloomset provides a probabilistic membership set for Go.
//
// A [Set] is a Bloom filter: a fixed-size bit array that answers "might this
// value be present?". False positive matches are possible, but false
// negatives are not. If the set says a value is not present, it definitely
// was never added. If it says a value might be present, it could be a false
// positive.
//
// A Set stores presence only. It cannot report its exact size, enumerate
// its members, remove individual values, or be persisted.
//
// # Index Derivation
//
// Each value is hashed once with MD5. The 16 digest bytes are dealt
// round-robin into k accumulators, each folded big-endian into a wrapping
// 32-bit integer. Accumulator i is offset by i*m/k and reduced modulo the
// capacity m with a floor modulus, giving k bit positions per value. The
// derivation is fixed so that sets built by different processes from the
// same values are bitwise identical.
//
// # Choosing Parameters
//
// Use [NewWithCapacity] when the memory budget is fixed:
//
//	// 256 KiB of bits for about 250,000 words
//	s := bloomset.NewWithCapacity(256*1024*8, 250_000)
//
// The hash count is chosen by [IdealHashCount]. Use [New] to size the set
// from a target false positive rate instead, or [NewWithParams] for full
// control over capacity and hash count.
//
// # False Positive Rate
//
// For n values added to a set of m bits using k hashes, the expected false
// positive ratio is
//
//	(1 - (1 - 1/m)^(k*n))^k
//
// See [ExpectedFalsePositiveRatio]. Adding more values than the set was
// sized for increases the rate.
//
// # Combining Sets
//
// [Set.Union] and [Set.Intersect] combine two sets bitwise. Both sets must
// have the same capacity and hash count, otherwise an error wrapping
// [ErrConfigMismatch] is returned. [Set.Retain] keeps only the bits that a
// given list of values would set. [Set.Equal] compares the underlying bits,
// not logical membership.
//
// # Thread Safety
//
// [Set] is NOT thread-safe, not even for concurrent reads. Use external
// synchronization when sharing a set between goroutines.
package bloomset
