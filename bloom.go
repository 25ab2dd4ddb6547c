package bloomset

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

var (
	// ErrNilValue is returned when a nil value is added to a set.
	ErrNilValue = errors.New("bloomset: nil value")

	// ErrConfigMismatch is returned when two sets with different capacities or
	// hash counts are combined.
	ErrConfigMismatch = errors.New("bloomset: configuration mismatch")
)

// Set is a probabilistic membership set backed by a fixed-size bit array.
//
// Each value maps to k bit positions derived from its MD5 digest. Adding a
// value sets those bits; testing a value reports whether all of them are set.
// A Set never reports a false negative, but may report a false positive with
// a probability estimated by [ExpectedFalsePositiveRatio].
//
// Set is NOT safe for concurrent use, including concurrent reads: queries
// reuse an internal index buffer. Callers sharing a Set across goroutines
// must serialize every call.
type Set struct {
	bits         *bitset.BitSet
	capacityBits uint64
	k            uint32
	ones         uint64   // Population count of bits
	idx          []uint32 // Scratch buffer for derived indices
}

// New creates a set sized for the expected number of items and desired false
// positive rate.
func New(expectedItems uint64, fpRate float64) *Set {
	return NewWithCapacity(OptimalCapacity(expectedItems, fpRate), expectedItems)
}

// NewWithCapacity creates a set with capacityBits bits and the hash count that
// minimizes the false positive ratio for expectedItems insertions.
func NewWithCapacity(capacityBits, expectedItems uint64) *Set {
	return NewWithParams(capacityBits, IdealHashCount(expectedItems, capacityBits))
}

// NewWithParams creates a set with explicit parameters.
// capacityBits is clamped to [1, MaxCapacityBits] and k to at least 1.
func NewWithParams(capacityBits uint64, k uint32) *Set {
	if capacityBits == 0 {
		capacityBits = 1
	}
	if capacityBits > MaxCapacityBits {
		capacityBits = MaxCapacityBits
	}
	if k == 0 {
		k = 1
	}

	return &Set{
		bits:         bitset.New(uint(capacityBits)),
		capacityBits: capacityBits,
		k:            k,
		idx:          make([]uint32, k),
	}
}

// emptyLike returns a new, empty set with the same configuration as s.
func (s *Set) emptyLike() *Set {
	return NewWithParams(s.capacityBits, s.k)
}

// Add adds data to the set. It reports whether any bit changed, which is a
// strong but not certain signal that data was not present before.
// A nil slice is rejected with ErrNilValue; an empty slice is a valid value.
func (s *Set) Add(data []byte) (bool, error) {
	if data == nil {
		return false, ErrNilValue
	}
	deriveIndices(digestData(data), s.capacityBits, s.idx)
	return s.setIndices(), nil
}

// AddString adds a string to the set and reports whether any bit changed.
func (s *Set) AddString(v string) bool {
	deriveIndices(digestString(v), s.capacityBits, s.idx)
	return s.setIndices()
}

// AddAll adds every value and reports whether any bit changed.
func (s *Set) AddAll(values ...string) bool {
	changed := false
	for _, v := range values {
		if s.AddString(v) {
			changed = true
		}
	}
	return changed
}

// setIndices sets the bits at the positions held in the scratch buffer.
func (s *Set) setIndices() bool {
	changed := false
	for _, i := range s.idx {
		if !s.bits.Test(uint(i)) {
			s.bits.Set(uint(i))
			s.ones++
			changed = true
		}
	}
	return changed
}

// Test checks if data might be in the set.
// Returns true if the data might be present (with false positive probability),
// or false if the data is definitely not present. A nil slice is never present.
func (s *Set) Test(data []byte) bool {
	if data == nil {
		return false
	}
	deriveIndices(digestData(data), s.capacityBits, s.idx)
	return s.testIndices()
}

// TestString checks if a string might be in the set.
func (s *Set) TestString(v string) bool {
	deriveIndices(digestString(v), s.capacityBits, s.idx)
	return s.testIndices()
}

// TestAll reports whether every value might be in the set.
func (s *Set) TestAll(values ...string) bool {
	for _, v := range values {
		if !s.TestString(v) {
			return false
		}
	}
	return true
}

func (s *Set) testIndices() bool {
	for _, i := range s.idx {
		if !s.bits.Test(uint(i)) {
			return false
		}
	}
	return true
}

// IsEmpty reports whether no bit is set. It runs in constant time.
func (s *Set) IsEmpty() bool {
	return s.ones == 0
}

// Clear resets every bit.
func (s *Set) Clear() {
	s.bits.ClearAll()
	s.ones = 0
}

// Union merges other into s with a bitwise OR and reports whether any bit
// changed. Both sets must share capacity and hash count; otherwise an error
// wrapping ErrConfigMismatch is returned and s is left untouched.
func (s *Set) Union(other *Set) (bool, error) {
	if err := s.compatible(other); err != nil {
		return false, err
	}

	s.bits.InPlaceUnion(other.bits)
	return s.recount(), nil
}

// Intersect keeps only the bits that are also set in other and reports
// whether any bit changed. Both sets must share capacity and hash count;
// otherwise an error wrapping ErrConfigMismatch is returned and s is left
// untouched.
//
// Values added to both sets still test present afterwards. Values added to
// only one side lose the no-false-negative guarantee.
func (s *Set) Intersect(other *Set) (bool, error) {
	if err := s.compatible(other); err != nil {
		return false, err
	}

	s.bits.InPlaceIntersection(other.bits)
	return s.recount(), nil
}

// Retain keeps only the bits belonging to values, as far as the set can tell,
// and reports whether any bit changed.
func (s *Set) Retain(values ...string) bool {
	keep := s.emptyLike()
	keep.AddAll(values...)

	// Configurations are identical by construction.
	changed, _ := s.Intersect(keep)
	return changed
}

// recount refreshes the cached population count and reports whether it moved.
// Union only sets bits and intersection only clears them, so any change to
// the array changes the count.
func (s *Set) recount() bool {
	ones := uint64(s.bits.Count())
	changed := ones != s.ones
	s.ones = ones
	return changed
}

func (s *Set) compatible(other *Set) error {
	if other == nil {
		return fmt.Errorf("%w: other set is nil", ErrConfigMismatch)
	}
	if s.capacityBits != other.capacityBits || s.k != other.k {
		return fmt.Errorf("%w: capacity=%d k=%d, other capacity=%d k=%d",
			ErrConfigMismatch, s.capacityBits, s.k, other.capacityBits, other.k)
	}
	return nil
}

// Equal reports whether s and other have the same hash count and identical
// bit arrays. It compares representation, not logical membership. Equal
// never fails; a nil set is equal to nothing, not even another nil set.
func (s *Set) Equal(other *Set) bool {
	if s == nil || other == nil {
		return false
	}
	if s == other {
		return true
	}
	if s.k != other.k || s.capacityBits != other.capacityBits || s.ones != other.ones {
		return false
	}
	return s.bits.Equal(other.bits)
}

// Hash returns a structural hash consistent with Equal: equal sets hash to
// the same value.
func (s *Set) Hash() uint64 {
	return structuralHash(s.capacityBits, s.k, s.bits.Words())
}

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set {
	return &Set{
		bits:         s.bits.Clone(),
		capacityBits: s.capacityBits,
		k:            s.k,
		ones:         s.ones,
		idx:          make([]uint32, s.k),
	}
}

// Cap returns the capacity of the set in bits.
func (s *Set) Cap() uint64 {
	return s.capacityBits
}

// K returns the number of hash functions used.
func (s *Set) K() uint32 {
	return s.k
}

// EstimatedFillRatio returns the proportion of bits that are set.
func (s *Set) EstimatedFillRatio() float64 {
	return float64(s.ones) / float64(s.capacityBits)
}

// ExpectedFalsePositiveRatio estimates the false positive ratio of this set's
// configuration once it holds items distinct values.
func (s *Set) ExpectedFalsePositiveRatio(items uint64) float64 {
	return ExpectedFalsePositiveRatio(items, s.capacityBits, s.k)
}
