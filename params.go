package bloomset

import "math"

const (
	// MaxCapacityBits is the largest supported bit array. Index derivation
	// folds digest bytes into 32-bit accumulators, so positions must fit in
	// a signed 32-bit integer.
	MaxCapacityBits = math.MaxInt32
	// ln2 is the natural logarithm of 2.
	ln2 = 0.6931471805599453
	// ln2Squared is ln(2)^2.
	ln2Squared = 0.4804530139182014
)

// ExpectedFalsePositiveRatio estimates the false positive ratio of a set with
// capacityBits bits and k hashes after expectedItems distinct insertions.
// Formula: (1 - (1 - 1/m)^(k*n))^k
//
// The estimate assumes independent bit positions; it does not look at any
// set's actual contents.
func ExpectedFalsePositiveRatio(expectedItems, capacityBits uint64, k uint32) float64 {
	if capacityBits == 0 || k == 0 {
		return 0
	}

	m := float64(capacityBits)
	n := float64(expectedItems)
	kf := float64(k)

	return math.Pow(1-math.Pow(1-1/m, kf*n), kf)
}

// IdealHashCount returns the number of hashes that minimizes the expected
// false positive ratio for expectedItems insertions into capacityBits bits.
//
// The real-valued optimum is ln(2) * m / n. When it is at most 1 a single hash
// is returned. Otherwise the floor and ceiling are both evaluated with
// ExpectedFalsePositiveRatio and the better one wins (floor on ties).
func IdealHashCount(expectedItems, capacityBits uint64) uint32 {
	if expectedItems == 0 {
		expectedItems = 1
	}

	ideal := ln2 * float64(capacityBits) / float64(expectedItems)
	if ideal <= 1 {
		return 1
	}

	lo := uint32(math.Floor(ideal))
	hi := uint32(math.Ceil(ideal))
	if ExpectedFalsePositiveRatio(expectedItems, capacityBits, lo) <=
		ExpectedFalsePositiveRatio(expectedItems, capacityBits, hi) {
		return lo
	}
	return hi
}

// OptimalCapacity returns the number of bits needed to hold expectedItems
// with roughly the given false positive rate, assuming the ideal hash count.
// The result is clamped to [1, MaxCapacityBits].
func OptimalCapacity(expectedItems uint64, fpRate float64) uint64 {
	if expectedItems == 0 {
		expectedItems = 1
	}
	if fpRate <= 0 {
		fpRate = 0.0001 // default to 0.01%
	}
	if fpRate >= 1 {
		fpRate = 0.99
	}

	// Optimal bits per item: -ln(fpRate) / ln(2)^2
	bitsPerItem := -math.Log(fpRate) / ln2Squared
	totalBits := math.Ceil(float64(expectedItems) * bitsPerItem)

	if totalBits >= MaxCapacityBits {
		return MaxCapacityBits
	}
	return max(uint64(totalBits), 1)
}
