package bloomset_test

import (
	"errors"
	"fmt"

	"github.com/jcalabro/bloomset"
)

// This example demonstrates basic set usage for membership testing.
func Example() {
	// Create a set for 10,000 items with 1% false positive rate
	s := bloomset.New(10_000, 0.01)

	// Add some items
	s.AddString("apple")
	s.AddString("banana")
	s.AddString("cherry")

	// Test membership
	fmt.Println("apple:", s.TestString("apple"))   // true (added)
	fmt.Println("banana:", s.TestString("banana")) // true (added)
	fmt.Println("grape:", s.TestString("grape"))   // false (not added)

	// Output:
	// apple: true
	// banana: true
	// grape: false
}

// This example shows how Add reports whether the set changed.
func Example_changed() {
	s := bloomset.NewWithParams(1024, 3)

	first, _ := s.Add([]byte("user:12345"))
	second, _ := s.Add([]byte("user:12345"))
	_, err := s.Add(nil)

	fmt.Println("first add changed:", first)
	fmt.Println("second add changed:", second)
	fmt.Println("nil rejected:", errors.Is(err, bloomset.ErrNilValue))

	// Output:
	// first add changed: true
	// second add changed: false
	// nil rejected: true
}

// This example shows how to monitor set statistics.
func Example_statistics() {
	s := bloomset.New(10_000, 0.01)

	// Add some items
	for i := range 5000 {
		s.AddString(fmt.Sprintf("item-%d", i))
	}

	fmt.Printf("Capacity: %d bits\n", s.Cap())
	fmt.Printf("Hash functions (k): %d\n", s.K())
	fmt.Printf("Fill ratio: %.1f%%\n", s.EstimatedFillRatio()*100)

	// Output:
	// Capacity: 95851 bits
	// Hash functions (k): 7
	// Fill ratio: 30.5%
}

// This example combines two sets that share a configuration.
func Example_union() {
	a := bloomset.NewWithParams(1024, 3)
	b := bloomset.NewWithParams(1024, 3)
	a.AddAll("abc", "def", "ghi")
	b.AddAll("def", "ghi", "jkl")

	changed, err := a.Union(b)
	fmt.Println("changed:", changed, "err:", err)
	fmt.Println("has jkl:", a.TestString("jkl"))

	_, err = a.Union(bloomset.NewWithParams(1024, 2))
	fmt.Println("mismatch:", errors.Is(err, bloomset.ErrConfigMismatch))

	// Output:
	// changed: true err: <nil>
	// has jkl: true
	// mismatch: true
}

// This example keeps only the values that also appear in a given list.
func Example_retain() {
	s := bloomset.NewWithParams(1024, 3)
	s.AddAll("abc", "def", "ghi")

	s.Retain("def", "ghi", "jkl")

	fmt.Println("abc:", s.TestString("abc"))
	fmt.Println("def:", s.TestString("def"))
	fmt.Println("jkl:", s.TestString("jkl"))

	// Output:
	// abc: false
	// def: true
	// jkl: false
}

func ExampleNewWithCapacity() {
	// 256 KiB of bits for about 250,000 words.
	s := bloomset.NewWithCapacity(256*1024*8, 250_000)

	fmt.Printf("k=%d expected FP=%.2f%%\n", s.K(), s.ExpectedFalsePositiveRatio(250_000)*100)

	// Output:
	// k=6 expected FP=1.78%
}

func ExampleIdealHashCount() {
	fmt.Println(bloomset.IdealHashCount(100_000, 96*1024*8))
	fmt.Println(bloomset.IdealHashCount(1000, 100))

	// Output:
	// 5
	// 1
}

func ExampleExpectedFalsePositiveRatio() {
	rate := bloomset.ExpectedFalsePositiveRatio(50_000, 512_000, 7)
	fmt.Printf("Estimated FP rate: %.2f%%\n", rate*100)

	// Output:
	// Estimated FP rate: 0.73%
}
