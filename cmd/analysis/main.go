// Command analysis compares predicted and measured false positive rates of
// bloomset.Set across a range of bits-per-item budgets.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/jcalabro/bloomset"
)

type result struct {
	bitsPerItem uint64
	k           uint32
	predicted   float64
	measured    float64
}

func main() {
	items := flag.Int("items", 100_000, "number of members inserted per configuration")
	seed := flag.Int64("seed", 1, "key namespace; each seed measures a different sample")
	verbose := flag.Bool("v", false, "log progress to stderr")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *items <= 0 {
		logger.Error("items must be positive", "items", *items)
		os.Exit(2)
	}

	results := analyze(logger, *seed, *items, []uint64{4, 8, 10, 16})
	if err := report(os.Stdout, results); err != nil {
		logger.Error("write report", "error", err)
		os.Exit(1)
	}
}

// analyze inserts items members into a set per bits-per-item budget and
// measures the false positive rate over items disjoint non-members. Keys are
// namespaced by seed.
func analyze(logger *slog.Logger, seed int64, items int, budgets []uint64) []result {
	results := make([]result, 0, len(budgets))
	for _, bpi := range budgets {
		s := bloomset.NewWithCapacity(bpi*uint64(items), uint64(items))
		for i := range items {
			s.AddString(fmt.Sprintf("member-%d-%d", seed, i))
		}

		var hits int
		for i := range items {
			if s.TestString(fmt.Sprintf("nonmember-%d-%d", seed, i)) {
				hits++
			}
		}

		r := result{
			bitsPerItem: bpi,
			k:           s.K(),
			predicted:   s.ExpectedFalsePositiveRatio(uint64(items)),
			measured:    float64(hits) / float64(items),
		}
		logger.Debug("configuration measured",
			"seed", seed, "bits_per_item", r.bitsPerItem, "k", r.k,
			"predicted", r.predicted, "measured", r.measured)
		results = append(results, r)
	}
	return results
}

func report(w io.Writer, results []result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "bits/item\tk\tpredicted\tmeasured\tratio")
	for _, r := range results {
		ratio := 0.0
		if r.predicted > 0 {
			ratio = r.measured / r.predicted
		}
		fmt.Fprintf(tw, "%d\t%d\t%.5f\t%.5f\t%.2f\n", r.bitsPerItem, r.k, r.predicted, r.measured, ratio)
	}
	return tw.Flush()
}
