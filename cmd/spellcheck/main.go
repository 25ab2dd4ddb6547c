// Command spellcheck reports words read from stdin that are missing from a
// word list, using a bloomset.Set as the dictionary.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/jcalabro/bloomset"
)

// maxTokenSize bounds a single word-list line or input token.
const maxTokenSize = math.MaxInt32

const usage = `Performs spell-checking against a given
dictionary using a bloom set.

Usage:
  ./program <path_to_word_list>
  - provide words to check to stdin
  - non-matching words are reported to stdout
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("spellcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	kb := fs.Uint64("kb", 256, "size of the dictionary bit array in KiB")
	expected := fs.Uint64("expected", 250_000, "expected number of dictionary words")
	verbose := fs.Bool("v", false, "log debug information to stderr")
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprint(stderr, usage)
		return 0
	}
	if *kb > bloomset.MaxCapacityBits/(1024*8) {
		fmt.Fprintf(stderr, "-kb must be at most %d\n", bloomset.MaxCapacityBits/(1024*8))
		fs.Usage()
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	dict := bloomset.NewWithCapacity(*kb*1024*8, *expected)
	logger.Debug("dictionary configured",
		"capacity_bits", dict.Cap(),
		"k", dict.K(),
		"expected_fp", dict.ExpectedFalsePositiveRatio(*expected))

	path := fs.Arg(0)
	words, err := loadWordList(dict, path)
	if err != nil {
		logger.Debug("load word list", "path", path, "error", err)
		fmt.Fprintf(stderr, "Failed to load word list from %s\n", path)
		return 1
	}
	logger.Debug("word list loaded", "path", path, "words", words, "fill_ratio", dict.EstimatedFillRatio())

	misses, err := check(dict, stdin, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to read input: %v\n", err)
		return 1
	}
	logger.Debug("input checked", "misses", misses)

	return 0
}

// loadWordList adds every line of the file at path, lower-cased, to dict.
func loadWordList(dict *bloomset.Set, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var n int
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	for sc.Scan() {
		dict.AddString(strings.ToLower(sc.Text()))
		n++
	}
	return n, sc.Err()
}

// check writes each token from r that dict reports absent to w, one per line.
func check(dict *bloomset.Set, r io.Reader, w io.Writer) (misses int, err error) {
	out := bufio.NewWriter(w)
	defer func() {
		// misses found before a failure still reach w
		if ferr := out.Flush(); err == nil {
			err = ferr
		}
	}()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	sc.Split(scanTokens)
	for sc.Scan() {
		word := strings.ToLower(sc.Text())
		if dict.TestString(word) {
			continue
		}
		misses++
		if _, err := fmt.Fprintln(out, word); err != nil {
			return misses, err
		}
	}
	return misses, sc.Err()
}

// scanTokens is a bufio.SplitFunc yielding runs of ASCII letters and digits.
// Every other byte, including any non-ASCII byte, is a delimiter.
func scanTokens(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && !isWordByte(data[start]) {
		start++
	}
	for i := start; i < len(data); i++ {
		if !isWordByte(data[i]) {
			return i + 1, data[start:i], nil
		}
	}
	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	// Request more data, keeping the partial token.
	return start, nil, nil
}

func isWordByte(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || ('0' <= b && b <= '9')
}
