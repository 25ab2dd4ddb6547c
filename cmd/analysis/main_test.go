package main

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	results := analyze(logger, 1, 5000, []uint64{8, 10})
	require.Len(t, results, 2)

	assert.Equal(t, uint32(6), results[0].k)
	assert.Equal(t, uint32(7), results[1].k)

	for _, r := range results {
		t.Logf("bits/item=%d k=%d predicted=%.4f measured=%.4f", r.bitsPerItem, r.k, r.predicted, r.measured)
		assert.Greater(t, r.predicted, r.measured*0.5)
		assert.Less(t, r.predicted, r.measured*2.0)
	}
}

func TestAnalyzeSeedsSampleDifferentKeys(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	first := analyze(logger, 1, 5000, []uint64{8})
	second := analyze(logger, 2, 5000, []uint64{8})
	require.Len(t, first, 1)
	require.Len(t, second, 1)

	assert.Equal(t, first[0].k, second[0].k)
	assert.Equal(t, first[0].predicted, second[0].predicted)
	assert.NotEqual(t, first[0].measured, second[0].measured)

	again := analyze(logger, 1, 5000, []uint64{8})
	assert.Equal(t, first[0].measured, again[0].measured)
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	err := report(&buf, []result{
		{bitsPerItem: 8, k: 6, predicted: 0.02, measured: 0.03},
		{bitsPerItem: 16, k: 11, predicted: 0, measured: 0},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "bits/item"))
	assert.Contains(t, lines[1], "0.02000")
	assert.Contains(t, lines[1], "1.50")
	assert.Contains(t, lines[2], "0.00")
}
