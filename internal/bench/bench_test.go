package bench

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	s := summarize([]float64{1, 2, 3, 4, 5})
	assert.InDelta(t, 3.0, s.Mean, 1e-9)
	assert.InDelta(t, 3.0, s.Median, 1e-9)
	assert.InDelta(t, 1.0, s.Min, 1e-9)
	assert.InDelta(t, 5.0, s.Max, 1e-9)
	// Sample stddev of 1..5.
	assert.InDelta(t, 1.5811388300841898, s.StdDev, 1e-9)
}

func TestSummarize_EvenCountMedian(t *testing.T) {
	s := summarize([]float64{4, 1, 3, 2})
	assert.InDelta(t, 2.5, s.Median, 1e-9)
}

func TestSummarize_Degenerate(t *testing.T) {
	assert.Zero(t, summarize(nil))

	s := summarize([]float64{7})
	assert.InDelta(t, 7.0, s.Mean, 1e-9)
	assert.Zero(t, s.StdDev, "single observation has no spread")
}

func TestRun(t *testing.T) {
	res := Run(Options{Iterations: 3})
	assert.Equal(t, 3, res.Iterations)

	for name, vr := range map[string]VariantResult{
		"western":  res.Western,
		"japanese": res.Japanese,
	} {
		assert.Greater(t, vr.Encode.Mean, 0.0, "%s encode", name)
		assert.Greater(t, vr.Decode.Mean, 0.0, "%s decode", name)
		assert.GreaterOrEqual(t, vr.Encode.Max, vr.Encode.Min, "%s encode", name)
	}
}

func TestRun_ZeroIterationsUsesDefaultCount(t *testing.T) {
	if testing.Short() {
		t.Skip("full default run is slow")
	}
	res := Run(Options{})
	assert.Equal(t, DefaultIterations, res.Iterations)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, Run(Options{Iterations: 1})))

	var decoded Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 1, decoded.Iterations)
	assert.Greater(t, decoded.Western.Encode.Mean, 0.0)
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, Run(Options{Iterations: 1})))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "pkm3text Benchmark Report")
	assert.Contains(t, out, "Japanese")
	assert.Contains(t, out, `class="bar"`)
}
