// Package bench times the codec's public encode/decode operations over
// fixed sample corpora and aggregates the timings into per-operation
// statistics. It contains no transform logic of its own.
package bench

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/pkmtools/pkm3text"
)

// Sample corpora, one per variant. Each entry is timed separately so the
// spread across entries shows up in the statistics.
var (
	WesternSamples = []string{
		strings.Repeat("HELLO WORLD!", 10),
		strings.Repeat("The quick brown fox jumps over the lazy dog.", 5),
		strings.Repeat("PIKACHU used THUNDERBOLT! It's super effective!", 8),
		strings.Repeat("POKéMON FireRed and LeafGreen are remakes of the original games.", 3),
		strings.Repeat("PROF. OAK: Welcome to the world of POKéMON!", 12),
	}

	JapaneseSamples = []string{
		strings.Repeat("こんにちは、せかい！", 10),
		strings.Repeat("ピカチュウの　１０まんボルト！　ばつぐんだ！", 8),
		strings.Repeat("ポケットモンスター　ファイアレッド・リーフグリーン", 5),
		strings.Repeat("オーキド：　ポケモンの　せかいへ　ようこそ！", 12),
		strings.Repeat("ふしぎな　いきもの　ポケモンの　せかい", 7),
	}
)

// DefaultIterations is the per-sample iteration count when Options leaves
// it unset.
const DefaultIterations = 5000

// Options configures a benchmark run.
type Options struct {
	// Iterations is the number of encode (and decode) calls timed per
	// sample (default: DefaultIterations).
	Iterations int
}

// Stats summarizes per-sample average call times, in milliseconds.
type Stats struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	StdDev float64 `json:"stdev"`
}

// VariantResult holds the encode and decode statistics for one variant.
type VariantResult struct {
	Encode Stats `json:"encode"`
	Decode Stats `json:"decode"`
}

// Result is a complete benchmark run.
type Result struct {
	Iterations int           `json:"iterations"`
	Western    VariantResult `json:"western"`
	Japanese   VariantResult `json:"japanese"`
}

// Run benchmarks both codecs over their sample corpora.
func Run(opts Options) Result {
	iters := opts.Iterations
	if iters <= 0 {
		iters = DefaultIterations
	}

	return Result{
		Iterations: iters,
		Western:    runVariant(pkm3text.WesternCodec(), WesternSamples, iters),
		Japanese:   runVariant(pkm3text.JapaneseCodec(), JapaneseSamples, iters),
	}
}

func runVariant(c *pkm3text.Codec, samples []string, iters int) VariantResult {
	encTimes := make([]float64, 0, len(samples))
	decTimes := make([]float64, 0, len(samples))

	for _, text := range samples {
		var encoded []byte

		start := time.Now()
		for i := 0; i < iters; i++ {
			encoded = c.Encode(text, pkm3text.Strict)
		}
		encTimes = append(encTimes, perCallMillis(time.Since(start), iters))

		start = time.Now()
		for i := 0; i < iters; i++ {
			_, _ = c.Decode(encoded, pkm3text.Strict)
		}
		decTimes = append(decTimes, perCallMillis(time.Since(start), iters))
	}

	return VariantResult{
		Encode: summarize(encTimes),
		Decode: summarize(decTimes),
	}
}

func perCallMillis(total time.Duration, iters int) float64 {
	return total.Seconds() * 1000 / float64(iters)
}

func summarize(times []float64) Stats {
	if len(times) == 0 {
		return Stats{}
	}

	sorted := append([]float64(nil), times...)
	sort.Float64s(sorted)

	var sum float64
	for _, t := range sorted {
		sum += t
	}
	mean := sum / float64(len(sorted))

	var median float64
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		median = (sorted[mid-1] + sorted[mid]) / 2
	} else {
		median = sorted[mid]
	}

	// Sample standard deviation; zero for a single observation.
	var stdev float64
	if len(sorted) > 1 {
		var ss float64
		for _, t := range sorted {
			d := t - mean
			ss += d * d
		}
		stdev = math.Sqrt(ss / float64(len(sorted)-1))
	}

	return Stats{
		Mean:   mean,
		Median: median,
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		StdDev: stdev,
	}
}
