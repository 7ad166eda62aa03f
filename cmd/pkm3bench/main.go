// Command pkm3bench benchmarks the pkm3text codecs and renders the
// timings as a console table, a JSON results file and an optional HTML
// report.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pkmtools/pkm3text/internal/bench"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("benchmark failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		iterations int
		jsonPath   string
		htmlPath   string
	)

	cmd := &cobra.Command{
		Use:   "pkm3bench",
		Short: "Benchmark the Generation III text codecs",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Info().Int("iterations", iterations).Msg("running benchmark")

			res := bench.Run(bench.Options{Iterations: iterations})
			printTable(res)

			if jsonPath != "" {
				if err := writeFile(jsonPath, res, bench.WriteJSON); err != nil {
					return fmt.Errorf("write json results: %w", err)
				}
				log.Info().Str("path", jsonPath).Msg("results saved")
			}
			if htmlPath != "" {
				if err := writeFile(htmlPath, res, bench.WriteHTML); err != nil {
					return fmt.Errorf("write html report: %w", err)
				}
				log.Info().Str("path", htmlPath).Msg("report generated")
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&iterations, "iterations", "i", bench.DefaultIterations, "iterations per sample")
	cmd.Flags().StringVarP(&jsonPath, "output", "o", "reports/benchmark_results.json", "JSON results path (empty to skip)")
	cmd.Flags().StringVar(&htmlPath, "html", "reports/benchmark_report.html", "HTML report path (empty to skip)")
	return cmd
}

func printTable(res bench.Result) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Variant", "Operation", "Mean", "Median", "Min", "Max", "StdDev"})

	for _, row := range []struct {
		variant, op string
		s           bench.Stats
	}{
		{"western", "encode", res.Western.Encode},
		{"western", "decode", res.Western.Decode},
		{"japanese", "encode", res.Japanese.Encode},
		{"japanese", "decode", res.Japanese.Decode},
	} {
		table.Append([]string{
			row.variant,
			row.op,
			fmt.Sprintf("%.6f", row.s.Mean),
			fmt.Sprintf("%.6f", row.s.Median),
			fmt.Sprintf("%.6f", row.s.Min),
			fmt.Sprintf("%.6f", row.s.Max),
			fmt.Sprintf("%.6f", row.s.StdDev),
		})
	}

	fmt.Println("Benchmark results (milliseconds per call)")
	table.Render()
}

func writeFile(path string, res bench.Result, render func(w io.Writer, r bench.Result) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return render(f, res)
}
