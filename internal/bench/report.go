package bench

import (
	"encoding/json"
	"html/template"
	"io"
	"time"
)

// WriteJSON writes the raw statistics as indented JSON.
func WriteJSON(w io.Writer, res Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// WriteHTML renders the statistics as a standalone HTML report with a
// summary table and a bar chart of mean call times.
func WriteHTML(w io.Writer, res Result) error {
	return reportTmpl.Execute(w, newReportData(res))
}

type reportRow struct {
	Variant   string
	Operation string
	Stats     Stats
	// BarPct is the row's mean relative to the slowest row, 0-100.
	BarPct float64
}

type reportData struct {
	Generated  string
	Iterations int
	Rows       []reportRow
}

func newReportData(res Result) reportData {
	rows := []reportRow{
		{Variant: "Western", Operation: "encode", Stats: res.Western.Encode},
		{Variant: "Western", Operation: "decode", Stats: res.Western.Decode},
		{Variant: "Japanese", Operation: "encode", Stats: res.Japanese.Encode},
		{Variant: "Japanese", Operation: "decode", Stats: res.Japanese.Decode},
	}

	var slowest float64
	for _, r := range rows {
		if r.Stats.Mean > slowest {
			slowest = r.Stats.Mean
		}
	}
	if slowest > 0 {
		for i := range rows {
			rows[i].BarPct = rows[i].Stats.Mean / slowest * 100
		}
	}

	return reportData{
		Generated:  time.Now().Format(time.RFC1123),
		Iterations: res.Iterations,
		Rows:       rows,
	}
}

var reportTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<title>pkm3text Benchmark Report</title>
<style>
  body { font-family: Arial, sans-serif; margin: 20px; line-height: 1.6; }
  h1, h2 { color: #333; }
  .container { max-width: 1000px; margin: 0 auto; }
  table { width: 100%; border-collapse: collapse; margin: 20px 0; }
  th, td { padding: 8px; text-align: right; border: 1px solid #ddd; }
  th { background-color: #f2f2f2; font-weight: bold; }
  td.label, th.label { text-align: left; }
  tr:hover { background-color: #f5f5f5; }
  .bar-row { margin: 6px 0; }
  .bar-label { display: inline-block; width: 180px; }
  .bar { display: inline-block; height: 18px; background-color: #4a90d9; vertical-align: middle; }
</style>
</head>
<body>
<div class="container">
<h1>pkm3text Benchmark Report</h1>
<p>Generated {{.Generated}} &mdash; {{.Iterations}} iterations per sample. Times in milliseconds per call.</p>

<h2>Results</h2>
<table>
<tr>
  <th class="label">Variant</th><th class="label">Operation</th>
  <th>Mean</th><th>Median</th><th>Min</th><th>Max</th><th>StdDev</th>
</tr>
{{range .Rows}}<tr>
  <td class="label">{{.Variant}}</td><td class="label">{{.Operation}}</td>
  <td>{{printf "%.6f" .Stats.Mean}}</td>
  <td>{{printf "%.6f" .Stats.Median}}</td>
  <td>{{printf "%.6f" .Stats.Min}}</td>
  <td>{{printf "%.6f" .Stats.Max}}</td>
  <td>{{printf "%.6f" .Stats.StdDev}}</td>
</tr>
{{end}}</table>

<h2>Mean call time</h2>
{{range .Rows}}<div class="bar-row">
  <span class="bar-label">{{.Variant}} {{.Operation}}</span><span class="bar" style="width: {{printf "%.1f" .BarPct}}%"></span>
</div>
{{end}}</div>
</body>
</html>
`))
