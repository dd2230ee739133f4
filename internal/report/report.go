// Package report renders benchmark reports as text.
package report

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/msto63/strlab/foundation/utils/stringx"
	"github.com/msto63/strlab/pkg/bench"
)

// Ellipsis marks a truncated sequence
const Ellipsis = "..."

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// FormatDuration picks seconds, milliseconds or nanoseconds depending on
// the magnitude of d.
func FormatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return fmt.Sprintf("%.4f s", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.4f ms", float64(d)/float64(time.Millisecond))
	default:
		return fmt.Sprintf("%d ns", d.Nanoseconds())
	}
}

// Table renders the results as a Method | Time | Description table
func Table(results []bench.Result) string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{r.Label, FormatDuration(r.Elapsed), r.Description})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Method", "Time", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Render()
}

// Sequences returns one "Result N: ..." line per strategy. A positive
// maxChars truncates each sequence to that many characters.
func Sequences(r *bench.Report, maxChars int) []string {
	lines := make([]string, 0, len(r.Results))
	seq := r.Sequence
	if maxChars > 0 {
		seq = stringx.Truncate(seq, maxChars, Ellipsis)
	}
	for i := range r.Results {
		lines = append(lines, fmt.Sprintf("Result %d: %s", i+1, seq))
	}
	return lines
}

// Benchmark renders the full task 1 output: the heading, the sequences and
// the performance table.
func Benchmark(r *bench.Report, maxChars int) []string {
	lines := []string{fmt.Sprintf("# Generating sequence for n = %d", r.N), ""}
	lines = append(lines, Sequences(r, maxChars)...)
	lines = append(lines, "", "# Performance Comparison", Table(r.Results))
	return lines
}
