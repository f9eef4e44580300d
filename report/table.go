// This file is part of Perfmark.
//
// Perfmark is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Perfmark is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Perfmark.  If not, see <https://www.gnu.org/licenses/>.

// Package report writes summaries of the measures recorded by a perf.Perf
// instance. WriteTable() writes a text table suitable for a terminal.
// WriteChart() writes an HTML page with a line chart of every sample.
package report

import (
	"fmt"
	"io"
	"math"

	"github.com/jetsetilly/perfmark/perf"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// DefaultPercentiles are the percentiles used by WriteTable() if none are
// specified.
var DefaultPercentiles = []float64{0.5, 0.9, 0.99}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.3f", v)
}

// WriteTable writes a table of statistics for each of the named measures. If
// names is empty then all measures are included. Durations are in
// milliseconds.
func WriteTable(w io.Writer, p *perf.Perf, names []string, percentiles []float64) error {
	if len(names) == 0 {
		names = p.Names()
	}
	if len(percentiles) == 0 {
		percentiles = DefaultPercentiles
	}

	header := []any{"Name", "Count", "Last", "Mean", "Sdev", "Min", "Max"}
	for _, pc := range percentiles {
		header = append(header, fmt.Sprintf("P%g", pc*100))
	}

	// header text is printed as given. the default formatting splits "P50"
	// into "P 50"
	table := tablewriter.NewTable(w, tablewriter.WithHeaderAutoFormat(tw.Off))
	table.Header(header...)

	for _, n := range names {
		s := p.Summary(n, percentiles...)
		row := []string{
			s.Name,
			fmt.Sprintf("%d", s.Count),
			formatValue(s.Last),
			formatValue(s.Mean),
			formatValue(s.Sdev),
			formatValue(s.Min),
			formatValue(s.Max),
		}
		for _, v := range s.Values {
			row = append(row, formatValue(v))
		}
		err := table.Append(row)
		if err != nil {
			return fmt.Errorf("report: %w", err)
		}
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}

	return nil
}
