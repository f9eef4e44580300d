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

package report

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/jetsetilly/perfmark/perf"
)

// WriteChart writes an HTML page containing a line chart. Each of the named
// measures is a series and each sample is a point in the series. If names is
// empty then all measures are included.
//
// Samples with a NaN duration are left out of the chart.
func WriteChart(w io.Writer, p *perf.Perf, title string, names []string) error {
	if len(names) == 0 {
		names = p.Names()
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: "duration of each sample"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "sample"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "ms"}),
	)

	// the x axis is long enough for the series with the most samples
	var longest int

	for _, n := range names {
		data := make([]opts.LineData, 0)
		for _, d := range p.Durations(n) {
			if math.IsNaN(d) {
				continue
			}
			data = append(data, opts.LineData{Value: d})
		}
		longest = max(longest, len(data))
		line.AddSeries(n, data)
	}

	xaxis := make([]int, longest)
	for i := range xaxis {
		xaxis[i] = i + 1
	}
	line.SetXAxis(xaxis)

	err := line.Render(w)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}

	return nil
}
