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

package report_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/perfmark/host"
	"github.com/jetsetilly/perfmark/perf"
	"github.com/jetsetilly/perfmark/report"
	"github.com/jetsetilly/perfmark/test"
)

type manualClock struct {
	t float64
}

func (c *manualClock) Now() float64 {
	return c.t
}

func measured(t *testing.T) *perf.Perf {
	t.Helper()

	clk := &manualClock{}
	p := perf.NewPerf(host.Environment{Clock: clk}, perf.DefaultConfig())

	for _, d := range []float64{10, 20, 30} {
		_, _ = p.Start("render")
		clk.t += d
		_, _ = p.End("render")
	}

	_, _ = p.Start("audio")
	clk.t += 2.5
	_, _ = p.End("audio")

	// a measure with missing marks
	_, _ = p.Measure("broken", "nothing", "nothing")

	return p
}

func TestTable(t *testing.T) {
	p := measured(t)
	w := &strings.Builder{}

	err := report.WriteTable(w, p, nil, nil)
	test.DemandSuccess(t, err)

	out := w.String()
	test.ExpectSuccess(t, strings.Contains(out, "render"))
	test.ExpectSuccess(t, strings.Contains(out, "audio"))
	test.ExpectSuccess(t, strings.Contains(out, "20.000"))
	test.ExpectSuccess(t, strings.Contains(out, "2.500"))
	test.ExpectSuccess(t, strings.Contains(out, "P50"))
	test.ExpectSuccess(t, strings.Contains(out, "P99"))
	test.ExpectFailure(t, strings.Contains(out, "P 50"))

	// header names are not reformatted
	test.ExpectSuccess(t, strings.Contains(out, "Count"))

	// the NaN values of the broken measure
	test.ExpectSuccess(t, strings.Contains(out, "broken"))
	test.ExpectSuccess(t, strings.Contains(out, "-"))
}

func TestTableSelection(t *testing.T) {
	p := measured(t)
	w := &strings.Builder{}

	err := report.WriteTable(w, p, []string{"audio"}, []float64{0.25})
	test.DemandSuccess(t, err)

	out := w.String()
	test.ExpectSuccess(t, strings.Contains(out, "audio"))
	test.ExpectFailure(t, strings.Contains(out, "render"))
	test.ExpectSuccess(t, strings.Contains(out, "P25"))
}

func TestChart(t *testing.T) {
	p := measured(t)
	w := &strings.Builder{}

	err := report.WriteChart(w, p, "perfmark test", nil)
	test.DemandSuccess(t, err)

	out := w.String()
	test.ExpectSuccess(t, strings.Contains(out, "<html"))
	test.ExpectSuccess(t, strings.Contains(out, "perfmark test"))
	test.ExpectSuccess(t, strings.Contains(out, "render"))
}
