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

package cli

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jetsetilly/perfmark/host"
	"github.com/jetsetilly/perfmark/host/timeline"
	"github.com/jetsetilly/perfmark/logger"
	"github.com/jetsetilly/perfmark/metrics"
	"github.com/jetsetilly/perfmark/perf"
	"github.com/jetsetilly/perfmark/test"
)

type manualClock struct {
	t float64
}

func (c *manualClock) Now() float64 {
	return c.t
}

// scheduler that only runs functions when step() is called
type manualScheduler struct {
	pending []func()
}

func (s *manualScheduler) Schedule(fn func()) {
	s.pending = append(s.pending, fn)
}

func (s *manualScheduler) step() {
	run := s.pending
	s.pending = nil
	for _, fn := range run {
		fn()
	}
}

func newManualPerf() (*perf.Perf, *manualClock, *manualScheduler) {
	clk := &manualClock{}
	sched := &manualScheduler{}
	env := host.Environment{
		Clock:    clk,
		Timeline: timeline.NewTimeline(clk),
		Frames:   sched,
	}
	return perf.NewPerf(env, perf.DefaultConfig()), clk, sched
}

func TestMeasureFrames(t *testing.T) {
	p, clk, sched := newManualPerf()

	stop := measureFrames(p, sched)
	for _, d := range []float64{16, 17, 16} {
		clk.t += d
		sched.step()
	}

	test.DemandEquality(t, len(p.Durations(frameMeasure)), 3)
	test.ExpectEquality(t, p.Mean(frameMeasure), 49.0/3.0)

	stop()
	clk.t += 16
	sched.step()
	test.ExpectEquality(t, len(p.Durations(frameMeasure)), 3)
	test.ExpectEquality(t, len(sched.pending), 0)
}

func TestMeasureFramesError(t *testing.T) {
	p, clk, sched := newManualPerf()

	logger.Clear()
	stop := measureFrames(p, sched)
	defer stop()

	// the native timeline refuses to measure without the start mark
	p.ClearMarks("")
	clk.t += 16
	sched.step()

	w := &test.Writer{}
	logger.Write(w)
	test.ExpectSuccess(t, w.Contains("frame measure"))
	test.ExpectSuccess(t, w.Contains("no such mark"))

	// measuring continues on the next frame
	clk.t += 16
	sched.step()
	test.ExpectEquality(t, len(p.Durations(frameMeasure)), 1)
}

func get(t *testing.T, h http.Handler, method string, url string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, url, nil))
	return rec
}

func TestRouter(t *testing.T) {
	p, clk, _ := newManualPerf()

	_, _ = p.Start("load")
	clk.t = 12.5
	_, _ = p.End("load")

	reg, err := metrics.NewRegistry(metrics.NewCollector(p, nil, false))
	test.DemandSuccess(t, err)
	r := newRouter(p, reg)

	rec := get(t, r, http.MethodGet, "/entries")
	test.ExpectEquality(t, rec.Code, http.StatusOK)
	test.ExpectEquality(t, strings.TrimSpace(rec.Body.String()), "load")

	rec = get(t, r, http.MethodGet, "/entries/load")
	test.ExpectEquality(t, rec.Code, http.StatusOK)
	test.ExpectSuccess(t, strings.Contains(rec.Body.String(), "12.500ms"))

	rec = get(t, r, http.MethodGet, "/entries/missing")
	test.ExpectEquality(t, rec.Code, http.StatusNotFound)

	rec = get(t, r, http.MethodGet, "/report")
	test.ExpectEquality(t, rec.Code, http.StatusOK)
	test.ExpectSuccess(t, strings.Contains(rec.Body.String(), "load"))

	rec = get(t, r, http.MethodGet, "/metrics")
	test.ExpectEquality(t, rec.Code, http.StatusOK)
	test.ExpectSuccess(t, strings.Contains(rec.Body.String(), "perfmark_measure_count"))

	rec = get(t, r, http.MethodPost, "/metrics")
	test.ExpectEquality(t, rec.Code, http.StatusMethodNotAllowed)
}
