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

package timeline_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/perfmark/host"
	"github.com/jetsetilly/perfmark/host/timeline"
	"github.com/jetsetilly/perfmark/test"
)

// clock that only moves when told to
type manualClock struct {
	t float64
}

func (c *manualClock) Now() float64 {
	return c.t
}

func TestMarkAndMeasure(t *testing.T) {
	clk := &manualClock{t: 100}
	tl := timeline.NewTimeline(clk)

	m, err := tl.Mark("a_start")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m.Type, host.EntryMark)
	test.ExpectEquality(t, m.Start, 100.0)

	clk.t = 125
	_, err = tl.Mark("a_end")
	test.ExpectSuccess(t, err)

	ms, err := tl.Measure("a", "a_start", "a_end")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ms.Type, host.EntryMeasure)
	test.ExpectEquality(t, ms.Duration, 25.0)
	test.ExpectEquality(t, ms.Start, 100.0)
	test.ExpectEquality(t, ms.End, 125.0)
}

func TestMissingMark(t *testing.T) {
	tl := timeline.NewTimeline(&manualClock{})

	_, err := tl.Measure("a", "a_start", "a_end")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, timeline.ErrNoSuchMark))

	_, _ = tl.Mark("a_start")
	_, err = tl.Measure("a", "a_start", "a_end")
	test.ExpectSuccess(t, errors.Is(err, timeline.ErrNoSuchMark))

	// no measure should have been recorded
	test.ExpectEquality(t, len(tl.GetEntriesByName("a")), 0)
}

func TestEmptyMarkNames(t *testing.T) {
	clk := &manualClock{t: 50}
	tl := timeline.NewTimeline(clk)

	// empty start is the time origin and empty end is now
	ms, err := tl.Measure("since origin", "", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ms.Duration, 50.0)
}

func TestMostRecentMark(t *testing.T) {
	clk := &manualClock{t: 10}
	tl := timeline.NewTimeline(clk)

	_, _ = tl.Mark("s")
	clk.t = 20
	_, _ = tl.Mark("s")
	clk.t = 35
	_, _ = tl.Mark("e")

	ms, err := tl.Measure("x", "s", "e")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ms.Duration, 15.0)

	// both marks are kept
	test.ExpectEquality(t, len(tl.GetEntriesByName("s")), 2)
}

func TestEntryOrder(t *testing.T) {
	clk := &manualClock{t: 10}
	tl := timeline.NewTimeline(clk)

	_, _ = tl.Mark("s1")
	clk.t = 20
	_, _ = tl.Mark("e1")
	clk.t = 5
	_, _ = tl.Mark("s2")

	_, _ = tl.Measure("x", "s1", "e1")
	_, _ = tl.Measure("x", "s2", "e1")

	entries := tl.GetEntriesByName("x")
	test.DemandEquality(t, len(entries), 2)
	test.ExpectEquality(t, entries[0].Start, 5.0)
	test.ExpectEquality(t, entries[1].Start, 10.0)
}

func TestClear(t *testing.T) {
	tl := timeline.NewTimeline(&manualClock{})

	_, _ = tl.Mark("a")
	_, _ = tl.Mark("b")
	_, _ = tl.Measure("m", "a", "b")
	_, _ = tl.Measure("n", "a", "b")

	tl.ClearMarks("a")
	test.ExpectEquality(t, len(tl.GetEntriesByName("a")), 0)
	test.ExpectEquality(t, len(tl.GetEntriesByName("b")), 1)

	tl.ClearMarks("")
	test.ExpectEquality(t, len(tl.GetEntriesByName("b")), 0)

	tl.ClearMeasures("m")
	test.ExpectEquality(t, len(tl.GetEntriesByName("m")), 0)
	test.ExpectEquality(t, len(tl.GetEntriesByName("n")), 1)

	tl.ClearMeasures("")
	test.ExpectEquality(t, len(tl.Names()), 0)
}

func TestNames(t *testing.T) {
	tl := timeline.NewTimeline(nil)

	_, _ = tl.Mark("a")
	_, _ = tl.Measure("zebra", "a", "")
	_, _ = tl.Measure("apple", "a", "")
	_, _ = tl.Measure("zebra", "a", "")

	names := tl.Names()
	test.DemandEquality(t, len(names), 2)
	test.ExpectEquality(t, names[0], "apple")
	test.ExpectEquality(t, names[1], "zebra")
}

func TestDefaultClock(t *testing.T) {
	tl := timeline.NewTimeline(nil)
	a := tl.Now()
	b := tl.Now()
	test.ExpectSuccess(t, b >= a)
	test.ExpectSuccess(t, a >= 0)
}

func TestBufferSize(t *testing.T) {
	clk := &manualClock{}
	tl := timeline.NewTimeline(clk)
	tl.SetBufferSize(2)

	for i := range 5 {
		clk.t = float64(i)
		_, _ = tl.Mark("a")
		_, _ = tl.Measure("m", "a", "")
	}

	marks := tl.GetEntriesByName("a")
	test.DemandEquality(t, len(marks), 2)
	test.ExpectEquality(t, marks[0].Start, 3.0)
	test.ExpectEquality(t, marks[1].Start, 4.0)
	test.ExpectEquality(t, len(tl.GetEntriesByName("m")), 2)

	// removing the limit does not bring entries back
	tl.SetBufferSize(0)
	_, _ = tl.Mark("a")
	test.ExpectEquality(t, len(tl.GetEntriesByName("a")), 3)
}
