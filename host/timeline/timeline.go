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

// Package timeline is a native implementation of the host.Timeline and
// host.Clock interfaces. It follows the rules of the user timing API found in
// web browsers:
//
//   - every mark is kept, even if the name has been used before. measures
//     refer to the most recent mark with the name
//   - measuring against a mark that doesn't exist is an error
//   - an empty start mark means the time origin, an empty end mark means now
//   - entries are returned in order of start time
//
// A Timeline is safe for concurrent use.
package timeline

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/jetsetilly/perfmark/host"
)

// ErrNoSuchMark is returned by Measure() when a named mark does not exist.
var ErrNoSuchMark = errors.New("no such mark")

// Timeline records marks and measures against a clock.
type Timeline struct {
	crit sync.Mutex

	clock host.Clock

	marks    []host.Entry
	measures []host.Entry

	// maximum number of marks and of measures. zero means no limit
	bufferSize int
}

// wallClock is the default clock for a Timeline. values are milliseconds since
// the clock was created
type wallClock struct {
	origin time.Time
}

func (c wallClock) Now() float64 {
	return float64(time.Since(c.origin).Nanoseconds()) / 1e6
}

// NewTimeline is the preferred method of initialisation for the Timeline type.
// The clock argument can be nil, in which case the Go monotonic clock is used
// with an origin of the time of creation.
func NewTimeline(clock host.Clock) *Timeline {
	if clock == nil {
		clock = wallClock{origin: time.Now()}
	}
	return &Timeline{
		clock: clock,
	}
}

// SetBufferSize limits the number of marks and the number of measures kept by
// the timeline. When the limit is reached the oldest entry is discarded. A size
// of zero or less means there is no limit.
func (tl *Timeline) SetBufferSize(size int) {
	tl.crit.Lock()
	defer tl.crit.Unlock()
	tl.bufferSize = max(size, 0)
	tl.marks = tl.trim(tl.marks)
	tl.measures = tl.trim(tl.measures)
}

// trim entries to the buffer size. must be called from inside the critical
// section
func (tl *Timeline) trim(entries []host.Entry) []host.Entry {
	if tl.bufferSize > 0 && len(entries) > tl.bufferSize {
		return slices.Delete(entries, 0, len(entries)-tl.bufferSize)
	}
	return entries
}

// Now implements the host.Clock interface.
func (tl *Timeline) Now() float64 {
	return tl.clock.Now()
}

// Mark implements the host.Timeline interface.
func (tl *Timeline) Mark(name string) (host.Entry, error) {
	e := host.NewMark(name, tl.clock.Now())

	tl.crit.Lock()
	defer tl.crit.Unlock()
	tl.marks = tl.trim(append(tl.marks, e))

	return e, nil
}

// lookup returns the timestamp of the most recent mark with the name. must be
// called from inside the critical section
func (tl *Timeline) lookup(name string) (float64, bool) {
	for i := len(tl.marks) - 1; i >= 0; i-- {
		if tl.marks[i].Name == name {
			return tl.marks[i].Start, true
		}
	}
	return 0, false
}

// Measure implements the host.Timeline interface. Returns ErrNoSuchMark if
// either mark has not been recorded.
func (tl *Timeline) Measure(name string, start string, end string) (host.Entry, error) {
	now := tl.clock.Now()

	tl.crit.Lock()
	defer tl.crit.Unlock()

	var s, e float64

	if start != "" {
		var ok bool
		s, ok = tl.lookup(start)
		if !ok {
			return host.Entry{}, fmt.Errorf("timeline: %w: %s", ErrNoSuchMark, start)
		}
	}

	e = now
	if end != "" {
		var ok bool
		e, ok = tl.lookup(end)
		if !ok {
			return host.Entry{}, fmt.Errorf("timeline: %w: %s", ErrNoSuchMark, end)
		}
	}

	m := host.NewMeasure(name, s, e)
	tl.measures = tl.trim(append(tl.measures, m))

	return m, nil
}

func removeEntries(entries []host.Entry, name string) []host.Entry {
	if name == "" {
		return entries[:0]
	}
	return slices.DeleteFunc(entries, func(e host.Entry) bool {
		return e.Name == name
	})
}

// ClearMarks implements the host.Timeline interface.
func (tl *Timeline) ClearMarks(name string) {
	tl.crit.Lock()
	defer tl.crit.Unlock()
	tl.marks = removeEntries(tl.marks, name)
}

// ClearMeasures implements the host.Timeline interface.
func (tl *Timeline) ClearMeasures(name string) {
	tl.crit.Lock()
	defer tl.crit.Unlock()
	tl.measures = removeEntries(tl.measures, name)
}

// GetEntriesByName implements the host.Timeline interface. Both marks and
// measures with the name are returned, ordered by start time. Entries with
// the same start time are in the order they were recorded, marks first.
func (tl *Timeline) GetEntriesByName(name string) []host.Entry {
	tl.crit.Lock()
	defer tl.crit.Unlock()

	entries := make([]host.Entry, 0)
	for _, e := range tl.marks {
		if e.Name == name {
			entries = append(entries, e)
		}
	}
	for _, e := range tl.measures {
		if e.Name == name {
			entries = append(entries, e)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Start < entries[j].Start
	})

	return entries
}

// Names implements the host.Timeline interface.
func (tl *Timeline) Names() []string {
	tl.crit.Lock()
	defer tl.crit.Unlock()

	names := make([]string, 0)
	for _, e := range tl.measures {
		if !slices.Contains(names, e.Name) {
			names = append(names, e.Name)
		}
	}
	slices.Sort(names)

	return names
}
