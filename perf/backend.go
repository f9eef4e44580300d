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

package perf

import (
	"math"
	"slices"
	"sync"

	"github.com/eapache/queue"
	"github.com/jetsetilly/perfmark/host"
)

// Backend is where marks and measures are recorded. The backend is chosen
// once, when the Perf instance is created.
type Backend interface {
	Mark(name string) (host.Entry, error)

	// a nil entry with a nil error means that the measure was recorded but
	// the backend does not return measures
	Measure(name string, start string, end string) (*host.Entry, error)

	ClearMarks(name string)
	ClearMeasures(name string)
	GetEntriesByName(name string) []host.Entry
	Names() []string
}

// NativeClock is a Backend that delegates everything to a host timeline.
// Errors from the timeline are returned unchanged.
type NativeClock struct {
	timeline host.Timeline
}

// NewNativeClock is the preferred method of initialisation for the NativeClock
// type.
func NewNativeClock(timeline host.Timeline) *NativeClock {
	return &NativeClock{timeline: timeline}
}

// Mark implements the Backend interface.
func (nc *NativeClock) Mark(name string) (host.Entry, error) {
	return nc.timeline.Mark(name)
}

// Measure implements the Backend interface.
func (nc *NativeClock) Measure(name string, start string, end string) (*host.Entry, error) {
	e, err := nc.timeline.Measure(name, start, end)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ClearMarks implements the Backend interface.
func (nc *NativeClock) ClearMarks(name string) {
	nc.timeline.ClearMarks(name)
}

// ClearMeasures implements the Backend interface.
func (nc *NativeClock) ClearMeasures(name string) {
	nc.timeline.ClearMeasures(name)
}

// GetEntriesByName implements the Backend interface.
func (nc *NativeClock) GetEntriesByName(name string) []host.Entry {
	entries := nc.timeline.GetEntriesByName(name)
	if entries == nil {
		return []host.Entry{}
	}
	return entries
}

// Names implements the Backend interface.
func (nc *NativeClock) Names() []string {
	return nc.timeline.Names()
}

// FallbackClock is a Backend used when the host has no timeline. Marks are
// kept in a map, with the most recent mark for a name replacing any previous
// mark. Measures are kept in a queue for each name.
type FallbackClock struct {
	crit sync.Mutex

	now func() float64

	marks    map[string]float64
	measures map[string]*queue.Queue

	// maximum length of each measures queue. zero means no maximum
	maxMeasures int
}

// NewFallbackClock is the preferred method of initialisation for the
// FallbackClock type.
func NewFallbackClock(now func() float64, maxMeasures int) *FallbackClock {
	return &FallbackClock{
		now:         now,
		marks:       make(map[string]float64),
		measures:    make(map[string]*queue.Queue),
		maxMeasures: maxMeasures,
	}
}

// Mark implements the Backend interface.
func (fc *FallbackClock) Mark(name string) (host.Entry, error) {
	t := fc.now()

	fc.crit.Lock()
	defer fc.crit.Unlock()
	fc.marks[name] = t

	return host.NewMark(name, t), nil
}

// Measure implements the Backend interface. A missing mark is not an error but
// the resulting duration will be NaN. The entry is not returned.
func (fc *FallbackClock) Measure(name string, start string, end string) (*host.Entry, error) {
	fc.crit.Lock()
	defer fc.crit.Unlock()

	s, ok := fc.marks[start]
	if !ok {
		s = math.NaN()
	}
	e, ok := fc.marks[end]
	if !ok {
		e = math.NaN()
	}

	q, ok := fc.measures[name]
	if !ok {
		q = queue.New()
		fc.measures[name] = q
	}

	q.Add(host.NewMeasure(name, s, e))
	if fc.maxMeasures > 0 && q.Length() > fc.maxMeasures {
		q.Remove()
	}

	return nil, nil
}

// ClearMarks implements the Backend interface.
func (fc *FallbackClock) ClearMarks(name string) {
	fc.crit.Lock()
	defer fc.crit.Unlock()
	if name != "" {
		delete(fc.marks, name)
		return
	}
	fc.marks = make(map[string]float64)
}

// ClearMeasures implements the Backend interface.
func (fc *FallbackClock) ClearMeasures(name string) {
	fc.crit.Lock()
	defer fc.crit.Unlock()
	if name != "" {
		delete(fc.measures, name)
		return
	}
	fc.measures = make(map[string]*queue.Queue)
}

// GetEntriesByName implements the Backend interface. Entries are in the order
// they were recorded.
func (fc *FallbackClock) GetEntriesByName(name string) []host.Entry {
	fc.crit.Lock()
	defer fc.crit.Unlock()

	q, ok := fc.measures[name]
	if !ok {
		return []host.Entry{}
	}

	entries := make([]host.Entry, q.Length())
	for i := range entries {
		entries[i] = q.Get(i).(host.Entry)
	}
	return entries
}

// Names implements the Backend interface.
func (fc *FallbackClock) Names() []string {
	fc.crit.Lock()
	defer fc.crit.Unlock()

	names := make([]string, 0, len(fc.measures))
	for n := range fc.measures {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
