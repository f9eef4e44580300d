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

package host

import "fmt"

// EntryType distinguishes marks from measures.
type EntryType int

// List of valid EntryType values.
const (
	EntryMark EntryType = iota
	EntryMeasure
)

func (t EntryType) String() string {
	switch t {
	case EntryMark:
		return "mark"
	case EntryMeasure:
		return "measure"
	}
	return "unknown"
}

// Entry is a single mark or measure. All values are in milliseconds.
//
// For a mark, Start and End are the same value and Duration is zero.
//
// For a measure, Start and End are the timestamps of the two marks and
// Duration is the difference. If a mark was not present then the related
// fields will be NaN.
type Entry struct {
	Name     string
	Type     EntryType
	Start    float64
	End      float64
	Duration float64
}

// NewMark creates a mark entry for the timestamp.
func NewMark(name string, t float64) Entry {
	return Entry{
		Name:  name,
		Type:  EntryMark,
		Start: t,
		End:   t,
	}
}

// NewMeasure creates a measure entry between the start and end timestamps.
func NewMeasure(name string, start float64, end float64) Entry {
	return Entry{
		Name:     name,
		Type:     EntryMeasure,
		Start:    start,
		End:      end,
		Duration: end - start,
	}
}

func (e Entry) String() string {
	if e.Type == EntryMark {
		return fmt.Sprintf("%s %s @ %.3fms", e.Type, e.Name, e.Start)
	}
	return fmt.Sprintf("%s %s %.3fms (%.3f -> %.3f)", e.Type, e.Name, e.Duration, e.Start, e.End)
}
