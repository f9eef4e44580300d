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

// Clock is a source of timestamps. Values are in milliseconds from an
// arbitrary origin and may have a fractional part.
type Clock interface {
	Now() float64
}

// Timeline is a host facility that records marks and measures. How entries are
// stored and retrieved is entirely up to the implementation.
type Timeline interface {
	// Mark records the current time under name.
	Mark(name string) (Entry, error)

	// Measure records the duration between the start and end marks. An
	// implementation will normally return an error if either mark doesn't
	// exist.
	Measure(name string, start string, end string) (Entry, error)

	// ClearMarks removes marks with the name. An empty name removes all marks.
	ClearMarks(name string)

	// ClearMeasures removes measures with the name. An empty name removes all
	// measures.
	ClearMeasures(name string)

	// GetEntriesByName returns all entries with the name.
	GetEntriesByName(name string) []Entry

	// Names returns the names of all recorded measures.
	Names() []string
}

// Scheduler runs a function once at some point in the future. A frame
// scheduler will run the function before the next frame is drawn. A timer
// scheduler will run the function after a short delay.
type Scheduler interface {
	Schedule(fn func())
}

// Environment describes the facilities offered by the host. Every field is
// optional and a nil field indicates that the facility is not available.
type Environment struct {
	// high resolution clock
	Clock Clock

	// native mark and measure support
	Timeline Timeline

	// per-frame callback scheduler
	Frames Scheduler

	// delayed callback scheduler. used if Frames is nil
	Timer Scheduler
}

// Capabilities of a host Environment.
type Capabilities struct {
	HasNow  bool
	HasMark bool
}

// Detect the capabilities of the Environment.
func Detect(env Environment) Capabilities {
	return Capabilities{
		HasNow:  env.Clock != nil,
		HasMark: env.Timeline != nil,
	}
}
