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
	"time"

	"github.com/jetsetilly/perfmark/host"
	"github.com/jetsetilly/perfmark/logger"
)

// Perf is the timing facade.
type Perf struct {
	cfg  Config
	caps host.Capabilities

	// clock is nil if the host has no high resolution clock
	clock host.Clock

	backend Backend

	// scheduler used by OnFPS()
	scheduler host.Scheduler
}

// NewPerf is the preferred method of initialisation for the Perf type. The
// capabilities of the environment are decided here and do not change.
func NewPerf(env host.Environment, cfg Config) *Perf {
	p := &Perf{
		cfg:   cfg.normalise(),
		caps:  host.Detect(env),
		clock: env.Clock,
	}

	if p.caps.HasMark {
		p.backend = NewNativeClock(env.Timeline)
	} else {
		p.backend = NewFallbackClock(p.Now, p.cfg.MaxMeasures)
	}

	switch {
	case env.Frames != nil:
		p.scheduler = env.Frames
	case env.Timer != nil:
		p.scheduler = env.Timer
	default:
		p.scheduler = host.NewTimerScheduler(0)
	}

	logger.Logf(logger.Allow, "perf", "high resolution clock: %v", p.caps.HasNow)
	logger.Logf(logger.Allow, "perf", "native timeline: %v", p.caps.HasMark)

	return p
}

// Capabilities returns the capabilities of the host environment.
func (p *Perf) Capabilities() host.Capabilities {
	return p.caps
}

// HasNow returns true if the high resolution clock is being used.
func (p *Perf) HasNow() bool {
	return p.caps.HasNow
}

// HasMark returns true if marks and measures are recorded by the host.
func (p *Perf) HasMark() bool {
	return p.caps.HasMark
}

// Config returns the configuration being used. Zero values in the config
// passed to NewPerf() will have been replaced by defaults.
func (p *Perf) Config() Config {
	return p.cfg
}

func (p *Perf) name(name string) string {
	if name == "" {
		return p.cfg.DefaultName
	}
	return name
}

// Now returns the current time in milliseconds. If the host has no high
// resolution clock then the value is the Unix time with millisecond
// resolution.
func (p *Perf) Now() float64 {
	if p.clock == nil {
		return float64(time.Now().UnixMilli())
	}
	return p.clock.Now()
}

// Mark records the current time under name. Marking a name that has been
// marked before replaces the previous mark, unless the host timeline keeps
// every mark.
func (p *Perf) Mark(name string) (host.Entry, error) {
	return p.backend.Mark(p.name(name))
}

// Measure records the duration between the start and end marks under name.
// Empty start and end names are the default name with the start and end
// suffixes.
//
// Without a host timeline the returned entry is always nil. The measure is
// recorded even if the marks do not exist, but the duration will be NaN.
func (p *Perf) Measure(name string, start string, end string) (*host.Entry, error) {
	if start == "" {
		start = p.cfg.DefaultName + p.cfg.StartSuffix
	}
	if end == "" {
		end = p.cfg.DefaultName + p.cfg.EndSuffix
	}
	return p.backend.Measure(p.name(name), start, end)
}

// ClearMarks removes the mark with the name. An empty name removes all marks.
func (p *Perf) ClearMarks(name string) {
	p.backend.ClearMarks(name)
}

// ClearMeasures removes the measures with the name. An empty name removes all
// measures.
func (p *Perf) ClearMeasures(name string) {
	p.backend.ClearMeasures(name)
}

// GetEntriesByName returns all entries with the name, oldest first. The
// returned slice is never nil.
func (p *Perf) GetEntriesByName(name string) []host.Entry {
	return p.backend.GetEntriesByName(p.name(name))
}

// GetEntryByName returns the most recent entry with the name. Returns false if
// there are no entries.
func (p *Perf) GetEntryByName(name string) (host.Entry, bool) {
	entries := p.GetEntriesByName(name)
	if len(entries) == 0 {
		return host.Entry{}, false
	}
	return entries[len(entries)-1], true
}

// Start marks the start of the named measure.
func (p *Perf) Start(name string) (host.Entry, error) {
	return p.Mark(p.name(name) + p.cfg.StartSuffix)
}

// End marks the end of the named measure and then measures the duration since
// Start() was called with the same name. The end mark is returned, not the
// measure.
func (p *Perf) End(name string) (host.Entry, error) {
	name = p.name(name)
	start := name + p.cfg.StartSuffix
	end := name + p.cfg.EndSuffix

	e, err := p.Mark(end)
	if err != nil {
		return e, err
	}

	_, err = p.Measure(name, start, end)
	return e, err
}

// Time measures the duration of the function using Start() and End(). An error
// from the function takes precedence over an error from the timeline.
func (p *Perf) Time(name string, fn func() error) error {
	_, err := p.Start(name)
	if err != nil {
		return err
	}

	ferr := fn()

	_, err = p.End(name)
	if ferr != nil {
		return ferr
	}
	return err
}

// Duration returns the duration of the most recent entry with the name.
// Returns false if there are no entries.
func (p *Perf) Duration(name string) (float64, bool) {
	e, ok := p.GetEntryByName(name)
	if !ok {
		return 0, false
	}
	return e.Duration, true
}

// Names returns the sorted names of all recorded measures.
func (p *Perf) Names() []string {
	return p.backend.Names()
}
