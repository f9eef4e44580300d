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

// Package limiter provides a per-frame scheduler. Functions passed to
// Schedule() are run together on the next tick of a pulse running at a fixed
// rate.
//
// The rate will normally equal the refresh rate of the display. If a Display
// is attached then a requested rate close to the display's refresh rate is
// snapped to the refresh rate.
//
// For example (error handling removed for clarity):
//
//	lmtr := limiter.NewLimiter()
//	defer lmtr.End()
//
//	var frame func()
//	frame = func() {
//		renderImage()
//		lmtr.Schedule(frame)
//	}
//	lmtr.Schedule(frame)
package limiter

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/perfmark/logger"
)

// Display is implemented by a host that knows the refresh rate of the display.
type Display interface {
	// returns the refresh rate and whether the limiter should quantise
	// requested rates to the refresh rate
	DisplayRefreshRate() (float32, bool)
}

// MatchRefreshRate can be used with SetLimit() to indicate that the limiter
// should run at the refresh rate.
const MatchRefreshRate float32 = -1.0

// DefaultRefreshRate is the refresh rate assumed before SetRefreshRate() or
// SetDisplay() is called.
const DefaultRefreshRate float32 = 60.0

// Limiter implements the host.Scheduler interface.
type Limiter struct {
	// the refresh rate of the display
	RefreshRate atomic.Value // float32

	// the rate the pulse is actually running at, including quantisation
	IdealFPS atomic.Value // float32

	// the actual value sent to the SetLimit() function
	requestedFPS atomic.Value // float32

	// pulse that drives each frame. the duration of the ticker is changed
	// when SetLimit() is called
	pulse *time.Ticker

	// functions waiting for the next frame and the attached display
	crit    sync.Mutex
	pending []func()
	ended   bool
	display Display

	// the number of frames that have been run
	Frames atomic.Uint64

	quit chan bool
	done chan bool
}

// NewLimiter is preferred method of initialising a new instance of the Limiter
// type. The refresh rate will be set to DefaultRefreshRate and the limit set to
// match the refresh rate.
func NewLimiter() *Limiter {
	lmtr := &Limiter{
		pulse: time.NewTicker(time.Second / time.Duration(DefaultRefreshRate)),
		quit:  make(chan bool),
		done:  make(chan bool),
	}

	lmtr.RefreshRate.Store(DefaultRefreshRate)
	lmtr.IdealFPS.Store(DefaultRefreshRate)
	lmtr.SetLimit(MatchRefreshRate)

	go lmtr.run()

	return lmtr
}

func (lmtr *Limiter) run() {
	defer close(lmtr.done)
	for {
		select {
		case <-lmtr.quit:
			lmtr.pulse.Stop()
			return
		case <-lmtr.pulse.C:
			lmtr.frame()
		}
	}
}

// frame runs all pending functions. functions scheduled by those functions
// will wait for the next frame
func (lmtr *Limiter) frame() {
	lmtr.crit.Lock()
	run := lmtr.pending
	lmtr.pending = nil
	lmtr.crit.Unlock()

	lmtr.Frames.Add(1)

	for _, fn := range run {
		fn()
	}
}

// Schedule implements the host.Scheduler interface. Functions scheduled after
// End() has been called are never run.
func (lmtr *Limiter) Schedule(fn func()) {
	lmtr.crit.Lock()
	defer lmtr.crit.Unlock()
	if lmtr.ended {
		return
	}
	lmtr.pending = append(lmtr.pending, fn)
}

// End stops the limiter. Pending functions are discarded.
func (lmtr *Limiter) End() {
	lmtr.crit.Lock()
	if lmtr.ended {
		lmtr.crit.Unlock()
		return
	}
	lmtr.ended = true
	lmtr.pending = nil
	lmtr.crit.Unlock()

	close(lmtr.quit)
	<-lmtr.done
}

// SetDisplay attaches a display to the limiter. The refresh rate of the
// display becomes the refresh rate of the limiter.
func (lmtr *Limiter) SetDisplay(display Display) {
	lmtr.crit.Lock()
	lmtr.display = display
	lmtr.crit.Unlock()

	if hz, _ := display.DisplayRefreshRate(); hz > 0 {
		lmtr.SetRefreshRate(hz)
	} else {
		lmtr.SetLimit(lmtr.requestedFPS.Load().(float32))
	}
}

// SetRefreshRate sets the refresh rate for the limiter. If the limit is set to
// MatchRefreshRate then the pulse is changed immediately.
func (lmtr *Limiter) SetRefreshRate(refreshRate float32) {
	if refreshRate <= 0 {
		return
	}
	lmtr.RefreshRate.Store(refreshRate)
	lmtr.SetLimit(lmtr.requestedFPS.Load().(float32))
}

// SetLimit changes the rate of the pulse. Use a value of MatchRefreshRate to
// indicate that the limiter should equal the refresh rate.
func (lmtr *Limiter) SetLimit(fps float32) {
	lmtr.requestedFPS.Store(fps)

	if fps <= 0.0 {
		fps = lmtr.RefreshRate.Load().(float32)
	}

	lmtr.crit.Lock()
	display := lmtr.display
	lmtr.crit.Unlock()

	// quantise rate based on refresh rate of the display
	if display != nil {
		hz, quantise := display.DisplayRefreshRate()
		if quantise {
			if fps >= hz*0.96 && fps <= hz*1.04 {
				fps = hz
			}
		}
	}

	lmtr.IdealFPS.Store(fps)
	lmtr.pulse.Reset(time.Duration(float32(time.Second) / fps))

	logger.Logf(logger.Allow, "limiter", "frame rate: %.2f", fps)
}
