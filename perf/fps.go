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
	"sync"
	"sync/atomic"

	"github.com/jetsetilly/perfmark/logger"
)

// FPSCallback receives the measured frames per second and the timestamp of the
// measurement.
type FPSCallback func(fps float64, timestamp float64)

// OnFPS counts frames using the host's frame scheduler and calls the callback
// with the frame rate every interval milliseconds. If the host has no frame
// scheduler the timer scheduler is used, in which case the frame rate is a
// measure of how quickly the timer can be serviced.
//
// An interval of zero or less means the interval in the Config. The first frame
// is counted before OnFPS() returns.
//
// Sampling continues until the returned stop function is called. The stop
// function can be called more than once.
func (p *Perf) OnFPS(cb FPSCallback, interval float64) (stop func()) {
	if interval <= 0 {
		interval = p.cfg.FPSInterval
	}

	var stopped atomic.Bool

	prevTime := p.Now()
	frames := 0
	scalar := 1000 / interval

	var iterate func()
	iterate = func() {
		if stopped.Load() {
			return
		}

		frames++
		t := p.Now()
		if t >= prevTime+interval {
			fps := float64(frames) * interval / (t - prevTime) * scalar
			frames = 0
			prevTime = t
			if cb != nil {
				cb(fps, t)
			}
		}

		if stopped.Load() {
			return
		}
		p.scheduler.Schedule(iterate)
	}

	logger.Logf(logger.Allow, "perf", "fps sampling every %.0fms", interval)
	iterate()

	var once sync.Once
	return func() {
		once.Do(func() {
			stopped.Store(true)
			logger.Log(logger.Allow, "perf", "fps sampling stopped")
		})
	}
}
