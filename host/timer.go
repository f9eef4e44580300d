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

import "time"

// DefaultTimerDelay is the delay used by a TimerScheduler created with a delay
// of zero. Rescheduling with no delay at all would spin a CPU core.
const DefaultTimerDelay = 4 * time.Millisecond

// TimerScheduler runs functions after a fixed delay. It is the fallback for
// hosts that have no per-frame scheduler.
type TimerScheduler struct {
	delay time.Duration
}

// NewTimerScheduler is the preferred method of initialisation for the
// TimerScheduler type.
func NewTimerScheduler(delay time.Duration) *TimerScheduler {
	if delay <= 0 {
		delay = DefaultTimerDelay
	}
	return &TimerScheduler{delay: delay}
}

// Schedule implements the Scheduler interface.
func (tmr *TimerScheduler) Schedule(fn func()) {
	time.AfterFunc(tmr.delay, fn)
}
