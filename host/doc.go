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

// Package host defines the boundary between the perf package and the
// environment it is running in.
//
// An Environment is a collection of optional facilities: a high resolution
// Clock, a Timeline that understands marks and measures, and two types of
// Scheduler. A nil facility means that the host does not provide it and the
// perf package will fall back to its own implementation.
//
// Concrete facilities are in the sub-packages:
//
//	timeline   native mark and measure support
//	sysclock   monotonic clock read from the operating system
//	sdlclock   SDL performance counter and display refresh rate
//	limiter    per-frame scheduler paced to a refresh rate
//
// The TimerScheduler in this package is the fallback scheduler.
package host
