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

// Package sysclock is a high resolution clock read directly from the operating
// system. On Linux the value comes from clock_gettime() with CLOCK_MONOTONIC.
// On other platforms the monotonic reading of the Go runtime is used.
//
// Values are milliseconds since the Clock was created.
package sysclock

import "sync/atomic"

// Clock implements the host.Clock interface.
type Clock struct {
	origin int64

	// most recent reading in nanoseconds since origin
	last atomic.Int64
}

// NewClock is the preferred method of initialisation for the Clock type.
func NewClock() (*Clock, error) {
	ns, err := nanotime()
	if err != nil {
		return nil, err
	}
	return &Clock{origin: ns}, nil
}

// Now implements the host.Clock interface. If the operating system call fails
// then the value of the previous call is returned, which is not correct but is
// never less than a previous value.
func (clk *Clock) Now() float64 {
	ns, err := nanotime()
	if err != nil {
		return float64(clk.last.Load()) / 1e6
	}
	ns -= clk.origin
	clk.last.Store(ns)
	return float64(ns) / 1e6
}
