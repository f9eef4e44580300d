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

// Package sdlclock uses the SDL performance counter as a high resolution
// clock. It also reports the refresh rate of the primary display, which the
// limiter package can use to pace frames.
//
// SDL must be available on the system. The SDL timer and video subsystems are
// initialised by NewClock() and should be shutdown with Close().
package sdlclock

import (
	"fmt"

	"github.com/jetsetilly/perfmark/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// Clock implements the host.Clock interface and the limiter.Display
// interface.
type Clock struct {
	frequency uint64
	origin    uint64

	// refresh rate of the primary display in Hz. zero if the display mode
	// could not be determined
	refreshRate int32
}

// NewClock is the preferred method of initialisation for the Clock type.
func NewClock() (*Clock, error) {
	err := sdl.Init(sdl.INIT_TIMER | sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("sdlclock: %w", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdlclock", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	clk := &Clock{
		frequency: sdl.GetPerformanceFrequency(),
		origin:    sdl.GetPerformanceCounter(),
	}

	if clk.frequency == 0 {
		sdl.Quit()
		return nil, fmt.Errorf("sdlclock: performance counter has zero frequency")
	}
	logger.Logf(logger.Allow, "sdlclock", "counter frequency: %dHz", clk.frequency)

	// a missing display is not fatal. the clock is still usable
	mode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		logger.Logf(logger.Allow, "sdlclock", "no display mode: %v", err)
	} else {
		clk.refreshRate = mode.RefreshRate
		logger.Logf(logger.Allow, "sdlclock", "refresh rate: %dHz", mode.RefreshRate)
	}

	return clk, nil
}

// Close shuts down SDL.
func (clk *Clock) Close() {
	sdl.Quit()
}

// Now implements the host.Clock interface.
func (clk *Clock) Now() float64 {
	ticks := sdl.GetPerformanceCounter() - clk.origin
	return float64(ticks) * 1000 / float64(clk.frequency)
}

// DisplayRefreshRate implements the limiter.Display interface. The second
// return value is true if the limiter should snap rates close to the refresh
// rate to the refresh rate.
func (clk *Clock) DisplayRefreshRate() (float32, bool) {
	if clk.refreshRate <= 0 {
		return 0, false
	}
	return float32(clk.refreshRate), true
}
