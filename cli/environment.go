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

package cli

import (
	"fmt"

	"github.com/jetsetilly/perfmark/host"
	"github.com/jetsetilly/perfmark/host/limiter"
	"github.com/jetsetilly/perfmark/host/sdlclock"
	"github.com/jetsetilly/perfmark/host/sysclock"
	"github.com/jetsetilly/perfmark/host/timeline"
	"github.com/jetsetilly/perfmark/logger"
)

// environment is a host.Environment along with the resources that need to be
// released when the environment is no longer required
type environment struct {
	host.Environment

	// limiter is nil if the environment has no per-frame scheduler
	limiter *limiter.Limiter

	// called in reverse order by close()
	closers []func()
}

// newEnvironment creates the host environment named in the settings.
//
//	native     operating system clock, timeline and limiter
//	sdl        SDL performance counter, timeline and limiter paced to the display
//	clock      operating system clock only
//	fallback   no facilities other than a timer
func newEnvironment(s Settings) (*environment, error) {
	env := &environment{}
	env.Timer = host.NewTimerScheduler(s.TimerDelay)

	switch s.Host {
	case HostNative:
		clk, err := sysclock.NewClock()
		if err != nil {
			return nil, fmt.Errorf("cli: %w", err)
		}
		env.Clock = clk
		env.addTimeline(clk, s.BufferSize)
		env.addLimiter(s.FrameLimit, nil)

	case HostSDL:
		clk, err := sdlclock.NewClock()
		if err != nil {
			return nil, fmt.Errorf("cli: %w", err)
		}
		env.closers = append(env.closers, clk.Close)
		env.Clock = clk
		env.addTimeline(clk, s.BufferSize)
		env.addLimiter(s.FrameLimit, clk)

	case HostClock:
		clk, err := sysclock.NewClock()
		if err != nil {
			return nil, fmt.Errorf("cli: %w", err)
		}
		env.Clock = clk

	case HostFallback:

	default:
		return nil, fmt.Errorf("cli: unknown host: %s", s.Host)
	}

	logger.Logf(logger.Allow, "cli", "host environment: %s", s.Host)

	return env, nil
}

func (env *environment) addTimeline(clk host.Clock, bufferSize int) {
	tl := timeline.NewTimeline(clk)
	tl.SetBufferSize(bufferSize)
	env.Timeline = tl
}

func (env *environment) addLimiter(frameLimit float32, display limiter.Display) {
	env.limiter = limiter.NewLimiter()
	if display != nil {
		env.limiter.SetDisplay(display)
	}
	if frameLimit > 0 {
		env.limiter.SetLimit(frameLimit)
	}
	env.Frames = env.limiter
	env.closers = append(env.closers, env.limiter.End)
}

// scheduler returns the per-frame scheduler if there is one, otherwise the
// timer scheduler
func (env *environment) scheduler() host.Scheduler {
	if env.Frames != nil {
		return env.Frames
	}
	return env.Timer
}

// close releases all resources held by the environment. it is safe to call
// more than once
func (env *environment) close() {
	for i := len(env.closers) - 1; i >= 0; i-- {
		env.closers[i]()
	}
	env.closers = nil
}
