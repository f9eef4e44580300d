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

package sdlclock_test

import (
	"testing"

	"github.com/jetsetilly/perfmark/host/sdlclock"
	"github.com/jetsetilly/perfmark/test"
)

func TestClock(t *testing.T) {
	clk, err := sdlclock.NewClock()
	if err != nil {
		t.Skipf("SDL not available: %v", err)
	}
	defer clk.Close()

	prev := clk.Now()
	for range 100 {
		now := clk.Now()
		test.ExpectSuccess(t, now >= prev)
		prev = now
	}

	hz, quantise := clk.DisplayRefreshRate()
	if quantise {
		test.ExpectSuccess(t, hz > 0)
	}
}
