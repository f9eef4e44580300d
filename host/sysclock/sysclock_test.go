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

package sysclock_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/perfmark/host/sysclock"
	"github.com/jetsetilly/perfmark/test"
)

func TestNonDecreasing(t *testing.T) {
	clk, err := sysclock.NewClock()
	test.DemandSuccess(t, err)

	prev := clk.Now()
	test.ExpectSuccess(t, prev >= 0)

	for range 1000 {
		now := clk.Now()
		test.ExpectSuccess(t, now >= prev)
		prev = now
	}
}

func TestElapsed(t *testing.T) {
	clk, err := sysclock.NewClock()
	test.DemandSuccess(t, err)

	a := clk.Now()
	time.Sleep(20 * time.Millisecond)
	b := clk.Now()

	// sleep can overrun but never underrun
	test.ExpectSuccess(t, b-a >= 20)
	test.ExpectSuccess(t, b-a < 1000)
}
