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

// Package perf is a timing facade. It can mark named instants, measure the
// duration between two marks, and calculate statistics over repeated
// measurements with the same name.
//
// A Perf instance is created for a host.Environment. If the environment has a
// high resolution clock it will be used, otherwise the wall clock is used. If
// the environment has a timeline then marks and measures are recorded by the
// timeline, otherwise they are recorded by the Perf instance itself.
//
// The simplest way of measuring something is with Start() and End():
//
//	p := perf.NewPerf(env, perf.DefaultConfig())
//	for range 100 {
//		p.Start("work")
//		doWork()
//		p.End("work")
//	}
//	fmt.Println(p.Mean("work"), p.Sdev("work"))
//
// Missing marks do not cause an error when there is no host timeline, the
// duration of the measure will be NaN instead. Statistics over no measures are
// also NaN. Errors from a host timeline are returned as they are.
//
// OnFPS() samples the rate at which the host's frame scheduler runs.
package perf
