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

// Package performance contains helper functions relating to the performance of
// a workload, rather than the measurement of individual events.
//
// RunProfiler() runs a function while creating any combination of CPU,
// memory and trace profiles.
//
// CalcFPS() calculates frames-per-second in aggregate along with an accuracy
// value (as compared to an ideal frame rate). It is not suitable for "live"
// FPS monitoring. Use perf.OnFPS() for that.
package performance
