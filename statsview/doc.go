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

// Package statsview is an optional package that will built only when the
// statsview build constraint is present.
//
// It provides a HTTP server offering runtime statistics of the perfmark
// process. This is useful when deciding whether a frame rate reported by
// perf.OnFPS() is being affected by garbage collection. Underlying
// functionality provided by "github.com/go-echarts/statsview"
//
// After launch, graphical statistics will be viewable at:
//
//	<address>/debug/statsview
//
// And standard Go pprof statistics available at:
//
//	<address>/debug/pprof/
package statsview

// DefaultAddress is used by Launch() when the address argument is empty.
const DefaultAddress = "localhost:12600"
