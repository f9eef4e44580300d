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

package perf

import (
	"math"
	"slices"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Durations returns the duration of every entry with the name, oldest first.
func (p *Perf) Durations(name string) []float64 {
	entries := p.GetEntriesByName(name)
	d := make([]float64, len(entries))
	for i, e := range entries {
		d[i] = e.Duration
	}
	return d
}

// Mean returns the arithmetic mean of the durations for name. NaN if there are
// no entries.
func (p *Perf) Mean(name string) float64 {
	return stat.Mean(p.Durations(name), nil)
}

// Sdev returns the population standard deviation of the durations for name.
// NaN if there are no entries.
func (p *Perf) Sdev(name string) float64 {
	return sdev(p.Durations(name))
}

func sdev(d []float64) float64 {
	if len(d) == 0 {
		return math.NaN()
	}
	_, std := stat.PopMeanStdDev(d, nil)
	return std
}

// Percentile returns the duration at the percentile for name. Percent should be
// between 0 and 1 and values outside that range select the smallest or largest
// duration. Returns false if there are no entries.
//
// The value is the element at index floor(len * percent) of the sorted
// durations. No interpolation takes place.
func (p *Perf) Percentile(name string, percent float64) (float64, bool) {
	return percentile(p.Durations(name), percent, p.cfg.LexicographicPercentile)
}

func percentile(d []float64, percent float64, lexicographic bool) (float64, bool) {
	if len(d) == 0 {
		return math.NaN(), false
	}

	sorted := slices.Clone(d)
	if lexicographic {
		sort.SliceStable(sorted, func(i, j int) bool {
			return formatDuration(sorted[i]) < formatDuration(sorted[j])
		})
	} else {
		slices.Sort(sorted)
	}

	if math.IsNaN(percent) {
		percent = 0
	}

	idx := math.Floor(float64(len(sorted)) * percent)
	idx = math.Max(0, math.Min(float64(len(sorted)-1), idx))

	return sorted[int(idx)], true
}

// formatDuration is the string used for lexicographic ordering. the shortest
// representation that identifies the value. magnitudes below 1e-6 or at least
// 1e21 use an exponent with no leading zeros and an explicit sign, eg. 1e-7
// and 1.5e+21
func formatDuration(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	if a := math.Abs(v); a >= 1e-6 && a < 1e21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	f := strconv.FormatFloat(v, 'e', -1, 64)
	mant, exp, _ := strings.Cut(f, "e")
	sign := exp[:1]
	exp = strings.TrimLeft(exp[1:], "0")
	return mant + "e" + sign + exp
}

// Summary of the measures for a single name.
type Summary struct {
	Name  string
	Count int

	// all values are NaN if Count is zero
	Last float64
	Mean float64
	Sdev float64
	Min  float64
	Max  float64

	// the percentiles requested and the value at each percentile
	Percentiles []float64
	Values      []float64
}

// Summary returns the statistics for name in one structure. The percentiles
// argument lists the percentiles (0 to 1) that should be included.
func (p *Perf) Summary(name string, percentiles ...float64) Summary {
	d := p.Durations(name)

	s := Summary{
		Name:        p.name(name),
		Count:       len(d),
		Last:        math.NaN(),
		Mean:        stat.Mean(d, nil),
		Sdev:        sdev(d),
		Min:         math.NaN(),
		Max:         math.NaN(),
		Percentiles: percentiles,
		Values:      make([]float64, len(percentiles)),
	}

	if len(d) > 0 {
		s.Last = d[len(d)-1]
		s.Min = floats.Min(d)
		s.Max = floats.Max(d)
	}

	for i, pc := range percentiles {
		s.Values[i], _ = percentile(d, pc, p.cfg.LexicographicPercentile)
	}

	return s
}
