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
	"os"
	"time"

	"github.com/jetsetilly/perfmark/paths"
	"github.com/jetsetilly/perfmark/perf"
	"github.com/jetsetilly/perfmark/performance"
	"github.com/jetsetilly/perfmark/report"
	"github.com/spf13/cobra"
)

type benchOptions struct {
	name        string
	runs        int
	work        time.Duration
	spin        bool
	html        string
	profile     string
	percentiles []float64
}

func newBenchCommand(st *state) *cobra.Command {
	var opts benchOptions

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time a synthetic workload",
		Long: `Time a synthetic workload with Start() and End() and print statistics for the
resulting measures. The workload either sleeps or spins for the duration given
by --work.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBench(cmd, st.settings, opts)
		},
	}

	flgs := cmd.Flags()
	flgs.StringVar(&opts.name, "name", "bench", "name of the measure")
	flgs.IntVar(&opts.runs, "runs", 100, "number of times to run the workload")
	flgs.DurationVar(&opts.work, "work", 2*time.Millisecond, "duration of each run of the workload")
	flgs.BoolVar(&opts.spin, "spin", false, "busy wait rather than sleep")
	flgs.StringVar(&opts.html, "html", "", "write a chart of every sample to an HTML file")
	flgs.StringVar(&opts.profile, "profile", "none", "profile the benchmark: cpu, mem, trace or all")
	flgs.Float64SliceVar(&opts.percentiles, "percentiles", report.DefaultPercentiles, "percentiles to report")

	return cmd
}

// workload takes at least the specified duration
func workload(d time.Duration, spin bool) {
	if !spin {
		time.Sleep(d)
		return
	}
	end := time.Now().Add(d)
	for time.Now().Before(end) {
	}
}

func runBench(cmd *cobra.Command, s Settings, opts benchOptions) error {
	if opts.runs <= 0 {
		return fmt.Errorf("cli: number of runs must be positive")
	}

	prof, err := performance.ParseProfile(opts.profile)
	if err != nil {
		return fmt.Errorf("cli: %w", err)
	}

	env, err := newEnvironment(s)
	if err != nil {
		return err
	}
	defer env.close()

	p := perf.NewPerf(env.Environment, s.Perf)

	err = performance.RunProfiler(prof, paths.UniqueFilename("perfmark_bench", opts.name), func() error {
		for range opts.runs {
			err := p.Time(opts.name, func() error {
				workload(opts.work, opts.spin)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("cli: %w", err)
	}

	names := []string{opts.name}

	err = report.WriteTable(cmd.OutOrStdout(), p, names, opts.percentiles)
	if err != nil {
		return fmt.Errorf("cli: %w", err)
	}

	if opts.html != "" {
		f, err := os.Create(opts.html)
		if err != nil {
			return fmt.Errorf("cli: %w", err)
		}
		defer f.Close()

		title := fmt.Sprintf("%s (%d runs of %s)", opts.name, opts.runs, opts.work)
		err = report.WriteChart(f, p, title, names)
		if err != nil {
			return fmt.Errorf("cli: %w", err)
		}
	}

	return nil
}
