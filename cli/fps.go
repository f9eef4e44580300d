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
	"os/signal"
	"sync"
	"time"

	"github.com/jetsetilly/perfmark/perf"
	"github.com/jetsetilly/perfmark/performance"
	"github.com/spf13/cobra"
)

type fpsOptions struct {
	duration time.Duration
	interval float64
}

func newFPSCommand(st *state) *cobra.Command {
	var opts fpsOptions

	cmd := &cobra.Command{
		Use:   "fps",
		Short: "Sample the frame rate of the host",
		Long: `Print the frame rate of the host scheduler at a regular interval. Sampling
stops after --duration or when interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFPS(cmd, st.settings, opts)
		},
	}

	flgs := cmd.Flags()
	flgs.DurationVar(&opts.duration, "duration", 5*time.Second, "how long to sample for")
	flgs.Float64Var(&opts.interval, "interval", 0, "sampling interval in milliseconds (default from configuration)")

	return cmd
}

func runFPS(cmd *cobra.Command, s Settings, opts fpsOptions) error {
	env, err := newEnvironment(s)
	if err != nil {
		return err
	}
	defer env.close()

	p := perf.NewPerf(env.Environment, s.Perf)

	out := cmd.OutOrStdout()
	var crit sync.Mutex

	var frames uint64
	if env.limiter != nil {
		frames = env.limiter.Frames.Load()
	}
	start := time.Now()

	stop := p.OnFPS(func(fps float64, timestamp float64) {
		crit.Lock()
		defer crit.Unlock()
		fmt.Fprintf(out, "%8.2f fps at %.0fms\n", fps, timestamp)
	}, opts.interval)

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()

	select {
	case <-ctx.Done():
	case <-time.After(opts.duration):
	}
	stop()

	crit.Lock()
	defer crit.Unlock()

	if env.limiter != nil {
		n := int(env.limiter.Frames.Load() - frames)
		ideal := env.limiter.IdealFPS.Load().(float32)
		fps, accuracy := performance.CalcFPS(n, time.Since(start).Seconds(), float64(ideal))
		fmt.Fprintf(out, "limiter: %.2f fps (%.1f%% of %.2f)\n", fps, accuracy, ideal)
	}

	return nil
}
