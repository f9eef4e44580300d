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
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"time"

	"github.com/gorilla/mux"
	"github.com/jetsetilly/perfmark/host"
	"github.com/jetsetilly/perfmark/logger"
	"github.com/jetsetilly/perfmark/metrics"
	"github.com/jetsetilly/perfmark/perf"
	"github.com/jetsetilly/perfmark/report"
	"github.com/jetsetilly/perfmark/statsview"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// the name of the measure recorded between consecutive frames by the serve
// command
const frameMeasure = "frame"

type serveOptions struct {
	addr      string
	interval  float64
	history   int
	hostCPU   bool
	statsview bool
}

func newServeCommand(st *state) *cobra.Command {
	var opts serveOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Export frame statistics as prometheus metrics",
		Long: `Measure the time between frames of the host scheduler and sample the frame
rate. The statistics are available over HTTP:

  /metrics          prometheus metrics
  /report           table of all measures
  /entries          names of all measures
  /entries/{name}   every entry with the name`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, st.settings, opts)
		},
	}

	flgs := cmd.Flags()
	flgs.StringVar(&opts.addr, "addr", "localhost:9464", "address to listen on")
	flgs.Float64Var(&opts.interval, "interval", 0, "frame rate sampling interval in milliseconds (default from configuration)")
	flgs.IntVar(&opts.history, "history", 1000, "number of frames to keep if no limit is configured")
	flgs.BoolVar(&opts.hostCPU, "host-cpu", true, "include CPU usage of the host machine")
	flgs.BoolVar(&opts.statsview, "statsview", false, "launch the runtime statistics viewer (requires the statsview build tag)")

	return cmd
}

// measureFrames records a measure for the time between consecutive runs of the
// scheduler
func measureFrames(p *perf.Perf, sched host.Scheduler) (stop func()) {
	var stopped atomic.Bool

	if _, err := p.Start(frameMeasure); err != nil {
		logger.Logf(logger.Allow, "cli", "frame measure: %v", err)
	}

	var frame func()
	frame = func() {
		if stopped.Load() {
			return
		}
		if _, err := p.End(frameMeasure); err != nil {
			logger.Logf(logger.Allow, "cli", "frame measure: %v", err)
		}
		if _, err := p.Start(frameMeasure); err != nil {
			logger.Logf(logger.Allow, "cli", "frame measure: %v", err)
		}
		sched.Schedule(frame)
	}
	sched.Schedule(frame)

	return func() {
		stopped.Store(true)
	}
}

// newRouter creates the HTTP routes for the serve command
func newRouter(p *perf.Perf, reg *prometheus.Registry) *mux.Router {
	r := mux.NewRouter()

	r.Handle("/metrics", metrics.Handler(reg)).Methods(http.MethodGet)

	r.HandleFunc("/report", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if err := report.WriteTable(w, p, nil, nil); err != nil {
			logger.Logf(logger.Allow, "cli", "report: %v", err)
		}
	}).Methods(http.MethodGet)

	r.HandleFunc("/entries", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		for _, n := range p.Names() {
			fmt.Fprintln(w, n)
		}
	}).Methods(http.MethodGet)

	r.HandleFunc("/entries/{name}", func(w http.ResponseWriter, req *http.Request) {
		name := mux.Vars(req)["name"]
		entries := p.GetEntriesByName(name)
		if len(entries) == 0 {
			http.Error(w, fmt.Sprintf("no entries for %s", name), http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		for _, e := range entries {
			fmt.Fprintln(w, e.String())
		}
	}).Methods(http.MethodGet)

	return r
}

func runServe(cmd *cobra.Command, s Settings, opts serveOptions) error {
	// serve runs indefinitely so the number of entries must be limited
	if s.BufferSize <= 0 {
		s.BufferSize = opts.history
	}
	if s.Perf.MaxMeasures <= 0 {
		s.Perf.MaxMeasures = opts.history
	}

	env, err := newEnvironment(s)
	if err != nil {
		return err
	}
	defer env.close()

	p := perf.NewPerf(env.Environment, s.Perf)

	c := metrics.NewCollector(p, nil, opts.hostCPU)
	reg, err := metrics.NewRegistry(c)
	if err != nil {
		return fmt.Errorf("cli: %w", err)
	}

	stopFrames := measureFrames(p, env.scheduler())
	defer stopFrames()

	stopFPS := p.OnFPS(c.ObserveFPS, opts.interval)
	defer stopFPS()

	if opts.statsview {
		if !statsview.Available() {
			return fmt.Errorf("cli: statsview not available in this build")
		}
		stop := statsview.Launch(cmd.ErrOrStderr(), statsview.DefaultAddress)
		defer stop()
	}

	ln, err := net.Listen("tcp", opts.addr)
	if err != nil {
		return fmt.Errorf("cli: %w", err)
	}

	srv := &http.Server{
		Handler:           newRouter(p, reg),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serr := make(chan error, 1)
	go func() {
		serr <- srv.Serve(ln)
	}()

	fmt.Fprintf(cmd.OutOrStdout(), "serving metrics on http://%s/metrics\n", ln.Addr())
	logger.Logf(logger.Allow, "cli", "serving on %s", ln.Addr())

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()

	select {
	case err := <-serr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("cli: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdown, done := context.WithTimeout(context.Background(), 5*time.Second)
	defer done()

	if err := srv.Shutdown(shutdown); err != nil {
		return fmt.Errorf("cli: %w", err)
	}

	return nil
}
