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

package cli_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/perfmark/cli"
	"github.com/jetsetilly/perfmark/test"
)

// run the command line with the arguments. the default configuration file is
// hidden by using an empty home directory
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	w := &test.Writer{}
	cmd := cli.NewRootCommand()
	cmd.SetOut(w)
	cmd.SetErr(w)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return w.String(), err
}

func TestConfigCommand(t *testing.T) {
	out, err := run(t, "config", "--host", "fallback")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out, "host: fallback"))
	test.ExpectSuccess(t, strings.Contains(out, "default_name: untitled"))
	test.ExpectSuccess(t, strings.Contains(out, "timer_delay: 4ms"))
}

func TestBenchCommand(t *testing.T) {
	out, err := run(t, "bench", "--host", "fallback", "--runs", "3", "--work", "1ms", "--name", "sleeper")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(strings.ToLower(out), "sleeper"))
}

func TestBenchChart(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "chart.html")

	_, err := run(t, "bench", "--host", "clock", "--runs", "2", "--work", "1ms", "--spin", "--html", fn)
	test.DemandSuccess(t, err)

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "echarts"))
}

func TestBenchErrors(t *testing.T) {
	_, err := run(t, "bench", "--host", "fallback", "--runs", "0")
	test.ExpectFailure(t, err)

	_, err = run(t, "bench", "--host", "fallback", "--profile", "disk")
	test.ExpectFailure(t, err)
}

func TestFPSCommand(t *testing.T) {
	out, err := run(t, "fps", "--host", "clock", "--duration", "100ms", "--interval", "20")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out, "fps at"))
}

func TestUnknownHostFlag(t *testing.T) {
	_, err := run(t, "config", "--host", "browser")
	test.ExpectFailure(t, err)
}
