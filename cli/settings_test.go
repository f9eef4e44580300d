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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jetsetilly/perfmark/host"
	"github.com/jetsetilly/perfmark/perf"
	"github.com/jetsetilly/perfmark/test"
)

func TestDefaultSettings(t *testing.T) {
	s, err := loadSettings(newViper())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Host, HostNative)
	test.ExpectEquality(t, s.Echo, false)
	test.ExpectEquality(t, s.TimerDelay, host.DefaultTimerDelay)
	test.ExpectEquality(t, s.BufferSize, 0)
	test.ExpectEquality(t, s.Perf, perf.DefaultConfig())
}

func TestEnvironmentSettings(t *testing.T) {
	t.Setenv("PERFMARK_HOST", "Fallback")
	t.Setenv("PERFMARK_PERF_DEFAULT_NAME", "frame")
	t.Setenv("PERFMARK_TIMER_DELAY", "10ms")

	s, err := loadSettings(newViper())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Host, HostFallback)
	test.ExpectEquality(t, s.Perf.DefaultName, "frame")
	test.ExpectEquality(t, s.TimerDelay, 10*time.Millisecond)
}

func TestConfigFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "perfmark.yaml")
	data := `host: clock
timer_delay: 8ms
buffer_size: 50
perf:
  fps_interval: 250
  lexicographic_percentile: true
`
	test.DemandSuccess(t, os.WriteFile(fn, []byte(data), 0o600))

	v := newViper()
	test.DemandSuccess(t, readConfig(v, fn))

	s, err := loadSettings(v)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Host, HostClock)
	test.ExpectEquality(t, s.TimerDelay, 8*time.Millisecond)
	test.ExpectEquality(t, s.BufferSize, 50)
	test.ExpectEquality(t, s.Perf.FPSInterval, 250.0)
	test.ExpectEquality(t, s.Perf.LexicographicPercentile, true)

	// values not in the file keep their defaults
	test.ExpectEquality(t, s.Perf.DefaultName, "untitled")
}

func TestMissingConfigFile(t *testing.T) {
	// a named file must exist
	err := readConfig(newViper(), filepath.Join(t.TempDir(), "missing.yaml"))
	test.ExpectFailure(t, err)

	// the default file need not exist
	t.Setenv("HOME", t.TempDir())
	err = readConfig(newViper(), "")
	test.ExpectSuccess(t, err)
}

func TestUnknownHost(t *testing.T) {
	v := newViper()
	v.Set("host", "browser")
	_, err := loadSettings(v)
	test.ExpectFailure(t, err)
}
