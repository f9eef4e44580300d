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
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jetsetilly/perfmark/host"
	"github.com/jetsetilly/perfmark/paths"
	"github.com/jetsetilly/perfmark/perf"
	"github.com/spf13/viper"
)

// the different hosts that can be selected with the --host flag
const (
	HostNative   = "native"
	HostSDL      = "sdl"
	HostClock    = "clock"
	HostFallback = "fallback"
)

// Settings is the effective configuration of the command line tool.
type Settings struct {
	// the type of host environment to create. one of the Host constants
	Host string `mapstructure:"host" yaml:"host"`

	// echo log entries to stderr as they are created
	Echo bool `mapstructure:"echo" yaml:"echo"`

	// delay used by the timer scheduler
	TimerDelay time.Duration `mapstructure:"timer_delay" yaml:"timer_delay"`

	// frame rate of the limiter. zero or less means match the refresh rate
	FrameLimit float32 `mapstructure:"frame_limit" yaml:"frame_limit"`

	// maximum number of marks and measures kept by the native timeline. zero
	// means no limit
	BufferSize int `mapstructure:"buffer_size" yaml:"buffer_size"`

	Perf perf.Config `mapstructure:"perf" yaml:"perf"`
}

// setDefaults adds a default for every key in the Settings type. viper only
// consults the environment for keys that it knows about
func setDefaults(v *viper.Viper) {
	def := perf.DefaultConfig()
	v.SetDefault("host", HostNative)
	v.SetDefault("echo", false)
	v.SetDefault("timer_delay", host.DefaultTimerDelay)
	v.SetDefault("frame_limit", float32(0))
	v.SetDefault("buffer_size", 0)
	v.SetDefault("perf.default_name", def.DefaultName)
	v.SetDefault("perf.start_suffix", def.StartSuffix)
	v.SetDefault("perf.end_suffix", def.EndSuffix)
	v.SetDefault("perf.fps_interval", def.FPSInterval)
	v.SetDefault("perf.max_measures", def.MaxMeasures)
	v.SetDefault("perf.lexicographic_percentile", def.LexicographicPercentile)
}

// newViper returns a viper instance that reads PERFMARK_ environment variables
func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("perfmark")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// readConfig reads the configuration file. if filename is empty then the
// default location is tried and a missing file is not an error
func readConfig(v *viper.Viper, filename string) error {
	if filename != "" {
		v.SetConfigFile(filename)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("cli: %w", err)
		}
		return nil
	}

	v.AddConfigPath(paths.ResourcePath())
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("cli: %w", err)
	}

	return nil
}

// loadSettings unmarshals the current state of viper into a Settings instance
func loadSettings(v *viper.Viper) (Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("cli: %w", err)
	}

	s.Host = strings.ToLower(strings.TrimSpace(s.Host))
	switch s.Host {
	case HostNative, HostSDL, HostClock, HostFallback:
	default:
		return Settings{}, fmt.Errorf("cli: unknown host: %s", s.Host)
	}

	return s, nil
}
