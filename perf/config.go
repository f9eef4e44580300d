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

// Config for a Perf instance. The zero value of any field is replaced by the
// value from DefaultConfig().
type Config struct {
	// name used when an operation is given an empty name
	DefaultName string `mapstructure:"default_name" yaml:"default_name"`

	// suffixes added to a name by Start() and End()
	StartSuffix string `mapstructure:"start_suffix" yaml:"start_suffix"`
	EndSuffix   string `mapstructure:"end_suffix" yaml:"end_suffix"`

	// reporting interval in milliseconds for OnFPS()
	FPSInterval float64 `mapstructure:"fps_interval" yaml:"fps_interval"`

	// maximum number of measures kept for each name when there is no native
	// timeline. the oldest measures are discarded first. zero means no limit
	MaxMeasures int `mapstructure:"max_measures" yaml:"max_measures"`

	// sort durations as strings rather than numbers in Percentile(). this
	// is almost certainly not what you want. it exists only so that results
	// can be compared with older tools that sorted in this way
	LexicographicPercentile bool `mapstructure:"lexicographic_percentile" yaml:"lexicographic_percentile"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		DefaultName: "untitled",
		StartSuffix: "_start",
		EndSuffix:   "_end",
		FPSInterval: 1000,
	}
}

// normalise replaces zero values with default values
func (cfg Config) normalise() Config {
	def := DefaultConfig()
	if cfg.DefaultName == "" {
		cfg.DefaultName = def.DefaultName
	}
	if cfg.StartSuffix == "" {
		cfg.StartSuffix = def.StartSuffix
	}
	if cfg.EndSuffix == "" {
		cfg.EndSuffix = def.EndSuffix
	}
	if cfg.FPSInterval <= 0 {
		cfg.FPSInterval = def.FPSInterval
	}
	if cfg.MaxMeasures < 0 {
		cfg.MaxMeasures = 0
	}
	return cfg
}
