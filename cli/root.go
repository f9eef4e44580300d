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
	"github.com/jetsetilly/perfmark/logger"
	"github.com/jetsetilly/perfmark/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// state shared by the root command and its subcommands
type state struct {
	v          *viper.Viper
	configFile string

	// valid after the root command's PersistentPreRunE has run
	settings Settings
}

// NewRootCommand is the preferred method of initialisation for the perfmark
// command tree. Each call returns an independent tree with its own
// configuration.
func NewRootCommand() *cobra.Command {
	st := &state{v: newViper()}

	root := &cobra.Command{
		Use:           "perfmark",
		Short:         "Timing marks, measures and frame rate sampling",
		Long:          `perfmark times workloads using named marks and measures, reports statistics for those measures, and samples the frame rate of the host.`,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := readConfig(st.v, st.configFile); err != nil {
				return err
			}

			s, err := loadSettings(st.v)
			if err != nil {
				return err
			}
			st.settings = s

			if s.Echo {
				logger.SetEcho(cmd.ErrOrStderr())
			}

			return nil
		},
	}

	flgs := root.PersistentFlags()
	flgs.StringVar(&st.configFile, "config", "", "config file (default is $HOME/.perfmark/config.yaml)")
	flgs.String("host", HostNative, "host environment: native, sdl, clock or fallback")
	flgs.Bool("echo", false, "echo log entries to stderr")
	flgs.Duration("timer-delay", 0, "delay of the fallback timer scheduler")
	flgs.Float32("frame-limit", 0, "frame rate of the limiter (default matches the display)")

	_ = st.v.BindPFlag("host", flgs.Lookup("host"))
	_ = st.v.BindPFlag("echo", flgs.Lookup("echo"))
	_ = st.v.BindPFlag("timer_delay", flgs.Lookup("timer-delay"))
	_ = st.v.BindPFlag("frame_limit", flgs.Lookup("frame-limit"))

	root.AddCommand(newBenchCommand(st))
	root.AddCommand(newFPSCommand(st))
	root.AddCommand(newServeCommand(st))
	root.AddCommand(newConfigCommand(st))

	return root
}

// Execute runs the perfmark command line.
func Execute() error {
	return NewRootCommand().Execute()
}
