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

// Package cli is the command line interface to perfmark. The commands are:
//
//	bench    time a synthetic workload and print statistics
//	fps      print the frame rate reported by OnFPS()
//	serve    export statistics and frame rate as prometheus metrics
//	config   print the effective configuration
//
// Configuration is taken, in order of precedence, from command line flags,
// PERFMARK_ environment variables and a YAML configuration file. The default
// location of the configuration file is $HOME/.perfmark/config.yaml, or
// .perfmark/config.yaml if that directory is in the current directory
package cli
