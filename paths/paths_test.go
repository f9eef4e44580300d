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

package paths_test

import (
	"path/filepath"
	"regexp"
	"testing"

	"github.com/jetsetilly/perfmark/paths"
	"github.com/jetsetilly/perfmark/test"
)

func TestResourcePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	base := filepath.Join(home, ".perfmark")
	test.ExpectEquality(t, paths.ResourcePath("config.yaml"), filepath.Join(base, "config.yaml"))
	test.ExpectEquality(t, paths.ResourcePath("foo/bar", "baz"), filepath.Join(base, "foo", "bar", "baz"))
	test.ExpectEquality(t, paths.ResourcePath("", "baz"), filepath.Join(base, "baz"))
	test.ExpectEquality(t, paths.ResourcePath(), base)
}

func TestUniqueFilename(t *testing.T) {
	re := regexp.MustCompile(`^bench_frame_time_\d{8}_\d{6}$`)
	test.ExpectSuccess(t, re.MatchString(paths.UniqueFilename("bench", " frame time ")))

	re = regexp.MustCompile(`^bench_\d{8}_\d{6}$`)
	test.ExpectSuccess(t, re.MatchString(paths.UniqueFilename("bench", "")))
}
