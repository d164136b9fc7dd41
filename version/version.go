// This file is part of Hode.
//
// Hode is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Hode is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Hode.  If not, see <https://www.gnu.org/licenses/>.

// Package version reports the version of the running program. The version
// number is set at link time with:
//
//	-ldflags "-X github.com/hode-port/hode/version.number=v0.1.0"
//
// If no number is set then the version is derived from the build information
// embedded by the Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the application
const ApplicationName = "Hode"

// if number is empty then the project was probably not built using the makefile
var number string

var revision string
var version string

// Version returns the version string, the revision string and whether this is a
// numbered "release" version. if release is true then the revision information
// should be used sparingly
//
// If the version string is "unreleased" then the project has been built
// without a version number. If it is "local" then there is no version number
// and no vcs information, which happens with "go run ."
//
// A revision with uncommitted changes is suffixed with "+dirty".
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// Title returns the application name and version, suitable for use as a
// window title.
func Title() string {
	if number != "" {
		return fmt.Sprintf("%s %s", ApplicationName, version)
	}
	return ApplicationName
}

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		info = nil
	}
	version, revision = fromBuildInfo(number, info)
}

func fromBuildInfo(number string, info *debug.BuildInfo) (string, string) {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if info != nil {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	rev := "no revision information"
	if vcsRevision != "" {
		rev = vcsRevision
		if vcsModified {
			rev = fmt.Sprintf("%s+dirty", rev)
		}
	}

	if number != "" {
		return number, rev
	}
	if vcs {
		return "unreleased", rev
	}
	return "local", rev
}
