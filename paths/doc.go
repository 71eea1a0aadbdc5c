// This file is part of RetroArch-gekko.
//
// RetroArch-gekko is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// RetroArch-gekko is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with RetroArch-gekko.  If not, see <https://www.gnu.org/licenses/>.

// Package paths contains functions to prepare paths for resources that the
// netplay frontend reads and writes, such as the preferences file and the
// diagnostics report.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory.
//
// The default build returns paths relative to a ".retroarch-gekko" directory
// in the current working directory. This is useful when running from the
// project directory during development.
//
// Building with the "release" tag returns paths inside the user's config
// directory, as reported by os.UserConfigDir().
package paths
