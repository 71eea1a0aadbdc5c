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

package gekkonet

import "fmt"

// Hint classifies a load failure so that the user can be told what to do
// about it.
type Hint int

// List of valid Hint values.
const (
	HintNone Hint = iota

	// the library file does not exist at the attempted path
	HintFileMissing

	// the library file exists but the operating system could not load it,
	// usually because a library it depends on is missing
	HintDependencyMissing

	// the library was built for a different architecture
	HintArchitecture

	// the library was opened but does not export a required symbol
	HintSymbolMissing
)

func (h Hint) String() string {
	switch h {
	case HintFileMissing:
		return "file missing"
	case HintDependencyMissing:
		return "dependency missing"
	case HintArchitecture:
		return "architecture mismatch"
	case HintSymbolMissing:
		return "symbol missing"
	}
	return "none"
}

// Advice returns a sentence telling the user how to correct the problem. The
// path is the path of the first load attempt.
func (h Hint) Advice(path string) string {
	name := libraryName()
	switch h {
	case HintFileMissing:
		return fmt.Sprintf("%s was not found at %s. Place it next to the executable or on the library search path", name, path)
	case HintDependencyMissing:
		return fmt.Sprintf("%s exists at %s but a library it depends on could not be loaded", name, path)
	case HintArchitecture:
		return fmt.Sprintf("%s is built for a different architecture than this executable", name)
	case HintSymbolMissing:
		return fmt.Sprintf("%s does not export the required symbols. Ensure it matches this build", name)
	}
	return ""
}
