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

package paths

import (
	"os"
	"path/filepath"
)

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with the config directory for the user. The sub-path
// argument names a directory inside the config directory, it can be empty.
//
// The function creates any missing directories along the way. The file itself
// is never created.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := ResourceDir(subPth)
	if err != nil {
		return "", err
	}
	return filepath.Join(base, file), nil
}

// ResourceDir returns the directory that ResourcePath() would place a file
// in for the given sub-path. The directory is created if necessary.
func ResourceDir(subPth string) (string, error) {
	r, err := root()
	if err != nil {
		return "", err
	}

	pth := filepath.Join(r, subPth)
	if err := os.MkdirAll(pth, 0o700); err != nil {
		return "", err
	}

	return pth, nil
}
