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

//go:build !linux && !darwin && !freebsd && !windows && !(gekkonet_static && cgo)

package gekkonet

import (
	"errors"
	"runtime"
)

var errUnsupported = errors.New("dynamic loading is not supported on " + runtime.GOOS)

type noopener struct{}

func defaultOpener() opener {
	return noopener{}
}

func (noopener) open(_ string) (uintptr, error) {
	return 0, errUnsupported
}

func (noopener) sym(_ uintptr, _ string) (uintptr, error) {
	return 0, errUnsupported
}

func (noopener) bind(_ any, _ uintptr) error {
	return errUnsupported
}

func (noopener) close(_ uintptr) error {
	return nil
}

func (noopener) path(_ uintptr, opened string) string {
	return opened
}

func (noopener) hint(_ error, exists bool) Hint {
	if exists {
		return HintDependencyMissing
	}
	return HintFileMissing
}
