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

//go:build (linux || darwin || freebsd) && !(gekkonet_static && cgo)

package gekkonet

import (
	"fmt"
	"strings"

	"github.com/ebitengine/purego"
)

type dlopener struct{}

func defaultOpener() opener {
	return dlopener{}
}

func (dlopener) open(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_LOCAL)
}

func (dlopener) sym(module uintptr, name string) (uintptr, error) {
	return purego.Dlsym(module, name)
}

func (dlopener) bind(fptr any, addr uintptr) (err error) {
	// RegisterFunc panics if the function signature cannot be supported
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	purego.RegisterFunc(fptr, addr)
	return nil
}

func (dlopener) close(module uintptr) error {
	return purego.Dlclose(module)
}

func (dlopener) path(_ uintptr, opened string) string {
	return opened
}

func (dlopener) hint(err error, exists bool) Hint {
	if err == nil {
		return HintNone
	}

	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "wrong elf class"),
		strings.Contains(msg, "wrong architecture"),
		strings.Contains(msg, "incompatible architecture"),
		strings.Contains(msg, "invalid elf header"):
		return HintArchitecture
	}

	// dlopen reports a missing dependency with the same message as a missing
	// file. the existence of the file decides between the two
	if exists {
		return HintDependencyMissing
	}
	return HintFileMissing
}
