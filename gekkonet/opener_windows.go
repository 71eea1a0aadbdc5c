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

//go:build windows && !(gekkonet_static && cgo)

package gekkonet

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/ebitengine/purego"
	"golang.org/x/sys/windows"
)

type winopener struct{}

func defaultOpener() opener {
	return winopener{}
}

// openError carries the system message for a failed LoadLibrary call
type openError struct {
	code syscall.Errno
	msg  string
}

func (e openError) Error() string {
	return fmt.Sprintf("%s (error %d)", e.msg, uint32(e.code))
}

func (e openError) Unwrap() error {
	return e.code
}

// systemMessage returns the text for the error code as reported by the
// system, converted from UTF-16 and trimmed of new line characters
func systemMessage(code syscall.Errno) string {
	buf := make([]uint16, 512)
	flags := uint32(windows.FORMAT_MESSAGE_FROM_SYSTEM | windows.FORMAT_MESSAGE_IGNORE_INSERTS)
	n, err := windows.FormatMessage(flags, 0, uint32(code), 0, buf, nil)
	if err != nil || n == 0 {
		return code.Error()
	}
	return strings.TrimSpace(windows.UTF16ToString(buf[:n]))
}

func (winopener) open(path string) (uintptr, error) {
	var h windows.Handle
	var err error

	// a full path uses the altered search order so that libraries next to
	// the DLL are found
	if filepath.IsAbs(path) {
		h, err = windows.LoadLibraryEx(path, 0, windows.LOAD_WITH_ALTERED_SEARCH_PATH)
	} else {
		h, err = windows.LoadLibrary(path)
	}

	if err != nil {
		var code syscall.Errno
		if errors.As(err, &code) {
			return 0, openError{code: code, msg: systemMessage(code)}
		}
		return 0, err
	}

	return uintptr(h), nil
}

func (winopener) sym(module uintptr, name string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(module), name)
}

func (winopener) bind(fptr any, addr uintptr) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	purego.RegisterFunc(fptr, addr)
	return nil
}

func (winopener) close(module uintptr) error {
	return windows.FreeLibrary(windows.Handle(module))
}

func (winopener) path(module uintptr, opened string) string {
	buf := make([]uint16, windows.MAX_LONG_PATH)
	n, err := windows.GetModuleFileName(windows.Handle(module), &buf[0], uint32(len(buf)))
	if err != nil || n == 0 || int(n) >= len(buf) {
		return opened
	}
	return windows.UTF16ToString(buf[:n])
}

func (winopener) hint(err error, exists bool) Hint {
	switch {
	case err == nil:
		return HintNone
	case errors.Is(err, windows.ERROR_BAD_EXE_FORMAT):
		return HintArchitecture
	case errors.Is(err, windows.ERROR_MOD_NOT_FOUND):
		if exists {
			return HintDependencyMissing
		}
		return HintFileMissing
	}
	if exists {
		return HintDependencyMissing
	}
	return HintFileMissing
}
