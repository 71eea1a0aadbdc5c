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

//go:build !(gekkonet_static && cgo)

package gekkonet

import (
	"path/filepath"
	"strings"

	"github.com/BrawlSys-Hosting/RetroArch-gekko/curated"
	"github.com/BrawlSys-Hosting/RetroArch-gekko/logger"
)

// trims trailing new line characters from error text reported by the
// operating system
func trimError(s string) string {
	return strings.TrimRight(s, "\r\n")
}

// load is called by EnsureLoaded() from within the critical section
func (lib *Library) load() bool {
	name := libraryName()

	candidates := make([]string, 0, 2)
	if dir, err := lib.exeDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, name))
	} else {
		logger.Warnf(logger.Allow, logTag, "cannot resolve executable directory: %v", err)
	}
	candidates = append(candidates, name)

	lib.status = Status{State: Failed}

	var module uintptr
	var opened string
	var firstErr error
	var hintPath string

	for _, pth := range candidates {
		lib.status.Attempted = append(lib.status.Attempted, pth)

		m, err := lib.opener.open(pth)
		if err == nil {
			module = m
			opened = pth
			break
		}

		logger.Errorf(logger.Allow, logTag, "failed to load %s: %s", pth, trimError(err.Error()))

		// the first attempt is the one with a full path so it is the one that
		// can be checked for existence
		if firstErr == nil {
			firstErr = err
			hintPath = pth
			_, serr := lib.stat(pth)
			lib.status.Hint = lib.opener.hint(err, serr == nil && filepath.IsAbs(pth))
		}
	}

	if module == 0 {
		lib.status.Err = curated.Errorf(LoadFailed, name, firstErr)
		if advice := lib.status.Hint.Advice(hintPath); advice != "" {
			logger.Error(logger.Allow, logTag, advice)
		}
		return false
	}

	// a failed attempt before the successful one leaves nothing to advise
	lib.status.Hint = HintNone
	lib.module = module
	lib.status.ModulePath = lib.opener.path(module, opened)

	for _, s := range lib.api.required() {
		addr, err := lib.opener.sym(module, s.name)
		if err == nil && addr != 0 {
			err = lib.opener.bind(s.fptr, addr)
		}
		if err != nil || addr == 0 {
			logger.Errorf(logger.Allow, logTag, "missing symbol: %s", s.name)
			if err != nil {
				logger.Errorf(logger.Allow, logTag, "symbol error: %s", trimError(err.Error()))
			}
			lib.status.Err = curated.Errorf(SymbolMissing, s.name)
			lib.status.Hint = HintSymbolMissing
			logger.Error(logger.Allow, logTag, HintSymbolMissing.Advice(lib.status.ModulePath))
			_ = lib.unload()
			lib.status.State = Failed
			return false
		}
	}

	lib.status.SymbolsResolved = true

	for _, n := range lastErrorSymbols {
		addr, err := lib.opener.sym(module, n)
		if err != nil || addr == 0 {
			continue
		}
		if err := lib.opener.bind(&lib.api.lastError, addr); err == nil {
			break
		}
		lib.api.lastError = nil
	}

	lib.status.State = Loaded
	logger.Logf(logger.Allow, logTag, "loaded %s", lib.status.ModulePath)

	return true
}

// unload is called from within the critical section. the status is not
// changed except for the state, which is set to NotAttempted if the module
// was open
func (lib *Library) unload() error {
	lib.api = api{}
	if lib.module == 0 {
		return nil
	}

	m := lib.module
	lib.module = 0
	lib.status.State = NotAttempted

	if err := lib.opener.close(m); err != nil {
		return curated.Errorf("gekkonet: %v", err)
	}
	return nil
}
