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

// Package gekkonet binds the GekkoNet rollback networking library. The
// library is a C shared object (libGekkoNet.so, libGekkoNet.dylib or
// libGekkoNet.dll) that is located and opened at runtime. Every exported
// function of the Library type passes through the EnsureLoaded() gate, which
// opens the library on first use and remembers failure for the lifetime of the
// process.
//
// The library is searched for first in the directory containing the running
// executable and then by bare filename, which leaves the search to the
// operating system. Symbols are bound with github.com/ebitengine/purego so no
// C toolchain is required.
//
// Building with the gekkonet_static tag (and cgo enabled) links the library
// at build time instead. In that case the module path is reported as
// "builtin" and every symbol is always resolved.
//
// Game and session events returned by the library are converted to the Go
// types GameEvent and SessionEvent. The byte slices in those events are views
// onto memory owned by the library and are only valid until the next call to
// UpdateSession() or SessionEvents().
package gekkonet
