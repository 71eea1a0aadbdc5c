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

//go:build gekkonet_static && cgo

package gekkonet

/*
#cgo LDFLAGS: -lGekkoNet
#include <gekkonet.h>
*/
import "C"

import (
	"unsafe"
)

// the module path reported when the library is linked statically
const builtinPath = "builtin"

func defaultOpener() opener {
	return nil
}

func cSession(s Session) *C.GekkoSession {
	return (*C.GekkoSession)(unsafe.Pointer(uintptr(s)))
}

// load is called by EnsureLoaded() from within the critical section
func (lib *Library) load() bool {
	lib.api = api{
		create: func(s *Session) bool {
			var cs *C.GekkoSession
			ok := bool(C.gekko_create(&cs))
			*s = Session(uintptr(unsafe.Pointer(cs)))
			return ok
		},
		destroy: func(s Session) bool {
			return bool(C.gekko_destroy(cSession(s)))
		},
		start: func(s Session, cfg *Config) {
			C.gekko_start(cSession(s), (*C.GekkoConfig)(unsafe.Pointer(cfg)))
		},
		netAdapterSet: func(s Session, a Adapter) {
			C.gekko_net_adapter_set(cSession(s), (*C.GekkoNetAdapter)(unsafe.Pointer(uintptr(a))))
		},
		addActor: func(s Session, p PlayerType, addr *rawAddress) int32 {
			return int32(C.gekko_add_actor(cSession(s), C.GekkoPlayerType(p), (*C.GekkoNetAddress)(unsafe.Pointer(addr))))
		},
		addLocalInput: func(s Session, player int32, input unsafe.Pointer) {
			C.gekko_add_local_input(cSession(s), C.int(player), input)
		},
		updateSession: func(s Session, count *int32) unsafe.Pointer {
			var n C.int
			arr := C.gekko_update_session(cSession(s), &n)
			*count = int32(n)
			return unsafe.Pointer(arr)
		},
		sessionEvents: func(s Session, count *int32) unsafe.Pointer {
			var n C.int
			arr := C.gekko_session_events(cSession(s), &n)
			*count = int32(n)
			return unsafe.Pointer(arr)
		},
		networkStats: func(s Session, player int32, stats *NetworkStats) {
			C.gekko_network_stats(cSession(s), C.int(player), (*C.GekkoNetworkStats)(unsafe.Pointer(stats)))
		},
		networkPoll: func(s Session) {
			C.gekko_network_poll(cSession(s))
		},
		defaultAdapter: func(port uint16) Adapter {
			return Adapter(uintptr(unsafe.Pointer(C.gekko_default_adapter(C.ushort(port)))))
		},
	}

	lib.status = Status{
		State:           Builtin,
		ModulePath:      builtinPath,
		SymbolsResolved: true,
	}

	return true
}

// unload is called from within the critical section. a statically linked
// library cannot be released
func (lib *Library) unload() error {
	return nil
}
