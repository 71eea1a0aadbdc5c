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

import (
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"sync"
	"unsafe"

	"github.com/BrawlSys-Hosting/RetroArch-gekko/curated"
)

const logTag = "gekkonet"

// Sentinal error patterns.
const (
	LoadFailed    = "gekkonet: cannot load %s: %v"
	SymbolMissing = "gekkonet: missing symbol %s"
	NotAvailable  = "gekkonet: library not available: %v"
	CreateFailed  = "gekkonet: session create failed"
)

// prefix of every exported symbol in the library
const symbolPrefix = "gekko_"

// symbol names for the optional last error function. older builds of the
// library use the second name
var lastErrorSymbols = []string{"gekko_last_error", "gekko_get_last_error"}

// libraryName returns the platform specific filename of the library.
func libraryName() string {
	switch runtime.GOOS {
	case "windows":
		return "libGekkoNet.dll"
	case "darwin", "ios":
		return "libGekkoNet.dylib"
	}
	return "libGekkoNet.so"
}

// the function table bound to the library
type api struct {
	create         func(session *Session) bool
	destroy        func(session Session) bool
	start          func(session Session, config *Config)
	netAdapterSet  func(session Session, adapter Adapter)
	addActor       func(session Session, player PlayerType, addr *rawAddress) int32
	addLocalInput  func(session Session, player int32, input unsafe.Pointer)
	updateSession  func(session Session, count *int32) unsafe.Pointer
	sessionEvents  func(session Session, count *int32) unsafe.Pointer
	networkStats   func(session Session, player int32, stats *NetworkStats)
	networkPoll    func(session Session)
	defaultAdapter func(port uint16) Adapter

	// optional
	lastError func() string
}

type symbol struct {
	name string
	fptr any
}

// required returns the list of required symbols in the order they are
// resolved. the fptr field of each entry points into the api table
func (a *api) required() []symbol {
	return []symbol{
		{name: symbolPrefix + "create", fptr: &a.create},
		{name: symbolPrefix + "destroy", fptr: &a.destroy},
		{name: symbolPrefix + "start", fptr: &a.start},
		{name: symbolPrefix + "net_adapter_set", fptr: &a.netAdapterSet},
		{name: symbolPrefix + "add_actor", fptr: &a.addActor},
		{name: symbolPrefix + "add_local_input", fptr: &a.addLocalInput},
		{name: symbolPrefix + "update_session", fptr: &a.updateSession},
		{name: symbolPrefix + "session_events", fptr: &a.sessionEvents},
		{name: symbolPrefix + "network_stats", fptr: &a.networkStats},
		{name: symbolPrefix + "network_poll", fptr: &a.networkPoll},
		{name: symbolPrefix + "default_adapter", fptr: &a.defaultAdapter},
	}
}

// LoaderState describes the progress of the loader.
type LoaderState int

// List of valid LoaderState values.
const (
	NotAttempted LoaderState = iota
	Loaded
	Failed
	Builtin
)

func (s LoaderState) String() string {
	switch s {
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	case Builtin:
		return "builtin (static link)"
	}
	return "not used"
}

// Status is a snapshot of the loader.
type Status struct {
	State LoaderState

	// the path of the module that was opened. empty if no module was opened.
	// "builtin" when the library is linked statically
	ModulePath string

	// every path passed to the operating system, in order
	Attempted []string

	// all required symbols were found
	SymbolsResolved bool

	// the reason for failure and a hint for the user. Err is nil and Hint is
	// HintNone if the library loaded
	Err  error
	Hint Hint
}

// Library is the GekkoNet shared library. The zero value is not usable, use
// New() instead.
type Library struct {
	crit sync.Mutex

	opener opener
	exeDir func() (string, error)
	stat   func(string) (os.FileInfo, error)

	module uintptr
	status Status
	api    api
}

// New is the preferred method of initialisation for the Library type. The
// library is not opened until it is first used.
func New() *Library {
	return &Library{
		opener: defaultOpener(),
		exeDir: executableDir,
		stat:   os.Stat,
	}
}

// executableDir returns the absolute directory of the running executable
// with symbolic links resolved
func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// EnsureLoaded opens the library and binds the required symbols if that has
// not been done already. Returns true if the library is usable.
//
// The outcome of the first attempt is permanent. If the library cannot be
// opened, or a required symbol is missing, then every subsequent call returns
// false immediately.
func (lib *Library) EnsureLoaded() bool {
	lib.crit.Lock()
	defer lib.crit.Unlock()

	switch lib.status.State {
	case Loaded, Builtin:
		return true
	case Failed:
		return false
	}

	return lib.load()
}

// Status returns a snapshot of the loader state.
func (lib *Library) Status() Status {
	lib.crit.Lock()
	defer lib.crit.Unlock()
	s := lib.status
	s.Attempted = slices.Clone(lib.status.Attempted)
	return s
}

// ModulePath returns the path of the loaded module. Empty if the library has
// not been opened.
func (lib *Library) ModulePath() string {
	lib.crit.Lock()
	defer lib.crit.Unlock()
	return lib.status.ModulePath
}

// LastError returns the error string reported by the library itself. Returns
// the empty string if the library does not export a last error function or if
// there is no error to report.
func (lib *Library) LastError() string {
	lib.crit.Lock()
	f := lib.api.lastError
	lib.crit.Unlock()
	if f == nil {
		return ""
	}
	return f()
}

// Close releases the library. Any session created with the library must have
// been destroyed. A library that loaded successfully can be loaded again with
// EnsureLoaded() after Close(). A failure to load is not cleared by Close().
func (lib *Library) Close() error {
	lib.crit.Lock()
	defer lib.crit.Unlock()
	return lib.unload()
}

// Create a new session.
func (lib *Library) Create() (Session, error) {
	if !lib.EnsureLoaded() {
		return 0, curated.Errorf(NotAvailable, lib.Status().Err)
	}
	var s Session
	if !lib.api.create(&s) || s == 0 {
		return 0, curated.Errorf(CreateFailed)
	}
	return s, nil
}

// Destroy a session. Returns true if the session was destroyed. Destroying
// the zero session is always successful.
func (lib *Library) Destroy(s Session) bool {
	if s == 0 {
		return true
	}
	if !lib.EnsureLoaded() {
		return false
	}
	return lib.api.destroy(s)
}

// Start the session with the supplied configuration.
func (lib *Library) Start(s Session, cfg Config) {
	if !lib.EnsureLoaded() {
		return
	}
	lib.api.start(s, &cfg)
}

// SetNetAdapter sets the adapter that the session will use for network
// traffic.
func (lib *Library) SetNetAdapter(s Session, a Adapter) {
	if !lib.EnsureLoaded() {
		return
	}
	lib.api.netAdapterSet(s, a)
}

// AddActor adds a player or spectator to the session. The address is ignored
// for LocalPlayer and may be empty. Returns the handle of the actor, which
// will be negative on failure.
func (lib *Library) AddActor(s Session, p PlayerType, address []byte) int {
	if !lib.EnsureLoaded() {
		return -1
	}

	var addr *rawAddress
	if len(address) > 0 {
		// the address struct is passed to C and holds a pointer to Go memory
		var pin runtime.Pinner
		defer pin.Unpin()
		pin.Pin(&address[0])

		addr = &rawAddress{
			data: unsafe.Pointer(&address[0]),
			size: uint32(len(address)),
		}
	}

	return int(lib.api.addActor(s, p, addr))
}

// AddLocalInput for the local player. The input is copied by the library.
func (lib *Library) AddLocalInput(s Session, player int, input []byte) {
	if len(input) == 0 || !lib.EnsureLoaded() {
		return
	}
	lib.api.addLocalInput(s, int32(player), unsafe.Pointer(&input[0]))
}

// UpdateSession returns the game events that need to be handled this frame.
// The data in the events is owned by the library and is valid only until the
// next call to UpdateSession().
func (lib *Library) UpdateSession(s Session) []GameEvent {
	if !lib.EnsureLoaded() {
		return nil
	}
	var count int32
	arr := lib.api.updateSession(s, &count)
	return decodeGameEvents(arr, count)
}

// SessionEvents returns the session events that have occurred since the
// previous call.
func (lib *Library) SessionEvents(s Session) []SessionEvent {
	if !lib.EnsureLoaded() {
		return nil
	}
	var count int32
	arr := lib.api.sessionEvents(s, &count)
	return decodeSessionEvents(arr, count)
}

// NetworkStats returns the network statistics for a player.
func (lib *Library) NetworkStats(s Session, player int) NetworkStats {
	var stats NetworkStats
	if !lib.EnsureLoaded() {
		return stats
	}
	lib.api.networkStats(s, int32(player), &stats)
	return stats
}

// NetworkPoll sends and receives network traffic for the session.
func (lib *Library) NetworkPoll(s Session) {
	if !lib.EnsureLoaded() {
		return
	}
	lib.api.networkPoll(s)
}

// DefaultAdapter returns the built-in UDP adapter of the library, bound to
// the specified port. Returns zero if no adapter is available.
func (lib *Library) DefaultAdapter(port uint16) Adapter {
	if !lib.EnsureLoaded() {
		return 0
	}
	return lib.api.defaultAdapter(port)
}
