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

package netplay

// Sentinal error patterns. Every stage of Init() that can fail maps to
// exactly one of these patterns.
const (
	AlreadyActive                = "netplay: session already active"
	DriverDisabled               = "netplay: driver disabled"
	CoreCallbacksMissing         = "netplay: core callbacks missing: %s"
	AllocationFailed             = "netplay: cannot allocate %d bytes for %s"
	EngineLoadFailed             = "netplay: engine load failed: %v"
	EngineSymbolMissing          = "netplay: engine symbol missing: %v"
	SessionCreateFailed          = "netplay: session create failed: %v"
	SerializationUnsupported     = "netplay: serialization unsupported"
	PortUnavailable              = "netplay: no verified UDP port available from %d"
	AdapterUnavailable           = "netplay: adapter unavailable on port %d"
	LocalActorRegistrationFailed = "netplay: local actor registration failed (handle %d)"
)

// Failure stage names as recorded in the Diagnostics record.
const (
	StagePreflight        = "preflight_active_session"
	StageEnableDriver     = "enable_driver"
	StageCoreCallbacks    = "core_callbacks"
	StageNetplayCallbacks = "netplay_callbacks"
	StageAllocateState    = "allocate_state"
	StageSessionCreate    = "session_create"
	StageApplySettings    = "apply_settings"
	StagePortSelection    = "port_selection"
	StageAdapterInit      = "adapter_initialisation"
	StageRegisterActor    = "register_local_actor"
)
