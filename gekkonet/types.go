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

// Session is the opaque handle of a GekkoNet session.
type Session uintptr

// Adapter is the opaque handle of a GekkoNet network adapter. The adapter is
// owned by the library. Destroying the session it was set on releases it.
type Adapter uintptr

// PlayerType is the role of an actor added to a session.
type PlayerType int32

// List of valid PlayerType values.
const (
	LocalPlayer PlayerType = iota
	RemotePlayer
	Spectator
)

func (p PlayerType) String() string {
	switch p {
	case LocalPlayer:
		return "local player"
	case RemotePlayer:
		return "remote player"
	case Spectator:
		return "spectator"
	}
	return "unknown player type"
}

// Config is passed to Start(). The layout matches the GekkoConfig struct of
// the C library.
type Config struct {
	NumPlayers            uint8
	MaxSpectators         uint8
	InputPredictionWindow uint8
	SpectatorDelay        uint8
	InputSize             uint32
	StateSize             uint32
	LimitedSaving         bool
	PostSyncJoining       bool
	DesyncDetection       bool
}

// NetworkStats for a single player. The layout matches the GekkoNetworkStats
// struct of the C library.
type NetworkStats struct {
	LastPing uint16
	AvgPing  float32
	Jitter   float32
}

// GameEventType identifies the kind of a GameEvent.
type GameEventType int32

// List of valid GameEventType values.
const (
	EmptyGameEvent GameEventType = iota - 1
	AdvanceEvent
	SaveEvent
	LoadEvent
)

func (t GameEventType) String() string {
	switch t {
	case EmptyGameEvent:
		return "empty"
	case AdvanceEvent:
		return "advance"
	case SaveEvent:
		return "save"
	case LoadEvent:
		return "load"
	}
	return "unknown"
}

// SaveRequest is the destination of a save event. The State slice is the
// buffer provided by the library, its length being the capacity of that
// buffer. The handler writes the size of the saved state to StateLen and the
// checksum of the state to Checksum. Either pointer may be nil.
type SaveRequest struct {
	State    []byte
	StateLen *uint32
	Checksum *uint32
}

// GameEvent is an instruction from the library to the emulation.
//
// For AdvanceEvent the Data field holds the inputs of every player for the
// frame. For LoadEvent the Data field holds the state to be restored. For
// SaveEvent the Save field is used instead.
type GameEvent struct {
	Type  GameEventType
	Frame int32
	Data  []byte
	Save  SaveRequest
}

// SessionEventType identifies the kind of a SessionEvent.
type SessionEventType int32

// List of valid SessionEventType values.
const (
	EmptySessionEvent SessionEventType = iota - 1
	PlayerSyncing
	PlayerConnected
	PlayerDisconnected
	SessionStarted
	SpectatorPaused
	SpectatorUnpaused
	DesyncDetected
)

func (t SessionEventType) String() string {
	switch t {
	case EmptySessionEvent:
		return "empty"
	case PlayerSyncing:
		return "player syncing"
	case PlayerConnected:
		return "player connected"
	case PlayerDisconnected:
		return "player disconnected"
	case SessionStarted:
		return "session started"
	case SpectatorPaused:
		return "spectator paused"
	case SpectatorUnpaused:
		return "spectator unpaused"
	case DesyncDetected:
		return "desync detected"
	}
	return "unknown"
}

// SessionEvent describes a change in the state of the session. Which fields
// are meaningful depends on the Type.
//
//	PlayerSyncing       Handle, Current, Max
//	PlayerConnected     Handle
//	PlayerDisconnected  Handle
//	DesyncDetected      Frame, LocalChecksum, RemoteChecksum, Handle
type SessionEvent struct {
	Type           SessionEventType
	Handle         int32
	Current        uint8
	Max            uint8
	Frame          int32
	LocalChecksum  uint32
	RemoteChecksum uint32
}
