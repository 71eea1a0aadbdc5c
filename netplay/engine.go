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

import (
	"github.com/BrawlSys-Hosting/RetroArch-gekko/gekkonet"
)

// Engine is the rollback engine. The gekkonet.Library type satisfies this
// interface.
type Engine interface {
	Create() (gekkonet.Session, error)
	Destroy(s gekkonet.Session) bool
	Start(s gekkonet.Session, cfg gekkonet.Config)
	SetNetAdapter(s gekkonet.Session, a gekkonet.Adapter)
	AddActor(s gekkonet.Session, p gekkonet.PlayerType, address []byte) int
	AddLocalInput(s gekkonet.Session, player int, input []byte)
	UpdateSession(s gekkonet.Session) []gekkonet.GameEvent
	SessionEvents(s gekkonet.Session) []gekkonet.SessionEvent
	NetworkStats(s gekkonet.Session, player int) gekkonet.NetworkStats
	NetworkPoll(s gekkonet.Session)
	DefaultAdapter(port uint16) gekkonet.Adapter
	LastError() string
	Status() gekkonet.Status
}

// Callbacks are the functions a core uses to read input and to output video
// and audio. Any field may be nil.
type Callbacks struct {
	State       func(port, device, index, id uint) int16
	Frame       func(data []byte, width, height uint, pitch int)
	Sample      func(left, right int16)
	SampleBatch func(data []int16, frames uint) uint
}

// Core is the emulator core being run in the session.
type Core interface {
	// the number of bytes required to serialise the current state. zero if
	// the core cannot serialise
	SerializeSize() int

	// serialise the current state into buf. returns the number of bytes
	// written
	Serialize(buf []byte) (int, error)

	// restore the state from data
	Unserialize(data []byte) error

	// the callbacks the core uses when netplay is not interposed
	DefaultCallbacks() (Callbacks, bool)

	// SetNetplayCallbacks makes the core use the driver's bridge functions
	// for input and output. UnsetNetplayCallbacks restores the default
	// callbacks
	SetNetplayCallbacks() bool
	UnsetNetplayCallbacks()
}

// Drivers is the native video and audio output used when no session is
// running.
type Drivers interface {
	VideoFrame(data []byte, width, height uint, pitch int)
	AudioSample(left, right int16)
	AudioSampleBatch(data []int16, frames uint) uint
}

// PacketInterface is the packet callback record a core may provide. The
// driver keeps its own copy of the record.
type PacketInterface struct {
	ProtocolVersion string
	Start           func(clientID uint16)
	Receive         func(data []byte, clientID uint16)
	Stop            func()
	Poll            func()
	Connected       func(clientID uint16) bool
	Disconnected    func(clientID uint16)
}

// DeviceJoypad is the device identifier of a joypad.
const DeviceJoypad = 1

// Joypad button identifiers.
const (
	ButtonB      = 0
	ButtonY      = 1
	ButtonSelect = 2
	ButtonStart  = 3
	ButtonUp     = 4
	ButtonDown   = 5
	ButtonLeft   = 6
	ButtonRight  = 7
	ButtonA      = 8
	ButtonX      = 9
	ButtonL      = 10
	ButtonR      = 11
	ButtonL2     = 12
	ButtonR2     = 13
	ButtonL3     = 14
	ButtonR3     = 15
)

// buttonMap maps a bit in the input mask to a joypad button. the order is
// part of the wire format shared with peers
var buttonMap = [16]uint{
	ButtonB, ButtonY, ButtonSelect, ButtonStart,
	ButtonUp, ButtonDown, ButtonLeft, ButtonRight,
	ButtonA, ButtonX, ButtonL, ButtonR,
	ButtonL2, ButtonR2, ButtonL3, ButtonR3,
}

// size of one player's input in the authoritative input
const maskSize = 2

// buttonBit returns the bit of the input mask for the button id
func buttonBit(id uint) (int, bool) {
	for i, b := range buttonMap {
		if b == id {
			return i, true
		}
	}
	return 0, false
}
