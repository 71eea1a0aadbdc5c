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

package democore

import (
	"encoding/binary"
	"fmt"

	"github.com/BrawlSys-Hosting/RetroArch-gekko/netplay"
)

// Dimensions of the video frame.
const (
	Width  = 64
	Height = 48
)

// bytes per pixel in the video frame (XRGB8888)
const bpp = 4

// SampleRate of the audio produced by the core.
const SampleRate = 44100

// frames of audio produced for every video frame. rounded down from 735
const samplesPerFrame = SampleRate / 60

// size of the block drawn for each player
const blockSize = 4

const numPlayers = 2

// player state. all fields are fixed size so that the state can be encoded
// with encoding/binary
type player struct {
	X      int16
	Y      int16
	Pushes uint32
}

// state is everything that changes from frame to frame
type state struct {
	Frame   uint32
	Seed    uint32
	Phase   uint32
	Players [numPlayers]player
}

// StateSize is the number of bytes in a serialised state.
var StateSize = binary.Size(state{})

// Core is the demo core. It implements the netplay.Core interface.
type Core struct {
	state state

	// callbacks used when netplay is not interposed
	defaults netplay.Callbacks

	// the netplay driver's bridge functions
	bridge netplay.Callbacks

	// whether the bridge functions are in use
	netplay bool

	pixels []byte
	audio  []int16
}

// New is the preferred method of initialisation for the Core type. The
// defaults are the callbacks used for input and output when there is no
// netplay session.
func New(defaults netplay.Callbacks) *Core {
	c := &Core{
		defaults: defaults,
		pixels:   make([]byte, Width*Height*bpp),
		audio:    make([]int16, samplesPerFrame*2),
	}
	c.Reset()
	return c
}

// Reset the core to its starting state.
func (c *Core) Reset() {
	c.state = state{Seed: 0x2545f491}
	c.state.Players[0] = player{X: Width / 4, Y: Height / 2}
	c.state.Players[1] = player{X: Width * 3 / 4, Y: Height / 2}
}

// SetBridge sets the callbacks used while SetNetplayCallbacks() is in
// effect. These will normally be the result of Driver.Callbacks().
func (c *Core) SetBridge(bridge netplay.Callbacks) {
	c.bridge = bridge
}

// Frame returns the number of frames run since the last reset.
func (c *Core) Frame() uint32 {
	return c.state.Frame
}

// Position returns the position of the player's block.
func (c *Core) Position(port int) (int, int) {
	if port < 0 || port >= numPlayers {
		return 0, 0
	}
	return int(c.state.Players[port].X), int(c.state.Players[port].Y)
}

// SerializeSize implements the netplay.Core interface.
func (c *Core) SerializeSize() int {
	return StateSize
}

// Serialize implements the netplay.Core interface.
func (c *Core) Serialize(buf []byte) (int, error) {
	n, err := binary.Encode(buf, binary.LittleEndian, &c.state)
	if err != nil {
		return 0, fmt.Errorf("democore: %w", err)
	}
	return n, nil
}

// Unserialize implements the netplay.Core interface. The state is unchanged
// if the data is not a complete state.
func (c *Core) Unserialize(data []byte) error {
	if len(data) != StateSize {
		return fmt.Errorf("democore: state is %d bytes, expected %d", len(data), StateSize)
	}
	var s state
	if _, err := binary.Decode(data, binary.LittleEndian, &s); err != nil {
		return fmt.Errorf("democore: %w", err)
	}
	c.state = s
	return nil
}

// DefaultCallbacks implements the netplay.Core interface.
func (c *Core) DefaultCallbacks() (netplay.Callbacks, bool) {
	return c.defaults, c.defaults.State != nil
}

// SetNetplayCallbacks implements the netplay.Core interface. Returns false
// if no bridge has been set.
func (c *Core) SetNetplayCallbacks() bool {
	if c.bridge.State == nil {
		return false
	}
	c.netplay = true
	return true
}

// UnsetNetplayCallbacks implements the netplay.Core interface.
func (c *Core) UnsetNetplayCallbacks() {
	c.netplay = false
}

// NetplayActive returns true while the bridge functions are in use.
func (c *Core) NetplayActive() bool {
	return c.netplay
}

func (c *Core) callbacks() netplay.Callbacks {
	if c.netplay {
		return c.bridge
	}
	return c.defaults
}
