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
	"github.com/BrawlSys-Hosting/RetroArch-gekko/netplay"
)

func pressed(cbs netplay.Callbacks, port uint, id uint) bool {
	if cbs.State == nil {
		return false
	}
	return cbs.State(port, netplay.DeviceJoypad, 0, id) != 0
}

// step the random number generator. xorshift32
func (s *state) random() uint32 {
	x := s.Seed
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	s.Seed = x
	return x
}

// RunFrame reads the input of both players, advances the state by one frame
// and outputs video and audio.
func (c *Core) RunFrame() {
	cbs := c.callbacks()

	for i := range c.state.Players {
		p := &c.state.Players[i]
		port := uint(i)

		if pressed(cbs, port, netplay.ButtonLeft) {
			p.X--
		}
		if pressed(cbs, port, netplay.ButtonRight) {
			p.X++
		}
		if pressed(cbs, port, netplay.ButtonUp) {
			p.Y--
		}
		if pressed(cbs, port, netplay.ButtonDown) {
			p.Y++
		}

		// the A button pushes the block in a random direction
		if pressed(cbs, port, netplay.ButtonA) {
			p.Pushes++
			switch c.state.random() % 4 {
			case 0:
				p.X += blockSize
			case 1:
				p.X -= blockSize
			case 2:
				p.Y += blockSize
			case 3:
				p.Y -= blockSize
			}
		}

		p.X = min(max(p.X, 0), Width-blockSize)
		p.Y = min(max(p.Y, 0), Height-blockSize)
	}

	c.state.Frame++

	c.render(cbs)
	c.mix(cbs)
}

func (c *Core) render(cbs netplay.Callbacks) {
	// background changes shade with the frame number
	shade := byte(c.state.Frame & 0x3f)
	for i := 0; i < len(c.pixels); i += bpp {
		c.pixels[i] = shade
		c.pixels[i+1] = shade
		c.pixels[i+2] = shade
		c.pixels[i+3] = 0
	}

	colours := [numPlayers][3]byte{{0xff, 0x40, 0x40}, {0x40, 0x40, 0xff}}
	for i, p := range c.state.Players {
		for y := int(p.Y); y < int(p.Y)+blockSize; y++ {
			for x := int(p.X); x < int(p.X)+blockSize; x++ {
				o := (y*Width + x) * bpp
				c.pixels[o] = colours[i][2]
				c.pixels[o+1] = colours[i][1]
				c.pixels[o+2] = colours[i][0]
			}
		}
	}

	if cbs.Frame != nil {
		cbs.Frame(c.pixels, Width, Height, Width*bpp)
	}
}

// mix a square wave for each player. the pitch of the tone follows the
// vertical position of the block
func (c *Core) mix(cbs netplay.Callbacks) {
	for i := 0; i < samplesPerFrame; i++ {
		var v [numPlayers]int16
		for j, p := range c.state.Players {
			period := uint32(40 + int(p.Y)*4)
			if (c.state.Phase/period)%2 == 0 {
				v[j] = 2000
			} else {
				v[j] = -2000
			}
		}
		c.audio[i*2] = v[0]
		c.audio[i*2+1] = v[1]
		c.state.Phase++
	}

	if cbs.SampleBatch != nil {
		cbs.SampleBatch(c.audio, samplesPerFrame)
	} else if cbs.Sample != nil {
		for i := 0; i < samplesPerFrame; i++ {
			cbs.Sample(c.audio[i*2], c.audio[i*2+1])
		}
	}
}
