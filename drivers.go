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

package main

import (
	"fmt"
	"io"

	"github.com/BrawlSys-Hosting/RetroArch-gekko/netplay"
	"github.com/BrawlSys-Hosting/RetroArch-gekko/notifications"
	"github.com/BrawlSys-Hosting/RetroArch-gekko/wavwriter"
)

// hostDrivers are the native video and audio drivers of the harness. video
// frames are counted and audio is recorded if a wav writer is present
type hostDrivers struct {
	frames int
	audio  *wavwriter.WavWriter
}

func (h *hostDrivers) VideoFrame(_ []byte, _, _ uint, _ int) {
	h.frames++
}

func (h *hostDrivers) AudioSample(left, right int16) {
	if h.audio != nil {
		h.audio.AudioSample(left, right)
	}
}

func (h *hostDrivers) AudioSampleBatch(data []int16, frames uint) uint {
	if h.audio != nil {
		return h.audio.AudioSampleBatch(data, frames)
	}
	return frames
}

// autopilot is the local input of the harness. there is no keyboard so the
// local player moves in a fixed pattern
type autopilot struct {
	frame int
}

// length of each move in the pattern, in frames
const moveLength = 30

var pattern = []uint{
	netplay.ButtonRight, netplay.ButtonDown, netplay.ButtonLeft, netplay.ButtonUp,
	netplay.ButtonA,
}

func (a *autopilot) step() {
	a.frame++
}

// state answers input queries from the core. only port zero is pressed
func (a *autopilot) state(port, device, index, id uint) int16 {
	if port != 0 || device != netplay.DeviceJoypad || index != 0 {
		return 0
	}
	if pattern[(a.frame/moveLength)%len(pattern)] == id {
		return 1
	}
	return 0
}

// callbacks returns the default callbacks for a core, routing output to the
// native drivers
func (a *autopilot) callbacks(drv netplay.Drivers) netplay.Callbacks {
	return netplay.Callbacks{
		State:       a.state,
		Frame:       drv.VideoFrame,
		Sample:      drv.AudioSample,
		SampleBatch: drv.AudioSampleBatch,
	}
}

// noticePrinter prints session notices
type noticePrinter struct {
	out io.Writer
}

func (n *noticePrinter) Notify(notice notifications.Notice, data any) error {
	switch notice {
	case notifications.NotifyNetplaySessionStarted,
		notifications.NotifyNetplayPeerConnected,
		notifications.NotifyNetplayPeerDisconnected,
		notifications.NotifyNetplayDesync:
		_, err := fmt.Fprintf(n.out, "! %v\n", data)
		return err
	}
	return nil
}
