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

// InputState answers an input query made by the core. While a session is
// running, joypad queries are answered from the authoritative input received
// from the engine. Other queries are passed to the core's default input
// callback. Returns zero if there is no session.
func (d *Driver) InputState(port, device, index, id uint) int16 {
	s := d.session
	if s == nil || !s.running {
		return 0
	}

	if device == DeviceJoypad && index == 0 {
		if bit, ok := buttonBit(id); ok {
			if s.portMask(port)&(1<<bit) != 0 {
				return 1
			}
			return 0
		}
	}

	if s.cbs.State == nil {
		return 0
	}
	return s.cbs.State(port, device, index, id)
}

// VideoFrame outputs a frame through the core's default video callback, or
// through the native video driver when there is no session.
func (d *Driver) VideoFrame(data []byte, width, height uint, pitch int) {
	if s := d.session; s != nil && s.cbs.Frame != nil {
		s.cbs.Frame(data, width, height, pitch)
		return
	}
	if d.drivers != nil {
		d.drivers.VideoFrame(data, width, height, pitch)
	}
}

// AudioSample outputs a single stereo sample through the core's default
// audio callback, or through the native audio driver when there is no
// session.
func (d *Driver) AudioSample(left, right int16) {
	if s := d.session; s != nil && s.cbs.Sample != nil {
		s.cbs.Sample(left, right)
		return
	}
	if d.drivers != nil {
		d.drivers.AudioSample(left, right)
	}
}

// AudioSampleBatch outputs interleaved stereo samples. Returns the number of
// frames consumed.
func (d *Driver) AudioSampleBatch(data []int16, frames uint) uint {
	if s := d.session; s != nil && s.cbs.SampleBatch != nil {
		return s.cbs.SampleBatch(data, frames)
	}
	if d.drivers != nil {
		return d.drivers.AudioSampleBatch(data, frames)
	}
	return 0
}
