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
	"encoding/binary"
	"hash/crc32"

	"github.com/BrawlSys-Hosting/RetroArch-gekko/gekkonet"
	"github.com/BrawlSys-Hosting/RetroArch-gekko/logger"
	"github.com/BrawlSys-Hosting/RetroArch-gekko/notifications"
)

// collectLocalInput reads the local joypad through the core's default input
// callback and sends the mask to the engine
func (d *Driver) collectLocalInput(s *session) {
	var mask uint16

	if s.cbs.State != nil {
		for i, id := range buttonMap {
			if s.cbs.State(0, DeviceJoypad, 0, id) != 0 {
				mask |= 1 << i
			}
		}
	}

	s.localInput = mask
	if s.handle != 0 && s.localActor >= 0 {
		var b [maskSize]byte
		binary.LittleEndian.PutUint16(b[:], mask)
		d.engine.AddLocalInput(s.handle, s.localActor, b[:])
	}
}

// pumpEvents drains the game events and then the session events
func (d *Driver) pumpEvents(s *session) {
	d.handleGameEvents(s)
	d.handleSessionEvents(s)
}

func (d *Driver) handleGameEvents(s *session) {
	if s.handle == 0 {
		return
	}

	for _, ev := range d.engine.UpdateSession(s.handle) {
		switch ev.Type {
		case gekkonet.AdvanceEvent:
			s.currentFrame = uint32(ev.Frame)
			s.copyAuthoritativeInput(ev.Data)
		case gekkonet.SaveEvent:
			d.handleSave(s, ev.Save)
		case gekkonet.LoadEvent:
			d.handleLoad(ev.Data)
		}
	}
}

// handleSave serialises the core into the state buffer and copies as much of
// it as will fit into the engine's buffer. the checksum is always of the
// entire serialisation
func (d *Driver) handleSave(s *session, req gekkonet.SaveRequest) {
	if err := s.refreshSerialization(d.core); err != nil {
		return
	}

	n, err := d.core.Serialize(s.stateBuffer)
	if err != nil {
		logger.Logf(logger.Verbose, logTag, "save skipped: %v", err)
		return
	}
	n = max(0, min(n, len(s.stateBuffer)))
	payload := s.stateBuffer[:n]

	if req.State != nil && req.StateLen != nil {
		c := min(n, int(*req.StateLen), len(req.State))
		copy(req.State, payload[:c])
		*req.StateLen = uint32(c)
	}

	if req.Checksum != nil {
		*req.Checksum = crc32.ChecksumIEEE(payload)
	}
}

func (d *Driver) handleLoad(data []byte) {
	if len(data) == 0 {
		return
	}
	if err := d.core.Unserialize(data); err != nil {
		logger.Warnf(logger.Allow, logTag, "failed to load state requested by GekkoNet: %v", err)
	}
}

func (d *Driver) handleSessionEvents(s *session) {
	if s.handle == 0 {
		return
	}

	for _, ev := range d.engine.SessionEvents(s.handle) {
		switch ev.Type {
		case gekkonet.PlayerSyncing:
			s.connected = true
			d.setStatus(localise(msgSyncing, number(ev.Current), number(ev.Max)), uint(ev.Current), uint(ev.Max))

		case gekkonet.SessionStarted:
			s.started = true
			s.connected = true
			d.setStatus(localise(msgPlaying), 0, 0)
			d.notice(notifications.NotifyNetplaySessionStarted)

		case gekkonet.PlayerConnected:
			s.connected = true
			d.setStatus(localise(msgPeerConnected, number(ev.Handle)), 0, 0)
			d.notice(notifications.NotifyNetplayPeerConnected)

		case gekkonet.PlayerDisconnected:
			if int(ev.Handle) == s.localActor {
				s.connected = false
			}
			d.setStatus(localise(msgPeerDisconnected, number(ev.Handle)), 0, 0)
			d.notice(notifications.NotifyNetplayPeerDisconnected)

		case gekkonet.SpectatorPaused:
			s.spectator = true
			d.setStatus(localise(msgSpectating), 0, 0)
			d.notice(notifications.NotifyNetplaySpectatorPaused)

		case gekkonet.SpectatorUnpaused:
			s.spectator = false
			d.setStatus(localise(msgPlaying), 0, 0)
			d.notice(notifications.NotifyNetplaySpectatorUnpaused)

		case gekkonet.DesyncDetected:
			logger.Warnf(logger.Allow, logTag, "desync detected at frame %d (local 0x%08x remote 0x%08x)",
				ev.Frame, ev.LocalChecksum, ev.RemoteChecksum)
			d.setStatus(localise(msgDesync, number(ev.Frame)), 0, 0)
			d.notice(notifications.NotifyNetplayDesync)
		}
	}
}

// updateNetworkStats records the network statistics of the local player
func (d *Driver) updateNetworkStats(s *session) {
	if s.handle == 0 {
		return
	}
	stats := d.engine.NetworkStats(s.handle, s.localActor)
	d.latestPing = int(stats.LastPing)
	d.status.AvgPing = stats.AvgPing
	d.status.Jitter = stats.Jitter
}

// notice sends the current status message to the presentation layer
func (d *Driver) notice(n notifications.Notice) {
	if d.notify == nil {
		return
	}
	if err := d.notify.Notify(n, d.status.Message); err != nil {
		logger.Log(logger.Allow, logTag, err)
	}
}

func (d *Driver) preFrame() bool {
	s := d.session
	if s == nil {
		return true
	}
	if !s.running {
		return false
	}
	d.collectLocalInput(s)
	d.pumpEvents(s)
	return true
}

func (d *Driver) postFrame() {
	s := d.session
	if s == nil || !s.running {
		return
	}
	d.pumpEvents(s)
	d.updateNetworkStats(s)
	if s.handle != 0 {
		d.engine.NetworkPoll(s.handle)
	}
}
