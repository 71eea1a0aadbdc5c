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

// Op is an operation requested with Control().
type Op int

// List of valid Op values.
const (
	OpNone Op = iota

	OpEnableServer
	OpEnableClient
	OpDisable

	OpPreFrame
	OpPostFrame

	OpIsEnabled
	OpIsConnected
	OpIsServer
	OpIsPlaying
	OpIsSpectating
	OpIsDataInited
	OpAllowPause
	OpAllowTimeskip

	// every one of these ends the session
	OpPause
	OpUnpause
	OpLoadSavestate
	OpReset
	OpDisconnect
	OpGameWatch
	OpPlayerChat
	OpRefreshClientInfo
	OpIsReplaying

	// not supported
	OpFinishedNatTraversal
	OpDesyncPush
	OpDesyncPop
	OpKickClient
	OpBanClient

	OpSetCorePacketInterface
	OpUseCorePacketInterface
	OpGetSessionStatus
)

func (op Op) String() string {
	switch op {
	case OpEnableServer:
		return "enable server"
	case OpEnableClient:
		return "enable client"
	case OpDisable:
		return "disable"
	case OpPreFrame:
		return "pre-frame"
	case OpPostFrame:
		return "post-frame"
	case OpIsEnabled:
		return "is enabled"
	case OpIsConnected:
		return "is connected"
	case OpIsServer:
		return "is server"
	case OpIsPlaying:
		return "is playing"
	case OpIsSpectating:
		return "is spectating"
	case OpIsDataInited:
		return "is data inited"
	case OpAllowPause:
		return "allow pause"
	case OpAllowTimeskip:
		return "allow timeskip"
	case OpPause:
		return "pause"
	case OpUnpause:
		return "unpause"
	case OpLoadSavestate:
		return "load savestate"
	case OpReset:
		return "reset"
	case OpDisconnect:
		return "disconnect"
	case OpGameWatch:
		return "game watch"
	case OpPlayerChat:
		return "player chat"
	case OpRefreshClientInfo:
		return "refresh client info"
	case OpIsReplaying:
		return "is replaying"
	case OpFinishedNatTraversal:
		return "finished nat traversal"
	case OpDesyncPush:
		return "desync push"
	case OpDesyncPop:
		return "desync pop"
	case OpKickClient:
		return "kick client"
	case OpBanClient:
		return "ban client"
	case OpSetCorePacketInterface:
		return "set core packet interface"
	case OpUseCorePacketInterface:
		return "use core packet interface"
	case OpGetSessionStatus:
		return "get session status"
	}
	return "none"
}

// Control performs the operation. The meaning of the data argument and of
// the return value depends on the operation.
//
// OpPreFrame returns true if the run loop should run the next frame. This is
// always the case when there is no session.
//
// OpSetCorePacketInterface expects a *PacketInterface, which is copied. A
// nil value releases the stored copy.
//
// OpGetSessionStatus expects a *Status, which is filled in.
//
// The query operations return false when there is no session. Operations
// that end the session return false when there is no session to end.
func (d *Driver) Control(op Op, data any) bool {
	s := d.session

	switch op {
	case OpEnableServer:
		d.enabled = true
		d.isClient = false
		return true

	case OpEnableClient:
		d.enabled = true
		d.isClient = true
		return true

	case OpDisable:
		if s != nil {
			return false
		}
		d.enabled = false
		return true

	case OpPreFrame:
		return d.preFrame()

	case OpPostFrame:
		d.postFrame()
		return true

	case OpIsEnabled:
		return s != nil && s.running

	case OpIsConnected:
		return s != nil && s.connected

	case OpIsServer:
		return s != nil && s.localActor >= 0 && !d.isClient

	case OpIsPlaying:
		return s != nil && s.connected && !s.spectator

	case OpIsSpectating:
		return s != nil && s.spectator

	case OpIsDataInited:
		return s != nil && s.started

	case OpAllowPause:
		return s != nil && s.allowPausing

	case OpAllowTimeskip:
		return s != nil && s.allowTimeskip

	case OpPause, OpUnpause, OpLoadSavestate, OpReset, OpDisconnect,
		OpGameWatch, OpPlayerChat, OpRefreshClientInfo, OpIsReplaying:
		if s == nil {
			return false
		}
		d.Deinit()
		return true

	case OpFinishedNatTraversal, OpDesyncPush, OpDesyncPop, OpKickClient, OpBanClient:
		return false

	case OpSetCorePacketInterface:
		d.packet = nil
		if data == nil {
			return true
		}
		p, ok := data.(*PacketInterface)
		if !ok {
			return false
		}
		if p != nil {
			c := *p
			d.packet = &c
		}
		return true

	case OpUseCorePacketInterface:
		return d.packet != nil

	case OpGetSessionStatus:
		st, ok := data.(*Status)
		if !ok || st == nil {
			return false
		}
		*st = d.status
		st.Ping = d.latestPing
		return true
	}

	return false
}
