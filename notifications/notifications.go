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

package notifications

// Notice describes events that somehow change the presentation of the
// emulation. These notifications can be used to present additional information
// to the user
type Notice string

// List of defined notifications.
const (
	// all players have synchronised and the session is running
	NotifyNetplaySessionStarted Notice = "NotifyNetplaySessionStarted"

	// a remote peer has joined or left
	NotifyNetplayPeerConnected    Notice = "NotifyNetplayPeerConnected"
	NotifyNetplayPeerDisconnected Notice = "NotifyNetplayPeerDisconnected"

	// the local participant has stopped or resumed spectating
	NotifyNetplaySpectatorPaused   Notice = "NotifyNetplaySpectatorPaused"
	NotifyNetplaySpectatorUnpaused Notice = "NotifyNetplaySpectatorUnpaused"

	// the engine has found that the peers' checksums differ
	NotifyNetplayDesync Notice = "NotifyNetplayDesync"

	// the session has been torn down
	NotifyNetplayEnded Notice = "NotifyNetplayEnded"
)

// Notify is used to send notices to the presentation layer. The data
// argument carries the detail of the event, usually a status string, and may
// be nil.
type Notify interface {
	Notify(notice Notice, data any) error
}
