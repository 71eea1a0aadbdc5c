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

	"github.com/BrawlSys-Hosting/RetroArch-gekko/curated"
	"github.com/BrawlSys-Hosting/RetroArch-gekko/gekkonet"
	"github.com/BrawlSys-Hosting/RetroArch-gekko/logger"
)

// upper limit on the size of the buffers owned by a session
const maxBufferSize = 64 * 1024 * 1024

// values taken from the preferences when the session is started
type tunables struct {
	numPlayers       uint8
	predictionWindow uint8
	spectatorDelay   uint8
	maxSpectators    uint8
	allowPausing     bool
	allowTimeskip    bool
}

// session is the state of a single rollback session.
type session struct {
	handle gekkonet.Session

	// the adapter is owned by the engine session. destroying the handle
	// releases the adapter
	adapter gekkonet.Adapter

	// negative until the local player has been registered
	localActor int

	// the most recent local serialisation. the length of the slice is the
	// serialize size most recently reported by the core
	stateBuffer []byte

	// the input of every player for the most recent advance event
	authoritative      []byte
	authoritativeValid bool

	localInput uint16

	tunables

	running   bool
	connected bool
	started   bool
	spectator bool

	currentFrame uint32

	// callbacks that were in use by the core before netplay was interposed
	cbs Callbacks
}

func newSession(cbs Callbacks) *session {
	return &session{
		localActor: -1,
		running:    true,
		cbs:        cbs,
	}
}

// free destroys the engine session and releases the buffers. it is safe to
// call free on a partially initialised session and to call it more than once
func (s *session) free(e Engine) {
	if s.handle != 0 {
		if !e.Destroy(s.handle) {
			logger.Warn(logger.Allow, logTag, "engine did not destroy session")
		}
		s.handle = 0
	}
	s.adapter = 0
	s.stateBuffer = nil
	s.authoritative = nil
	s.authoritativeValid = false
}

// reset the per connection state. used when a session is published
func (s *session) reset() {
	s.connected = false
	s.started = false
	s.authoritativeValid = false
	s.currentFrame = 0
}

// refreshSerialization makes sure the state buffer matches the serialize
// size reported by the core
func (s *session) refreshSerialization(core Core) error {
	size := core.SerializeSize()
	if size <= 0 {
		logger.Error(logger.Allow, logTag, "core did not report a save state size. rollback netplay requires save-state capable content")
		return curated.Errorf(SerializationUnsupported)
	}

	if size != len(s.stateBuffer) {
		if size > maxBufferSize {
			logger.Errorf(logger.Allow, logTag, "failed to allocate %d bytes for the serialization buffer", size)
			return curated.Errorf(AllocationFailed, size, "the serialization buffer")
		}
		s.stateBuffer = make([]byte, size)
	}

	return nil
}

// copyAuthoritativeInput replaces the authoritative input. an empty input
// invalidates the view
func (s *session) copyAuthoritativeInput(data []byte) {
	if len(data) == 0 || len(data) > maxBufferSize {
		s.authoritativeValid = false
		return
	}

	if cap(s.authoritative) < len(data) {
		s.authoritative = make([]byte, len(data))
	}
	s.authoritative = s.authoritative[:len(data)]
	copy(s.authoritative, data)
	s.authoritativeValid = true
}

// portMask returns the input mask for the player. zero if the authoritative
// input is invalid or does not include the player
func (s *session) portMask(port uint) uint16 {
	if !s.authoritativeValid {
		return 0
	}
	if port >= uint(len(s.authoritative)/maskSize) {
		return 0
	}
	offset := port * maskSize
	return binary.LittleEndian.Uint16(s.authoritative[offset : offset+maskSize])
}
