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

import (
	"testing"
	"unsafe"

	"github.com/BrawlSys-Hosting/RetroArch-gekko/test"
)

// the following types have the same size as the raw event types and are used
// to build events in Go memory

type testAdvance struct {
	typ GameEventType
	_   [4]byte
	adv rawAdvance
	_   [16]byte
}

type testSave struct {
	typ  GameEventType
	_    [4]byte
	save rawSave
}

type testLoad struct {
	typ  GameEventType
	_    [4]byte
	load rawLoad
	_    [16]byte
}

type testSyncing struct {
	typ  SessionEventType
	sync rawSyncing
	_    [8]byte
}

type testHandle struct {
	typ    SessionEventType
	handle rawHandle
	_      [12]byte
}

type testDesync struct {
	typ    SessionEventType
	desync rawDesync
}

func TestRawLayout(t *testing.T) {
	test.ExpectEquality(t, unsafe.Sizeof(rawGameEvent{}), uintptr(40))
	test.ExpectEquality(t, unsafe.Offsetof(rawGameEvent{}.data), uintptr(8))
	test.ExpectEquality(t, unsafe.Sizeof(rawSessionEvent{}), uintptr(20))
	test.ExpectEquality(t, unsafe.Sizeof(Config{}), uintptr(16))
	test.ExpectEquality(t, unsafe.Sizeof(NetworkStats{}), uintptr(12))
	test.ExpectEquality(t, unsafe.Sizeof(testAdvance{}), unsafe.Sizeof(rawGameEvent{}))
	test.ExpectEquality(t, unsafe.Sizeof(testSave{}), unsafe.Sizeof(rawGameEvent{}))
	test.ExpectEquality(t, unsafe.Sizeof(testLoad{}), unsafe.Sizeof(rawGameEvent{}))
	test.ExpectEquality(t, unsafe.Sizeof(testSyncing{}), unsafe.Sizeof(rawSessionEvent{}))
	test.ExpectEquality(t, unsafe.Sizeof(testHandle{}), unsafe.Sizeof(rawSessionEvent{}))
	test.ExpectEquality(t, unsafe.Sizeof(testDesync{}), unsafe.Sizeof(rawSessionEvent{}))
}

func TestDecodeGameEvents(t *testing.T) {
	inputs := []byte{0x01, 0x00, 0x00, 0x01}
	state := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	saveBuf := make([]byte, 16)
	stateLen := uint32(len(saveBuf))
	var checksum uint32

	adv := &testAdvance{typ: AdvanceEvent, adv: rawAdvance{frame: 10, inputLen: uint32(len(inputs)), inputs: &inputs[0]}}
	save := &testSave{typ: SaveEvent, save: rawSave{frame: 11, checksum: &checksum, stateLen: &stateLen, state: &saveBuf[0]}}
	load := &testLoad{typ: LoadEvent, load: rawLoad{frame: 9, stateLen: uint32(len(state)), state: &state[0]}}

	arr := []*rawGameEvent{
		(*rawGameEvent)(unsafe.Pointer(adv)),
		nil,
		(*rawGameEvent)(unsafe.Pointer(save)),
		(*rawGameEvent)(unsafe.Pointer(load)),
	}

	events := decodeGameEvents(unsafe.Pointer(&arr[0]), int32(len(arr)))
	test.DemandEquality(t, len(events), 3)

	test.ExpectEquality(t, events[0].Type, AdvanceEvent)
	test.ExpectEquality(t, events[0].Frame, int32(10))
	test.ExpectEquality(t, string(events[0].Data), string(inputs))

	test.ExpectEquality(t, events[1].Type, SaveEvent)
	test.ExpectEquality(t, events[1].Frame, int32(11))
	test.ExpectEquality(t, len(events[1].Save.State), 16)
	test.ExpectEquality(t, events[1].Save.StateLen, &stateLen)
	test.ExpectEquality(t, events[1].Save.Checksum, &checksum)

	// writes through the save request reach the library's buffer
	events[1].Save.State[0] = 0xff
	test.ExpectEquality(t, saveBuf[0], byte(0xff))

	test.ExpectEquality(t, events[2].Type, LoadEvent)
	test.ExpectEquality(t, events[2].Frame, int32(9))
	test.ExpectEquality(t, string(events[2].Data), string(state))

	// empty arrays
	test.ExpectEquality(t, len(decodeGameEvents(nil, 4)), 0)
	test.ExpectEquality(t, len(decodeGameEvents(unsafe.Pointer(&arr[0]), 0)), 0)
}

func TestDecodeSessionEvents(t *testing.T) {
	sync := &testSyncing{typ: PlayerSyncing, sync: rawSyncing{handle: 1, current: 3, max: 10}}
	conn := &testHandle{typ: PlayerConnected, handle: rawHandle{handle: 1}}
	disc := &testHandle{typ: PlayerDisconnected, handle: rawHandle{handle: 0}}
	desync := &testDesync{typ: DesyncDetected, desync: rawDesync{frame: 1000, localChecksum: 0x11111111, remoteChecksum: 0x22222222, remoteHandle: 1}}
	started := &testHandle{typ: SessionStarted}

	arr := []*rawSessionEvent{
		(*rawSessionEvent)(unsafe.Pointer(sync)),
		(*rawSessionEvent)(unsafe.Pointer(conn)),
		(*rawSessionEvent)(unsafe.Pointer(disc)),
		(*rawSessionEvent)(unsafe.Pointer(desync)),
		(*rawSessionEvent)(unsafe.Pointer(started)),
	}

	events := decodeSessionEvents(unsafe.Pointer(&arr[0]), int32(len(arr)))
	test.DemandEquality(t, len(events), 5)

	test.ExpectEquality(t, events[0].Type, PlayerSyncing)
	test.ExpectEquality(t, events[0].Current, uint8(3))
	test.ExpectEquality(t, events[0].Max, uint8(10))

	test.ExpectEquality(t, events[1].Type, PlayerConnected)
	test.ExpectEquality(t, events[1].Handle, int32(1))

	test.ExpectEquality(t, events[2].Type, PlayerDisconnected)
	test.ExpectEquality(t, events[2].Handle, int32(0))

	test.ExpectEquality(t, events[3].Type, DesyncDetected)
	test.ExpectEquality(t, events[3].Frame, int32(1000))
	test.ExpectEquality(t, events[3].LocalChecksum, uint32(0x11111111))
	test.ExpectEquality(t, events[3].RemoteChecksum, uint32(0x22222222))

	test.ExpectEquality(t, events[4].Type, SessionStarted)
}
