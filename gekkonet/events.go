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
	"unsafe"
)

// the following types mirror the layout of the event structs in the C
// library. the union in each event struct is represented by an array that
// has the size and alignment of the largest member. members are reached by
// casting a pointer to the array

type rawGameEvent struct {
	typ  GameEventType
	_    [4]byte
	data [4]uint64
}

type rawAdvance struct {
	frame    int32
	inputLen uint32
	inputs   *byte
}

type rawSave struct {
	frame    int32
	_        [4]byte
	checksum *uint32
	stateLen *uint32
	state    *byte
}

type rawLoad struct {
	frame    int32
	stateLen uint32
	state    *byte
}

type rawSessionEvent struct {
	typ  SessionEventType
	data [4]int32
}

type rawHandle struct {
	handle int32
}

type rawSyncing struct {
	handle  int32
	current uint8
	max     uint8
}

type rawDesync struct {
	frame          int32
	localChecksum  uint32
	remoteChecksum uint32
	remoteHandle   int32
}

// rawAddress mirrors GekkoNetAddress
type rawAddress struct {
	data unsafe.Pointer
	size uint32
}

// view returns a slice over memory owned by the library. returns nil if the
// pointer is nil or the length is zero
func view(p *byte, n uint32) []byte {
	if p == nil || n == 0 {
		return nil
	}
	return unsafe.Slice(p, n)
}

// decodeGameEvents converts the array of event pointers returned by
// gekko_update_session(). nil entries in the array are skipped
func decodeGameEvents(arr unsafe.Pointer, count int32) []GameEvent {
	if arr == nil || count <= 0 {
		return nil
	}

	ptrs := unsafe.Slice((**rawGameEvent)(arr), count)
	events := make([]GameEvent, 0, count)

	for _, e := range ptrs {
		if e == nil {
			continue
		}

		ev := GameEvent{Type: e.typ}

		switch e.typ {
		case AdvanceEvent:
			adv := (*rawAdvance)(unsafe.Pointer(&e.data))
			ev.Frame = adv.frame
			ev.Data = view(adv.inputs, adv.inputLen)
		case SaveEvent:
			save := (*rawSave)(unsafe.Pointer(&e.data))
			ev.Frame = save.frame
			ev.Save.Checksum = save.checksum
			ev.Save.StateLen = save.stateLen
			if save.stateLen != nil {
				ev.Save.State = view(save.state, *save.stateLen)
			}
		case LoadEvent:
			load := (*rawLoad)(unsafe.Pointer(&e.data))
			ev.Frame = load.frame
			ev.Data = view(load.state, load.stateLen)
		}

		events = append(events, ev)
	}

	return events
}

// decodeSessionEvents converts the array of event pointers returned by
// gekko_session_events(). nil entries in the array are skipped
func decodeSessionEvents(arr unsafe.Pointer, count int32) []SessionEvent {
	if arr == nil || count <= 0 {
		return nil
	}

	ptrs := unsafe.Slice((**rawSessionEvent)(arr), count)
	events := make([]SessionEvent, 0, count)

	for _, e := range ptrs {
		if e == nil {
			continue
		}

		ev := SessionEvent{Type: e.typ}

		switch e.typ {
		case PlayerSyncing:
			s := (*rawSyncing)(unsafe.Pointer(&e.data))
			ev.Handle = s.handle
			ev.Current = s.current
			ev.Max = s.max
		case PlayerConnected, PlayerDisconnected:
			h := (*rawHandle)(unsafe.Pointer(&e.data))
			ev.Handle = h.handle
		case DesyncDetected:
			d := (*rawDesync)(unsafe.Pointer(&e.data))
			ev.Frame = d.frame
			ev.LocalChecksum = d.localChecksum
			ev.RemoteChecksum = d.remoteChecksum
			ev.Handle = d.remoteHandle
		}

		events = append(events, ev)
	}

	return events
}
