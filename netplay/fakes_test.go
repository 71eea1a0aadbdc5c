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

package netplay_test

import (
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"github.com/BrawlSys-Hosting/RetroArch-gekko/gekkonet"
	"github.com/BrawlSys-Hosting/RetroArch-gekko/logger"
	"github.com/BrawlSys-Hosting/RetroArch-gekko/netplay"
	"github.com/BrawlSys-Hosting/RetroArch-gekko/notifications"
	"github.com/BrawlSys-Hosting/RetroArch-gekko/portprobe"
	"github.com/BrawlSys-Hosting/RetroArch-gekko/test"
)

// fakeEngine implements the netplay.Engine interface. events are queued and
// each call to UpdateSession() or SessionEvents() takes the next batch
type fakeEngine struct {
	createErr  error
	status     gekkonet.Status
	lastError  string
	nextHandle gekkonet.Session
	adapter    gekkonet.Adapter
	actor      int
	stats      gekkonet.NetworkStats

	created      []gekkonet.Session
	destroyed    []gekkonet.Session
	started      []gekkonet.Config
	adapterSet   []gekkonet.Adapter
	adapterPorts []uint16
	localInputs  [][]byte
	polls        int

	gameEvents    [][]gekkonet.GameEvent
	sessionEvents [][]gekkonet.SessionEvent
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		status: gekkonet.Status{
			State:           gekkonet.Loaded,
			ModulePath:      "/opt/gekko/libGekkoNet.so",
			Attempted:       []string{"/opt/gekko/libGekkoNet.so"},
			SymbolsResolved: true,
		},
		nextHandle: 100,
		adapter:    0x10,
	}
}

func (e *fakeEngine) Create() (gekkonet.Session, error) {
	if e.createErr != nil {
		return 0, e.createErr
	}
	h := e.nextHandle
	e.nextHandle++
	e.created = append(e.created, h)
	return h, nil
}

func (e *fakeEngine) Destroy(s gekkonet.Session) bool {
	e.destroyed = append(e.destroyed, s)
	return true
}

func (e *fakeEngine) Start(_ gekkonet.Session, cfg gekkonet.Config) {
	e.started = append(e.started, cfg)
}

func (e *fakeEngine) SetNetAdapter(_ gekkonet.Session, a gekkonet.Adapter) {
	e.adapterSet = append(e.adapterSet, a)
}

func (e *fakeEngine) AddActor(_ gekkonet.Session, _ gekkonet.PlayerType, _ []byte) int {
	return e.actor
}

func (e *fakeEngine) AddLocalInput(_ gekkonet.Session, _ int, input []byte) {
	e.localInputs = append(e.localInputs, slices.Clone(input))
}

func (e *fakeEngine) UpdateSession(_ gekkonet.Session) []gekkonet.GameEvent {
	if len(e.gameEvents) == 0 {
		return nil
	}
	ev := e.gameEvents[0]
	e.gameEvents = e.gameEvents[1:]
	return ev
}

func (e *fakeEngine) SessionEvents(_ gekkonet.Session) []gekkonet.SessionEvent {
	if len(e.sessionEvents) == 0 {
		return nil
	}
	ev := e.sessionEvents[0]
	e.sessionEvents = e.sessionEvents[1:]
	return ev
}

func (e *fakeEngine) NetworkStats(_ gekkonet.Session, _ int) gekkonet.NetworkStats {
	return e.stats
}

func (e *fakeEngine) NetworkPoll(_ gekkonet.Session) {
	e.polls++
}

func (e *fakeEngine) DefaultAdapter(port uint16) gekkonet.Adapter {
	e.adapterPorts = append(e.adapterPorts, port)
	return e.adapter
}

func (e *fakeEngine) LastError() string {
	return e.lastError
}

func (e *fakeEngine) Status() gekkonet.Status {
	return e.status
}

// fakeCore implements the netplay.Core interface
type fakeCore struct {
	state []byte
	size  int

	serializeErr   error
	unserializeErr error
	loaded         [][]byte

	noDefaults    bool
	refuseNetplay bool
	netplaySet    bool
	unsetCount    int

	// input values keyed by port and button id
	input map[[2]uint]int16

	frames  int
	samples int
	batches int
}

func newFakeCore() *fakeCore {
	state := make([]byte, 100)
	for i := range state {
		state[i] = byte(i + 1)
	}
	return &fakeCore{
		state: state,
		size:  len(state),
		input: make(map[[2]uint]int16),
	}
}

func (c *fakeCore) SerializeSize() int {
	return c.size
}

func (c *fakeCore) Serialize(buf []byte) (int, error) {
	if c.serializeErr != nil {
		return 0, c.serializeErr
	}
	return copy(buf, c.state), nil
}

func (c *fakeCore) Unserialize(data []byte) error {
	if c.unserializeErr != nil {
		return c.unserializeErr
	}
	c.loaded = append(c.loaded, slices.Clone(data))
	c.state = slices.Clone(data)
	return nil
}

func (c *fakeCore) DefaultCallbacks() (netplay.Callbacks, bool) {
	if c.noDefaults {
		return netplay.Callbacks{}, false
	}
	return netplay.Callbacks{
		State: func(port, _, _, id uint) int16 {
			return c.input[[2]uint{port, id}]
		},
		Frame: func(_ []byte, _, _ uint, _ int) {
			c.frames++
		},
		Sample: func(_, _ int16) {
			c.samples++
		},
		SampleBatch: func(_ []int16, frames uint) uint {
			c.batches++
			return frames
		},
	}, true
}

func (c *fakeCore) SetNetplayCallbacks() bool {
	if c.refuseNetplay {
		return false
	}
	c.netplaySet = true
	return true
}

func (c *fakeCore) UnsetNetplayCallbacks() {
	c.netplaySet = false
	c.unsetCount++
}

// fakeDrivers implements the netplay.Drivers interface
type fakeDrivers struct {
	frames  int
	samples int
	batches int
}

func (f *fakeDrivers) VideoFrame(_ []byte, _, _ uint, _ int) {
	f.frames++
}

func (f *fakeDrivers) AudioSample(_, _ int16) {
	f.samples++
}

func (f *fakeDrivers) AudioSampleBatch(_ []int16, frames uint) uint {
	f.batches++
	return frames
}

// fakeNotify records notices
type fakeNotify struct {
	notices []notifications.Notice
	data    []any
	err     error
}

func (n *fakeNotify) Notify(notice notifications.Notice, data any) error {
	n.notices = append(n.notices, notice)
	n.data = append(n.data, data)
	return n.err
}

// prober reporting the ports in the map as busy
func busyProber(busy map[uint16]bool) portprobe.Prober {
	return portprobe.ProberFunc(func(port uint16) (bool, bool) {
		return !busy[port], true
	})
}

type fixture struct {
	drv     *netplay.Driver
	engine  *fakeEngine
	core    *fakeCore
	drivers *fakeDrivers
	prefs   *netplay.Preferences
	dir     string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	logger.Clear()

	dir := t.TempDir()
	p, err := netplay.NewPreferencesAt(filepath.Join(dir, "preferences"))
	test.DemandSuccess(t, err)

	f := &fixture{
		engine:  newFakeEngine(),
		core:    newFakeCore(),
		drivers: &fakeDrivers{},
		prefs:   p,
		dir:     dir,
	}
	f.drv = netplay.NewDriver(f.engine, f.core, f.drivers, f.prefs)
	f.drv.SetProber(busyProber(nil))

	return f
}

// logged returns the central log as a string
func logged() string {
	w := &test.CaptureWriter{}
	logger.Write(w)
	return w.String()
}

func status(t *testing.T, d *netplay.Driver) netplay.Status {
	t.Helper()
	var st netplay.Status
	test.DemandSuccess(t, d.Control(netplay.OpGetSessionStatus, &st))
	return st
}

var errFake = errors.New("fake error")
