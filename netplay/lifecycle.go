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
	"path/filepath"

	"github.com/BrawlSys-Hosting/RetroArch-gekko/curated"
	"github.com/BrawlSys-Hosting/RetroArch-gekko/gekkonet"
	"github.com/BrawlSys-Hosting/RetroArch-gekko/logger"
	"github.com/BrawlSys-Hosting/RetroArch-gekko/notifications"
	"github.com/BrawlSys-Hosting/RetroArch-gekko/portprobe"
)

const logTag = "netplay"

// Driver is the netplay driver. There should be only one Driver in a
// process.
type Driver struct {
	engine  Engine
	core    Core
	drivers Drivers
	prefs   *Preferences
	prober  portprobe.Prober
	notify  notifications.Notify

	// called by Deinit() to reinitialise preemptive frames. may be nil
	preempt func()

	// nil if no session is running
	session *session

	enabled        bool
	isClient       bool
	clientDeferred bool

	deferredAddress string
	deferredPort    uint

	status     Status
	latestPing int

	packet *PacketInterface

	// the diagnostics of the most recent call to Init()
	diagnostics *Diagnostics
}

// NewDriver is the preferred method of initialisation for the Driver type.
// The drivers and prefs arguments may be nil. Without preferences the
// default values are used and the diagnostics file is written to the current
// working directory.
func NewDriver(engine Engine, core Core, drivers Drivers, prefs *Preferences) *Driver {
	d := &Driver{
		engine:     engine,
		core:       core,
		drivers:    drivers,
		prefs:      prefs,
		prober:     portprobe.System,
		latestPing: -1,
	}
	d.resetStatus()
	return d
}

// SetProber changes how UDP ports are probed.
func (d *Driver) SetProber(p portprobe.Prober) {
	d.prober = p
}

// SetNotify sets the receiver of session notices. May be nil.
func (d *Driver) SetNotify(n notifications.Notify) {
	d.notify = n
}

// SetPreempt sets the function called by Deinit() to reinitialise
// preemptive frames. May be nil.
func (d *Driver) SetPreempt(f func()) {
	d.preempt = f
}

// Enabled returns true if the driver has been enabled with OpEnableServer or
// OpEnableClient.
func (d *Driver) Enabled() bool {
	return d.enabled
}

// IsClient returns true if the driver has been enabled as a client.
func (d *Driver) IsClient() bool {
	return d.isClient
}

// Diagnostics returns the record of the most recent call to Init(). Returns
// nil if Init() has never been called.
func (d *Driver) Diagnostics() *Diagnostics {
	return d.diagnostics
}

// Callbacks returns the bridge functions. A core should use these callbacks
// while SetNetplayCallbacks() is in effect.
func (d *Driver) Callbacks() Callbacks {
	return Callbacks{
		State:       d.InputState,
		Frame:       d.VideoFrame,
		Sample:      d.AudioSample,
		SampleBatch: d.AudioSampleBatch,
	}
}

// the directory of the preferences file or the empty string for the current
// working directory
func (d *Driver) diagnosisDir() string {
	if d.prefs == nil || d.prefs.Path() == "" {
		return ""
	}
	return filepath.Dir(d.prefs.Path())
}

// Init starts a session. The server argument is the address of the host to
// connect to, an empty string starts the session as the host. If port is zero
// then the port preference is used.
//
// The returned error is a curated error. Regardless of success the
// diagnostics of the attempt are written to the diagnosis file.
func (d *Driver) Init(server string, port uint) error {
	diag := &Diagnostics{}
	err := d.init(server, port, diag)
	diag.dump(d.diagnosisDir())
	d.diagnostics = diag
	return err
}

func (d *Driver) init(server string, port uint, diag *Diagnostics) (rerr error) {
	wantClient := server != "" || d.isClient
	diag.RequestClient = wantClient
	diag.DriverEnabled = d.enabled

	if d.session != nil {
		logger.Error(logger.Allow, logTag, "unable to start a new session because one is already active. disconnect before hosting or joining again")
		return diag.fail(StagePreflight, "a session is already active", curated.Errorf(AlreadyActive))
	}

	if !d.enabled {
		op := OpEnableServer
		if wantClient {
			op = OpEnableClient
		}
		diag.DriverAutoEnabled = d.Control(op, nil)
		diag.DriverEnabled = d.enabled

		if !diag.DriverAutoEnabled || !diag.DriverEnabled {
			logger.Error(logger.Allow, logTag, "netplay driver is disabled")
			return diag.fail(StageEnableDriver, "failed to enable requested netplay driver", curated.Errorf(DriverDisabled))
		}
	}

	cbs, ok := d.core.DefaultCallbacks()
	if !ok {
		logger.Error(logger.Allow, logTag, "failed to configure core callbacks required for netplay")
		return diag.fail(StageCoreCallbacks, "core did not provide default callbacks", curated.Errorf(CoreCallbacksMissing, "default callbacks"))
	}
	diag.CoreCallbacksReady = true

	if !d.core.SetNetplayCallbacks() {
		logger.Error(logger.Allow, logTag, "core does not provide netplay callbacks. rollback netplay cannot be initialised")
		return diag.fail(StageNetplayCallbacks, "core did not accept netplay callbacks", curated.Errorf(CoreCallbacksMissing, "netplay callbacks"))
	}
	diag.NetplayCallbacksReady = true

	var s *session

	// unified cleanup for every failure after the netplay callbacks have
	// been installed
	defer func() {
		if rerr == nil {
			return
		}
		if s != nil {
			s.free(d.engine)
		}
		d.core.UnsetNetplayCallbacks()
	}()

	s = newSession(cbs)
	diag.StateAllocated = true

	if port > 65535 {
		logger.Warnf(logger.Allow, logTag, "port %d is not a valid UDP port. using the port preference", port)
		port = 0
	}

	if err := d.setupSession(s, uint16(port), diag); err != nil {
		return err
	}

	s.reset()
	d.resetStatus()
	d.session = s
	d.latestPing = -1
	d.clientDeferred = false

	return nil
}

// setupSession creates and starts the engine session
func (d *Driver) setupSession(s *session, port uint16, diag *Diagnostics) error {
	defer diag.capture(d.engine)

	requested := port
	if requested == 0 {
		requested = d.preferences().port()
	}
	diag.RequestedPort = requested
	diag.ResolvedPort = requested

	logger.Logf(logger.Verbose, diagTag, "preparing host session using requested UDP port %d", requested)

	// create engine session
	handle, err := d.engine.Create()
	if err != nil {
		diag.SessionCreate = Failed
		d.logCreateFailure()
		return diag.fail(StageSessionCreate, "libGekkoNet session handle creation failed", d.createError(err))
	}
	s.handle = handle
	diag.SessionCreate = Success
	logger.Log(logger.Verbose, diagTag, "created libGekkoNet session handle")

	// apply settings
	p := d.preferences()
	s.tunables = p.tunables()
	if err := s.refreshSerialization(d.core); err != nil {
		diag.ApplySettings = Failed
		logger.Error(logger.Allow, logTag, "unable to prepare serialization buffers. ensure the current core and content support save states")
		return diag.fail(StageApplySettings, "serialization buffer could not be prepared", err)
	}
	diag.SerializationReady = true
	diag.ApplySettings = Success
	logger.Log(logger.Verbose, diagTag, "applied netplay settings to session")

	// port selection
	diag.ProbeReached = true
	diag.Probe = portprobe.Resolve(d.prober, requested)
	if diag.Probe.Failed() {
		logger.Errorf(logger.Allow, logTag, "UDP port %d is already in use. close the conflicting application or configure a different port", requested)
		return diag.fail(StagePortSelection, "no verified UDP ports available within fallback window", curated.Errorf(PortUnavailable, requested))
	}

	if !diag.Probe.Verified {
		logger.Warnf(logger.Allow, logTag, "unable to verify availability of UDP port %d. continuing without a preflight check", requested)
	} else if diag.Probe.UsedFallback() {
		logger.Warnf(logger.Allow, logTag, "UDP port %d is already in use. falling back to port %d", requested, diag.Probe.Resolved)
		p.SetPort(diag.Probe.Resolved)
		logger.Logf(logger.Verbose, diagTag, "persisted fallback port %d to configuration", diag.Probe.Resolved)
	}
	diag.ResolvedPort = diag.Probe.Resolved

	// adapter
	s.adapter = d.engine.DefaultAdapter(diag.ResolvedPort)
	if s.adapter == 0 {
		diag.AdapterSetup = Failed
		logger.Errorf(logger.Allow, logTag, "unable to create the default UDP adapter on port %d. check firewall rules or choose a different port", diag.ResolvedPort)
		return diag.fail(StageAdapterInit, "default adapter was not created", curated.Errorf(AdapterUnavailable, diag.ResolvedPort))
	}
	diag.AdapterSetup = Success
	logger.Logf(logger.Verbose, diagTag, "initialised libGekkoNet UDP adapter on port %d", diag.ResolvedPort)

	// start
	d.engine.SetNetAdapter(s.handle, s.adapter)
	d.engine.Start(s.handle, gekkonet.Config{
		NumPlayers:            s.numPlayers,
		MaxSpectators:         s.maxSpectators,
		InputPredictionWindow: s.predictionWindow,
		SpectatorDelay:        s.spectatorDelay,
		InputSize:             maskSize,
		StateSize:             uint32(len(s.stateBuffer)),
		LimitedSaving:         false,
		PostSyncJoining:       true,
		DesyncDetection:       true,
	})
	diag.SessionStart = Success
	logger.Log(logger.Verbose, diagTag, "started libGekkoNet session")

	// register local actor
	s.localActor = d.engine.AddActor(s.handle, gekkonet.LocalPlayer, nil)
	if s.localActor < 0 {
		diag.LocalActor = Failed
		logger.Error(logger.Allow, logTag, "failed to register the local player with the current session")
		return diag.fail(StageRegisterActor, "local actor handle is negative", curated.Errorf(LocalActorRegistrationFailed, s.localActor))
	}
	diag.LocalActor = Success
	logger.Logf(logger.Verbose, diagTag, "registered local player handle %d", s.localActor)

	return nil
}

// preferences returns the driver's preferences or a set of default
// preferences that are not stored on disk
func (d *Driver) preferences() *Preferences {
	if d.prefs == nil {
		// NewPreferencesAt() only fails on duplicate keys
		d.prefs, _ = NewPreferencesAt("")
	}
	return d.prefs
}

// createError maps a failure to create a session onto an error kind
func (d *Driver) createError(err error) error {
	status := d.engine.Status()
	switch {
	case curated.Is(status.Err, gekkonet.SymbolMissing):
		return curated.Errorf(EngineSymbolMissing, err)
	case status.State == gekkonet.Failed:
		return curated.Errorf(EngineLoadFailed, err)
	}
	return curated.Errorf(SessionCreateFailed, err)
}

func (d *Driver) logCreateFailure() {
	logger.Error(logger.Allow, logTag, "failed to create a session with libGekkoNet")

	status := d.engine.Status()
	if status.ModulePath != "" {
		logger.Errorf(logger.Allow, logTag, "loaded library: %s", status.ModulePath)
	} else if status.State == gekkonet.Failed {
		logger.Error(logger.Allow, logTag, "libGekkoNet could not be located or failed to initialise")
	}
	if reason := d.engine.LastError(); reason != "" {
		logger.Errorf(logger.Allow, logTag, "library error: %s", reason)
	}
	logger.Error(logger.Allow, logTag, "ensure libGekkoNet matches this build and exports the required symbols")
}

// InitDeferred records the address of a host to connect to later. No session
// is created. Returns false if the server address is empty.
func (d *Driver) InitDeferred(server string, port uint) bool {
	if server == "" {
		return false
	}
	d.deferredAddress = server
	d.deferredPort = port
	d.clientDeferred = true
	return true
}

// Deferred returns the connection recorded by InitDeferred(). The ok value is
// false if there is no deferred connection.
func (d *Driver) Deferred() (server string, port uint, ok bool) {
	return d.deferredAddress, d.deferredPort, d.clientDeferred
}

// Deinit ends the session, if there is one, and resets the driver.
func (d *Driver) Deinit() {
	if d.session != nil {
		d.session.free(d.engine)
		d.session = nil
		d.notice(notifications.NotifyNetplayEnded)
	}

	d.enabled = false
	d.isClient = false
	d.latestPing = -1
	d.resetStatus()

	if d.preempt != nil {
		d.preempt()
	}

	d.packet = nil
	d.core.UnsetNetplayCallbacks()
}

// ReinitSerialization resizes the serialization buffer of the session.
// Returns false if there is no session or if the core cannot serialise.
func (d *Driver) ReinitSerialization() bool {
	if d.session == nil {
		return false
	}
	return d.session.refreshSerialization(d.core) == nil
}

// IsSpectating returns true if the local participant is spectating.
func (d *Driver) IsSpectating() bool {
	return d.session != nil && d.session.spectator
}

// ForceSendSavestate has no effect. The engine decides when to exchange
// state.
func (d *Driver) ForceSendSavestate() {
}

// CurrentFrame returns the frame number of the most recent advance event.
func (d *Driver) CurrentFrame() uint32 {
	if d.session == nil {
		return 0
	}
	return d.session.currentFrame
}
