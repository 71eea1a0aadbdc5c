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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BrawlSys-Hosting/RetroArch-gekko/gekkonet"
	"github.com/BrawlSys-Hosting/RetroArch-gekko/logger"
	"github.com/BrawlSys-Hosting/RetroArch-gekko/portprobe"
)

const diagTag = "gekkonet/diag"

// DiagnosisFile is the name of the file the diagnostics are written to.
const DiagnosisFile = "diagnosis.text"

// StageResult is the outcome of an orchestration stage.
type StageResult int

// List of valid StageResult values.
const (
	NotReached StageResult = iota
	Success
	Failed
)

func (r StageResult) String() string {
	switch r {
	case Success:
		return "success"
	case Failed:
		return "failed"
	}
	return "not reached"
}

// Diagnostics records the progress of a call to Init().
type Diagnostics struct {
	RequestClient         bool
	DriverEnabled         bool
	DriverAutoEnabled     bool
	StateAllocated        bool
	CoreCallbacksReady    bool
	NetplayCallbacksReady bool
	SerializationReady    bool

	// the port requested and the port the session was started on
	RequestedPort uint16
	ResolvedPort  uint16

	// the result of the port probe. only meaningful if ProbeReached is true
	ProbeReached bool
	Probe        portprobe.Scan

	SessionCreate StageResult
	ApplySettings StageResult
	AdapterSetup  StageResult
	SessionStart  StageResult
	LocalActor    StageResult

	// snapshot of the loader taken after the last engine call
	Loader    gekkonet.Status
	LastError string

	// the first stage that did not complete. empty on success
	FailureStage  string
	FailureReason string

	// the file the diagnostics were written to
	Path    string
	Written bool
}

// fail records the failure and returns the error unchanged
func (diag *Diagnostics) fail(stage string, reason string, err error) error {
	if diag.FailureStage == "" {
		diag.FailureStage = stage
		diag.FailureReason = reason
	}
	return err
}

// capture the state of the loader
func (diag *Diagnostics) capture(e Engine) {
	diag.Loader = e.Status()
	diag.LastError = e.LastError()
}

// LoaderDescription describes the state of the loader.
func (diag *Diagnostics) LoaderDescription() string {
	return diag.Loader.State.String()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func (diag *Diagnostics) resolvedPort() string {
	if diag.Probe.UsedFallback() {
		return fmt.Sprintf("%d (fallback)", diag.ResolvedPort)
	}
	return fmt.Sprintf("%d", diag.ResolvedPort)
}

func (diag *Diagnostics) initialProbe() string {
	if !diag.ProbeReached {
		return NotReached.String()
	}
	s := "in use"
	if diag.Probe.InitialAvailable {
		s = "available"
	}
	if !diag.Probe.InitialVerified {
		s += " (unverified)"
	}
	return s
}

// Lines returns the diagnostics as a list of human readable lines. Each line
// is a key and value pair.
func (diag *Diagnostics) Lines() []string {
	l := make([]string, 0, 32)
	add := func(key string, value any) {
		l = append(l, fmt.Sprintf("%s: %v", key, value))
	}
	stage := func(name string, r StageResult) {
		l = append(l, fmt.Sprintf("Stage %s : %s", name, r))
	}

	mode := "server"
	if diag.RequestClient {
		mode = "client"
	}
	allocation := Failed
	if diag.StateAllocated {
		allocation = Success
	}

	add("Netplay driver mode", mode)
	add("Netplay driver enabled", yesNo(diag.DriverEnabled))
	add("Driver auto-enabled", yesNo(diag.DriverAutoEnabled))
	add("Netplay state allocation", allocation)
	add("Core callbacks ready", yesNo(diag.CoreCallbacksReady))
	add("Netplay callbacks ready", yesNo(diag.NetplayCallbacksReady))
	add("Serialization buffer prepared", yesNo(diag.SerializationReady))
	add("Requested UDP port", diag.RequestedPort)
	add("Resolved UDP port", diag.resolvedPort())
	add("Port probe supported", yesNo(diag.Probe.Supported))
	add("Initial probe result", diag.initialProbe())
	if diag.Probe.FallbackAttempted {
		result := "failed"
		if diag.Probe.FallbackSucceeded {
			result = "port selected"
		}
		add("Fallback attempts", diag.Probe.FallbackAttempts)
		add("Fallback result", result)
		add("Fallback aborted on wrap", yesNo(diag.Probe.AbortedOnWrap))
		add("Fallback aborted on unverified", yesNo(diag.Probe.AbortedOnUnverified))
	}
	stage("session create", diag.SessionCreate)
	stage("apply settings", diag.ApplySettings)
	stage("adapter setup", diag.AdapterSetup)
	stage("session start", diag.SessionStart)
	stage("local actor", diag.LocalActor)
	add("libGekkoNet dynamic loader", diag.LoaderDescription())
	add("libGekkoNet symbols resolved", yesNo(diag.Loader.SymbolsResolved))
	if diag.Loader.ModulePath != "" {
		add("libGekkoNet module path", diag.Loader.ModulePath)
	} else if len(diag.Loader.Attempted) > 0 {
		add("libGekkoNet attempted path", diag.Loader.Attempted[0])
	}
	if diag.Loader.Hint != gekkonet.HintNone {
		add("libGekkoNet hint", diag.Loader.Hint.Advice(diag.attemptedPath()))
	}
	if diag.FailureStage != "" {
		add("Failure stage", diag.FailureStage)
	}
	if diag.FailureReason != "" {
		add("Failure reason", diag.FailureReason)
	}
	if diag.LastError != "" {
		add("libGekkoNet reported", diag.LastError)
	}

	return l
}

func (diag *Diagnostics) attemptedPath() string {
	if len(diag.Loader.Attempted) > 0 {
		return diag.Loader.Attempted[0]
	}
	return ""
}

func (diag *Diagnostics) String() string {
	return strings.Join(diag.Lines(), "\n")
}

// write the diagnostics to the diagnosis file in the directory
func (diag *Diagnostics) write(dir string) error {
	diag.Written = false
	diag.Path = DiagnosisFile
	if dir != "" {
		diag.Path = filepath.Join(dir, DiagnosisFile)
	}

	s := strings.Builder{}
	s.WriteString("RetroArch-gekko host diagnostics\n")
	s.WriteString("--------------------------------\n")
	for _, l := range diag.Lines() {
		s.WriteString(l)
		s.WriteString("\n")
	}

	if err := os.WriteFile(diag.Path, []byte(s.String()), 0o644); err != nil {
		return err
	}
	diag.Written = true

	return nil
}

// dump logs the diagnostics if verbose logging is enabled and writes the
// diagnostics file
func (diag *Diagnostics) dump(dir string) {
	if logger.IsVerbose() {
		logger.Log(logger.Verbose, diagTag, "----- Host Session Diagnostics -----")
		for _, l := range diag.Lines() {
			logger.Log(logger.Verbose, diagTag, "    "+l)
		}
		logger.Log(logger.Verbose, diagTag, "------------------------------------")
	}

	if err := diag.write(dir); err != nil {
		logger.Warnf(logger.Allow, diagTag, "failed to write diagnostics to %s: %v", diag.Path, err)
		return
	}
	logger.Logf(logger.Verbose, diagTag, "diagnostics written to %s", diag.Path)
}
