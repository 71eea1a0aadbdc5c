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

package portprobe

import (
	"github.com/BrawlSys-Hosting/RetroArch-gekko/logger"
)

const logTag = "portprobe"

// MaxFallbackAttempts is the maximum number of ports visited by the fallback
// scan. The initial port is not counted.
const MaxFallbackAttempts = 16

// Prober implementations check a single port.
type Prober interface {
	Probe(port uint16) (available bool, verified bool)
}

// ProberFunc allows an ordinary function to be used as a Prober.
type ProberFunc func(port uint16) (bool, bool)

// Probe implements the Prober interface.
func (f ProberFunc) Probe(port uint16) (bool, bool) {
	return f(port)
}

// System is the Prober that uses the operating system's socket layer.
var System Prober = ProberFunc(probe)

// Probe the port using the operating system's socket layer. The verified
// result is true if a bind was actually attempted.
func Probe(port uint16) (available bool, verified bool) {
	return probe(port)
}

// Scan is the record of a call to Resolve().
type Scan struct {
	Requested uint16
	Resolved  uint16

	InitialAvailable bool
	InitialVerified  bool

	// true if any probe was verified
	Supported bool

	// the fallback scan is only attempted if the initial port is verifiably
	// in use
	FallbackAttempted   bool
	FallbackAttempts    int
	FallbackSucceeded   bool
	AbortedOnWrap       bool
	AbortedOnUnverified bool

	// outcome of the scan as a whole. if Verified is false then Available
	// has not been checked and the caller should continue without a preflight
	// check
	Available bool
	Verified  bool
}

// Failed returns true if no verified port could be found. A scan that could
// not verify any port has not failed.
func (s Scan) Failed() bool {
	return !s.Available && s.Verified
}

// UsedFallback returns true if the resolved port differs from the requested
// port because of a successful fallback scan.
func (s Scan) UsedFallback() bool {
	return s.FallbackSucceeded && s.Requested != s.Resolved
}

// Resolve probes the requested port and runs the fallback scan if the port
// is verifiably in use.
func Resolve(p Prober, requested uint16) Scan {
	s := Scan{
		Requested: requested,
		Resolved:  requested,
	}

	logger.Logf(logger.Verbose, logTag, "probing UDP port %d for availability", requested)

	s.Available, s.Verified = p.Probe(requested)
	s.InitialAvailable = s.Available
	s.InitialVerified = s.Verified
	s.Supported = s.Verified

	logger.Logf(logger.Verbose, logTag, "probe result for port %d: %s (verified=%s)",
		requested, availability(s.Available), yesNo(s.Verified))

	if s.Available || !s.Verified {
		return s
	}

	s.FallbackAttempted = true
	logger.Logf(logger.Verbose, logTag, "initial port %d unavailable. scanning up to %d fallback ports",
		requested, MaxFallbackAttempts)

	candidate := requested
	for i := range MaxFallbackAttempts {
		candidate++
		if candidate == 0 {
			s.AbortedOnWrap = true
			logger.Log(logger.Verbose, logTag, "stopping fallback scan after wrapping past port 65535")
			break
		}

		s.FallbackAttempts = i + 1
		logger.Logf(logger.Verbose, logTag, "probing fallback port %d (attempt %d of %d)",
			candidate, i+1, MaxFallbackAttempts)

		available, verified := p.Probe(candidate)
		if available && verified {
			s.Resolved = candidate
			s.Available = true
			s.FallbackSucceeded = true
			s.Supported = true
			logger.Logf(logger.Verbose, logTag, "selected fallback port %d", candidate)
			break
		}

		if !verified {
			s.Verified = false
			s.AbortedOnUnverified = true
			logger.Logf(logger.Verbose, logTag, "aborting fallback scan because candidate port %d could not be verified", candidate)
			break
		}
	}

	return s
}

func availability(available bool) string {
	if available {
		return "available"
	}
	return "in use"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
