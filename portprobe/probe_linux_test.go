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

//go:build linux

package portprobe_test

import (
	"net"
	"testing"

	"github.com/BrawlSys-Hosting/RetroArch-gekko/portprobe"
	"github.com/BrawlSys-Hosting/RetroArch-gekko/test"
)

func TestSystemProbe(t *testing.T) {
	conn, err := net.ListenPacket("udp4", "0.0.0.0:0")
	if err != nil {
		t.Skipf("no UDP socket available: %v", err)
	}

	port := uint16(conn.LocalAddr().(*net.UDPAddr).Port)

	available, verified := portprobe.Probe(port)
	test.ExpectSuccess(t, verified)
	test.ExpectFailure(t, available)

	// the fallback scan finds a port close to the busy one
	s := portprobe.Resolve(portprobe.System, port)
	if s.FallbackSucceeded {
		test.ExpectInequality(t, s.Resolved, port)
	}

	test.DemandSuccess(t, conn.Close())

	available, verified = portprobe.Probe(port)
	test.ExpectSuccess(t, verified)
	test.ExpectSuccess(t, available)
}
