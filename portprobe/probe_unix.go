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

//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package portprobe

import (
	"golang.org/x/sys/unix"

	"github.com/BrawlSys-Hosting/RetroArch-gekko/logger"
)

func probe(port uint16) (bool, bool) {
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_DGRAM, unix.IPPROTO_UDP)
	if err != nil {
		logger.Logf(logger.Verbose, logTag, "cannot create socket: %v", err)
		return true, false
	}
	defer unix.Close(fd)

	if err := unix.Bind(fd, &unix.SockaddrInet4{Port: int(port)}); err != nil {
		logger.Logf(logger.Verbose, logTag, "cannot bind port %d: %v", port, err)
		return false, true
	}

	return true, true
}
