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

//go:build windows

package portprobe

import (
	"sync"

	"golang.org/x/sys/windows"

	"github.com/BrawlSys-Hosting/RetroArch-gekko/logger"
)

var wsa struct {
	once sync.Once
	err  error
}

// winsock must be initialised before the first socket is created
func startup() error {
	wsa.once.Do(func() {
		var data windows.WSAData
		wsa.err = windows.WSAStartup(uint32(0x0202), &data)
	})
	return wsa.err
}

func probe(port uint16) (bool, bool) {
	if err := startup(); err != nil {
		logger.Logf(logger.Verbose, logTag, "winsock unavailable: %v", err)
		return true, false
	}

	h, err := windows.Socket(windows.AF_INET, windows.SOCK_DGRAM, windows.IPPROTO_UDP)
	if err != nil {
		logger.Logf(logger.Verbose, logTag, "cannot create socket: %v", err)
		return true, false
	}
	defer windows.Closesocket(h)

	if err := windows.Bind(h, &windows.SockaddrInet4{Port: int(port)}); err != nil {
		logger.Logf(logger.Verbose, logTag, "cannot bind port %d: %v", port, err)
		return false, true
	}

	return true, true
}
