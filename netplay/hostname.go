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
	"strconv"
	"strings"
)

// Hostname is the decoded form of a netplay hostname string.
type Hostname struct {
	Address string
	Port    uint
	Session string
}

func (h Hostname) String() string {
	return strings.Join([]string{h.Address, strconv.FormatUint(uint64(h.Port), 10), h.Session}, "|")
}

// Decode a hostname of the form "address|port|session". Only the address is
// required. A field of the Hostname is changed only if the corresponding
// component is present and valid. The port must be in the range 1 to 65535.
//
// Returns false if the string is empty.
func (h *Hostname) Decode(s string) bool {
	if s == "" {
		return false
	}

	parts := strings.Split(s, "|")

	if parts[0] != "" {
		h.Address = parts[0]
	}

	if len(parts) >= 2 && parts[1] != "" {
		if p, ok := leadingNumber(parts[1]); ok && p > 0 && p <= 65535 {
			h.Port = uint(p)
		}
	}

	if len(parts) >= 3 && parts[2] != "" {
		h.Session = parts[2]
	}

	return true
}

// leadingNumber parses the decimal digits at the start of the string,
// ignoring leading white space
func leadingNumber(s string) (uint64, bool) {
	s = strings.TrimLeft(s, " \t")
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	if n == 0 {
		return 0, false
	}
	v, err := strconv.ParseUint(s[:n], 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
