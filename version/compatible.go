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

package version

import (
	"math"
	"strconv"
	"strings"
)

// MinimumPeerVersion is the oldest peer version that can join a session. It
// is version 1.9.1.0 packed by Pack().
const MinimumPeerVersion uint64 = 0x0001_0009_0001_0000

// the number of 16 bit parts that fit into the packed value
const maxParts = 4

// Pack converts a dotted-decimal version string into a single value. Each
// part occupies 16 bits, the first part in the most significant position. A
// version with fewer than four parts is padded with zeroes. Parts beyond the
// fourth are checked for validity but otherwise ignored.
//
// Returns false if the string is empty, if a part is empty or if any part
// contains something other than decimal digits.
func Pack(v string) (uint64, bool) {
	if v == "" {
		return 0, false
	}

	var packed uint64
	for i, p := range strings.Split(v, ".") {
		if p == "" {
			return 0, false
		}
		for _, r := range p {
			if r < '0' || r > '9' {
				return 0, false
			}
		}

		// out of range parts saturate before being truncated to 16 bits
		n, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			n = math.MaxUint64
		}

		if i < maxParts {
			packed |= uint64(uint16(n)) << (16 * (maxParts - 1 - i))
		}
	}

	return packed, true
}

// Compatible returns true if the version string names a version that is at
// least MinimumPeerVersion.
func Compatible(v string) bool {
	packed, ok := Pack(v)
	if !ok {
		return false
	}
	return packed >= MinimumPeerVersion
}
