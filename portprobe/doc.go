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

// Package portprobe checks whether a UDP port can be bound before a netplay
// session is asked to use it.
//
// A probe opens a datagram socket, binds it to the wildcard IPv4 address and
// the requested port, and closes it again immediately. The result has two
// parts: whether the port was available and whether the platform was able to
// perform the check at all. On platforms without a usable socket layer a
// probe always reports the port as available but unverified.
//
// Resolve() runs the initial probe and, if the port is verifiably in use,
// scans upwards for a free port. The scan is bounded by MaxFallbackAttempts
// and never wraps past port 65535.
package portprobe
