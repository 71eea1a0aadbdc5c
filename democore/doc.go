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

// Package democore is a small deterministic core used to exercise the
// netplay driver without a real emulator. Two players move a block around a
// tiny playfield and the core produces a video frame and a tone for every
// frame it runs.
//
// The state of the core is entirely contained in a fixed size structure that
// is serialised with encoding/binary. Two cores that are given the same
// inputs from the same starting state will always produce the same state.
package democore
