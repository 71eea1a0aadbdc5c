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

// Package netplay couples the run loop of a deterministic emulator core to
// the GekkoNet rollback engine.
//
// A Driver owns at most one session. The host run loop calls Control() with
// OpPreFrame before the core runs a frame and OpPostFrame afterwards. During
// those calls the driver collects the local input, drains the engine's event
// queues and forwards save, load and advance instructions to the core. Input
// queries made by the core while running a frame are answered from the most
// recent authoritative input received from the engine, rather than from the
// local input hardware.
//
// Starting a session is done with Init(). Every stage of the startup is
// recorded in a Diagnostics record which is logged (when verbose logging is
// enabled) and written to the diagnosis.text file in the directory of the
// preferences file.
//
// The Driver is not safe for concurrent use. All functions are expected to be
// called from the goroutine running the emulation.
package netplay
