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

// Package test contains helper functions for the package level tests
// throughout the module.
//
// The Expect*() functions report a failure and continue. The Demand*()
// functions stop the test immediately on failure. All functions accept an
// optional list of tags which are prepended to the failure message, useful
// when a test is iterating over a table of cases.
//
// The CaptureWriter type is an io.Writer that can be safely shared between
// goroutines and inspected after the fact.
package test
