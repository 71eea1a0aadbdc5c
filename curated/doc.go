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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error. The pattern is what identifies the
// error and so packages declare their patterns as constants:
//
//	const PortUnavailable = "port %d unavailable"
//
//	err := curated.Errorf(PortUnavailable, 7000)
//
//	if curated.Is(err, PortUnavailable) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	e := curated.Errorf(PortUnavailable, 7000)
//	f := curated.Errorf("netplay: %v", e)
//
//	if curated.Has(f, PortUnavailable) {
//		fmt.Println("true")
//	}
//
// A call to Is(f, PortUnavailable) would fail because f has the pattern
// "netplay: %v".
//
// The Error() function normalises the chain by removing duplicate adjacent
// parts. For example, if two functions in a call stack both wrap with the
// pattern "netplay: %v" the message will read "netplay: port 7000
// unavailable" and not "netplay: netplay: port 7000 unavailable".
//
// Curated errors also implement Unwrap() so that the standard library
// errors.Is() and errors.As() functions can see wrapped uncurated errors, such
// as those from the os package.
package curated
