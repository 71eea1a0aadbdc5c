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

// Package prefs facilitates the storage of preferential values in the
// application. The netplay layer uses it to remember the port, the role
// specific options and the other user facing settings between runs.
//
// The Disk type is the main point of contact. Preference values are added to
// a Disk instance with Add() under a key. Keys are namespaced with a period,
// for example "netplay.port".
//
//	dsk, err := prefs.NewDisk(pth)
//	var port prefs.Int
//	err = dsk.Add("netplay.port", &port)
//	err = dsk.Load(true)
//
// The file written by Save() is a plain text file. Each line is a key and a
// value separated by " :: ". Entries in the file that are not added to the
// Disk instance are preserved when the file is saved. This means that more
// than one Disk instance can share the same file.
//
// Values can also be set on the command line by pushing a prefs string onto
// the command line stack with PushCommandLineStack(). A prefs string is a list
// of key/value pairs separated by semi-colons:
//
//	netplay.port::7000; netplay.allowpausing::true
//
// When a key in the top group of the stack is added to a Disk instance the
// value is applied immediately and overrides whatever is in the prefs file.
package prefs
