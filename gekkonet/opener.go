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

package gekkonet

// opener abstracts the operating system's dynamic loader.
type opener interface {
	// open the library at path. path may be a bare filename in which case
	// the operating system's search rules apply
	open(path string) (uintptr, error)

	// find the address of the named symbol
	sym(module uintptr, name string) (uintptr, error)

	// bind the function pointed to by fptr to the symbol address
	bind(fptr any, addr uintptr) error

	// release the module
	close(module uintptr) error

	// the path of the opened module. the path that was passed to open() is
	// returned if the operating system cannot say
	path(module uintptr, opened string) string

	// classify an error returned by open(). exists says whether a file is
	// present at the path that was attempted
	hint(err error, exists bool) Hint
}
