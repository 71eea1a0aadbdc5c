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

package test

import (
	"strings"
	"sync"
)

// CaptureWriter is an io.Writer that records everything written to it. It is
// safe to write to from more than one goroutine.
type CaptureWriter struct {
	crit   sync.Mutex
	buffer strings.Builder
}

// Write implements the io.Writer interface.
func (w *CaptureWriter) Write(p []byte) (n int, err error) {
	w.crit.Lock()
	defer w.crit.Unlock()
	return w.buffer.Write(p)
}

// String returns everything written since creation or the last Reset().
func (w *CaptureWriter) String() string {
	w.crit.Lock()
	defer w.crit.Unlock()
	return w.buffer.String()
}

// Lines returns the captured output split into lines. The trailing empty
// line, if any, is not included.
func (w *CaptureWriter) Lines() []string {
	s := strings.TrimSuffix(w.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Contains returns true if the captured output contains the substring.
func (w *CaptureWriter) Contains(s string) bool {
	return strings.Contains(w.String(), s)
}

// Reset clears the captured output.
func (w *CaptureWriter) Reset() {
	w.crit.Lock()
	defer w.crit.Unlock()
	w.buffer.Reset()
}
