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

package logger

import (
	"io"
	"strings"
)

const (
	penNormal = "\033[0m"
	penYellow = "\033[33m"
	penRed    = "\033[31m"
)

// Colorizer applies basic coloring rules to logging output. Warnings are
// printed in yellow and errors in red.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (n int, err error) {
	s := string(p)

	var pen string
	switch {
	case strings.Contains(s, ": error: "):
		pen = penRed
	case strings.Contains(s, ": warning: "):
		pen = penYellow
	}

	if pen == "" {
		return c.out.Write(p)
	}

	_, err = io.WriteString(c.out, pen)
	if err != nil {
		return 0, err
	}
	defer func() {
		_, _ = io.WriteString(c.out, penNormal)
	}()

	return c.out.Write(p)
}
