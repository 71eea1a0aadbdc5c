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

//go:build !statsview

package statsview_test

import (
	"strings"
	"testing"

	"github.com/BrawlSys-Hosting/RetroArch-gekko/statsview"
	"github.com/BrawlSys-Hosting/RetroArch-gekko/test"
)

func TestUnavailable(t *testing.T) {
	test.ExpectFailure(t, statsview.Available())
	test.ExpectEquality(t, statsview.Address, "localhost:12600")

	w := &strings.Builder{}
	statsview.Launch(w)
	statsview.Stop()
	test.ExpectEquality(t, w.String(), "")
}
