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

//go:build statsview

package statsview

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

const url = "/debug/statsview"

// sampling interval of the viewer. netplay sessions are long so the default
// interval produces too many points
const interval = 2 * time.Second

var mgr struct {
	crit sync.Mutex
	view *statsview.ViewManager
}

// Launch a new goroutine running the statsview. Calling Launch() when a
// viewer is already running does nothing.
func Launch(output io.Writer) {
	mgr.crit.Lock()
	defer mgr.crit.Unlock()

	if mgr.view != nil {
		return
	}

	viewer.SetConfiguration(viewer.WithAddr(Address), viewer.WithInterval(int(interval.Milliseconds())))
	mgr.view = statsview.New()
	go mgr.view.Start()

	fmt.Fprintf(output, "stats server available at %s%s\n", Address, url)
}

// Stop the statsview server if it is running.
func Stop() {
	mgr.crit.Lock()
	defer mgr.crit.Unlock()

	if mgr.view == nil {
		return
	}
	mgr.view.Stop()
	mgr.view = nil
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
