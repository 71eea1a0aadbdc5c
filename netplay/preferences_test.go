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

package netplay_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BrawlSys-Hosting/RetroArch-gekko/logger"
	"github.com/BrawlSys-Hosting/RetroArch-gekko/netplay"
	"github.com/BrawlSys-Hosting/RetroArch-gekko/prefs"
	"github.com/BrawlSys-Hosting/RetroArch-gekko/test"
)

func TestPreferencesDefaults(t *testing.T) {
	p, err := netplay.NewPreferencesAt(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.Port.Get().(int), netplay.DefaultPort)
	test.ExpectEquality(t, p.AllowPausing.Get().(bool), false)
	test.ExpectEquality(t, p.DesyncHandling.String(), netplay.DefaultDesyncHandling)
	test.ExpectEquality(t, p.MaxUsers.Get().(int), netplay.DefaultMaxUsers)
	test.ExpectEquality(t, p.PredictionWindow.Get().(int), netplay.DefaultPredictionWindow)
	test.ExpectEquality(t, p.LocalDelay.Get().(int), netplay.DefaultLocalDelay)
	test.ExpectEquality(t, p.SpectatorLimit.Get().(int), netplay.DefaultSpectatorLimit)
}

func TestPreferencesLoadSave(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	p, err := netplay.NewPreferencesAt(pth)
	test.DemandSuccess(t, err)

	// loading creates a missing file
	test.DemandSuccess(t, p.Load())
	_, err = os.Stat(pth)
	test.ExpectSuccess(t, err)

	test.DemandSuccess(t, p.Port.Set(6000))
	test.DemandSuccess(t, p.DesyncHandling.Set("none"))
	test.DemandSuccess(t, p.Save())

	q, err := netplay.NewPreferencesAt(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.Port.Get().(int), netplay.DefaultPort)
	test.DemandSuccess(t, q.Load())
	test.ExpectEquality(t, q.Port.Get().(int), 6000)
	test.ExpectEquality(t, q.DesyncHandling.String(), "none")

	q.SetDefaults()
	test.ExpectEquality(t, q.Port.Get().(int), netplay.DefaultPort)
}

func TestPreferencesUnknownKeysPreserved(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")
	test.DemandSuccess(t, os.WriteFile(pth, []byte("video_driver :: gl\nnetplay_port :: 7000\n"), 0o600))

	p, err := netplay.NewPreferencesAt(pth)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.Load())
	test.ExpectEquality(t, p.Port.Get().(int), 7000)

	p.SetPort(7001)

	b, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(b), "video_driver :: gl"))
	test.ExpectSuccess(t, strings.Contains(string(b), "netplay_port :: 7001"))
}

func TestPreferencesEnvironment(t *testing.T) {
	t.Setenv("GEKKO_NETPLAY_PORT", "9000")
	t.Setenv("GEKKO_NETPLAY_ALLOW_PAUSING", "true")
	t.Setenv("GEKKO_NETPLAY_DESYNC_HANDLING", "none")
	t.Setenv("GEKKO_INPUT_MAX_USERS", "4")
	t.Setenv("GEKKO_NETPLAY_PREDICTION_WINDOW", "10")

	pth := filepath.Join(t.TempDir(), "preferences")
	test.DemandSuccess(t, os.WriteFile(pth, []byte("netplay_port :: 7000\ninput_max_users :: 3\nnetplay_local_delay :: 2\n"), 0o600))

	p, err := netplay.NewPreferencesAt(pth)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.Load())

	// environment takes precedence over the file
	test.ExpectEquality(t, p.Port.Get().(int), 9000)
	test.ExpectEquality(t, p.AllowPausing.Get().(bool), true)
	test.ExpectEquality(t, p.DesyncHandling.String(), "none")
	test.ExpectEquality(t, p.MaxUsers.Get().(int), 4)
	test.ExpectEquality(t, p.PredictionWindow.Get().(int), 10)

	// values not set in the environment come from the file
	test.ExpectEquality(t, p.LocalDelay.Get().(int), 2)
	test.ExpectEquality(t, p.SpectatorLimit.Get().(int), netplay.DefaultSpectatorLimit)
}

func TestPreferencesBadEnvironment(t *testing.T) {
	t.Setenv("GEKKO_NETPLAY_PORT", "not a number")

	p, err := netplay.NewPreferencesAt(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, p.Load())
}

func TestPreferencesEnvironmentRejected(t *testing.T) {
	t.Setenv("GEKKO_INPUT_MAX_USERS", "4")
	logger.Clear()

	p, err := netplay.NewPreferencesAt(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	p.MaxUsers.SetHookPost(func(_ prefs.Value) error {
		return errors.New("read only")
	})

	// a rejected value does not stop the remaining preferences from loading
	test.ExpectSuccess(t, p.Load())
	test.ExpectSuccess(t, strings.Contains(logged(),
		"netplay: warning: cannot apply input_max_users from the environment: read only"))
}

func TestInvalidPortPreference(t *testing.T) {
	f := newFixture(t)
	test.DemandSuccess(t, f.prefs.Port.Set(70000))

	test.DemandSuccess(t, f.drv.Init("", 0))
	test.DemandEquality(t, len(f.engine.adapterPorts), 1)
	test.ExpectEquality(t, f.engine.adapterPorts[0], uint16(netplay.DefaultPort))
	test.ExpectSuccess(t, strings.Contains(logged(), "netplay_port value 70000 is not a valid port"))
}

func TestInvalidPortArgument(t *testing.T) {
	f := newFixture(t)
	test.DemandSuccess(t, f.prefs.Port.Set(7500))

	// out of range port falls back to the preference
	test.DemandSuccess(t, f.drv.Init("", 70000))
	test.DemandEquality(t, len(f.engine.adapterPorts), 1)
	test.ExpectEquality(t, f.engine.adapterPorts[0], uint16(7500))
}

func TestDriverWithoutPreferences(t *testing.T) {
	f := newFixture(t)
	d := netplay.NewDriver(f.engine, f.core, f.drivers, nil)
	d.SetProber(busyProber(nil))

	// the diagnosis file goes to the working directory
	t.Chdir(t.TempDir())

	test.DemandSuccess(t, d.Init("", 0))
	test.DemandEquality(t, len(f.engine.adapterPorts), 1)
	test.ExpectEquality(t, f.engine.adapterPorts[0], uint16(netplay.DefaultPort))
	test.ExpectEquality(t, d.Diagnostics().Path, netplay.DiagnosisFile)
	test.ExpectSuccess(t, d.Diagnostics().Written)
}
