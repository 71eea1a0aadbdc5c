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

package netplay

import (
	"errors"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/BrawlSys-Hosting/RetroArch-gekko/logger"
	"github.com/BrawlSys-Hosting/RetroArch-gekko/paths"
	"github.com/BrawlSys-Hosting/RetroArch-gekko/prefs"
)

// Default preference values.
const (
	DefaultPort             = 55435
	DefaultDesyncHandling   = "auto"
	DefaultMaxUsers         = 2
	DefaultPredictionWindow = 8
	DefaultLocalDelay       = 0
	DefaultSpectatorLimit   = 0
)

// Preferences for netplay sessions.
type Preferences struct {
	dsk *prefs.Disk

	Port             prefs.Int
	AllowPausing     prefs.Bool
	DesyncHandling   prefs.String
	MaxUsers         prefs.Int
	PredictionWindow prefs.Int
	LocalDelay       prefs.Int
	SpectatorLimit   prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// environment overrides. a nil field means the variable is not set
type envOverrides struct {
	Port             *uint16 `env:"GEKKO_NETPLAY_PORT"`
	AllowPausing     *bool   `env:"GEKKO_NETPLAY_ALLOW_PAUSING"`
	DesyncHandling   *string `env:"GEKKO_NETPLAY_DESYNC_HANDLING"`
	MaxUsers         *uint   `env:"GEKKO_INPUT_MAX_USERS"`
	PredictionWindow *uint   `env:"GEKKO_NETPLAY_PREDICTION_WINDOW"`
	LocalDelay       *uint   `env:"GEKKO_NETPLAY_LOCAL_DELAY"`
	SpectatorLimit   *uint   `env:"GEKKO_NETPLAY_SPECTATOR_LIMIT"`
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The preferences are stored in the default preferences
// file.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesAt(pth)
}

// NewPreferencesAt creates preferences that are stored in the named file.
// Values are set to their defaults. Use Load() to read the values from disk.
func NewPreferencesAt(path string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	err = errors.Join(
		p.dsk.Add("netplay_port", &p.Port),
		p.dsk.Add("netplay_allow_pausing", &p.AllowPausing),
		p.dsk.Add("netplay_desync_handling", &p.DesyncHandling),
		p.dsk.Add("input_max_users", &p.MaxUsers),
		p.dsk.Add("netplay_prediction_window", &p.PredictionWindow),
		p.dsk.Add("netplay_local_delay", &p.LocalDelay),
		p.dsk.Add("netplay_spectator_limit", &p.SpectatorLimit),
	)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.Port.Set(DefaultPort)
	p.AllowPausing.Set(false)
	p.DesyncHandling.Set(DefaultDesyncHandling)
	p.MaxUsers.Set(DefaultMaxUsers)
	p.PredictionWindow.Set(DefaultPredictionWindow)
	p.LocalDelay.Set(DefaultLocalDelay)
	p.SpectatorLimit.Set(DefaultSpectatorLimit)
}

// Path returns the path of the preferences file.
func (p *Preferences) Path() string {
	return p.dsk.Path()
}

// Load preferences from disk. Environment variables take precedence over
// the values on disk. A missing preferences file is created.
func (p *Preferences) Load() error {
	if err := p.dsk.Load(true); err != nil {
		return err
	}
	return p.applyEnv()
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

func (p *Preferences) applyEnv() error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return err
	}

	set := func(key string, pref interface{ Set(prefs.Value) error }, v prefs.Value) {
		if err := pref.Set(v); err != nil {
			logger.Warnf(logger.Allow, logTag, "cannot apply %s from the environment: %v", key, err)
		}
	}

	if o.Port != nil {
		set("netplay_port", &p.Port, *o.Port)
	}
	if o.AllowPausing != nil {
		set("netplay_allow_pausing", &p.AllowPausing, *o.AllowPausing)
	}
	if o.DesyncHandling != nil {
		set("netplay_desync_handling", &p.DesyncHandling, *o.DesyncHandling)
	}
	if o.MaxUsers != nil {
		set("input_max_users", &p.MaxUsers, *o.MaxUsers)
	}
	if o.PredictionWindow != nil {
		set("netplay_prediction_window", &p.PredictionWindow, *o.PredictionWindow)
	}
	if o.LocalDelay != nil {
		set("netplay_local_delay", &p.LocalDelay, *o.LocalDelay)
	}
	if o.SpectatorLimit != nil {
		set("netplay_spectator_limit", &p.SpectatorLimit, *o.SpectatorLimit)
	}

	return nil
}

// SetPort changes the port preference and saves the preferences. A failure
// to save is logged but is otherwise ignored.
func (p *Preferences) SetPort(port uint16) {
	if err := p.Port.Set(port); err != nil {
		logger.Warnf(logger.Allow, logTag, "cannot set port %d: %v", port, err)
	}
	if err := p.Save(); err != nil {
		logger.Warnf(logger.Allow, logTag, "cannot persist port %d: %v", port, err)
	}
}

// port returns the port preference. a value outside the range of a UDP port
// is replaced by the default port
func (p *Preferences) port() uint16 {
	v := p.Port.Get().(int)
	if v <= 0 || v > 65535 {
		logger.Warnf(logger.Allow, logTag, "netplay_port value %d is not a valid port. using %d", v, DefaultPort)
		return DefaultPort
	}
	return uint16(v)
}

// clamp integer preference to the range of a byte
func clamp(p *prefs.Int) uint8 {
	return uint8(max(0, min(p.Get().(int), 255)))
}

// tunables returns the session tunables
func (p *Preferences) tunables() tunables {
	mode := strings.TrimSpace(p.DesyncHandling.String())
	if mode == "" {
		mode = DefaultDesyncHandling
	}

	return tunables{
		numPlayers:       clamp(&p.MaxUsers),
		predictionWindow: clamp(&p.PredictionWindow),
		spectatorDelay:   clamp(&p.LocalDelay),
		maxSpectators:    clamp(&p.SpectatorLimit),
		allowPausing:     p.AllowPausing.Get().(bool),
		allowTimeskip:    strings.EqualFold(mode, "auto") || strings.EqualFold(mode, "rollback"),
	}
}
