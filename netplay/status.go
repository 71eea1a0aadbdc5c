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
	"fmt"
	"strconv"
	"sync/atomic"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/BrawlSys-Hosting/RetroArch-gekko/curated"
	"github.com/BrawlSys-Hosting/RetroArch-gekko/logger"
)

// Status is a snapshot of the session status for display.
type Status struct {
	Message string

	// progress of the player synchronisation. both zero when no
	// synchronisation is in progress
	SyncCurrent uint
	SyncTotal   uint

	// round trip time of the local player in engine units. -1 when
	// unavailable
	Ping    int
	AvgPing float32
	Jitter  float32
}

func (s Status) String() string {
	if s.SyncTotal > 0 {
		return fmt.Sprintf("%s [%d/%d]", s.Message, s.SyncCurrent, s.SyncTotal)
	}
	return s.Message
}

// message keys. the English text is also the key in the catalog. numbers
// are passed to the printer as strings, otherwise the printer would group the
// digits of large frame numbers
const (
	msgPlaying          = "Playing"
	msgSpectating       = "Spectating"
	msgNotAvailable     = "N/A"
	msgSyncing          = "Syncing players (%s/%s)"
	msgPeerConnected    = "Peer connected (handle %s)"
	msgPeerDisconnected = "Peer disconnected (handle %s)"
	msgDesync           = "Desync detected (frame %s)"
)

// UnsupportedLocale is returned by SetLocale().
const UnsupportedLocale = "netplay: unsupported locale (%s)"

// the first locale is the default
var locales = []language.Tag{
	language.MustParse("en-US"),
	language.MustParse("de-DE"),
}

var translations = map[string]map[string]string{
	"en-US": {
		msgPlaying:          "Playing",
		msgSpectating:       "Spectating",
		msgNotAvailable:     "N/A",
		msgSyncing:          "Syncing players (%s/%s)",
		msgPeerConnected:    "Peer connected (handle %s)",
		msgPeerDisconnected: "Peer disconnected (handle %s)",
		msgDesync:           "Desync detected (frame %s)",
	},
	"de-DE": {
		msgPlaying:          "Spielt",
		msgSpectating:       "Zuschauer",
		msgNotAvailable:     "N/V",
		msgSyncing:          "Spieler werden synchronisiert (%s/%s)",
		msgPeerConnected:    "Gegenstelle verbunden (Handle %s)",
		msgPeerDisconnected: "Gegenstelle getrennt (Handle %s)",
		msgDesync:           "Desynchronisation erkannt (Frame %s)",
	},
}

var printer atomic.Pointer[message.Printer]

func init() {
	for locale, msgs := range translations {
		tag := language.MustParse(locale)
		for k, v := range msgs {
			if err := message.SetString(tag, k, v); err != nil {
				logger.Warnf(logger.Allow, logTag, "cannot add %s translation of %q: %v", locale, k, err)
			}
		}
	}
	printer.Store(message.NewPrinter(locales[0]))
}

// SetLocale selects the language of status messages. The locale is a BCP 47
// tag. Returns an error if no supported language matches.
func SetLocale(locale string) error {
	tag, err := language.Parse(locale)
	if err != nil {
		return curated.Errorf(UnsupportedLocale, locale)
	}

	_, idx, conf := language.NewMatcher(locales).Match(tag)
	if conf == language.No {
		return curated.Errorf(UnsupportedLocale, locale)
	}

	printer.Store(message.NewPrinter(locales[idx]))
	return nil
}

func localise(key string, args ...any) string {
	return printer.Load().Sprintf(key, args...)
}

// number formats an integer for use as an argument to localise()
func number[T ~int32 | ~uint8 | ~uint](v T) string {
	return strconv.FormatInt(int64(v), 10)
}

// setStatus sets the status message and the synchronisation counters
func (d *Driver) setStatus(msg string, current uint, total uint) {
	d.status.Message = msg
	d.status.SyncCurrent = current
	d.status.SyncTotal = total
}

// resetStatus clears the status to the not available message
func (d *Driver) resetStatus() {
	d.status = Status{}
	d.setStatus(localise(msgNotAvailable), 0, 0)
}
