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

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/bradleyjkemp/memviz"
	"golang.org/x/term"

	"github.com/BrawlSys-Hosting/RetroArch-gekko/democore"
	"github.com/BrawlSys-Hosting/RetroArch-gekko/gekkonet"
	"github.com/BrawlSys-Hosting/RetroArch-gekko/logger"
	"github.com/BrawlSys-Hosting/RetroArch-gekko/modalflag"
	"github.com/BrawlSys-Hosting/RetroArch-gekko/netplay"
	"github.com/BrawlSys-Hosting/RetroArch-gekko/portprobe"
	"github.com/BrawlSys-Hosting/RetroArch-gekko/prefs"
	"github.com/BrawlSys-Hosting/RetroArch-gekko/statsview"
	"github.com/BrawlSys-Hosting/RetroArch-gekko/version"
	"github.com/BrawlSys-Hosting/RetroArch-gekko/wavwriter"
)

// the run loop is paced to this rate
const frameRate = 60

// how often the session status is printed during a session
const statusInterval = frameRate * 5

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("HOST", "JOIN", "PROBE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "HOST":
		err = host(md)

	case "JOIN":
		err = join(md)

	case "PROBE":
		err = probe(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		os.Exit(20)
	}
}

// setEcho decides where the log is echoed to. the echo is colourised if
// stdout is a terminal
func setEcho(echo bool) {
	if !echo {
		logger.SetEcho(nil, false)
		return
	}
	var w io.Writer = os.Stdout
	if term.IsTerminal(int(os.Stdout.Fd())) {
		w = logger.NewColorizer(os.Stdout)
	}
	logger.SetEcho(w, true)
}

// loadPreferences from the named file or from the default file if the name
// is empty
func loadPreferences(file string) (*netplay.Preferences, error) {
	var p *netplay.Preferences
	var err error
	if file == "" {
		p, err = netplay.NewPreferences()
	} else {
		p, err = netplay.NewPreferencesAt(file)
	}
	if err != nil {
		return nil, err
	}
	if err := p.Load(); err != nil {
		return nil, err
	}
	return p, nil
}

func host(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("Preferences can be overridden for the session with the -override flag.\nFor example: -override \"netplay_prediction_window::4; input_max_users::3\"")

	port := md.AddUint("port", 0, "UDP port. zero uses the netplay_port preference")
	frames := md.AddInt("frames", 600, "number of frames to run. zero runs until interrupted")
	prefsFile := md.AddString("prefs", "", "preferences file. empty uses the default location")
	override := md.AddString("override", "", "preference overrides for this session")
	wav := md.AddString("wav", "", "record audio to wav file")
	locale := md.AddString("locale", "", "language of status messages")
	log := md.AddBool("log", false, "echo log to stdout")
	verbose := md.AddBool("verbose", false, "verbose logging")
	viz := md.AddString("memviz", "", "write graph of session diagnostics to file (graphviz format)")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	logger.SetVerbose(*verbose)
	setEcho(*log)

	if *locale != "" {
		if err := netplay.SetLocale(*locale); err != nil {
			return err
		}
	}

	if *override != "" {
		prefs.PushCommandLineStack(*override)
		defer prefs.PopCommandLineStack()
	}

	pref, err := loadPreferences(*prefsFile)
	if err != nil {
		return err
	}

	if *stats {
		if !statsview.Available() {
			return errors.New("statsview not available in this build")
		}
		statsview.Launch(os.Stdout)
		defer statsview.Stop()
	}

	drivers := &hostDrivers{}
	if *wav != "" {
		drivers.audio, err = wavwriter.New(*wav, democore.SampleRate)
		if err != nil {
			return err
		}
		defer func() {
			if err := drivers.audio.Close(); err != nil {
				fmt.Printf("* error writing wav: %v\n", err)
			}
		}()
	}

	lib := gekkonet.New()
	defer lib.Close()

	pilot := &autopilot{}
	core := democore.New(pilot.callbacks(drivers))

	drv := netplay.NewDriver(lib, core, drivers, pref)
	drv.SetNotify(&noticePrinter{out: os.Stdout})
	core.SetBridge(drv.Callbacks())

	err = drv.Init("", *port)

	if diag := drv.Diagnostics(); diag != nil {
		if diag.Written {
			fmt.Printf("* diagnostics written to %s\n", diag.Path)
		}
		if *viz != "" {
			if err := writeMemviz(*viz, diag); err != nil {
				fmt.Printf("* error writing memviz: %v\n", err)
			}
		}
	}

	if err != nil {
		return err
	}
	defer drv.Deinit()

	fmt.Printf("* hosting on UDP port %d\n", drv.Diagnostics().ResolvedPort)

	n := run(drv, core, pilot, *frames)

	var st netplay.Status
	drv.Control(netplay.OpGetSessionStatus, &st)
	fmt.Printf("* %d frames: %s (ping %d)\n", n, st, st.Ping)

	return nil
}

// run the session until the number of frames has been reached or until the
// interrupt signal. a frames value of zero means no limit. returns the number
// of frames run
func run(drv *netplay.Driver, core *democore.Core, pilot *autopilot, frames int) int {
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	tick := time.NewTicker(time.Second / frameRate)
	defer tick.Stop()

	var n int
	for frames == 0 || n < frames {
		select {
		case <-intChan:
			fmt.Println("\r")
			return n
		case <-tick.C:
		}

		if !drv.Control(netplay.OpPreFrame, nil) {
			return n
		}
		core.RunFrame()
		drv.Control(netplay.OpPostFrame, nil)
		pilot.step()
		n++

		if n%statusInterval == 0 {
			var st netplay.Status
			drv.Control(netplay.OpGetSessionStatus, &st)
			fmt.Printf("* frame %d: %s (ping %d)\n", drv.CurrentFrame(), st, st.Ping)
		}
	}

	return n
}

func writeMemviz(file string, diag *netplay.Diagnostics) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	memviz.Map(f, diag)
	return f.Close()
}

func join(md *modalflag.Modes) error {
	md.NewMode()

	prefsFile := md.AddString("prefs", "", "preferences file. empty uses the default location")
	peer := md.AddString("peer", "", "version announced by the host")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("hostname required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *peer != "" && !version.Compatible(*peer) {
		return fmt.Errorf("host version %s is too old to join", *peer)
	}

	pref, err := loadPreferences(*prefsFile)
	if err != nil {
		return err
	}

	hn := netplay.Hostname{Port: uint(pref.Port.Get().(int))}
	if !hn.Decode(md.GetArg(0)) {
		return fmt.Errorf("hostname required for %s mode", md)
	}

	drv := netplay.NewDriver(gekkonet.New(), democore.New(netplay.Callbacks{}), nil, pref)
	if !drv.InitDeferred(hn.Address, hn.Port) {
		return fmt.Errorf("no address in hostname %s", md.GetArg(0))
	}

	addr, port, _ := drv.Deferred()
	fmt.Printf("* deferred connection to %s on UDP port %d\n", addr, port)
	if hn.Session != "" {
		fmt.Printf("* session: %s\n", hn.Session)
	}

	return nil
}

func probe(md *modalflag.Modes) error {
	md.NewMode()

	port := md.AddUint("port", netplay.DefaultPort, "UDP port to probe")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *port == 0 || *port > 65535 {
		return fmt.Errorf("port %d is not a valid UDP port", *port)
	}

	scan := portprobe.Resolve(portprobe.System, uint16(*port))
	switch {
	case !scan.Supported:
		fmt.Println("* port probing is not supported on this platform")
	case scan.Failed():
		return fmt.Errorf("no UDP port available from %d (%d fallback attempts)", scan.Requested, scan.FallbackAttempts)
	case !scan.Verified:
		fmt.Printf("* UDP port %d could not be verified\n", scan.Resolved)
	case scan.UsedFallback():
		fmt.Printf("* UDP port %d in use. port %d is available\n", scan.Requested, scan.Resolved)
	default:
		fmt.Printf("* UDP port %d is available\n", scan.Resolved)
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		v, r, _ := version.Version()
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, v, r)

		lib := gekkonet.New()
		defer lib.Close()
		lib.EnsureLoaded()
		st := lib.Status()
		fmt.Printf("libGekkoNet: %s", st.State)
		if st.ModulePath != "" {
			fmt.Printf(" (%s)", st.ModulePath)
		}
		fmt.Println()
		if st.Hint != gekkonet.HintNone && len(st.Attempted) > 0 {
			fmt.Println(st.Hint.Advice(st.Attempted[0]))
		}

	case 1:
		v := md.GetArg(0)
		if _, ok := version.Pack(v); !ok {
			return fmt.Errorf("%s is not a version string", v)
		}
		if version.Compatible(v) {
			fmt.Printf("* %s is compatible\n", v)
		} else {
			fmt.Printf("* %s is too old\n", v)
		}

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}
