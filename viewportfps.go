// This file is part of viewportfps.
//
// viewportfps is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// viewportfps is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with viewportfps.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/viewportfps/curated"
	"github.com/jetsetilly/viewportfps/gui"
	"github.com/jetsetilly/viewportfps/gui/sdlimgui"
	"github.com/jetsetilly/viewportfps/harness"
	"github.com/jetsetilly/viewportfps/logger"
	"github.com/jetsetilly/viewportfps/modalflag"
	"github.com/jetsetilly/viewportfps/performance"
	"github.com/jetsetilly/viewportfps/prefs"
	"github.com/jetsetilly/viewportfps/sampler"
	"github.com/jetsetilly/viewportfps/statsview"
	"github.com/jetsetilly/viewportfps/version"
	"github.com/jetsetilly/viewportfps/viewports"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// stop the main thread's interrupt signal handling. used when the launch
	// goroutine has its own handler.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args any
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// Note that there is no Create() function because we need the freedom to
// create the GUI how we want. Instead the creator is a channel which accepts
// a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary. It MUST ONLY
	// be called as part of a larger loop from the main thread. It should
	// service all gui events that are not safe to do in sub-threads.
	Service()
}

// communication between the main() function and the launch() function. this is
// required because SDL requires window event handling (including creation) to
// occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through the
	// mainSync instance
	go launch(sync)

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	//
	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			if gui != nil {
				gui.Destroy(os.Stderr)
			}
			done = true

		case creator := <-sync.creator:
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			g, err := creator()
			if err != nil {
				// the interface value returned by creator() is not nil even
				// when the underlying pointer is
				gui = nil
				sync.creationError <- err
			} else {
				gui = g
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Stop(intChan)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if gui != nil {
				gui.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "HEADLESS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "HEADLESS":
		err = headless(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)

		// the log will have more detail about why the gui failed
		if curated.Is(err, sdlimgui.ErrorPattern) {
			logger.Tail(os.Stdout, guiErrorLogTail)
		}
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// number of log entries to show when the gui fails.
const guiErrorLogTail = 10

func setLogEcho(echo bool) {
	if echo {
		logger.SetEcho(os.Stdout, true)
	} else {
		logger.SetEcho(nil, false)
	}
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo debugging log to stdout")
	vsync := md.AddBool("vsync", false, "synchronise with the monitor refresh rate")
	fpsCap := md.AddInt("fpscap", 0, "limit frames per second (zero for no limit)")
	prefsOverride := md.AddString("prefs", "", "preferences to apply (eg. \"vsync::true; fpscap::120\")")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	profile := md.AddString("profile", "none", "run performance profiler (cpu, mem, trace, none)")
	md.AdditionalHelp("The -vsync and -fpscap flags take precedence over the same keys in -prefs.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("unexpected argument %q for %s mode", md.GetArg(0), md)
	}

	setLogEcho(*log)

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	guiPrefs, err := sdlimgui.NewPreferences()
	if err != nil {
		return err
	}

	smp := sampler.New()
	smp.SetOnSample(func(rate int) {
		logger.Logf(logger.Allow, "sampler", "%d fps", rate)
	})
	smp.Start(sampler.DefaultPeriod)
	defer smp.Stop()

	app := harness.New(smp, viewports.NewController())

	// the -prefs string is applied when the gui is created
	prefs.PushCommandLineStack(*prefsOverride)

	sync.creator <- func() (GuiCreator, error) {
		return sdlimgui.NewSdlImgui(app, guiPrefs)
	}

	var img *sdlimgui.SdlImgui
	select {
	case g := <-sync.creation:
		img = g.(*sdlimgui.SdlImgui)
	case err := <-sync.creationError:
		prefs.PopCommandLineStack()
		return err
	}

	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "prefs", "unused preferences: %s", unused)
	}

	// flags given on the command line are applied after the -prefs string
	err = applyFeatureFlags(img, md, *vsync, *fpsCap)
	if err != nil {
		return err
	}

	// interrupt ends the gui in the same way as closing the window
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)
	sync.state <- stateRequest{req: reqNoIntSig}

	return performance.RunProfiler(prf, "profile", func() error {
		for {
			select {
			case <-intChan:
				fmt.Print("\r")
				if err := img.SetFeature(gui.ReqEnd); err != nil {
					return err
				}
			case <-img.QuitRequest():
				return nil
			}
		}
	})
}

// applyFeatureFlags sends a feature request for each of the -vsync and -fpscap
// flags that were set on the command line. Flags that were not set are left
// alone so that they don't override the -prefs string.
func applyFeatureFlags(g gui.GUI, md *modalflag.Modes, vsync bool, fpsCap int) error {
	var err error
	md.Visit(func(flag string) {
		if err != nil {
			return
		}
		switch flag {
		case "vsync":
			err = g.SetFeature(gui.ReqMonitorSync, vsync)
		case "fpscap":
			err = g.SetFeature(gui.ReqFPSCap, fpsCap)
		}
	})
	return err
}

func headless(md *modalflag.Modes) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo debugging log to stdout")
	duration := md.AddDuration("duration", 5*time.Second, "length of run")
	windows := md.AddInt("windows", 0, fmt.Sprintf("number of windows (%d to %d)", viewports.MinWindows, viewports.MaxWindows))
	memvizFile := md.AddString("memviz", "", "write graph of the harness to file after the run (dot format)")
	profile := md.AddString("profile", "none", "run performance profiler (cpu, mem, trace, none)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("unexpected argument %q for %s mode", md.GetArg(0), md)
	}

	setLogEcho(*log)

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	app := harness.New(sampler.New(), viewports.NewController())

	err = performance.Check(os.Stdout, prf, app, *windows, *duration)
	if err != nil {
		return err
	}

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return fmt.Errorf("memviz: %w", err)
		}
		defer f.Close()
		memviz.Map(f, app)
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information only")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *revision {
		_, r, _ := version.Version()
		fmt.Println(r)
		return nil
	}

	fmt.Println(version.String())
	return nil
}
