// This file is part of Hode.
//
// Hode is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Hode is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Hode.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/hode-port/hode/audio"
	"github.com/hode-port/hode/demo"
	"github.com/hode-port/hode/digest"
	"github.com/hode-port/hode/gui/headless"
	"github.com/hode-port/hode/gui/sdl"
	"github.com/hode-port/hode/logger"
	"github.com/hode-port/hode/memdump"
	"github.com/hode-port/hode/modalflag"
	"github.com/hode-port/hode/paths"
	"github.com/hode-port/hode/performance"
	"github.com/hode-port/hode/prefs"
	"github.com/hode-port/hode/soundload"
	"github.com/hode-port/hode/statsview"
	"github.com/hode-port/hode/sysprefs"
	"github.com/hode-port/hode/system"
	"github.com/hode-port/hode/version"
	"github.com/hode-port/hode/wavwriter"
)

// #mainthread
func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the arguments and runs the selected mode. the return value
// is the exit code. must be called from the main thread because the SDL
// backend requires it.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "VERSION":
		v, r, _ := version.Version()
		fmt.Fprintf(output, "%s %s (%s)\n", version.ApplicationName, v, r)
		return 0

	case "PERFORMANCE":
		return perform(md, output)
	}

	return run(md, output)
}

func perform(md *modalflag.Modes, output io.Writer) int {
	md.NewMode()
	profile := md.AddString("profile", "none", "profile types to create: cpu, mem, all, none")
	duration := md.AddDuration("duration", 5*time.Second, "duration of performance check")
	scaler := md.AddString("scaler", "scanlines", "scaler to use")
	multiplier := md.AddInt("multiplier", 3, "display multiplier")
	widescreen := md.AddBool("widescreen", true, "include widescreen backdrop")

	switch p, err := md.Parse(); p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* %v\n", err)
		return 10
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		fmt.Fprintf(output, "* %v\n", err)
		return 10
	}

	err = performance.Check(output, prf, performance.CheckSettings{
		Width:      demo.Width,
		Height:     demo.Height,
		Scaler:     *scaler,
		Multiplier: *multiplier,
		Widescreen: *widescreen,
		Uncapped:   true,
		FPS:        1000 / sysprefs.DefaultFrameDuration,
		Duration:   *duration,
	})
	if err != nil {
		fmt.Fprintf(output, "* %v\n", err)
		return 20
	}

	return 0
}

func run(md *modalflag.Modes, output io.Writer) int {
	md.NewMode()
	md.AdditionalHelp("an optional WAV or MP3 file can be given as an argument. it will be looped as background audio")
	useHeadless := md.AddBool("headless", false, "run without a window. audio is discarded")
	frames := md.AddInt("frames", 0, "number of frames to run for (0 = until quit)")
	echo := md.AddBool("log", false, "echo log to stdout")
	stats := md.AddBool("statsview", false, "launch runtime statistics server")
	memviz := md.AddString("memviz", "", "write graph of player input state to file on exit")
	wav := md.AddString("wav", "", "capture audio to WAV file")
	digests := md.AddBool("digest", false, "print digest of video and audio output on exit (headless only)")
	prefsOverride := md.AddString("prefs", "", "preference overrides (eg. \"display.gamma::1.2; audio.driver::sdl\")")

	switch p, err := md.Parse(); p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* %v\n", err)
		return 10
	}

	if *echo {
		logger.SetEcho(logger.NewColorizer(os.Stdout))
	}

	// preferences
	pth, err := paths.ResourcePath("", sysprefs.Filename)
	if err != nil {
		fmt.Fprintf(output, "* %v\n", err)
		return 20
	}
	prf, err := sysprefs.NewPrefs(pth)
	if err != nil {
		fmt.Fprintf(output, "* %v\n", err)
		return 20
	}
	cl := prefs.NewCommandLine(*prefsOverride)
	prf.SetCommandLine(cl)
	err = prf.Load()
	if err != nil {
		fmt.Fprintf(output, "* %v\n", err)
		return 20
	}
	if u := cl.Unused(); u != "" {
		logger.Logf(logger.Allow, "hode", "unused preference overrides: %s", u)
	}

	// optional sound clip
	var clip *soundload.Clip
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		clip, err = soundload.Load(md.GetArg(0))
		if err != nil {
			fmt.Fprintf(output, "* %v\n", err)
			return 20
		}
	default:
		fmt.Fprintln(output, "* too many arguments")
		return 10
	}

	if *stats {
		srv := statsview.Launch(output, "")
		defer srv.Stop()
	}

	// create system
	var sys system.System
	var capture *wavwriter.WavWriter

	var vdig *digest.Video
	var adig *digest.Audio

	if *useHeadless {
		h := headless.NewHeadless(false)
		var taps []io.Writer
		if *wav != "" {
			capture, err = wavwriter.New(*wav, audio.DefaultSpec.Freq, audio.DefaultSpec.Channels)
			if err != nil {
				fmt.Fprintf(output, "* %v\n", err)
				return 20
			}
			taps = append(taps, capture)
		}
		if *digests {
			vdig = digest.NewVideo()
			adig = digest.NewAudio()
			h.OnFrame = vdig.Frame
			taps = append(taps, adig)
		}
		if len(taps) > 0 {
			h.SetAudioTap(io.MultiWriter(taps...))
		}
		sys = h
	} else {
		s := sdl.NewSDL()
		switch strings.ToLower(prf.AudioDriver.String()) {
		case "sdl":
			s.SetAudioDevice(&sdl.QueueDevice{})
		case "null":
			s.SetAudioDevice(&audio.NullDevice{})
		}
		if *wav != "" {
			capture, err = wavwriter.New(*wav, audio.DefaultSpec.Freq, audio.DefaultSpec.Channels)
			if err != nil {
				fmt.Fprintf(output, "* %v\n", err)
				return 20
			}
			s.SetAudioTap(capture)
		}
		sys = s
	}

	widescreen := prf.Widescreen.Get().(bool)

	err = sys.Init(version.Title(), demo.Width, demo.Height, prf.Fullscreen.Get().(bool), widescreen, false)
	if err != nil {
		fmt.Fprintf(output, "* %v\n", err)
		return 20
	}
	prf.Attach(sys)

	// stop on ctrl-c
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)
	go func() {
		<-intChan
		logger.Log(logger.Allow, "hode", "interrupted")
		os.Exit(0)
	}()

	_, err = demo.Run(sys, demo.Options{
		Frames:          *frames,
		Widescreen:      widescreen,
		FrameDuration:   prf.FrameDuration.Get().(int),
		Clip:            clip,
		ScreenshotScale: 1,
	})
	if err != nil {
		// FatalError() does not return
		sys.FatalError(err)
	}

	if *memviz != "" {
		err = memdump.WriteFile(*memviz, sys.Input(), sys.Pad())
		if err != nil {
			logger.Log(logger.Allow, "hode", err)
		}
	}

	sys.Destroy()

	if vdig != nil {
		adig.Flush()
		fmt.Fprintf(output, "video digest: %s (%d frames)\n", vdig.Hash(), vdig.Frames())
		fmt.Fprintf(output, "audio digest: %s\n", adig.Hash())
	}

	if capture != nil {
		err = capture.Close()
		if err != nil {
			fmt.Fprintf(output, "* %v\n", err)
			return 20
		}
	}

	return 0
}
