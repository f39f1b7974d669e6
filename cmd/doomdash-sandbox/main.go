// Command doomdash-sandbox drives both gesture hands from the keyboard over a top-down view of the arena
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/doomdash/audio"
	"github.com/lixenwraith/doomdash/config"
	"github.com/lixenwraith/doomdash/core"
	"github.com/lixenwraith/doomdash/engine"
)

var (
	configFlag = flag.String("config", "", "YAML config file, environment overrides apply on top")
	debugFlag  = flag.Bool("debug", false, "Write a debug log")
	muteFlag   = flag.Bool("mute", false, "Start without audio")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *debugFlag {
		cfg.Logging.Debug = true
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}

	if logFile := setupLogging(cfg.Logging.Debug, cfg.Logging.Dir, cfg.Logging.File); logFile != nil {
		defer logFile.Close()
	}

	if err := core.InitReporting(cfg.Logging.SentryDSN); err != nil {
		log.Printf("Crash reporting disabled: %v", err)
	}
	defer core.FlushReporting()

	var player *audio.Player
	if cfg.Audio.Enabled {
		player = audio.NewPlayer(cfg.Audio)
		if err := player.Initialize(); err != nil {
			// Non-fatal, the sandbox runs without sound
			log.Printf("Audio initialization failed: %v", err)
			player = nil
		} else {
			defer player.Close()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashScreen(screen)
	defer screen.Fini()

	sb, err := newSandbox(screen, cfg, engine.SystemTime{}, player)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}

	events := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	sb.run(events)
}
