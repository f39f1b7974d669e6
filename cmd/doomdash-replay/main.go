// Command doomdash-replay runs a scripted input session headless and prints the body trajectory as CSV
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lixenwraith/doomdash/config"
	"github.com/lixenwraith/doomdash/core"
)

var (
	configFlag = flag.String("config", "", "YAML config file, environment overrides apply on top")
	quietFlag  = flag.Bool("quiet", false, "Omit the event log and summary")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] script.yaml\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *configFlag, *quietFlag, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "doomdash-replay: %v\n", err)
		os.Exit(1)
	}
}

func run(scriptPath, configPath string, quiet bool, out, report io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log.SetOutput(io.Discard)
	if cfg.Logging.Debug {
		log.SetOutput(report)
	}

	if err := core.InitReporting(cfg.Logging.SentryDSN); err != nil {
		log.Printf("Crash reporting disabled: %v", err)
	}
	defer core.FlushReporting()

	f, err := os.Open(scriptPath)
	if err != nil {
		return fmt.Errorf("open script: %w", err)
	}
	defer f.Close()

	sc, err := loadScript(f)
	if err != nil {
		return fmt.Errorf("%s: %w", scriptPath, err)
	}

	sum, err := replay(sc, cfg, out)
	if err != nil {
		return err
	}
	if !quiet {
		writeSummary(report, sum)
	}
	return nil
}
