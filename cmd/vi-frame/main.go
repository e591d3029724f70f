package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/lixenwraith/vi-frame/app"
	"github.com/lixenwraith/vi-frame/bell"
	"github.com/lixenwraith/vi-frame/config"
	"github.com/lixenwraith/vi-frame/terminal"
)

var (
	configFlag  = flag.String("config", config.DefaultPath(), "Path to config.toml")
	debugFlag   = flag.Bool("debug", false, "Write debug log to logs/vi-frame.log")
	noMouseFlag = flag.Bool("no-mouse", false, "Disable mouse input")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] [file]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vi-frame: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return fmt.Errorf("stdin is not a terminal")
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *noMouseFlag {
		cfg.Editor.Mouse = false
	}

	if logFile := setupLogging(*debugFlag || cfg.Log.Debug); logFile != nil {
		defer logFile.Close()
	}

	content, name, err := app.LoadFile(flag.Arg(0))
	if err != nil {
		return err
	}

	b := bell.New(cfg.Bell.Enabled, cfg.Bell.Frequency, cfg.Bell.Duration())
	if err := b.Init(); err != nil {
		// Non-fatal, the editor runs without sound
		log.Printf("bell: %v", err)
	}
	defer b.Close()

	screen, err := terminal.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(cfg.Editor.Mouse); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer screen.Fini()
	defer func() {
		app.HandleCrash(recover(), screen.Fini)
	}()

	a, err := app.New(screen, cfg, name, content, b)
	if err != nil {
		return err
	}
	return a.Run()
}
