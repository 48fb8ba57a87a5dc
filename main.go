package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/matthewhartstonge/TMFeeCalc/engine"
)

func main() {
	plain := flag.Bool("plain", false, "print a one-shot report instead of starting the TUI")
	flag.Parse()

	if err := loadDotEnvFile(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg := loadConfig()

	interactive := !*plain && flag.NArg() == 0 && isatty.IsTerminal(os.Stdout.Fd())

	var fallback io.Writer = os.Stderr
	if interactive {
		fallback = io.Discard
	}
	log, closeLog, err := newLogger(cfg, fallback)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitConfig)
	}
	defer closeLog()

	schedule, err := cfg.feeSchedule()
	if err != nil {
		log.WithError(err).Error("load fee schedule")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitConfig)
	}
	eng, err := engine.New(schedule)
	if err != nil {
		log.WithError(err).Error("build pricing engine")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitConfig)
	}

	if !interactive {
		code := runPlain(flag.Args(), os.Stdin, os.Stdout, os.Stderr, eng, log)
		closeLog()
		os.Exit(code)
	}

	p := tea.NewProgram(
		NewModel(eng, log, cfg),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}
