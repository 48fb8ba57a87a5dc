package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/matthewhartstonge/TMFeeCalc/types"
)

// newLogger builds the process logger. With a log file configured it writes
// JSON there; otherwise it writes text to fallback, which is io.Discard while
// the TUI owns the terminal.
func newLogger(cfg Config, fallback io.Writer) (*logrus.Logger, func() error, error) {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.LogFile == "" {
		log.SetOutput(fallback)
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
		return log, func() error { return nil }, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	log.SetFormatter(&logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})
	return log, f.Close, nil
}

func quoteFields(r types.CalculationResult) logrus.Fields {
	return logrus.Fields{
		"net_target":  r.NetTarget,
		"bracket":     r.BracketLabel,
		"clamp":       string(r.Clamp),
		"list_price":  r.GrossListingPrice,
		"success_fee": r.SuccessFee,
		"total_fees":  r.TotalFees,
	}
}
