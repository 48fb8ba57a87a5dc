package main

import (
	"os"
	"strings"

	"github.com/matthewhartstonge/TMFeeCalc/types"
)

// Config holds process settings read from the environment.
type Config struct {
	LogLevel     string
	LogFile      string
	ScheduleFile string
	ExportDir    string
	ReduceMotion bool
}

func loadConfig() Config {
	level := os.Getenv("TMFEECALC_LOG_LEVEL")
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}

	exportDir := strings.TrimSpace(os.Getenv("TMFEECALC_EXPORT_DIR"))
	if exportDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			exportDir = home
		} else {
			exportDir = "."
		}
	}

	return Config{
		LogLevel:     strings.TrimSpace(level),
		LogFile:      strings.TrimSpace(os.Getenv("TMFEECALC_LOG_FILE")),
		ScheduleFile: strings.TrimSpace(os.Getenv("TMFEECALC_SCHEDULE")),
		ExportDir:    exportDir,
		ReduceMotion: parseBoolishEnv(os.Getenv("TMFEECALC_REDUCE_MOTION")),
	}
}

// feeSchedule returns the configured schedule, or the default when no
// schedule file is set.
func (c Config) feeSchedule() (types.FeeSchedule, error) {
	if c.ScheduleFile == "" {
		return types.DefaultFeeSchedule(), nil
	}
	return types.LoadFeeSchedule(c.ScheduleFile)
}

func parseBoolishEnv(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
