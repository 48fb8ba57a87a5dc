package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseBoolishEnv(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "1", want: true},
		{input: "true", want: true},
		{input: "TRUE", want: true},
		{input: "yes", want: true},
		{input: "on", want: true},
		{input: "0", want: false},
		{input: "false", want: false},
		{input: "", want: false},
		{input: "off", want: false},
	}

	for _, tc := range tests {
		got := parseBoolishEnv(tc.input)
		if got != tc.want {
			t.Fatalf("parseBoolishEnv(%q): expected %v, got %v", tc.input, tc.want, got)
		}
	}
}

func TestLoadConfigReadsEnvironment(t *testing.T) {
	t.Setenv("TMFEECALC_LOG_LEVEL", "")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("TMFEECALC_LOG_FILE", " /tmp/tmfeecalc.log ")
	t.Setenv("TMFEECALC_SCHEDULE", "schedule.json")
	t.Setenv("TMFEECALC_EXPORT_DIR", "/tmp/exports")
	t.Setenv("TMFEECALC_REDUCE_MOTION", "yes")

	cfg := loadConfig()
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected LOG_LEVEL fallback, got %q", cfg.LogLevel)
	}
	if cfg.LogFile != "/tmp/tmfeecalc.log" {
		t.Fatalf("expected trimmed log file, got %q", cfg.LogFile)
	}
	if cfg.ScheduleFile != "schedule.json" || cfg.ExportDir != "/tmp/exports" {
		t.Fatalf("unexpected paths: %+v", cfg)
	}
	if !cfg.ReduceMotion {
		t.Fatal("expected reduce motion to be enabled")
	}

	t.Setenv("TMFEECALC_LOG_LEVEL", "warn")
	if got := loadConfig().LogLevel; got != "warn" {
		t.Fatalf("expected TMFEECALC_LOG_LEVEL to win, got %q", got)
	}
}

func TestConfigFeeSchedule(t *testing.T) {
	s, err := Config{}.feeSchedule()
	if err != nil {
		t.Fatalf("default schedule: %v", err)
	}
	if s.Marketplace != "TradeMe" || len(s.Brackets) != 3 {
		t.Fatalf("expected default schedule, got %+v", s)
	}

	path := filepath.Join(t.TempDir(), "schedule.json")
	body := `{"marketplace":"Local","brackets":[{"label":"only","rate":0.1}],"processor":{"label":"p","rate":0.01},"merchant":{"label":"m","rate":0.01}}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write schedule: %v", err)
	}

	s, err = Config{ScheduleFile: path}.feeSchedule()
	if err != nil {
		t.Fatalf("load schedule: %v", err)
	}
	if s.Marketplace != "Local" {
		t.Fatalf("expected schedule from file, got %q", s.Marketplace)
	}

	if _, err := (Config{ScheduleFile: path + ".missing"}).feeSchedule(); err == nil {
		t.Fatal("expected missing schedule file to fail")
	}
}
