package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDotEnvFileSetsValuesAndPreservesExistingEnv(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, ".env")
	content := "TMFEECALC_LOG_LEVEL=from_file\nTMFEECALC_EXPORT_DIR=\"/tmp/quoted dir\"\nTMFEECALC_SCHEDULE=schedule.json # trailing\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	const (
		levelKey    = "TMFEECALC_LOG_LEVEL"
		exportKey   = "TMFEECALC_EXPORT_DIR"
		scheduleKey = "TMFEECALC_SCHEDULE"
	)
	t.Setenv(levelKey, "already_set")
	t.Setenv(exportKey, "")
	t.Setenv(scheduleKey, "")

	for _, key := range []string{exportKey, scheduleKey} {
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unset %s: %v", key, err)
		}
	}

	if err := loadDotEnvFile(path); err != nil {
		t.Fatalf("load dotenv: %v", err)
	}

	if got := os.Getenv(levelKey); got != "already_set" {
		t.Fatalf("expected existing env to be preserved, got %q", got)
	}
	if got := os.Getenv(exportKey); got != "/tmp/quoted dir" {
		t.Fatalf("expected quoted export dir from file, got %q", got)
	}
	if got := os.Getenv(scheduleKey); got != "schedule.json" {
		t.Fatalf("expected trailing comment to be stripped, got %q", got)
	}
}

func TestLoadDotEnvFileMissingFileIsNotError(t *testing.T) {
	if err := loadDotEnvFile(filepath.Join(t.TempDir(), "does-not-exist.env")); err != nil {
		t.Fatalf("expected missing dotenv file to be ignored, got %v", err)
	}
}
