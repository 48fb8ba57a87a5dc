package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// loadDotEnvFile loads KEY=VALUE pairs from a dotenv-style file.
// Existing process env values are preserved and take precedence.
func loadDotEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load dotenv file: %w", err)
	}
	return nil
}
