package utils

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// FindEnvFile walks up from the working directory and returns the first .env found.
func FindEnvFile() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, ".env")
		if FileExists(candidate) {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

// LoadEnv loads the given .env files, or the nearest one when none are given.
// Variables already set in the environment win. A missing file is not an error.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		path, err := FindEnvFile()
		if err != nil {
			return nil
		}
		paths = []string{path}
	}
	var existing []string
	for _, p := range paths {
		if FileExists(p) {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}
