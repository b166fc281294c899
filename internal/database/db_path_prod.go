//go:build prod

package database

import (
	"path/filepath"

	"github.com/rs/zerolog/log"

	"fastwrite/internal/utils"
)

// GetDefaultDBPath returns the database path for production mode.
// In production, the database is stored in the user's config directory.
func GetDefaultDBPath() string {
	appDir, err := utils.AppDir()
	if err != nil {
		log.Warn().Err(err).Msg("Failed to prepare app config dir, using fallback")
		return "fastwrite.db"
	}
	return filepath.Join(appDir, "fastwrite.db")
}

func IsDevelopment() bool {
	return false
}
