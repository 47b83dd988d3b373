package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/jorgeutermoehl/agenda/internal/flagx"
)

// Environment variables recognized by parseEnv.
const (
	envDataDir   = "AGENDA_DATA_DIR"
	envDataFile  = "AGENDA_DATA_FILE"
	envAuditFile = "AGENDA_AUDIT_FILE"
)

// parseEnv overlays Config with values from the process environment.
//
// If an env file was named via -e/-env-file it is loaded first with
// godotenv; a missing env file is not an error, so running without one
// behaves exactly like a plain environment. Variables already set in the
// environment win over the file, which is godotenv's default.
func parseEnv(cfg *Config) {
	if envFile := flagx.EnvFileFlags(); envFile != "" {
		_ = godotenv.Load(envFile)
	}

	if v := os.Getenv(envDataDir); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv(envDataFile); v != "" {
		cfg.DataFile = v
	}
	if v := os.Getenv(envAuditFile); v != "" {
		cfg.AuditFile = v
	}
}
