package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Environment string
	// DatabasePath is the SQLite file holding the persisted snapshots.
	DatabasePath string
	// CredentialMode selects how passwords are stored: "plain" keeps them
	// verbatim (local demo default, compatible with existing snapshots),
	// "bcrypt" enables salted-hash storage.
	CredentialMode string
	// SuperAdminEmail/SuperAdminPassword configure the distinguished
	// super-admin credential. Both empty disables the SUPER_ADMIN role.
	SuperAdminEmail    string
	SuperAdminPassword string
	// CopywriterURL/CopywriterAPIKey enable the remote copy generator.
	// Empty URL selects the embedded template writer.
	CopywriterURL    string
	CopywriterAPIKey string
}

// Load loads configuration from environment variables. Outside production it
// first attempts to load a .env file; a missing .env is not an error because
// production relies on system environment variables.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:        env,
		DatabasePath:       os.Getenv("DATABASE_PATH"),
		CredentialMode:     os.Getenv("CREDENTIAL_MODE"),
		SuperAdminEmail:    os.Getenv("SUPER_ADMIN_EMAIL"),
		SuperAdminPassword: os.Getenv("SUPER_ADMIN_PASSWORD"),
		CopywriterURL:      os.Getenv("COPYWRITER_URL"),
		CopywriterAPIKey:   os.Getenv("COPYWRITER_API_KEY"),
	}

	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "teamflow.db"
	}
	if cfg.CredentialMode == "" {
		cfg.CredentialMode = "plain"
	}

	return cfg, nil
}
