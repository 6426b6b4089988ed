package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// ListenAddr is the address the builder server binds to, e.g. ":8080".
	ListenAddr string

	// APIBaseURL is the base URL of the remote LMS API the builder
	// persists envelopes to, e.g. "https://api.example.com".
	APIBaseURL string

	// MediaBaseURL is the base URL used when building media links for
	// uploaded files. Falls back to APIBaseURL when unset.
	MediaBaseURL string

	// OrgID and OrgSlug identify the organization whose landing page this
	// deployment edits. UserID identifies the profile owner.
	OrgID   string
	OrgSlug string
	UserID  string

	// SessionSecret signs the flash-message session cookie.
	// JWTSecret verifies bearer tokens on mutating builder routes.
	SessionSecret string
	JWTSecret     string

	// SeedsDir, when set, is watched for envelope JSON fixtures that are
	// pushed to preview clients on change. Development only.
	SeedsDir string

	// MediaDir is the root directory for stored uploads.
	MediaDir string

	// SurrealDB connection settings for the local draft store. The draft
	// store is optional; leaving these empty disables draft autosave.
	DBUrl  string
	DBNs   string
	DBDb   string
	DBUser string
	DBPass string

	// Locale selects the language used for builder labels ("en", "es").
	Locale string
}

// New loads configuration from environment variables.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		ListenAddr:    getEnv("LISTEN_ADDR", ":8080"),
		APIBaseURL:    os.Getenv("API_BASE_URL"),
		MediaBaseURL:  os.Getenv("MEDIA_BASE_URL"),
		OrgID:         os.Getenv("ORG_ID"),
		OrgSlug:       os.Getenv("ORG_SLUG"),
		UserID:        os.Getenv("USER_ID"),
		SessionSecret: getEnv("SESSION_SECRET", "pagecraft-dev-secret"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		SeedsDir:      os.Getenv("SEEDS_DIR"),
		MediaDir:      getEnv("MEDIA_DIR", "media"),
		DBUrl:         os.Getenv("SURREAL_URL"),
		DBNs:          os.Getenv("SURREAL_NS"),
		DBDb:          os.Getenv("SURREAL_DB"),
		DBUser:        os.Getenv("SURREAL_USER"),
		DBPass:        os.Getenv("SURREAL_PASS"),
		Locale:        getEnv("BUILDER_LOCALE", "en"),
	}

	if cfg.MediaBaseURL == "" {
		cfg.MediaBaseURL = cfg.APIBaseURL
	}

	if cfg.APIBaseURL == "" || cfg.OrgID == "" {
		log.Fatal("Required environment variables API_BASE_URL or ORG_ID are not set.")
	}

	return cfg
}

// DraftsEnabled reports whether the SurrealDB draft store is configured.
func (c *Config) DraftsEnabled() bool {
	return c.DBUrl != "" && c.DBNs != "" && c.DBDb != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetEnvInt reads an integer environment variable with a fallback. Used by
// module-level configs (e.g. media size ceilings).
func GetEnvInt(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
