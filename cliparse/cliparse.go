package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	SessionSalt  string

	// Spotify app credentials; search is disabled when empty
	SpotifyClientID     string
	SpotifyClientSecret string

	// Wedding metadata for the details endpoint
	WeddingDate  time.Time
	WeddingVenue string
	WeddingCity  string
}

// defaultWeddingDate is used when WEDDING_DATE is unset
const defaultWeddingDate = "2026-09-26T16:00:00Z"

// ParseFlags validates flags and falls back to environment variables.
// A .env file in the working directory is loaded first if present.
func ParseFlags(args []string) (Config, error) {
	// Missing .env is fine; real env vars win over file values
	_ = godotenv.Load()

	var cfg Config
	var weddingDate string

	fs := flag.NewFlagSet("wedding-api", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SessionSalt, "session-salt", "", "Session token salt (prefer env)")
	fs.StringVar(&cfg.SpotifyClientID, "spotify-id", "", "Spotify client ID (prefer env)")
	fs.StringVar(&cfg.SpotifyClientSecret, "spotify-secret", "", "Spotify client secret (prefer env)")

	// Wedding details
	fs.StringVar(&weddingDate, "wedding-date", "", "Wedding date (RFC 3339)")
	fs.StringVar(&cfg.WeddingVenue, "wedding-venue", "", "Wedding venue name")
	fs.StringVar(&cfg.WeddingCity, "wedding-city", "", "Wedding city")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3324 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	// Secrets - MUST be provided
	if cfg.SessionSalt == "" {
		cfg.SessionSalt = os.Getenv("SESSION_SALT")
	}
	if cfg.SessionSalt == "" {
		return Config{}, errors.New("SESSION_SALT required")
	}

	// Spotify credentials are optional; the search endpoint answers 503
	// without them
	if cfg.SpotifyClientID == "" {
		cfg.SpotifyClientID = os.Getenv("SPOTIFY_CLIENT_ID")
	}
	if cfg.SpotifyClientSecret == "" {
		cfg.SpotifyClientSecret = os.Getenv("SPOTIFY_CLIENT_SECRET")
	}

	if weddingDate == "" {
		weddingDate = os.Getenv("WEDDING_DATE")
	}
	if weddingDate == "" {
		weddingDate = defaultWeddingDate
	}
	parsed, err := time.Parse(time.RFC3339, weddingDate)
	if err != nil {
		return Config{}, errors.New("invalid wedding date, expected RFC 3339")
	}
	cfg.WeddingDate = parsed

	if cfg.WeddingVenue == "" {
		cfg.WeddingVenue = os.Getenv("WEDDING_VENUE")
	}
	if cfg.WeddingVenue == "" {
		cfg.WeddingVenue = "Hahn Horticulture Garden"
	}
	if cfg.WeddingCity == "" {
		cfg.WeddingCity = os.Getenv("WEDDING_CITY")
	}
	if cfg.WeddingCity == "" {
		cfg.WeddingCity = "Blacksburg, Virginia"
	}

	return cfg, nil
}
