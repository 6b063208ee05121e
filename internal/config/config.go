package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultAPIBaseURL    = "https://pokeapi.co/api/v2"
	defaultSpriteBaseURL = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon"
	defaultDBPath        = "pokedex.db"
	defaultCatalogLimit  = 151
	defaultRPS           = 20.0
)

// Config holds runtime settings for the CLI app.
type Config struct {
	APIBaseURL        string
	SpriteBaseURL     string
	DBPath            string
	CatalogLimit      int
	RequestsPerSecond float64
}

// Load reads settings from the environment, with a best-effort .env overlay.
// Variables already exported in the environment win over .env values.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		APIBaseURL:        os.Getenv("POKEDEX_API_BASE_URL"),
		SpriteBaseURL:     os.Getenv("POKEDEX_SPRITE_BASE_URL"),
		DBPath:            os.Getenv("POKEDEX_DB_PATH"),
		CatalogLimit:      defaultCatalogLimit,
		RequestsPerSecond: defaultRPS,
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = defaultAPIBaseURL
	}
	if cfg.SpriteBaseURL == "" {
		cfg.SpriteBaseURL = defaultSpriteBaseURL
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath
	}

	if raw := os.Getenv("POKEDEX_CATALOG_LIMIT"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("POKEDEX_CATALOG_LIMIT must be an integer: %q", raw)
		}
		cfg.CatalogLimit = limit
	}
	if raw := os.Getenv("POKEDEX_RPS"); raw != "" {
		rps, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Config{}, fmt.Errorf("POKEDEX_RPS must be a number: %q", raw)
		}
		cfg.RequestsPerSecond = rps
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("APIBaseURL is required")
	}
	if strings.HasSuffix(c.APIBaseURL, "/") {
		return fmt.Errorf("APIBaseURL must not end with '/': %s", c.APIBaseURL)
	}
	if c.SpriteBaseURL == "" {
		return fmt.Errorf("SpriteBaseURL is required")
	}
	if strings.HasSuffix(c.SpriteBaseURL, "/") {
		return fmt.Errorf("SpriteBaseURL must not end with '/': %s", c.SpriteBaseURL)
	}
	if c.DBPath == "" {
		return fmt.Errorf("DBPath is required")
	}
	if c.CatalogLimit < 1 {
		return fmt.Errorf("CatalogLimit must be positive: %d", c.CatalogLimit)
	}
	if c.RequestsPerSecond <= 0 {
		return fmt.Errorf("RequestsPerSecond must be positive: %g", c.RequestsPerSecond)
	}
	return nil
}
