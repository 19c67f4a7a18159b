package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Matchmaking defaults, kept identical to the values the production job has
// always run with.
const (
	DefaultMaxRadiusKm      = 50.0
	DefaultMaxGroupSize     = 6
	DefaultMinCompatibility = 0.3
)

type Config struct {
	Port             string
	AWSRegion        string
	MaxRadiusKm      float64
	MaxGroupSize     int
	MinCompatibility float64
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when variables come from the environment itself
		// (Docker, CI, etc.).
	}

	cfg := &Config{
		Port:             os.Getenv("PORT"),
		AWSRegion:        os.Getenv("AWS_REGION"),
		MaxRadiusKm:      DefaultMaxRadiusKm,
		MaxGroupSize:     DefaultMaxGroupSize,
		MinCompatibility: DefaultMinCompatibility,
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if v := os.Getenv("MATCH_RADIUS_KM"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("config: MATCH_RADIUS_KM invalid (%q): %w", v, err)
		}
		cfg.MaxRadiusKm = f
	}
	if v := os.Getenv("MATCH_GROUP_CAP"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("config: MATCH_GROUP_CAP invalid (%q): %w", v, err)
		}
		cfg.MaxGroupSize = n
	}
	if v := os.Getenv("MATCH_MIN_SCORE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("config: MATCH_MIN_SCORE invalid (%q): %w", v, err)
		}
		cfg.MinCompatibility = f
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("config: PORT cannot be blank")
	}
	if c.MaxRadiusKm <= 0 {
		return fmt.Errorf("config: MATCH_RADIUS_KM must be positive, got %v", c.MaxRadiusKm)
	}
	if c.MaxGroupSize < 2 {
		return fmt.Errorf("config: MATCH_GROUP_CAP must be at least 2, got %d", c.MaxGroupSize)
	}
	if c.MinCompatibility < 0 || c.MinCompatibility >= 1 {
		return fmt.Errorf("config: MATCH_MIN_SCORE must be in [0, 1), got %v", c.MinCompatibility)
	}
	return nil
}
