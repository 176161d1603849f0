package config

import (
	"business-finder/internal/domain"
	"business-finder/internal/platform/pacing"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Runtime settings shared by the server and the terminal finder.
type Config struct {
	APIKey         string
	BaseURL        string
	Port           string
	ReviewPolicy   domain.ReviewPolicy
	DetailDelay    time.Duration
	PageTokenDelay time.Duration
	HTTPTimeout    time.Duration
	DetailFields   []string
	MaxPages       int
}

// LoadDotEnv reads a .env file into the process environment if one exists.
func LoadDotEnv(paths ...string) {
	if err := godotenv.Load(paths...); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Load builds a Config from the environment.
// GOOGLE_API_KEY is required; everything else has a default.
func Load() (Config, error) {
	cfg := Config{
		APIKey:  Get("GOOGLE_API_KEY", ""),
		BaseURL: Get("MAPS_BASE_URL", "https://maps.googleapis.com/maps/api"),
		Port:    Get("PORT", "8080"),
	}
	if cfg.APIKey == "" {
		return Config{}, errors.New("load config: GOOGLE_API_KEY is required")
	}

	policy, err := domain.ParseReviewPolicy(Get("REVIEW_POLICY", "min"))
	if err != nil {
		return Config{}, fmt.Errorf("load config: REVIEW_POLICY: %w", err)
	}
	cfg.ReviewPolicy = policy

	if cfg.DetailDelay, err = getDuration("DETAIL_DELAY", pacing.DefaultDetailDelay); err != nil {
		return Config{}, err
	}
	if cfg.PageTokenDelay, err = getDuration("PAGE_TOKEN_DELAY", pacing.DefaultPageTokenDelay); err != nil {
		return Config{}, err
	}
	if cfg.HTTPTimeout, err = getDuration("HTTP_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}

	maxPages, err := strconv.Atoi(Get("MAX_PAGES", "0"))
	if err != nil || maxPages < 0 {
		return Config{}, fmt.Errorf("load config: MAX_PAGES must be a non-negative integer, got %q", os.Getenv("MAX_PAGES"))
	}
	cfg.MaxPages = maxPages

	if raw := Get("PLACES_DETAIL_FIELDS", ""); raw != "" {
		for _, f := range strings.Split(raw, ",") {
			if f = strings.TrimSpace(f); f != "" {
				cfg.DetailFields = append(cfg.DetailFields, f)
			}
		}
	}

	return cfg, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := Get(key, "")
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("load config: %s must be a non-negative duration, got %q", key, raw)
	}
	return d, nil
}
