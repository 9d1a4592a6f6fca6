package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"property-returns/domain"
	"property-returns/service"
)

// Config is the process configuration, read from the environment (and an
// optional .env file) plus a YAML presets file.
type Config struct {
	Port               string
	RedisAddr          string
	CacheTTL           time.Duration
	CacheMaxEntries    int
	RateLimitPerMinute int
	RateLimitBurst     int
	GridWorkers        int
	PresetsFile        string
	Presets            Presets
}

// Presets are the defaults applied to requests that omit scenarios or axes.
type Presets struct {
	Scenarios   []domain.Scenario `yaml:"scenarios"`
	Sensitivity struct {
		Appreciation service.AxisRange `yaml:"appreciation"`
		Interest     service.AxisRange `yaml:"interest"`
	} `yaml:"sensitivity"`
}

// Load reads the configuration. A missing .env or presets file is not an
// error; malformed values are.
func Load() (Config, error) {
	// Cargar variables de entorno
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("[Config] Warning: could not read .env: %v", err)
	}

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		PresetsFile: getEnv("PRESETS_FILE", "config/presets.yaml"),
	}

	var err error
	if cfg.CacheTTL, err = time.ParseDuration(getEnv("CACHE_TTL", "10m")); err != nil {
		return Config{}, fmt.Errorf("CACHE_TTL: %w", err)
	}
	if cfg.CacheMaxEntries, err = getEnvInt("CACHE_MAX_ENTRIES", 1000); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitPerMinute, err = getEnvInt("RATE_LIMIT_PER_MINUTE", 30); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitBurst, err = getEnvInt("RATE_LIMIT_BURST", 5); err != nil {
		return Config{}, err
	}
	if cfg.GridWorkers, err = getEnvInt("GRID_WORKERS", 4); err != nil {
		return Config{}, err
	}

	if cfg.Presets, err = LoadPresets(cfg.PresetsFile); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadPresets parses the presets file at path. A missing file yields empty
// presets, which the analysis service replaces with its built-in defaults.
func LoadPresets(path string) (Presets, error) {
	var presets Presets
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("[Config] presets file %s not found, using built-in defaults", path)
		return presets, nil
	}
	if err != nil {
		return presets, fmt.Errorf("read presets: %w", err)
	}
	if err := yaml.Unmarshal(data, &presets); err != nil {
		return presets, fmt.Errorf("parse presets %s: %w", path, err)
	}
	return presets, nil
}

// ServiceOptions converts the configuration into analysis service options.
func (c Config) ServiceOptions() service.Options {
	return service.Options{
		Scenarios:        c.Presets.Scenarios,
		AppreciationAxis: c.Presets.Sensitivity.Appreciation.Values(),
		InterestAxis:     c.Presets.Sensitivity.Interest.Values(),
		GridWorkers:      c.GridWorkers,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
