package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Env            string
	LogLevel       string
	Port           string
	AuthToken      string
	AuthServiceURL string
	DBType         string
	DBDSN          string
	FileSessions   string
	FileCache      string
	InsightsTTL    time.Duration
}

// fileOverlay is the YAML shape of CONFIG_FILE. insights_ttl is a duration
// string ("5m", "90s") so the file form matches what operators expect to
// write, not raw nanoseconds.
type fileOverlay struct {
	Env            string `yaml:"env"`
	LogLevel       string `yaml:"log_level"`
	Port           string `yaml:"port"`
	AuthToken      string `yaml:"auth_token"`
	AuthServiceURL string `yaml:"auth_service_url"`
	DBType         string `yaml:"storage_backend"`
	DBDSN          string `yaml:"postgres_dsn"`
	FileSessions   string `yaml:"sessions_file"`
	FileCache      string `yaml:"cache_file"`
	InsightsTTL    string `yaml:"insights_ttl"`
}

var (
	cfg  *Config
	once sync.Once
)

func Load() *Config {
	once.Do(func() {
		_ = godotenv.Load()
		cfg = &Config{
			Env:            getEnv("APP_ENV", "development"),
			LogLevel:       getEnv("LOG_LEVEL", "info"),
			Port:           getEnv("PORT", "8088"),
			AuthToken:      getEnv("AUTH_TOKEN", "MOCK-TOKEN"),
			AuthServiceURL: getEnv("AUTH_SERVICE_URL", ""),
			DBType:         getEnv("STORAGE_BACKEND", "file"),
			DBDSN:          getEnv("POSTGRES_DSN", ""),
			FileSessions:   getEnv("SESSIONS_FILE", "data/timer_sessions.json"),
			FileCache:      getEnv("CACHE_FILE", "data/insights_cache.json"),
			InsightsTTL:    getEnvDuration("INSIGHTS_TTL_SECONDS", 5*time.Minute),
		}
		if path := os.Getenv("CONFIG_FILE"); path != "" {
			if err := cfg.applyFile(path); err != nil {
				panic("Invalid config file: " + err.Error())
			}
		}
		if err := cfg.Validate(); err != nil {
			panic("Invalid config: " + err.Error())
		}
	})
	return cfg
}

// applyFile overlays non-empty values from a YAML file onto the env-derived
// config. Env vars stay authoritative for anything the file leaves unset.
func (c *Config) applyFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var overlay fileOverlay
	if err := yaml.Unmarshal(raw, &overlay); err != nil {
		return err
	}
	if overlay.Env != "" {
		c.Env = overlay.Env
	}
	if overlay.LogLevel != "" {
		c.LogLevel = overlay.LogLevel
	}
	if overlay.Port != "" {
		c.Port = overlay.Port
	}
	if overlay.AuthToken != "" {
		c.AuthToken = overlay.AuthToken
	}
	if overlay.AuthServiceURL != "" {
		c.AuthServiceURL = overlay.AuthServiceURL
	}
	if overlay.DBType != "" {
		c.DBType = overlay.DBType
	}
	if overlay.DBDSN != "" {
		c.DBDSN = overlay.DBDSN
	}
	if overlay.FileSessions != "" {
		c.FileSessions = overlay.FileSessions
	}
	if overlay.FileCache != "" {
		c.FileCache = overlay.FileCache
	}
	if overlay.InsightsTTL != "" {
		ttl, err := time.ParseDuration(overlay.InsightsTTL)
		if err != nil {
			return fmt.Errorf("insights_ttl: %w", err)
		}
		c.InsightsTTL = ttl
	}
	return nil
}

func (c *Config) Validate() error {
	if c.DBType == "postgres" && c.DBDSN == "" {
		return errors.New("POSTGRES_DSN is required when STORAGE_BACKEND=postgres")
	}
	if c.DBType == "file" && (c.FileSessions == "" || c.FileCache == "") {
		return errors.New("File storage requires SESSIONS_FILE and CACHE_FILE to be set")
	}
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	if c.Env != "development" && c.AuthServiceURL == "" {
		return errors.New("AUTH_SERVICE_URL is required outside development")
	}
	if c.InsightsTTL <= 0 {
		return errors.New("INSIGHTS_TTL_SECONDS must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return fallback
}
