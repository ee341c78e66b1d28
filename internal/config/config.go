package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigPath is the default config file location.
const ConfigPath = "config.yaml"

// FileConfig represents configuration loaded from YAML. DatabaseURL
// and RedisAddr are both optional: without a database the console runs
// on the in-memory store, without Redis the cache falls back to files
// under CacheDir.
type FileConfig struct {
	Port          string `yaml:"port"`
	LogLevel      string `yaml:"logLevel"`
	DatabaseURL   string `yaml:"databaseURL"`
	RedisAddr     string `yaml:"redisAddr"`
	RedisPassword string `yaml:"redisPassword"`
	CacheDir      string `yaml:"cacheDir"`
	PollInterval  string `yaml:"pollInterval"`
	JWTSecret     string `yaml:"jwtSecret"`
	SessionTTL    string `yaml:"sessionTTL"`
	AIBaseURL     string `yaml:"aiBaseURL"`
	AIAPIKey      string `yaml:"aiAPIKey"`
	AIModel       string `yaml:"aiModel"`

	// Per-minute request limits, enforced only when Redis is
	// configured. Zero selects the defaults.
	LoginRateLimitPerMinute int `yaml:"loginRateLimitPerMinute"`
	ChatRateLimitPerMinute  int `yaml:"chatRateLimitPerMinute"`
}

// Load reads config from path (defaults to config.yaml), applies env
// overrides and validates.
func Load(path string) (FileConfig, error) {
	cfg := FileConfig{}
	if path == "" {
		path = ConfigPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if v := os.Getenv("CREDEMA_PORT"); v != "" {
		cfg.Port = strings.TrimSpace(v)
	}
	if v := os.Getenv("CREDEMA_LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.TrimSpace(v)
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.RedisAddr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.RedisPassword = v
	}
	if v := os.Getenv("CREDEMA_CACHE_DIR"); v != "" {
		cfg.CacheDir = strings.TrimSpace(v)
	}
	if v := os.Getenv("CREDEMA_POLL_INTERVAL"); v != "" {
		cfg.PollInterval = strings.TrimSpace(v)
	}
	if v := os.Getenv("CREDEMA_JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("CREDEMA_SESSION_TTL"); v != "" {
		cfg.SessionTTL = strings.TrimSpace(v)
	}
	if v := os.Getenv("CREDEMA_AI_BASE_URL"); v != "" {
		cfg.AIBaseURL = strings.TrimSpace(v)
	}
	if v := os.Getenv("CREDEMA_AI_API_KEY"); v != "" {
		cfg.AIAPIKey = v
	}
	if v := os.Getenv("CREDEMA_AI_MODEL"); v != "" {
		cfg.AIModel = strings.TrimSpace(v)
	}
	if v := os.Getenv("CREDEMA_LOGIN_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			cfg.LoginRateLimitPerMinute = n
		}
	}
	if v := os.Getenv("CREDEMA_CHAT_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			cfg.ChatRateLimitPerMinute = n
		}
	}
	if err := validateConfig(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func validateConfig(cfg FileConfig) error {
	if cfg.Port == "" {
		return errors.New("config: port is required (set in config.yaml or CREDEMA_PORT)")
	}
	if cfg.JWTSecret == "" {
		return errors.New("config: jwtSecret is required (set in config.yaml or CREDEMA_JWT_SECRET)")
	}
	if cfg.RedisAddr == "" && cfg.CacheDir == "" {
		return errors.New("config: one of redisAddr or cacheDir is required for the durable cache")
	}
	return nil
}

// ParsePollInterval parses the optional poll interval duration string.
func ParsePollInterval(value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	dur, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid pollInterval duration: %w", err)
	}
	return dur, nil
}

// ParseSessionTTL parses the optional session TTL duration string.
func ParseSessionTTL(value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	dur, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid sessionTTL duration: %w", err)
	}
	return dur, nil
}
