package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

type Config struct {
	Env    string `yaml:"env"`
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	Session struct {
		Secret  string        `yaml:"secret"`
		Backend string        `yaml:"backend"`
		TTL     time.Duration `yaml:"ttl"`
		Secure  bool          `yaml:"secure"`
	} `yaml:"session"`
	Redis struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	FormRelay struct {
		Endpoint string        `yaml:"endpoint"`
		Timeout  time.Duration `yaml:"timeout"`
	} `yaml:"form_relay"`
	Catalog struct {
		Path          string `yaml:"path"`
		ImageBaseURL  string `yaml:"image_base_url"`
		FallbackImage string `yaml:"fallback_image"`
	} `yaml:"catalog"`
	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`
	RateLimit struct {
		PerMinute int `yaml:"per_minute"`
		Burst     int `yaml:"burst"`
	} `yaml:"rate_limit"`
}

// IsProduction reports whether ENV/env is "production".
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// LoadConfig reads a YAML file, applies environment overrides, defaults and validation.
// A missing file is not an error: defaults and environment still produce a usable config.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	if env := os.Getenv("ENV"); env != "" {
		cfg.Env = env
	}
	if port := os.Getenv("PORT"); port != "" {
		portNum, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid PORT value: %w", err)
		}
		cfg.Server.Port = portNum
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if secret := os.Getenv("SESSION_SECRET"); secret != "" {
		cfg.Session.Secret = secret
	}
	if backend := os.Getenv("SESSION_BACKEND"); backend != "" {
		cfg.Session.Backend = strings.ToLower(backend)
	}
	if host := os.Getenv("REDIS_HOST"); host != "" {
		cfg.Redis.Host = host
	}
	if port := os.Getenv("REDIS_PORT"); port != "" {
		portNum, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid REDIS_PORT value: %w", err)
		}
		cfg.Redis.Port = portNum
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		cfg.Redis.Password = password
	}
	if db := os.Getenv("REDIS_DB"); db != "" {
		dbNum, err := strconv.Atoi(db)
		if err != nil {
			return fmt.Errorf("invalid REDIS_DB value: %w", err)
		}
		cfg.Redis.DB = dbNum
	}
	if endpoint := os.Getenv("FORM_RELAY_ENDPOINT"); endpoint != "" {
		cfg.FormRelay.Endpoint = endpoint
	}
	if path := os.Getenv("CATALOG_PATH"); path != "" {
		cfg.Catalog.Path = path
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "INFO"
	}
	if cfg.Session.Backend == "" {
		cfg.Session.Backend = SessionBackendMemory
	}
	if cfg.Session.TTL == 0 {
		cfg.Session.TTL = 12 * time.Hour
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.FormRelay.Timeout == 0 {
		cfg.FormRelay.Timeout = 10 * time.Second
	}
	if cfg.Catalog.ImageBaseURL == "" {
		cfg.Catalog.ImageBaseURL = "https://res.cloudinary.com/du85wguro/image/upload"
	}
	if cfg.Catalog.FallbackImage == "" {
		cfg.Catalog.FallbackImage = "/static/logo.png"
	}
	if cfg.RateLimit.PerMinute == 0 {
		cfg.RateLimit.PerMinute = 100
	}
	if cfg.RateLimit.Burst == 0 {
		cfg.RateLimit.Burst = 10
	}
}

// Validate checks the values LoadConfig cannot default.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535")
	}
	switch c.Session.Backend {
	case SessionBackendMemory, SessionBackendRedis:
	default:
		return fmt.Errorf("unknown session backend %q", c.Session.Backend)
	}
	if c.Session.TTL < 0 {
		return fmt.Errorf("session ttl must not be negative")
	}
	if c.IsProduction() && len(c.Session.Secret) < 32 {
		return fmt.Errorf("SESSION_SECRET must be at least 32 bytes in production")
	}
	if c.Redis.Port <= 0 || c.Redis.Port > 65535 {
		return fmt.Errorf("REDIS_PORT must be between 1 and 65535")
	}
	if c.Redis.DB < 0 {
		return fmt.Errorf("REDIS_DB must be non-negative")
	}
	if c.FormRelay.Timeout < 0 {
		return fmt.Errorf("form relay timeout must not be negative")
	}
	if c.RateLimit.PerMinute < 0 || c.RateLimit.Burst < 0 {
		return fmt.Errorf("rate limit per_minute and burst must not be negative")
	}
	if c.FormRelay.Endpoint == "" {
		return fmt.Errorf("form relay endpoint is required")
	}
	return nil
}
