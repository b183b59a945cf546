package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Defaults applied when the config file omits a value.
const (
	DefaultBaseURL           = "https://v3.football.api-sports.io"
	DefaultBookmakerID       = 8 // Bet365
	DefaultRequestTimeout    = 15 * time.Second
	DefaultHealthPort        = 10000
	DefaultReadHeaderTimeout = 5 * time.Second
	DefaultUpdateTimeout     = 60
	DefaultTeamCacheTTL      = 24 * time.Hour
)

type Config struct {
	APIFootball APIFootballConfig `yaml:"api_football"`
	Telegram    TelegramConfig    `yaml:"telegram"`
	Health      HealthConfig      `yaml:"health"`
	Redis       RedisConfig       `yaml:"redis"`
	Logging     LoggingConfig     `yaml:"logging"`
}

type APIFootballConfig struct {
	BaseURL     string `yaml:"base_url"`
	BookmakerID int    `yaml:"bookmaker_id"`
	Season      int    `yaml:"season"`  // 0 = current calendar year at resolution time
	Timeout     string `yaml:"timeout"` // Go duration string, e.g. "15s"

	// Loaded from APIFOOTBALL_KEY, never from YAML.
	APIKey string `yaml:"-"`
}

// RequestTimeout returns the per-request provider timeout, falling back to
// the default on empty or invalid values.
func (c APIFootballConfig) RequestTimeout() time.Duration {
	return parseDurationOr(c.Timeout, DefaultRequestTimeout)
}

type TelegramConfig struct {
	UpdateTimeout  int     `yaml:"update_timeout"`
	AllowedUserIDs []int64 `yaml:"allowed_user_ids"`

	// Loaded from TELEGRAM_BOT_TOKEN, never from YAML.
	Token string `yaml:"-"`
}

type HealthConfig struct {
	Port              int    `yaml:"port"`
	ReadHeaderTimeout string `yaml:"read_header_timeout"` // Go duration string
}

func (c HealthConfig) HeaderTimeout() time.Duration {
	return parseDurationOr(c.ReadHeaderTimeout, DefaultReadHeaderTimeout)
}

type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	TeamTTL  string `yaml:"team_ttl"` // Go duration string
}

func (c RedisConfig) TeamCacheTTL() time.Duration {
	return parseDurationOr(c.TeamTTL, DefaultTeamCacheTTL)
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug|info|warn|error
	Format string `yaml:"format"` // "" (text only) or "json" to add a JSON handler
}

// Load reads the YAML config file, overlays environment variables (a .env
// file is honored if present) and validates required credentials.
// A missing config file is not an error; defaults apply.
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load()

	config := &Config{}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config.applyDefaults()
	config.applyEnv()

	if config.APIFootball.APIKey == "" {
		return nil, fmt.Errorf("APIFOOTBALL_KEY is not set")
	}
	if config.Telegram.Token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is not set")
	}

	return config, nil
}

func (c *Config) applyDefaults() {
	if c.APIFootball.BaseURL == "" {
		c.APIFootball.BaseURL = DefaultBaseURL
	}
	if c.APIFootball.BookmakerID == 0 {
		c.APIFootball.BookmakerID = DefaultBookmakerID
	}
	if c.Telegram.UpdateTimeout <= 0 {
		c.Telegram.UpdateTimeout = DefaultUpdateTimeout
	}
	if c.Health.Port == 0 {
		c.Health.Port = DefaultHealthPort
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

func (c *Config) applyEnv() {
	c.APIFootball.APIKey = os.Getenv("APIFOOTBALL_KEY")
	c.Telegram.Token = os.Getenv("TELEGRAM_BOT_TOKEN")

	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			c.Health.Port = port
		}
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Enabled = true
		c.Redis.Addr = v
	}
}

func parseDurationOr(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
