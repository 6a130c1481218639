package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. AVO_JWT_SECRET
const EnvPrefix = "AVO"

const defaultConfigPath = "config/config.yml"

type AppConfig struct {
	Port            int      `yaml:"port" envconfig:"PORT"`
	GinMode         string   `yaml:"gin_mode" envconfig:"GIN_MODE"`
	LogLevel        string   `yaml:"log_level" envconfig:"LOG_LEVEL"`
	LogFormat       string   `yaml:"log_format" envconfig:"LOG_FORMAT"`
	LegacyStatus200 bool     `yaml:"legacy_status_200" envconfig:"LEGACY_STATUS_200"`
	CORSOrigins     []string `yaml:"cors_origins" envconfig:"CORS_ORIGINS"`
	ReadTimeout     string   `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout    string   `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
}

type DatabaseConfig struct {
	DSN             string `yaml:"dsn" envconfig:"DSN"`
	AutoMigrate     bool   `yaml:"auto_migrate" envconfig:"AUTO_MIGRATE"`
	MaxOpenConns    int    `yaml:"max_open_conns" envconfig:"MAX_OPEN_CONNS"`
	MaxIdleConns    int    `yaml:"max_idle_conns" envconfig:"MAX_IDLE_CONNS"`
	ConnMaxLifetime string `yaml:"conn_max_lifetime" envconfig:"CONN_MAX_LIFETIME"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" envconfig:"ADDR"`
	Password string `yaml:"password" envconfig:"PASSWORD"`
	DB       int    `yaml:"db" envconfig:"DB"`
}

type JWTConfig struct {
	Secret       string `yaml:"secret" envconfig:"SECRET"`
	Issuer       string `yaml:"issuer" envconfig:"ISSUER"`
	SignInTTL    string `yaml:"signin_ttl" envconfig:"SIGNIN_TTL"`
	ElevationTTL string `yaml:"elevation_ttl" envconfig:"ELEVATION_TTL"`
}

type PasswordConfig struct {
	BcryptCost int `yaml:"bcrypt_cost" envconfig:"BCRYPT_COST"`
}

type SMTPConfig struct {
	Host     string `yaml:"host" envconfig:"HOST"`
	Port     int    `yaml:"port" envconfig:"PORT"`
	Username string `yaml:"username" envconfig:"USERNAME"`
	Password string `yaml:"password" envconfig:"PASSWORD"`
	From     string `yaml:"from" envconfig:"FROM"`
}

type TwilioConfig struct {
	Enabled    bool   `yaml:"enabled" envconfig:"ENABLED"`
	AccountSID string `yaml:"account_sid" envconfig:"ACCOUNT_SID"`
	AuthToken  string `yaml:"auth_token" envconfig:"AUTH_TOKEN"`
	FromNumber string `yaml:"from_number" envconfig:"FROM_NUMBER"`
}

type CasbinConfig struct {
	// Persist stores policy rows in the database through the gorm adapter
	Persist bool `yaml:"persist" envconfig:"PERSIST"`
}

type RateLimitConfig struct {
	Window     string `yaml:"window" envconfig:"WINDOW"`
	IPLimit    int    `yaml:"ip_limit" envconfig:"IP_LIMIT"`
	EmailLimit int    `yaml:"email_limit" envconfig:"EMAIL_LIMIT"`
}

type ConfigFile struct {
	App       AppConfig       `yaml:"app"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	JWT       JWTConfig       `yaml:"jwt"`
	Password  PasswordConfig  `yaml:"password"`
	SMTP      SMTPConfig      `yaml:"smtp"`
	Twilio    TwilioConfig    `yaml:"twilio"`
	Casbin    CasbinConfig    `yaml:"casbin"`
	RateLimit RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

type Config struct {
	Port            string
	GinMode         string
	LogLevel        string
	LogFormat       string
	LegacyStatus200 bool
	CORSOrigins     []string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration

	DSN             string
	AutoMigrate     bool
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret    string
	JWTIssuer    string
	SignInTTL    time.Duration
	ElevationTTL time.Duration

	BcryptCost int

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	TwilioEnabled bool
	TwilioSID     string
	TwilioToken   string
	TwilioFrom    string

	CasbinPersist bool

	RateLimitWindow time.Duration
	RateLimitIP     int
	RateLimitEmail  int
}

// Defaults returns the settings used when neither the file nor the environment sets a value
func Defaults() ConfigFile {
	return ConfigFile{
		App: AppConfig{
			Port:         8080,
			GinMode:      "release",
			LogLevel:     "info",
			LogFormat:    "json",
			CORSOrigins:  []string{"*"},
			ReadTimeout:  "15s",
			WriteTimeout: "15s",
		},
		Database: DatabaseConfig{
			MaxOpenConns:    20,
			MaxIdleConns:    10,
			ConnMaxLifetime: "1h",
		},
		JWT: JWTConfig{
			Issuer:       "avo",
			SignInTTL:    "24h",
			ElevationTTL: "168h",
		},
		Password: PasswordConfig{BcryptCost: 10},
		SMTP:     SMTPConfig{Port: 587},
		RateLimit: RateLimitConfig{
			Window:     "1m",
			IPLimit:    20,
			EmailLimit: 5,
		},
	}
}

// Load reads the YAML file named by CONFIG_FILE (config/config.yml by default),
// then applies AVO_* environment overrides. A missing file is not an error.
func Load() (*Config, error) {
	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = defaultConfigPath
	}
	return LoadFrom(path)
}

func LoadFrom(path string) (*Config, error) {
	file := Defaults()
	if err := loadConfigFile(path, &file); err != nil {
		return nil, err
	}
	if err := envconfig.Process(EnvPrefix, &file); err != nil {
		return nil, fmt.Errorf("parsing environment overrides: %w", err)
	}

	cfg, err := file.resolve()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadConfigFile(path string, into *ConfigFile) error {
	bytes, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not read config file at %s: %w", path, err)
	}
	if err := yaml.Unmarshal(bytes, into); err != nil {
		return fmt.Errorf("could not parse config yaml: %w", err)
	}
	return nil
}

func (f *ConfigFile) resolve() (*Config, error) {
	cfg := &Config{
		Port:            fmt.Sprintf("%d", f.App.Port),
		GinMode:         f.App.GinMode,
		LogLevel:        f.App.LogLevel,
		LogFormat:       f.App.LogFormat,
		LegacyStatus200: f.App.LegacyStatus200,
		CORSOrigins:     f.App.CORSOrigins,
		DSN:             f.Database.DSN,
		AutoMigrate:     f.Database.AutoMigrate,
		MaxOpenConns:    f.Database.MaxOpenConns,
		MaxIdleConns:    f.Database.MaxIdleConns,
		RedisAddr:       f.Redis.Addr,
		RedisPassword:   f.Redis.Password,
		RedisDB:         f.Redis.DB,
		JWTSecret:       f.JWT.Secret,
		JWTIssuer:       f.JWT.Issuer,
		BcryptCost:      f.Password.BcryptCost,
		SMTPHost:        f.SMTP.Host,
		SMTPPort:        f.SMTP.Port,
		SMTPUsername:    f.SMTP.Username,
		SMTPPassword:    f.SMTP.Password,
		SMTPFrom:        f.SMTP.From,
		TwilioEnabled:   f.Twilio.Enabled,
		TwilioSID:       f.Twilio.AccountSID,
		TwilioToken:     f.Twilio.AuthToken,
		TwilioFrom:      f.Twilio.FromNumber,
		CasbinPersist:   f.Casbin.Persist,
		RateLimitIP:     f.RateLimit.IPLimit,
		RateLimitEmail:  f.RateLimit.EmailLimit,
	}

	durations := []struct {
		name  string
		value string
		into  *time.Duration
	}{
		{"app read timeout", f.App.ReadTimeout, &cfg.ReadTimeout},
		{"app write timeout", f.App.WriteTimeout, &cfg.WriteTimeout},
		{"database conn max lifetime", f.Database.ConnMaxLifetime, &cfg.ConnMaxLifetime},
		{"JWT signin TTL", f.JWT.SignInTTL, &cfg.SignInTTL},
		{"JWT elevation TTL", f.JWT.ElevationTTL, &cfg.ElevationTTL},
		{"rate limit window", f.RateLimit.Window, &cfg.RateLimitWindow},
	}

	for _, d := range durations {
		if strings.TrimSpace(d.value) == "" {
			continue
		}
		parsed, err := time.ParseDuration(d.value)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", d.name, err)
		}
		*d.into = parsed
	}
	return cfg, nil
}

// Validate rejects settings the service cannot start with
func (c *Config) Validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return errors.New("jwt secret is required (AVO_JWT_SECRET)")
	}
	if c.SignInTTL <= 0 {
		return errors.New("jwt signin ttl must be positive")
	}
	if c.ElevationTTL <= 0 {
		return errors.New("jwt elevation ttl must be positive")
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("bcrypt cost %d out of range 4-31", c.BcryptCost)
	}
	if c.TwilioEnabled && (c.TwilioSID == "" || c.TwilioToken == "") {
		return errors.New("twilio enabled without account sid or auth token")
	}
	return nil
}

// RedisEnabled reports whether a Redis server is configured
func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}
