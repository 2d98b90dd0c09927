// Package config provides configuration structures for the CAMPUS Buzz API.
// Settings are read through viper from defaults, an optional YAML file and
// CAMPUS_BUZZ_* environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. CAMPUS_BUZZ_SERVER_PORT.
const EnvPrefix = "CAMPUS_BUZZ"

// ServerSettings configures the HTTP listener.
type ServerSettings struct {
	Port            string        `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"`             // gin mode: "debug", "release" or "test"
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`  // CORS origins; "*" allows any
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`   // Request body limit
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"` // Grace period for in-flight requests
}

// DatabaseSettings configures the SQLite database.
type DatabaseSettings struct {
	Path string `mapstructure:"path"` // File path, or ":memory:"
	Seed bool   `mapstructure:"seed"` // Insert default categories, users and sample content on first start
}

// AuthSettings configures token issuance and login throttling.
type AuthSettings struct {
	JWTSecret      string        `mapstructure:"jwt_secret"`
	TokenTTL       time.Duration `mapstructure:"token_ttl"`
	Issuer         string        `mapstructure:"issuer"`
	BcryptCost     int           `mapstructure:"bcrypt_cost"`
	LoginRateLimit float64       `mapstructure:"login_rate_limit"` // Login attempts per second per client IP
	LoginBurst     int           `mapstructure:"login_burst"`
}

// LoggerSettings configures the zap logger.
type LoggerSettings struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"` // "console" or "json"
	File       string `mapstructure:"file"`   // Optional rotated JSON log file
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// Settings contains all configuration of the service.
type Settings struct {
	Server   ServerSettings   `mapstructure:"server"`
	Database DatabaseSettings `mapstructure:"database"`
	Auth     AuthSettings     `mapstructure:"auth"`
	Logger   LoggerSettings   `mapstructure:"logger"`
}

// SetDefaults registers default values for every setting.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "5000")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:5173", "http://localhost:3000", "http://127.0.0.1:5173"})
	v.SetDefault("server.max_body_bytes", 10<<20)
	v.SetDefault("server.shutdown_timeout", "10s")

	v.SetDefault("database.path", "./campus_buzz.sqlite")
	v.SetDefault("database.seed", true)

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", "168h")
	v.SetDefault("auth.issuer", "campus-buzz")
	v.SetDefault("auth.bcrypt_cost", 10)
	v.SetDefault("auth.login_rate_limit", 1.0)
	v.SetDefault("auth.login_burst", 5)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.file", "")
	v.SetDefault("logger.max_size_mb", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age_days", 30)
}

// Load builds Settings from defaults, the optional config file and the environment.
// A missing file is not an error when configFile is empty.
func Load(v *viper.Viper, configFile string) (*Settings, error) {
	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("campus_buzz")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if problems := settings.Validate(); len(problems) > 0 {
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return &settings, nil
}

// Default returns the settings obtained from defaults alone.
func Default() *Settings {
	v := viper.New()
	SetDefaults(v)

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		// Defaults are static; failing here is a programming error.
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &settings
}

// Validate checks required fields and sane values and returns one message per problem.
func (s *Settings) Validate() []string {
	var problems []string

	if strings.TrimSpace(s.Server.Port) == "" {
		problems = append(problems, "server.port is required")
	}
	switch s.Server.Mode {
	case "debug", "release", "test":
	default:
		problems = append(problems, "server.mode must be one of debug, release, test")
	}
	if s.Server.MaxBodyBytes <= 0 {
		problems = append(problems, "server.max_body_bytes must be positive")
	}

	if strings.TrimSpace(s.Database.Path) == "" {
		problems = append(problems, "database.path is required")
	}

	if len(s.Auth.JWTSecret) < 16 {
		problems = append(problems, "auth.jwt_secret must be at least 16 characters (set CAMPUS_BUZZ_AUTH_JWT_SECRET)")
	}
	if s.Auth.TokenTTL <= 0 {
		problems = append(problems, "auth.token_ttl must be positive")
	}
	if s.Auth.BcryptCost < 4 || s.Auth.BcryptCost > 31 {
		problems = append(problems, "auth.bcrypt_cost must be between 4 and 31")
	}
	if s.Auth.LoginRateLimit <= 0 || s.Auth.LoginBurst <= 0 {
		problems = append(problems, "auth.login_rate_limit and auth.login_burst must be positive")
	}

	if s.Logger.Format != "console" && s.Logger.Format != "json" {
		problems = append(problems, "Invalid logger.format '"+s.Logger.Format+"' (must be 'console' or 'json')")
	}

	return problems
}
