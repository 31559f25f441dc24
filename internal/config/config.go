package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all configuration for the clinic client
type Config struct {
	APIURL            string
	SessionFile       string
	Lang              string
	Timezone          string
	RequestTimeout    time.Duration
	Environment       string
	LogLevel          string
	DoctorEmailDomain string
	DevServer         DevServerConfig
}

// DevServerConfig holds the settings of the development backend
type DevServerConfig struct {
	Port                 string
	Origin               string
	DatabaseDSN          string
	JWTSecret            string
	JWTExpirationMinutes int
	AdminEmail           string
	AdminPassword        string
}

// flagBindings maps config keys to the command-line flags that override them.
var flagBindings = map[string]string{
	"CLINIC_API_URL":      "api-url",
	"CLINIC_SESSION_FILE": "session",
	"CLINIC_LANG":         "lang",
	"CLINIC_TZ":           "tz",
	"CLINIC_LOG_LEVEL":    "log-level",
	"DEV_PORT":            "port",
	"DEV_DB_DSN":          "db-dsn",
}

// LoadConfig reads configuration from defaults, the environment and, when
// flags is non-nil, any flags the user set explicitly.
func LoadConfig(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("CLINIC_API_URL", "http://localhost:8000")
	v.SetDefault("CLINIC_SESSION_FILE", defaultSessionFile())
	v.SetDefault("CLINIC_LANG", "pl")
	v.SetDefault("CLINIC_TZ", "")
	v.SetDefault("CLINIC_REQUEST_TIMEOUT_SECONDS", "15")
	v.SetDefault("CLINIC_ENV", "production")
	v.SetDefault("CLINIC_LOG_LEVEL", "warn")
	v.SetDefault("CLINIC_DOCTOR_EMAIL_DOMAIN", "@med-clinic.pl")
	v.SetDefault("DEV_PORT", "8000")
	v.SetDefault("DEV_ORIGIN", "http://localhost:4200")
	v.SetDefault("DEV_DB_DSN", "")
	v.SetDefault("DEV_JWT_SECRET", "temporary_dev_secret_key_123")
	v.SetDefault("DEV_JWT_EXPIRATION_MINUTES", "60")
	v.SetDefault("DEV_ADMIN_EMAIL", "admin@med-clinic.pl")
	v.SetDefault("DEV_ADMIN_PASSWORD", "admin1234")
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range flagBindings {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag --%s: %w", name, err)
			}
		}
	}

	timeoutSeconds, err := strconv.Atoi(v.GetString("CLINIC_REQUEST_TIMEOUT_SECONDS"))
	if err != nil {
		return nil, fmt.Errorf("invalid CLINIC_REQUEST_TIMEOUT_SECONDS: %w", err)
	}
	if timeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid CLINIC_REQUEST_TIMEOUT_SECONDS: must be positive")
	}

	jwtExpMinutes, err := strconv.Atoi(v.GetString("DEV_JWT_EXPIRATION_MINUTES"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEV_JWT_EXPIRATION_MINUTES: %w", err)
	}

	cfg := &Config{
		APIURL:            v.GetString("CLINIC_API_URL"),
		SessionFile:       v.GetString("CLINIC_SESSION_FILE"),
		Lang:              v.GetString("CLINIC_LANG"),
		Timezone:          v.GetString("CLINIC_TZ"),
		RequestTimeout:    time.Duration(timeoutSeconds) * time.Second,
		Environment:       v.GetString("CLINIC_ENV"),
		LogLevel:          v.GetString("CLINIC_LOG_LEVEL"),
		DoctorEmailDomain: v.GetString("CLINIC_DOCTOR_EMAIL_DOMAIN"),
		DevServer: DevServerConfig{
			Port:                 v.GetString("DEV_PORT"),
			Origin:               v.GetString("DEV_ORIGIN"),
			DatabaseDSN:          v.GetString("DEV_DB_DSN"),
			JWTSecret:            v.GetString("DEV_JWT_SECRET"),
			JWTExpirationMinutes: jwtExpMinutes,
			AdminEmail:           v.GetString("DEV_ADMIN_EMAIL"),
			AdminPassword:        v.GetString("DEV_ADMIN_PASSWORD"),
		},
	}

	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Location returns the zone used to read and write local date-times.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid CLINIC_TZ: %w", err)
	}
	return loc, nil
}

// IsDevelopment reports whether human-readable logging is wanted.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".medclinic-session.json"
	}
	return filepath.Join(dir, "medclinic", "session.json")
}
