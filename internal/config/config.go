package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig     `mapstructure:"server"`
	Clockodo    ClockodoConfig   `mapstructure:"clockodo"`
	Compliance  ComplianceConfig `mapstructure:"compliance"`
	Logger      LoggerConfig     `mapstructure:"logger"`
	Permissions Permissions      `mapstructure:"permissions"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// ClockodoConfig holds the Clockodo API credentials and endpoint.
type ClockodoConfig struct {
	APIUser            string        `mapstructure:"api_user"`
	APIKey             string        `mapstructure:"api_key"`
	BaseURL            string        `mapstructure:"base_url"`
	UserAgent          string        `mapstructure:"user_agent"`
	ExternalAppContact string        `mapstructure:"external_app_contact"`
	APITimeout         time.Duration `mapstructure:"api_timeout"`
}

// ComplianceConfig holds the default thresholds for HR compliance
// checks. Callers may override them per request.
type ComplianceConfig struct {
	MaxOvertimeHours     float64 `mapstructure:"max_overtime_hours"`
	MinVacationDays      float64 `mapstructure:"min_vacation_days"`
	MaxVacationRemaining float64 `mapstructure:"max_vacation_remaining"`
}

// LoggerConfig holds logger configuration.
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	OutputPath string `mapstructure:"output_path"`
	Format     string `mapstructure:"format"`
}

// Load reads configuration from an optional YAML file, a .env file in
// the working directory when present, and CLOCKODO_* environment
// variables. The permission set is resolved here, once; the rest of
// the program receives it as a value and never reads ambient state.
func Load(configPath string) (*Config, error) {
	// Missing .env is fine; explicit env vars still apply.
	_ = gotenv.Load()

	v := viper.New()
	setDefaults(v)
	bindEnvVars(v)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Permissions = resolvePermissions(v)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)

	v.SetDefault("clockodo.base_url", "https://my.clockodo.com/api/")
	v.SetDefault("clockodo.api_timeout", 30*time.Second)

	v.SetDefault("compliance.max_overtime_hours", 80.0)
	v.SetDefault("compliance.min_vacation_days", 10.0)
	v.SetDefault("compliance.max_vacation_remaining", 20.0)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.output_path", "stdout")
	v.SetDefault("logger.format", "console")

	v.SetDefault("permissions.preset", "")
	v.SetDefault("permissions.hr_readonly", true)
	v.SetDefault("permissions.user_read", false)
	v.SetDefault("permissions.user_edit", false)
	v.SetDefault("permissions.admin_read", false)
	v.SetDefault("permissions.admin_edit", false)
}

func bindEnvVars(v *viper.Viper) {
	bindings := map[string]string{
		"clockodo.api_user":             "CLOCKODO_API_USER",
		"clockodo.api_key":              "CLOCKODO_API_KEY",
		"clockodo.base_url":             "CLOCKODO_BASE_URL",
		"clockodo.user_agent":           "CLOCKODO_USER_AGENT",
		"clockodo.external_app_contact": "CLOCKODO_EXTERNAL_APP_CONTACT",

		"permissions.preset":      "CLOCKODO_BRIDGE_PRESET",
		"permissions.hr_readonly": "CLOCKODO_BRIDGE_ENABLE_HR_READONLY",
		"permissions.user_read":   "CLOCKODO_BRIDGE_ENABLE_USER_READ",
		"permissions.user_edit":   "CLOCKODO_BRIDGE_ENABLE_USER_EDIT",
		"permissions.admin_read":  "CLOCKODO_BRIDGE_ENABLE_ADMIN_READ",
		"permissions.admin_edit":  "CLOCKODO_BRIDGE_ENABLE_ADMIN_EDIT",
	}
	for key, env := range bindings {
		// BindEnv only errors on an empty key, which cannot happen here.
		_ = v.BindEnv(key, env)
	}
}

// Validate checks the configuration for required values.
func (c *Config) Validate() error {
	if c.Clockodo.APIUser == "" {
		return fmt.Errorf("clockodo.api_user (CLOCKODO_API_USER) is required")
	}
	if c.Clockodo.APIKey == "" {
		return fmt.Errorf("clockodo.api_key (CLOCKODO_API_KEY) is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	return nil
}
