package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// Shared key kiosk and mobile clients present to mint worker tokens.
	// Empty disables the check for local development.
	TokenIssueKey string `mapstructure:"TOKEN_ISSUE_KEY"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Coverage policy defaults, used when a location does not override them
	DefaultRequiredCoverage    int `mapstructure:"DEFAULT_REQUIRED_COVERAGE"`
	DefaultMaxConcurrentBreaks int `mapstructure:"DEFAULT_MAX_CONCURRENT_BREAKS"`

	// Path to the optional per-location coverage policy file
	CoveragePolicyPath string `mapstructure:"COVERAGE_POLICY_PATH"`

	// Rate suggestion configuration
	BaseHourlyRate       float64 `mapstructure:"BASE_HOURLY_RATE"`
	SupervisorHourlyRate float64 `mapstructure:"SUPERVISOR_HOURLY_RATE"`
	LeadRatePremium      float64 `mapstructure:"LEAD_RATE_PREMIUM"`
	ManagerRatePremium   float64 `mapstructure:"MANAGER_RATE_PREMIUM"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7010")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "staffing")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")
	viper.SetDefault("TOKEN_ISSUE_KEY", "")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Coverage policy defaults
	viper.SetDefault("DEFAULT_REQUIRED_COVERAGE", 1)
	viper.SetDefault("DEFAULT_MAX_CONCURRENT_BREAKS", 2)
	viper.SetDefault("COVERAGE_POLICY_PATH", "config/coverage.yaml")

	// Rate suggestion defaults
	viper.SetDefault("BASE_HOURLY_RATE", 16.50)
	viper.SetDefault("SUPERVISOR_HOURLY_RATE", 24.00)
	viper.SetDefault("LEAD_RATE_PREMIUM", 2.50)
	viper.SetDefault("MANAGER_RATE_PREMIUM", 6.00)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if config.TokenIssueKey == "" {
			return fmt.Errorf("TOKEN_ISSUE_KEY must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.DefaultRequiredCoverage < 0 || config.DefaultMaxConcurrentBreaks < 0 {
		return fmt.Errorf("coverage policy defaults must be non-negative")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
