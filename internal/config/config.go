package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Database struct {
		Driver         string `yaml:"driver" env:"DB_DRIVER"`
		Host           string `yaml:"host" env:"DB_HOST"`
		Port           string `yaml:"port" env:"DB_PORT"`
		User           string `yaml:"user" env:"DB_USER"`
		Password       string `yaml:"password" env:"DB_PASSWORD"`
		DBName         string `yaml:"dbname" env:"DB_NAME"`
		SSLMode        string `yaml:"sslmode" env:"DB_SSLMODE"`
		Path           string `yaml:"path" env:"DB_PATH"`
		ConnectTimeout string `yaml:"connect_timeout" env:"DB_CONNECT_TIMEOUT"`
	} `yaml:"database"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// The file is optional; env vars alone are enough to run
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Database.Driver = DriverPostgres
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.DBName = "njit"
	config.Database.SSLMode = "disable"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	switch strings.ToLower(config.Database.Driver) {
	case DriverPostgres:
		if config.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if config.Database.DBName == "" {
			return fmt.Errorf("database name is required")
		}
	case DriverSQLite:
		if config.Database.Path == "" {
			return fmt.Errorf("database path is required for the sqlite driver")
		}
	case "":
		return fmt.Errorf("database driver is required")
	default:
		return fmt.Errorf("unsupported database driver %q", config.Database.Driver)
	}

	if config.Database.ConnectTimeout != "" {
		if _, err := time.ParseDuration(config.Database.ConnectTimeout); err != nil {
			return fmt.Errorf("invalid database connect timeout format: %w", err)
		}
	}

	return nil
}

// DatabaseDriver returns the normalized driver name
func (c *Config) DatabaseDriver() string {
	return strings.ToLower(c.Database.Driver)
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	dsn := url.URL{
		Scheme: "postgres",
		Host:   c.Database.Host + ":" + c.Database.Port,
		Path:   "/" + c.Database.DBName,
	}
	switch {
	case c.Database.User != "" && c.Database.Password != "":
		dsn.User = url.UserPassword(c.Database.User, c.Database.Password)
	case c.Database.User != "":
		dsn.User = url.User(c.Database.User)
	}

	query := url.Values{}
	query.Set("sslmode", sslMode)
	if d, err := time.ParseDuration(c.Database.ConnectTimeout); err == nil && d > 0 {
		// libpq wants whole seconds
		secs := int(d.Round(time.Second) / time.Second)
		if secs < 1 {
			secs = 1
		}
		query.Set("connect_timeout", fmt.Sprint(secs))
	}
	dsn.RawQuery = query.Encode()

	return dsn.String()
}
