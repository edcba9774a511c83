package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"
)

// Driver identifies the relational store backing the service
type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Config holds all configuration options for the task service
type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Validation  ValidationConfig
	Application ApplicationConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr           string        `env:"TASKS_HTTP_ADDR"`
	ReadTimeout    time.Duration `env:"TASKS_HTTP_READ_TIMEOUT"`
	WriteTimeout   time.Duration `env:"TASKS_HTTP_WRITE_TIMEOUT"`
	RequestTimeout time.Duration `env:"TASKS_HTTP_REQUEST_TIMEOUT"`
}

// DatabaseConfig holds store connection parameters
type DatabaseConfig struct {
	Driver       Driver        `env:"TASKS_DB_DRIVER"`
	Host         string        `env:"TASKS_DB_HOST"`
	Port         int           `env:"TASKS_DB_PORT"`
	User         string        `env:"TASKS_DB_USER"`
	Password     string        `env:"TASKS_DB_PASSWORD"`
	Name         string        `env:"TASKS_DB_NAME"`
	SSLMode      string        `env:"TASKS_DB_SSLMODE"`
	Path         string        `env:"TASKS_DB_PATH"`
	QueryTimeout time.Duration `env:"TASKS_DB_QUERY_TIMEOUT"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TaskNameMinLength int `env:"TASKS_VALIDATION_TASK_NAME_MIN"`
	TaskNameMaxLength int `env:"TASKS_VALIDATION_TASK_NAME_MAX"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Verbose bool `env:"TASKS_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:           ":8080",
			ReadTimeout:    10 * time.Second,
			WriteTimeout:   10 * time.Second,
			RequestTimeout: 5 * time.Second,
		},
		Database: DatabaseConfig{
			Driver:       DriverSQLite,
			Host:         "localhost",
			Port:         5432,
			User:         "tasks",
			Password:     "",
			Name:         "tasks",
			SSLMode:      "disable",
			Path:         "tasks.db",
			QueryTimeout: 10 * time.Second,
		},
		Validation: ValidationConfig{
			TaskNameMinLength: 1,
			TaskNameMaxLength: 100,
		},
		Application: ApplicationConfig{
			Verbose: false,
		},
	}
}

// PostgresDSN assembles the postgres connection string from the individual
// connection parameters.
func (c *Config) PostgresDSN() string {
	hostPort := net.JoinHostPort(c.Database.Host, strconv.Itoa(c.Database.Port))
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		c.Database.User, c.Database.Password, hostPort, c.Database.Name, c.Database.SSLMode)
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Database.QueryTimeout
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Server configuration
	if addr := os.Getenv("TASKS_HTTP_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if timeout := os.Getenv("TASKS_HTTP_READ_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Server.ReadTimeout = d
		}
	}
	if timeout := os.Getenv("TASKS_HTTP_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Server.WriteTimeout = d
		}
	}
	if timeout := os.Getenv("TASKS_HTTP_REQUEST_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Server.RequestTimeout = d
		}
	}

	// Database configuration
	if driver := os.Getenv("TASKS_DB_DRIVER"); driver != "" {
		c.Database.Driver = Driver(driver)
	}
	if host := os.Getenv("TASKS_DB_HOST"); host != "" {
		c.Database.Host = host
	}
	if port := os.Getenv("TASKS_DB_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Database.Port = p
		}
	}
	if user := os.Getenv("TASKS_DB_USER"); user != "" {
		c.Database.User = user
	}
	if password := os.Getenv("TASKS_DB_PASSWORD"); password != "" {
		c.Database.Password = password
	}
	if name := os.Getenv("TASKS_DB_NAME"); name != "" {
		c.Database.Name = name
	}
	if sslMode := os.Getenv("TASKS_DB_SSLMODE"); sslMode != "" {
		c.Database.SSLMode = sslMode
	}
	if path := os.Getenv("TASKS_DB_PATH"); path != "" {
		c.Database.Path = path
	}
	if timeout := os.Getenv("TASKS_DB_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.QueryTimeout = d
		}
	}

	// Validation configuration
	if minLen := os.Getenv("TASKS_VALIDATION_TASK_NAME_MIN"); minLen != "" {
		if n, err := strconv.Atoi(minLen); err == nil {
			c.Validation.TaskNameMinLength = n
		}
	}
	if maxLen := os.Getenv("TASKS_VALIDATION_TASK_NAME_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.TaskNameMaxLength = n
		}
	}

	// Application configuration
	if verbose := os.Getenv("TASKS_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return &ConfigError{Field: "server.addr", Message: "listen address cannot be empty"}
	}
	if c.Server.ReadTimeout <= 0 {
		return &ConfigError{Field: "server.read_timeout", Message: "read timeout must be positive"}
	}
	if c.Server.WriteTimeout <= 0 {
		return &ConfigError{Field: "server.write_timeout", Message: "write timeout must be positive"}
	}
	if c.Server.RequestTimeout <= 0 {
		return &ConfigError{Field: "server.request_timeout", Message: "request timeout must be positive"}
	}

	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Path == "" {
			return &ConfigError{Field: "database.path", Message: "database path cannot be empty"}
		}
	case DriverPostgres:
		if c.Database.Host == "" {
			return &ConfigError{Field: "database.host", Message: "database host cannot be empty"}
		}
		if c.Database.Port <= 0 || c.Database.Port > 65535 {
			return &ConfigError{Field: "database.port", Message: "database port must be between 1 and 65535"}
		}
		if c.Database.User == "" {
			return &ConfigError{Field: "database.user", Message: "database user cannot be empty"}
		}
		if c.Database.Name == "" {
			return &ConfigError{Field: "database.name", Message: "database name cannot be empty"}
		}
	default:
		return &ConfigError{Field: "database.driver", Message: "driver must be sqlite or postgres"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}

	if c.Validation.TaskNameMinLength < 1 {
		return &ConfigError{Field: "validation.task_name_min_length", Message: "task name minimum length must be at least 1"}
	}
	if c.Validation.TaskNameMaxLength < c.Validation.TaskNameMinLength {
		return &ConfigError{Field: "validation.task_name_max_length", Message: "task name maximum length must be greater than minimum length"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
