// Package config provides configuration loading for the marketplace services.
package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration for both services.
type Config struct {
	App       AppConfig      `yaml:"app"`
	Inference ServerConfig   `yaml:"inference"`
	Waitlist  ServerConfig   `yaml:"waitlist"`
	Database  DatabaseConfig `yaml:"database"`
	SMTP      SMTPConfig     `yaml:"smtp"`
	Logging   LoggingConfig  `yaml:"logging"`
}

// AppConfig holds application metadata.
type AppConfig struct {
	Name    string `yaml:"name" env:"NEXUS_APP_NAME"`
	Version string `yaml:"version" env:"NEXUS_APP_VERSION"`
}

// ServerConfig holds HTTP server configuration for one service. The struct
// is shared by both services, so per-service overrides come from YAML or
// command-line flags rather than env tags.
type ServerConfig struct {
	Address      string        `yaml:"address"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	EnableCORS   bool          `yaml:"enable_cors"`
}

// DatabaseConfig holds connection settings for the hosted waitlist store.
// URL takes precedence over the discrete fields when set; Supabase hands out
// a full Postgres DSN.
type DatabaseConfig struct {
	Driver          string `yaml:"driver" env:"NEXUS_DB_DRIVER"`
	URL             string `yaml:"url" env:"SUPABASE_DB_URL"`
	Host            string `yaml:"host" env:"NEXUS_DB_HOST"`
	Port            int    `yaml:"port" env:"NEXUS_DB_PORT"`
	Username        string `yaml:"username" env:"NEXUS_DB_USERNAME"`
	Password        string `yaml:"password" env:"NEXUS_DB_PASSWORD"`
	Database        string `yaml:"database" env:"NEXUS_DB_NAME"`
	Charset         string `yaml:"charset"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime"` // seconds
}

// SMTPConfig holds mail transport settings. Username and Password left empty
// disable real transmission; sends become logged no-ops.
type SMTPConfig struct {
	Server   string `yaml:"server" env:"SMTP_SERVER"`
	Port     int    `yaml:"port" env:"SMTP_PORT"`
	Username string `yaml:"username" env:"SMTP_USERNAME"`
	Password string `yaml:"password" env:"SMTP_PASSWORD"`
	From     string `yaml:"from" env:"FROM_EMAIL"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string `yaml:"level" env:"NEXUS_LOG_LEVEL"`
	Format     string `yaml:"format" env:"NEXUS_LOG_FORMAT"`
	Output     string `yaml:"output" env:"NEXUS_LOG_OUTPUT"`
	FilePath   string `yaml:"file_path" env:"NEXUS_LOG_FILE"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:    "AI Nexus",
			Version: "1.0.0",
		},
		Inference: ServerConfig{
			Address:      ":8000",
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			EnableCORS:   true,
		},
		Waitlist: ServerConfig{
			Address:      ":8001",
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			EnableCORS:   true,
		},
		Database: DatabaseConfig{
			Driver:          "postgres",
			Host:            "localhost",
			Port:            5432,
			Username:        "postgres",
			Database:        "ainexus",
			Charset:         "utf8mb4",
			MaxIdleConns:    5,
			MaxOpenConns:    20,
			ConnMaxLifetime: 3600,
		},
		SMTP: SMTPConfig{
			Server: "smtp.gmail.com",
			Port:   587,
			From:   "noreply@ainexus.com",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Output: "stdout",
		},
	}
}

// Loader handles configuration loading from multiple sources.
type Loader struct {
	configPath string
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// WithConfigPath sets the path to the YAML configuration file.
func (l *Loader) WithConfigPath(path string) *Loader {
	l.configPath = path
	return l
}

// Load loads configuration with precedence:
// defaults < YAML file < environment variables
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	if l.configPath != "" {
		if err := l.loadFromFile(cfg); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := applyEnvToStruct(reflect.ValueOf(cfg).Elem()); err != nil {
		return nil, fmt.Errorf("apply env overrides: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads configuration from a YAML file. A missing file is not
// an error; the defaults stand.
func (l *Loader) loadFromFile(cfg *Config) error {
	data, err := os.ReadFile(l.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	return nil
}

// applyEnvToStruct recursively applies environment variables to struct
// fields carrying an `env` tag.
func applyEnvToStruct(v reflect.Value) error {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		if field.Kind() == reflect.Struct && field.Type() != reflect.TypeOf(time.Duration(0)) {
			if err := applyEnvToStruct(field); err != nil {
				return err
			}
			continue
		}

		envTag := fieldType.Tag.Get("env")
		if envTag == "" {
			continue
		}

		envValue := os.Getenv(envTag)
		if envValue == "" {
			continue
		}

		if err := setFieldValue(field, envValue); err != nil {
			return fmt.Errorf("set field %s from env %s: %w", fieldType.Name, envTag, err)
		}
	}

	return nil
}

// setFieldValue sets a reflect.Value from a string value.
func setFieldValue(field reflect.Value, value string) error {
	if !field.CanSet() {
		return fmt.Errorf("field cannot be set")
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if field.Type() == reflect.TypeOf(time.Duration(0)) {
			d, err := time.ParseDuration(value)
			if err != nil {
				return fmt.Errorf("invalid duration: %w", err)
			}
			field.SetInt(int64(d))
		} else {
			i, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer: %w", err)
			}
			field.SetInt(i)
		}

	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean: %w", err)
		}
		field.SetBool(b)

	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid float: %w", err)
		}
		field.SetFloat(f)

	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}

	return nil
}

// Serialize serializes the configuration to YAML bytes.
func (c *Config) Serialize() ([]byte, error) {
	return yaml.Marshal(c)
}

// ParseConfig parses a YAML configuration from bytes on top of the defaults.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a YAML file path.
func LoadFromFile(path string) (*Config, error) {
	return NewLoader().WithConfigPath(path).Load()
}
