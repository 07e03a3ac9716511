package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"hrdash/internal/errors"
)

// DefaultDataFileName is looked up next to the executable when DATA_FILE is unset
const DefaultDataFileName = "employee_data_cleaned.csv"

// Config represents the complete application configuration
type Config struct {
	Server  ServerConfig
	Data    DataConfig
	Charts  ChartConfig
	Metrics MetricsConfig
	Log     LogConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port               string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	CORSAllowedOrigins []string
}

// DataConfig holds dataset source settings
type DataConfig struct {
	File       string
	SampleSeed int64
	SampleSize int
}

// ChartConfig holds chart rendering settings
type ChartConfig struct {
	HistogramBins int
}

// MetricsConfig holds Prometheus exposition settings
type MetricsConfig struct {
	Enabled bool
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	seed, err := getEnvInt64("SAMPLE_SEED", 42)
	if err != nil {
		return nil, err
	}
	size, err := getEnvInt("SAMPLE_SIZE", 1000)
	if err != nil {
		return nil, err
	}
	bins, err := getEnvInt("HISTOGRAM_BINS", 20)
	if err != nil {
		return nil, err
	}
	readTimeout, err := getEnvDuration("READ_TIMEOUT", 15*time.Second)
	if err != nil {
		return nil, err
	}
	writeTimeout, err := getEnvDuration("WRITE_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}

	config := &Config{
		Server: ServerConfig{
			Port:               getEnvOrDefault("PORT", "8080"),
			ReadTimeout:        readTimeout,
			WriteTimeout:       writeTimeout,
			CORSAllowedOrigins: splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*")),
		},
		Data: DataConfig{
			File:       getEnvOrDefault("DATA_FILE", defaultDataFile()),
			SampleSeed: seed,
			SampleSize: size,
		},
		Charts: ChartConfig{
			HistogramBins: bins,
		},
		Metrics: MetricsConfig{
			Enabled: getEnvBoolOrDefault("METRICS_ENABLED", true),
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "INFO"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("PORT must not be empty")
	}
	if config.Data.File == "" {
		return errors.ConfigInvalid("DATA_FILE must not be empty")
	}
	if config.Data.SampleSize <= 0 {
		return errors.ConfigInvalid("SAMPLE_SIZE must be positive")
	}
	if config.Charts.HistogramBins <= 0 {
		return errors.ConfigInvalid("HISTOGRAM_BINS must be positive")
	}
	return nil
}

// defaultDataFile resolves the data file next to the running binary
func defaultDataFile() string {
	exe, err := os.Executable()
	if err != nil {
		return DefaultDataFileName
	}
	return filepath.Join(filepath.Dir(exe), DefaultDataFileName)
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.ConfigInvalid(key + " must be an integer")
	}
	return intValue, nil
}

func getEnvInt64(key string, defaultValue int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intValue, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, errors.ConfigInvalid(key + " must be an integer")
	}
	return intValue, nil
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return 0, errors.ConfigInvalid(key + " must be a duration such as 15s")
	}
	return duration, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
