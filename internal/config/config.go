package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Storage StorageConfig
	Logging LoggingConfig
	Rules   RulesConfig
}

type StorageConfig struct {
	// DataFile holds the membership collection between runs.
	DataFile string
}

type LoggingConfig struct {
	Level string
	File  string
}

type RulesConfig struct {
	// MinJoinYear is the earliest join year the club accepts.
	MinJoinYear int
	// StrictDates switches join-date validation from the historical
	// day-count table to real calendar validation.
	StrictDates bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Storage: StorageConfig{
			DataFile: getEnv("CLUB_DATA_FILE", "members.dat"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", "logs/clubman.log"),
		},
		Rules: RulesConfig{
			MinJoinYear: getEnvInt("CLUB_MIN_JOIN_YEAR", 1950),
			StrictDates: getEnvBool("CLUB_STRICT_DATES", false),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Storage.DataFile == "" {
		return fmt.Errorf("CLUB_DATA_FILE is required")
	}
	if c.Rules.MinJoinYear < 1 {
		return fmt.Errorf("CLUB_MIN_JOIN_YEAR must be positive")
	}
	if c.Rules.MinJoinYear > time.Now().Year() {
		return fmt.Errorf("CLUB_MIN_JOIN_YEAR cannot be in the future")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
