// SPDX-License-Identifier: MIT

// Package config loads executable settings from the environment and an
// optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/lvtext/alphabet"
)

type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

// Report formats accepted by TEXTGEN_REPORT_FORMAT.
const (
	ReportNone = ""
	ReportYAML = "yaml"
	ReportCSV  = "csv"
)

type AppConfig struct {
	Env                Environment
	LogLevel           string
	ServerPort         string
	HttpTimeoutSeconds int
	CORSOrigins        []string
}

// ModelConfig describes one generation run. Model 0 means every model.
type ModelConfig struct {
	AlphabetFile string
	Language     string
	InputFile    string
	Model        int
	Length       int
	Seed         int64
	OutputDir    string
	OutputName   string
	ReportFormat string
}

type Config struct {
	App   AppConfig
	Model ModelConfig
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	env := parseEnvironment(getEnv("APP_ENV", "development"))

	return &Config{
		App: AppConfig{
			Env:                env,
			LogLevel:           getLogLevel(env),
			ServerPort:         getEnv("APP_SERVER_PORT", "8080"),
			HttpTimeoutSeconds: getEnvInt("APP_HTTP_TIMEOUT_SECONDS", 30),
			CORSOrigins:        getEnvList("APP_CORS_ORIGINS", []string{"*"}),
		},
		Model: ModelConfig{
			AlphabetFile: getEnv("TEXTGEN_ALPHABET_FILE", "ABCs.txt"),
			Language:     getEnv("TEXTGEN_LANGUAGE", string(alphabet.DefaultLanguage)),
			InputFile:    getEnv("TEXTGEN_INPUT_FILE", ""),
			Model:        getEnvInt("TEXTGEN_MODEL", 1),
			Length:       getEnvInt("TEXTGEN_LENGTH", 200),
			Seed:         getEnvInt64("TEXTGEN_SEED", 0),
			OutputDir:    getEnv("TEXTGEN_OUTPUT_DIR", "."),
			OutputName:   getEnv("TEXTGEN_OUTPUT_NAME", "generated"),
			ReportFormat: strings.ToLower(getEnv("TEXTGEN_REPORT_FORMAT", ReportNone)),
		},
	}, nil
}

func (c *Config) Validate() error {
	if c.Model.AlphabetFile == "" || c.Model.InputFile == "" {
		return fmt.Errorf("TEXTGEN_ALPHABET_FILE and TEXTGEN_INPUT_FILE are required")
	}
	if _, err := alphabet.ParseLanguageName(c.Model.Language); err != nil {
		return fmt.Errorf("TEXTGEN_LANGUAGE: %w", err)
	}
	if c.Model.Model < 0 || c.Model.Model > 3 {
		return fmt.Errorf("TEXTGEN_MODEL must be 1, 2, 3 or 0 for all models, got %d", c.Model.Model)
	}
	if c.Model.Length <= 1 {
		return fmt.Errorf("TEXTGEN_LENGTH must be greater than 1, got %d", c.Model.Length)
	}
	switch c.Model.ReportFormat {
	case ReportNone, ReportYAML, ReportCSV:
	default:
		return fmt.Errorf("TEXTGEN_REPORT_FORMAT must be yaml or csv, got %q", c.Model.ReportFormat)
	}
	return nil
}

// ValidateServer checks the settings the HTTP server needs.
func (c *Config) ValidateServer() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if _, err := strconv.Atoi(c.App.ServerPort); err != nil {
		return fmt.Errorf("APP_SERVER_PORT must be numeric, got %q", c.App.ServerPort)
	}
	return nil
}

func parseEnvironment(envStr string) Environment {
	env := Environment(strings.ToLower(envStr))

	switch env {
	case Development, Production:
		return env
	default:
		return Development
	}
}

func getLogLevel(env Environment) string {
	if env == Production {
		return getEnv("APP_LOG_LEVEL", "info")
	}

	return getEnv("APP_LOG_LEVEL", "debug")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvList splits a comma-separated value, dropping empty entries.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
