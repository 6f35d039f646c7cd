// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Dataset struct {
		Delimiter    string `mapstructure:"delimiter" yaml:"delimiter"`
		StripHTML    bool   `mapstructure:"strip_html" yaml:"strip_html"`
		DropCategory string `mapstructure:"drop_category" yaml:"drop_category"`
	} `mapstructure:"dataset" yaml:"dataset"`

	Vectorizer struct {
		NgramMin    int `mapstructure:"ngram_min" yaml:"ngram_min"`
		NgramMax    int `mapstructure:"ngram_max" yaml:"ngram_max"`
		MinDF       int `mapstructure:"min_df" yaml:"min_df"`
		MaxFeatures int `mapstructure:"max_features" yaml:"max_features"`
	} `mapstructure:"vectorizer" yaml:"vectorizer"`

	Classifier struct {
		Kind string `mapstructure:"kind" yaml:"kind"`
	} `mapstructure:"classifier" yaml:"classifier"`

	Model struct {
		Path string `mapstructure:"path" yaml:"path"`
	} `mapstructure:"model" yaml:"model"`

	Experiment struct {
		Folds int   `mapstructure:"folds" yaml:"folds"`
		Seed  int64 `mapstructure:"seed" yaml:"seed"`
	} `mapstructure:"experiment" yaml:"experiment"`

	Review struct {
		ConfidenceThreshold float64 `mapstructure:"confidence_threshold" yaml:"confidence_threshold"`
	} `mapstructure:"review" yaml:"review"`

	AI struct {
		Enabled        bool   `mapstructure:"enabled" yaml:"enabled"`
		Model          string `mapstructure:"model" yaml:"model"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		APIKey         string `mapstructure:"api_key" yaml:"-"` // Never serialize API key
	} `mapstructure:"ai" yaml:"ai"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.prodclass")
	v.AddConfigPath(".prodclass")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("PRODCLASS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
		// Config file not found or invalid is OK, we'll use defaults and env vars
	}

	// 5. Handle special case for API key (always from env, not prefixed)
	if err := v.BindEnv("ai.api_key", "GEMINI_API_KEY"); err != nil {
		fmt.Printf("Warning: failed to bind GEMINI_API_KEY environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Dataset defaults
	v.SetDefault("dataset.delimiter", ";")
	v.SetDefault("dataset.strip_html", false)
	v.SetDefault("dataset.drop_category", "ITENS COM PROBLEMA")

	// Vectorizer defaults
	v.SetDefault("vectorizer.ngram_min", 1)
	v.SetDefault("vectorizer.ngram_max", 1)
	v.SetDefault("vectorizer.min_df", 1)
	v.SetDefault("vectorizer.max_features", 0)

	// Classifier defaults
	v.SetDefault("classifier.kind", "multinomial-nb")

	// Model defaults
	v.SetDefault("model.path", "model.yaml")

	// Experiment defaults
	v.SetDefault("experiment.folds", 5)
	v.SetDefault("experiment.seed", 42)

	// Review defaults
	v.SetDefault("review.confidence_threshold", 0.8)

	// AI defaults
	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.model", "gemini-2.0-flash")
	v.SetDefault("ai.timeout_seconds", 30)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	// Validate log level
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	// Validate log format
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	// Validate dataset delimiter
	if len(config.Dataset.Delimiter) != 1 {
		return fmt.Errorf("dataset delimiter must be a single character, got: %s", config.Dataset.Delimiter)
	}

	// Validate vectorizer configuration
	if config.Vectorizer.NgramMin < 1 {
		return fmt.Errorf("vectorizer.ngram_min must be at least 1, got: %d", config.Vectorizer.NgramMin)
	}
	if config.Vectorizer.NgramMax < config.Vectorizer.NgramMin {
		return fmt.Errorf("vectorizer.ngram_max must be >= ngram_min, got: %d < %d",
			config.Vectorizer.NgramMax, config.Vectorizer.NgramMin)
	}
	if config.Vectorizer.MinDF < 1 {
		return fmt.Errorf("vectorizer.min_df must be at least 1, got: %d", config.Vectorizer.MinDF)
	}
	if config.Vectorizer.MaxFeatures < 0 {
		return fmt.Errorf("vectorizer.max_features must not be negative, got: %d", config.Vectorizer.MaxFeatures)
	}

	// Validate experiment configuration
	if config.Experiment.Folds < 2 {
		return fmt.Errorf("experiment.folds must be at least 2, got: %d", config.Experiment.Folds)
	}

	// Validate confidence threshold
	if config.Review.ConfidenceThreshold < 0.0 || config.Review.ConfidenceThreshold > 1.0 {
		return fmt.Errorf("review.confidence_threshold must be between 0.0 and 1.0, got: %f", config.Review.ConfidenceThreshold)
	}

	// Validate AI configuration
	if config.AI.Enabled {
		if config.AI.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY required when AI is enabled")
		}
		if config.AI.TimeoutSeconds < 1 || config.AI.TimeoutSeconds > 300 {
			return fmt.Errorf("ai.timeout_seconds must be between 1 and 300, got: %d", config.AI.TimeoutSeconds)
		}
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
