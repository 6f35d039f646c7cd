package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearTestEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PRODCLASS_LOG_LEVEL",
		"PRODCLASS_LOG_FORMAT",
		"PRODCLASS_DATASET_DELIMITER",
		"PRODCLASS_DATASET_STRIP_HTML",
		"PRODCLASS_VECTORIZER_NGRAM_MAX",
		"PRODCLASS_CLASSIFIER_KIND",
		"PRODCLASS_EXPERIMENT_FOLDS",
		"PRODCLASS_AI_ENABLED",
		"PRODCLASS_AI_MODEL",
		"GEMINI_API_KEY",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestInitializeConfig_Defaults(t *testing.T) {
	clearTestEnvVars(t)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, ";", config.Dataset.Delimiter)
	assert.False(t, config.Dataset.StripHTML)
	assert.Equal(t, "ITENS COM PROBLEMA", config.Dataset.DropCategory)
	assert.Equal(t, 1, config.Vectorizer.NgramMin)
	assert.Equal(t, 1, config.Vectorizer.NgramMax)
	assert.Equal(t, 1, config.Vectorizer.MinDF)
	assert.Equal(t, 0, config.Vectorizer.MaxFeatures)
	assert.Equal(t, "multinomial-nb", config.Classifier.Kind)
	assert.Equal(t, "model.yaml", config.Model.Path)
	assert.Equal(t, 5, config.Experiment.Folds)
	assert.Equal(t, int64(42), config.Experiment.Seed)
	assert.Equal(t, 0.8, config.Review.ConfidenceThreshold)
	assert.False(t, config.AI.Enabled)
	assert.Equal(t, "gemini-2.0-flash", config.AI.Model)
	assert.Equal(t, 30, config.AI.TimeoutSeconds)
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	clearTestEnvVars(t)

	testEnvVars := map[string]string{
		"PRODCLASS_LOG_LEVEL":            "debug",
		"PRODCLASS_LOG_FORMAT":           "json",
		"PRODCLASS_DATASET_DELIMITER":    ",",
		"PRODCLASS_VECTORIZER_NGRAM_MAX": "2",
		"PRODCLASS_CLASSIFIER_KIND":      "nearest-centroid",
		"PRODCLASS_AI_ENABLED":           "true",
		"PRODCLASS_AI_MODEL":             "gemini-1.5-pro",
		"GEMINI_API_KEY":                 "test-api-key",
	}

	for key, value := range testEnvVars {
		t.Setenv(key, value)
	}

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, ",", config.Dataset.Delimiter)
	assert.Equal(t, 2, config.Vectorizer.NgramMax)
	assert.Equal(t, "nearest-centroid", config.Classifier.Kind)
	assert.True(t, config.AI.Enabled)
	assert.Equal(t, "gemini-1.5-pro", config.AI.Model)
	assert.Equal(t, "test-api-key", config.AI.APIKey)
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	clearTestEnvVars(t)

	tempDir := t.TempDir()
	configContent := `log:
  level: warn
  format: json
vectorizer:
  ngram_min: 1
  ngram_max: 3
  min_df: 2
classifier:
  kind: nearest-centroid
experiment:
  folds: 10
`
	configFile := filepath.Join(tempDir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(configContent), 0o600))

	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	defer func() {
		require.NoError(t, os.Chdir(origDir))
	}()

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, 3, config.Vectorizer.NgramMax)
	assert.Equal(t, 2, config.Vectorizer.MinDF)
	assert.Equal(t, "nearest-centroid", config.Classifier.Kind)
	assert.Equal(t, 10, config.Experiment.Folds)
	// Values absent from the file keep their defaults.
	assert.Equal(t, ";", config.Dataset.Delimiter)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		config, err := InitializeConfig()
		require.NoError(t, err)
		return config
	}

	t.Run("invalid log level", func(t *testing.T) {
		clearTestEnvVars(t)
		config := valid()
		config.Log.Level = "verbose"
		assert.ErrorContains(t, validateConfig(config), "invalid log level")
	})

	t.Run("invalid delimiter", func(t *testing.T) {
		clearTestEnvVars(t)
		config := valid()
		config.Dataset.Delimiter = ";;"
		assert.ErrorContains(t, validateConfig(config), "single character")
	})

	t.Run("ngram range inverted", func(t *testing.T) {
		clearTestEnvVars(t)
		config := valid()
		config.Vectorizer.NgramMin = 3
		config.Vectorizer.NgramMax = 2
		assert.ErrorContains(t, validateConfig(config), "ngram_max")
	})

	t.Run("too few folds", func(t *testing.T) {
		clearTestEnvVars(t)
		config := valid()
		config.Experiment.Folds = 1
		assert.ErrorContains(t, validateConfig(config), "folds")
	})

	t.Run("threshold out of range", func(t *testing.T) {
		clearTestEnvVars(t)
		config := valid()
		config.Review.ConfidenceThreshold = 1.5
		assert.ErrorContains(t, validateConfig(config), "confidence_threshold")
	})

	t.Run("AI enabled without key", func(t *testing.T) {
		clearTestEnvVars(t)
		config := valid()
		config.AI.Enabled = true
		config.AI.APIKey = ""
		assert.ErrorContains(t, validateConfig(config), "GEMINI_API_KEY")
	})
}

func TestGetEnv(t *testing.T) {
	t.Setenv("PRODCLASS_TEST_ONLY", "set")
	assert.Equal(t, "set", GetEnv("PRODCLASS_TEST_ONLY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("PRODCLASS_TEST_MISSING", "fallback"))
}
