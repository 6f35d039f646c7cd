// Package store persists fitted pipelines to disk and loads them back.
// The vocabulary, label mapping and trained classifier always travel as
// one YAML document; loading validates that all three are present before
// any pipeline state is constructed.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/GHDaru/prodclass/internal/logging"
	"github.com/GHDaru/prodclass/internal/pipeline"
)

var log = logging.GetLogger()

// SetLogger allows setting a custom logger for this package.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// SaveModel writes the fitted pipeline to path. The document is written to
// a temporary file in the same directory and renamed into place, so a
// crash mid-write never leaves a truncated model behind.
func SaveModel(p *pipeline.ProductVectorizer, path string) error {
	snapshot, err := p.Snapshot()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("error marshaling model: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating model directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".model-*.yaml")
	if err != nil {
		return fmt.Errorf("error creating temporary model file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("error writing model file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("error closing model file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("error replacing model file: %w", err)
	}

	log.WithFields(
		logging.Field{Key: logging.FieldOutputFile, Value: path},
		logging.Field{Key: logging.FieldVocabSize, Value: snapshot.Vocabulary.Size()},
		logging.Field{Key: logging.FieldClasses, Value: snapshot.Mapping.Size()},
	).Info("Model saved")
	return nil
}

// LoadModel reads a model file and reconstructs a fitted pipeline.
func LoadModel(path string) (*pipeline.ProductVectorizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading model file: %w", err)
	}
	var snapshot pipeline.Snapshot
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("error parsing model file %s: %w", path, err)
	}
	p, err := pipeline.FromSnapshot(&snapshot)
	if err != nil {
		return nil, fmt.Errorf("model file %s is not usable: %w", path, err)
	}

	log.WithFields(
		logging.Field{Key: logging.FieldInputFile, Value: path},
		logging.Field{Key: logging.FieldVocabSize, Value: snapshot.Vocabulary.Size()},
		logging.Field{Key: logging.FieldClasses, Value: snapshot.Mapping.Size()},
	).Info("Model loaded")
	return p, nil
}
