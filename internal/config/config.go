// Package config resolves where petdx finds its model artifacts and how it logs.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds all petdx configuration.
type Config struct {
	// ModelDir is the directory relative artifact paths are resolved against.
	// Default: "models".
	ModelDir string

	Artifacts ArtifactConfig
	Log       LogConfig
}

// ArtifactConfig names the persisted model artifacts.
type ArtifactConfig struct {
	Encoders     string // Default: "label_encoders.json"
	DiseaseModel string // Default: "disease_model.json"; ".onnx" also accepted
	DangerModel  string // Default: "danger_model.json"; ".onnx" also accepted

	// RuntimeLibrary is the ONNX Runtime shared library. Only needed for
	// .onnx models. Empty means libonnxruntime.so next to the model.
	RuntimeLibrary string
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level  string // "debug", "info", "warn", "error". Default: "warn"
	Format string // "text" or "json". Default: "text"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		ModelDir: "models",
		Artifacts: ArtifactConfig{
			Encoders:     "label_encoders.json",
			DiseaseModel: "disease_model.json",
			DangerModel:  "danger_model.json",
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("PETDX_MODEL_DIR"); v != "" {
		cfg.ModelDir = v
	}
	if v := os.Getenv("PETDX_ENCODERS"); v != "" {
		cfg.Artifacts.Encoders = v
	}
	if v := os.Getenv("PETDX_DISEASE_MODEL"); v != "" {
		cfg.Artifacts.DiseaseModel = v
	}
	if v := os.Getenv("PETDX_DANGER_MODEL"); v != "" {
		cfg.Artifacts.DangerModel = v
	}
	if v := os.Getenv("PETDX_ORT_LIB"); v != "" {
		cfg.Artifacts.RuntimeLibrary = v
	}
	if v := os.Getenv("PETDX_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("PETDX_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}

	return cfg
}

// Resolve returns path joined to ModelDir unless it is absolute.
func (c Config) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.ModelDir, path)
}

// EncodersPath returns the resolved encoder bundle path.
func (c Config) EncodersPath() string { return c.Resolve(c.Artifacts.Encoders) }

// DiseaseModelPath returns the resolved disease model path.
func (c Config) DiseaseModelPath() string { return c.Resolve(c.Artifacts.DiseaseModel) }

// DangerModelPath returns the resolved danger model path.
func (c Config) DangerModelPath() string { return c.Resolve(c.Artifacts.DangerModel) }

// Validate checks that every artifact is named and exists on disk.
func (c Config) Validate() error {
	var errs []error
	for _, a := range []struct {
		env  string
		path string
	}{
		{"PETDX_ENCODERS", c.EncodersPath()},
		{"PETDX_DISEASE_MODEL", c.DiseaseModelPath()},
		{"PETDX_DANGER_MODEL", c.DangerModelPath()},
	} {
		if a.path == "" {
			errs = append(errs, fmt.Errorf("%s is required", a.env))
			continue
		}
		if _, err := os.Stat(a.path); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", a.env, err))
		}
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format: %q", c.Log.Format))
	}
	return errors.Join(errs...)
}
