package diagnose

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/abhisek/petdx/internal/classifier"
	"github.com/abhisek/petdx/internal/config"
	"github.com/abhisek/petdx/internal/encoder"
)

// Open loads the encoder bundle and both models named by cfg.
func Open(cfg config.Config, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}

	registry, err := encoder.LoadBundle(cfg.EncodersPath())
	if err != nil {
		return nil, fmt.Errorf("load encoders: %w", err)
	}

	opts := classifier.Options{RuntimeLibrary: cfg.Artifacts.RuntimeLibrary}
	disease, err := classifier.Load(cfg.DiseaseModelPath(), opts)
	if err != nil {
		return nil, fmt.Errorf("load disease model: %w", err)
	}
	danger, err := classifier.Load(cfg.DangerModelPath(), opts)
	if err != nil {
		closeModel(disease)
		return nil, fmt.Errorf("load danger model: %w", err)
	}

	logger.Debug("models loaded",
		"encoders", cfg.EncodersPath(),
		"disease_model", cfg.DiseaseModelPath(),
		"danger_model", cfg.DangerModelPath(),
	)
	return New(registry, disease, danger, logger), nil
}

func closeModel(c classifier.Classifier) {
	if closer, ok := c.(io.Closer); ok {
		closer.Close()
	}
}
