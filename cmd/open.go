package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/petdx/internal/diagnose"
)

// openService validates the configured artifacts and loads them.
func openService(cmd *cobra.Command) (*diagnose.Service, error) {
	cfg := resolveConfig(cmd)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("model artifacts: %w", err)
	}
	s, err := diagnose.Open(cfg, slog.Default())
	if err != nil {
		return nil, err
	}
	return s, nil
}
