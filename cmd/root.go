package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/petdx/internal/config"
	"github.com/abhisek/petdx/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "petdx",
	Short: "Predict animal diseases and their danger level from symptoms",
	Long: "petdx encodes an animal and five symptoms, runs the pre-trained disease and\n" +
		"danger models, and prints the predicted disease with its description.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := resolveConfig(cmd)
		logging.Init(os.Stderr, cfg.Log.Format, logging.ParseLevel(cfg.Log.Level))
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	f := rootCmd.PersistentFlags()
	f.String("model-dir", "", "Directory holding model artifacts (overrides PETDX_MODEL_DIR)")
	f.String("encoders", "", "Encoder bundle path (overrides PETDX_ENCODERS)")
	f.String("disease-model", "", "Disease model path, .json or .onnx (overrides PETDX_DISEASE_MODEL)")
	f.String("danger-model", "", "Danger model path, .json or .onnx (overrides PETDX_DANGER_MODEL)")
	f.String("ort-lib", "", "ONNX Runtime shared library (overrides PETDX_ORT_LIB)")
	f.String("log-level", "", "Log level: debug, info, warn, error (overrides PETDX_LOG_LEVEL)")
	f.String("log-format", "", "Log format: text or json (overrides PETDX_LOG_FORMAT)")

	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(labelsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig returns the configuration with flags (highest priority),
// then environment variables, then defaults.
func resolveConfig(cmd *cobra.Command) config.Config {
	cfg := config.ConfigFromEnv()

	overrides := []struct {
		flag string
		dst  *string
	}{
		{"model-dir", &cfg.ModelDir},
		{"encoders", &cfg.Artifacts.Encoders},
		{"disease-model", &cfg.Artifacts.DiseaseModel},
		{"danger-model", &cfg.Artifacts.DangerModel},
		{"ort-lib", &cfg.Artifacts.RuntimeLibrary},
		{"log-level", &cfg.Log.Level},
		{"log-format", &cfg.Log.Format},
	}
	for _, o := range overrides {
		if v, _ := cmd.Flags().GetString(o.flag); v != "" {
			*o.dst = v
		}
	}
	return cfg
}
