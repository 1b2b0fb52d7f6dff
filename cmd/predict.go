package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/petdx/internal/diagnose"
	"github.com/abhisek/petdx/internal/ui/theme"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict the disease and danger level for an animal and five symptoms",
	Example: `  petdx predict --animal Dog \
    --symptom Vomiting --symptom Diarrhea --symptom Fever \
    --symptom Lethargy --symptom "Loss of appetite"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		animal, _ := cmd.Flags().GetString("animal")
		symptoms, _ := cmd.Flags().GetStringArray("symptom")
		plain, _ := cmd.Flags().GetBool("plain")

		s, err := openService(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		out := cmd.OutOrStdout()
		res, err := s.Predict(animal, symptoms)
		if err != nil {
			fmt.Fprintln(out, renderError(s.ErrorMessage(err), plain))
			return nil
		}
		fmt.Fprintln(out, renderResult(res, plain))
		return nil
	},
}

func init() {
	predictCmd.Flags().String("animal", "", "Animal name, e.g. Dog")
	predictCmd.Flags().StringArray("symptom", nil, fmt.Sprintf("Symptom, repeated %d times in slot order", diagnose.NumSymptoms))
	predictCmd.Flags().Bool("plain", false, "Print without colors")
	_ = predictCmd.MarkFlagRequired("animal")
}

// renderResult formats res as three lines, styled unless plain.
func renderResult(res *diagnose.Result, plain bool) string {
	if plain {
		return res.String()
	}
	lines := []string{
		theme.Label.Render(diagnose.DiseaseLabel+":") + " " + theme.Value.Render(res.Disease),
		theme.Label.Render(diagnose.ExplanationLabel+":") + " " + theme.Value.Render(res.Explanation),
		theme.Label.Render(diagnose.DangerLabel+":") + " " + theme.DangerStyle(res.Danger).Render(res.Danger),
	}
	if res.UnknownSymptoms > 0 {
		lines = append(lines, theme.Hint.Render(
			fmt.Sprintf("%d of %d symptoms were not recognized by the model.", res.UnknownSymptoms, diagnose.NumSymptoms)))
	}
	return strings.Join(lines, "\n")
}

func renderError(msg string, plain bool) string {
	if plain {
		return msg
	}
	return theme.Failure.Render(msg)
}
