package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/petdx/internal/encoder"
)

var labelsCmd = &cobra.Command{
	Use:   "labels [field]",
	Short: "List the labels the models were trained on",
	Long: "Without a field, summarizes every encoder. With a field (Name, Sym1..Sym5,\n" +
		"Disease, Danger), lists its labels with their codes.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		reg, err := encoder.LoadBundle(resolveConfig(cmd).EncodersPath())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(reg.Bundle())
		}

		if len(args) == 1 {
			labels, err := reg.Labels(encoder.Field(args[0]))
			if err != nil {
				return err
			}
			for code, l := range labels {
				fmt.Fprintf(out, "%4d  %s\n", code, l)
			}
			return nil
		}

		fmt.Fprintf(out, "%-8s  %6s  %s\n", "Field", "Labels", "Examples")
		fmt.Fprintln(out, strings.Repeat("─", 60))
		for _, f := range encoder.AllFields {
			labels, err := reg.Labels(f)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%-8s  %6d  %s\n", f, len(labels), preview(labels, 3))
		}
		return nil
	},
}

func init() {
	labelsCmd.Flags().Bool("json", false, "Print the full encoder bundle as JSON")
}

func preview(labels []string, n int) string {
	if len(labels) <= n {
		return strings.Join(labels, ", ")
	}
	return strings.Join(labels[:n], ", ") + ", ..."
}
