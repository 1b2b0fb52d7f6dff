package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/petdx/internal/explain"
)

var explainCmd = &cobra.Command{
	Use:   "explain <disease>",
	Short: "Print the description of a disease",
	Args: func(cmd *cobra.Command, args []string) error {
		if list, _ := cmd.Flags().GetBool("list"); list {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if list, _ := cmd.Flags().GetBool("list"); list {
			for _, d := range explain.Diseases() {
				fmt.Fprintln(out, d)
			}
			return nil
		}
		fmt.Fprintln(out, explain.Explain(args[0]))
		return nil
	},
}

func init() {
	explainCmd.Flags().Bool("list", false, "List every described disease")
}
