package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rulekit/rulekit/parser"
	"github.com/rulekit/rulekit/table"
)

// tableCmd prints the truth table of a formula.
var tableCmd = &cobra.Command{
	Use:   "table <formula>",
	Short: "Print the truth table of a formula.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := parser.Parse(args[0])
		if err != nil {
			return err
		}
		maxAtoms, _ := cmd.Flags().GetInt("max-atoms")
		var t *table.Table
		if where, _ := cmd.Flags().GetString("where"); where != "" {
			cond, err := parser.Parse(where)
			if err != nil {
				return err
			}
			t, err = table.GenerateWhere(f, cond, maxAtoms)
			if err != nil {
				return err
			}
		} else {
			t, err = table.Generate(f, maxAtoms)
			if err != nil {
				return err
			}
		}
		fmt.Print(t)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(tableCmd)
	tableCmd.Flags().Int("max-atoms", table.DefaultMaxAtoms, "refuse formulas over more atoms than this (<= 0 disables)")
	tableCmd.Flags().String("where", "", "only show rows where this formula holds")
}
