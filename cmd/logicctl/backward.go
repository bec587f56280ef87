package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rulekit/rulekit/solver"
)

// backwardCmd runs backward chaining for a goal atom.
var backwardCmd = &cobra.Command{
	Use:   "backward <goal>",
	Short: "Try to prove a goal atom by backward chaining.",
	Long: `Try to prove a goal atom from a rule-set file and a set of facts,
printing the proof tree and the verdict.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("rules")
		domain, _ := cmd.Flags().GetString("domain")
		base, err := loadBase(file, domain)
		if err != nil {
			return err
		}
		factArgs, _ := cmd.Flags().GetStringSlice("facts")
		proved, proof := solver.Backward(base, parseFacts(factArgs), args[0])
		fmt.Println(proof)
		fmt.Printf("proved: %t\n", proved)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(backwardCmd)
	backwardCmd.Flags().String("rules", "rules.json", "rule-set JSON file")
	backwardCmd.Flags().String("domain", "medical", "domain to load from the rule-set file")
	backwardCmd.Flags().StringSlice("facts", nil, "atoms known true")
}
