package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rulekit/rulekit/solver"
)

// forwardCmd runs forward chaining over a rule-set file.
var forwardCmd = &cobra.Command{
	Use:   "forward",
	Short: "Run forward chaining from a set of facts.",
	Long: `Run forward chaining over a rule-set file until fixpoint, printing the
fired rules, any contradictions, and the final fact set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("rules")
		domain, _ := cmd.Flags().GetString("domain")
		base, err := loadBase(file, domain)
		if err != nil {
			return err
		}
		factArgs, _ := cmd.Flags().GetStringSlice("facts")
		result := solver.Forward(base, parseFacts(factArgs))
		for _, fired := range result.Trace {
			fmt.Println(fired.Explanation)
		}
		for _, c := range result.Contradictions {
			fmt.Printf("contradiction on %s via rule %s\n", c.Atom, c.RuleID)
		}
		fmt.Printf("final facts: %s\n", strings.Join(result.Facts.Atoms(), ", "))
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(forwardCmd)
	forwardCmd.Flags().String("rules", "rules.json", "rule-set JSON file")
	forwardCmd.Flags().String("domain", "medical", "domain to load from the rule-set file")
	forwardCmd.Flags().StringSlice("facts", nil, "atoms initially known true")
}
