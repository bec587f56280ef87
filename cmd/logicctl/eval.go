package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rulekit/rulekit/errors"
	"github.com/rulekit/rulekit/logic"
	"github.com/rulekit/rulekit/parser"
)

// evalCmd evaluates a formula against an explicit assignment.
var evalCmd = &cobra.Command{
	Use:   "eval <formula>",
	Short: "Evaluate a formula under an assignment.",
	Long: `Evaluate a formula under the assignment given by --true and --false.
Every atom of the formula must be assigned, unless --closed-world treats
missing atoms as false.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := parser.Parse(args[0])
		if err != nil {
			return err
		}
		trues, _ := cmd.Flags().GetStringSlice("true")
		falses, _ := cmd.Flags().GetStringSlice("false")
		assignment := make(logic.Assignment)
		for _, atom := range splitAtoms(trues) {
			assignment[atom] = true
		}
		for _, atom := range splitAtoms(falses) {
			if assignment[atom] {
				return errors.New("atom %q assigned both true and false", atom)
			}
			assignment[atom] = false
		}
		var value bool
		if closed, _ := cmd.Flags().GetBool("closed-world"); closed {
			value = logic.EvalClosed(f, assignment)
		} else {
			value, err = logic.Eval(f, assignment)
			if err != nil {
				return err
			}
		}
		fmt.Println(value)
		return nil
	},
	SilenceUsage: true,
}

func splitAtoms(values []string) []string {
	var atoms []string
	for _, value := range values {
		for _, atom := range strings.Split(value, ",") {
			atom = strings.TrimSpace(atom)
			if atom != "" {
				atoms = append(atoms, atom)
			}
		}
	}
	return atoms
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().StringSlice("true", nil, "atoms assigned true")
	evalCmd.Flags().StringSlice("false", nil, "atoms assigned false")
	evalCmd.Flags().Bool("closed-world", false, "treat unassigned atoms as false")
}
