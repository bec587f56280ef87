package main

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rulekit/rulekit/logic"
	"github.com/rulekit/rulekit/parser"
)

// checkCmd parses a formula and reports its canonical form and atoms.
var checkCmd = &cobra.Command{
	Use:   "check <formula>",
	Short: "Parse a formula and print its canonical form.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := parser.Parse(args[0])
		if err != nil {
			return err
		}
		atoms := logic.Atoms(f)
		log.Debugf("parsed %q into %d distinct atoms", args[0], len(atoms))
		fmt.Println(f)
		fmt.Printf("atoms: %s\n", strings.Join(atoms, ", "))
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
