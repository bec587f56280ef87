// Package table enumerates truth tables for propositional formulas.
package table

import (
	"fmt"
	"strings"

	"github.com/rulekit/rulekit/logic"
)

// DefaultMaxAtoms is the atom ceiling suggested to interactive callers. A
// formula over n atoms produces 2^n rows, so anything past this quickly stops
// being a table a human can read.
const DefaultMaxAtoms = 16

// Row is a single truth-table row: one assignment snapshot and the value the
// formula takes under it.
type Row struct {
	Assignment logic.Assignment
	Value      bool
}

// Table is a truth table over the distinct atoms of a formula.
type Table struct {
	// Atoms are the column names, in first-appearance order in the formula.
	Atoms []string
	// Rows has one entry per assignment, in counter order: row i assigns
	// the bits of i counting from 0 to 2^n - 1, with the most significant
	// bit driving the first atom and bit value 1 meaning true.
	Rows []Row
}

// TooManyAtomsError contains data about a formula exceeding the atom ceiling.
type TooManyAtomsError struct {
	// N is the number of distinct atoms in the formula.
	N int
	// Max is the ceiling the caller configured.
	Max int
}

func (err *TooManyAtomsError) Error() string {
	return fmt.Sprintf("formula has %d distinct atoms, more than the limit of %d (%d rows)", err.N, err.Max, 1<<err.N)
}

// Generate enumerates the full truth table of f.
//
// A positive maxAtoms bounds the number of distinct atoms; exceeding it
// returns a *TooManyAtomsError carrying the actual count, so the caller can
// decide whether to retry without a ceiling. maxAtoms <= 0 disables the
// check.
func Generate(f logic.Formula, maxAtoms int) (*Table, error) {
	return generate(f, nil, maxAtoms)
}

// GenerateWhere enumerates the truth table of f keeping only the rows where
// cond holds. cond is evaluated closed-world over f's atoms: atoms of cond
// that don't appear in f are false.
func GenerateWhere(f, cond logic.Formula, maxAtoms int) (*Table, error) {
	return generate(f, cond, maxAtoms)
}

func generate(f, cond logic.Formula, maxAtoms int) (*Table, error) {
	atoms := logic.Atoms(f)
	n := len(atoms)
	if maxAtoms > 0 && n > maxAtoms {
		return nil, &TooManyAtomsError{N: n, Max: maxAtoms}
	}
	rows := make([]Row, 0, 1<<n)
	for i := 0; i < 1<<n; i++ {
		assignment := make(logic.Assignment, n)
		for j, atom := range atoms {
			assignment[atom] = i&(1<<(n-j-1)) != 0
		}
		if cond != nil && !logic.EvalClosed(cond, assignment) {
			continue
		}
		rows = append(rows, Row{Assignment: assignment, Value: logic.EvalClosed(f, assignment)})
	}
	return &Table{Atoms: atoms, Rows: rows}, nil
}

// String renders the table as aligned text, with one column per atom and a
// final column for the formula value.
func (t *Table) String() string {
	widths := make([]int, len(t.Atoms))
	for i, atom := range t.Atoms {
		widths[i] = len(atom)
	}
	var b strings.Builder
	for i, atom := range t.Atoms {
		fmt.Fprintf(&b, "%-*s  ", widths[i], atom)
	}
	b.WriteString("=\n")
	for _, row := range t.Rows {
		for i, atom := range t.Atoms {
			fmt.Fprintf(&b, "%-*s  ", widths[i], letter(row.Assignment[atom]))
		}
		b.WriteString(letter(row.Value))
		b.WriteString("\n")
	}
	return b.String()
}

func letter(value bool) string {
	if value {
		return "T"
	}
	return "F"
}
