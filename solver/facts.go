// Package solver implements rule-based inference over a rule base: forward
// chaining to a fixpoint and backward chaining with proof trees.
//
// All operations are synchronous, side-effect-free computations over their
// inputs: fact sets passed in are copied, never mutated, and results are
// fresh values. There is no shared state between calls.
package solver

import (
	"sort"
)

// FactSet is the set of atoms currently known to be true. Under the
// closed-world assumption, an atom absent from the set is false, never
// unknown.
type FactSet map[string]bool

// NewFactSet creates a fact set with the given atoms.
func NewFactSet(atoms ...string) FactSet {
	facts := make(FactSet, len(atoms))
	for _, atom := range atoms {
		facts[atom] = true
	}
	return facts
}

// Has reports whether the atom is known true.
func (fs FactSet) Has(atom string) bool {
	return fs[atom]
}

// Atoms returns the known-true atoms in sorted order, for deterministic
// display.
func (fs FactSet) Atoms() []string {
	atoms := make([]string, 0, len(fs))
	for atom, value := range fs {
		if value {
			atoms = append(atoms, atom)
		}
	}
	sort.Strings(atoms)
	return atoms
}

func (fs FactSet) clone() FactSet {
	facts := make(FactSet, len(fs))
	for atom, value := range fs {
		if value {
			facts[atom] = true
		}
	}
	return facts
}
