package solver

import (
	"github.com/rulekit/rulekit/logic"
	"github.com/rulekit/rulekit/rules"
)

// Backward attempts to prove a goal atom from the facts and rules, returning
// the verdict and the proof tree explaining it.
//
// The search is depth-first over the rules concluding the goal, in base
// order. A goal in the fact set is proved immediately. Otherwise each
// candidate rule's premise atoms are resolved recursively, unproved atoms
// read as false, and the premise formula is evaluated under the resulting
// assignment; the first candidate whose premise holds proves the goal. A
// goal already on the recursion stack fails with a cycle, without recursing
// further; the guard is removed on return, so an unrelated later goal may
// re-prove the same atom.
func Backward(base *rules.Base, facts FactSet, goal string) (bool, ProofNode) {
	node := prove(base, facts, goal, make(map[string]struct{}))
	return node.Proved(), node
}

// visited holds the atoms on the current recursion stack. It is threaded
// explicitly through the recursive calls, keeping the search a pure,
// reentrant computation.
func prove(base *rules.Base, facts FactSet, goal string, visited map[string]struct{}) ProofNode {
	if facts.Has(goal) {
		return Fact{Atom: goal}
	}
	if _, ok := visited[goal]; ok {
		return &Failure{Atom: goal, Reason: ReasonCycle}
	}
	candidates := base.Concluding(goal)
	if len(candidates) == 0 {
		return &Failure{Atom: goal, Reason: ReasonNoRule}
	}
	visited[goal] = struct{}{}
	defer delete(visited, goal)

	var lastPremises []ProofNode
	for i := range candidates {
		r := candidates[i]
		atoms := logic.Atoms(r.Premise)
		assignment := make(logic.Assignment, len(atoms))
		premises := make([]ProofNode, len(atoms))
		for j, atom := range atoms {
			sub := prove(base, facts, atom, visited)
			premises[j] = sub
			assignment[atom] = sub.Proved()
		}
		if logic.EvalClosed(r.Premise, assignment) {
			return &RuleApplication{RuleID: r.ID, Goal: goal, Premises: premises}
		}
		lastPremises = premises
	}
	return &Failure{Atom: goal, Reason: ReasonPremiseFalse, Premises: lastPremises}
}
