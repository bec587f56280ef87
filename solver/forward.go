package solver

import (
	"fmt"
	"strings"

	"github.com/rulekit/rulekit/logic"
	"github.com/rulekit/rulekit/rules"
)

// Fired records one rule application during forward chaining.
type Fired struct {
	// RuleID identifies the rule that fired.
	RuleID string
	// Added are the atoms the application newly asserted.
	Added []string
	// Explanation is a human-readable account of the application.
	Explanation string
}

// Contradiction records a rule asserting an atom with the opposite polarity
// of what the fact set already holds.
type Contradiction struct {
	// Atom is the contradicted atom.
	Atom string
	// RuleID identifies the rule whose conclusion clashed.
	RuleID string
}

// ForwardResult is the outcome of a forward-chaining run.
type ForwardResult struct {
	// Facts is the final fact set at the fixpoint.
	Facts FactSet
	// Trace lists the rule applications that added facts, in firing order.
	Trace []Fired
	// Contradictions lists every polarity clash encountered. Chaining
	// records contradictions and continues, so all of them surface at once.
	Contradictions []Contradiction
}

// Forward iterates the rule base against a growing fact set until fixpoint.
//
// Passes run over the base in sequence order. A rule whose premise holds
// closed-world under the current facts asserts its conclusion atom: a
// positive conclusion `x` adds x if absent; a negated conclusion `NOT x`
// records a contradiction if x is already true, and otherwise marks x as
// denied so that a later positive assertion of x is also a contradiction.
// A rule whose conclusion already holds with the claimed polarity does not
// re-fire. Chaining stops after a full pass that adds no facts and records
// no new contradictions, which is guaranteed to happen: the fact set only
// grows, bounded by the atoms of the rule base.
//
// The initial fact set is copied; the caller's value is never modified.
func Forward(base *rules.Base, initial FactSet) ForwardResult {
	facts := initial.clone()
	// denied maps an atom asserted false to the rule that denied it.
	denied := make(map[string]string)
	seen := make(map[Contradiction]struct{})
	var trace []Fired
	var contradictions []Contradiction
	ruleSeq := base.Rules()

	record := func(c Contradiction) bool {
		if _, ok := seen[c]; ok {
			return false
		}
		seen[c] = struct{}{}
		contradictions = append(contradictions, c)
		return true
	}

	for {
		progressed := false
		for _, r := range ruleSeq {
			if !logic.EvalClosed(r.Premise, logic.Assignment(facts)) {
				continue
			}
			name, negated, _ := r.ConclusionAtom()
			if negated {
				if facts.Has(name) {
					if record(Contradiction{Atom: name, RuleID: r.ID}) {
						progressed = true
					}
				} else if _, ok := denied[name]; !ok {
					denied[name] = r.ID
				}
				continue
			}
			if facts.Has(name) {
				continue
			}
			facts[name] = true
			trace = append(trace, Fired{
				RuleID:      r.ID,
				Added:       []string{name},
				Explanation: explain(r, name),
			})
			progressed = true
			if _, ok := denied[name]; ok {
				record(Contradiction{Atom: name, RuleID: r.ID})
			}
		}
		if !progressed {
			break
		}
	}
	return ForwardResult{Facts: facts, Trace: trace, Contradictions: contradictions}
}

func explain(r rules.Rule, inferred string) string {
	premise := strings.Join(logic.Atoms(r.Premise), " and ")
	return fmt.Sprintf("%s fired because %s; inferred %s", r.ID, premise, inferred)
}
