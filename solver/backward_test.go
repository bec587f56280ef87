package solver_test

import (
	"testing"

	"github.com/rulekit/rulekit/solver"
	"github.com/rulekit/rulekit/test_helpers"

	"github.com/google/go-cmp/cmp"
)

func TestBackward_fact(t *testing.T) {
	base := mustBase(t, [3]string{"R1", "A", "B"})
	proved, proof := solver.Backward(base, solver.NewFactSet("B"), "B")
	if !proved {
		t.Fatal("B should be proved directly from the facts")
	}
	if diff := cmp.Diff(solver.ProofNode(solver.Fact{Atom: "B"}), proof); diff != "" {
		t.Errorf("proof: (-want, +got)\n%s", diff)
	}
}

func TestBackward_ruleApplication(t *testing.T) {
	base := mustBase(t, [3]string{"R1", "Fever AND Cough", "Flu"})
	proved, proof := solver.Backward(base, solver.NewFactSet("Fever", "Cough"), "Flu")
	if !proved {
		t.Fatal("Flu should be proved via R1")
	}
	want := solver.ProofNode(&solver.RuleApplication{
		RuleID: "R1",
		Goal:   "Flu",
		Premises: []solver.ProofNode{
			solver.Fact{Atom: "Fever"},
			solver.Fact{Atom: "Cough"},
		},
	})
	if diff := cmp.Diff(want, proof); diff != "" {
		t.Errorf("proof: (-want, +got)\n%s", diff)
	}
}

func TestBackward_recursive(t *testing.T) {
	base := mustBase(t,
		[3]string{"R1", "Flu", "Rest"},
		[3]string{"R2", "Fever AND Cough", "Flu"},
	)
	proved, proof := solver.Backward(base, solver.NewFactSet("Fever", "Cough"), "Rest")
	if !proved {
		t.Fatal("Rest should be proved via R1 and R2")
	}
	want := solver.ProofNode(&solver.RuleApplication{
		RuleID: "R1",
		Goal:   "Rest",
		Premises: []solver.ProofNode{
			&solver.RuleApplication{
				RuleID: "R2",
				Goal:   "Flu",
				Premises: []solver.ProofNode{
					solver.Fact{Atom: "Fever"},
					solver.Fact{Atom: "Cough"},
				},
			},
		},
	})
	if diff := cmp.Diff(want, proof); diff != "" {
		t.Errorf("proof: (-want, +got)\n%s", diff)
	}
}

func TestBackward_noRule(t *testing.T) {
	base := mustBase(t, [3]string{"R1", "A", "B"})
	proved, proof := solver.Backward(base, solver.NewFactSet(), "C")
	if proved {
		t.Fatal("C has no facts and no rules; it must not be proved")
	}
	want := solver.ProofNode(&solver.Failure{Atom: "C", Reason: solver.ReasonNoRule})
	if diff := cmp.Diff(want, proof); diff != "" {
		t.Errorf("proof: (-want, +got)\n%s", diff)
	}
}

func TestBackward_premiseFalse(t *testing.T) {
	base := mustBase(t, [3]string{"R1", "Fever AND Cough", "Flu"})
	proved, proof := solver.Backward(base, solver.NewFactSet("Fever"), "Flu")
	if proved {
		t.Fatal("Flu must not be proved with only Fever")
	}
	want := solver.ProofNode(&solver.Failure{
		Atom:   "Flu",
		Reason: solver.ReasonPremiseFalse,
		Premises: []solver.ProofNode{
			solver.Fact{Atom: "Fever"},
			&solver.Failure{Atom: "Cough", Reason: solver.ReasonNoRule},
		},
	})
	if diff := cmp.Diff(want, proof); diff != "" {
		t.Errorf("proof: (-want, +got)\n%s", diff)
	}
}

// A negated premise holds when its atom is unprovable.
func TestBackward_negatedPremise(t *testing.T) {
	base := mustBase(t, [3]string{"R1", "NOT Rain", "Picnic"})
	proved, proof := solver.Backward(base, solver.NewFactSet(), "Picnic")
	if !proved {
		t.Fatal("Picnic should be proved: Rain is unprovable, so NOT Rain holds")
	}
	want := solver.ProofNode(&solver.RuleApplication{
		RuleID: "R1",
		Goal:   "Picnic",
		Premises: []solver.ProofNode{
			&solver.Failure{Atom: "Rain", Reason: solver.ReasonNoRule},
		},
	})
	if diff := cmp.Diff(want, proof); diff != "" {
		t.Errorf("proof: (-want, +got)\n%s", diff)
	}
}

func TestBackward_cycle(t *testing.T) {
	base := mustBase(t,
		[3]string{"R1", "B", "A"},
		[3]string{"R2", "A", "B"},
	)
	proved, proof := solver.Backward(base, solver.NewFactSet(), "A")
	if proved {
		t.Fatal("A must not be provable from a cyclic rule base")
	}
	// The path down to the cycle stays inspectable in the failure tree.
	want := solver.ProofNode(&solver.Failure{
		Atom:   "A",
		Reason: solver.ReasonPremiseFalse,
		Premises: []solver.ProofNode{
			&solver.Failure{
				Atom:   "B",
				Reason: solver.ReasonPremiseFalse,
				Premises: []solver.ProofNode{
					&solver.Failure{Atom: "A", Reason: solver.ReasonCycle},
				},
			},
		},
	})
	if diff := cmp.Diff(want, proof); diff != "" {
		t.Errorf("proof: (-want, +got)\n%s", diff)
	}
}

// The cycle guard backtracks: an atom visited on a failed path can still be
// proved on a later, independent path.
func TestBackward_backtracking(t *testing.T) {
	base := mustBase(t,
		[3]string{"R1", "Helper AND Missing", "Goal"},
		[3]string{"R2", "Helper", "Goal"},
		[3]string{"R3", "Base", "Helper"},
	)
	proved, _ := solver.Backward(base, solver.NewFactSet("Base"), "Goal")
	if !proved {
		t.Fatal("Goal should be proved via R2 after R1 fails")
	}
}

func TestBackward_triesRulesInOrder(t *testing.T) {
	base := mustBase(t,
		[3]string{"R1", "A", "Goal"},
		[3]string{"R2", "B", "Goal"},
	)
	proved, proof := solver.Backward(base, solver.NewFactSet("A", "B"), "Goal")
	if !proved {
		t.Fatal("Goal should be proved")
	}
	// Both rules apply; the first in sequence order wins.
	app, ok := proof.(*solver.RuleApplication)
	if !ok {
		t.Fatalf("proof root is %T, not a rule application", proof)
	}
	if app.RuleID != "R1" {
		t.Errorf("applied rule %s (!= R1)", app.RuleID)
	}
}

func TestProofString(t *testing.T) {
	base := mustBase(t,
		[3]string{"R1", "Flu", "Rest"},
		[3]string{"R2", "Fever AND Cough", "Flu"},
	)
	_, proof := solver.Backward(base, solver.NewFactSet("Fever", "Cough"), "Rest")
	want := test_helpers.Dedent(`
        Rest: proved by rule R1
          Flu: proved by rule R2
            Fever: given as a fact
            Cough: given as a fact`)
	if got := proof.String(); got != want {
		t.Errorf("String() = %q (!= %q)", got, want)
	}
}
