package solver

import (
	"fmt"
	"strings"
)

// ProofNode is one node of a backward-chaining proof tree.
//
// A node is one of three variants: a Fact leaf for a goal found directly in
// the fact set, a RuleApplication for a goal established through a rule, or
// a Failure explaining why a goal could not be proved. Failure is a
// first-class result, not an error: an unprovable goal still yields an
// inspectable tree.
type ProofNode interface {
	fmt.Stringer
	// Proved reports whether this node establishes its goal.
	Proved() bool
	write(b *strings.Builder, depth int)
}

// Fact is a proof leaf: the goal is in the fact set.
type Fact struct {
	Atom string
}

// RuleApplication proves a goal through a rule whose premise was established
// recursively.
type RuleApplication struct {
	// RuleID identifies the applied rule.
	RuleID string
	// Goal is the atom the rule concluded.
	Goal string
	// Premises holds one sub-proof per distinct atom of the rule's premise,
	// in first-appearance order in the premise formula. A failed sub-proof
	// reads as false when the premise is evaluated, so a successful
	// application may still contain Failure children (e.g. under NOT).
	Premises []ProofNode
}

// Failure explains why a goal could not be proved.
type Failure struct {
	// Atom is the unprovable goal.
	Atom string
	// Reason is one of ReasonCycle, ReasonNoRule or ReasonPremiseFalse.
	Reason string
	// Premises holds the sub-proofs of the last candidate rule tried, so
	// the path to a nested failure (such as a cycle) stays inspectable.
	// Empty for cycle and no-rule failures.
	Premises []ProofNode
}

// Failure reasons.
const (
	ReasonCycle        = "cycle"
	ReasonNoRule       = "no applicable rule"
	ReasonPremiseFalse = "premise false"
)

func (p Fact) Proved() bool             { return true }
func (p *RuleApplication) Proved() bool { return true }
func (p *Failure) Proved() bool         { return false }

func (p Fact) String() string             { return render(p) }
func (p *RuleApplication) String() string { return render(p) }
func (p *Failure) String() string         { return render(p) }

// render produces an indented tree, one goal per line.
func render(p ProofNode) string {
	var b strings.Builder
	p.write(&b, 0)
	return strings.TrimSuffix(b.String(), "\n")
}

func indent(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
}

func (p Fact) write(b *strings.Builder, depth int) {
	indent(b, depth)
	fmt.Fprintf(b, "%s: given as a fact\n", p.Atom)
}

func (p *RuleApplication) write(b *strings.Builder, depth int) {
	indent(b, depth)
	fmt.Fprintf(b, "%s: proved by rule %s\n", p.Goal, p.RuleID)
	for _, premise := range p.Premises {
		premise.write(b, depth+1)
	}
}

func (p *Failure) write(b *strings.Builder, depth int) {
	indent(b, depth)
	fmt.Fprintf(b, "%s: not proved (%s)\n", p.Atom, p.Reason)
	for _, premise := range p.Premises {
		premise.write(b, depth+1)
	}
}
