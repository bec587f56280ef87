// Package rules implements rule bases for the chaining engines: named rules
// pairing a premise formula with a conclusion formula, plus the JSON exchange
// schema used to ship rule sets between systems.
package rules

import (
	"fmt"

	"github.com/rulekit/rulekit/errors"
	"github.com/rulekit/rulekit/logic"
	"github.com/rulekit/rulekit/parser"
)

// Rule pairs a premise formula with a conclusion formula under a unique id.
//
// The conclusion is almost always a single atom, but any formula is accepted
// here; it's Base construction that restricts conclusions to the shapes the
// chaining engines understand.
type Rule struct {
	// ID identifies the rule within its base.
	ID string
	// Premise is the antecedent formula.
	Premise logic.Formula
	// Conclusion is the consequent formula.
	Conclusion logic.Formula
	// Text is a free-form human description of the rule.
	Text string

	// Source text the formulas were parsed from, preserved so that
	// re-serializing a rule reproduces its original fields byte for byte.
	premiseText    string
	conclusionText string
}

// New parses the premise and conclusion texts into a rule.
func New(id, premise, conclusion, text string) (Rule, error) {
	p, err := parser.Parse(premise)
	if err != nil {
		return Rule{}, errors.New("rule %q: premise: %v", id, err)
	}
	c, err := parser.Parse(conclusion)
	if err != nil {
		return Rule{}, errors.New("rule %q: conclusion: %v", id, err)
	}
	return Rule{
		ID:             id,
		Premise:        p,
		Conclusion:     c,
		Text:           text,
		premiseText:    premise,
		conclusionText: conclusion,
	}, nil
}

// PremiseText returns the premise as originally written.
func (r Rule) PremiseText() string {
	if r.premiseText == "" && r.Premise != nil {
		return r.Premise.String()
	}
	return r.premiseText
}

// ConclusionText returns the conclusion as originally written.
func (r Rule) ConclusionText() string {
	if r.conclusionText == "" && r.Conclusion != nil {
		return r.Conclusion.String()
	}
	return r.conclusionText
}

// ConclusionAtom reports the single atom asserted by the rule's conclusion
// and its polarity: (x, false, true) for a conclusion `x`, (x, true, true)
// for `NOT x`, and ok=false for any other shape.
func (r Rule) ConclusionAtom() (name string, negated, ok bool) {
	switch c := r.Conclusion.(type) {
	case logic.Atom:
		return c.Name, false, true
	case *logic.Not:
		if a, ok := c.Operand.(logic.Atom); ok {
			return a.Name, true, true
		}
	}
	return "", false, false
}

func (r Rule) String() string {
	return fmt.Sprintf("%s: %s => %s", r.ID, r.Premise, r.Conclusion)
}

// DuplicateRuleIDError contains data about a rule id appearing twice in a
// base.
type DuplicateRuleIDError struct {
	ID string
}

func (err *DuplicateRuleIDError) Error() string {
	return fmt.Sprintf("duplicate rule id %q", err.ID)
}

// ConclusionShapeError contains data about a rule whose conclusion is
// neither a positive atom nor a negated atom.
type ConclusionShapeError struct {
	RuleID     string
	Conclusion logic.Formula
}

func (err *ConclusionShapeError) Error() string {
	return fmt.Sprintf("rule %q: conclusion %q is not an atom or a negated atom", err.RuleID, err.Conclusion)
}

// Base is an ordered sequence of rules with unique ids. Order is significant
// for deterministic traces: the chaining engines try rules in sequence order.
type Base struct {
	rules []Rule
	// byConclusion maps an atom name to the positions of the rules whose
	// conclusion is exactly that atom, positively.
	byConclusion map[string][]int
}

// NewBase builds a rule base.
//
// It fails with a *DuplicateRuleIDError if two rules share an id, and with a
// *ConclusionShapeError if a rule's conclusion is neither an atom nor a
// negated atom. Rejecting unsupported conclusions here lets both chaining
// engines assume the shape invariant.
func NewBase(rules ...Rule) (*Base, error) {
	ids := make(map[string]struct{}, len(rules))
	byConclusion := make(map[string][]int)
	for i, r := range rules {
		if _, ok := ids[r.ID]; ok {
			return nil, &DuplicateRuleIDError{r.ID}
		}
		ids[r.ID] = struct{}{}
		name, negated, ok := r.ConclusionAtom()
		if !ok {
			return nil, &ConclusionShapeError{r.ID, r.Conclusion}
		}
		if !negated {
			byConclusion[name] = append(byConclusion[name], i)
		}
	}
	base := &Base{rules: make([]Rule, len(rules)), byConclusion: byConclusion}
	copy(base.rules, rules)
	return base, nil
}

// Len returns the number of rules in the base.
func (b *Base) Len() int {
	return len(b.rules)
}

// Rules returns the rules in sequence order. The slice is a copy; the base
// itself is never mutated after construction.
func (b *Base) Rules() []Rule {
	rules := make([]Rule, len(b.rules))
	copy(rules, b.rules)
	return rules
}

// Concluding returns the rules whose conclusion is exactly the given atom,
// positively, in sequence order. These are the candidates backward chaining
// tries for a goal; negated conclusions are not matchable as goals.
func (b *Base) Concluding(atom string) []Rule {
	positions := b.byConclusion[atom]
	rules := make([]Rule, len(positions))
	for i, pos := range positions {
		rules[i] = b.rules[pos]
	}
	return rules
}

// Atoms returns the distinct atoms appearing in any premise or conclusion,
// in first-appearance order over the rule sequence. The size of this universe
// bounds forward chaining's fact growth.
func (b *Base) Atoms() []string {
	seen := make(map[string]struct{})
	var atoms []string
	add := func(names []string) {
		for _, name := range names {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			atoms = append(atoms, name)
		}
	}
	for _, r := range b.rules {
		add(logic.Atoms(r.Premise))
		add(logic.Atoms(r.Conclusion))
	}
	return atoms
}
