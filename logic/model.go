// Package logic implements the formula model for a propositional inference
// engine.
//
// A formula is a finite tree over named atoms, built from a small closed set
// of variants:
//
// * Atom: a leaf representing an indivisible boolean variable.
//
// * Not: the unary negation of a formula.
//
// * And, Or, Xor, Implies, Iff: binary connectives.
//
// Formulas are constructed once and are read-only afterwards; evaluation and
// traversal never mutate them.
package logic

import (
	"fmt"
	"strings"
)

// ---- Basic types

// Formula is a propositional formula over named atoms.
type Formula interface {
	fmt.Stringer
	atoms(seen map[string]struct{}, xs []string) []string
	precedence() int
}

// Atom is a leaf formula representing a named boolean variable.
type Atom struct {
	// Name is the identifier for an atom, matching [A-Za-z_][A-Za-z0-9_]*.
	Name string
}

// Not is the negation of a formula.
type Not struct {
	// Operand is the negated formula.
	Operand Formula
}

// And is the conjunction of two formulas.
type And struct {
	Left, Right Formula
}

// Or is the disjunction of two formulas.
type Or struct {
	Left, Right Formula
}

// Xor is the exclusive disjunction of two formulas.
type Xor struct {
	Left, Right Formula
}

// Implies is the material implication from Left to Right.
type Implies struct {
	Left, Right Formula
}

// Iff is the biconditional of two formulas.
type Iff struct {
	Left, Right Formula
}

// ---- Constructors

// NewAtom creates an atom.
//
// It panics if the name is not a valid atom identifier.
func NewAtom(name string) Atom {
	if !IsAtomName(name) {
		panic(fmt.Sprintf("NewAtom: invalid name: %q", name))
	}
	return Atom{name}
}

// NewNot creates the negation of operand.
func NewNot(operand Formula) *Not {
	return &Not{Operand: operand}
}

// NewAnd creates the conjunction of left and right.
func NewAnd(left, right Formula) *And {
	return &And{Left: left, Right: right}
}

// NewOr creates the disjunction of left and right.
func NewOr(left, right Formula) *Or {
	return &Or{Left: left, Right: right}
}

// NewXor creates the exclusive disjunction of left and right.
func NewXor(left, right Formula) *Xor {
	return &Xor{Left: left, Right: right}
}

// NewImplies creates the implication from left to right.
func NewImplies(left, right Formula) *Implies {
	return &Implies{Left: left, Right: right}
}

// NewIff creates the biconditional of left and right.
func NewIff(left, right Formula) *Iff {
	return &Iff{Left: left, Right: right}
}

// ---- Atoms()

// Atoms returns the distinct atom names in the formula, in first-appearance
// order of a left-to-right depth-first traversal.
func Atoms(f Formula) []string {
	return f.atoms(make(map[string]struct{}), nil)
}

func (a Atom) atoms(seen map[string]struct{}, xs []string) []string {
	if _, ok := seen[a.Name]; ok {
		return xs
	}
	seen[a.Name] = struct{}{}
	return append(xs, a.Name)
}

func (f *Not) atoms(seen map[string]struct{}, xs []string) []string {
	return f.Operand.atoms(seen, xs)
}

func (f *And) atoms(seen map[string]struct{}, xs []string) []string {
	return f.Right.atoms(seen, f.Left.atoms(seen, xs))
}

func (f *Or) atoms(seen map[string]struct{}, xs []string) []string {
	return f.Right.atoms(seen, f.Left.atoms(seen, xs))
}

func (f *Xor) atoms(seen map[string]struct{}, xs []string) []string {
	return f.Right.atoms(seen, f.Left.atoms(seen, xs))
}

func (f *Implies) atoms(seen map[string]struct{}, xs []string) []string {
	return f.Right.atoms(seen, f.Left.atoms(seen, xs))
}

func (f *Iff) atoms(seen map[string]struct{}, xs []string) []string {
	return f.Right.atoms(seen, f.Left.atoms(seen, xs))
}

// ---- Precedence

// Binding powers, loosest to tightest. Atoms bind tighter than any operator.
const (
	precIff = iota + 1
	precImplies
	precXor
	precOr
	precAnd
	precNot
	precAtom
)

func (a Atom) precedence() int     { return precAtom }
func (f *Not) precedence() int     { return precNot }
func (f *And) precedence() int     { return precAnd }
func (f *Or) precedence() int      { return precOr }
func (f *Xor) precedence() int     { return precXor }
func (f *Implies) precedence() int { return precImplies }
func (f *Iff) precedence() int     { return precIff }

// ---- String()

// String renders the formula in the concrete syntax accepted by the parser,
// with the minimal parentheses needed to reproduce its structure. Binary
// operators are left-associative, so only right children at the same binding
// power are parenthesized.
func binString(op string, prec int, left, right Formula) string {
	var b strings.Builder
	writeOperand(&b, left, prec, false)
	b.WriteString(" ")
	b.WriteString(op)
	b.WriteString(" ")
	writeOperand(&b, right, prec, true)
	return b.String()
}

func writeOperand(b *strings.Builder, f Formula, prec int, isRight bool) {
	p := f.precedence()
	needsParens := p < prec || (isRight && p == prec)
	if needsParens {
		b.WriteString("(")
	}
	b.WriteString(f.String())
	if needsParens {
		b.WriteString(")")
	}
}

func (a Atom) String() string { return a.Name }

func (f *Not) String() string {
	if f.Operand.precedence() < precNot {
		return "NOT (" + f.Operand.String() + ")"
	}
	return "NOT " + f.Operand.String()
}

func (f *And) String() string     { return binString("AND", precAnd, f.Left, f.Right) }
func (f *Or) String() string      { return binString("OR", precOr, f.Left, f.Right) }
func (f *Xor) String() string     { return binString("XOR", precXor, f.Left, f.Right) }
func (f *Implies) String() string { return binString("->", precImplies, f.Left, f.Right) }
func (f *Iff) String() string     { return binString("<->", precIff, f.Left, f.Right) }
