package logic

import (
	"fmt"
)

// Assignment maps atom names to truth values.
type Assignment map[string]bool

// UnboundAtomError contains data about an atom missing from an assignment.
type UnboundAtomError struct {
	// Name is the atom that the formula references but the assignment
	// does not bind.
	Name string
}

func (err *UnboundAtomError) Error() string {
	return fmt.Sprintf("atom %q is not bound in the assignment", err.Name)
}

// Eval evaluates a formula against an assignment.
//
// Every atom referenced by the formula must be bound, even when a
// short-circuit evaluation could skip it; otherwise Eval returns an
// *UnboundAtomError. Eval is a pure function: the same inputs always produce
// the same result, and neither the formula nor the assignment is modified.
func Eval(f Formula, assignment Assignment) (bool, error) {
	return eval(f, func(name string) (bool, error) {
		value, ok := assignment[name]
		if !ok {
			return false, &UnboundAtomError{name}
		}
		return value, nil
	})
}

// EvalClosed evaluates a formula under the closed-world assumption: atoms
// absent from the assignment are false. It never fails.
func EvalClosed(f Formula, assignment Assignment) bool {
	value, _ := eval(f, func(name string) (bool, error) {
		return assignment[name], nil
	})
	return value
}

func eval(f Formula, lookup func(name string) (bool, error)) (bool, error) {
	switch f := f.(type) {
	case Atom:
		return lookup(f.Name)
	case *Not:
		value, err := eval(f.Operand, lookup)
		if err != nil {
			return false, err
		}
		return !value, nil
	case *And:
		left, right, err := eval2(f.Left, f.Right, lookup)
		return left && right, err
	case *Or:
		left, right, err := eval2(f.Left, f.Right, lookup)
		return left || right, err
	case *Xor:
		left, right, err := eval2(f.Left, f.Right, lookup)
		return left != right, err
	case *Implies:
		left, right, err := eval2(f.Left, f.Right, lookup)
		return !left || right, err
	case *Iff:
		left, right, err := eval2(f.Left, f.Right, lookup)
		return left == right, err
	}
	panic(fmt.Sprintf("eval: unhandled formula type %T", f))
}

func eval2(left, right Formula, lookup func(name string) (bool, error)) (bool, bool, error) {
	l, err := eval(left, lookup)
	if err != nil {
		return false, false, err
	}
	r, err := eval(right, lookup)
	if err != nil {
		return false, false, err
	}
	return l, r, nil
}
