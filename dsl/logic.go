// Package dsl provides shorthand constructors for building formulas in Go
// code, mostly used in tests.
package dsl

import (
	"github.com/rulekit/rulekit/logic"
)

func Atom(name string) logic.Atom {
	return logic.NewAtom(name)
}

func Not(operand logic.Formula) *logic.Not {
	return logic.NewNot(operand)
}

func And(left, right logic.Formula) *logic.And {
	return logic.NewAnd(left, right)
}

func Or(left, right logic.Formula) *logic.Or {
	return logic.NewOr(left, right)
}

func Xor(left, right logic.Formula) *logic.Xor {
	return logic.NewXor(left, right)
}

func Implies(left, right logic.Formula) *logic.Implies {
	return logic.NewImplies(left, right)
}

func Iff(left, right logic.Formula) *logic.Iff {
	return logic.NewIff(left, right)
}

// ----

// Conj left-folds the formulas into a conjunction.
func Conj(fs ...logic.Formula) logic.Formula {
	if len(fs) == 0 {
		panic("Expected at least one formula")
	}
	f := fs[0]
	for _, g := range fs[1:] {
		f = logic.NewAnd(f, g)
	}
	return f
}

// Disj left-folds the formulas into a disjunction.
func Disj(fs ...logic.Formula) logic.Formula {
	if len(fs) == 0 {
		panic("Expected at least one formula")
	}
	f := fs[0]
	for _, g := range fs[1:] {
		f = logic.NewOr(f, g)
	}
	return f
}

// Assignment builds an assignment from alternating name, value pairs.
func Assignment(kvs ...interface{}) logic.Assignment {
	if len(kvs)%2 == 1 {
		panic("Expected even number of name-value entries")
	}
	assignment := make(logic.Assignment, len(kvs)/2)
	for i := 0; i < len(kvs); i += 2 {
		assignment[kvs[i].(string)] = kvs[i+1].(bool)
	}
	return assignment
}
