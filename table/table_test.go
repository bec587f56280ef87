package table_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/rulekit/rulekit/dsl"
	"github.com/rulekit/rulekit/logic"
	"github.com/rulekit/rulekit/parser"
	"github.com/rulekit/rulekit/table"
	"github.com/rulekit/rulekit/test_helpers"

	"github.com/google/go-cmp/cmp"
)

var (
	atom = dsl.Atom
	and  = dsl.And
	or   = dsl.Or
	not  = dsl.Not
)

func row(value bool, kvs ...interface{}) table.Row {
	return table.Row{Assignment: dsl.Assignment(kvs...), Value: value}
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		formula logic.Formula
		want    *table.Table
	}{
		{atom("A"), &table.Table{
			Atoms: []string{"A"},
			Rows: []table.Row{
				row(false, "A", false),
				row(true, "A", true),
			},
		}},
		{and(atom("A"), atom("B")), &table.Table{
			Atoms: []string{"A", "B"},
			Rows: []table.Row{
				row(false, "A", false, "B", false),
				row(false, "A", false, "B", true),
				row(false, "A", true, "B", false),
				row(true, "A", true, "B", true),
			},
		}},
		// The first atom in the formula is the most significant bit.
		{or(atom("B"), atom("A")), &table.Table{
			Atoms: []string{"B", "A"},
			Rows: []table.Row{
				row(false, "B", false, "A", false),
				row(true, "B", false, "A", true),
				row(true, "B", true, "A", false),
				row(true, "B", true, "A", true),
			},
		}},
	}
	for _, test := range tests {
		got, err := table.Generate(test.formula, table.DefaultMaxAtoms)
		if err != nil {
			t.Errorf("Generate(%v): %v", test.formula, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Generate(%v): (-want, +got)\n%s", test.formula, diff)
		}
	}
}

func TestGenerate_rowCount(t *testing.T) {
	f := logic.Formula(atom("x0"))
	for n := 1; n <= 10; n++ {
		got, err := table.Generate(f, 0)
		if err != nil {
			t.Fatalf("Generate with %d atoms: %v", n, err)
		}
		if len(got.Atoms) != n {
			t.Errorf("Generate with %d atoms: %d columns", n, len(got.Atoms))
		}
		if len(got.Rows) != 1<<n {
			t.Errorf("Generate with %d atoms: %d rows (!= %d)", n, len(got.Rows), 1<<n)
		}
		f = and(f, atom("x"+strconv.Itoa(n)))
	}
}

func TestGenerate_tooManyAtoms(t *testing.T) {
	f, err := parser.Parse("A AND B AND C AND D")
	if err != nil {
		t.Fatal(err)
	}
	_, err = table.Generate(f, 3)
	var tooMany *table.TooManyAtomsError
	if !errors.As(err, &tooMany) {
		t.Fatalf("expected TooManyAtomsError, got %v", err)
	}
	if tooMany.N != 4 || tooMany.Max != 3 {
		t.Errorf("TooManyAtomsError{N: %d, Max: %d} (want 4, 3)", tooMany.N, tooMany.Max)
	}
	// The caller can always retry without a ceiling.
	if _, err := table.Generate(f, 0); err != nil {
		t.Errorf("Generate without ceiling: %v", err)
	}
}

func TestGenerateWhere(t *testing.T) {
	f := and(atom("A"), atom("B"))
	got, err := table.GenerateWhere(f, atom("A"), table.DefaultMaxAtoms)
	if err != nil {
		t.Fatal(err)
	}
	want := &table.Table{
		Atoms: []string{"A", "B"},
		Rows: []table.Row{
			row(false, "A", true, "B", false),
			row(true, "A", true, "B", true),
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GenerateWhere: (-want, +got)\n%s", diff)
	}
	// A condition over atoms outside the formula is closed-world false.
	got, err = table.GenerateWhere(f, atom("Elsewhere"), table.DefaultMaxAtoms)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Rows) != 0 {
		t.Errorf("GenerateWhere with foreign condition: %d rows (!= 0)", len(got.Rows))
	}
}

func TestTableString(t *testing.T) {
	got, err := table.Generate(not(atom("Flu")), table.DefaultMaxAtoms)
	if err != nil {
		t.Fatal(err)
	}
	want := test_helpers.Dedent(`
        Flu  =
        F    T
        T    F`)
	if got.String() != want+"\n" {
		t.Errorf("String() = %q (!= %q)", got.String(), want+"\n")
	}
}
