package solver_test

import (
	"fmt"
	"strings"

	"github.com/rulekit/rulekit/rules"
	"github.com/rulekit/rulekit/solver"
)

func Example() {
	r1, _ := rules.New("R1", "Fever AND Cough", "Flu", "Fever together with cough suggests flu.")
	r2, _ := rules.New("R2", "Flu", "Rest", "Flu patients should rest.")
	base, _ := rules.NewBase(r1, r2)

	result := solver.Forward(base, solver.NewFactSet("Fever", "Cough"))
	for _, fired := range result.Trace {
		fmt.Println(fired.Explanation)
	}
	fmt.Println("facts:", strings.Join(result.Facts.Atoms(), ", "))

	proved, proof := solver.Backward(base, solver.NewFactSet("Fever", "Cough"), "Rest")
	fmt.Println("proved:", proved)
	fmt.Println(proof)
	// Output:
	// R1 fired because Fever and Cough; inferred Flu
	// R2 fired because Flu; inferred Rest
	// facts: Cough, Fever, Flu, Rest
	// proved: true
	// Rest: proved by rule R1
	//   Flu: proved by rule R2
	//     Fever: given as a fact
	//     Cough: given as a fact
}
