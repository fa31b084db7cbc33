package goflowchart_test

import (
	"fmt"
	"log"

	"github.com/cdfmlr/goflowchart"
)

// ExampleFromCode charts a small snippet and prints the DSL text. Paste it
// into a flowchart.js host to see the diagram.
func ExampleFromCode() {
	dsl, err := goflowchart.FromCode(`
done := false
for !done {
	done = step()
}
finish()`)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(dsl)

	// Output:
	// op0=>operation: done := false
	// cond1=>operation: done = step() while !done
	// sub4=>subroutine: finish()
	//
	// op0->cond1
	// cond1->sub4
}
