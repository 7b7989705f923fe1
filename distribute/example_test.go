// SPDX-License-Identifier: MIT

package distribute_test

import (
	"fmt"

	"github.com/katalvlaran/parmul/distribute"
)

// ExampleCoordinator_RunSeeded distributes a 4×4 seeded product over three
// workers and prints the row assignments plus the verification verdict.
func ExampleCoordinator_RunSeeded() {
	coord := distribute.NewCoordinator(
		distribute.WithSize(4),
		distribute.WithWorkers(3),
	)

	rep, err := coord.RunSeeded()
	if err != nil {
		fmt.Println("run failed:", err)

		return
	}

	fmt.Println(rep.Ranges) // fair split: sizes differ by at most one
	fmt.Println(rep.OK)     // distributed result matches the serial reference

	// Output:
	// [[0,2) [2,3) [3,4)]
	// true
}
