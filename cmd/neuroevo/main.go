// SPDX-License-Identifier: MIT

// Command neuroevo trains layer models by evolutionary search.
//
//	neuroevo train  [--config run.yaml] [--generations N] [--seed S]
//	neuroevo agents [--config run.yaml] [--generations N] [--seed S]
//
// Without --config, train runs the built-in 4-bit classifier and agents the
// built-in target-seeking scenario.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "neuroevo:", err)
		os.Exit(1)
	}
}
